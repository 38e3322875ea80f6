// Package cmd contains all CLI commands for storectl.
package cmd

import (
	"context"
	"fmt"

	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/freshcart/store-console/internal/core/domain"
	"github.com/freshcart/store-console/internal/core/ports"
	"github.com/freshcart/store-console/internal/core/service"
	"github.com/freshcart/store-console/internal/infrastructure/api"
	"github.com/freshcart/store-console/internal/infrastructure/cache"
	"github.com/freshcart/store-console/internal/infrastructure/config"
	"github.com/freshcart/store-console/internal/infrastructure/storage"
	"github.com/freshcart/store-console/internal/output"
	"github.com/freshcart/store-console/pkg/logger"
)

var (
	apiURL  string
	noColor bool
	verbose bool
	version = "dev"

	app *console
)

// console holds the wired dependency graph every command runs against.
type console struct {
	cfg     *config.Config
	printer *output.Printer
	log     zerolog.Logger
	redis   *redis.Client

	sessions   ports.SessionService
	products   ports.ProductService
	categories ports.CategoryService
	orders     ports.OrderService
	customers  ports.CustomerService
	coupons    ports.CouponService
	settings   ports.SettingsService
}

// rootCmd represents the base command when called without any subcommands.
var rootCmd = &cobra.Command{
	Use:   "storectl",
	Short: "Grocery store admin console",
	Long: `storectl is the terminal console for the grocery store admin API.

It manages products, stock, categories, orders, customers, coupons and
store settings, with a persistent login session stored on disk.

Example usage:
  storectl login alice s3cret    # Sign in and store the session token
  storectl products list         # List the product catalog
  storectl orders set-status <id> completed
  storectl dashboard             # Interactive page-by-page console`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		return initConsole(cmd.Context())
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		if app != nil && app.redis != nil {
			_ = app.redis.Close()
		}
	},
}

// Execute adds all child commands to the root command and runs it.
func Execute() error {
	return rootCmd.Execute()
}

// SetVersion sets the version string for the CLI.
func SetVersion(v string) {
	version = v
}

func init() {
	rootCmd.PersistentFlags().StringVar(&apiURL, "api-url", "", "store API origin (default from STORECTL_API_URL)")
	rootCmd.PersistentFlags().BoolVar(&noColor, "no-color", false, "disable colored output")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "verbose logging")
}

// initConsole loads config and wires the client, token store, cache and
// services the commands share.
func initConsole(ctx context.Context) error {
	cfg, err := config.Load(ctx)
	if err != nil {
		return err
	}
	if apiURL != "" {
		cfg.APIBaseURL = apiURL
	}

	level := cfg.LogLevel
	if verbose {
		level = "debug"
	}
	log := logger.Init(logger.Options{Level: level, Pretty: cfg.IsDevelopment()})

	var (
		tokens ports.TokenStore
		coll   ports.CollectionCache
		rdb    *redis.Client
	)
	switch cfg.CacheBackend {
	case "redis":
		rdb, err = storage.Connect(ctx, storage.RedisConfig{Addr: cfg.Redis.Addr, DB: cfg.Redis.DB})
		if err != nil {
			return fmt.Errorf("connecting redis backend: %w", err)
		}
		tokens = storage.NewRedisTokenStore(rdb)
		coll = cache.NewRedis(rdb)
	case "memory":
		tokens = storage.NewFileTokenStore(cfg.TokenFile)
		coll = cache.NewMemory()
	default:
		return fmt.Errorf("unknown cache backend %q", cfg.CacheBackend)
	}

	client := api.NewClient(cfg.APIBaseURL, tokens, log)

	app = &console{
		cfg:     cfg,
		printer: output.NewPrinter(!noColor),
		log:     log,
		redis:   rdb,

		sessions:   service.NewSessionService(client, tokens, coll, log),
		products:   service.NewProductService(client, coll, log),
		categories: service.NewCategoryService(client, coll, log),
		orders:     service.NewOrderService(client, coll, log),
		customers:  service.NewCustomerService(client, coll, log),
		coupons:    service.NewCouponService(client, coll, log),
		settings:   service.NewSettingsService(client, coll, log),
	}
	return nil
}

// requireSession restores the stored session and fails fast when the
// console is not signed in, so list commands error before hitting the API.
func requireSession(ctx context.Context) error {
	app.sessions.Initialize(ctx)
	if !app.sessions.Session().Authenticated() {
		return domain.ErrNotAuthenticated
	}
	return nil
}
