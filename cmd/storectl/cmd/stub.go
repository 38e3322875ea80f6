package cmd

import (
	"github.com/spf13/cobra"

	"github.com/freshcart/store-console/internal/stub"
)

var stubCmd = &cobra.Command{
	Use:   "stub",
	Short: "Run a local stub of the store API",
	Long: `Run an in-memory stub of the store API for local development.
Data lives for the lifetime of the process. With --seed the stub starts
with an admin/secret account and a small sample catalog.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		addr, _ := cmd.Flags().GetString("addr")
		secret, _ := cmd.Flags().GetString("jwt-secret")
		seed, _ := cmd.Flags().GetBool("seed")

		srv := stub.NewServer(secret, app.log)
		if seed {
			if err := srv.SeedUser("admin", "secret", ""); err != nil {
				return err
			}
			srv.SeedSampleData()
			app.printer.Info("seeded admin/secret and sample data")
		}
		app.printer.Info("stub store API on %s", addr)
		return srv.Start(addr)
	},
}

func init() {
	stubCmd.Flags().String("addr", ":3000", "listen address")
	stubCmd.Flags().String("jwt-secret", "dev-secret", "HS256 signing secret")
	stubCmd.Flags().Bool("seed", false, "seed an admin account and sample data")

	rootCmd.AddCommand(stubCmd)
}
