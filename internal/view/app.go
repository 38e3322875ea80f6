package view

import (
	"bufio"
	"context"
	"io"
	"strings"

	"github.com/rs/zerolog"

	"github.com/freshcart/store-console/internal/core/ports"
	"github.com/freshcart/store-console/internal/navigation"
	"github.com/freshcart/store-console/internal/output"
)

// Services bundles the page services the app mounts.
type Services struct {
	Session    ports.SessionService
	Products   ports.ProductService
	Categories ports.CategoryService
	Orders     ports.OrderService
	Customers  ports.CustomerService
	Coupons    ports.CouponService
	Settings   ports.SettingsService
}

// App is the interactive dashboard: a router over the page registry with
// a guard in front of every protected view, driven by a command loop.
type App struct {
	router   *navigation.Router
	registry *Registry
	sessions ports.SessionService
	printer  *output.Printer
	log      zerolog.Logger

	products *ProductsView
}

// NewApp wires the registry the same way the dashboard mounts its
// routes: every page behind the guard except the auth landing view.
func NewApp(router *navigation.Router, svcs Services, printer *output.Printer, log zerolog.Logger) *App {
	guard := NewGuard(svcs.Session, router)
	registry := NewRegistry(NotFoundView{})

	products := NewProductsView(svcs.Products)

	registry.Handle("/", guard.Protect(NewDashboardView(svcs.Products, svcs.Orders, svcs.Customers)))
	registry.Handle("/products", guard.Protect(products))
	registry.Handle("/stock", guard.Protect(NewStockView(svcs.Products)))
	registry.Handle("/coupons", guard.Protect(NewCouponsView(svcs.Coupons)))
	registry.Handle("/orders", guard.Protect(NewOrdersView(svcs.Orders)))
	registry.Handle("/customers", guard.Protect(NewCustomersView(svcs.Customers)))
	registry.Handle("/settings", guard.Protect(NewSettingsView(svcs.Settings)))
	registry.Handle("/categories", guard.Protect(NewCategoriesView(svcs.Categories)))
	registry.Handle(landingPath, NewAuthView(svcs.Session))

	return &App{
		router:   router,
		registry: registry,
		sessions: svcs.Session,
		printer:  printer,
		log:      log,
		products: products,
	}
}

// Run drives the app until the input closes or the user quits. The
// location listener is registered once here and torn down on return.
func (a *App) Run(ctx context.Context, in io.Reader) error {
	a.router.Subscribe(func(path string) {
		a.render(ctx, path)
	})
	defer a.router.Close()

	// First paint happens while the session is still initializing, so
	// protected pages show their loading placeholder instead of
	// flash-redirecting.
	a.render(ctx, a.router.Current())
	a.sessions.Initialize(ctx)
	a.render(ctx, a.router.Current())

	scanner := bufio.NewScanner(in)
	a.prompt()
	for scanner.Scan() {
		if done := a.handle(ctx, strings.Fields(scanner.Text())); done {
			return nil
		}
		a.prompt()
	}
	return scanner.Err()
}

func (a *App) prompt() {
	a.printer.Print("[%s] go <path> | back | forward | refresh | login | logout | quit", a.router.Current())
}

// handle executes one command line; it reports true when the app should
// exit.
func (a *App) handle(ctx context.Context, args []string) bool {
	if len(args) == 0 {
		return false
	}
	switch args[0] {
	case "quit", "exit":
		return true
	case "go":
		if len(args) < 2 {
			a.printer.Error("usage: go <path>")
			return false
		}
		a.router.Navigate(args[1])
	case "back":
		if !a.router.Back() {
			a.printer.Warning("already at the oldest entry")
		}
	case "forward":
		if !a.router.Forward() {
			a.printer.Warning("already at the newest entry")
		}
	case "refresh":
		a.refresh(ctx)
	case "filter":
		term := ""
		if len(args) > 1 {
			term = args[1]
		}
		a.products.SetFilter(term, "")
		a.render(ctx, a.router.Current())
	case "login":
		if len(args) < 3 {
			a.printer.Error("usage: login <username> <password>")
			return false
		}
		a.login(ctx, args[1], args[2])
	case "register":
		if len(args) < 3 {
			a.printer.Error("usage: register <username> <password> [role]")
			return false
		}
		role := ""
		if len(args) > 3 {
			role = args[3]
		}
		a.register(ctx, args[1], args[2], role)
	case "logout":
		a.sessions.Logout(ctx)
		a.router.Navigate(landingPath)
	case "help":
		a.printer.Print("paths: / /products /stock /coupons /orders /customers /settings /categories /auth")
	default:
		a.printer.Error("unknown command %q, try help", args[0])
	}
	return false
}

// render resolves and paints the view at path. Failures surface as a
// transient notice, never as a crash of the loop.
func (a *App) render(ctx context.Context, path string) {
	if err := a.registry.Resolve(path).Render(ctx, a.printer); err != nil {
		a.printer.Error("%v", err)
	}
}

func (a *App) refresh(ctx context.Context) {
	v := a.registry.Resolve(a.router.Current())
	if r, ok := v.(Refresher); ok {
		if err := r.Refresh(ctx); err != nil {
			a.printer.Error("refresh failed: %v", err)
			return
		}
	}
	a.render(ctx, a.router.Current())
}

func (a *App) login(ctx context.Context, username, password string) {
	identity, err := a.sessions.Login(ctx, ports.LoginInput{Username: username, Password: password})
	if err != nil {
		a.printer.Error("login failed: %v", err)
		return
	}
	a.printer.Success("welcome back, %s", identity.Username)
	a.router.Navigate("/")
}

func (a *App) register(ctx context.Context, username, password, role string) {
	identity, err := a.sessions.Register(ctx, ports.RegisterInput{Username: username, Password: password, Role: role})
	if err != nil {
		a.printer.Error("registration failed: %v", err)
		return
	}
	a.printer.Success("account created for %s", identity.Username)
	a.router.Navigate("/")
}
