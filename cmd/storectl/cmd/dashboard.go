package cmd

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/freshcart/store-console/internal/navigation"
	"github.com/freshcart/store-console/internal/view"
)

var dashboardCmd = &cobra.Command{
	Use:   "dashboard",
	Short: "Run the interactive page-by-page console",
	Long: `Run the interactive console. Pages mirror the admin dashboard:
/ (overview), /products, /stock, /coupons, /orders, /customers,
/settings, /categories and /auth. Navigate with "go <path>", move
through history with "back" and "forward", and sign in with "login".`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		router := navigation.New("/")
		dash := view.NewApp(router, view.Services{
			Session:    app.sessions,
			Products:   app.products,
			Categories: app.categories,
			Orders:     app.orders,
			Customers:  app.customers,
			Coupons:    app.coupons,
			Settings:   app.settings,
		}, app.printer, app.log)
		return dash.Run(cmd.Context(), os.Stdin)
	},
}

func init() {
	rootCmd.AddCommand(dashboardCmd)
}
