package cmd

import (
	"strconv"

	"github.com/spf13/cobra"

	"github.com/freshcart/store-console/internal/output"
	"github.com/freshcart/store-console/internal/view"
)

var stockCmd = &cobra.Command{
	Use:   "stock",
	Short: "Manage stock levels",
}

var stockListCmd = &cobra.Command{
	Use:   "list",
	Short: "List stock levels with low-stock flags",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := requireSession(cmd.Context()); err != nil {
			return err
		}
		items, err := app.products.List(cmd.Context())
		if err != nil {
			return err
		}

		t := output.NewTable(app.printer.Out(), []string{"ID", "Name", "SKU", "Qty", "Status"})
		low := 0
		for _, p := range items {
			status := "ok"
			if p.LowStock(view.LowStockThreshold) {
				status = "LOW"
				low++
			}
			t.AddRow([]string{p.ID, p.Name, p.SKU, strconv.Itoa(p.Quantity), status})
		}
		t.Render()
		if low > 0 {
			app.printer.Warning("%d product(s) need restocking", low)
		}
		return nil
	},
}

var stockSetCmd = &cobra.Command{
	Use:   "set <id> <quantity>",
	Short: "Set the stock quantity of a product",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := requireSession(cmd.Context()); err != nil {
			return err
		}
		quantity, err := strconv.Atoi(args[1])
		if err != nil {
			return err
		}
		if err := app.products.AdjustStock(cmd.Context(), args[0], quantity); err != nil {
			return err
		}
		app.printer.Success("stock for %s set to %d", args[0], quantity)
		return nil
	},
}

func init() {
	stockCmd.AddCommand(stockListCmd)
	stockCmd.AddCommand(stockSetCmd)
	rootCmd.AddCommand(stockCmd)
}
