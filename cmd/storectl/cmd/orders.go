package cmd

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/freshcart/store-console/internal/core/domain"
	"github.com/freshcart/store-console/internal/output"
)

var ordersCmd = &cobra.Command{
	Use:   "orders",
	Short: "View and update orders",
}

var ordersListCmd = &cobra.Command{
	Use:   "list",
	Short: "List orders",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := requireSession(cmd.Context()); err != nil {
			return err
		}
		items, err := app.orders.List(cmd.Context())
		if err != nil {
			return err
		}
		status, _ := cmd.Flags().GetString("status")

		t := output.NewTable(app.printer.Out(), []string{"ID", "Customer", "Items", "Total", "Status"})
		for _, o := range items {
			if status != "" && o.Status != status {
				continue
			}
			t.AddRow([]string{
				o.ID, o.CustomerName,
				strconv.Itoa(len(o.Items)),
				fmt.Sprintf("$%.2f", o.Total),
				o.Status,
			})
		}
		t.Render()
		return nil
	},
}

var ordersSetStatusCmd = &cobra.Command{
	Use:   "set-status <id> <status>",
	Short: "Move an order to a new status",
	Long:  "Valid statuses: " + strings.Join(domain.OrderStatuses, ", "),
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := requireSession(cmd.Context()); err != nil {
			return err
		}
		if err := app.orders.UpdateStatus(cmd.Context(), args[0], args[1]); err != nil {
			return err
		}
		app.printer.Success("order %s is now %s", args[0], args[1])
		return nil
	},
}

func init() {
	ordersListCmd.Flags().String("status", "", "only show orders in this status")

	ordersCmd.AddCommand(ordersListCmd)
	ordersCmd.AddCommand(ordersSetStatusCmd)
	rootCmd.AddCommand(ordersCmd)
}
