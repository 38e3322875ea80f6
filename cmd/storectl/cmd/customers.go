package cmd

import (
	"github.com/spf13/cobra"

	"github.com/freshcart/store-console/internal/core/ports"
	"github.com/freshcart/store-console/internal/output"
)

var customersCmd = &cobra.Command{
	Use:   "customers",
	Short: "Manage customers",
}

var customersListCmd = &cobra.Command{
	Use:   "list",
	Short: "List customers",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := requireSession(cmd.Context()); err != nil {
			return err
		}
		items, err := app.customers.List(cmd.Context())
		if err != nil {
			return err
		}

		t := output.NewTable(app.printer.Out(), []string{"ID", "Name", "Email", "Phone", "Active"})
		for _, c := range items {
			t.AddRow([]string{c.ID, c.Name, c.Email, c.Phone, boolWord(c.IsActive)})
		}
		t.Render()
		return nil
	},
}

var customersAddCmd = &cobra.Command{
	Use:   "add <name> <email>",
	Short: "Add a customer",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := requireSession(cmd.Context()); err != nil {
			return err
		}
		phone, _ := cmd.Flags().GetString("phone")
		input := ports.CustomerInput{Name: args[0], Email: args[1], Phone: phone, IsActive: true}
		if err := app.customers.Create(cmd.Context(), input); err != nil {
			return err
		}
		app.printer.Success("customer %q created", input.Name)
		return nil
	},
}

var customersDeleteCmd = &cobra.Command{
	Use:   "delete <id>",
	Short: "Delete a customer",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := requireSession(cmd.Context()); err != nil {
			return err
		}
		if err := app.customers.Delete(cmd.Context(), args[0]); err != nil {
			return err
		}
		app.printer.Success("customer %s deleted", args[0])
		return nil
	},
}

func init() {
	customersAddCmd.Flags().String("phone", "", "phone number")

	customersCmd.AddCommand(customersListCmd)
	customersCmd.AddCommand(customersAddCmd)
	customersCmd.AddCommand(customersDeleteCmd)
	rootCmd.AddCommand(customersCmd)
}
