package cmd

import (
	"github.com/spf13/cobra"

	"github.com/freshcart/store-console/internal/core/ports"
	"github.com/freshcart/store-console/internal/output"
)

var categoriesCmd = &cobra.Command{
	Use:   "categories",
	Short: "Manage product categories",
}

var categoriesListCmd = &cobra.Command{
	Use:   "list",
	Short: "List categories",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := requireSession(cmd.Context()); err != nil {
			return err
		}
		items, err := app.categories.List(cmd.Context())
		if err != nil {
			return err
		}

		t := output.NewTable(app.printer.Out(), []string{"ID", "Name", "Description"})
		for _, c := range items {
			t.AddRow([]string{c.ID, c.Name, c.Description})
		}
		t.Render()
		return nil
	},
}

var categoriesAddCmd = &cobra.Command{
	Use:   "add <name>",
	Short: "Add a category",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := requireSession(cmd.Context()); err != nil {
			return err
		}
		description, _ := cmd.Flags().GetString("description")
		input := ports.CategoryInput{Name: args[0], Description: description}
		if err := app.categories.Create(cmd.Context(), input); err != nil {
			return err
		}
		app.printer.Success("category %q created", input.Name)
		return nil
	},
}

var categoriesDeleteCmd = &cobra.Command{
	Use:   "delete <id>",
	Short: "Delete a category",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := requireSession(cmd.Context()); err != nil {
			return err
		}
		if err := app.categories.Delete(cmd.Context(), args[0]); err != nil {
			return err
		}
		app.printer.Success("category %s deleted", args[0])
		return nil
	},
}

func init() {
	categoriesAddCmd.Flags().String("description", "", "category description")

	categoriesCmd.AddCommand(categoriesListCmd)
	categoriesCmd.AddCommand(categoriesAddCmd)
	categoriesCmd.AddCommand(categoriesDeleteCmd)
	rootCmd.AddCommand(categoriesCmd)
}
