package cmd

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/freshcart/store-console/internal/core/ports"
	"github.com/freshcart/store-console/internal/output"
)

var productsCmd = &cobra.Command{
	Use:   "products",
	Short: "Manage the product catalog",
}

var productsListCmd = &cobra.Command{
	Use:   "list",
	Short: "List products",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := requireSession(cmd.Context()); err != nil {
			return err
		}
		fresh, _ := cmd.Flags().GetBool("fresh")

		list := app.products.List
		if fresh {
			list = app.products.Refetch
		}
		items, err := list(cmd.Context())
		if err != nil {
			return err
		}

		t := output.NewTable(app.printer.Out(), []string{"ID", "Name", "SKU", "Category", "Price", "Qty", "Active"})
		for _, p := range items {
			t.AddRow([]string{
				p.ID, p.Name, p.SKU, p.Category,
				fmt.Sprintf("$%.2f", p.Price),
				strconv.Itoa(p.Quantity),
				boolWord(p.IsActive),
			})
		}
		t.Render()
		return nil
	},
}

var productsAddCmd = &cobra.Command{
	Use:   "add <name>",
	Short: "Add a product",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := requireSession(cmd.Context()); err != nil {
			return err
		}
		input := ports.ProductInput{Name: args[0], IsActive: true}
		input.Description, _ = cmd.Flags().GetString("description")
		input.Price, _ = cmd.Flags().GetFloat64("price")
		input.Quantity, _ = cmd.Flags().GetInt("quantity")
		input.Category, _ = cmd.Flags().GetString("category")
		input.SKU, _ = cmd.Flags().GetString("sku")
		input.Barcode, _ = cmd.Flags().GetString("barcode")
		input.ImagePath, _ = cmd.Flags().GetString("image")

		if err := app.products.Create(cmd.Context(), input); err != nil {
			return err
		}
		app.printer.Success("product %q created", input.Name)
		return nil
	},
}

var productsUpdateCmd = &cobra.Command{
	Use:   "update <id> <name>",
	Short: "Update a product",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := requireSession(cmd.Context()); err != nil {
			return err
		}
		input := ports.ProductInput{Name: args[1]}
		input.Description, _ = cmd.Flags().GetString("description")
		input.Price, _ = cmd.Flags().GetFloat64("price")
		input.Quantity, _ = cmd.Flags().GetInt("quantity")
		input.Category, _ = cmd.Flags().GetString("category")
		input.SKU, _ = cmd.Flags().GetString("sku")
		input.IsActive, _ = cmd.Flags().GetBool("active")

		if err := app.products.Update(cmd.Context(), args[0], input); err != nil {
			return err
		}
		app.printer.Success("product %s updated", args[0])
		return nil
	},
}

var productsDeleteCmd = &cobra.Command{
	Use:   "delete <id>",
	Short: "Delete a product",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := requireSession(cmd.Context()); err != nil {
			return err
		}
		if err := app.products.Delete(cmd.Context(), args[0]); err != nil {
			return err
		}
		app.printer.Success("product %s deleted", args[0])
		return nil
	},
}

func addProductFlags(c *cobra.Command) {
	c.Flags().String("description", "", "product description")
	c.Flags().Float64("price", 0, "unit price")
	c.Flags().Int("quantity", 0, "stock quantity")
	c.Flags().String("category", "", "category name")
	c.Flags().String("sku", "", "stock keeping unit")
}

func boolWord(b bool) string {
	if b {
		return "yes"
	}
	return "no"
}

func init() {
	addProductFlags(productsAddCmd)
	productsAddCmd.Flags().String("barcode", "", "barcode")
	productsAddCmd.Flags().String("image", "", "path to a product image to upload")

	addProductFlags(productsUpdateCmd)
	productsUpdateCmd.Flags().Bool("active", true, "whether the product is active")

	productsListCmd.Flags().Bool("fresh", false, "bypass the cache and refetch")

	productsCmd.AddCommand(productsListCmd)
	productsCmd.AddCommand(productsAddCmd)
	productsCmd.AddCommand(productsUpdateCmd)
	productsCmd.AddCommand(productsDeleteCmd)
	rootCmd.AddCommand(productsCmd)
}
