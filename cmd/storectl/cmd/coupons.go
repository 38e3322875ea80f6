package cmd

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/freshcart/store-console/internal/core/ports"
	"github.com/freshcart/store-console/internal/output"
)

var couponsCmd = &cobra.Command{
	Use:   "coupons",
	Short: "Manage discount coupons",
}

var couponsListCmd = &cobra.Command{
	Use:   "list",
	Short: "List coupons",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := requireSession(cmd.Context()); err != nil {
			return err
		}
		items, err := app.coupons.List(cmd.Context())
		if err != nil {
			return err
		}

		now := time.Now()
		t := output.NewTable(app.printer.Out(), []string{"ID", "Code", "Discount", "Used", "Expires", "State"})
		for _, c := range items {
			state := "active"
			switch {
			case !c.IsActive:
				state = "disabled"
			case c.Expired(now):
				state = "expired"
			case c.Exhausted():
				state = "exhausted"
			}
			t.AddRow([]string{
				c.ID, c.Code,
				fmt.Sprintf("%d%%", c.Discount),
				fmt.Sprintf("%d/%d", c.UsageCount, c.UsageLimit),
				c.ExpiryDate.Format("2006-01-02"),
				state,
			})
		}
		t.Render()
		return nil
	},
}

var couponsAddCmd = &cobra.Command{
	Use:   "add <code> <name>",
	Short: "Add a coupon",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := requireSession(cmd.Context()); err != nil {
			return err
		}
		discount, _ := cmd.Flags().GetInt("discount")
		limit, _ := cmd.Flags().GetInt("limit")
		expires, _ := cmd.Flags().GetString("expires")

		expiry, err := time.Parse("2006-01-02", expires)
		if err != nil {
			return fmt.Errorf("invalid --expires date, want YYYY-MM-DD: %w", err)
		}
		input := ports.CouponInput{
			Code:       args[0],
			Name:       args[1],
			Discount:   discount,
			UsageLimit: limit,
			ExpiryDate: expiry,
			IsActive:   true,
		}
		if err := app.coupons.Create(cmd.Context(), input); err != nil {
			return err
		}
		app.printer.Success("coupon %s created", input.Code)
		return nil
	},
}

var couponsEnableCmd = &cobra.Command{
	Use:   "enable <id>",
	Short: "Enable a coupon",
	Args:  cobra.ExactArgs(1),
	RunE:  func(cmd *cobra.Command, args []string) error { return setCouponActive(cmd, args[0], true) },
}

var couponsDisableCmd = &cobra.Command{
	Use:   "disable <id>",
	Short: "Disable a coupon",
	Args:  cobra.ExactArgs(1),
	RunE:  func(cmd *cobra.Command, args []string) error { return setCouponActive(cmd, args[0], false) },
}

var couponsDeleteCmd = &cobra.Command{
	Use:   "delete <id>",
	Short: "Delete a coupon",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := requireSession(cmd.Context()); err != nil {
			return err
		}
		if err := app.coupons.Delete(cmd.Context(), args[0]); err != nil {
			return err
		}
		app.printer.Success("coupon %s deleted", args[0])
		return nil
	},
}

func setCouponActive(cmd *cobra.Command, id string, active bool) error {
	if err := requireSession(cmd.Context()); err != nil {
		return err
	}
	if err := app.coupons.SetActive(cmd.Context(), id, active); err != nil {
		return err
	}
	word := "enabled"
	if !active {
		word = "disabled"
	}
	app.printer.Success("coupon %s %s", id, word)
	return nil
}

func init() {
	couponsAddCmd.Flags().Int("discount", 10, "discount percentage (1-100)")
	couponsAddCmd.Flags().Int("limit", 100, "usage limit")
	couponsAddCmd.Flags().String("expires", "", "expiry date, YYYY-MM-DD")
	_ = couponsAddCmd.MarkFlagRequired("expires")

	couponsCmd.AddCommand(couponsListCmd)
	couponsCmd.AddCommand(couponsAddCmd)
	couponsCmd.AddCommand(couponsEnableCmd)
	couponsCmd.AddCommand(couponsDisableCmd)
	couponsCmd.AddCommand(couponsDeleteCmd)
	rootCmd.AddCommand(couponsCmd)
}
