package cmd

import (
	"github.com/spf13/cobra"

	"github.com/freshcart/store-console/internal/core/ports"
)

var settingsCmd = &cobra.Command{
	Use:   "settings",
	Short: "View and update the store profile",
}

var settingsShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Show the store profile",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := requireSession(cmd.Context()); err != nil {
			return err
		}
		s, err := app.settings.Get(cmd.Context())
		if err != nil {
			return err
		}
		app.printer.Print("Store name:     %s", s.StoreName)
		app.printer.Print("Description:    %s", s.Description)
		app.printer.Print("Address:        %s", s.Address)
		app.printer.Print("Contact email:  %s", s.ContactEmail)
		app.printer.Print("Contact phone:  %s", s.ContactPhone)
		return nil
	},
}

var settingsSaveCmd = &cobra.Command{
	Use:   "save",
	Short: "Update the store profile",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := requireSession(cmd.Context()); err != nil {
			return err
		}
		var input ports.SettingsInput
		input.StoreName, _ = cmd.Flags().GetString("name")
		input.Description, _ = cmd.Flags().GetString("description")
		input.Address, _ = cmd.Flags().GetString("address")
		input.ContactEmail, _ = cmd.Flags().GetString("email")
		input.ContactPhone, _ = cmd.Flags().GetString("phone")

		s, err := app.settings.Save(cmd.Context(), input)
		if err != nil {
			return err
		}
		app.printer.Success("settings saved for %s", s.StoreName)
		return nil
	},
}

func init() {
	settingsSaveCmd.Flags().String("name", "", "store name")
	settingsSaveCmd.Flags().String("description", "", "store description")
	settingsSaveCmd.Flags().String("address", "", "street address")
	settingsSaveCmd.Flags().String("email", "", "contact email")
	settingsSaveCmd.Flags().String("phone", "", "contact phone")
	_ = settingsSaveCmd.MarkFlagRequired("name")

	settingsCmd.AddCommand(settingsShowCmd)
	settingsCmd.AddCommand(settingsSaveCmd)
	rootCmd.AddCommand(settingsCmd)
}
