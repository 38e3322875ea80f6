package cmd

import (
	"github.com/spf13/cobra"

	"github.com/freshcart/store-console/internal/core/ports"
)

var loginCmd = &cobra.Command{
	Use:   "login <username> <password>",
	Short: "Sign in and store the session token",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		identity, err := app.sessions.Login(cmd.Context(), ports.LoginInput{
			Username: args[0],
			Password: args[1],
		})
		if err != nil {
			return err
		}
		app.printer.Success("signed in as %s (%s)", identity.Username, identity.Role)
		return nil
	},
}

var logoutCmd = &cobra.Command{
	Use:   "logout",
	Short: "Sign out and clear the stored token and caches",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		app.sessions.Logout(cmd.Context())
		app.printer.Success("signed out")
		return nil
	},
}

var registerCmd = &cobra.Command{
	Use:   "register <username> <password>",
	Short: "Create an account and sign in",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		role, _ := cmd.Flags().GetString("role")
		identity, err := app.sessions.Register(cmd.Context(), ports.RegisterInput{
			Username: args[0],
			Password: args[1],
			Role:     role,
		})
		if err != nil {
			return err
		}
		app.printer.Success("account created for %s (%s)", identity.Username, identity.Role)
		return nil
	},
}

var whoamiCmd = &cobra.Command{
	Use:   "whoami",
	Short: "Show the signed-in identity",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := requireSession(cmd.Context()); err != nil {
			return err
		}
		identity := app.sessions.Session().Identity
		app.printer.Print("%s (%s)", identity.Username, identity.Role)
		return nil
	},
}

func init() {
	registerCmd.Flags().String("role", "", "account role: admin or user (default admin)")

	rootCmd.AddCommand(loginCmd)
	rootCmd.AddCommand(logoutCmd)
	rootCmd.AddCommand(registerCmd)
	rootCmd.AddCommand(whoamiCmd)
}
