package commands

import (
	"fmt"

	"github.com/spf13/cobra"
)

var loginCmd = &cobra.Command{
	Use:   "login <email> <password>",
	Short: "Log in",
	Long: `Log in with any email and password. The username is the part of the
email before '@'.`,
	Args: cobra.ExactArgs(2),
	RunE: withStore(func(cmd *cobra.Command, args []string, a *app) error {
		user, err := a.store.Login(args[0], args[1])
		if err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "👋 Logged in as %s\n", user.Username)
		return nil
	}),
}

var logoutCmd = &cobra.Command{
	Use:   "logout",
	Short: "Log out (tasks are kept)",
	Args:  cobra.NoArgs,
	RunE: withStore(func(cmd *cobra.Command, args []string, a *app) error {
		a.store.Logout()
		fmt.Fprintln(cmd.OutOrStdout(), "Logged out")
		return nil
	}),
}

var whoamiCmd = &cobra.Command{
	Use:   "whoami",
	Short: "Show the logged in user",
	Args:  cobra.NoArgs,
	RunE: withStore(func(cmd *cobra.Command, args []string, a *app) error {
		user, ok := a.store.User()
		if !ok {
			fmt.Fprintln(cmd.OutOrStdout(), "Not logged in. Use 'myday login <email> <password>'.")
			return nil
		}
		fmt.Fprintf(cmd.OutOrStdout(), "%s <%s> (id %s)\n", user.Username, user.Email, user.ID)
		return nil
	}),
}
