package cli

import (
	"fmt"

	"furnistore/internal/api"

	"github.com/spf13/cobra"
)

var registerInput api.RegisterInput

var loginCmd = &cobra.Command{
	Use:   "login <username> <password>",
	Short: "Log in and store the session tokens",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := newApp(cmd.Context())
		if err != nil {
			return err
		}
		if err := a.session.Login(cmd.Context(), args[0], args[1]); err != nil {
			return err
		}
		id := a.session.Current()
		fmt.Printf("logged in as %s\n", id.DisplayName())
		return nil
	},
}

var registerCmd = &cobra.Command{
	Use:   "register",
	Short: "Create an account and log in",
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := newApp(cmd.Context())
		if err != nil {
			return err
		}
		if err := a.session.Register(cmd.Context(), registerInput); err != nil {
			return err
		}
		fmt.Printf("registered and logged in as %s\n", a.session.Current().DisplayName())
		return nil
	},
}

var logoutCmd = &cobra.Command{
	Use:   "logout",
	Short: "Drop the stored session",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := newApp(cmd.Context())
		if err != nil {
			return err
		}
		a.session.Logout()
		fmt.Println("logged out")
		return nil
	},
}

var whoamiCmd = &cobra.Command{
	Use:   "whoami",
	Short: "Show the current identity",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := newApp(cmd.Context())
		if err != nil {
			return err
		}
		id := a.session.Current()
		if id == nil {
			fmt.Println("browsing as guest")
			return nil
		}
		fmt.Printf("%s <%s>", id.DisplayName(), id.Email)
		if id.IsStaff {
			fmt.Print(" (staff)")
		}
		fmt.Println()
		return nil
	},
}

func init() {
	registerCmd.Flags().StringVar(&registerInput.Username, "username", "", "account username")
	registerCmd.Flags().StringVar(&registerInput.Email, "email", "", "account email")
	registerCmd.Flags().StringVar(&registerInput.Password, "password", "", "account password")
	registerCmd.Flags().StringVar(&registerInput.FirstName, "first-name", "", "first name")
	registerCmd.Flags().StringVar(&registerInput.LastName, "last-name", "", "last name")
	_ = registerCmd.MarkFlagRequired("username")
	_ = registerCmd.MarkFlagRequired("email")
	_ = registerCmd.MarkFlagRequired("password")

	rootCmd.AddCommand(loginCmd, registerCmd, logoutCmd, whoamiCmd)
}
