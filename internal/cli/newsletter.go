package cli

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/cobra"
)

var subscribeCmd = &cobra.Command{
	Use:   "subscribe <email>",
	Short: "Subscribe to the newsletter",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		email := strings.TrimSpace(args[0])
		if !strings.Contains(email, "@") {
			return errors.New("valid email required")
		}
		a, err := newApp(cmd.Context())
		if err != nil {
			return err
		}
		if err := a.api.Subscribe(cmd.Context(), email); err != nil {
			return err
		}
		fmt.Printf("subscribed %s\n", email)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(subscribeCmd)
}
