// Package cli implements the storefront command tree.
package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "storefront",
	Short: "Furnistore storefront client",
	Long: `Furnistore is a furniture shop client. It browses the catalog, keeps a
local cart for guests, reconciles it against the server cart when logged in,
and walks orders through the review, shipping and confirm steps.`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

// Execute runs the root command.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}
