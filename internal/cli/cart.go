package cli

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"
)

var (
	addQuantity int
	addColor    string
)

var cartCmd = &cobra.Command{
	Use:   "cart",
	Short: "Show and edit the cart",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := newApp(cmd.Context())
		if err != nil {
			return err
		}
		printItems(a.cart.Items())
		return nil
	},
}

var cartAddCmd = &cobra.Command{
	Use:   "add <product-id>",
	Short: "Add a product to the cart",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		id, err := parseID(args[0])
		if err != nil {
			return err
		}
		a, err := newApp(cmd.Context())
		if err != nil {
			return err
		}
		product, err := a.catalog.Product(cmd.Context(), id)
		if err != nil {
			return err
		}
		if err := a.cart.Add(cmd.Context(), product, addQuantity, addColor); err != nil {
			return err
		}
		fmt.Printf("added %s\n", product.Name)
		printItems(a.cart.Items())
		return nil
	},
}

var cartRemoveCmd = &cobra.Command{
	Use:   "remove <item-id>",
	Short: "Remove a cart line",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		id, err := parseID(args[0])
		if err != nil {
			return err
		}
		a, err := newApp(cmd.Context())
		if err != nil {
			return err
		}
		if err := a.cart.Remove(cmd.Context(), id); err != nil {
			return err
		}
		printItems(a.cart.Items())
		return nil
	},
}

var cartQtyCmd = &cobra.Command{
	Use:   "qty <item-id> <quantity>",
	Short: "Change a line's quantity",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		id, err := parseID(args[0])
		if err != nil {
			return err
		}
		qty, err := strconv.Atoi(args[1])
		if err != nil {
			return fmt.Errorf("invalid quantity %q", args[1])
		}
		a, err := newApp(cmd.Context())
		if err != nil {
			return err
		}
		if err := a.cart.UpdateQuantity(cmd.Context(), id, qty); err != nil {
			return err
		}
		printItems(a.cart.Items())
		return nil
	},
}

var cartColorCmd = &cobra.Command{
	Use:   "color <item-id> <color>",
	Short: "Change a line's color variant",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		id, err := parseID(args[0])
		if err != nil {
			return err
		}
		a, err := newApp(cmd.Context())
		if err != nil {
			return err
		}
		if err := a.cart.UpdateColor(cmd.Context(), id, args[1]); err != nil {
			return err
		}
		printItems(a.cart.Items())
		return nil
	},
}

var cartToggleCmd = &cobra.Command{
	Use:   "toggle <item-id>",
	Short: "Toggle a line's checkout selection",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		id, err := parseID(args[0])
		if err != nil {
			return err
		}
		a, err := newApp(cmd.Context())
		if err != nil {
			return err
		}
		a.cart.ToggleSelection(id)
		printItems(a.cart.Items())
		return nil
	},
}

var cartClearCmd = &cobra.Command{
	Use:   "clear",
	Short: "Empty the cart",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := newApp(cmd.Context())
		if err != nil {
			return err
		}
		a.cart.Clear(cmd.Context())
		fmt.Println("cart cleared")
		return nil
	},
}

func parseID(s string) (int64, error) {
	id, err := strconv.ParseInt(s, 10, 64)
	if err != nil || id <= 0 {
		return 0, fmt.Errorf("invalid id %q", s)
	}
	return id, nil
}

func init() {
	cartAddCmd.Flags().IntVar(&addQuantity, "qty", 1, "quantity to add")
	cartAddCmd.Flags().StringVar(&addColor, "color", "", "color variant")

	cartCmd.AddCommand(cartAddCmd, cartRemoveCmd, cartQtyCmd, cartColorCmd, cartToggleCmd, cartClearCmd)
	rootCmd.AddCommand(cartCmd)
}
