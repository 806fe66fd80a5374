package cli

import (
	"fmt"

	"furnistore/internal/checkout"
	"furnistore/internal/domain"

	"github.com/spf13/cobra"
)

var shippingInput domain.Shipping

var checkoutCmd = &cobra.Command{
	Use:   "checkout",
	Short: "Order the selected cart items",
	Long: `Checkout walks the selected cart lines through the review, shipping and
confirm steps and creates an order. All cart lines are selected after a fresh
load; use "cart toggle" to leave some behind.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := newApp(cmd.Context())
		if err != nil {
			return err
		}

		flow := checkout.New(a.cart, a.session, a.api, a.logger)
		if err := flow.ProceedToShipping(); err != nil {
			return err
		}
		if err := flow.ProceedToConfirm(shippingInput); err != nil {
			return err
		}

		t := flow.Totals()
		fmt.Printf("confirming: subtotal %.2f  delivery %.2f  total %.2f\n",
			domain.RoundMoney(t.Subtotal), domain.RoundMoney(t.Delivery), domain.RoundMoney(t.Total))

		order, err := flow.Confirm(cmd.Context())
		if err != nil {
			return err
		}
		printOrder(order)
		return nil
	},
}

func init() {
	checkoutCmd.Flags().StringVar(&shippingInput.Phone, "phone", "", "contact phone")
	checkoutCmd.Flags().StringVar(&shippingInput.Address, "address", "", "delivery address")
	checkoutCmd.Flags().StringVar(&shippingInput.City, "city", "", "delivery city")
	checkoutCmd.Flags().StringVar(&shippingInput.PostalCode, "postal", "", "postal code")

	rootCmd.AddCommand(checkoutCmd)
}
