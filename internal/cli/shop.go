package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
)

var productsCmd = &cobra.Command{
	Use:   "products",
	Short: "List the catalog",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := newApp(cmd.Context())
		if err != nil {
			return err
		}
		products, err := a.catalog.Products(cmd.Context())
		if err != nil {
			return err
		}
		for _, p := range products {
			price := fmt.Sprintf("%.2f", p.Price)
			if p.DiscountPrice > 0 {
				price = fmt.Sprintf("%.2f (was %.2f)", p.DiscountPrice, p.Price)
			}
			fmt.Printf("#%-4d %-32s %-22s colors: %s\n",
				p.ID, p.Name, price, strings.Join(p.Colors(), ", "))
		}
		return nil
	},
}

var productCmd = &cobra.Command{
	Use:   "product <id>",
	Short: "Show one product",
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
		p, err := a.catalog.Product(cmd.Context(), id)
		if err != nil {
			return err
		}
		fmt.Printf("#%d %s\n", p.ID, p.Name)
		if p.Description != "" {
			fmt.Println(p.Description)
		}
		if p.DiscountPrice > 0 {
			fmt.Printf("price: %.2f (was %.2f)\n", p.DiscountPrice, p.Price)
		} else {
			fmt.Printf("price: %.2f\n", p.Price)
		}
		if p.DeliveryCharge > 0 {
			fmt.Printf("delivery: %.2f\n", p.DeliveryCharge)
		}
		fmt.Printf("colors: %s\n", strings.Join(p.Colors(), ", "))
		return nil
	},
}

var categoriesCmd = &cobra.Command{
	Use:   "categories",
	Short: "Show the category tree",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := newApp(cmd.Context())
		if err != nil {
			return err
		}
		categories, err := a.catalog.Categories(cmd.Context())
		if err != nil {
			return err
		}
		for _, c := range categories {
			fmt.Printf("%s (%s)\n", c.Name, c.Slug)
			for _, sub := range c.Subcategories {
				fmt.Printf("  %s (%s)\n", sub.Name, sub.Slug)
			}
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(productsCmd, productCmd, categoriesCmd)
}
