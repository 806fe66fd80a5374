package cli

import (
	"fmt"

	"furnistore/internal/domain"

	"github.com/spf13/cobra"
)

var adminCmd = &cobra.Command{
	Use:   "admin",
	Short: "Staff management commands",
}

var adminOrdersCmd = &cobra.Command{
	Use:   "orders",
	Short: "List all orders",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := newApp(cmd.Context())
		if err != nil {
			return err
		}
		orders, err := a.admin.Orders(cmd.Context())
		if err != nil {
			return err
		}
		if len(orders) == 0 {
			fmt.Println("no orders")
			return nil
		}
		for _, o := range orders {
			fmt.Printf("#%-4d %-10s %-16s total %.2f\n", o.ID, o.Status, o.Customer, o.Total)
		}
		return nil
	},
}

var adminOrderCmd = &cobra.Command{
	Use:   "order <id>",
	Short: "Show one order",
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
		order, err := a.admin.Order(cmd.Context(), id)
		if err != nil {
			return err
		}
		printOrder(order)
		return nil
	},
}

var adminMarkPaidCmd = &cobra.Command{
	Use:   "mark-paid <id>",
	Short: "Mark an order paid",
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
		order, err := a.admin.MarkPaid(cmd.Context(), id)
		if err != nil {
			return err
		}
		printOrder(order)
		return nil
	},
}

var adminMarkShippedCmd = &cobra.Command{
	Use:   "mark-shipped <id>",
	Short: "Mark an order shipped",
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
		order, err := a.admin.MarkShipped(cmd.Context(), id)
		if err != nil {
			return err
		}
		printOrder(order)
		return nil
	},
}

var adminSubscribersCmd = &cobra.Command{
	Use:   "subscribers",
	Short: "List newsletter subscribers",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := newApp(cmd.Context())
		if err != nil {
			return err
		}
		subs, err := a.admin.Subscribers(cmd.Context())
		if err != nil {
			return err
		}
		if len(subs) == 0 {
			fmt.Println("no subscribers")
			return nil
		}
		for _, s := range subs {
			state := "active"
			if !s.IsActive {
				state = "inactive"
			}
			fmt.Printf("#%-4d %-32s %s\n", s.ID, s.Email, state)
		}
		return nil
	},
}

var adminToggleSubscriberCmd = &cobra.Command{
	Use:   "toggle-subscriber <id>",
	Short: "Flip a subscriber between active and inactive",
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
		subs, err := a.admin.Subscribers(cmd.Context())
		if err != nil {
			return err
		}
		for _, s := range subs {
			if s.ID == id {
				if err := a.admin.ToggleSubscriber(cmd.Context(), s); err != nil {
					return err
				}
				fmt.Printf("subscriber #%d toggled\n", id)
				return nil
			}
		}
		return fmt.Errorf("subscriber %d not found", id)
	},
}

var adminRemoveSubscriberCmd = &cobra.Command{
	Use:   "remove-subscriber <id>",
	Short: "Delete a subscriber",
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
		if err := a.admin.RemoveSubscriber(cmd.Context(), id); err != nil {
			return err
		}
		fmt.Printf("subscriber #%d removed\n", id)
		return nil
	},
}

var blogInput domain.BlogPost

var adminCreateBlogCmd = &cobra.Command{
	Use:   "create-blog",
	Short: "Create a blog post",
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := newApp(cmd.Context())
		if err != nil {
			return err
		}
		post, err := a.admin.CreateBlogPost(cmd.Context(), blogInput)
		if err != nil {
			return err
		}
		state := "draft"
		if post.IsPublished {
			state = "published"
		}
		fmt.Printf("created blog post #%d %q (%s)\n", post.ID, post.Title, state)
		return nil
	},
}

var adminPublishBlogCmd = &cobra.Command{
	Use:   "publish-blog <id>",
	Short: "Publish a blog post",
	Args:  cobra.ExactArgs(1),
	RunE:  setBlogPublished(true),
}

var adminUnpublishBlogCmd = &cobra.Command{
	Use:   "unpublish-blog <id>",
	Short: "Take a blog post offline",
	Args:  cobra.ExactArgs(1),
	RunE:  setBlogPublished(false),
}

func setBlogPublished(published bool) func(*cobra.Command, []string) error {
	return func(cmd *cobra.Command, args []string) error {
		id, err := parseID(args[0])
		if err != nil {
			return err
		}
		a, err := newApp(cmd.Context())
		if err != nil {
			return err
		}
		post, err := a.admin.SetBlogPublished(cmd.Context(), id, published)
		if err != nil {
			return err
		}
		state := "draft"
		if post.IsPublished {
			state = "published"
		}
		fmt.Printf("blog post #%d is now %s\n", post.ID, state)
		return nil
	}
}

var adminRemoveBlogCmd = &cobra.Command{
	Use:   "remove-blog <id>",
	Short: "Delete a blog post",
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
		if err := a.admin.RemoveBlogPost(cmd.Context(), id); err != nil {
			return err
		}
		fmt.Printf("blog post #%d removed\n", id)
		return nil
	},
}

func init() {
	adminCreateBlogCmd.Flags().StringVar(&blogInput.Title, "title", "", "post title")
	adminCreateBlogCmd.Flags().StringVar(&blogInput.Excerpt, "excerpt", "", "short summary")
	adminCreateBlogCmd.Flags().StringVar(&blogInput.Content, "content", "", "post body")
	adminCreateBlogCmd.Flags().BoolVar(&blogInput.IsPublished, "publish", false, "publish immediately")
	_ = adminCreateBlogCmd.MarkFlagRequired("title")

	adminCmd.AddCommand(
		adminOrdersCmd, adminOrderCmd, adminMarkPaidCmd, adminMarkShippedCmd,
		adminSubscribersCmd, adminToggleSubscriberCmd, adminRemoveSubscriberCmd,
		adminCreateBlogCmd, adminPublishBlogCmd, adminUnpublishBlogCmd, adminRemoveBlogCmd,
	)
	rootCmd.AddCommand(adminCmd)
}
