package cli

import (
	"fmt"
	"strconv"

	"furnistore/internal/domain"

	"github.com/spf13/cobra"
)

var blogsCmd = &cobra.Command{
	Use:   "blogs",
	Short: "List blog posts",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := newApp(cmd.Context())
		if err != nil {
			return err
		}
		posts, err := a.api.Blogs(cmd.Context())
		if err != nil {
			return err
		}
		if len(posts) == 0 {
			fmt.Println("no blog posts")
			return nil
		}
		for _, p := range posts {
			state := ""
			if !p.IsPublished {
				state = " [draft]"
			}
			fmt.Printf("#%-4d %-40s %-8s %s%s\n",
				p.ID, p.Title, p.Type, p.CreatedAt.Format("2006-01-02"), state)
			if p.Excerpt != "" {
				fmt.Printf("      %s\n", p.Excerpt)
			}
		}
		return nil
	},
}

var blogCmd = &cobra.Command{
	Use:   "blog <id-or-slug>",
	Short: "Read one blog post",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := newApp(cmd.Context())
		if err != nil {
			return err
		}

		var post domain.BlogPost
		if id, idErr := strconv.ParseInt(args[0], 10, 64); idErr == nil && id > 0 {
			post, err = a.api.Blog(cmd.Context(), id)
		} else {
			post, err = a.api.BlogBySlug(cmd.Context(), args[0])
		}
		if err != nil {
			return err
		}

		fmt.Printf("%s (%s)\n", post.Title, post.CreatedAt.Format("January 2, 2006"))
		if post.Type == domain.BlogTypePDF {
			fmt.Printf("download: %s\n", post.PDFFile)
			return nil
		}
		if post.Content != "" {
			fmt.Println()
			fmt.Println(post.Content)
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(blogsCmd, blogCmd)
}
