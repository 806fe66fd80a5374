package stubapi

import (
	"net/http"
	"strings"

	"furnistore/internal/domain"

	"github.com/gin-gonic/gin"
)

func listBlogsHandler(store *memoryStore) gin.HandlerFunc {
	return func(c *gin.Context) {
		staff := isStaff(c)
		posts := store.listBlogs(staff)
		if slug := c.Query("slug"); slug != "" {
			matched := make([]domain.BlogPost, 0, 1)
			for _, b := range posts {
				if b.Slug == slug {
					matched = append(matched, b)
				}
			}
			posts = matched
		}
		c.JSON(http.StatusOK, posts)
	}
}

func getBlogHandler(store *memoryStore) gin.HandlerFunc {
	return func(c *gin.Context) {
		post, ok := store.blogByID(pathID(c))
		if !ok || (!post.IsPublished && !isStaff(c)) {
			c.JSON(http.StatusNotFound, gin.H{"detail": "blog not found"})
			return
		}
		c.JSON(http.StatusOK, post)
	}
}

func createBlogHandler(store *memoryStore) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req domain.BlogPost
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"detail": "invalid request body"})
			return
		}
		req.Title = strings.TrimSpace(req.Title)
		if req.Title == "" {
			c.JSON(http.StatusBadRequest, gin.H{"detail": "title required"})
			return
		}
		switch req.Type {
		case "":
			req.Type = domain.BlogTypeManual
		case domain.BlogTypeManual, domain.BlogTypePDF:
		default:
			c.JSON(http.StatusBadRequest, gin.H{"detail": "unsupported blog type"})
			return
		}
		if req.Slug == "" {
			req.Slug = slugify(req.Title)
		}
		if _, exists := store.blogBySlug(req.Slug); exists {
			c.JSON(http.StatusConflict, gin.H{"detail": "slug already in use"})
			return
		}
		c.JSON(http.StatusCreated, store.createBlog(req))
	}
}

func updateBlogHandler(store *memoryStore) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req struct {
			Title         *string `json:"title"`
			Excerpt       *string `json:"excerpt"`
			Content       *string `json:"content"`
			FeaturedImage *string `json:"featured_image"`
			IsPublished   *bool   `json:"is_published"`
		}
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"detail": "invalid request body"})
			return
		}
		post, ok := store.updateBlog(pathID(c), func(b *domain.BlogPost) {
			if req.Title != nil {
				b.Title = *req.Title
			}
			if req.Excerpt != nil {
				b.Excerpt = *req.Excerpt
			}
			if req.Content != nil {
				b.Content = *req.Content
			}
			if req.FeaturedImage != nil {
				b.FeaturedImage = *req.FeaturedImage
			}
			if req.IsPublished != nil {
				b.IsPublished = *req.IsPublished
			}
		})
		if !ok {
			c.JSON(http.StatusNotFound, gin.H{"detail": "blog not found"})
			return
		}
		c.JSON(http.StatusOK, post)
	}
}

func deleteBlogHandler(store *memoryStore) gin.HandlerFunc {
	return func(c *gin.Context) {
		if !store.deleteBlog(pathID(c)) {
			c.JSON(http.StatusNotFound, gin.H{"detail": "blog not found"})
			return
		}
		c.Status(http.StatusNoContent)
	}
}

func isStaff(c *gin.Context) bool {
	a := currentAccount(c)
	return a != nil && a.IsStaff
}

// slugify derives a URL slug from a title the way the storefront expects:
// lowercase words joined by hyphens, everything else stripped.
func slugify(title string) string {
	var b strings.Builder
	lastHyphen := true
	for _, r := range strings.ToLower(title) {
		switch {
		case r >= 'a' && r <= 'z' || r >= '0' && r <= '9':
			b.WriteRune(r)
			lastHyphen = false
		case !lastHyphen:
			b.WriteByte('-')
			lastHyphen = true
		}
	}
	return strings.Trim(b.String(), "-")
}
