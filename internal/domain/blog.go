package domain

import "time"

// Blog post kinds: authored in-app or backed by an uploaded PDF.
const (
	BlogTypeManual = "manual"
	BlogTypePDF    = "pdf"
)

// BlogPost is one article on the storefront blog. Unpublished posts are
// visible to staff only.
type BlogPost struct {
	ID            int64          `json:"id"`
	Title         string         `json:"title"`
	Slug          string         `json:"slug"`
	Type          string         `json:"blog_type"`
	Excerpt       string         `json:"excerpt,omitempty"`
	Content       string         `json:"content,omitempty"`
	FeaturedImage string         `json:"featured_image,omitempty"`
	PDFFile       string         `json:"pdf_file,omitempty"`
	PDFThumbnail  string         `json:"pdf_thumbnail,omitempty"`
	IsPublished   bool           `json:"is_published"`
	CreatedAt     time.Time      `json:"created_at,omitempty"`
	Images        []ProductImage `json:"images,omitempty"`
}

// DisplayImage picks the post's card image: the featured image for manual
// posts, the PDF thumbnail otherwise.
func (b BlogPost) DisplayImage() string {
	if b.Type == BlogTypePDF {
		return b.PDFThumbnail
	}
	return b.FeaturedImage
}
