package domain

// ProductImage is one catalog photo, optionally bound to a color variant.
type ProductImage struct {
	ID      int64  `json:"id,omitempty"`
	URL     string `json:"image"`
	Color   string `json:"color,omitempty"`
	AltText string `json:"alt_text,omitempty"`
}

// Product mirrors the catalog payload returned by the storefront API.
type Product struct {
	ID             int64          `json:"id"`
	Name           string         `json:"name"`
	Description    string         `json:"description,omitempty"`
	Price          float64        `json:"price"`
	DiscountPrice  float64        `json:"discount_price,omitempty"`
	DeliveryCharge float64        `json:"delivery_charges,omitempty"`
	CategoryID     int64          `json:"category,omitempty"`
	Image          string         `json:"image,omitempty"`
	Images         []ProductImage `json:"images,omitempty"`
}

// ImageFor resolves the display image for a color variant, falling back to
// the product's main image when no variant photo matches.
func (p Product) ImageFor(color string) string {
	for _, img := range p.Images {
		if img.Color == color {
			return img.URL
		}
	}
	return p.Image
}

// Colors lists the variant labels available for the product. Products
// without per-color photos offer only the default variant.
func (p Product) Colors() []string {
	if len(p.Images) == 0 {
		return []string{DefaultColor}
	}
	seen := make(map[string]bool)
	var colors []string
	for _, img := range p.Images {
		c := img.Color
		if c == "" {
			c = DefaultColor
		}
		if !seen[c] {
			seen[c] = true
			colors = append(colors, c)
		}
	}
	return colors
}

// Subcategory is a child entry in the navigation tree.
type Subcategory struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
	Slug string `json:"slug,omitempty"`
}

// Category groups products for navigation and admin management.
type Category struct {
	ID            int64         `json:"id"`
	Name          string        `json:"name"`
	Slug          string        `json:"slug,omitempty"`
	Subcategories []Subcategory `json:"subcategories,omitempty"`
}
