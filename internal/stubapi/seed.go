package stubapi

import (
	"time"

	"furnistore/internal/domain"
)

// seed loads a small furniture catalog and demo accounts so the CLI has
// something to browse out of the box.
func (s *memoryStore) seed() {
	s.categories = []domain.Category{
		{
			ID: 1, Name: "Living Room", Slug: "living-room",
			Subcategories: []domain.Subcategory{
				{ID: 11, Name: "Sofas", Slug: "sofas"},
				{ID: 12, Name: "Coffee Tables", Slug: "coffee-tables"},
			},
		},
		{
			ID: 2, Name: "Bedroom", Slug: "bedroom",
			Subcategories: []domain.Subcategory{
				{ID: 21, Name: "Beds", Slug: "beds"},
				{ID: 22, Name: "Wardrobes", Slug: "wardrobes"},
			},
		},
		{ID: 3, Name: "Dining", Slug: "dining"},
	}

	s.products = []domain.Product{
		{
			ID:             1,
			Name:           "Marlow Three-Seater Sofa",
			Description:    "Deep-cushioned sofa with solid beech legs",
			Price:          2499,
			DiscountPrice:  1999,
			DeliveryCharge: 120,
			CategoryID:     1,
			Image:          "/media/products/marlow-sofa.jpg",
			Images: []domain.ProductImage{
				{ID: 1, URL: "/media/products/marlow-sofa-sand.jpg", Color: "Sand"},
				{ID: 2, URL: "/media/products/marlow-sofa-slate.jpg", Color: "Slate"},
			},
		},
		{
			ID:             2,
			Name:           "Haldon Oak Dining Table",
			Description:    "Six-seat extendable table in oiled oak",
			Price:          1299,
			DeliveryCharge: 90,
			CategoryID:     3,
			Image:          "/media/products/haldon-table.jpg",
		},
		{
			ID:            3,
			Name:          "Nyla Bed Frame",
			Description:   "Upholstered king frame with storage drawers",
			Price:         899,
			DiscountPrice: 749,
			CategoryID:    2,
			Image:         "/media/products/nyla-bed.jpg",
			Images: []domain.ProductImage{
				{ID: 3, URL: "/media/products/nyla-bed-grey.jpg", Color: "Grey"},
				{ID: 4, URL: "/media/products/nyla-bed-navy.jpg", Color: "Navy"},
			},
		},
		{
			ID:         4,
			Name:       "Fen Side Table",
			Price:      149,
			CategoryID: 1,
			Image:      "/media/products/fen-side-table.jpg",
		},
	}

	for _, post := range []domain.BlogPost{
		{
			Title:         "Caring for Solid Oak Furniture",
			Slug:          "caring-for-solid-oak-furniture",
			Type:          domain.BlogTypeManual,
			Excerpt:       "Keep oiled oak looking new with a seasonal routine.",
			Content:       "Wipe spills immediately, re-oil twice a year, and keep pieces out of direct sunlight.",
			FeaturedImage: "/media/blog/oak-care.jpg",
			IsPublished:   true,
			CreatedAt:     time.Date(2026, 3, 2, 9, 0, 0, 0, time.UTC),
		},
		{
			Title:       "Spring Lookbook",
			Slug:        "spring-lookbook",
			Type:        domain.BlogTypePDF,
			Excerpt:     "Our seasonal catalog as a downloadable lookbook.",
			PDFFile:     "/media/blog/spring-lookbook.pdf",
			IsPublished: true,
			CreatedAt:   time.Date(2026, 3, 20, 9, 0, 0, 0, time.UTC),
		},
		{
			Title:     "Upcoming Showroom Opening",
			Slug:      "upcoming-showroom-opening",
			Type:      domain.BlogTypeManual,
			Excerpt:   "Draft announcement, not live yet.",
			CreatedAt: time.Date(2026, 4, 1, 9, 0, 0, 0, time.UTC),
		},
	} {
		s.createBlog(post)
	}

	// Demo accounts: one staff, one customer. Errors are impossible with
	// fixed inputs so they are ignored.
	_, _ = s.createAccount("admin", "admin@furnistore.dev", "Admin123secret", "Ada", "Admin", true)
	_, _ = s.createAccount("demo", "demo@furnistore.dev", "Demo1234secret", "Dana", "Demo", false)
}
