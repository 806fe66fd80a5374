package domain

// DefaultColor is the sentinel variant label for items without an explicit
// color selection.
const DefaultColor = "Default"

// LineItem is one product-variant-quantity entry in a cart. For guest carts
// the item ID equals the product ID; for authenticated carts the server
// assigns its own item IDs.
type LineItem struct {
	ID       int64    `json:"id"`
	Product  *Product `json:"product,omitempty"`
	Quantity int      `json:"quantity"`
	Color    string   `json:"color,omitempty"`
	Image    string   `json:"image,omitempty"`

	// Selected marks the item for checkout. It is recomputed on every load
	// and never persisted.
	Selected bool `json:"-"`
}

// ProductID returns the referenced product's identifier, falling back to the
// item ID for guest entries stored without an embedded product.
func (li LineItem) ProductID() int64 {
	if li.Product != nil && li.Product.ID != 0 {
		return li.Product.ID
	}
	return li.ID
}

// VariantColor returns the selected color, substituting the default sentinel
// when unset.
func (li LineItem) VariantColor() string {
	if li.Color == "" {
		return DefaultColor
	}
	return li.Color
}

// Valid reports whether the item is well formed: it must reference a product
// and carry a positive quantity. Malformed entries are dropped at load time.
func (li LineItem) Valid() bool {
	return li.ProductID() != 0 && li.Quantity > 0
}

// SameVariant reports whether two items refer to the same product variant.
// Duplicate additions of the same variant merge quantities instead of
// creating a second entry.
func (li LineItem) SameVariant(other LineItem) bool {
	return li.ProductID() == other.ProductID() && li.VariantColor() == other.VariantColor()
}
