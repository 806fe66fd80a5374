package domain

import "time"

// Order statuses as reported by the storefront API.
const (
	OrderStatusPending = "pending"
	OrderStatusPaid    = "paid"
	OrderStatusShipped = "shipped"
)

// Shipping holds the optional delivery fields collected at checkout. A blank
// address defaults server-side to the customer's email.
type Shipping struct {
	Phone      string `json:"phone,omitempty"`
	Address    string `json:"address,omitempty"`
	City       string `json:"city,omitempty"`
	PostalCode string `json:"postal,omitempty"`
}

// OrderItem is a consumed line item as recorded on an order.
type OrderItem struct {
	ID        int64   `json:"id"`
	ProductID int64   `json:"product_id"`
	Name      string  `json:"name,omitempty"`
	Quantity  int     `json:"quantity"`
	Color     string  `json:"color,omitempty"`
	UnitPrice float64 `json:"unit_price"`
}

// Order is a created order, pricing authoritative on the server side.
type Order struct {
	ID        int64       `json:"id"`
	Customer  string      `json:"customer,omitempty"`
	Items     []OrderItem `json:"items,omitempty"`
	Shipping  Shipping    `json:"shipping"`
	Subtotal  float64     `json:"subtotal"`
	Delivery  float64     `json:"delivery_total"`
	Total     float64     `json:"total"`
	Status    string      `json:"status"`
	CreatedAt time.Time   `json:"created_at,omitempty"`
}

// Subscriber is one newsletter signup.
type Subscriber struct {
	ID       int64  `json:"id"`
	Email    string `json:"email"`
	IsActive bool   `json:"is_active"`
}
