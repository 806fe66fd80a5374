package domain

import "math"

// EffectiveUnitPrice returns the price one unit of the item sells for: the
// discount price when present and nonzero, otherwise the base price.
func (li LineItem) EffectiveUnitPrice() float64 {
	if li.Product == nil {
		return 0
	}
	if li.Product.DiscountPrice > 0 {
		return li.Product.DiscountPrice
	}
	return li.Product.Price
}

// LineSubtotal is the effective unit price multiplied by quantity.
func (li LineItem) LineSubtotal() float64 {
	return li.EffectiveUnitPrice() * float64(li.Quantity)
}

// DeliveryCharge is the flat per-line delivery contribution. It is never
// multiplied by quantity.
func (li LineItem) DeliveryCharge() float64 {
	if li.Product == nil {
		return 0
	}
	return li.Product.DeliveryCharge
}

// OrderTotals is the advisory client-side price breakdown. The server
// recomputes the authoritative figures at checkout.
type OrderTotals struct {
	Subtotal float64
	Delivery float64
	Total    float64
}

// Totals sums subtotal, flat delivery charges, and grand total over items.
func Totals(items []LineItem) OrderTotals {
	var t OrderTotals
	for _, li := range items {
		t.Subtotal += li.LineSubtotal()
		t.Delivery += li.DeliveryCharge()
	}
	t.Total = t.Subtotal + t.Delivery
	return t
}

// RoundMoney rounds to two decimal places for display. Stored and transmitted
// values stay unrounded.
func RoundMoney(v float64) float64 {
	return math.Round(v*100) / 100
}
