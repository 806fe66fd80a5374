// Package checkout drives the three-step order flow: review the cart, enter
// shipping details, confirm. Nothing here survives a restart; the draft is
// rebuilt every time checkout is entered.
package checkout

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"furnistore/internal/api"
	"furnistore/internal/domain"
)

// Stage is the flow's current state.
type Stage int

const (
	StageReviewing Stage = iota
	StageShipping
	StageConfirming
)

func (s Stage) String() string {
	switch s {
	case StageReviewing:
		return "reviewing"
	case StageShipping:
		return "shipping"
	case StageConfirming:
		return "confirming"
	default:
		return fmt.Sprintf("stage(%d)", int(s))
	}
}

var (
	// ErrLoginRequired signals the caller to redirect to the login flow;
	// checkout requires an authenticated identity.
	ErrLoginRequired = errors.New("login required for checkout")
	// ErrNoSelection rejects checkout with zero selected items.
	ErrNoSelection = errors.New("select at least one item")
	// ErrWrongStage rejects a transition invoked out of order.
	ErrWrongStage = errors.New("invalid checkout transition")
)

type cartStore interface {
	SelectedItems() []domain.LineItem
	Clear(ctx context.Context)
}

type identitySource interface {
	Current() *domain.Identity
}

type orderAPI interface {
	Checkout(ctx context.Context, in api.CheckoutInput) (domain.Order, error)
}

// Draft is the ephemeral shipping-and-selection snapshot used to create an
// order.
type Draft struct {
	Shipping domain.Shipping
	Items    []domain.LineItem
}

// Flow is the checkout state machine. It is not safe for concurrent use; the
// UI drives it from a single event loop.
type Flow struct {
	cart     cartStore
	identity identitySource
	api      orderAPI
	logger   *slog.Logger

	stage Stage
	draft *Draft
}

// New builds a Flow starting at the review stage.
func New(cart cartStore, identity identitySource, orderClient orderAPI, logger *slog.Logger) *Flow {
	return &Flow{
		cart:     cart,
		identity: identity,
		api:      orderClient,
		logger:   logger,
		stage:    StageReviewing,
	}
}

// Stage returns the current state.
func (f *Flow) Stage() Stage {
	return f.stage
}

// Draft returns the captured shipping-and-selection snapshot, nil before the
// shipping step completed.
func (f *Flow) Draft() *Draft {
	return f.draft
}

// ProceedToShipping advances review → shipping. It is rejected when nothing
// is selected, and returns ErrLoginRequired for guests so the caller can
// redirect to login; in both cases the state does not advance.
func (f *Flow) ProceedToShipping() error {
	if f.stage != StageReviewing {
		return ErrWrongStage
	}
	if len(f.cart.SelectedItems()) == 0 {
		return ErrNoSelection
	}
	if f.identity.Current() == nil {
		return ErrLoginRequired
	}
	f.stage = StageShipping
	return nil
}

// ProceedToConfirm advances shipping → confirming, capturing the draft. All
// shipping fields are optional; a blank address defaults server-side to the
// identity's email.
func (f *Flow) ProceedToConfirm(shipping domain.Shipping) error {
	if f.stage != StageShipping {
		return ErrWrongStage
	}
	f.draft = &Draft{
		Shipping: shipping,
		Items:    f.cart.SelectedItems(),
	}
	f.stage = StageConfirming
	return nil
}

// Confirm creates the order from the draft. Success clears the cart and
// returns the flow to review; failure keeps the flow in confirming with the
// cart untouched.
func (f *Flow) Confirm(ctx context.Context) (domain.Order, error) {
	if f.stage != StageConfirming || f.draft == nil {
		return domain.Order{}, ErrWrongStage
	}

	items := make([]api.CheckoutItem, 0, len(f.draft.Items))
	for _, li := range f.draft.Items {
		items = append(items, api.CheckoutItem{
			ID:       li.ID,
			Quantity: li.Quantity,
			Color:    li.VariantColor(),
		})
	}

	order, err := f.api.Checkout(ctx, api.CheckoutInput{
		Items:    items,
		Shipping: f.draft.Shipping,
	})
	if err != nil {
		return domain.Order{}, fmt.Errorf("checkout: %w", err)
	}

	f.logger.Info("order created", "order_id", order.ID, "items", len(items))
	f.cart.Clear(ctx)
	f.draft = nil
	f.stage = StageReviewing
	return order, nil
}

// Back navigates one step toward review. It is always allowed and never
// mutates the cart.
func (f *Flow) Back() {
	switch f.stage {
	case StageConfirming:
		f.stage = StageShipping
	case StageShipping:
		f.stage = StageReviewing
	}
}

// Totals computes the advisory price breakdown for the current selection:
// discounted unit prices, flat per-line delivery charges, and the grand
// total. The server recomputes the authoritative figures.
func (f *Flow) Totals() domain.OrderTotals {
	if f.draft != nil {
		return domain.Totals(f.draft.Items)
	}
	return domain.Totals(f.cart.SelectedItems())
}
