// Package cart holds the single source of truth for current cart contents,
// reconciled between the guest cart in the local state file and the
// server-side cart of an authenticated identity.
package cart

import (
	"context"
	"errors"
	"log/slog"
	"sync"

	"furnistore/internal/domain"
	"furnistore/internal/events"
	"furnistore/internal/localstore"
)

type remoteAPI interface {
	FetchCart(ctx context.Context) ([]domain.LineItem, error)
	AddCartItem(ctx context.Context, productID int64, quantity int, color string) error
	RemoveCartItem(ctx context.Context, itemID int64) ([]domain.LineItem, error)
}

type identitySource interface {
	Current() *domain.Identity
}

// Store reconciles and mutates the cart. Guest mutations always rewrite the
// complete serialized array; authenticated mutations delegate to the remote
// cart and re-adopt its state.
type Store struct {
	api      remoteAPI
	identity identitySource
	state    *localstore.Store
	bus      *events.Bus
	logger   *slog.Logger

	mu    sync.Mutex
	items []domain.LineItem
}

// New builds a Store. Call Load to populate it.
func New(apiClient remoteAPI, identity identitySource, state *localstore.Store, bus *events.Bus, logger *slog.Logger) *Store {
	return &Store{
		api:      apiClient,
		identity: identity,
		state:    state,
		bus:      bus,
		logger:   logger,
	}
}

// Load populates the store from the current source of truth. The read path is
// best-effort: a remote failure degrades to an empty cart with a warning
// instead of an error.
func (s *Store) Load(ctx context.Context) []domain.LineItem {
	var items []domain.LineItem
	if s.identity.Current() != nil {
		remote, err := s.api.FetchCart(ctx)
		if err != nil {
			s.logger.Warn("cart load failed, falling back to empty cart", "err", err)
			remote = nil
		}
		items = overlayDefaults(remote)
	} else {
		items = s.loadGuest()
	}

	s.mu.Lock()
	s.items = items
	s.mu.Unlock()
	return s.Items()
}

// loadGuest reads the serialized guest cart, dropping malformed entries. If
// the key held data but nothing valid remains, the stale key is removed.
func (s *Store) loadGuest() []domain.LineItem {
	raw, existed := s.state.Get(localstore.KeyCartItems)
	if !existed {
		return nil
	}

	var stored []domain.LineItem
	if !s.state.GetJSON(localstore.KeyCartItems, &stored) {
		s.logger.Warn("guest cart unreadable, removing stale key", "bytes", len(raw))
		stored = nil
	}

	valid := make([]domain.LineItem, 0, len(stored))
	for _, li := range stored {
		if li.Valid() {
			valid = append(valid, li)
		}
	}
	if len(valid) == 0 {
		if err := s.state.Delete(localstore.KeyCartItems); err != nil {
			s.logger.Warn("remove stale guest cart", "err", err)
		}
		return nil
	}
	return overlayDefaults(valid)
}

// Items returns a snapshot of the current cart.
func (s *Store) Items() []domain.LineItem {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]domain.LineItem, len(s.items))
	copy(out, s.items)
	return out
}

// SelectedItems returns the items currently marked for checkout.
func (s *Store) SelectedItems() []domain.LineItem {
	var selected []domain.LineItem
	for _, li := range s.Items() {
		if li.Selected {
			selected = append(selected, li)
		}
	}
	return selected
}

// TotalQuantity sums quantities across all items, e.g. for a header badge.
func (s *Store) TotalQuantity() int {
	total := 0
	for _, li := range s.Items() {
		total += li.Quantity
	}
	return total
}

// Add puts quantity units of a product variant into the cart. Guest adds
// merge by (product, color); authenticated adds delegate to the remote cart
// and reconcile afterwards.
func (s *Store) Add(ctx context.Context, product domain.Product, quantity int, color string) error {
	if quantity <= 0 {
		return errors.New("quantity must be positive")
	}
	if color == "" {
		color = domain.DefaultColor
	}

	if s.identity.Current() != nil {
		if err := s.api.AddCartItem(ctx, product.ID, quantity, color); err != nil {
			return err
		}
		s.Reconcile(ctx)
		return nil
	}

	delta := domain.LineItem{
		ID:       product.ID,
		Product:  &product,
		Quantity: quantity,
		Color:    color,
		Image:    product.ImageFor(color),
		Selected: true,
	}
	return s.ApplyOptimistic(delta)
}

// ApplyOptimistic merges a known delta into the cart without a reload and
// broadcasts it so listeners can do the same.
func (s *Store) ApplyOptimistic(delta domain.LineItem) error {
	s.mu.Lock()
	next := mergeVariant(s.items, delta)
	if err := s.persistGuestLocked(next); err != nil {
		s.mu.Unlock()
		return err
	}
	s.items = next
	s.mu.Unlock()

	s.bus.Publish(events.CartMerge{Item: delta})
	return nil
}

// Reconcile reloads the cart from its source of truth and broadcasts a full
// reload. It is always a correct recovery path.
func (s *Store) Reconcile(ctx context.Context) {
	s.Load(ctx)
	s.bus.Publish(events.CartReload{})
}

// Remove deletes a line item. Removing an absent item is a no-op, not an
// error.
func (s *Store) Remove(ctx context.Context, itemID int64) error {
	if s.identity.Current() != nil {
		remaining, err := s.api.RemoveCartItem(ctx, itemID)
		if err != nil {
			return err
		}
		s.mu.Lock()
		s.items = overlayDefaults(remaining)
		s.mu.Unlock()
		s.bus.Publish(events.CartReload{})
		return nil
	}

	s.mu.Lock()
	next := make([]domain.LineItem, 0, len(s.items))
	for _, li := range s.items {
		if li.ID != itemID {
			next = append(next, li)
		}
	}
	if err := s.persistGuestLocked(next); err != nil {
		s.mu.Unlock()
		return err
	}
	s.items = next
	s.mu.Unlock()

	s.bus.Publish(events.CartReload{})
	return nil
}

// UpdateQuantity sets a line item's quantity. Non-positive quantities are
// rejected as a no-op.
func (s *Store) UpdateQuantity(ctx context.Context, itemID int64, quantity int) error {
	if quantity < 1 {
		return nil
	}
	return s.mutateItem(itemID, func(li *domain.LineItem) {
		li.Quantity = quantity
	})
}

// UpdateColor changes a line item's variant and re-resolves its display
// image from the product's per-variant photo set.
func (s *Store) UpdateColor(ctx context.Context, itemID int64, color string) error {
	if color == "" {
		color = domain.DefaultColor
	}
	return s.mutateItem(itemID, func(li *domain.LineItem) {
		li.Color = color
		if li.Product != nil {
			li.Image = li.Product.ImageFor(color)
		}
	})
}

// ToggleSelection flips the transient checkout flag. Selection is held in
// memory only and recomputed as true on every load.
func (s *Store) ToggleSelection(itemID int64) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.items {
		if s.items[i].ID == itemID {
			s.items[i].Selected = !s.items[i].Selected
		}
	}
}

// Clear empties the cart in memory and removes the guest storage key. Used
// after a successful checkout consumed the selected items.
func (s *Store) Clear(ctx context.Context) {
	s.mu.Lock()
	s.items = nil
	if err := s.state.Delete(localstore.KeyCartItems); err != nil {
		s.logger.Warn("clear guest cart", "err", err)
	}
	s.mu.Unlock()
	s.bus.Publish(events.CartReload{})
}

// mutateItem applies fn to the matching item and persists. A missing item is
// a no-op. The in-memory cart only changes once persistence succeeded.
func (s *Store) mutateItem(itemID int64, fn func(*domain.LineItem)) error {
	s.mu.Lock()
	found := false
	next := make([]domain.LineItem, len(s.items))
	copy(next, s.items)
	for i := range next {
		if next[i].ID == itemID {
			fn(&next[i])
			found = true
		}
	}
	if !found {
		s.mu.Unlock()
		return nil
	}
	if err := s.persistGuestLocked(next); err != nil {
		s.mu.Unlock()
		return err
	}
	s.items = next
	s.mu.Unlock()

	s.bus.Publish(events.CartReload{})
	return nil
}

// persistGuestLocked rewrites the full guest cart array. Authenticated carts
// are owned by the server: quantity and color edits stay in the cached copy
// and travel in the checkout payload. Callers must hold s.mu.
func (s *Store) persistGuestLocked(items []domain.LineItem) error {
	if s.identity.Current() != nil {
		return nil
	}
	if len(items) == 0 {
		return s.state.Delete(localstore.KeyCartItems)
	}
	return s.state.Set(localstore.KeyCartItems, items)
}

// mergeVariant folds delta into items, merging quantities for an existing
// (product, color) pair and appending otherwise.
func mergeVariant(items []domain.LineItem, delta domain.LineItem) []domain.LineItem {
	next := make([]domain.LineItem, len(items))
	copy(next, items)
	for i := range next {
		if next[i].SameVariant(delta) {
			next[i].Quantity += delta.Quantity
			return next
		}
	}
	delta.Selected = true
	return append(next, delta)
}

// overlayDefaults applies the transient load-time defaults: everything is
// selected, colors fall back to the sentinel, and display images are
// re-resolved.
func overlayDefaults(items []domain.LineItem) []domain.LineItem {
	out := make([]domain.LineItem, len(items))
	for i, li := range items {
		li.Selected = true
		li.Color = li.VariantColor()
		if li.Product != nil {
			li.Image = li.Product.ImageFor(li.Color)
		}
		out[i] = li
	}
	return out
}
