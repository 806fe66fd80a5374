package cart

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"

	"furnistore/internal/domain"
	"furnistore/internal/events"
	"furnistore/internal/localstore"

	"github.com/spf13/afero"
)

type stubRemoteAPI struct {
	fetchItems  []domain.LineItem
	fetchErr    error
	fetchCalls  int
	addErr      error
	addCalls    int
	lastAddID   int64
	lastAddQty  int
	removeItems []domain.LineItem
	removeErr   error
	lastRemove  int64
}

func (s *stubRemoteAPI) FetchCart(_ context.Context) ([]domain.LineItem, error) {
	s.fetchCalls++
	return s.fetchItems, s.fetchErr
}

func (s *stubRemoteAPI) AddCartItem(_ context.Context, productID int64, quantity int, _ string) error {
	s.addCalls++
	s.lastAddID = productID
	s.lastAddQty = quantity
	return s.addErr
}

func (s *stubRemoteAPI) RemoveCartItem(_ context.Context, itemID int64) ([]domain.LineItem, error) {
	s.lastRemove = itemID
	return s.removeItems, s.removeErr
}

type stubIdentity struct {
	identity *domain.Identity
}

func (s *stubIdentity) Current() *domain.Identity { return s.identity }

func testStore(api *stubRemoteAPI, identity *domain.Identity) (*Store, *localstore.Store, *events.Bus) {
	state := localstore.Open(afero.NewMemMapFs(), "/state.json")
	bus := events.NewBus()
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	return New(api, &stubIdentity{identity: identity}, state, bus, logger), state, bus
}

func sofa() domain.Product {
	return domain.Product{
		ID:             7,
		Name:           "Oak Sofa",
		Price:          500,
		DiscountPrice:  400,
		DeliveryCharge: 50,
		Image:          "sofa.jpg",
		Images: []domain.ProductImage{
			{URL: "sofa-red.jpg", Color: "Red"},
			{URL: "sofa-grey.jpg", Color: "Grey"},
		},
	}
}

func TestGuestAddMergesByVariant(t *testing.T) {
	store, _, _ := testStore(&stubRemoteAPI{}, nil)
	ctx := context.Background()

	if err := store.Add(ctx, sofa(), 1, "Red"); err != nil {
		t.Fatalf("add: %v", err)
	}
	if err := store.Add(ctx, sofa(), 2, "Red"); err != nil {
		t.Fatalf("add: %v", err)
	}

	items := store.Load(ctx)
	if len(items) != 1 {
		t.Fatalf("expected one merged entry, got %d", len(items))
	}
	if items[0].Quantity != 3 {
		t.Fatalf("expected merged quantity 3, got %d", items[0].Quantity)
	}
	if items[0].Color != "Red" {
		t.Fatalf("unexpected color %q", items[0].Color)
	}
}

func TestGuestAddDifferentVariantsStaySeparate(t *testing.T) {
	store, _, _ := testStore(&stubRemoteAPI{}, nil)
	ctx := context.Background()

	if err := store.Add(ctx, sofa(), 1, "Red"); err != nil {
		t.Fatalf("add: %v", err)
	}
	if err := store.Add(ctx, sofa(), 1, "Grey"); err != nil {
		t.Fatalf("add: %v", err)
	}
	if items := store.Load(ctx); len(items) != 2 {
		t.Fatalf("expected two entries for two variants, got %d", len(items))
	}
}

func TestGuestCartRoundTrip(t *testing.T) {
	api := &stubRemoteAPI{}
	store, state, _ := testStore(api, nil)
	ctx := context.Background()

	if err := store.Add(ctx, sofa(), 2, "Red"); err != nil {
		t.Fatalf("add: %v", err)
	}

	// A fresh store over the same state file reproduces the tuples.
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	reloaded := New(api, &stubIdentity{}, state, events.NewBus(), logger)
	items := reloaded.Load(ctx)
	if len(items) != 1 || items[0].ProductID() != 7 || items[0].Color != "Red" || items[0].Quantity != 2 {
		t.Fatalf("round trip mismatch: %+v", items)
	}
	if !items[0].Selected {
		t.Fatalf("selection must be recomputed true on load")
	}
}

func TestUpdateQuantityRejectsNonPositive(t *testing.T) {
	store, _, _ := testStore(&stubRemoteAPI{}, nil)
	ctx := context.Background()
	if err := store.Add(ctx, sofa(), 2, "Red"); err != nil {
		t.Fatalf("add: %v", err)
	}

	if err := store.UpdateQuantity(ctx, 7, 0); err != nil {
		t.Fatalf("zero quantity should be a silent no-op, got %v", err)
	}
	if err := store.UpdateQuantity(ctx, 7, -1); err != nil {
		t.Fatalf("negative quantity should be a silent no-op, got %v", err)
	}
	if items := store.Items(); items[0].Quantity != 2 {
		t.Fatalf("cart changed on invalid quantity: %+v", items)
	}

	if err := store.UpdateQuantity(ctx, 7, 5); err != nil {
		t.Fatalf("update: %v", err)
	}
	if items := store.Items(); items[0].Quantity != 5 {
		t.Fatalf("expected quantity 5, got %d", items[0].Quantity)
	}
}

func TestUpdateColorReresolvesImage(t *testing.T) {
	store, _, _ := testStore(&stubRemoteAPI{}, nil)
	ctx := context.Background()
	if err := store.Add(ctx, sofa(), 1, "Red"); err != nil {
		t.Fatalf("add: %v", err)
	}
	if got := store.Items()[0].Image; got != "sofa-red.jpg" {
		t.Fatalf("unexpected initial image %q", got)
	}

	if err := store.UpdateColor(ctx, 7, "Grey"); err != nil {
		t.Fatalf("update color: %v", err)
	}
	item := store.Items()[0]
	if item.Color != "Grey" || item.Image != "sofa-grey.jpg" {
		t.Fatalf("expected grey variant image, got %+v", item)
	}
}

func TestRemoveIsIdempotent(t *testing.T) {
	store, state, _ := testStore(&stubRemoteAPI{}, nil)
	ctx := context.Background()
	if err := store.Add(ctx, sofa(), 1, "Red"); err != nil {
		t.Fatalf("add: %v", err)
	}

	if err := store.Remove(ctx, 7); err != nil {
		t.Fatalf("remove: %v", err)
	}
	if err := store.Remove(ctx, 7); err != nil {
		t.Fatalf("second remove should be a no-op, got %v", err)
	}
	if items := store.Items(); len(items) != 0 {
		t.Fatalf("expected empty cart, got %+v", items)
	}
	if _, ok := state.Get(localstore.KeyCartItems); ok {
		t.Fatalf("expected storage key removed when cart empties")
	}
}

func TestLoadDropsMalformedGuestEntries(t *testing.T) {
	store, state, _ := testStore(&stubRemoteAPI{}, nil)
	if err := state.Set(localstore.KeyCartItems, []map[string]interface{}{
		{"quantity": 0},
		{"name": "orphan"},
	}); err != nil {
		t.Fatalf("seed: %v", err)
	}

	items := store.Load(context.Background())
	if len(items) != 0 {
		t.Fatalf("expected empty cart, got %+v", items)
	}
	if _, ok := state.Get(localstore.KeyCartItems); ok {
		t.Fatalf("expected stale key removed")
	}
}

func TestLoadKeepsValidGuestEntries(t *testing.T) {
	store, state, _ := testStore(&stubRemoteAPI{}, nil)
	p := sofa()
	if err := state.Set(localstore.KeyCartItems, []domain.LineItem{
		{ID: 7, Product: &p, Quantity: 2, Color: "Red"},
		{Quantity: 0},
	}); err != nil {
		t.Fatalf("seed: %v", err)
	}

	items := store.Load(context.Background())
	if len(items) != 1 || items[0].Quantity != 2 {
		t.Fatalf("expected the one valid entry, got %+v", items)
	}
}

func TestAuthenticatedLoadOverlaysDefaults(t *testing.T) {
	p := sofa()
	api := &stubRemoteAPI{fetchItems: []domain.LineItem{
		{ID: 101, Product: &p, Quantity: 1},
	}}
	store, _, _ := testStore(api, &domain.Identity{ID: 1})

	items := store.Load(context.Background())
	if len(items) != 1 {
		t.Fatalf("expected one item, got %d", len(items))
	}
	if !items[0].Selected || items[0].Color != domain.DefaultColor {
		t.Fatalf("expected selected item with default color, got %+v", items[0])
	}
}

func TestAuthenticatedLoadFailureFallsBackToEmpty(t *testing.T) {
	api := &stubRemoteAPI{fetchErr: errors.New("timeout")}
	store, _, _ := testStore(api, &domain.Identity{ID: 1})

	items := store.Load(context.Background())
	if len(items) != 0 {
		t.Fatalf("expected empty cart on load failure, got %+v", items)
	}
}

func TestAuthenticatedAddDelegatesAndReloads(t *testing.T) {
	api := &stubRemoteAPI{}
	store, _, bus := testStore(api, &domain.Identity{ID: 1})

	var reloads int
	bus.Subscribe(func(ev events.CartEvent) {
		if _, ok := ev.(events.CartReload); ok {
			reloads++
		}
	})

	if err := store.Add(context.Background(), sofa(), 2, "Red"); err != nil {
		t.Fatalf("add: %v", err)
	}
	if api.addCalls != 1 || api.lastAddID != 7 || api.lastAddQty != 2 {
		t.Fatalf("remote add not called as expected: %+v", api)
	}
	if api.fetchCalls != 1 {
		t.Fatalf("expected reload after remote add, got %d fetches", api.fetchCalls)
	}
	if reloads != 1 {
		t.Fatalf("expected one reload broadcast, got %d", reloads)
	}
}

func TestAuthenticatedAddFailureKeepsState(t *testing.T) {
	api := &stubRemoteAPI{addErr: errors.New("boom")}
	store, _, _ := testStore(api, &domain.Identity{ID: 1})

	if err := store.Add(context.Background(), sofa(), 1, "Red"); err == nil {
		t.Fatalf("expected error")
	}
	if api.fetchCalls != 0 {
		t.Fatalf("failed mutation must not trigger a reload")
	}
}

func TestGuestAddBroadcastsMergeDelta(t *testing.T) {
	store, _, bus := testStore(&stubRemoteAPI{}, nil)

	var merges []events.CartMerge
	bus.Subscribe(func(ev events.CartEvent) {
		if m, ok := ev.(events.CartMerge); ok {
			merges = append(merges, m)
		}
	})

	if err := store.Add(context.Background(), sofa(), 2, "Red"); err != nil {
		t.Fatalf("add: %v", err)
	}
	if len(merges) != 1 || merges[0].Item.ProductID() != 7 || merges[0].Item.Quantity != 2 {
		t.Fatalf("expected merge delta broadcast, got %+v", merges)
	}
}

func TestToggleSelectionStaysInMemory(t *testing.T) {
	store, state, _ := testStore(&stubRemoteAPI{}, nil)
	ctx := context.Background()
	if err := store.Add(ctx, sofa(), 1, "Red"); err != nil {
		t.Fatalf("add: %v", err)
	}

	store.ToggleSelection(7)
	if store.Items()[0].Selected {
		t.Fatalf("expected item deselected")
	}

	// Persisted form never carries the selection flag: reload recomputes true.
	var persisted []map[string]interface{}
	if !state.GetJSON(localstore.KeyCartItems, &persisted) {
		t.Fatalf("expected persisted guest cart")
	}
	if _, ok := persisted[0]["selected"]; ok {
		t.Fatalf("selection flag must not be persisted")
	}
	if items := store.Load(ctx); !items[0].Selected {
		t.Fatalf("selection must reset to true on load")
	}
}

func TestClearEmptiesCartAndStorage(t *testing.T) {
	store, state, bus := testStore(&stubRemoteAPI{}, nil)
	ctx := context.Background()
	if err := store.Add(ctx, sofa(), 1, "Red"); err != nil {
		t.Fatalf("add: %v", err)
	}

	var reloads int
	bus.Subscribe(func(ev events.CartEvent) {
		if _, ok := ev.(events.CartReload); ok {
			reloads++
		}
	})

	store.Clear(ctx)
	if len(store.Items()) != 0 {
		t.Fatalf("expected empty cart")
	}
	if _, ok := state.Get(localstore.KeyCartItems); ok {
		t.Fatalf("expected guest storage cleared")
	}
	if reloads != 1 {
		t.Fatalf("expected reload broadcast, got %d", reloads)
	}
}

func TestIdentitySwitchReloadsFromNewSource(t *testing.T) {
	p := sofa()
	api := &stubRemoteAPI{fetchItems: []domain.LineItem{{ID: 55, Product: &p, Quantity: 4}}}
	ids := &stubIdentity{}
	state := localstore.Open(afero.NewMemMapFs(), "/state.json")
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	store := New(api, ids, state, events.NewBus(), logger)
	ctx := context.Background()

	if err := store.Add(ctx, sofa(), 1, "Red"); err != nil {
		t.Fatalf("add: %v", err)
	}

	// Login: the guest cart is not merged, the remote cart takes over.
	ids.identity = &domain.Identity{ID: 1}
	store.Reconcile(ctx)
	items := store.Items()
	if len(items) != 1 || items[0].ID != 55 {
		t.Fatalf("expected remote cart after login, got %+v", items)
	}

	// Logout: back to the untouched guest cart.
	ids.identity = nil
	store.Reconcile(ctx)
	items = store.Items()
	if len(items) != 1 || items[0].ProductID() != 7 {
		t.Fatalf("expected guest cart after logout, got %+v", items)
	}
}
