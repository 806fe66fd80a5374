// Package events carries cart change notifications between the stores and
// any interested display component, replacing the page-global custom event
// the storefront UI used to dispatch.
package events

import (
	"sync"

	"furnistore/internal/domain"
)

// CartEvent is a tagged cart change notification. Subscribers that do not
// recognize a variant must fall back to a full reload; CartReload is always
// the correct recovery path.
type CartEvent interface {
	cartEvent()
}

// CartReload signals that cart contents changed and listeners should reload
// from the source of truth.
type CartReload struct{}

// CartMerge carries the single added line item so listeners can apply an
// optimistic merge without a round-trip reload.
type CartMerge struct {
	Item domain.LineItem
}

func (CartReload) cartEvent() {}
func (CartMerge) cartEvent()  {}

// Bus is a minimal synchronous publish/subscribe channel.
type Bus struct {
	mu   sync.Mutex
	next int
	subs map[int]func(CartEvent)
}

// NewBus returns an empty bus.
func NewBus() *Bus {
	return &Bus{subs: make(map[int]func(CartEvent))}
}

// Subscribe registers fn and returns a function removing the subscription.
func (b *Bus) Subscribe(fn func(CartEvent)) func() {
	b.mu.Lock()
	defer b.mu.Unlock()
	id := b.next
	b.next++
	b.subs[id] = fn
	return func() {
		b.mu.Lock()
		defer b.mu.Unlock()
		delete(b.subs, id)
	}
}

// Publish delivers ev to every subscriber in turn.
func (b *Bus) Publish(ev CartEvent) {
	b.mu.Lock()
	fns := make([]func(CartEvent), 0, len(b.subs))
	for _, fn := range b.subs {
		fns = append(fns, fn)
	}
	b.mu.Unlock()
	for _, fn := range fns {
		fn(ev)
	}
}
