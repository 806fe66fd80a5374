package cli

import (
	"context"
	"fmt"
	"log/slog"

	"furnistore/internal/api"
	"furnistore/internal/backoffice"
	"furnistore/internal/cart"
	"furnistore/internal/catalog"
	"furnistore/internal/config"
	"furnistore/internal/domain"
	"furnistore/internal/events"
	"furnistore/internal/localstore"
	"furnistore/internal/logging"
	"furnistore/internal/session"

	"github.com/spf13/afero"
)

// app wires the client stack for one command invocation.
type app struct {
	cfg     *config.Config
	logger  *slog.Logger
	state   *localstore.Store
	api     *api.Client
	session *session.Provider
	cart    *cart.Store
	catalog *catalog.Service
	admin   *backoffice.Client
}

func newApp(ctx context.Context) (*app, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}
	logger := logging.New(cfg.Logging)
	state := localstore.Open(afero.NewOsFs(), cfg.State.Path)
	client := api.New(cfg.API.BaseURL, cfg.API.Timeout, state, logger)
	sess := session.New(client, state, logger)
	bus := events.NewBus()
	cartStore := cart.New(client, sess, state, bus, logger)

	sess.Restore(ctx)
	cartStore.Load(ctx)

	// Login and logout within this invocation re-source the cart.
	sess.OnChange(func(*domain.Identity) {
		cartStore.Reconcile(ctx)
	})

	return &app{
		cfg:     cfg,
		logger:  logger,
		state:   state,
		api:     client,
		session: sess,
		cart:    cartStore,
		catalog: catalog.New(client, state, logger),
		admin:   backoffice.New(client, sess),
	}, nil
}

func printItems(items []domain.LineItem) {
	if len(items) == 0 {
		fmt.Println("cart is empty")
		return
	}
	for _, li := range items {
		mark := " "
		if li.Selected {
			mark = "x"
		}
		name := ""
		if li.Product != nil {
			name = li.Product.Name
		}
		fmt.Printf("[%s] #%-4d %-32s color=%-8s qty=%-3d unit=%.2f line=%.2f\n",
			mark, li.ID, name, li.VariantColor(), li.Quantity,
			li.EffectiveUnitPrice(), domain.RoundMoney(li.LineSubtotal()))
	}
	t := domain.Totals(items)
	fmt.Printf("subtotal %.2f  delivery %.2f  total %.2f\n",
		domain.RoundMoney(t.Subtotal), domain.RoundMoney(t.Delivery), domain.RoundMoney(t.Total))
}

func printOrder(o domain.Order) {
	fmt.Printf("order #%d  status=%s  customer=%s\n", o.ID, o.Status, o.Customer)
	for _, it := range o.Items {
		fmt.Printf("  #%-4d %-32s color=%-8s qty=%-3d unit=%.2f\n",
			it.ID, it.Name, it.Color, it.Quantity, it.UnitPrice)
	}
	fmt.Printf("  subtotal %.2f  delivery %.2f  total %.2f\n", o.Subtotal, o.Delivery, o.Total)
	if o.Shipping.Address != "" {
		fmt.Printf("  ship to: %s, %s %s (%s)\n",
			o.Shipping.Address, o.Shipping.City, o.Shipping.PostalCode, o.Shipping.Phone)
	}
}
