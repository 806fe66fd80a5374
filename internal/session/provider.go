// Package session maintains the current identity and the token pair backing
// it. The identity is a process-wide value restored from the state file so a
// session survives restarts.
package session

import (
	"context"
	"fmt"
	"log/slog"
	"sync"

	"furnistore/internal/api"
	"furnistore/internal/domain"
	"furnistore/internal/localstore"
)

type authAPI interface {
	Token(ctx context.Context, username, password string) (api.TokenPair, error)
	Register(ctx context.Context, in api.RegisterInput) error
	Me(ctx context.Context) (domain.Identity, error)
}

// Provider owns the current identity and its token lifecycle.
type Provider struct {
	api    authAPI
	state  *localstore.Store
	logger *slog.Logger

	mu        sync.Mutex
	identity  *domain.Identity
	listeners []func(*domain.Identity)
}

// New builds a Provider. Call Restore to adopt a persisted session.
func New(apiClient authAPI, state *localstore.Store, logger *slog.Logger) *Provider {
	return &Provider{
		api:    apiClient,
		state:  state,
		logger: logger,
	}
}

// Current returns the authenticated identity, or nil for a guest.
func (p *Provider) Current() *domain.Identity {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.identity
}

// OnChange registers a listener invoked whenever the identity changes
// (login, logout, or an expired session detected during Restore).
func (p *Provider) OnChange(fn func(*domain.Identity)) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.listeners = append(p.listeners, fn)
}

// Login exchanges credentials for tokens, persists them, and fetches the
// identity snapshot. On failure any prior identity is left untouched.
func (p *Provider) Login(ctx context.Context, username, password string) error {
	pair, err := p.api.Token(ctx, username, password)
	if err != nil {
		return fmt.Errorf("login: %w", err)
	}
	if err := p.state.Set(localstore.KeyAccessToken, pair.Access); err != nil {
		return err
	}
	if pair.Refresh != "" {
		if err := p.state.Set(localstore.KeyRefreshToken, pair.Refresh); err != nil {
			return err
		}
	}

	me, err := p.api.Me(ctx)
	if err != nil {
		return fmt.Errorf("fetch identity: %w", err)
	}
	if err := p.state.Set(localstore.KeyIdentity, me); err != nil {
		p.logger.Warn("persist identity snapshot", "err", err)
	}
	p.setIdentity(&me)
	return nil
}

// Register creates an account and then performs the full login sequence.
// There is no registered-but-not-logged-in state.
func (p *Provider) Register(ctx context.Context, in api.RegisterInput) error {
	if err := p.api.Register(ctx, in); err != nil {
		return fmt.Errorf("register: %w", err)
	}
	return p.Login(ctx, in.Email, in.Password)
}

// Logout clears persisted tokens and the in-memory identity. It never fails.
func (p *Provider) Logout() {
	if err := p.state.Delete(localstore.KeyAccessToken, localstore.KeyRefreshToken, localstore.KeyIdentity); err != nil {
		p.logger.Warn("clear session state", "err", err)
	}
	p.setIdentity(nil)
}

// Restore re-establishes a persisted session. A cached identity snapshot is
// adopted immediately for fast startup, then the authoritative identity is
// re-fetched; a fetch failure is treated as an expired session and clears
// everything.
func (p *Provider) Restore(ctx context.Context) {
	if p.state.GetString(localstore.KeyAccessToken) == "" {
		return
	}

	var cached domain.Identity
	if p.state.GetJSON(localstore.KeyIdentity, &cached) && cached.ID != 0 {
		p.setIdentity(&cached)
	}

	me, err := p.api.Me(ctx)
	if err != nil {
		p.logger.Warn("session restore failed, clearing tokens", "err", err)
		p.Logout()
		return
	}
	if err := p.state.Set(localstore.KeyIdentity, me); err != nil {
		p.logger.Warn("persist identity snapshot", "err", err)
	}
	p.setIdentity(&me)
}

func (p *Provider) setIdentity(id *domain.Identity) {
	p.mu.Lock()
	p.identity = id
	listeners := make([]func(*domain.Identity), len(p.listeners))
	copy(listeners, p.listeners)
	p.mu.Unlock()
	for _, fn := range listeners {
		fn(id)
	}
}
