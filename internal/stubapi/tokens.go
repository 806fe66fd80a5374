package stubapi

import (
	"sync"
	"time"

	"github.com/google/uuid"
)

const (
	tokenKindAccess  = "access"
	tokenKindRefresh = "refresh"
)

type tokenMeta struct {
	UserID    int64
	Kind      string
	ExpiresAt time.Time
}

// tokenManager issues and validates opaque bearer tokens held in memory.
type tokenManager struct {
	mu         sync.Mutex
	tokens     map[string]tokenMeta
	accessTTL  time.Duration
	refreshTTL time.Duration
}

func newTokenManager() *tokenManager {
	return &tokenManager{
		tokens:     make(map[string]tokenMeta),
		accessTTL:  48 * time.Hour,
		refreshTTL: 30 * 24 * time.Hour,
	}
}

func (m *tokenManager) Issue(userID int64, kind string) string {
	ttl := m.accessTTL
	if kind == tokenKindRefresh {
		ttl = m.refreshTTL
	}
	token := uuid.NewString()
	m.mu.Lock()
	m.tokens[token] = tokenMeta{
		UserID:    userID,
		Kind:      kind,
		ExpiresAt: time.Now().Add(ttl),
	}
	m.mu.Unlock()
	return token
}

func (m *tokenManager) Validate(token, kind string) (int64, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	meta, ok := m.tokens[token]
	if !ok || meta.Kind != kind {
		return 0, false
	}
	if time.Now().After(meta.ExpiresAt) {
		delete(m.tokens, token)
		return 0, false
	}
	return meta.UserID, true
}

// Revoke drops a token, used by tests to simulate expiry.
func (m *tokenManager) Revoke(token string) {
	m.mu.Lock()
	delete(m.tokens, token)
	m.mu.Unlock()
}
