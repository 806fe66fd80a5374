package api

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"furnistore/internal/domain"
	"furnistore/internal/localstore"

	"github.com/spf13/afero"
)

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func testState(t *testing.T) *localstore.Store {
	t.Helper()
	return localstore.Open(afero.NewMemMapFs(), "/state.json")
}

func TestTokenRefreshRetriesOnce(t *testing.T) {
	state := testState(t)
	if err := state.Set(localstore.KeyAccessToken, "stale"); err != nil {
		t.Fatalf("seed token: %v", err)
	}
	if err := state.Set(localstore.KeyRefreshToken, "refresh-1"); err != nil {
		t.Fatalf("seed token: %v", err)
	}

	cartCalls := 0
	refreshCalls := 0
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/cart/":
			cartCalls++
			if r.Header.Get("Authorization") != "Bearer fresh" {
				w.WriteHeader(http.StatusUnauthorized)
				return
			}
			_ = json.NewEncoder(w).Encode(map[string]interface{}{"items": []interface{}{}})
		case "/accounts/token/refresh/":
			refreshCalls++
			var body struct {
				Refresh string `json:"refresh"`
			}
			_ = json.NewDecoder(r.Body).Decode(&body)
			if body.Refresh != "refresh-1" {
				w.WriteHeader(http.StatusUnauthorized)
				return
			}
			_ = json.NewEncoder(w).Encode(map[string]string{"access": "fresh"})
		default:
			w.WriteHeader(http.StatusNotFound)
		}
	}))
	defer srv.Close()

	client := New(srv.URL, time.Second, state, testLogger())
	if _, err := client.FetchCart(context.Background()); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cartCalls != 2 {
		t.Fatalf("expected original call plus one retry, got %d calls", cartCalls)
	}
	if refreshCalls != 1 {
		t.Fatalf("expected exactly one refresh, got %d", refreshCalls)
	}
	if got := state.GetString(localstore.KeyAccessToken); got != "fresh" {
		t.Fatalf("expected stored access token to be refreshed, got %q", got)
	}
}

func TestRefreshFailureClearsTokens(t *testing.T) {
	state := testState(t)
	if err := state.Set(localstore.KeyAccessToken, "stale"); err != nil {
		t.Fatalf("seed token: %v", err)
	}
	if err := state.Set(localstore.KeyRefreshToken, "bad"); err != nil {
		t.Fatalf("seed token: %v", err)
	}

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
	}))
	defer srv.Close()

	client := New(srv.URL, time.Second, state, testLogger())
	_, err := client.FetchCart(context.Background())
	if !IsStatus(err, http.StatusUnauthorized) {
		t.Fatalf("expected 401, got %v", err)
	}
	if _, ok := state.Get(localstore.KeyAccessToken); ok {
		t.Fatalf("expected access token cleared")
	}
	if _, ok := state.Get(localstore.KeyRefreshToken); ok {
		t.Fatalf("expected refresh token cleared")
	}
}

func TestNoRefreshWithoutToken(t *testing.T) {
	refreshCalls := 0
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path == "/accounts/token/refresh/" {
			refreshCalls++
		}
		w.WriteHeader(http.StatusUnauthorized)
	}))
	defer srv.Close()

	client := New(srv.URL, time.Second, testState(t), testLogger())
	_, err := client.Me(context.Background())
	if !IsStatus(err, http.StatusUnauthorized) {
		t.Fatalf("expected 401, got %v", err)
	}
	if refreshCalls != 0 {
		t.Fatalf("guest calls must not attempt a refresh, got %d", refreshCalls)
	}
}

func TestBlogBySlug(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/blogs/" {
			w.WriteHeader(http.StatusNotFound)
			return
		}
		w.Header().Set("Content-Type", "application/json")
		switch r.URL.Query().Get("slug") {
		case "oak-care":
			_, _ = w.Write([]byte(`[{"id":3,"title":"Oak Care","slug":"oak-care","blog_type":"manual","is_published":true}]`))
		default:
			_, _ = w.Write([]byte(`[]`))
		}
	}))
	defer srv.Close()

	client := New(srv.URL, time.Second, testState(t), testLogger())

	post, err := client.BlogBySlug(context.Background(), "oak-care")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if post.ID != 3 || post.Slug != "oak-care" {
		t.Fatalf("unexpected post: %+v", post)
	}

	if _, err := client.BlogBySlug(context.Background(), "missing"); !errors.Is(err, domain.ErrNotFound) {
		t.Fatalf("expected ErrNotFound for unknown slug, got %v", err)
	}
}

func TestErrorCarriesStatusAndBody(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
		_, _ = w.Write([]byte(`{"detail":"quantity must be positive"}`))
	}))
	defer srv.Close()

	client := New(srv.URL, time.Second, testState(t), testLogger())
	err := client.AddCartItem(context.Background(), 1, 0, "Default")
	if !IsStatus(err, http.StatusBadRequest) {
		t.Fatalf("expected 400, got %v", err)
	}
}
