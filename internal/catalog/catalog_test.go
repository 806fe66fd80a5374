package catalog

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"

	"furnistore/internal/domain"
	"furnistore/internal/localstore"

	"github.com/spf13/afero"
)

type stubCatalogAPI struct {
	products   []domain.Product
	categories []domain.Category
	err        error
}

func (s *stubCatalogAPI) Products(_ context.Context) ([]domain.Product, error) {
	return s.products, s.err
}

func (s *stubCatalogAPI) Product(_ context.Context, id int64) (domain.Product, error) {
	for _, p := range s.products {
		if p.ID == id {
			return p, s.err
		}
	}
	return domain.Product{}, domain.ErrNotFound
}

func (s *stubCatalogAPI) Categories(_ context.Context) ([]domain.Category, error) {
	return s.categories, s.err
}

func testService(api *stubCatalogAPI) (*Service, *localstore.Store) {
	state := localstore.Open(afero.NewMemMapFs(), "/state.json")
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	return New(api, state, logger), state
}

func TestCategoriesCacheRefreshOnSuccess(t *testing.T) {
	api := &stubCatalogAPI{categories: []domain.Category{{ID: 1, Name: "Sofas"}}}
	svc, state := testService(api)

	got, err := svc.Categories(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(got) != 1 || got[0].Name != "Sofas" {
		t.Fatalf("unexpected categories: %+v", got)
	}

	var cached []domain.Category
	if !state.GetJSON(localstore.KeyCategories, &cached) || len(cached) != 1 {
		t.Fatalf("expected cached snapshot, got %+v", cached)
	}
}

func TestCategoriesServeCacheOnFailure(t *testing.T) {
	api := &stubCatalogAPI{categories: []domain.Category{{ID: 1, Name: "Sofas"}}}
	svc, _ := testService(api)

	if _, err := svc.Categories(context.Background()); err != nil {
		t.Fatalf("warm cache: %v", err)
	}

	api.err = errors.New("offline")
	got, err := svc.Categories(context.Background())
	if err != nil {
		t.Fatalf("expected cached fallback, got %v", err)
	}
	if len(got) != 1 || got[0].Name != "Sofas" {
		t.Fatalf("unexpected cached categories: %+v", got)
	}
}

func TestCategoriesFailWithoutCache(t *testing.T) {
	api := &stubCatalogAPI{err: errors.New("offline")}
	svc, _ := testService(api)

	if _, err := svc.Categories(context.Background()); err == nil {
		t.Fatalf("expected error with cold cache")
	}
}
