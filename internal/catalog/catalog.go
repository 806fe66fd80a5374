// Package catalog reads products and categories, keeping a local snapshot of
// the category tree so navigation renders instantly across restarts.
package catalog

import (
	"context"
	"fmt"
	"log/slog"

	"furnistore/internal/domain"
	"furnistore/internal/localstore"
)

type catalogAPI interface {
	Products(ctx context.Context) ([]domain.Product, error)
	Product(ctx context.Context, id int64) (domain.Product, error)
	Categories(ctx context.Context) ([]domain.Category, error)
}

// Service is a read-through catalog client.
type Service struct {
	api    catalogAPI
	state  *localstore.Store
	logger *slog.Logger
}

// New builds a Service.
func New(apiClient catalogAPI, state *localstore.Store, logger *slog.Logger) *Service {
	return &Service{api: apiClient, state: state, logger: logger}
}

// Products lists the catalog.
func (s *Service) Products(ctx context.Context) ([]domain.Product, error) {
	products, err := s.api.Products(ctx)
	if err != nil {
		return nil, fmt.Errorf("list products: %w", err)
	}
	return products, nil
}

// Product fetches one catalog entry.
func (s *Service) Product(ctx context.Context, id int64) (domain.Product, error) {
	product, err := s.api.Product(ctx, id)
	if err != nil {
		return domain.Product{}, fmt.Errorf("get product %d: %w", id, err)
	}
	return product, nil
}

// Categories returns the navigation tree, refreshing the cached snapshot on
// success. When the API is unreachable the last cached snapshot is served
// instead, so navigation keeps working through a transient outage.
func (s *Service) Categories(ctx context.Context) ([]domain.Category, error) {
	fresh, err := s.api.Categories(ctx)
	if err == nil {
		if cacheErr := s.state.Set(localstore.KeyCategories, fresh); cacheErr != nil {
			s.logger.Warn("cache categories", "err", cacheErr)
		}
		return fresh, nil
	}

	var cached []domain.Category
	if s.state.GetJSON(localstore.KeyCategories, &cached) && len(cached) > 0 {
		s.logger.Warn("categories fetch failed, serving cached snapshot", "err", err)
		return cached, nil
	}
	return nil, fmt.Errorf("list categories: %w", err)
}
