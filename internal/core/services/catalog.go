package services

import (
	"context"

	"github.com/maele-app/maele-cli/internal/core/domain"
	"github.com/maele-app/maele-cli/internal/core/ports/driven"
	"github.com/maele-app/maele-cli/internal/core/ports/driving"
	"github.com/maele-app/maele-cli/internal/logger"
)

// Ensure CatalogService implements the interface.
var _ driving.CatalogService = (*CatalogService)(nil)

// CatalogService provides read-only browsing of the proverb collection.
// Each call issues a full re-read of the store before computing results,
// so every view reflects the collection as of that call.
type CatalogService struct {
	store driven.ProverbStore
}

// NewCatalogService creates a new catalog service.
func NewCatalogService(store driven.ProverbStore) *CatalogService {
	return &CatalogService{store: store}
}

// All returns every record in store order.
func (s *CatalogService) All(ctx context.Context) ([]domain.Proverb, error) {
	return s.load(ctx)
}

// Search returns records matching keyword case-insensitively.
func (s *CatalogService) Search(ctx context.Context, keyword string, opts domain.SearchOptions) ([]domain.Proverb, error) {
	proverbs, err := s.load(ctx)
	if err != nil {
		return nil, err
	}
	return domain.Search(proverbs, keyword, opts), nil
}

// Categories returns the sorted, duplicate-free category list.
func (s *CatalogService) Categories(ctx context.Context) ([]string, error) {
	proverbs, err := s.load(ctx)
	if err != nil {
		return nil, err
	}
	return domain.Categories(proverbs), nil
}

// ByCategory returns the records in the given category, in store order.
func (s *CatalogService) ByCategory(ctx context.Context, category string) ([]domain.Proverb, error) {
	proverbs, err := s.load(ctx)
	if err != nil {
		return nil, err
	}
	return domain.FilterByCategory(proverbs, category), nil
}

// Random picks one record uniformly.
func (s *CatalogService) Random(ctx context.Context) (domain.Proverb, error) {
	proverbs, err := s.load(ctx)
	if err != nil {
		return domain.Proverb{}, err
	}
	return domain.Random(proverbs)
}

func (s *CatalogService) load(ctx context.Context) ([]domain.Proverb, error) {
	proverbs, err := s.store.List(ctx)
	if err != nil {
		return nil, err
	}
	logger.Debug("loaded %d proverb(s) from store", len(proverbs))
	return proverbs, nil
}
