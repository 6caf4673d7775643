package driving

import (
	"context"

	"github.com/maele-app/maele-cli/internal/core/domain"
)

// CatalogService provides read-only browsing of the proverb collection.
// Every call re-reads the full collection from the store.
type CatalogService interface {
	// All returns every record in store order.
	All(ctx context.Context) ([]domain.Proverb, error)

	// Search returns records matching keyword case-insensitively.
	// An empty keyword yields an empty result.
	Search(ctx context.Context, keyword string, opts domain.SearchOptions) ([]domain.Proverb, error)

	// Categories returns the sorted, duplicate-free category list.
	Categories(ctx context.Context) ([]string, error)

	// ByCategory returns the records in the given category, in store order.
	ByCategory(ctx context.Context, category string) ([]domain.Proverb, error)

	// Random picks one record uniformly.
	// Returns domain.ErrEmptyCollection when the store is empty.
	Random(ctx context.Context) (domain.Proverb, error)
}
