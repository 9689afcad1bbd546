package driving

import (
	"context"

	"github.com/custodia-labs/vitrine/internal/core/domain"
)

// CatalogService provides catalog access to external actors.
type CatalogService interface {
	// ListProducts returns the full catalog in API order.
	ListProducts(ctx context.Context) ([]domain.Product, error)

	// GetProduct returns a single product by id.
	GetProduct(ctx context.Context, id int) (*domain.Product, error)

	// Search fetches the catalog and filters it by term.
	Search(ctx context.Context, term string) (domain.FilteredView, error)
}
