package driven

import (
	"context"

	"github.com/custodia-labs/vitrine/internal/core/domain"
)

// ProductSource fetches products from the remote catalog API.
//
// Implementations classify every list failure as exactly one of
// *domain.ServerError, *domain.UnreachableError or *domain.RequestConfigError,
// and collapse every lookup failure into *domain.ProductNotFoundError.
type ProductSource interface {
	// ListProducts returns the full catalog in API order.
	ListProducts(ctx context.Context) ([]domain.Product, error)

	// GetProduct returns a single product. id must be positive.
	GetProduct(ctx context.Context, id int) (*domain.Product, error)
}
