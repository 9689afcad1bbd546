package services

import (
	"context"
	"errors"

	"github.com/custodia-labs/vitrine/internal/core/domain"
	"github.com/custodia-labs/vitrine/internal/core/ports/driven"
	"github.com/custodia-labs/vitrine/internal/core/ports/driving"
	"github.com/custodia-labs/vitrine/internal/logger"
)

// Ensure CatalogService implements the interface.
var _ driving.CatalogService = (*CatalogService)(nil)

// ErrNoProductSource is returned when the catalog has no product source.
var ErrNoProductSource = errors.New("services: product source is required")

// CatalogService gives driving adapters access to the remote catalog.
type CatalogService struct {
	source driven.ProductSource
}

// NewCatalogService creates a catalog service backed by source.
func NewCatalogService(source driven.ProductSource) *CatalogService {
	return &CatalogService{source: source}
}

// ListProducts returns the full catalog in API order.
func (s *CatalogService) ListProducts(ctx context.Context) ([]domain.Product, error) {
	if s.source == nil {
		return nil, ErrNoProductSource
	}

	logger.Section("Catalog Load")
	products, err := s.source.ListProducts(ctx)
	if err != nil {
		return nil, err
	}
	logger.Info("Loaded %d products", len(products))
	return products, nil
}

// GetProduct returns a single product by id.
func (s *CatalogService) GetProduct(ctx context.Context, id int) (*domain.Product, error) {
	if s.source == nil {
		return nil, ErrNoProductSource
	}

	logger.Debug("Fetching product %d", id)
	return s.source.GetProduct(ctx, id)
}

// Search fetches the catalog and filters it by term.
func (s *CatalogService) Search(ctx context.Context, term string) (domain.FilteredView, error) {
	products, err := s.ListProducts(ctx)
	if err != nil {
		return domain.FilteredView{Term: term}, err
	}

	view := DeriveView(products, term)
	logger.Debug("Search %q matched %d of %d products", term, view.Count, len(products))
	return view, nil
}
