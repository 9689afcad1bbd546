package memory

import (
	"context"
	"fmt"
	"sync"

	"github.com/custodia-labs/vitrine/internal/core/domain"
	"github.com/custodia-labs/vitrine/internal/core/ports/driven"
)

// Ensure ProductSource implements the interface.
var _ driven.ProductSource = (*ProductSource)(nil)

// ProductSource serves a fixed product list from memory. It follows the
// error contract of the HTTP client: ListErr is returned as is and lookups
// fail with *domain.ProductNotFoundError.
type ProductSource struct {
	mu       sync.RWMutex
	products []domain.Product

	// ListErr, when set, is returned by ListProducts.
	ListErr error

	calls int
}

// NewProductSource creates a source serving products in the given order.
func NewProductSource(products ...domain.Product) *ProductSource {
	return &ProductSource{products: products}
}

// ListProducts returns a copy of the stored products.
func (s *ProductSource) ListProducts(ctx context.Context) ([]domain.Product, error) {
	s.mu.Lock()
	s.calls++
	s.mu.Unlock()

	if err := ctx.Err(); err != nil {
		return nil, &domain.RequestConfigError{Err: err}
	}

	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.ListErr != nil {
		return nil, s.ListErr
	}
	out := make([]domain.Product, len(s.products))
	copy(out, s.products)
	return out, nil
}

// GetProduct returns the product with id.
func (s *ProductSource) GetProduct(_ context.Context, id int) (*domain.Product, error) {
	if id <= 0 {
		return nil, fmt.Errorf("%w: product id must be a positive integer, got %d", domain.ErrInvalidInput, id)
	}

	s.mu.RLock()
	defer s.mu.RUnlock()
	for i := range s.products {
		if s.products[i].ID == id {
			p := s.products[i]
			return &p, nil
		}
	}
	return nil, &domain.ProductNotFoundError{ID: id, Cause: domain.ErrNotFound}
}

// Calls returns how many times ListProducts was invoked.
func (s *ProductSource) Calls() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.calls
}
