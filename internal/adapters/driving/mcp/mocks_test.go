package mcp

import (
	"context"

	"github.com/shopspring/decimal"

	"github.com/custodia-labs/vitrine/internal/core/domain"
	"github.com/custodia-labs/vitrine/internal/core/services"
)

// mockCatalogService is a mock implementation of driving.CatalogService.
type mockCatalogService struct {
	products []domain.Product
	err      error
}

func (m *mockCatalogService) ListProducts(_ context.Context) ([]domain.Product, error) {
	if m.err != nil {
		return nil, m.err
	}
	return m.products, nil
}

func (m *mockCatalogService) GetProduct(_ context.Context, id int) (*domain.Product, error) {
	if m.err != nil {
		return nil, m.err
	}
	for i := range m.products {
		if m.products[i].ID == id {
			return &m.products[i], nil
		}
	}
	return nil, &domain.ProductNotFoundError{ID: id, Cause: domain.ErrNotFound}
}

func (m *mockCatalogService) Search(_ context.Context, term string) (domain.FilteredView, error) {
	if m.err != nil {
		return domain.FilteredView{Term: term}, m.err
	}
	return services.DeriveView(m.products, term), nil
}

func sampleProducts() []domain.Product {
	return []domain.Product{
		{
			ID:          1,
			Title:       "Sac à dos Fjallraven",
			Category:    "men's clothing",
			Description: "Parfait pour la randonnée",
			Price:       decimal.RequireFromString("109.95"),
			Image:       "https://example.com/1.jpg",
			Rating:      domain.Rating{Rate: decimal.RequireFromString("3.9"), Count: 120},
		},
		{
			ID:          2,
			Title:       "Disque SSD",
			Category:    "electronics",
			Description: "Stockage rapide",
			Price:       decimal.RequireFromString("109"),
			Image:       "https://example.com/2.jpg",
			Rating:      domain.Rating{Rate: decimal.RequireFromString("4.8"), Count: 319},
		},
	}
}

func newTestServer(catalog *mockCatalogService) *Server {
	s, err := NewServer(NewPorts(catalog), "test")
	if err != nil {
		panic(err)
	}
	return s
}
