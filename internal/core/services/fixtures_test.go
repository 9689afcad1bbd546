package services

import (
	"github.com/shopspring/decimal"

	"github.com/custodia-labs/vitrine/internal/core/domain"
)

func product(id int, title, category, price string) domain.Product {
	return domain.Product{
		ID:          id,
		Title:       title,
		Category:    category,
		Description: "desc " + title,
		Price:       decimal.RequireFromString(price),
		Image:       "img.jpg",
		Rating:      domain.Rating{Rate: decimal.RequireFromString("4.5"), Count: 10},
	}
}

// threeProducts mirrors the search scenario: one laptop, one shirt, one phone.
func threeProducts() []domain.Product {
	return []domain.Product{
		product(1, "Ordinateur Portable", "electronics", "999.99"),
		product(2, "T-shirt Homme", "clothing", "19.99"),
		product(3, "Smartphone", "electronics", "799.99"),
	}
}

func titles(products []domain.Product) []string {
	out := make([]string, len(products))
	for i := range products {
		out[i] = products[i].Title
	}
	return out
}
