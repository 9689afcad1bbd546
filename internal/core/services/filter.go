package services

import (
	"strings"

	"github.com/custodia-labs/vitrine/internal/core/domain"
)

// FilterProducts returns the products whose title or category contains term,
// ignoring case, in their original order. An empty term matches everything.
// The input slice is never modified.
func FilterProducts(products []domain.Product, term string) []domain.Product {
	needle := strings.ToLower(term)

	filtered := make([]domain.Product, 0, len(products))
	for i := range products {
		if matches(&products[i], needle) {
			filtered = append(filtered, products[i])
		}
	}
	return filtered
}

// matches reports whether a lower-cased needle occurs in the title or category.
func matches(p *domain.Product, needle string) bool {
	return strings.Contains(strings.ToLower(p.Title), needle) ||
		strings.Contains(strings.ToLower(p.Category), needle)
}

// DeriveView filters products by term and computes the count and the
// no-match signal.
func DeriveView(products []domain.Product, term string) domain.FilteredView {
	filtered := FilterProducts(products, term)
	return domain.FilteredView{
		Products: filtered,
		Term:     term,
		Count:    len(filtered),
		NoMatch:  len(filtered) == 0 && term != "",
	}
}
