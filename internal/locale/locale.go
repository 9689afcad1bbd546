// Package locale holds the fixed French strings shown by every surface of
// vitrine and the helpers that format product fields for display.
package locale

import (
	"fmt"

	"github.com/shopspring/decimal"
)

// Fixed interface strings.
const (
	Loading           = "Chargement des produits..."
	ProductLoading    = "Chargement du produit..."
	Retry             = "Réessayer"
	Heading           = "Liste des Produits"
	SearchPlaceholder = "Rechercher un produit..."
)

// ErrorPrefix starts every error line shown to the user.
const ErrorPrefix = "Erreur : "

// DescriptionLimit is the number of characters kept by TruncateDescription.
const DescriptionLimit = 100

// ErrorText formats the error line of a failed load.
func ErrorText(message string) string {
	return ErrorPrefix + message
}

// CountText formats the number of products in the filtered view.
func CountText(n int) string {
	return fmt.Sprintf("%d produit(s) trouvé(s)", n)
}

// NoMatchText formats the empty-state message for a search term.
func NoMatchText(term string) string {
	return `Aucun produit ne correspond à votre recherche "` + term + `"`
}

// PriceText renders a price exactly as the API supplied it.
func PriceText(price decimal.Decimal) string {
	return "$" + price.String()
}

// RatingText renders an average rating.
func RatingText(rate decimal.Decimal) string {
	return "⭐ " + rate.String()
}

// ReviewsText renders a review count.
func ReviewsText(count int) string {
	return fmt.Sprintf("(%d avis)", count)
}

// TruncateDescription keeps the first DescriptionLimit characters of a
// description and always appends an ellipsis.
func TruncateDescription(description string) string {
	runes := []rune(description)
	if len(runes) > DescriptionLimit {
		runes = runes[:DescriptionLimit]
	}
	return string(runes) + "..."
}
