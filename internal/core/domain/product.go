package domain

import "github.com/shopspring/decimal"

// Product is a single catalog entry as returned by the remote API.
// Products are immutable from vitrine's perspective.
type Product struct {
	// ID is the unique identifier assigned by the API.
	ID int `json:"id"`

	// Title is the display name.
	Title string `json:"title"`

	// Category is a free-form label such as "electronics".
	Category string `json:"category"`

	// Description may be long; views truncate it for display.
	Description string `json:"description"`

	// Price is kept as a decimal so the upstream value renders unchanged.
	Price decimal.Decimal `json:"price"`

	// Image is a URI reference to the product picture.
	Image string `json:"image"`

	// Rating aggregates customer reviews.
	Rating Rating `json:"rating"`
}

// Rating is the review summary of a product.
type Rating struct {
	// Rate is the average score in [0,5].
	Rate decimal.Decimal `json:"rate"`

	// Count is the number of reviews.
	Count int `json:"count"`
}
