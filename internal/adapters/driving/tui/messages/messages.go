// Package messages defines Bubbletea message types for the TUI.
// Messages represent events and commands that flow through the Elm architecture.
package messages

import (
	"github.com/custodia-labs/vitrine/internal/core/domain"
)

// ProductsLoaded carries the outcome of one catalog load back to the model.
// Generation identifies the load attempt it answers.
type ProductsLoaded struct {
	Generation uint64
	Products   []domain.Product
	Err        error
}

// RetryRequested asks the catalog view to reload.
type RetryRequested struct{}

// ProductSelected is sent when a product card is opened.
type ProductSelected struct {
	ID int
}

// ProductLoaded carries a single product back to the detail view.
// Generation identifies the lookup it answers.
type ProductLoaded struct {
	Generation uint64
	ID         int
	Product    *domain.Product
	Err        error
}

// ViewChanged is sent when navigating between views.
type ViewChanged struct {
	View ViewType
}

// ViewType identifies which view is currently active.
type ViewType int

const (
	// ViewCatalog is the product grid with its search bar.
	ViewCatalog ViewType = iota
	// ViewProduct shows a single product.
	ViewProduct
	// ViewHelp is the help/keybindings view.
	ViewHelp
)

// String returns the string representation of the view type.
func (v ViewType) String() string {
	switch v {
	case ViewCatalog:
		return "catalog"
	case ViewProduct:
		return "product"
	case ViewHelp:
		return "help"
	default:
		return "unknown"
	}
}

// Quit signals the application should exit.
type Quit struct{}
