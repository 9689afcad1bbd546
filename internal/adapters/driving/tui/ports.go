// Package tui provides an interactive terminal user interface for vitrine.
// It implements a driving adapter following hexagonal architecture principles.
package tui

import (
	"fmt"

	"github.com/custodia-labs/vitrine/internal/core/ports/driving"
)

// Ports aggregates all driving port interfaces required by the TUI.
// This provides a single injection point for dependency injection.
type Ports struct {
	// Catalog loads products for the catalog and detail views.
	Catalog driving.CatalogService

	// Settings exposes the effective configuration. Optional.
	Settings driving.SettingsService
}

// NewPorts creates a new Ports aggregate with the given services.
func NewPorts(catalog driving.CatalogService, settings driving.SettingsService) *Ports {
	return &Ports{
		Catalog:  catalog,
		Settings: settings,
	}
}

// Validate ensures all required ports are set.
func (p *Ports) Validate() error {
	if p == nil {
		return ErrInvalidPorts
	}
	if p.Catalog == nil {
		return fmt.Errorf("%w: %w", ErrInvalidPorts, ErrMissingCatalogService)
	}
	return nil
}
