package mcp

import (
	"github.com/custodia-labs/vitrine/internal/core/ports/driving"
)

// Ports aggregates all driving port interfaces required by the MCP server.
// This provides a single injection point for dependency injection.
type Ports struct {
	// Catalog provides product listing and lookup.
	Catalog driving.CatalogService
}

// NewPorts creates a Ports value for the given catalog.
func NewPorts(catalog driving.CatalogService) *Ports {
	return &Ports{Catalog: catalog}
}

// Validate ensures all required ports are set.
func (p *Ports) Validate() error {
	if p == nil || p.Catalog == nil {
		return ErrMissingCatalogService
	}
	return nil
}
