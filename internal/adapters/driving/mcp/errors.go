// Package mcp provides an MCP (Model Context Protocol) server adapter for vitrine.
// It lets AI assistants list, filter and inspect catalog products.
package mcp

import "errors"

// ErrMissingCatalogService is returned when the catalog service is not provided.
var ErrMissingCatalogService = errors.New("mcp: catalog service is required")
