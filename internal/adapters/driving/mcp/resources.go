package mcp

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/custodia-labs/vitrine/internal/core/domain"
)

const (
	// uriScheme is the custom URI scheme for vitrine resources.
	uriScheme = "vitrine://"

	jsonMIME = "application/json"
)

// registerResources registers all resource handlers with the MCP server.
func (s *Server) registerResources() {
	s.server.AddResource(&mcp.Resource{
		URI:         uriScheme + "products",
		Name:        "products",
		Description: "Every product of the catalog in API order",
		MIMEType:    jsonMIME,
	}, s.handleProductsResource)

	s.server.AddResourceTemplate(&mcp.ResourceTemplate{
		URITemplate: uriScheme + "products/{productId}",
		Name:        "product",
		Description: "A single catalog product",
		MIMEType:    jsonMIME,
	}, s.handleProductResource)
}

// handleProductsResource returns the full catalog.
func (s *Server) handleProductsResource(
	ctx context.Context,
	req *mcp.ReadResourceRequest,
) (*mcp.ReadResourceResult, error) {
	products, err := s.ports.Catalog.ListProducts(ctx)
	if err != nil {
		return nil, fmt.Errorf("listing products: %w", err)
	}

	out := make([]ProductOutput, len(products))
	for i := range products {
		out[i] = toProductOutput(&products[i])
	}
	return jsonResult(req.Params.URI, out)
}

// handleProductResource returns one product.
func (s *Server) handleProductResource(
	ctx context.Context,
	req *mcp.ReadResourceRequest,
) (*mcp.ReadResourceResult, error) {
	id, ok := extractProductID(req.Params.URI)
	if !ok {
		return nil, mcp.ResourceNotFoundError(req.Params.URI)
	}

	product, err := s.ports.Catalog.GetProduct(ctx, id)
	if errors.Is(err, domain.ErrNotFound) {
		return nil, mcp.ResourceNotFoundError(req.Params.URI)
	}
	if err != nil {
		return nil, fmt.Errorf("getting product: %w", err)
	}
	return jsonResult(req.Params.URI, toProductOutput(product))
}

func jsonResult(uri string, v any) (*mcp.ReadResourceResult, error) {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("marshalling %s: %w", uri, err)
	}

	return &mcp.ReadResourceResult{
		Contents: []*mcp.ResourceContents{{
			URI:      uri,
			MIMEType: jsonMIME,
			Text:     string(data),
		}},
	}, nil
}

// extractProductID extracts a positive id from a URI like vitrine://products/{productId}.
func extractProductID(uri string) (int, bool) {
	const prefix = uriScheme + "products/"

	if !strings.HasPrefix(uri, prefix) {
		return 0, false
	}

	id, err := strconv.Atoi(strings.TrimPrefix(uri, prefix))
	if err != nil || id <= 0 {
		return 0, false
	}
	return id, true
}
