package mcp

import (
	"context"
	"fmt"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/custodia-labs/vitrine/internal/core/domain"
	"github.com/custodia-labs/vitrine/internal/locale"
)

// ListProductsInput is the input schema for the list_products tool.
type ListProductsInput struct {
	Search string `json:"search,omitempty" jsonschema:"case-insensitive substring matched against title and category"`
}

// ListProductsOutput is the output schema for the list_products tool.
type ListProductsOutput struct {
	Products  []ProductOutput `json:"products"`
	Count     int             `json:"count"`
	CountText string          `json:"count_text"`
	NoMatch   string          `json:"no_match,omitempty"`
}

// GetProductInput is the input schema for the get_product tool.
type GetProductInput struct {
	ID int `json:"id" jsonschema:"numeric product id"`
}

// ProductOutput represents a single product. Decimal fields are rendered as
// strings so values round-trip unchanged.
type ProductOutput struct {
	ID          int    `json:"id"`
	Title       string `json:"title"`
	Category    string `json:"category"`
	Description string `json:"description"`
	Price       string `json:"price"`
	Image       string `json:"image"`
	Rating      string `json:"rating"`
	Reviews     int    `json:"reviews"`
}

func toProductOutput(p *domain.Product) ProductOutput {
	return ProductOutput{
		ID:          p.ID,
		Title:       p.Title,
		Category:    p.Category,
		Description: p.Description,
		Price:       p.Price.String(),
		Image:       p.Image,
		Rating:      p.Rating.Rate.String(),
		Reviews:     p.Rating.Count,
	}
}

// registerTools registers all tool handlers with the MCP server.
func (s *Server) registerTools() {
	mcp.AddTool(s.server, &mcp.Tool{
		Name:        "list_products",
		Description: "List catalog products, optionally filtered by title or category",
	}, s.handleListProducts)

	mcp.AddTool(s.server, &mcp.Tool{
		Name:        "get_product",
		Description: "Get every field of a single product by id",
	}, s.handleGetProduct)
}

// handleListProducts handles the list_products tool invocation.
func (s *Server) handleListProducts(
	ctx context.Context,
	_ *mcp.CallToolRequest,
	input ListProductsInput,
) (*mcp.CallToolResult, ListProductsOutput, error) {
	view, err := s.ports.Catalog.Search(ctx, input.Search)
	if err != nil {
		return nil, ListProductsOutput{}, fmt.Errorf(locale.ErrorPrefix+"%w", err)
	}

	output := ListProductsOutput{
		Products:  make([]ProductOutput, len(view.Products)),
		Count:     view.Count,
		CountText: locale.CountText(view.Count),
	}
	if view.NoMatch {
		output.NoMatch = locale.NoMatchText(view.Term)
	}
	for i := range view.Products {
		output.Products[i] = toProductOutput(&view.Products[i])
	}

	return nil, output, nil
}

// handleGetProduct handles the get_product tool invocation.
func (s *Server) handleGetProduct(
	ctx context.Context,
	_ *mcp.CallToolRequest,
	input GetProductInput,
) (*mcp.CallToolResult, ProductOutput, error) {
	product, err := s.ports.Catalog.GetProduct(ctx, input.ID)
	if err != nil {
		return nil, ProductOutput{}, fmt.Errorf(locale.ErrorPrefix+"%w", err)
	}
	return nil, toProductOutput(product), nil
}
