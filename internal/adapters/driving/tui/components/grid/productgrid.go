// Package grid provides the product card grid for the TUI.
package grid

import (
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/custodia-labs/vitrine/internal/adapters/driving/tui/styles"
	"github.com/custodia-labs/vitrine/internal/core/domain"
	"github.com/custodia-labs/vitrine/internal/locale"
)

// cardHeight is the inner height of a card: title, category, four lines of
// description, a spacer and the price line.
const cardHeight = 8

// ProductGrid displays products as a navigable grid of cards.
type ProductGrid struct {
	products []domain.Product
	selected int
	styles   *styles.Styles
	width    int
	height   int
}

// NewProductGrid creates a new product grid component.
func NewProductGrid(s *styles.Styles) *ProductGrid {
	if s == nil {
		s = styles.DefaultStyles()
	}

	return &ProductGrid{
		styles: s,
		width:  80,
		height: 20,
	}
}

// Init initialises the grid.
func (g *ProductGrid) Init() tea.Cmd {
	return nil
}

// Update handles grid navigation messages.
func (g *ProductGrid) Update(msg tea.Msg) (*ProductGrid, tea.Cmd) {
	if msg, ok := msg.(tea.KeyMsg); ok {
		switch msg.String() {
		case "up", "k":
			g.MoveUp()
		case "down", "j":
			g.MoveDown()
		case "left", "h":
			g.MoveLeft()
		case "right", "l":
			g.MoveRight()
		}
	}
	return g, nil
}

// View renders the visible rows of cards.
func (g *ProductGrid) View() string {
	if len(g.products) == 0 {
		return ""
	}

	cols := g.Columns()
	rows := (len(g.products) + cols - 1) / cols

	visibleRows := g.height / (cardHeight + 2)
	if visibleRows < 1 {
		visibleRows = 1
	}
	selectedRow := g.selected / cols
	startRow := 0
	if selectedRow >= visibleRows {
		startRow = selectedRow - visibleRows + 1
	}
	endRow := startRow + visibleRows
	if endRow > rows {
		endRow = rows
	}

	rendered := make([]string, 0, endRow-startRow)
	for row := startRow; row < endRow; row++ {
		cards := make([]string, 0, cols)
		for col := 0; col < cols; col++ {
			i := row*cols + col
			if i >= len(g.products) {
				break
			}
			cards = append(cards, g.renderCard(&g.products[i], i == g.selected))
		}
		rendered = append(rendered, lipgloss.JoinHorizontal(lipgloss.Top, cards...))
	}

	return strings.Join(rendered, "\n")
}

// renderCard formats one product card.
func (g *ProductGrid) renderCard(p *domain.Product, selected bool) string {
	inner := styles.CardWidth - 4

	footer := g.styles.Price.Render(locale.PriceText(p.Price)) + "  " +
		g.styles.Rating.Render(locale.RatingText(p.Rating.Rate)) + " " +
		g.styles.Muted.Render(locale.ReviewsText(p.Rating.Count))

	body := lipgloss.JoinVertical(lipgloss.Left,
		g.styles.Subtitle.Render(clip(p.Title, inner)),
		g.styles.Muted.Render(clip(p.Category, inner)),
		g.styles.Normal.Width(inner).Height(4).MaxHeight(4).
			Render(locale.TruncateDescription(p.Description)),
		"",
		footer,
	)

	card := g.styles.Card
	if selected {
		card = g.styles.SelectedCard
	}
	return card.Height(cardHeight).Render(body)
}

// clip shortens s to at most n characters.
func clip(s string, n int) string {
	runes := []rune(s)
	if len(runes) <= n {
		return s
	}
	return string(runes[:n-1]) + "…"
}

// SetProducts replaces the displayed products and resets the cursor.
func (g *ProductGrid) SetProducts(products []domain.Product) {
	g.products = products
	g.selected = 0
}

// Products returns the displayed products.
func (g *ProductGrid) Products() []domain.Product {
	return g.products
}

// Columns returns how many cards fit on one row.
func (g *ProductGrid) Columns() int {
	cols := g.width / styles.CardWidth
	if cols < 1 {
		return 1
	}
	return cols
}

// Selected returns the index of the selected product.
func (g *ProductGrid) Selected() int {
	return g.selected
}

// SetSelected sets the selected index.
func (g *ProductGrid) SetSelected(index int) {
	if index >= 0 && index < len(g.products) {
		g.selected = index
	}
}

// SelectedProduct returns the product under the cursor, or nil if none.
func (g *ProductGrid) SelectedProduct() *domain.Product {
	if g.selected < 0 || g.selected >= len(g.products) {
		return nil
	}
	return &g.products[g.selected]
}

// MoveUp moves the cursor one row up.
func (g *ProductGrid) MoveUp() {
	if g.selected-g.Columns() >= 0 {
		g.selected -= g.Columns()
	}
}

// MoveDown moves the cursor one row down.
func (g *ProductGrid) MoveDown() {
	if g.selected+g.Columns() < len(g.products) {
		g.selected += g.Columns()
	}
}

// MoveLeft moves the cursor to the previous card.
func (g *ProductGrid) MoveLeft() {
	if g.selected > 0 {
		g.selected--
	}
}

// MoveRight moves the cursor to the next card.
func (g *ProductGrid) MoveRight() {
	if g.selected < len(g.products)-1 {
		g.selected++
	}
}

// SetDimensions sets the component dimensions.
func (g *ProductGrid) SetDimensions(width, height int) {
	g.width = width
	g.height = height
}

// Width returns the current width.
func (g *ProductGrid) Width() int {
	return g.width
}

// Height returns the current height.
func (g *ProductGrid) Height() int {
	return g.height
}

// Count returns the number of displayed products.
func (g *ProductGrid) Count() int {
	return len(g.products)
}

// IsEmpty returns whether the grid is empty.
func (g *ProductGrid) IsEmpty() bool {
	return len(g.products) == 0
}
