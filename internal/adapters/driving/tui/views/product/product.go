// Package product provides the product detail view for the TUI.
package product

import (
	"context"
	"errors"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/custodia-labs/vitrine/internal/adapters/driving/tui/components/status"
	"github.com/custodia-labs/vitrine/internal/adapters/driving/tui/keymap"
	"github.com/custodia-labs/vitrine/internal/adapters/driving/tui/messages"
	"github.com/custodia-labs/vitrine/internal/adapters/driving/tui/styles"
	"github.com/custodia-labs/vitrine/internal/core/domain"
	"github.com/custodia-labs/vitrine/internal/core/ports/driving"
	"github.com/custodia-labs/vitrine/internal/locale"
)

// ErrNoCatalogService indicates that no catalog service was provided.
var ErrNoCatalogService = errors.New("catalog service is required")

// View shows one product with its full description.
type View struct {
	styles    *styles.Styles
	keymap    *keymap.KeyMap
	statusbar *status.Bar
	catalog   driving.CatalogService
	ctx       context.Context

	id         int
	generation uint64
	product    *domain.Product
	err        error
	loading    bool

	width  int
	height int
	ready  bool
}

// NewView creates a new product detail view.
func NewView(s *styles.Styles, km *keymap.KeyMap, catalog driving.CatalogService) *View {
	if s == nil {
		s = styles.DefaultStyles()
	}
	if km == nil {
		km = keymap.DefaultKeyMap()
	}

	bar := status.NewBar(s, km)
	bar.SetState(status.StateProduct)

	return &View{
		styles:    s,
		keymap:    km,
		statusbar: bar,
		catalog:   catalog,
		ctx:       context.Background(),
		width:     80,
		height:    24,
	}
}

// WithContext sets the context used for fetches.
func (v *View) WithContext(ctx context.Context) *View {
	v.ctx = ctx
	return v
}

// Init initialises the view.
func (v *View) Init() tea.Cmd {
	return nil
}

// SetProduct switches the view to product id and returns the command
// loading it.
func (v *View) SetProduct(id int) tea.Cmd {
	v.id = id
	v.generation++
	v.product = nil
	v.err = nil
	v.loading = true
	v.statusbar.SetState(status.StateProduct)
	v.statusbar.SetMessage("")
	return v.load()
}

// load returns a command fetching the current product.
func (v *View) load() tea.Cmd {
	id := v.id
	gen := v.generation
	ctx := v.ctx
	catalog := v.catalog
	return func() tea.Msg {
		if catalog == nil {
			return messages.ProductLoaded{Generation: gen, ID: id, Err: ErrNoCatalogService}
		}
		p, err := catalog.GetProduct(ctx, id)
		return messages.ProductLoaded{Generation: gen, ID: id, Product: p, Err: err}
	}
}

// Update handles messages for the product view.
func (v *View) Update(msg tea.Msg) (*View, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		v.SetDimensions(msg.Width, msg.Height)
		return v, nil

	case messages.ProductLoaded:
		// Only the latest lookup may update the view.
		if msg.Generation != v.generation || msg.ID != v.id {
			return v, nil
		}
		v.loading = false
		v.product = msg.Product
		v.err = msg.Err
		if msg.Err != nil {
			v.statusbar.SetState(status.StateError)
			v.statusbar.SetMessage(msg.Err.Error())
		} else if msg.Product != nil {
			v.statusbar.SetMessage(msg.Product.Title)
		}
		return v, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "esc", "backspace":
			return v, func() tea.Msg {
				return messages.ViewChanged{View: messages.ViewCatalog}
			}
		case "q":
			return v, func() tea.Msg { return messages.Quit{} }
		case "r", "ctrl+r":
			if !v.loading {
				return v, v.SetProduct(v.id)
			}
		}
	}

	return v, nil
}

// View renders the product view.
func (v *View) View() string {
	if !v.ready {
		return "Initialising..."
	}

	sections := make([]string, 0, 12)

	switch {
	case v.loading:
		sections = append(sections, "", v.styles.Normal.Render(locale.ProductLoading))
	case v.err != nil:
		sections = append(sections, "", v.styles.Error.Render("⚠️  "+locale.ErrorText(v.err.Error())))
	case v.product != nil:
		sections = append(sections, v.renderProduct(v.product)...)
	}

	sections = append(sections, "", v.statusbar.View())
	return lipgloss.JoinVertical(lipgloss.Left, sections...)
}

// renderProduct renders every field of p.
func (v *View) renderProduct(p *domain.Product) []string {
	width := v.width - 4
	if width < 20 {
		width = 20
	}

	return []string{
		v.styles.Title.Render(p.Title),
		v.styles.Muted.Render(p.Category),
		"",
		v.styles.Normal.Width(width).Render(p.Description),
		"",
		v.styles.Price.Render(locale.PriceText(p.Price)) + "  " +
			v.styles.Rating.Render(locale.RatingText(p.Rating.Rate)) + " " +
			v.styles.Muted.Render(locale.ReviewsText(p.Rating.Count)),
		"",
		v.styles.Muted.Render(p.Image),
	}
}

// SetDimensions sets the view dimensions.
func (v *View) SetDimensions(width, height int) {
	v.width = width
	v.height = height
	v.ready = true
	v.statusbar.SetWidth(width)
}

// ProductID returns the id of the displayed product.
func (v *View) ProductID() int {
	return v.id
}

// Product returns the loaded product, or nil.
func (v *View) Product() *domain.Product {
	return v.product
}

// Err returns the load error, if any.
func (v *View) Err() error {
	return v.err
}

// Loading reports whether a load is in flight.
func (v *View) Loading() bool {
	return v.loading
}
