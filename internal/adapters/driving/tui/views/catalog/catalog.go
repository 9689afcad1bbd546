// Package catalog provides the product catalog view for the TUI.
package catalog

import (
	"context"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/custodia-labs/vitrine/internal/adapters/driving/tui/components/grid"
	"github.com/custodia-labs/vitrine/internal/adapters/driving/tui/components/input"
	"github.com/custodia-labs/vitrine/internal/adapters/driving/tui/components/status"
	"github.com/custodia-labs/vitrine/internal/adapters/driving/tui/keymap"
	"github.com/custodia-labs/vitrine/internal/adapters/driving/tui/messages"
	"github.com/custodia-labs/vitrine/internal/adapters/driving/tui/styles"
	"github.com/custodia-labs/vitrine/internal/core/domain"
	"github.com/custodia-labs/vitrine/internal/core/ports/driving"
	"github.com/custodia-labs/vitrine/internal/core/services"
	"github.com/custodia-labs/vitrine/internal/locale"
)

// View is the catalog screen: loading indicator, error block with retry, or
// the search bar above the product grid.
type View struct {
	styles    *styles.Styles
	keymap    *keymap.KeyMap
	spinner   spinner.Model
	input     *input.FilterInput
	grid      *grid.ProductGrid
	statusbar *status.Bar

	catalog driving.CatalogService
	browser *services.ProductBrowser
	ctx     context.Context

	width      int
	height     int
	ready      bool
	focusInput bool // true = typing in the search bar, false = moving in the grid
}

// NewView creates a new catalog view. The first load starts with Init.
func NewView(s *styles.Styles, km *keymap.KeyMap, catalog driving.CatalogService) *View {
	if s == nil {
		s = styles.DefaultStyles()
	}
	if km == nil {
		km = keymap.DefaultKeyMap()
	}

	sp := spinner.New(spinner.WithSpinner(spinner.Dot))
	sp.Style = s.Title

	return &View{
		styles:     s,
		keymap:     km,
		spinner:    sp,
		input:      input.NewFilterInput(s),
		grid:       grid.NewProductGrid(s),
		statusbar:  status.NewBar(s, km),
		catalog:    catalog,
		browser:    services.NewProductBrowser(catalog),
		ctx:        context.Background(),
		width:      80,
		height:     24,
		focusInput: true,
	}
}

// WithContext sets the context used for fetches.
func (v *View) WithContext(ctx context.Context) *View {
	v.ctx = ctx
	return v
}

// Init starts the first load.
func (v *View) Init() tea.Cmd {
	return tea.Batch(v.input.Init(), v.load())
}

// load begins an attempt and returns the command running its fetch, or nil
// when a load is already in flight or the view is closed.
func (v *View) load() tea.Cmd {
	attempt, started := v.browser.Begin()
	if !started {
		return nil
	}
	return v.fetch(attempt)
}

// fetch returns the command running the network call for attempt. The
// command touches no view state; its outcome comes back as ProductsLoaded.
func (v *View) fetch(attempt services.Attempt) tea.Cmd {
	v.statusbar.SetState(status.StateLoading)
	v.grid.SetProducts(nil)

	ctx := v.ctx
	browser := v.browser
	catalog := v.catalog
	run := func() tea.Msg {
		if catalog == nil {
			return messages.ProductsLoaded{Generation: attempt.Generation, Err: ErrNoCatalogService}
		}
		products, err := browser.Fetch(ctx)
		return messages.ProductsLoaded{Generation: attempt.Generation, Products: products, Err: err}
	}
	return tea.Batch(v.spinner.Tick, run)
}

// Update handles messages for the catalog view.
func (v *View) Update(msg tea.Msg) (*View, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		v.SetDimensions(msg.Width, msg.Height)
		return v, nil

	case spinner.TickMsg:
		if v.browser.State().Phase() != domain.PhaseLoading {
			return v, nil
		}
		var cmd tea.Cmd
		v.spinner, cmd = v.spinner.Update(msg)
		return v, cmd

	case messages.ProductsLoaded:
		v.handleProductsLoaded(msg)
		return v, nil

	case messages.RetryRequested:
		return v, v.Retry()

	case tea.KeyMsg:
		return v.handleKeyMsg(msg)
	}

	// Forward the rest (cursor blink) to the input
	_, cmd := v.input.Update(msg)
	return v, cmd
}

// handleProductsLoaded applies a fetch outcome through the browser.
func (v *View) handleProductsLoaded(msg messages.ProductsLoaded) {
	attempt := services.Attempt{Generation: msg.Generation}
	if !v.browser.Resolve(attempt, msg.Products, msg.Err) {
		return
	}

	if failed, ok := v.browser.State().(domain.Failed); ok {
		v.grid.SetProducts(nil)
		v.statusbar.SetState(status.StateError)
		v.statusbar.SetMessage(failed.Message)
		return
	}

	v.statusbar.SetState(status.StateReady)
	v.statusbar.SetMessage("")
	v.refresh()
}

// refresh recomputes the filtered view and pushes it to the grid.
func (v *View) refresh() {
	view, ok := v.browser.View()
	if !ok {
		return
	}
	v.grid.SetProducts(view.Products)
	v.statusbar.SetCount(view.Count)
}

// handleKeyMsg processes keyboard input.
func (v *View) handleKeyMsg(msg tea.KeyMsg) (*View, tea.Cmd) {
	switch v.browser.State().(type) {
	case domain.Loading:
		if msg.String() == "q" {
			return v, quit
		}
		return v, nil

	case domain.Failed:
		if key.Matches(msg, v.keymap.Retry) || key.Matches(msg, v.keymap.Select) {
			return v, requestRetry
		}
		if msg.String() == "q" {
			return v, quit
		}
		return v, nil
	}

	if msg.String() == "ctrl+r" {
		return v, requestRetry
	}

	if key.Matches(msg, v.keymap.Focus) {
		v.toggleFocus()
		return v, nil
	}

	// Input mode: keys edit the search term
	if v.focusInput {
		if msg.Type == tea.KeyEnter || msg.Type == tea.KeyDown {
			v.toggleFocus()
			return v, nil
		}
		changed, cmd := v.input.Update(msg)
		if changed {
			v.browser.SetSearchTerm(v.input.Term())
			v.refresh()
		}
		return v, cmd
	}

	// Grid mode
	switch {
	case key.Matches(msg, v.keymap.Select):
		if p := v.grid.SelectedProduct(); p != nil {
			id := p.ID
			return v, func() tea.Msg { return messages.ProductSelected{ID: id} }
		}
		return v, nil
	case key.Matches(msg, v.keymap.Retry):
		return v, requestRetry
	case key.Matches(msg, v.keymap.Help):
		return v, func() tea.Msg { return messages.ViewChanged{View: messages.ViewHelp} }
	case key.Matches(msg, v.keymap.Back), msg.String() == "/":
		v.toggleFocus()
		return v, nil
	case msg.String() == "q":
		return v, quit
	}

	v.grid, _ = v.grid.Update(msg)
	return v, nil
}

func quit() tea.Msg {
	return messages.Quit{}
}

// requestRetry routes a reload through Update so it is handled like any
// other RetryRequested.
func requestRetry() tea.Msg {
	return messages.RetryRequested{}
}

// toggleFocus switches between the search input and the grid.
func (v *View) toggleFocus() {
	v.focusInput = !v.focusInput
	v.input.SetFocused(v.focusInput)
}

// Retry reloads the catalog from Success or Failed. It returns nil while a
// load is in flight.
func (v *View) Retry() tea.Cmd {
	attempt, started := v.browser.Retry()
	if !started {
		return nil
	}
	return v.fetch(attempt)
}

// View renders the catalog view.
func (v *View) View() string {
	if !v.ready {
		return "Initialising..."
	}

	sections := make([]string, 0, 10)

	switch state := v.browser.State().(type) {
	case domain.Loading:
		sections = append(sections, "", v.spinner.View()+" "+v.styles.Normal.Render(locale.Loading))

	case domain.Failed:
		sections = append(sections,
			"",
			v.styles.Error.Render("⚠️  "+locale.ErrorText(state.Message)),
			"",
			v.styles.Button.Render(locale.Retry),
		)

	case domain.Success:
		sections = append(sections, v.renderCatalog()...)
	}

	sections = append(sections, "", v.statusbar.View())
	return lipgloss.JoinVertical(lipgloss.Left, sections...)
}

// renderCatalog renders the heading, search bar, count and grid.
func (v *View) renderCatalog() []string {
	view, _ := v.browser.View()

	sections := []string{
		v.styles.Title.Render(locale.Heading),
		"",
		lipgloss.JoinHorizontal(lipgloss.Center,
			v.input.View(), "  ", v.styles.Muted.Render(locale.CountText(view.Count))),
		"",
	}

	if view.NoMatch {
		return append(sections, v.styles.Muted.Render(locale.NoMatchText(view.Term)))
	}
	return append(sections, v.grid.View())
}

// SetDimensions sets the view dimensions.
func (v *View) SetDimensions(width, height int) {
	v.width = width
	v.height = height
	v.ready = true

	v.input.SetWidth(width / 2)
	v.grid.SetDimensions(width, height-9) // heading, search bar, count, status
	v.statusbar.SetWidth(width)
}

// Close tears the view down. Outcomes of in-flight loads are discarded.
func (v *View) Close() {
	v.browser.Close()
}

// Browser returns the view-model behind the view.
func (v *View) Browser() *services.ProductBrowser {
	return v.browser
}

// State returns the current load state.
func (v *View) State() domain.LoadState {
	return v.browser.State()
}

// SearchTerm returns the current search term.
func (v *View) SearchTerm() string {
	return v.browser.SearchTerm()
}

// SetSearchTerm replaces the search term and the input value.
func (v *View) SetSearchTerm(term string) {
	v.input.SetTerm(term)
	v.browser.SetSearchTerm(term)
	v.refresh()
}

// SelectedProduct returns the product under the grid cursor.
func (v *View) SelectedProduct() *domain.Product {
	return v.grid.SelectedProduct()
}

// InputFocused returns whether the search input has focus.
func (v *View) InputFocused() bool {
	return v.focusInput
}

// Ready returns whether the view is ready to render.
func (v *View) Ready() bool {
	return v.ready
}

// Width returns the current width.
func (v *View) Width() int {
	return v.width
}

// Height returns the current height.
func (v *View) Height() int {
	return v.height
}
