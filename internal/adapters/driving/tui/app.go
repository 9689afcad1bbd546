package tui

import (
	"context"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/custodia-labs/vitrine/internal/adapters/driving/tui/keymap"
	"github.com/custodia-labs/vitrine/internal/adapters/driving/tui/messages"
	"github.com/custodia-labs/vitrine/internal/adapters/driving/tui/styles"
	"github.com/custodia-labs/vitrine/internal/adapters/driving/tui/views/catalog"
	"github.com/custodia-labs/vitrine/internal/adapters/driving/tui/views/product"
	"github.com/custodia-labs/vitrine/internal/core/domain"
	"github.com/custodia-labs/vitrine/internal/locale"
)

// App is the main TUI application following the Elm architecture.
// It implements tea.Model for use with Bubbletea.
type App struct {
	// ports provides access to core services via driving ports.
	ports *Ports

	// ctx is the context for cancellation.
	ctx context.Context

	// styles holds the TUI styles.
	styles *styles.Styles

	// catalogView is the product grid with its search bar.
	catalogView *catalog.View

	// productView shows a single product.
	productView *product.View

	// currentView tracks which view is active.
	currentView messages.ViewType

	// width and height are terminal dimensions.
	width  int
	height int

	// ready indicates if the app has initialised.
	ready bool
}

// Ensure App implements tea.Model.
var _ tea.Model = (*App)(nil)

// NewApp creates a new TUI application with the given ports.
func NewApp(ports *Ports) (*App, error) {
	if err := ports.Validate(); err != nil {
		return nil, fmt.Errorf("creating app: %w", err)
	}

	s := styles.DefaultStyles()
	km := keymap.DefaultKeyMap()

	return &App{
		ports:       ports,
		ctx:         context.Background(),
		styles:      s,
		catalogView: catalog.NewView(s, km, ports.Catalog),
		productView: product.NewView(s, km, ports.Catalog),
		currentView: messages.ViewCatalog,
	}, nil
}

// WithContext sets the context for the app and its views.
// A nil context leaves the current one in place.
func (a *App) WithContext(ctx context.Context) *App {
	if ctx == nil {
		return a
	}
	a.ctx = ctx
	a.catalogView.WithContext(ctx)
	a.productView.WithContext(ctx)
	return a
}

// Init implements tea.Model.
// It starts the first catalog load.
func (a *App) Init() tea.Cmd {
	return tea.Batch(
		tea.SetWindowTitle("vitrine - "+locale.Heading),
		a.catalogView.Init(),
	)
}

// Update implements tea.Model.
// It handles messages and updates the model state.
func (a *App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		a.SetDimensions(msg.Width, msg.Height)
		return a, nil

	case tea.KeyMsg:
		// Global quit with ctrl+c
		if msg.String() == "ctrl+c" {
			a.Close()
			return a, tea.Quit
		}

		switch a.currentView {
		case messages.ViewCatalog:
			a.catalogView, cmd = a.catalogView.Update(msg)
		case messages.ViewProduct:
			a.productView, cmd = a.productView.Update(msg)
		case messages.ViewHelp:
			if msg.Type == tea.KeyEsc || msg.String() == "?" {
				a.currentView = messages.ViewCatalog
			}
		}
		return a, cmd

	// The catalog keeps loading while another view is shown.
	case messages.ProductsLoaded, messages.RetryRequested, spinner.TickMsg:
		a.catalogView, cmd = a.catalogView.Update(msg)
		return a, cmd

	case messages.ProductSelected:
		a.currentView = messages.ViewProduct
		return a, a.productView.SetProduct(msg.ID)

	case messages.ProductLoaded:
		a.productView, cmd = a.productView.Update(msg)
		return a, cmd

	case messages.ViewChanged:
		a.currentView = msg.View
		return a, nil

	case messages.Quit:
		a.Close()
		return a, tea.Quit
	}

	// Forward other messages (cursor blink) to the catalog
	if a.currentView == messages.ViewCatalog {
		a.catalogView, cmd = a.catalogView.Update(msg)
	}
	return a, cmd
}

// View implements tea.Model.
// It renders the current view as a string.
func (a *App) View() string {
	if !a.ready {
		return "Initialising..."
	}

	switch a.currentView {
	case messages.ViewProduct:
		return a.productView.View()
	case messages.ViewHelp:
		return a.viewHelp()
	default:
		return a.catalogView.View()
	}
}

// viewHelp renders the help view.
func (a *App) viewHelp() string {
	var b strings.Builder
	b.WriteString(a.styles.Title.Render("Aide"))
	b.WriteString(`

Recherche:
  (saisie)    Filtrer par titre ou catégorie
  tab, enter  Passer à la grille

Grille:
  ←↓↑→, hjkl  Se déplacer
  enter       Ouvrir le produit
  r, ctrl+r   Recharger
  tab, esc    Revenir à la recherche
  q           Quitter

Produit:
  esc         Retour au catalogue
  r           Recharger
`)

	if a.ports.Settings != nil {
		if settings, err := a.ports.Settings.Get(); err == nil {
			b.WriteString("\nAPI: " + settings.BaseURL + "\n")
		}
	}

	b.WriteString("\n[esc] retour")
	return b.String()
}

// Run starts the TUI application. The catalog is closed when the program
// exits, whatever the cause.
func (a *App) Run() error {
	defer a.Close()
	p := tea.NewProgram(a, tea.WithAltScreen(), tea.WithContext(a.ctx))
	_, err := p.Run()
	return err
}

// Close tears down the catalog view. Outcomes of in-flight loads are
// discarded afterwards.
func (a *App) Close() {
	a.catalogView.Close()
}

// CurrentView returns the current view type.
func (a *App) CurrentView() messages.ViewType {
	return a.currentView
}

// CatalogState returns the load state of the catalog view.
func (a *App) CatalogState() domain.LoadState {
	return a.catalogView.State()
}

// SearchTerm returns the catalog search term.
func (a *App) SearchTerm() string {
	return a.catalogView.SearchTerm()
}

// Closed reports whether the catalog has been closed.
func (a *App) Closed() bool {
	return a.catalogView.Browser().Closed()
}

// Ready returns whether the app has been initialised.
func (a *App) Ready() bool {
	return a.ready
}

// SetDimensions sets the terminal dimensions on every view.
func (a *App) SetDimensions(width, height int) {
	a.width = width
	a.height = height
	a.ready = true
	a.catalogView.SetDimensions(width, height)
	a.productView.SetDimensions(width, height)
}
