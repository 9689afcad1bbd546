package services

import (
	"context"
	"sync/atomic"

	"github.com/google/uuid"

	"github.com/custodia-labs/vitrine/internal/core/domain"
	"github.com/custodia-labs/vitrine/internal/core/ports/driving"
	"github.com/custodia-labs/vitrine/internal/logger"
)

// Attempt identifies one load of the catalog. Only the latest attempt of an
// open browser may change its state.
type Attempt struct {
	// Generation increases with every load started by the browser.
	Generation uint64
}

// ProductBrowser is the view-model of a catalog screen. It owns the load
// lifecycle, the search term and the derived filtered view.
//
// A ProductBrowser is not safe for concurrent use: drive it from a single
// goroutine (the bubbletea Update loop or a command's RunE) and hand fetch
// outcomes back through Resolve.
type ProductBrowser struct {
	catalog    driving.CatalogService
	sessionID  string
	state      domain.LoadState
	term       string
	generation uint64
	closed     atomic.Bool
}

// NewProductBrowser creates a browser in the Loading state. No fetch is
// started until Begin or Load is called.
func NewProductBrowser(catalog driving.CatalogService) *ProductBrowser {
	return &ProductBrowser{
		catalog:   catalog,
		sessionID: uuid.NewString(),
		state:     domain.Loading{},
	}
}

// SessionID identifies this browser in log lines.
func (b *ProductBrowser) SessionID() string {
	return b.sessionID
}

// Begin enters Loading and returns the attempt the caller must pass to
// Resolve once the fetch completes. If a load is already in flight its
// attempt is returned unchanged and started is false, so no overlapping fetch
// is ever started.
func (b *ProductBrowser) Begin() (attempt Attempt, started bool) {
	if b.closed.Load() {
		return Attempt{Generation: b.generation}, false
	}
	if b.generation > 0 && b.state.Phase() == domain.PhaseLoading {
		return Attempt{Generation: b.generation}, false
	}

	b.generation++
	b.state = domain.Loading{}
	logger.Debug("session %s: load attempt %d started", b.sessionID, b.generation)
	return Attempt{Generation: b.generation}, true
}

// Retry restarts the load from Success or Failed. It behaves like Begin.
func (b *ProductBrowser) Retry() (Attempt, bool) {
	logger.Debug("session %s: retry requested in %s", b.sessionID, b.state.Phase())
	return b.Begin()
}

// Fetch runs the network call for an attempt. It touches no browser state
// and may run on any goroutine. A closed browser fails with domain.ErrClosed
// without calling the catalog.
func (b *ProductBrowser) Fetch(ctx context.Context) ([]domain.Product, error) {
	if b.closed.Load() {
		return nil, domain.ErrClosed
	}
	return b.catalog.ListProducts(ctx)
}

// Resolve applies the outcome of attempt. Outcomes of superseded attempts and
// outcomes arriving after Close are discarded; the return value reports
// whether the state changed.
func (b *ProductBrowser) Resolve(attempt Attempt, products []domain.Product, err error) bool {
	if b.closed.Load() {
		logger.Debug("session %s: discarding attempt %d after close", b.sessionID, attempt.Generation)
		return false
	}
	if attempt.Generation != b.generation || b.state.Phase() != domain.PhaseLoading {
		logger.Debug("session %s: discarding stale attempt %d (current %d)",
			b.sessionID, attempt.Generation, b.generation)
		return false
	}

	if err != nil {
		b.state = domain.Failed{Message: err.Error()}
		logger.Debug("session %s: attempt %d failed: %v", b.sessionID, attempt.Generation, err)
		return true
	}

	b.state = domain.Success{Products: products}
	logger.Debug("session %s: attempt %d loaded %d products", b.sessionID, attempt.Generation, len(products))
	return true
}

// Load runs a complete attempt synchronously and returns the resulting state.
func (b *ProductBrowser) Load(ctx context.Context) domain.LoadState {
	attempt, started := b.Begin()
	if !started {
		return b.state
	}
	products, err := b.Fetch(ctx)
	b.Resolve(attempt, products, err)
	return b.state
}

// State returns the active load state.
func (b *ProductBrowser) State() domain.LoadState {
	return b.state
}

// SetSearchTerm replaces the search term. It never triggers a fetch.
func (b *ProductBrowser) SetSearchTerm(term string) {
	b.term = term
}

// SearchTerm returns the current search term.
func (b *ProductBrowser) SearchTerm() string {
	return b.term
}

// View derives the filtered view from the loaded products and the current
// term. ok is false unless the browser is in Success.
func (b *ProductBrowser) View() (view domain.FilteredView, ok bool) {
	success, ok := b.state.(domain.Success)
	if !ok {
		return domain.FilteredView{Term: b.term}, false
	}
	return DeriveView(success.Products, b.term), true
}

// Close tears the browser down. Later outcomes are discarded and Begin
// becomes a no-op.
func (b *ProductBrowser) Close() {
	if !b.closed.CompareAndSwap(false, true) {
		return
	}
	logger.Debug("session %s: closed", b.sessionID)
}

// Closed reports whether Close has been called.
func (b *ProductBrowser) Closed() bool {
	return b.closed.Load()
}
