package domain

// LoadState is the load lifecycle of a catalog view.
// Exactly one of Loading, Success or Failed is active at any time.
type LoadState interface {
	// Phase names the active variant.
	Phase() LoadPhase

	loadState()
}

// LoadPhase identifies a LoadState variant.
type LoadPhase string

// Load phases.
const (
	PhaseLoading LoadPhase = "loading"
	PhaseSuccess LoadPhase = "success"
	PhaseFailed  LoadPhase = "failed"
)

// Loading is the initial state, entered again on every retry.
type Loading struct{}

// Success holds the products of a completed load, in API order.
type Success struct {
	Products []Product
}

// Failed holds the user-visible message of a failed load.
type Failed struct {
	Message string
}

// Phase implements LoadState.
func (Loading) Phase() LoadPhase { return PhaseLoading }

// Phase implements LoadState.
func (Success) Phase() LoadPhase { return PhaseSuccess }

// Phase implements LoadState.
func (Failed) Phase() LoadPhase { return PhaseFailed }

func (Loading) loadState() {}
func (Success) loadState() {}
func (Failed) loadState()  {}

// FilteredView is the projection of a loaded catalog through a search term.
// It is derived on demand and never stored.
type FilteredView struct {
	// Products are the matching products in their original order.
	Products []Product

	// Term is the search term the view was computed with.
	Term string

	// Count is len(Products).
	Count int

	// NoMatch is true when nothing matches a non-empty term.
	NoMatch bool
}
