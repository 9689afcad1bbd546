// Package domain defines the core business entities for vitrine.
//
// This package is part of the hexagonal architecture's innermost layer.
// It defines the fundamental types:
//
//   - Product: A catalog entry fetched from the remote API
//   - LoadState: The load lifecycle of a catalog view (Loading, Success, Failed)
//   - FilteredView: The derived, filtered projection of a loaded catalog
//   - AppSettings: Effective runtime configuration
//
// # Architectural Position
//
// Domain is at the centre of the hexagon. All other packages depend on
// domain, never the reverse.
//
// # Import Rules
//
//   - Can Import: Standard library, github.com/shopspring/decimal (value type)
//   - Cannot Import: Any internal/ package, any other external dependency
package domain
