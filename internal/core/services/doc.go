// Package services implements the driving port interfaces.
// Services contain the core business logic and orchestrate
// calls to driven ports (adapters).
//
//   - CatalogService: catalog access for every outer surface
//   - ProductBrowser: the view-model of a catalog screen (load lifecycle,
//     search term, filtered view)
//   - SettingsService: effective configuration
package services
