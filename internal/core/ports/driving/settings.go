package driving

import "github.com/custodia-labs/vitrine/internal/core/domain"

// SettingsService exposes application settings.
type SettingsService interface {
	// Get retrieves the effective settings, defaults filled in.
	Get() (*domain.AppSettings, error)

	// Save persists settings.
	Save(settings *domain.AppSettings) error

	// Path returns where settings are stored.
	Path() string
}
