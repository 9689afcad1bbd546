package services

import (
	"fmt"
	"time"

	"github.com/custodia-labs/vitrine/internal/core/domain"
	"github.com/custodia-labs/vitrine/internal/core/ports/driven"
	"github.com/custodia-labs/vitrine/internal/core/ports/driving"
	"github.com/custodia-labs/vitrine/internal/logger"
)

// Ensure SettingsService implements the interface.
var _ driving.SettingsService = (*SettingsService)(nil)

// Config keys for settings storage.
const (
	keyBaseURL       = "api.base_url"
	keyTimeoutMillis = "api.timeout_ms"
	keyRatePerSecond = "api.rate_per_second"
)

// SettingsService manages application settings.
type SettingsService struct {
	configStore driven.ConfigStore
}

// NewSettingsService creates a new settings service.
func NewSettingsService(configStore driven.ConfigStore) *SettingsService {
	return &SettingsService{configStore: configStore}
}

// Get retrieves current application settings. Missing or invalid keys fall
// back to defaults.
func (s *SettingsService) Get() (*domain.AppSettings, error) {
	settings := domain.DefaultAppSettings()

	if baseURL := s.configStore.GetString(keyBaseURL); baseURL != "" {
		settings.BaseURL = baseURL
	}
	if ms := s.configStore.GetInt(keyTimeoutMillis); ms > 0 {
		settings.Timeout = time.Duration(ms) * time.Millisecond
	}
	if val, ok := s.configStore.Get(keyRatePerSecond); ok {
		switch val.(type) {
		case float64, int, int64:
			settings.RatePerSecond = s.configStore.GetFloat(keyRatePerSecond)
		default:
			logger.Warn("ignoring %s = %v: not a number", keyRatePerSecond, val)
		}
	}

	return &settings, nil
}

// Save persists application settings.
func (s *SettingsService) Save(settings *domain.AppSettings) error {
	if settings == nil {
		return fmt.Errorf("%w: settings are required", domain.ErrInvalidInput)
	}
	if settings.Timeout <= 0 {
		return fmt.Errorf("%w: timeout must be positive", domain.ErrInvalidInput)
	}

	if err := s.configStore.Set(keyBaseURL, settings.BaseURL); err != nil {
		return fmt.Errorf("save base_url: %w", err)
	}
	if err := s.configStore.Set(keyTimeoutMillis, settings.Timeout.Milliseconds()); err != nil {
		return fmt.Errorf("save timeout_ms: %w", err)
	}
	if err := s.configStore.Set(keyRatePerSecond, settings.RatePerSecond); err != nil {
		return fmt.Errorf("save rate_per_second: %w", err)
	}
	return nil
}

// Path returns the configuration file path.
func (s *SettingsService) Path() string {
	return s.configStore.Path()
}
