package domain

import "time"

// Default API settings. The catalog endpoint and timeout are fixed unless
// explicitly overridden in the config file.
const (
	DefaultBaseURL       = "https://fakestoreapi.com"
	DefaultTimeout       = 5000 * time.Millisecond
	DefaultRatePerSecond = 5.0
)

// AppSettings holds the effective runtime configuration.
type AppSettings struct {
	// BaseURL is the root of the products API.
	BaseURL string

	// Timeout bounds every outbound request.
	Timeout time.Duration

	// RatePerSecond throttles outbound requests. Zero or less disables throttling.
	RatePerSecond float64
}

// DefaultAppSettings returns the settings used when no config file exists.
func DefaultAppSettings() AppSettings {
	return AppSettings{
		BaseURL:       DefaultBaseURL,
		Timeout:       DefaultTimeout,
		RatePerSecond: DefaultRatePerSecond,
	}
}
