package cli

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConfigCmd_Subcommands(t *testing.T) {
	names := make([]string, 0)
	for _, c := range configCmd.Commands() {
		names = append(names, c.Name())
	}
	assert.ElementsMatch(t, []string{"show", "set"}, names)
}

func TestConfigShow_Defaults(t *testing.T) {
	_, cleanup := setupTestServices()
	defer cleanup()

	for _, args := range [][]string{{"config"}, {"config", "show"}} {
		out, err := executeCommand(args...)

		require.NoError(t, err)
		assert.Contains(t, out, ":memory:")
		assert.Contains(t, out, "https://fakestoreapi.com")
		assert.Contains(t, out, "timeout_ms:       5000")
		assert.Contains(t, out, "rate_per_second:  5")
	}
}

func TestConfigSet(t *testing.T) {
	tests := []struct {
		key   string
		value string
		check func(t *testing.T)
	}{
		{
			key:   "base_url",
			value: "http://localhost:9000",
			check: func(t *testing.T) {
				s, err := settingsService.Get()
				require.NoError(t, err)
				assert.Equal(t, "http://localhost:9000", s.BaseURL)
			},
		},
		{
			key:   "timeout_ms",
			value: "1500",
			check: func(t *testing.T) {
				s, err := settingsService.Get()
				require.NoError(t, err)
				assert.Equal(t, 1500*time.Millisecond, s.Timeout)
			},
		},
		{
			key:   "rate_per_second",
			value: "0",
			check: func(t *testing.T) {
				s, err := settingsService.Get()
				require.NoError(t, err)
				assert.Zero(t, s.RatePerSecond)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.key, func(t *testing.T) {
			_, cleanup := setupTestServices()
			defer cleanup()

			out, err := executeCommand("config", "set", tt.key, tt.value)

			require.NoError(t, err)
			assert.Contains(t, out, tt.key+" updated")
			tt.check(t)
		})
	}
}

func TestConfigSet_Invalid(t *testing.T) {
	tests := []struct {
		name string
		args []string
		want string
	}{
		{"unknown key", []string{"config", "set", "colour", "red"}, `unknown key "colour"`},
		{"bad timeout", []string{"config", "set", "timeout_ms", "soon"}, "invalid timeout_ms"},
		{"zero timeout", []string{"config", "set", "timeout_ms", "0"}, "timeout must be positive"},
		{"bad rate", []string{"config", "set", "rate_per_second", "fast"}, "invalid rate_per_second"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, cleanup := setupTestServices()
			defer cleanup()

			_, err := executeCommand(tt.args...)

			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.want)
		})
	}
}

func TestConfig_NoService(t *testing.T) {
	_, cleanup := setupTestServices()
	defer cleanup()
	settingsService = nil

	_, err := executeCommand("config", "show")

	assert.EqualError(t, err, "settings service not configured")
}
