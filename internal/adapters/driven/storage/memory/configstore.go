package memory

import (
	"maps"
	"sync"

	"github.com/custodia-labs/vitrine/internal/core/ports/driven"
)

// Ensure ConfigStore implements the interface.
var _ driven.ConfigStore = (*ConfigStore)(nil)

// ConfigStore holds configuration values in a map keyed by dotted names such
// as "api.base_url". It is used on its own when no config directory is
// writable, and as the value map behind the TOML file store.
type ConfigStore struct {
	mu     sync.RWMutex
	values map[string]any
}

// NewConfigStore creates an empty store.
func NewConfigStore() *ConfigStore {
	return &ConfigStore{values: make(map[string]any)}
}

// Get returns the raw value stored under key.
func (s *ConfigStore) Get(key string) (any, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	val, ok := s.values[key]
	return val, ok
}

// GetString returns the value under key if it is a string.
func (s *ConfigStore) GetString(key string) string {
	val, _ := s.Get(key)
	str, _ := val.(string)
	return str
}

// GetInt returns the value under key truncated to an int. Non-numeric
// values read as 0.
func (s *ConfigStore) GetInt(key string) int {
	n, _ := s.number(key)
	return int(n)
}

// GetFloat returns the value under key as a float64. Non-numeric values
// read as 0.
func (s *ConfigStore) GetFloat(key string) float64 {
	n, _ := s.number(key)
	return n
}

// number widens the numeric kinds produced by TOML decoding and by callers.
func (s *ConfigStore) number(key string) (float64, bool) {
	val, ok := s.Get(key)
	if !ok {
		return 0, false
	}
	switch v := val.(type) {
	case int:
		return float64(v), true
	case int64:
		return float64(v), true
	case float64:
		return v, true
	}
	return 0, false
}

// Set stores value under key.
func (s *ConfigStore) Set(key string, value any) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.values[key] = value
	return nil
}

// Snapshot returns a copy of every stored value.
func (s *ConfigStore) Snapshot() map[string]any {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return maps.Clone(s.values)
}

// Replace swaps the stored values for a copy of values.
func (s *ConfigStore) Replace(values map[string]any) {
	fresh := make(map[string]any, len(values))
	maps.Copy(fresh, values)

	s.mu.Lock()
	s.values = fresh
	s.mu.Unlock()
}

// Save does nothing: values live only as long as the process.
func (s *ConfigStore) Save() error { return nil }

// Load does nothing: there is nothing to read back.
func (s *ConfigStore) Load() error { return nil }

// Path names the store in `vitrine config show`.
func (s *ConfigStore) Path() string {
	return ":memory:"
}
