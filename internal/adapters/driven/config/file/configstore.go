package file

import (
	"errors"
	"fmt"
	"maps"
	"os"
	"path/filepath"
	"slices"
	"strings"
	"sync"

	"github.com/pelletier/go-toml/v2"

	"github.com/custodia-labs/vitrine/internal/adapters/driven/storage/memory"
	"github.com/custodia-labs/vitrine/internal/core/ports/driven"
)

// Ensure ConfigStore implements the interface.
var _ driven.ConfigStore = (*ConfigStore)(nil)

// DirName is the per-user configuration directory under $HOME.
const DirName = ".vitrine"

// fileName is the config file inside the config directory.
const fileName = "config.toml"

// ConfigStore persists configuration to a TOML file. Dotted keys map to
// tables, so "api.base_url" is written as
//
//	[api]
//	base_url = "https://example.test"
//
// Reads are served from memory; every Set rewrites the file.
type ConfigStore struct {
	*memory.ConfigStore

	writeMu  sync.Mutex
	filePath string
}

// NewConfigStore opens configDir/config.toml, creating the directory when
// needed. An empty configDir selects ~/.vitrine.
func NewConfigStore(configDir string) (*ConfigStore, error) {
	if configDir == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, fmt.Errorf("locating home directory: %w", err)
		}
		configDir = filepath.Join(home, DirName)
	}

	if err := os.MkdirAll(configDir, 0o700); err != nil {
		return nil, fmt.Errorf("creating config directory: %w", err)
	}

	s := &ConfigStore{
		ConfigStore: memory.NewConfigStore(),
		filePath:    filepath.Join(configDir, fileName),
	}
	if err := s.Load(); err != nil {
		return nil, err
	}
	return s, nil
}

// Set stores value under key and rewrites the file.
func (s *ConfigStore) Set(key string, value any) error {
	if err := s.ConfigStore.Set(key, value); err != nil {
		return err
	}
	return s.Save()
}

// Save writes every value to the file.
func (s *ConfigStore) Save() error {
	s.writeMu.Lock()
	defer s.writeMu.Unlock()

	data, err := toml.Marshal(nest(s.Snapshot()))
	if err != nil {
		return fmt.Errorf("encoding %s: %w", s.filePath, err)
	}
	return os.WriteFile(s.filePath, data, 0o600)
}

// Load replaces the values with the file contents. A missing file yields an
// empty store.
func (s *ConfigStore) Load() error {
	data, err := os.ReadFile(s.filePath)
	if errors.Is(err, os.ErrNotExist) {
		s.Replace(nil)
		return nil
	}
	if err != nil {
		return err
	}

	var doc map[string]any
	if err := toml.Unmarshal(data, &doc); err != nil {
		return fmt.Errorf("parsing %s: %w", s.filePath, err)
	}
	s.Replace(flatten(doc, ""))
	return nil
}

// Path returns the config file path.
func (s *ConfigStore) Path() string {
	return s.filePath
}

// flatten turns nested tables into dotted keys.
func flatten(doc map[string]any, prefix string) map[string]any {
	out := make(map[string]any, len(doc))
	for key, value := range doc {
		if prefix != "" {
			key = prefix + "." + key
		}
		table, ok := value.(map[string]any)
		if !ok {
			out[key] = value
			continue
		}
		for k, v := range flatten(table, key) {
			out[k] = v
		}
	}
	return out
}

// nest is the inverse of flatten. Keys are visited in sorted order, so a
// scalar is placed before any key it prefixes; such keys stay dotted inside
// the deepest table that exists.
func nest(flat map[string]any) map[string]any {
	doc := make(map[string]any)
	for _, key := range slices.Sorted(maps.Keys(flat)) {
		value := flat[key]
		parts := strings.Split(key, ".")
		table := doc
		i := 0
		for ; i < len(parts)-1; i++ {
			next, exists := table[parts[i]]
			if !exists {
				child := make(map[string]any)
				table[parts[i]] = child
				table = child
				continue
			}
			child, ok := next.(map[string]any)
			if !ok {
				break
			}
			table = child
		}
		table[strings.Join(parts[i:], ".")] = value
	}
	return doc
}
