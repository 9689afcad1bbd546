// Command vitrine browses a remote product catalog from the terminal.
package main

import (
	"fmt"
	"os"

	"github.com/custodia-labs/vitrine/internal/adapters/driven/catalog"
	"github.com/custodia-labs/vitrine/internal/adapters/driven/config/file"
	"github.com/custodia-labs/vitrine/internal/adapters/driven/storage/memory"
	"github.com/custodia-labs/vitrine/internal/adapters/driving/cli"
	"github.com/custodia-labs/vitrine/internal/core/ports/driven"
	"github.com/custodia-labs/vitrine/internal/core/ports/driving"
	"github.com/custodia-labs/vitrine/internal/core/services"
	"github.com/custodia-labs/vitrine/internal/logger"
)

// version is set at build time via -ldflags.
var version = "dev"

func main() {
	cli.SetVersion(version)
	cli.SetBootstrap(bootstrap)

	if err := cli.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// bootstrap wires the driven adapters into the core services.
func bootstrap(configDir string) (driving.CatalogService, driving.SettingsService, error) {
	var store driven.ConfigStore
	fileStore, err := file.NewConfigStore(configDir)
	if err != nil {
		logger.Warn("config unavailable, using defaults: %v", err)
		store = memory.NewConfigStore()
	} else {
		store = fileStore
	}

	settingsService := services.NewSettingsService(store)
	settings, err := settingsService.Get()
	if err != nil {
		return nil, nil, fmt.Errorf("loading settings: %w", err)
	}

	client := catalog.NewClientFromSettings(*settings)
	logger.Debug("catalog API %s (timeout %s)", client.BaseURL(), client.Timeout())

	return services.NewCatalogService(client), settingsService, nil
}
