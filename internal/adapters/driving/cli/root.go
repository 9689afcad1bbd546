// Package cli provides the cobra command tree for vitrine.
// It is a driving adapter: commands call core services through driving ports.
package cli

import (
	"github.com/spf13/cobra"

	"github.com/custodia-labs/vitrine/internal/core/ports/driving"
	"github.com/custodia-labs/vitrine/internal/logger"
)

// version is set at build time via -ldflags.
var version = "dev"

// Services used by commands. They are injected by main through the
// bootstrap function, or directly by tests.
var (
	catalogService  driving.CatalogService
	settingsService driving.SettingsService
)

// Bootstrap builds the services for a config directory. An empty directory
// selects the default location.
type Bootstrap func(configDir string) (driving.CatalogService, driving.SettingsService, error)

var bootstrap Bootstrap

// Persistent flags.
var (
	verbose   bool
	configDir string
)

var rootCmd = &cobra.Command{
	Use:   "vitrine",
	Short: "Browse a product catalog from the terminal",
	Long: `vitrine fetches a product catalog from a remote HTTP API and lets you
browse and filter it by title or category.

Use the list command for a one-shot listing or the tui command for the
interactive browser.`,
	SilenceUsage:      true,
	SilenceErrors:     true,
	PersistentPreRunE: setup,
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "print debug logs to stderr")
	rootCmd.PersistentFlags().StringVar(&configDir, "config", "", "config directory (default ~/.vitrine)")
}

// setup applies persistent flags and builds services once.
func setup(_ *cobra.Command, _ []string) error {
	logger.SetVerbose(verbose)

	if bootstrap == nil || catalogService != nil {
		return nil
	}
	catalog, settings, err := bootstrap(configDir)
	if err != nil {
		return err
	}
	catalogService = catalog
	settingsService = settings
	return nil
}

// SetBootstrap registers the function building services from the --config
// flag. It runs before any command.
func SetBootstrap(b Bootstrap) {
	bootstrap = b
}

// SetCatalogService sets the catalog service used by commands.
func SetCatalogService(s driving.CatalogService) {
	catalogService = s
}

// SetSettingsService sets the settings service used by commands.
func SetSettingsService(s driving.SettingsService) {
	settingsService = s
}

// SetVersion sets the version reported by the version command.
func SetVersion(v string) {
	version = v
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}
