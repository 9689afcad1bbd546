package cli

import (
	"errors"
	"fmt"
	"os"
	"runtime/debug"

	"github.com/spf13/cobra"

	"github.com/custodia-labs/vitrine/internal/adapters/driving/tui"
)

// tuiCmd represents the tui command.
var tuiCmd = &cobra.Command{
	Use:   "tui",
	Short: "Launch the interactive catalog browser",
	Long: `Launch the interactive terminal browser for the product catalog.

Controls:
  (type)        - Filter by title or category
  Tab           - Switch between search bar and grid
  ←↓↑→ / hjkl   - Move in the grid
  Enter         - Open the selected product
  r / Ctrl+R    - Reload the catalog
  Esc           - Back
  ?             - Help
  q / Ctrl+C    - Quit`,
	RunE: runTUI,
}

func init() {
	rootCmd.AddCommand(tuiCmd)
}

// newTUIApp builds the TUI from the configured services.
func newTUIApp(cmd *cobra.Command) (*tui.App, error) {
	if catalogService == nil {
		return nil, errors.New("catalog service not configured")
	}

	app, err := tui.NewApp(tui.NewPorts(catalogService, settingsService))
	if err != nil {
		return nil, fmt.Errorf("failed to create TUI: %w", err)
	}
	return app.WithContext(cmd.Context()), nil
}

func runTUI(cmd *cobra.Command, _ []string) error {
	// Add panic recovery to get stack traces
	defer func() {
		if r := recover(); r != nil {
			fmt.Fprintf(os.Stderr, "Panic in TUI: %v\n", r)
			fmt.Fprintf(os.Stderr, "Stack trace:\n%s\n", debug.Stack())
		}
	}()

	app, err := newTUIApp(cmd)
	if err != nil {
		return err
	}

	if err := app.Run(); err != nil {
		return fmt.Errorf("TUI error: %w", err)
	}
	return nil
}
