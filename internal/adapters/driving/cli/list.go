package cli

import (
	"encoding/json"
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/custodia-labs/vitrine/internal/core/domain"
	"github.com/custodia-labs/vitrine/internal/core/services"
	"github.com/custodia-labs/vitrine/internal/locale"
)

var (
	listSearch string
	listJSON   bool
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List catalog products",
	Long: `Fetches the catalog and prints every product as a card.

Use --search to keep only products whose title or category contains the
term, ignoring case.`,
	Args: cobra.NoArgs,
	RunE: runList,
}

func init() {
	listCmd.Flags().StringVarP(&listSearch, "search", "s", "", "filter by title or category")
	listCmd.Flags().BoolVar(&listJSON, "json", false, "output products as JSON")
	rootCmd.AddCommand(listCmd)
}

// listOutput is the JSON shape of the list command.
type listOutput struct {
	Products []domain.Product `json:"products"`
	Count    int              `json:"count"`
	Term     string           `json:"term,omitempty"`
}

func runList(cmd *cobra.Command, _ []string) error {
	if catalogService == nil {
		return errors.New("catalog service not configured")
	}

	browser := services.NewProductBrowser(catalogService)
	defer browser.Close()

	if failed, ok := browser.Load(cmd.Context()).(domain.Failed); ok {
		return errors.New(locale.ErrorText(failed.Message))
	}

	browser.SetSearchTerm(listSearch)
	view, _ := browser.View()

	if listJSON {
		return outputListJSON(cmd, view)
	}
	outputListText(cmd, view)
	return nil
}

func outputListJSON(cmd *cobra.Command, view domain.FilteredView) error {
	data, err := json.MarshalIndent(listOutput{
		Products: view.Products,
		Count:    view.Count,
		Term:     view.Term,
	}, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal products: %w", err)
	}
	cmd.Println(string(data))
	return nil
}

func outputListText(cmd *cobra.Command, view domain.FilteredView) {
	cmd.Println(locale.Heading)
	cmd.Println(locale.CountText(view.Count))
	cmd.Println()

	if view.NoMatch {
		cmd.Println(locale.NoMatchText(view.Term))
		return
	}

	width := terminalWidth()
	for i := range view.Products {
		cmd.Print(formatCard(&view.Products[i], width))
		cmd.Println()
	}
}
