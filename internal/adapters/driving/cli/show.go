package cli

import (
	"encoding/json"
	"errors"
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/custodia-labs/vitrine/internal/core/domain"
	"github.com/custodia-labs/vitrine/internal/locale"
)

var showJSON bool

var showCmd = &cobra.Command{
	Use:   "show [id]",
	Short: "Show a single product",
	Long:  `Fetches one product by its numeric id and prints every field.`,
	Args:  cobra.ExactArgs(1),
	RunE:  runShow,
}

func init() {
	showCmd.Flags().BoolVar(&showJSON, "json", false, "output the product as JSON")
	rootCmd.AddCommand(showCmd)
}

func runShow(cmd *cobra.Command, args []string) error {
	id, err := strconv.Atoi(args[0])
	if err != nil {
		return fmt.Errorf("%w: product id must be an integer, got %q", domain.ErrInvalidInput, args[0])
	}

	if catalogService == nil {
		return errors.New("catalog service not configured")
	}

	product, err := catalogService.GetProduct(cmd.Context(), id)
	if err != nil {
		return fmt.Errorf(locale.ErrorPrefix+"%w", err)
	}

	if showJSON {
		data, err := json.MarshalIndent(product, "", "  ")
		if err != nil {
			return fmt.Errorf("failed to marshal product: %w", err)
		}
		cmd.Println(string(data))
		return nil
	}

	cmd.Print(formatDetail(product, terminalWidth()))
	return nil
}
