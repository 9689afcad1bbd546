package cli

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/vitrine/internal/core/domain"
)

func TestShowCmd_Use(t *testing.T) {
	assert.Equal(t, "show [id]", showCmd.Use)
}

func TestShowCmd_RequiresExactlyOneArg(t *testing.T) {
	_, cleanup := setupTestServices()
	defer cleanup()

	_, err := executeCommand("show")

	assert.Error(t, err)
	assert.Contains(t, err.Error(), "accepts 1 arg(s)")
}

func TestShowCmd_PrintsProduct(t *testing.T) {
	_, cleanup := setupTestServices()
	defer cleanup()

	out, err := executeCommand("show", "2")

	require.NoError(t, err)
	assert.Contains(t, out, "T-shirt Homme")
	assert.Contains(t, out, "clothing")
	assert.Contains(t, out, "Description de T-shirt Homme")
	assert.NotContains(t, out, "...")
	assert.Contains(t, out, "$19.99")
	assert.Contains(t, out, "(99 avis)")
	assert.Contains(t, out, "Image : https://example.com/T-shirt Homme.jpg")
}

func TestShowCmd_JSON(t *testing.T) {
	_, cleanup := setupTestServices()
	defer cleanup()

	out, err := executeCommand("show", "3", "--json")
	require.NoError(t, err)

	var p domain.Product
	require.NoError(t, json.Unmarshal([]byte(out), &p))
	assert.Equal(t, 3, p.ID)
	assert.Equal(t, "799.99", p.Price.String())
}

func TestShowCmd_NotFound(t *testing.T) {
	_, cleanup := setupTestServices()
	defer cleanup()

	_, err := executeCommand("show", "99")

	require.Error(t, err)
	assert.Equal(t, "Erreur : Produit 99 non trouvé", err.Error())
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestShowCmd_InvalidID(t *testing.T) {
	tests := []struct {
		name string
		arg  string
	}{
		{"not a number", "abc"},
		{"zero", "0"},
		{"negative", "-4"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			source, cleanup := setupTestServices()
			defer cleanup()

			_, err := executeCommand("show", "--", tt.arg)

			require.Error(t, err)
			assert.ErrorIs(t, err, domain.ErrInvalidInput)
			assert.Equal(t, 0, source.Calls())
		})
	}
}
