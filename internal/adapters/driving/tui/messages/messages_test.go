package messages

import (
	"errors"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/vitrine/internal/core/domain"
)

func TestViewType_String(t *testing.T) {
	tests := []struct {
		view ViewType
		want string
	}{
		{ViewCatalog, "catalog"},
		{ViewProduct, "product"},
		{ViewHelp, "help"},
		{ViewType(42), "unknown"},
	}

	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.view.String())
		})
	}
}

func TestViewCatalog_IsZeroValue(t *testing.T) {
	var v ViewType
	assert.Equal(t, ViewCatalog, v)
}

func TestProductsLoaded(t *testing.T) {
	t.Run("with products", func(t *testing.T) {
		msg := ProductsLoaded{
			Generation: 2,
			Products:   []domain.Product{{ID: 1, Title: "Sac", Price: decimal.RequireFromString("109.95")}},
		}

		assert.Equal(t, uint64(2), msg.Generation)
		require.Len(t, msg.Products, 1)
		assert.Equal(t, "109.95", msg.Products[0].Price.String())
		assert.NoError(t, msg.Err)
	})

	t.Run("with error", func(t *testing.T) {
		err := &domain.UnreachableError{Err: errors.New("refused")}
		msg := ProductsLoaded{Generation: 1, Err: err}

		assert.Nil(t, msg.Products)
		assert.EqualError(t, msg.Err, "Serveur inaccessible. Vérifiez votre connexion.")
	})
}

func TestProductLoaded(t *testing.T) {
	msg := ProductLoaded{ID: 7, Err: &domain.ProductNotFoundError{ID: 7}}

	assert.Equal(t, 7, msg.ID)
	assert.Nil(t, msg.Product)
	assert.ErrorIs(t, msg.Err, domain.ErrNotFound)
}

func TestProductSelected(t *testing.T) {
	assert.Equal(t, 3, ProductSelected{ID: 3}.ID)
}
