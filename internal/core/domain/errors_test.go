package domain

import (
	"errors"
	"fmt"
	"net"
	"testing"

	"github.com/stretchr/testify/assert"
)

// TestErrors_Existence tests that all error variables exist and are not nil
func TestErrors_Existence(t *testing.T) {
	tests := []struct {
		name string
		err  error
	}{
		{"ErrNotFound", ErrNotFound},
		{"ErrInvalidInput", ErrInvalidInput},
		{"ErrClosed", ErrClosed},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.NotNil(t, tt.err)
			assert.NotEmpty(t, tt.err.Error())
		})
	}
}

func TestServerError_Error(t *testing.T) {
	t.Run("embeds status and server message", func(t *testing.T) {
		err := &ServerError{Status: 500, Message: "Erreur serveur"}
		assert.Equal(t, "Erreur 500: Erreur serveur", err.Error())
	})

	t.Run("falls back to generic phrase", func(t *testing.T) {
		err := &ServerError{Status: 404}
		assert.Equal(t, "Erreur 404: Problème serveur", err.Error())
	})

	t.Run("matchable through wrapping", func(t *testing.T) {
		wrapped := fmt.Errorf("list products: %w", &ServerError{Status: 503})

		var serverErr *ServerError
		assert.True(t, errors.As(wrapped, &serverErr))
		assert.Equal(t, 503, serverErr.Status)
	})
}

func TestUnreachableError(t *testing.T) {
	cause := &net.OpError{Op: "dial", Err: errors.New("connection refused")}
	err := &UnreachableError{Err: cause}

	assert.Equal(t, "Serveur inaccessible. Vérifiez votre connexion.", err.Error())
	assert.ErrorIs(t, err, cause)
}

func TestRequestConfigError(t *testing.T) {
	cause := errors.New("timeout")
	err := &RequestConfigError{Err: cause}

	assert.Equal(t, "Erreur de configuration de la requête", err.Error())
	assert.ErrorIs(t, err, cause)
}

func TestProductNotFoundError(t *testing.T) {
	err := &ProductNotFoundError{ID: 42, Cause: &ServerError{Status: 500}}

	assert.Equal(t, "Produit 42 non trouvé", err.Error())
	assert.ErrorIs(t, err, ErrNotFound)

	// The cause is informational and never surfaces through the chain.
	var serverErr *ServerError
	assert.False(t, errors.As(err, &serverErr))
}
