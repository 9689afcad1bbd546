package tui

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestErrors_AreDistinct(t *testing.T) {
	assert.NotEqual(t, ErrMissingCatalogService.Error(), ErrInvalidPorts.Error())
}

func TestErrMissingCatalogService_Message(t *testing.T) {
	assert.Contains(t, ErrMissingCatalogService.Error(), "catalog service")
}

func TestErrInvalidPorts_Message(t *testing.T) {
	assert.Contains(t, ErrInvalidPorts.Error(), "invalid ports")
}
