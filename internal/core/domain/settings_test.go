package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestDefaultAppSettings(t *testing.T) {
	s := DefaultAppSettings()

	assert.Equal(t, "https://fakestoreapi.com", s.BaseURL)
	assert.Equal(t, 5*time.Second, s.Timeout)
	assert.InDelta(t, 5.0, s.RatePerSecond, 0.0001)
}
