package keymap

import (
	"testing"

	"github.com/charmbracelet/bubbles/key"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultKeyMap(t *testing.T) {
	km := DefaultKeyMap()

	require.NotNil(t, km)
}

func TestDefaultKeyMap_Bindings(t *testing.T) {
	km := DefaultKeyMap()

	tests := []struct {
		name    string
		binding key.Binding
		keys    []string
	}{
		{"quit", km.Quit, []string{"q", "ctrl+c"}},
		{"help", km.Help, []string{"?"}},
		{"back", km.Back, []string{"esc"}},
		{"up", km.Up, []string{"up", "k"}},
		{"down", km.Down, []string{"down", "j"}},
		{"left", km.Left, []string{"left", "h"}},
		{"right", km.Right, []string{"right", "l"}},
		{"select", km.Select, []string{"enter"}},
		{"focus", km.Focus, []string{"tab"}},
		{"retry", km.Retry, []string{"ctrl+r", "r"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.keys, tt.binding.Keys())
			assert.NotEmpty(t, tt.binding.Help().Desc)
		})
	}
}

func TestKeyMap_HelpGroups(t *testing.T) {
	km := DefaultKeyMap()

	assert.Len(t, km.ShortHelp(), 2)
	assert.Len(t, km.CatalogHelp(), 4)
	assert.Equal(t, []key.Binding{km.Retry, km.Quit}, km.ErrorHelp())
	assert.Equal(t, []key.Binding{km.Back, km.Quit}, km.ProductHelp())

	full := km.FullHelp()
	require.Len(t, full, 3)
	for _, group := range full {
		assert.NotEmpty(t, group)
	}
}

func TestMatches(t *testing.T) {
	km := DefaultKeyMap()

	assert.True(t, Matches("r", km.Retry))
	assert.True(t, Matches("ctrl+r", km.Retry))
	assert.True(t, Matches("l", km.Right))
	assert.False(t, Matches("x", km.Retry))
	assert.False(t, Matches("", km.Quit))
}
