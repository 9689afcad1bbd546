// Package input provides the catalog filter field.
package input

import (
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/custodia-labs/vitrine/internal/adapters/driving/tui/styles"
	"github.com/custodia-labs/vitrine/internal/locale"
)

const (
	prompt    = "🔍 "
	maxTerm   = 128
	minWidth  = 20
	chromeGap = 10 // prompt, border and padding
)

// FilterInput is the one-line field holding the catalog search term. It
// reports every change of the term so the grid can be refiltered on each
// keystroke.
type FilterInput struct {
	field  textinput.Model
	styles *styles.Styles
}

// NewFilterInput creates a focused, empty filter field.
func NewFilterInput(s *styles.Styles) *FilterInput {
	if s == nil {
		s = styles.DefaultStyles()
	}

	field := textinput.New()
	field.Placeholder = locale.SearchPlaceholder
	field.Prompt = prompt
	field.CharLimit = maxTerm
	field.Width = 50 - chromeGap
	field.Focus()

	return &FilterInput{field: field, styles: s}
}

// Init starts the cursor blink.
func (f *FilterInput) Init() tea.Cmd {
	return textinput.Blink
}

// Update feeds msg to the field. changed is true when the term differs
// afterwards.
func (f *FilterInput) Update(msg tea.Msg) (changed bool, cmd tea.Cmd) {
	before := f.field.Value()
	f.field, cmd = f.field.Update(msg)
	return f.field.Value() != before, cmd
}

// View renders the field.
func (f *FilterInput) View() string {
	return f.styles.InputField.Render(f.field.View())
}

// Term returns the raw search term.
func (f *FilterInput) Term() string {
	return f.field.Value()
}

// SetTerm replaces the term and moves the cursor to its end.
func (f *FilterInput) SetTerm(term string) {
	f.field.SetValue(term)
	f.field.CursorEnd()
}

// Placeholder is shown while the term is empty.
func (f *FilterInput) Placeholder() string {
	return f.field.Placeholder
}

// SetFocused gives or takes keyboard focus. A blurred field ignores keys.
func (f *FilterInput) SetFocused(focused bool) {
	if focused {
		f.field.Focus()
		return
	}
	f.field.Blur()
}

// Focused reports whether the field receives keys.
func (f *FilterInput) Focused() bool {
	return f.field.Focused()
}

// SetWidth fits the field into width columns.
func (f *FilterInput) SetWidth(width int) {
	f.field.Width = max(width-chromeGap, minWidth)
}

// FieldWidth returns the width of the editable area.
func (f *FilterInput) FieldWidth() int {
	return f.field.Width
}
