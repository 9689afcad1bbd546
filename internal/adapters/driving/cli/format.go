package cli

import (
	"os"
	"strconv"
	"strings"

	"golang.org/x/term"

	"github.com/custodia-labs/vitrine/internal/core/domain"
	"github.com/custodia-labs/vitrine/internal/locale"
)

const (
	defaultWidth = 80
	indent       = "    "
)

// terminalWidth returns the width of stdout, or defaultWidth when stdout is
// not a terminal.
func terminalWidth() int {
	fd := int(os.Stdout.Fd())
	if !term.IsTerminal(fd) {
		return defaultWidth
	}
	width, _, err := term.GetSize(fd)
	if err != nil || width <= 0 {
		return defaultWidth
	}
	return width
}

// wrap breaks text into lines of at most width characters on word
// boundaries. Words longer than width get a line of their own.
func wrap(text string, width int) []string {
	if width < 20 {
		width = 20
	}
	words := strings.Fields(text)
	if len(words) == 0 {
		return nil
	}

	lines := make([]string, 0, len(text)/width+1)
	line := words[0]
	for _, w := range words[1:] {
		if len([]rune(line))+1+len([]rune(w)) > width {
			lines = append(lines, line)
			line = w
			continue
		}
		line += " " + w
	}
	return append(lines, line)
}

// footer renders the price and rating line of a product.
func footer(p *domain.Product) string {
	return locale.PriceText(p.Price) + "  " +
		locale.RatingText(p.Rating.Rate) + " " +
		locale.ReviewsText(p.Rating.Count)
}

// formatCard renders a product as it appears in the listing.
func formatCard(p *domain.Product, width int) string {
	var b strings.Builder
	b.WriteString("[" + strconv.Itoa(p.ID) + "] " + p.Title + "\n")
	b.WriteString(indent + p.Category + "\n")
	for _, line := range wrap(locale.TruncateDescription(p.Description), width-len(indent)) {
		b.WriteString(indent + line + "\n")
	}
	b.WriteString(indent + footer(p) + "\n")
	return b.String()
}

// formatDetail renders every field of a product.
func formatDetail(p *domain.Product, width int) string {
	var b strings.Builder
	b.WriteString(p.Title + "\n")
	b.WriteString(p.Category + "\n\n")
	for _, line := range wrap(p.Description, width) {
		b.WriteString(line + "\n")
	}
	b.WriteString("\n" + footer(p) + "\n")
	b.WriteString("Image : " + p.Image + "\n")
	return b.String()
}
