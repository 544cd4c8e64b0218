package views

import (
	"github.com/charmbracelet/lipgloss"

	"alescout/internal/domain"
)

// Columns picks the number of card columns for a content width,
// mirroring the one/two/three/four column breakpoints of the web layout
func Columns(width int) int {
	switch {
	case width < 64:
		return 1
	case width < 96:
		return 2
	case width < 128:
		return 3
	default:
		return 4
	}
}

// GridRenderer lays out cards in rows
type GridRenderer struct {
	cards *CardRenderer
}

// NewGridRenderer creates a grid renderer
func NewGridRenderer(cards *CardRenderer) *GridRenderer {
	return &GridRenderer{cards: cards}
}

// Render lays items out in rows of Columns(width) cards. selected is the
// index of the highlighted card, or -1 for none.
func (g *GridRenderer) Render(items []domain.CatalogItem, width int, selected int) string {
	return g.RenderMatches(items, width, selected, "")
}

// RenderMatches is Render with term highlighted in every card name
func (g *GridRenderer) RenderMatches(items []domain.CatalogItem, width int, selected int, term string) string {
	if len(items) == 0 {
		return ""
	}

	cols := Columns(width)
	cardWidth := width / cols
	if cardWidth < MinCardWidth {
		cardWidth = MinCardWidth
	}

	rows := make([]string, 0, (len(items)+cols-1)/cols)
	for start := 0; start < len(items); start += cols {
		end := start + cols
		if end > len(items) {
			end = len(items)
		}
		cards := make([]string, 0, cols)
		for i := start; i < end; i++ {
			cards = append(cards, g.cards.RenderMatch(items[i], cardWidth, i == selected, term))
		}
		rows = append(rows, lipgloss.JoinHorizontal(lipgloss.Top, cards...))
	}
	return lipgloss.JoinVertical(lipgloss.Left, rows...)
}

// RowOf returns the grid row holding index i
func RowOf(i, width int) int {
	if i < 0 {
		return 0
	}
	return i / Columns(width)
}
