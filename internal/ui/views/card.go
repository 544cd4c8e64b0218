package views

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
	"github.com/dustin/go-humanize"

	"alescout/internal/domain"
	"alescout/internal/rating"
)

const (
	// CardHeight is the rendered height of every card, border included
	CardHeight = 7
	// MinCardWidth is the narrowest card that still fits its content
	MinCardWidth = 24

	nameLines = 2
)

// CardRenderer renders a single catalog item
type CardRenderer struct {
	styles      *Styles
	placeholder string
}

// NewCardRenderer creates a card renderer. placeholder replaces missing images.
func NewCardRenderer(styles *Styles, placeholder string) *CardRenderer {
	return &CardRenderer{
		styles:      styles,
		placeholder: placeholder,
	}
}

// Render draws item as a box exactly width cells wide and CardHeight tall
func (r *CardRenderer) Render(item domain.CatalogItem, width int, selected bool) string {
	return r.RenderMatch(item, width, selected, "")
}

// RenderMatch is Render with occurrences of term highlighted in the name
func (r *CardRenderer) RenderMatch(item domain.CatalogItem, width int, selected bool, term string) string {
	if width < MinCardWidth {
		width = MinCardWidth
	}
	// border and horizontal padding
	textWidth := width - 4

	lines := make([]string, 0, CardHeight-2)
	lines = append(lines, r.styles.Dim.Render(ansi.Truncate("▣ "+item.ImageOr(r.placeholder), textWidth, "…")))
	for _, l := range ClampName(item.Name, textWidth) {
		lines = append(lines, r.highlightMatch(l, term))
	}
	lines = append(lines, r.renderRating(item.Rating.Average))
	lines = append(lines, r.renderFooter(item, textWidth))

	style := r.styles.Card
	if selected {
		style = r.styles.CardSelected
	}
	return style.Width(width - 2).Render(strings.Join(lines, "\n"))
}

// renderRating shows the stars for the average rounded to one decimal,
// followed by the value itself
func (r *CardRenderer) renderRating(average float64) string {
	rounded := rating.Round(average)
	stars := rating.Glyphs(rating.Stars(rounded))
	return r.styles.Stars.Render(stars) + " " + r.styles.Dim.Render("("+rating.Label(rounded)+")")
}

func (r *CardRenderer) renderFooter(item domain.CatalogItem, textWidth int) string {
	left := r.styles.Dim.Render(ReviewLabel(item.Rating.Reviews))
	right := r.styles.Price.Render(item.Price)

	gap := textWidth - lipgloss.Width(left) - lipgloss.Width(right)
	if gap < 1 {
		gap = 1
	}
	return ansi.Truncate(left+strings.Repeat(" ", gap)+right, textWidth, "…")
}

// highlightMatch highlights the first case-insensitive occurrence of query
// within a single name line
func (r *CardRenderer) highlightMatch(text, query string) string {
	lowerText := strings.ToLower(text)
	lowerQuery := strings.ToLower(query)

	// byte offsets only line up when lowering kept the lengths
	if query == "" || len(lowerText) != len(text) || len(lowerQuery) != len(query) {
		return r.styles.Name.Render(text)
	}
	index := strings.Index(lowerText, lowerQuery)
	if index == -1 {
		return r.styles.Name.Render(text)
	}

	before := text[:index]
	match := text[index : index+len(query)]
	after := text[index+len(query):]

	var result []string
	if before != "" {
		result = append(result, r.styles.Name.Render(before))
	}
	result = append(result, r.styles.Match.Render(match))
	if after != "" {
		result = append(result, r.styles.Name.Render(after))
	}
	return strings.Join(result, "")
}

// ReviewLabel formats a review count, e.g. "1,234 Reviews"
func ReviewLabel(reviews int) string {
	return humanize.Comma(int64(reviews)) + " Reviews"
}

// ClampName wraps name to width and keeps exactly two lines, ending the
// second with an ellipsis when text was cut
func ClampName(name string, width int) []string {
	wrapped := strings.Split(ansi.Wrap(name, width, ""), "\n")
	out := make([]string, nameLines)
	copy(out, wrapped)
	if len(wrapped) > nameLines {
		out[nameLines-1] = ansi.Truncate(strings.TrimRight(out[nameLines-1], " ")+"…", width, "…")
	}
	return out
}
