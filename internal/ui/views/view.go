package views

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"

	"alescout/internal/domain"
)

const (
	Title = "Explore Beer Ale"

	LoadingText   = "Loading Beers..."
	GuidanceText  = "Start typing to search for beers"
	NoResultsText = "No beers found matching your search"
)

// Notice is a status line shown above the grid
type Notice int

const (
	NoticeLoading Notice = iota
	NoticeError
	NoticeGuidance
	NoticeNoResults
)

// ViewState contains all the state needed for rendering
type ViewState struct {
	Width       int
	Height      int
	Loading     bool
	Error       string
	Term        string
	ResultCount int
	SearchInput string
	Spinner     string
	Grid        string
	HelpLine    string
	ScrollHint  string
}

// Notices decides which status lines apply. Loading suppresses every
// other notice; guidance and no-results only show once loading is over.
func Notices(state ViewState) []Notice {
	if state.Loading {
		return []Notice{NoticeLoading}
	}

	var out []Notice
	if state.Error != "" {
		out = append(out, NoticeError)
	}
	if state.Term == "" {
		out = append(out, NoticeGuidance)
	} else if state.ResultCount == 0 {
		out = append(out, NoticeNoResults)
	}
	return out
}

// Renderer handles all view rendering
type Renderer struct {
	styles *Styles
	grid   *GridRenderer
}

// NewRenderer creates a new renderer
func NewRenderer(placeholder string) *Renderer {
	styles := NewStyles()
	return &Renderer{
		styles: styles,
		grid:   NewGridRenderer(NewCardRenderer(styles, placeholder)),
	}
}

// ContentWidth is the width left inside the main padding
func ContentWidth(termWidth int) int {
	if termWidth <= 0 {
		termWidth = 80
	}
	w := termWidth - 4
	if w < MinCardWidth {
		w = MinCardWidth
	}
	return w
}

// RenderGrid renders the result cards for the grid viewport
func (r *Renderer) RenderGrid(state ViewState, items []domain.CatalogItem, selected int) string {
	return r.grid.RenderMatches(items, ContentWidth(state.Width), selected, state.Term)
}

// Header renders the title, search box and notices
func (r *Renderer) Header(state ViewState) string {
	width := ContentWidth(state.Width)
	content := &strings.Builder{}

	logo := r.styles.Title.Render(Title)
	right := ""
	if !state.Loading && state.Term != "" && state.ResultCount > 0 {
		right = r.styles.Dim.Render(matchCount(state.ResultCount))
	}
	padding := width - lipgloss.Width(logo) - lipgloss.Width(right)
	if padding < 2 {
		padding = 2
	}
	content.WriteString(logo)
	if right != "" {
		content.WriteString(strings.Repeat(" ", padding))
		content.WriteString(right)
	}
	content.WriteString("\n\n")

	content.WriteString(r.styles.SearchBox.Width(width - 2).Render(state.SearchInput))

	for _, n := range Notices(state) {
		content.WriteString("\n")
		content.WriteString(r.renderNotice(n, state))
	}
	return content.String()
}

func matchCount(n int) string {
	if n == 1 {
		return "1 match"
	}
	return fmt.Sprintf("%d matches", n)
}

func (r *Renderer) renderNotice(n Notice, state ViewState) string {
	switch n {
	case NoticeLoading:
		return r.styles.Loading.Render(strings.TrimSpace(state.Spinner + " " + LoadingText))
	case NoticeError:
		// long network errors must wrap so the reason stays visible
		return r.styles.Error.Render(ansi.Wrap(state.Error, ContentWidth(state.Width), ""))
	case NoticeGuidance:
		return r.styles.Guidance.Render(GuidanceText)
	default:
		return r.styles.Guidance.Render(NoResultsText)
	}
}

// Footer renders the key help line with an optional scroll hint
func (r *Renderer) Footer(state ViewState) string {
	if state.ScrollHint == "" {
		return r.styles.Help.Render(state.HelpLine)
	}
	return r.styles.Help.Render(state.HelpLine) + "  " + r.styles.Scroll.Render(state.ScrollHint)
}

// ChromeHeight is the number of lines used by everything but the grid
func (r *Renderer) ChromeHeight(state ViewState) int {
	// main padding (2), blank line above the grid (1), footer (1)
	return lipgloss.Height(r.Header(state)) + 4
}

// Render produces the complete view
func (r *Renderer) Render(state ViewState) string {
	content := &strings.Builder{}
	content.WriteString(r.Header(state))
	content.WriteString("\n\n")

	gridHeight := state.Height - r.ChromeHeight(state)
	content.WriteString(state.Grid)

	// push the footer to the bottom; an empty grid still takes one line
	if pad := gridHeight - lipgloss.Height(state.Grid); pad > 0 {
		content.WriteString(strings.Repeat("\n", pad))
	}
	content.WriteString("\n")
	content.WriteString(r.Footer(state))

	mainStyle := r.styles.Main
	if state.Height > 0 {
		mainStyle = mainStyle.MaxHeight(state.Height)
	}
	return mainStyle.Render(content.String())
}
