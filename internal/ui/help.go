package ui

import (
	"fmt"
	"io"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/noborus/ov/oviewer"

	"alescout/internal/ui/views"
)

// HelpRenderer renders the key reference shown in the pager
type HelpRenderer struct{}

// NewHelpRenderer creates a new help renderer
func NewHelpRenderer() *HelpRenderer {
	return &HelpRenderer{}
}

var helpSections = []string{"Results", "Scrolling", "Search & exit"}

// Render builds the help text from the key map
func (r *HelpRenderer) Render(keys KeyMap) string {
	titleStyle := lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("99")).
		MarginBottom(1)

	sectionStyle := lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("39")).
		MarginTop(1)

	keyStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color("220")).
		Width(12)

	descStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color("252"))

	var help strings.Builder
	help.WriteString(titleStyle.Render(views.Title + " Help"))
	help.WriteString("\n")

	for i, group := range keys.FullHelp() {
		name := "Other"
		if i < len(helpSections) {
			name = helpSections[i]
		}
		help.WriteString(sectionStyle.Render(name))
		help.WriteString("\n")
		for _, b := range group {
			h := b.Help()
			help.WriteString(fmt.Sprintf("  %s%s\n", keyStyle.Render(h.Key), descStyle.Render(h.Desc)))
		}
	}

	help.WriteString("\n")
	help.WriteString(lipgloss.NewStyle().Italic(true).Foreground(lipgloss.Color("241")).
		Render("  Type to search by name. Results appear once you pause typing."))
	return help.String()
}

// pagerCommand shows text in the ov pager. It satisfies tea.ExecCommand so
// Bubble Tea releases the terminal while the pager runs.
type pagerCommand struct {
	content string
	stdin   io.Reader
	stdout  io.Writer
	stderr  io.Writer
}

func newPagerCommand(content string) *pagerCommand {
	return &pagerCommand{content: content}
}

func (c *pagerCommand) SetStdin(r io.Reader)  { c.stdin = r }
func (c *pagerCommand) SetStdout(w io.Writer) { c.stdout = w }
func (c *pagerCommand) SetStderr(w io.Writer) { c.stderr = w }

// Run blocks until the user leaves the pager
func (c *pagerCommand) Run() error {
	root, err := oviewer.NewRoot(strings.NewReader(c.content))
	if err != nil {
		return fmt.Errorf("failed to open pager: %w", err)
	}

	config := oviewer.NewConfig()
	config.IsWriteOnExit = false
	config.IsWriteOriginal = false
	root.SetConfig(config)

	return root.Run()
}

// showHelp opens the key reference in the pager
func showHelp(keys KeyMap) tea.Cmd {
	content := NewHelpRenderer().Render(keys)
	return tea.Exec(newPagerCommand(content), func(err error) tea.Msg {
		return helpPagerMsg{err: err}
	})
}
