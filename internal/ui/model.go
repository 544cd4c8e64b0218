package ui

import (
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/rs/zerolog"
	"k8s.io/utils/clock"

	"alescout/internal/config"
	"alescout/internal/debounce"
	"alescout/internal/domain"
	"alescout/internal/eventbus"
	"alescout/internal/logging"
	"alescout/internal/search"
	"alescout/internal/ui/state"
	"alescout/internal/ui/views"
)

// Model is the catalog view: it owns the fetch lifecycle, the debounced
// search term and the grid of matching cards.
type Model struct {
	bus    eventbus.EventBus
	config *config.Config
	load   state.LoadState
	search *search.State

	// derived from search; refreshed whenever the term or catalog changes
	results  []domain.CatalogItem
	selected int

	width  int
	height int
	input  textinput.Model
	typed  string
	spin   spinner.Model
	grid   viewport.Model
	help   help.Model
	keys   KeyMap

	renderer  *views.Renderer
	debouncer *debounce.Debouncer[string]
	commits   chan string
	done      chan struct{}

	log zerolog.Logger
}

// Option configures a Model
type Option func(*modelOptions)

type modelOptions struct {
	clock clock.WithDelayedExecution
}

// WithClock sets the clock behind the search debounce
func WithClock(c clock.WithDelayedExecution) Option {
	return func(o *modelOptions) {
		o.clock = c
	}
}

// NewModel creates a new UI model
func NewModel(bus eventbus.EventBus, cfg *config.Config, opts ...Option) *Model {
	o := modelOptions{clock: clock.RealClock{}}
	for _, opt := range opts {
		opt(&o)
	}

	ti := textinput.New()
	ti.Placeholder = "Search beers..."
	ti.Prompt = "⌕ "
	ti.Focus()

	sp := spinner.New(spinner.WithSpinner(spinner.Dot))

	commits := make(chan string, 1)

	m := &Model{
		bus:      bus,
		config:   cfg,
		load:     state.Idle{},
		search:   search.NewState(),
		width:    80,
		height:   24,
		input:    ti,
		spin:     sp,
		grid:     viewport.New(views.ContentWidth(80), 1),
		help:     help.New(),
		keys:     DefaultKeyMap(),
		renderer: views.NewRenderer(cfg.PlaceholderImage),
		commits:  commits,
		done:     make(chan struct{}),
		log:      logging.Component("ui"),
	}
	m.debouncer = debounce.New(cfg.Debounce.Duration, func(term string) {
		offer(commits, term)
	}, debounce.WithClock(o.clock))
	m.grid.Style = lipgloss.NewStyle()
	m.relayout()

	return m
}

// Init starts the single catalog fetch
func (m *Model) Init() tea.Cmd {
	next, ok := state.Start(m.load)
	if !ok {
		return m.waitForCommit()
	}
	m.load = next
	m.relayout()
	m.log.Info().Str("endpoint", m.config.Endpoint).Msg("requesting catalog")

	return tea.Batch(
		m.requestCatalog(),
		m.spin.Tick,
		textinput.Blink,
		m.waitForCommit(),
	)
}

// Update handles messages
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		m.input.Width = views.ContentWidth(msg.Width) - 8
		m.relayout()
		return m, nil

	case EventMsg:
		m.handleEvent(msg.Event)
		return m, nil

	case searchCommittedMsg:
		m.commitSearch(msg.term)
		return m, m.waitForCommit()

	case spinner.TickMsg:
		// stop ticking once the fetch has settled
		if !state.IsLoading(m.load) {
			return m, nil
		}
		var cmd tea.Cmd
		m.spin, cmd = m.spin.Update(msg)
		return m, cmd

	case helpPagerMsg:
		if msg.err != nil {
			m.log.Error().Err(msg.err).Msg("help pager failed")
		}
		return m, nil

	case tea.KeyMsg:
		return m.handleKey(msg)
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

// View renders the UI
func (m *Model) View() string {
	vs := m.viewState()
	if len(m.results) > 0 {
		vs.Grid = m.grid.View()
		if !m.grid.AtBottom() {
			vs.ScrollHint = "↓ more"
		}
	}
	return m.renderer.Render(vs)
}

func (m *Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		return m, m.quit()

	case key.Matches(msg, m.keys.Clear):
		if m.input.Value() == "" {
			return m, m.quit()
		}
		m.input.Reset()
		m.inputChanged()
		return m, nil

	case key.Matches(msg, m.keys.Help):
		return m, showHelp(m.keys)

	case key.Matches(msg, m.keys.Next):
		m.moveSelection(1)
		return m, nil

	case key.Matches(msg, m.keys.Prev):
		m.moveSelection(-1)
		return m, nil

	case key.Matches(msg, m.keys.Down):
		m.moveSelection(m.columns())
		return m, nil

	case key.Matches(msg, m.keys.Up):
		m.moveSelection(-m.columns())
		return m, nil

	case key.Matches(msg, m.keys.PageDown):
		m.grid.PageDown()
		return m, nil

	case key.Matches(msg, m.keys.PageUp):
		m.grid.PageUp()
		return m, nil
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	m.inputChanged()
	return m, cmd
}

func (m *Model) handleEvent(event eventbus.DomainEvent) {
	switch e := event.(type) {
	case eventbus.CatalogLoadedEvent:
		next, ok := state.Succeed(m.load, e.Items)
		if !ok {
			m.log.Debug().Str("state", state.Name(m.load)).Msg("ignoring catalog outcome")
			return
		}
		m.load = next
		items, _ := state.Items(m.load)
		m.search.SetCatalog(items)
		m.log.Info().Int("items", len(items)).Msg("catalog loaded")
		m.refreshResults()

	case eventbus.CatalogFailedEvent:
		next, ok := state.Fail(m.load, e.Reason)
		if !ok {
			m.log.Debug().Str("state", state.Name(m.load)).Msg("ignoring catalog outcome")
			return
		}
		m.load = next
		m.log.Error().Str("reason", e.Reason).Msg("catalog failed")
		m.relayout()
	}
}

// inputChanged schedules a commit whenever the field's text changed
func (m *Model) inputChanged() {
	v := m.input.Value()
	if v == m.typed {
		return
	}
	m.typed = v
	m.debouncer.Trigger(v)
}

func (m *Model) commitSearch(term string) {
	if term == m.search.Term() {
		return
	}
	m.search.SetTerm(term)
	m.selected = 0
	m.log.Debug().Str("term", term).Msg("search committed")
	m.refreshResults()
	m.grid.GotoTop()
}

func (m *Model) refreshResults() {
	m.results = m.search.Results()
	if m.selected >= len(m.results) {
		m.selected = len(m.results) - 1
	}
	if m.selected < 0 {
		m.selected = 0
	}
	m.relayout()
}

func (m *Model) moveSelection(delta int) {
	if len(m.results) == 0 {
		return
	}
	n := m.selected + delta
	if n < 0 {
		n = 0
	}
	if n >= len(m.results) {
		n = len(m.results) - 1
	}
	if n == m.selected {
		return
	}
	m.selected = n
	m.relayout()
}

func (m *Model) columns() int {
	return views.Columns(views.ContentWidth(m.width))
}

// relayout resizes the grid viewport to the space the header leaves and
// re-renders the cards
func (m *Model) relayout() {
	vs := m.viewState()
	m.grid.Width = views.ContentWidth(m.width)
	h := m.height - m.renderer.ChromeHeight(vs)
	if h < 1 {
		h = 1
	}
	m.grid.Height = h
	m.grid.SetContent(m.renderer.RenderGrid(vs, m.results, m.selected))
	m.ensureVisible()
}

// ensureVisible scrolls the grid so the selected card's row is on screen
func (m *Model) ensureVisible() {
	if len(m.results) == 0 {
		m.grid.GotoTop()
		return
	}
	top := views.RowOf(m.selected, views.ContentWidth(m.width)) * views.CardHeight
	switch {
	case top < m.grid.YOffset:
		m.grid.SetYOffset(top)
	case top+views.CardHeight > m.grid.YOffset+m.grid.Height:
		m.grid.SetYOffset(top + views.CardHeight - m.grid.Height)
	}
}

func (m *Model) viewState() views.ViewState {
	errMsg, _ := state.Error(m.load)
	return views.ViewState{
		Width:       m.width,
		Height:      m.height,
		Loading:     state.IsLoading(m.load),
		Error:       errMsg,
		Term:        m.search.Term(),
		ResultCount: len(m.results),
		SearchInput: m.input.View(),
		Spinner:     m.spin.View(),
		HelpLine:    m.help.View(m.keys),
	}
}

func (m *Model) requestCatalog() tea.Cmd {
	bus := m.bus
	return func() tea.Msg {
		bus.Publish(eventbus.CatalogRequestedEvent{})
		return nil
	}
}

// waitForCommit delivers the next debounced search term to Update
func (m *Model) waitForCommit() tea.Cmd {
	commits, done := m.commits, m.done
	return func() tea.Msg {
		select {
		case term := <-commits:
			return searchCommittedMsg{term: term}
		case <-done:
			return nil
		}
	}
}

func (m *Model) quit() tea.Cmd {
	m.debouncer.Stop()
	select {
	case <-m.done:
	default:
		close(m.done)
	}
	m.log.Info().Msg("quitting")
	return tea.Quit
}

// offer puts term into the single-slot mailbox, replacing a commit that
// has not been picked up yet
func offer(commits chan string, term string) {
	for {
		select {
		case commits <- term:
			return
		default:
		}
		select {
		case <-commits:
		default:
		}
	}
}
