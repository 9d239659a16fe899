package ui

import (
	"context"
	"time"

	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/rotisserie/eris"

	"github.com/climate-chess/chessboard/internal/board"
	"github.com/climate-chess/chessboard/internal/changelog"
	"github.com/climate-chess/chessboard/internal/loader"
	"github.com/climate-chess/chessboard/internal/model"
)

// Options configures the board program.
type Options struct {
	Loader              *loader.Loader
	Committer           *loader.Committer
	ShowScoreHighlights bool
	ShowUpdateDots      bool
	SummaryWindow       time.Duration
	LoadTimeout         time.Duration
}

// loadDoneMsg carries the outcome of one load attempt back into the update
// loop, tagged with the attempt's sequence number.
type loadDoneMsg struct {
	res *loader.Result
	err error
	seq uint64
}

// flatRow is one navigable board row with its owning section.
type flatRow struct {
	section model.Section
	row     model.Row
}

// Model is the owned application state of the board view. Transitions happen
// only through key events and the load-completion message.
type Model struct {
	opts   Options
	styles Styles

	board    *board.Board
	source   string
	loadedAt time.Time

	loading    bool
	pendingSeq uint64
	loadErr    error

	flat   []flatRow
	cursor int

	showHighlights bool
	showDots       bool

	changelogOpen bool
	clMode        changelog.Mode
	clView        viewport.Model

	width  int
	height int

	initCmd tea.Cmd
}

// New creates the board model with its first load attempt already begun;
// Init returns the command that runs it.
func New(opts Options) Model {
	if opts.Committer == nil {
		opts.Committer = &loader.Committer{}
	}
	if opts.LoadTimeout == 0 {
		opts.LoadTimeout = 30 * time.Second
	}
	m := Model{
		opts:           opts,
		styles:         DefaultStyles(),
		showHighlights: opts.ShowScoreHighlights,
		showDots:       opts.ShowUpdateDots,
		clView:         viewport.New(0, 0),
	}
	var cmd tea.Cmd
	m, cmd = m.startReload()
	m.initCmd = cmd
	return m
}

// Init kicks off the initial load.
func (m Model) Init() tea.Cmd {
	return m.initCmd
}

// startReload registers a new attempt with the committer and returns the
// command that runs it. The returned model has loading state set.
func (m Model) startReload() (Model, tea.Cmd) {
	seq := m.opts.Committer.Begin()
	m.loading = true
	m.pendingSeq = seq
	ld := m.opts.Loader
	if ld == nil {
		return m, func() tea.Msg {
			return loadDoneMsg{err: eris.New("ui: no loader configured"), seq: seq}
		}
	}
	timeout := m.opts.LoadTimeout
	return m, func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), timeout)
		defer cancel()
		res, err := ld.Load(ctx)
		if res != nil {
			res.Seq = seq
		}
		return loadDoneMsg{res: res, err: err, seq: seq}
	}
}

// Update handles key events, resizes, and load completions.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.clView.Width = max(20, msg.Width-8)
		m.clView.Height = max(5, msg.Height-6)
		return m, nil

	case loadDoneMsg:
		return m.applyLoad(msg), nil

	case tea.KeyMsg:
		return m.handleKey(msg)
	}
	return m, nil
}

// applyLoad commits a finished attempt. Results and errors from superseded
// attempts are discarded outright, so rapid reloads can never publish stale
// data over fresh data.
func (m Model) applyLoad(msg loadDoneMsg) Model {
	if msg.seq != m.pendingSeq {
		return m
	}
	m.loading = false
	if msg.err != nil {
		m.loadErr = msg.err
		return m
	}
	if !m.opts.Committer.Commit(msg.res) {
		return m
	}
	m.loadErr = nil
	m.board = msg.res.Board
	m.source = msg.res.Source
	m.loadedAt = msg.res.LoadedAt
	m.flat = flatten(m.board)
	if m.cursor >= len(m.flat) {
		m.cursor = max(0, len(m.flat)-1)
	}
	if m.changelogOpen {
		m.refreshChangelog()
	}
	return m
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.changelogOpen {
		switch msg.String() {
		case "q", "ctrl+c":
			return m, tea.Quit
		case "esc", "c":
			m.changelogOpen = false
			return m, nil
		case "m":
			if m.clMode == changelog.ModeScore {
				m.clMode = changelog.ModeSummary
			} else {
				m.clMode = changelog.ModeScore
			}
			m.refreshChangelog()
			return m, nil
		default:
			var cmd tea.Cmd
			m.clView, cmd = m.clView.Update(msg)
			return m, cmd
		}
	}

	switch msg.String() {
	case "q", "ctrl+c":
		return m, tea.Quit
	case "r":
		// A reload during a pending load supersedes it; the old attempt's
		// completion will be discarded by sequence.
		var cmd tea.Cmd
		m, cmd = m.startReload()
		return m, cmd
	case "s":
		m.showHighlights = !m.showHighlights
		return m, nil
	case "u":
		m.showDots = !m.showDots
		return m, nil
	case "c":
		m.changelogOpen = true
		m.refreshChangelog()
		return m, nil
	case "up", "k":
		if m.cursor > 0 {
			m.cursor--
		}
		return m, nil
	case "down", "j":
		if m.cursor < len(m.flat)-1 {
			m.cursor++
		}
		return m, nil
	}
	return m, nil
}

// refreshChangelog recomputes the changelog content for the current mode.
func (m *Model) refreshChangelog() {
	if m.board == nil {
		m.clView.SetContent("No data loaded yet.")
		return
	}
	cutoff := time.Time{}
	if m.opts.SummaryWindow > 0 {
		cutoff = time.Now().Add(-m.opts.SummaryWindow)
	}
	cl := changelog.Aggregate(m.board, m.clMode, cutoff)
	m.clView.SetContent(m.renderChangelog(cl))
	m.clView.GotoTop()
}

// flatten lists every item row in section display order for cursor
// navigation. Header rows carry section metadata and are not navigable.
func flatten(b *board.Board) []flatRow {
	var flat []flatRow
	for _, sec := range b.Sections {
		for _, item := range sec.Items {
			flat = append(flat, flatRow{section: sec.Section, row: item})
		}
	}
	return flat
}

// selected returns the row under the cursor, or nil when the board is empty.
func (m Model) selected() *flatRow {
	if m.cursor < 0 || m.cursor >= len(m.flat) {
		return nil
	}
	return &m.flat[m.cursor]
}
