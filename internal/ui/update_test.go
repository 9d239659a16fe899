package ui

import (
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/climate-chess/chessboard/internal/board"
	"github.com/climate-chess/chessboard/internal/loader"
	"github.com/climate-chess/chessboard/internal/model"
)

func fixtureResult(seq uint64, source string) *loader.Result {
	rows := []model.Row{
		{Team: "Team Urgency", Piece: "Heatwaves", Order: 2, Include: true,
			ScoreCurrent: model.ScorePlus2, ScorePrevious: model.ScorePlus1},
		{Team: "Symptoms", Piece: "Sea Level", Order: 1, Include: true,
			ScoreCurrent: model.ScoreMinus1},
	}
	return &loader.Result{
		Rows:     rows,
		Board:    board.Build(rows),
		Source:   source,
		Seq:      seq,
		LoadedAt: time.Now(),
	}
}

func key(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func TestApplyLoadCommitsFreshResult(t *testing.T) {
	t.Parallel()

	com := &loader.Committer{}
	m := New(Options{Committer: com, ShowScoreHighlights: true, ShowUpdateDots: true})
	m, _ = m.startReload()

	got := m.applyLoad(loadDoneMsg{res: fixtureResult(m.pendingSeq, "a"), seq: m.pendingSeq})
	require.NotNil(t, got.board)
	assert.False(t, got.loading)
	assert.Equal(t, "a", got.source)
	assert.Len(t, got.flat, 2)
}

func TestApplyLoadDiscardsStaleResult(t *testing.T) {
	t.Parallel()

	com := &loader.Committer{}
	m := New(Options{Committer: com})
	m, _ = m.startReload()
	staleSeq := m.pendingSeq
	m, _ = m.startReload() // second reload supersedes the first

	got := m.applyLoad(loadDoneMsg{res: fixtureResult(staleSeq, "stale"), seq: staleSeq})
	assert.Nil(t, got.board)
	assert.True(t, got.loading) // still waiting on the fresh attempt

	got = got.applyLoad(loadDoneMsg{res: fixtureResult(got.pendingSeq, "fresh"), seq: got.pendingSeq})
	require.NotNil(t, got.board)
	assert.Equal(t, "fresh", got.source)
}

func TestApplyLoadKeepsErrorUntilReload(t *testing.T) {
	t.Parallel()

	com := &loader.Committer{}
	m := New(Options{Committer: com})
	m, _ = m.startReload()

	got := m.applyLoad(loadDoneMsg{err: assert.AnError, seq: m.pendingSeq})
	require.Error(t, got.loadErr)
	assert.Contains(t, got.View(), "Could not load data")
}

func TestInitWithoutLoaderReportsError(t *testing.T) {
	t.Parallel()

	m := New(Options{Committer: &loader.Committer{}})

	cmd := m.Init()
	require.NotNil(t, cmd)
	msg, ok := cmd().(loadDoneMsg)
	require.True(t, ok)
	require.Error(t, msg.err)
	assert.Contains(t, msg.err.Error(), "no loader configured")

	got := m.applyLoad(msg)
	assert.False(t, got.loading)
	assert.Contains(t, got.View(), "Could not load data")
}

func TestToggleKeys(t *testing.T) {
	t.Parallel()

	m := New(Options{Committer: &loader.Committer{}, ShowScoreHighlights: true, ShowUpdateDots: true})
	m, _ = m.startReload()
	m = m.applyLoad(loadDoneMsg{res: fixtureResult(m.pendingSeq, "a"), seq: m.pendingSeq})

	next, _ := m.Update(key("s"))
	m = next.(Model)
	assert.False(t, m.showHighlights)

	next, _ = m.Update(key("u"))
	m = next.(Model)
	assert.False(t, m.showDots)
}

func TestCursorNavigation(t *testing.T) {
	t.Parallel()

	m := New(Options{Committer: &loader.Committer{}})
	m, _ = m.startReload()
	m = m.applyLoad(loadDoneMsg{res: fixtureResult(m.pendingSeq, "a"), seq: m.pendingSeq})
	require.Len(t, m.flat, 2)

	next, _ := m.Update(key("j"))
	m = next.(Model)
	assert.Equal(t, 1, m.cursor)

	// Bounded at the last row.
	next, _ = m.Update(key("j"))
	m = next.(Model)
	assert.Equal(t, 1, m.cursor)

	next, _ = m.Update(key("k"))
	m = next.(Model)
	assert.Equal(t, 0, m.cursor)
}

func TestChangelogOverlay(t *testing.T) {
	t.Parallel()

	m := New(Options{Committer: &loader.Committer{}})
	m, _ = m.startReload()
	m = m.applyLoad(loadDoneMsg{res: fixtureResult(m.pendingSeq, "a"), seq: m.pendingSeq})

	next, _ := m.Update(key("c"))
	m = next.(Model)
	assert.True(t, m.changelogOpen)
	assert.Contains(t, m.View(), "Changelog")

	next, _ = m.Update(key("m"))
	m = next.(Model)
	assert.Contains(t, m.View(), "summary changes")

	next, _ = m.Update(tea.KeyMsg{Type: tea.KeyEsc})
	m = next.(Model)
	assert.False(t, m.changelogOpen)
}

func TestChangelogSummaryModeShowsSummaryDates(t *testing.T) {
	t.Parallel()

	// A row with both a score change and a recent summary update is
	// reported by its summary date once the mode is switched.
	rows := []model.Row{
		{Team: "Team Urgency", Piece: "Heatwaves", Order: 1, Include: true,
			ScoreCurrent: model.ScorePlus2, ScorePrevious: model.ScorePlus1,
			SummaryChangedAt: time.Now().Add(-24 * time.Hour)},
	}
	res := &loader.Result{Rows: rows, Board: board.Build(rows), Source: "a", LoadedAt: time.Now()}

	m := New(Options{Committer: &loader.Committer{}, SummaryWindow: 7 * 24 * time.Hour})
	m, _ = m.startReload()
	res.Seq = m.pendingSeq
	m = m.applyLoad(loadDoneMsg{res: res, seq: m.pendingSeq})

	next, _ := m.Update(tea.WindowSizeMsg{Width: 100, Height: 40})
	m = next.(Model)
	next, _ = m.Update(key("c"))
	m = next.(Model)
	next, _ = m.Update(key("m"))
	m = next.(Model)

	out := m.View()
	assert.Contains(t, out, "summary updated")
	assert.NotContains(t, out, "plus-1 → plus-2")
}

func TestViewRendersSectionsAndDetail(t *testing.T) {
	t.Parallel()

	m := New(Options{Committer: &loader.Committer{}, ShowScoreHighlights: true})
	m, _ = m.startReload()
	m = m.applyLoad(loadDoneMsg{res: fixtureResult(m.pendingSeq, "a"), seq: m.pendingSeq})

	out := m.View()
	assert.Contains(t, out, "Team Urgency")
	assert.Contains(t, out, "Symptoms")
	assert.Contains(t, out, "Heatwaves")
	assert.Contains(t, out, "➕➕")
}
