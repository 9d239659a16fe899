package main

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/climate-chess/chessboard/internal/board"
	"github.com/climate-chess/chessboard/internal/changelog"
	"github.com/climate-chess/chessboard/internal/model"
)

func TestRenderChangelogText(t *testing.T) {
	t.Parallel()

	cl := changelog.Aggregate(fixtureResult().Board, changelog.ModeScore, time.Time{})
	out := renderChangelogText(cl)

	assert.Contains(t, out, "2 score changes")
	assert.Contains(t, out, "Team Urgency")
	assert.Contains(t, out, "Heatwaves: plus-1 → plus-2 (+1)")
	assert.Contains(t, out, "Sea Level: zero → minus-1 (-1)")
}

func TestRenderChangelogTextSummaryMode(t *testing.T) {
	t.Parallel()

	// A row whose score also changed still reports its summary date in
	// summary mode.
	rows := []model.Row{
		{Team: "Team Urgency", Piece: "Heatwaves", Order: 1, Include: true,
			ScoreCurrent: model.ScorePlus2, ScorePrevious: model.ScorePlus1,
			SummaryChangedAt: time.Date(2026, 8, 15, 0, 0, 0, 0, time.UTC)},
	}
	cl := changelog.Aggregate(board.Build(rows), changelog.ModeSummary,
		time.Date(2026, 8, 1, 0, 0, 0, 0, time.UTC))
	out := renderChangelogText(cl)

	assert.Contains(t, out, "1 summary changes")
	assert.Contains(t, out, "Heatwaves: summary updated 2026-08-15")
	assert.NotContains(t, out, "plus-1 → plus-2")
}

func TestRenderChangelogTextEmpty(t *testing.T) {
	t.Parallel()

	cl := changelog.Aggregate(fixtureResult().Board, changelog.ModeSummary,
		time.Date(2030, 1, 1, 0, 0, 0, 0, time.UTC))
	out := renderChangelogText(cl)
	assert.Contains(t, out, "0 summary changes")
}
