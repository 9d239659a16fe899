package board

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/climate-chess/chessboard/internal/model"
)

func row(team, piece string, order int) model.Row {
	return model.Row{Team: team, Piece: piece, Order: order, Include: true, ScoreCurrent: model.ScoreZero}
}

func TestBuild(t *testing.T) {
	t.Parallel()

	t.Run("groups rows into their sections", func(t *testing.T) {
		t.Parallel()
		b := Build([]model.Row{
			row("Team Urgency", "Heatwaves", 2),
			row("Symptoms", "Sea Level", 1),
			row("Team No-Urgency", "Delay", 1),
		})
		assert.Len(t, b.Section(model.SectionTeamUrgency).Items, 1)
		assert.Len(t, b.Section(model.SectionTeamNoUrgency).Items, 1)
		assert.Len(t, b.Section(model.SectionSymptoms).Items, 1)
		assert.Empty(t, b.Section(model.SectionSnapshot).Items)
	})

	t.Run("self-referential header row carries title metadata", func(t *testing.T) {
		t.Parallel()
		hdr := row("Team Urgency", "team urgency", 1)
		hdr.Header = true
		hdr.ScoreCurrent = model.ScorePlus1
		b := Build([]model.Row{hdr, row("Team Urgency", "Heatwaves", 2)})

		sec := b.Section(model.SectionTeamUrgency)
		require.NotNil(t, sec.Header)
		assert.Equal(t, model.ScorePlus1, sec.Header.ScoreCurrent)
		require.Len(t, sec.Items, 1)
		assert.Equal(t, "Heatwaves", sec.Items[0].Piece)
	})

	t.Run("non-self-referential header row is neither header nor item", func(t *testing.T) {
		t.Parallel()
		odd := row("Team Urgency", "Heatwaves", 1)
		odd.Header = true
		b := Build([]model.Row{odd})
		sec := b.Section(model.SectionTeamUrgency)
		assert.Nil(t, sec.Header)
		assert.Empty(t, sec.Items)
	})

	t.Run("first header wins", func(t *testing.T) {
		t.Parallel()
		h1 := row("Symptoms", "Symptoms", 1)
		h1.Header = true
		h1.SummaryCurrent = "first"
		h2 := row("Symptoms", "Symptoms", 2)
		h2.Header = true
		h2.SummaryCurrent = "second"
		b := Build([]model.Row{h1, h2})
		require.NotNil(t, b.Section(model.SectionSymptoms).Header)
		assert.Equal(t, "first", b.Section(model.SectionSymptoms).Header.SummaryCurrent)
	})

	t.Run("unknown team appears in no section", func(t *testing.T) {
		t.Parallel()
		b := Build([]model.Row{row("Unknown Team", "X", 1)})
		for _, sec := range b.Sections {
			assert.Nil(t, sec.Header)
			assert.Empty(t, sec.Items)
		}
	})

	t.Run("excluded rows are dropped from items", func(t *testing.T) {
		t.Parallel()
		r := row("Team Urgency", "Heatwaves", 1)
		r.Include = false
		b := Build([]model.Row{r})
		assert.Empty(t, b.Section(model.SectionTeamUrgency).Items)
	})

	t.Run("sorts by order then piece", func(t *testing.T) {
		t.Parallel()
		b := Build([]model.Row{
			row("Team Urgency", "Wildfires", 3),
			row("Team Urgency", "Heatwaves", 2),
			row("Team Urgency", "Drought", 3),
		})
		items := b.Section(model.SectionTeamUrgency).Items
		require.Len(t, items, 3)
		assert.Equal(t, "Heatwaves", items[0].Piece)
		assert.Equal(t, "Drought", items[1].Piece)
		assert.Equal(t, "Wildfires", items[2].Piece)
	})

	t.Run("sentinel order sorts last", func(t *testing.T) {
		t.Parallel()
		b := Build([]model.Row{
			row("Team Urgency", "Unordered", model.OrderSentinel),
			row("Team Urgency", "Zebra", 7),
		})
		items := b.Section(model.SectionTeamUrgency).Items
		require.Len(t, items, 2)
		assert.Equal(t, "Zebra", items[0].Piece)
		assert.Equal(t, "Unordered", items[1].Piece)
	})

	t.Run("stable under equal keys", func(t *testing.T) {
		t.Parallel()
		a := row("Team Urgency", "Same", 1)
		a.SummaryCurrent = "first"
		b1 := row("Team Urgency", "Same", 1)
		b1.SummaryCurrent = "second"
		built := Build([]model.Row{a, b1})
		items := built.Section(model.SectionTeamUrgency).Items
		require.Len(t, items, 2)
		assert.Equal(t, "first", items[0].SummaryCurrent)
		assert.Equal(t, "second", items[1].SummaryCurrent)

		// Rebuilding from the already-sorted slice must not reorder ties.
		rebuilt := Build(items)
		again := rebuilt.Section(model.SectionTeamUrgency).Items
		assert.Equal(t, items, again)
	})
}

func TestSectionViewRows(t *testing.T) {
	t.Parallel()

	hdr := row("Snapshot", "Snapshot", 1)
	hdr.Header = true
	b := Build([]model.Row{hdr, row("Snapshot", "State of Play", 2)})
	rows := b.Section(model.SectionSnapshot).Rows()
	require.Len(t, rows, 2)
	assert.True(t, rows[0].Header)

	empty := Build(nil).Section(model.SectionSymptoms).Rows()
	assert.Empty(t, empty)
}
