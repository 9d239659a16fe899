// Package changelog derives the list of recently changed rows from a grouped
// board. Everything here is recomputed on demand; there is no independent
// state.
package changelog

import (
	"time"

	"github.com/climate-chess/chessboard/internal/board"
	"github.com/climate-chess/chessboard/internal/model"
)

// Mode selects which change predicate the aggregation applies.
type Mode int

const (
	// ModeScore lists rows whose score level differs from the previous one.
	ModeScore Mode = iota
	// ModeSummary lists rows whose summary changed at or after the cutoff.
	ModeSummary
)

// ParseMode maps a mode name to its Mode. Unrecognized names fall back to
// ModeScore.
func ParseMode(s string) Mode {
	if s == "summary" {
		return ModeSummary
	}
	return ModeScore
}

func (m Mode) String() string {
	if m == ModeSummary {
		return "summary"
	}
	return "score"
}

// Entry holds one section's changed rows.
type Entry struct {
	Section model.Section `json:"section" yaml:"section"`
	Rows    []model.Row   `json:"rows" yaml:"rows"`
}

// Changelog is the derived change listing, grouped by section.
type Changelog struct {
	Mode    Mode    `json:"-" yaml:"-"`
	ModeTag string  `json:"mode" yaml:"mode"`
	Entries []Entry `json:"entries" yaml:"entries"`
	Total   int     `json:"total" yaml:"total"`
}

// Aggregate collects every grouped row (headers included) satisfying the
// selected change predicate. For ModeSummary, cutoff bounds how far back a
// summary change still counts as recent.
func Aggregate(b *board.Board, mode Mode, cutoff time.Time) *Changelog {
	cl := &Changelog{Mode: mode, ModeTag: mode.String()}
	for _, sec := range b.Sections {
		var changed []model.Row
		for _, row := range sec.Rows() {
			if rowChanged(row, mode, cutoff) {
				changed = append(changed, row)
			}
		}
		if len(changed) == 0 {
			continue
		}
		cl.Entries = append(cl.Entries, Entry{Section: sec.Section, Rows: changed})
		cl.Total += len(changed)
	}
	return cl
}

func rowChanged(row model.Row, mode Mode, cutoff time.Time) bool {
	if mode == ModeSummary {
		return row.SummaryUpdatedSince(cutoff)
	}
	_, changed := row.Delta()
	return changed
}
