package model

import "time"

// OrderSentinel is assigned to rows with an absent or unparsable Order so
// they sort after every explicitly ordered row in their section.
const OrderSentinel = 9999

// Row is a canonical board row produced by normalization. Rows are immutable
// value objects; every load cycle rebuilds the full set from scratch.
type Row struct {
	Team             string    `json:"team" yaml:"team"`
	Piece            string    `json:"piece" yaml:"piece"`
	Order            int       `json:"order" yaml:"order"`
	Include          bool      `json:"include" yaml:"include"`
	Header           bool      `json:"header" yaml:"header"`
	ScoreCurrent     Score     `json:"score_current" yaml:"score_current"`
	ScorePrevious    Score     `json:"score_previous,omitempty" yaml:"score_previous,omitempty"`
	SummaryCurrent   string    `json:"summary_current,omitempty" yaml:"summary_current,omitempty"`
	Links            string    `json:"links,omitempty" yaml:"links,omitempty"`
	ScoreChangedAt   time.Time `json:"score_changed_at,omitzero" yaml:"score_changed_at,omitempty"`
	SummaryChangedAt time.Time `json:"summary_changed_at,omitzero" yaml:"summary_changed_at,omitempty"`
}

// Section resolves the row's Team to its section identity.
func (r Row) Section() Section {
	return ParseSection(r.Team)
}

// Delta returns the signed score level difference and whether the score
// changed since the previous load of the dataset.
func (r Row) Delta() (int, bool) {
	return Delta(r.ScoreCurrent, r.ScorePrevious)
}

// SummaryUpdatedSince reports whether the row's summary carries a change
// date at or after the given cutoff.
func (r Row) SummaryUpdatedSince(cutoff time.Time) bool {
	if r.SummaryChangedAt.IsZero() {
		return false
	}
	return !r.SummaryChangedAt.Before(cutoff)
}

// ExtractLinks parses the row's raw Links field into (url, label) pairs.
func (r Row) ExtractLinks() []Link {
	return ParseLinks(r.Links)
}
