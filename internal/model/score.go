// Package model defines the canonical row shape, score levels, section
// identities, and derived values (deltas, links) for the Climate Chess board.
package model

import "strings"

// Score is one of the seven ordinal levels a piece can hold, from
// ScoreMinus3 to ScorePlus3. The zero value ScoreNone means no recorded
// score; it only appears as a previous score.
type Score string

const (
	ScoreNone   Score = ""
	ScoreMinus3 Score = "minus-3"
	ScoreMinus2 Score = "minus-2"
	ScoreMinus1 Score = "minus-1"
	ScoreZero   Score = "zero"
	ScorePlus1  Score = "plus-1"
	ScorePlus2  Score = "plus-2"
	ScorePlus3  Score = "plus-3"
)

// scoreValues maps each level to its ordinal value.
var scoreValues = map[Score]int{
	ScoreMinus3: -3,
	ScoreMinus2: -2,
	ScoreMinus1: -1,
	ScoreZero:   0,
	ScorePlus1:  1,
	ScorePlus2:  2,
	ScorePlus3:  3,
}

// Levels returns the seven valid score levels in ascending order.
func Levels() []Score {
	return []Score{
		ScoreMinus3, ScoreMinus2, ScoreMinus1,
		ScoreZero,
		ScorePlus1, ScorePlus2, ScorePlus3,
	}
}

var scoreNormalizer = strings.NewReplacer(" ", "-", "_", "-")

// ParseScore converts free text into a Score. Matching is case-insensitive
// and tolerates spaces or underscores in place of hyphens. Empty input
// returns ScoreNone; any other unrecognized value is coerced to ScoreZero so
// callers never see a score outside the closed set.
func ParseScore(s string) Score {
	s = strings.ToLower(strings.TrimSpace(s))
	if s == "" {
		return ScoreNone
	}
	sc := Score(scoreNormalizer.Replace(s))
	if _, ok := scoreValues[sc]; ok {
		return sc
	}
	return ScoreZero
}

// Value returns the ordinal value of the score. ScoreNone and any value
// outside the closed set count as 0.
func (s Score) Value() int {
	return scoreValues[s]
}

// Symbol returns the badge glyphs for the score: one ➕ or ➖ per level of
// magnitude, ⚪ for zero.
func (s Score) Symbol() string {
	switch v := s.Value(); {
	case v > 0:
		return strings.Repeat("➕", v)
	case v < 0:
		return strings.Repeat("➖", -v)
	default:
		return "⚪"
	}
}

// Delta returns the signed level difference between the current and previous
// scores and whether the score changed. An empty previous score means "no
// recorded previous"; such rows are never reported as changed.
func Delta(cur, prev Score) (int, bool) {
	if prev == ScoreNone {
		return 0, false
	}
	d := cur.Value() - prev.Value()
	return d, d != 0
}

// Arrow returns the directional indicator for a delta: ▲ for an increase,
// ▼ for a decrease, empty for no change.
func Arrow(delta int) string {
	switch {
	case delta > 0:
		return "▲"
	case delta < 0:
		return "▼"
	default:
		return ""
	}
}
