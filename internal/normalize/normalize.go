// Package normalize coerces raw CSV records into canonical board rows. All
// tolerant string-to-enum parsing happens here, at the system's edge, so
// nothing downstream ever re-parses free text.
package normalize

import (
	"strconv"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/climate-chess/chessboard/internal/fetcher"
	"github.com/climate-chess/chessboard/internal/model"
)

// dateLayouts are the accepted change-date formats, tried in order.
var dateLayouts = []string{time.RFC3339, "2006-01-02"}

// Record converts one raw record into a canonical row. It returns false only
// when Team or Piece is empty after trimming; such rows (spreadsheet helper
// rows, trailing junk) are dropped silently. Every other field has a total,
// default-producing conversion, so normalization never fails once the
// identity fields are present.
func Record(rec fetcher.RawRecord) (model.Row, bool) {
	team := strings.TrimSpace(rec["Team"])
	piece := strings.TrimSpace(rec["Piece"])
	if team == "" || piece == "" {
		return model.Row{}, false
	}

	row := model.Row{
		Team:             team,
		Piece:            piece,
		Order:            parseOrder(rec["Order"]),
		Include:          parseFlag(rec["Include"], true),
		Header:           parseFlag(rec["Header_Flag"], false),
		ScoreCurrent:     model.ParseScore(rec["Score_Current"]),
		ScorePrevious:    model.ParseScore(rec["Score_Previous"]),
		SummaryCurrent:   strings.TrimSpace(rec["Summary_Current"]),
		Links:            strings.TrimSpace(lookup(rec, "Links", "Evidence_Links")),
		ScoreChangedAt:   parseDate(rec["Score_Changed_Date"]),
		SummaryChangedAt: parseDate(rec["Summary_Changed_Date"]),
	}
	if row.ScoreCurrent == model.ScoreNone {
		row.ScoreCurrent = model.ScoreZero
	}
	return row, true
}

// Records normalizes a record sequence, preserving the input order of
// survivors.
func Records(recs []fetcher.RawRecord) []model.Row {
	rows := make([]model.Row, 0, len(recs))
	dropped := 0
	for _, rec := range recs {
		row, ok := Record(rec)
		if !ok {
			dropped++
			continue
		}
		rows = append(rows, row)
	}
	if dropped > 0 {
		zap.L().Debug("dropped records missing identity fields", zap.Int("dropped", dropped))
	}
	return rows
}

func lookup(rec fetcher.RawRecord, cols ...string) string {
	for _, col := range cols {
		if v, ok := rec[col]; ok && strings.TrimSpace(v) != "" {
			return v
		}
	}
	return ""
}

func parseOrder(s string) int {
	n, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil {
		return model.OrderSentinel
	}
	return n
}

// parseFlag maps {yes, y, true, 1} to true, case-insensitively. Blank input
// takes the provided default; anything else is false.
func parseFlag(s string, blank bool) bool {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "":
		return blank
	case "yes", "y", "true", "1":
		return true
	default:
		return false
	}
}

func parseDate(s string) time.Time {
	s = strings.TrimSpace(s)
	if s == "" {
		return time.Time{}
	}
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t
		}
	}
	return time.Time{}
}
