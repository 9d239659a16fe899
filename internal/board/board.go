// Package board partitions canonical rows into the fixed board sections and
// orders each section's items.
package board

import (
	"sort"
	"strings"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"

	"github.com/climate-chess/chessboard/internal/model"
)

// SectionView is one rendered section: an optional header row carrying the
// section's title metadata, and the ordered item rows.
type SectionView struct {
	Section model.Section `json:"section" yaml:"section"`
	Header  *model.Row    `json:"header,omitempty" yaml:"header,omitempty"`
	Items   []model.Row   `json:"items" yaml:"items"`
}

// Board is the full grouped dataset, sections in fixed display order.
type Board struct {
	Sections []SectionView `json:"sections" yaml:"sections"`
}

// Build groups rows into sections. Per section it keeps at most one header
// row (the first row flagged as a header whose Piece case-insensitively
// equals its Team) and every included non-header row, sorted by ascending
// Order with ties broken by locale collation of Piece. Rows whose Team
// matches no known section are excluded everywhere. A section with no header
// row is not an error; it simply has no title metadata.
func Build(rows []model.Row) *Board {
	headers := make(map[model.Section]*model.Row)
	items := make(map[model.Section][]model.Row)

	for _, row := range rows {
		sec := row.Section()
		if sec == model.SectionUnknown {
			continue
		}
		if row.Header {
			if headers[sec] == nil && strings.EqualFold(row.Piece, row.Team) {
				r := row
				headers[sec] = &r
			}
			continue
		}
		if !row.Include {
			continue
		}
		items[sec] = append(items[sec], row)
	}

	coll := collate.New(language.English)
	b := &Board{Sections: make([]SectionView, 0, len(model.Sections()))}
	for _, sec := range model.Sections() {
		view := SectionView{
			Section: sec,
			Header:  headers[sec],
			Items:   items[sec],
		}
		sortItems(view.Items, coll)
		b.Sections = append(b.Sections, view)
	}
	return b
}

// sortItems orders rows by ascending Order, ties broken by collation of
// Piece. The sort is stable so equal (Order, Piece) keys keep input order.
func sortItems(rows []model.Row, coll *collate.Collator) {
	sort.SliceStable(rows, func(i, j int) bool {
		if rows[i].Order != rows[j].Order {
			return rows[i].Order < rows[j].Order
		}
		return coll.CompareString(rows[i].Piece, rows[j].Piece) < 0
	})
}

// Section returns the view for the given section, or nil if the section is
// unknown.
func (b *Board) Section(sec model.Section) *SectionView {
	for i := range b.Sections {
		if b.Sections[i].Section == sec {
			return &b.Sections[i]
		}
	}
	return nil
}

// Rows returns a section's header (when present) followed by its items.
func (v *SectionView) Rows() []model.Row {
	rows := make([]model.Row, 0, len(v.Items)+1)
	if v.Header != nil {
		rows = append(rows, *v.Header)
	}
	return append(rows, v.Items...)
}
