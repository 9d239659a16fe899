package ui

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"

	"github.com/climate-chess/chessboard/internal/changelog"
	"github.com/climate-chess/chessboard/internal/model"
)

// View renders the full board screen.
func (m Model) View() string {
	var b strings.Builder

	b.WriteString(m.styles.AppTitle.Render("Climate Chess"))
	b.WriteString("  ")
	b.WriteString(m.styles.StatusBar.Render(m.statusLine()))
	b.WriteString("\n\n")

	if m.loadErr != nil {
		b.WriteString(m.styles.ErrorBar.Render("Could not load data: " + m.loadErr.Error()))
		b.WriteString("\n")
		b.WriteString(m.styles.Help.Render("Press r to retry."))
		b.WriteString("\n")
		return b.String()
	}

	if m.changelogOpen {
		title := fmt.Sprintf("Changelog: %s changes (m to switch, esc to close)", m.clMode)
		b.WriteString(m.styles.Overlay.Render(
			m.styles.CardTitle.Render(title) + "\n" + m.clView.View(),
		))
		b.WriteString("\n")
		return b.String()
	}

	if m.board == nil {
		b.WriteString(m.styles.Muted.Render("Loading…"))
		b.WriteString("\n")
		return b.String()
	}

	idx := 0
	for _, sec := range m.board.Sections {
		b.WriteString(m.renderSection(sec.Section, idx))
		b.WriteString("\n")
		idx += len(sec.Items)
	}

	if sel := m.selected(); sel != nil {
		b.WriteString(m.renderDetail(sel))
		b.WriteString("\n")
	}

	b.WriteString(m.styles.Help.Render("↑/↓ select · s highlights · u update dots · c changelog · r reload · q quit"))
	b.WriteString("\n")
	return b.String()
}

func (m Model) statusLine() string {
	switch {
	case m.loading:
		return "loading…"
	case m.source != "":
		return fmt.Sprintf("source: %s · loaded %s", m.source, m.loadedAt.Format("15:04:05"))
	default:
		return ""
	}
}

func (m Model) renderSection(sec model.Section, baseIdx int) string {
	view := m.board.Section(sec)
	if view == nil {
		return ""
	}

	var lines []string
	title := m.styles.CardTitle.Render(sec.String())
	if view.Header != nil {
		title += " " + m.renderBadge(*view.Header)
		if m.showDots && view.Header.SummaryUpdatedSince(m.dotCutoff()) {
			title += " " + m.styles.Dot.Render("●")
		}
	}
	lines = append(lines, title)

	if len(view.Items) == 0 {
		lines = append(lines, m.styles.Muted.Render("  (no pieces)"))
	}
	for i, item := range view.Items {
		line := fmt.Sprintf("%s %s", m.renderBadge(item), item.Piece)
		if m.showDots && item.SummaryUpdatedSince(m.dotCutoff()) {
			line += " " + m.styles.Dot.Render("●")
		}
		if baseIdx+i == m.cursor {
			line = m.styles.SelectedItem.Render("▸ " + line)
		} else {
			line = m.styles.Item.Render("  " + line)
		}
		lines = append(lines, line)
	}

	return m.styles.Card.Render(strings.Join(lines, "\n"))
}

// renderBadge shows the score symbol plus, when highlights are on, the
// directional arrow for a changed score.
func (m Model) renderBadge(row model.Row) string {
	badge := row.ScoreCurrent.Symbol()
	if !m.showHighlights {
		return badge
	}
	delta, changed := row.Delta()
	if !changed {
		return badge
	}
	arrow := model.Arrow(delta)
	if delta > 0 {
		return badge + m.styles.Positive.Render(arrow)
	}
	return badge + m.styles.Negative.Render(arrow)
}

func (m Model) renderDetail(sel *flatRow) string {
	var lines []string
	lines = append(lines, m.styles.CardTitle.Render(sel.row.Piece)+
		m.styles.Muted.Render(" · "+sel.section.String()))
	if sel.row.SummaryCurrent != "" {
		lines = append(lines, sel.row.SummaryCurrent)
	} else {
		lines = append(lines, m.styles.Muted.Render("No summary."))
	}
	for _, link := range sel.row.ExtractLinks() {
		lines = append(lines, m.styles.Muted.Render("↗ ")+link.Label+m.styles.Muted.Render("  "+link.URL))
	}
	return m.styles.DetailPane.Render(strings.Join(lines, "\n"))
}

func (m Model) renderChangelog(cl *changelog.Changelog) string {
	if cl.Total == 0 {
		return m.styles.Muted.Render("No changes.")
	}
	var lines []string
	lines = append(lines, m.styles.StatusBar.Render(fmt.Sprintf("%d changed rows", cl.Total)))
	for _, entry := range cl.Entries {
		lines = append(lines, "")
		lines = append(lines, m.styles.CardTitle.Render(entry.Section.String()))
		for _, row := range entry.Rows {
			line := "  " + m.renderBadge(row) + " " + row.Piece
			if cl.Mode == changelog.ModeSummary {
				line += m.styles.Muted.Render("  (summary updated " +
					row.SummaryChangedAt.Format("2006-01-02") + ")")
			} else {
				delta, _ := row.Delta()
				line += m.styles.Muted.Render(fmt.Sprintf("  (%s → %s, %+d)",
					row.ScorePrevious, row.ScoreCurrent, delta))
			}
			lines = append(lines, line)
		}
	}
	return lipgloss.JoinVertical(lipgloss.Left, lines...)
}

// dotCutoff bounds how recent a summary change must be to earn a dot.
func (m Model) dotCutoff() time.Time {
	if m.opts.SummaryWindow <= 0 {
		return time.Time{}
	}
	return time.Now().Add(-m.opts.SummaryWindow)
}
