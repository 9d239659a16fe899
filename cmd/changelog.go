package main

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/climate-chess/chessboard/internal/changelog"
)

var (
	changelogCSV  string
	changelogMode string
	changelogDays int
)

var changelogCmd = &cobra.Command{
	Use:   "changelog",
	Short: "List rows whose score or summary recently changed",
	RunE: func(cmd *cobra.Command, _ []string) error {
		res, err := loadOnce(cmd.Context(), changelogCSV)
		if err != nil {
			return err
		}

		mode := changelog.ParseMode(changelogMode)
		days := changelogDays
		if days == 0 {
			days = cfg.Changelog.WindowDays
		}
		cutoff := time.Time{}
		if days > 0 {
			cutoff = time.Now().AddDate(0, 0, -days)
		}

		cl := changelog.Aggregate(res.Board, mode, cutoff)
		fmt.Print(renderChangelogText(cl))
		return nil
	},
}

func renderChangelogText(cl *changelog.Changelog) string {
	var b strings.Builder
	fmt.Fprintf(&b, "%d %s changes\n", cl.Total, cl.Mode)
	for _, entry := range cl.Entries {
		fmt.Fprintf(&b, "\n%s\n", entry.Section)
		for _, row := range entry.Rows {
			if cl.Mode == changelog.ModeSummary {
				fmt.Fprintf(&b, "  %s: summary updated %s\n", row.Piece, row.SummaryChangedAt.Format("2006-01-02"))
				continue
			}
			delta, _ := row.Delta()
			fmt.Fprintf(&b, "  %s: %s → %s (%+d)\n", row.Piece, row.ScorePrevious, row.ScoreCurrent, delta)
		}
	}
	return b.String()
}

func init() {
	changelogCmd.Flags().StringVar(&changelogCSV, "csv", "", "load from a local CSV file instead of the network")
	changelogCmd.Flags().StringVar(&changelogMode, "mode", "score", "change predicate: score or summary")
	changelogCmd.Flags().IntVar(&changelogDays, "days", 0, "summary window in days (default from config)")
	rootCmd.AddCommand(changelogCmd)
}
