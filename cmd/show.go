package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/climate-chess/chessboard/internal/loader"
	"github.com/climate-chess/chessboard/internal/model"
)

var (
	showCSV     string
	showVerbose bool
)

var showCmd = &cobra.Command{
	Use:   "show",
	Short: "Print the board to stdout",
	RunE: func(cmd *cobra.Command, _ []string) error {
		res, err := loadOnce(cmd.Context(), showCSV)
		if err != nil {
			return err
		}
		fmt.Print(renderBoardText(res, showVerbose))
		return nil
	},
}

// renderBoardText is the non-interactive rendering of a load result.
func renderBoardText(res *loader.Result, verbose bool) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Climate Chess - %s (loaded %s)\n", res.Source, res.LoadedAt.Format("2006-01-02 15:04:05"))

	for _, sec := range res.Board.Sections {
		b.WriteString("\n")
		title := sec.Section.String()
		if sec.Header != nil {
			title += " " + badgeText(*sec.Header)
		}
		fmt.Fprintf(&b, "== %s ==\n", title)
		if sec.Header != nil && verbose && sec.Header.SummaryCurrent != "" {
			fmt.Fprintf(&b, "   %s\n", sec.Header.SummaryCurrent)
		}

		if len(sec.Items) == 0 {
			b.WriteString("  (no pieces)\n")
			continue
		}
		for _, item := range sec.Items {
			fmt.Fprintf(&b, "  %s %s\n", badgeText(item), item.Piece)
			if !verbose {
				continue
			}
			if item.SummaryCurrent != "" {
				fmt.Fprintf(&b, "     %s\n", item.SummaryCurrent)
			}
			for _, link := range item.ExtractLinks() {
				fmt.Fprintf(&b, "     ↗ %s (%s)\n", link.Label, link.URL)
			}
		}
	}
	return b.String()
}

func badgeText(row model.Row) string {
	delta, changed := row.Delta()
	if !changed {
		return row.ScoreCurrent.Symbol()
	}
	return row.ScoreCurrent.Symbol() + model.Arrow(delta)
}

func init() {
	showCmd.Flags().StringVar(&showCSV, "csv", "", "load from a local CSV file instead of the network")
	showCmd.Flags().BoolVarP(&showVerbose, "verbose", "v", false, "include summaries and links")
	rootCmd.AddCommand(showCmd)
}
