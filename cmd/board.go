package main

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/rotisserie/eris"
	"github.com/spf13/cobra"

	"github.com/climate-chess/chessboard/internal/loader"
	"github.com/climate-chess/chessboard/internal/ui"
)

var boardCSV string

var boardCmd = &cobra.Command{
	Use:   "board",
	Short: "Open the interactive board",
	Long: `Opens the Climate Chess board in the terminal.

Keys: ↑/↓ select a piece, s toggles score highlights, u toggles summary
update dots, c opens the changelog, r reloads the dataset, q quits.`,
	RunE: func(cmd *cobra.Command, _ []string) error {
		l, err := newLoader(boardCSV)
		if err != nil {
			return err
		}

		m := ui.New(ui.Options{
			Loader:              l,
			Committer:           &loader.Committer{},
			ShowScoreHighlights: cfg.UI.ShowScoreHighlights,
			ShowUpdateDots:      cfg.UI.ShowUpdateDots,
			SummaryWindow:       summaryWindow(),
		})

		p := tea.NewProgram(m, tea.WithAltScreen())
		if _, err := p.Run(); err != nil {
			return eris.Wrap(err, "board: run program")
		}
		return nil
	},
}

func init() {
	boardCmd.Flags().StringVar(&boardCSV, "csv", "", "load from a local CSV file instead of the network")
	rootCmd.AddCommand(boardCmd)
}
