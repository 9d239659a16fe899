package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/climate-chess/chessboard/internal/config"
)

var cfg *config.Config

var rootCmd = &cobra.Command{
	Use:   "chessboard",
	Short: "Climate Chess board viewer",
	Long:  "Loads the Climate Chess CSV dataset, normalizes and groups it into board sections, and presents it as an interactive terminal board, a JSON API, or file exports.",
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		c, err := config.Load()
		if err != nil {
			return fmt.Errorf("load config: %w", err)
		}
		cfg = c

		if err := config.InitLogger(cfg.Log); err != nil {
			return fmt.Errorf("init logger: %w", err)
		}

		return nil
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		_ = zap.L().Sync()
	},
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
