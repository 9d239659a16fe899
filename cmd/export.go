package main

import (
	"encoding/json"
	"os"
	"time"

	"github.com/rotisserie/eris"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/climate-chess/chessboard/internal/board"
	"github.com/climate-chess/chessboard/internal/loader"
)

var (
	exportCSV    string
	exportFormat string
	exportOutput string
)

// boardExport is the serialized board snapshot.
type boardExport struct {
	Source   string              `json:"source" yaml:"source"`
	LoadedAt time.Time           `json:"loaded_at" yaml:"loaded_at"`
	Sections []board.SectionView `json:"sections" yaml:"sections"`
}

var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Write the normalized board to a file as JSON or YAML",
	RunE: func(cmd *cobra.Command, _ []string) error {
		res, err := loadOnce(cmd.Context(), exportCSV)
		if err != nil {
			return err
		}

		data, err := marshalExport(res, exportFormat)
		if err != nil {
			return err
		}

		if exportOutput == "" || exportOutput == "-" {
			_, err = os.Stdout.Write(data)
			return err
		}
		if err := os.WriteFile(exportOutput, data, 0o644); err != nil {
			return eris.Wrapf(err, "write %s", exportOutput)
		}
		return nil
	},
}

func marshalExport(res *loader.Result, format string) ([]byte, error) {
	exp := boardExport{
		Source:   res.Source,
		LoadedAt: res.LoadedAt,
		Sections: res.Board.Sections,
	}
	switch format {
	case "json":
		return json.MarshalIndent(exp, "", "  ")
	case "yaml":
		return yaml.Marshal(exp)
	default:
		return nil, eris.Errorf("export: unknown format %q (want json or yaml)", format)
	}
}

func init() {
	exportCmd.Flags().StringVar(&exportCSV, "csv", "", "load from a local CSV file instead of the network")
	exportCmd.Flags().StringVar(&exportFormat, "format", "json", "output format: json or yaml")
	exportCmd.Flags().StringVarP(&exportOutput, "output", "o", "", "output path (default stdout)")
	rootCmd.AddCommand(exportCmd)
}
