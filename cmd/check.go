package main

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/climate-chess/chessboard/internal/fetcher"
)

var checkTimeout int

// sourceStatus is one candidate source's probe outcome.
type sourceStatus struct {
	URL     string
	Records int
	Err     error
}

var checkCmd = &cobra.Command{
	Use:   "check",
	Short: "Probe every candidate data source and report reachability",
	RunE: func(cmd *cobra.Command, _ []string) error {
		f := fetcher.NewHTTPFetcher(fetcher.HTTPOptions{
			UserAgent:    cfg.Sources.UserAgent,
			Timeout:      time.Duration(checkTimeout) * time.Second,
			RateLimiters: sourceRateLimiters(),
		})

		statuses := make([]sourceStatus, len(cfg.Sources.URLs))
		g, ctx := errgroup.WithContext(cmd.Context())
		for i, u := range cfg.Sources.URLs {
			g.Go(func() error {
				records, err := f.FetchRecords(ctx, u)
				statuses[i] = sourceStatus{URL: u, Records: len(records), Err: err}
				return nil // report per-source, never abort the probe
			})
		}
		if err := g.Wait(); err != nil {
			return err
		}

		reachable := 0
		for _, st := range statuses {
			if st.Err != nil {
				fmt.Printf("FAIL  %s\n      %v\n", st.URL, st.Err)
				continue
			}
			reachable++
			fmt.Printf("OK    %s (%d records)\n", st.URL, st.Records)
		}
		fmt.Printf("\n%d/%d sources reachable\n", reachable, len(statuses))
		return nil
	},
}

func init() {
	checkCmd.Flags().IntVar(&checkTimeout, "timeout", 10, "per-source timeout in seconds")
	rootCmd.AddCommand(checkCmd)
}
