package main

import (
	"context"
	"os"
	"time"

	"github.com/rotisserie/eris"
	"golang.org/x/time/rate"

	"github.com/climate-chess/chessboard/internal/fetcher"
	"github.com/climate-chess/chessboard/internal/loader"
)

// sourceRateLimiters seeds one limiter per configured source host.
func sourceRateLimiters() map[string]*rate.Limiter {
	return fetcher.RateLimitersForURLs(cfg.Sources.URLs,
		rate.Limit(cfg.Sources.RateLimit), cfg.Sources.RateBurst)
}

// newLoader builds the loader over the configured candidate sources. When
// csvPath is non-empty, the file's records are injected and the network is
// never touched.
func newLoader(csvPath string) (*loader.Loader, error) {
	f := fetcher.NewHTTPFetcher(fetcher.HTTPOptions{
		UserAgent:    cfg.Sources.UserAgent,
		Timeout:      time.Duration(cfg.Sources.TimeoutSecs) * time.Second,
		RateLimiters: sourceRateLimiters(),
	})
	l := loader.New(f, cfg.Sources.URLs)

	if csvPath != "" {
		file, err := os.Open(csvPath)
		if err != nil {
			return nil, eris.Wrapf(err, "open %s", csvPath)
		}
		defer file.Close() //nolint:errcheck

		records, err := fetcher.ParseRecords(file)
		if err != nil {
			return nil, eris.Wrapf(err, "parse %s", csvPath)
		}
		l.Inject(records)
	}

	return l, nil
}

// loadOnce runs a single load cycle, from a local CSV when csvPath is set.
func loadOnce(ctx context.Context, csvPath string) (*loader.Result, error) {
	l, err := newLoader(csvPath)
	if err != nil {
		return nil, err
	}
	return l.Load(ctx)
}

// summaryWindow converts the configured changelog window to a duration.
func summaryWindow() time.Duration {
	return time.Duration(cfg.Changelog.WindowDays) * 24 * time.Hour
}
