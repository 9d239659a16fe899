package main

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/cors"
	"github.com/rotisserie/eris"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/climate-chess/chessboard/internal/changelog"
	"github.com/climate-chess/chessboard/internal/loader"
)

var servePort int

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve the board as a read-only JSON API",
	RunE: func(cmd *cobra.Command, _ []string) error {
		ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
		defer stop()

		l, err := newLoader("")
		if err != nil {
			return err
		}
		com := &loader.Committer{}

		// Warm the board before accepting traffic; a failed warm load is
		// not fatal, clients see 503 until a reload succeeds.
		if err := reloadBoard(ctx, l, com); err != nil {
			zap.L().Warn("initial load failed", zap.Error(err))
		}

		r := chi.NewRouter()
		r.Use(cors.Handler(cors.Options{
			AllowedOrigins: []string{"*"},
			AllowedMethods: []string{http.MethodGet, http.MethodPost},
		}))

		r.Get("/healthz", func(w http.ResponseWriter, _ *http.Request) {
			writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
		})

		r.Get("/api/board", func(w http.ResponseWriter, _ *http.Request) {
			res := com.Current()
			if res == nil {
				writeJSON(w, http.StatusServiceUnavailable, map[string]string{"error": "no data loaded"})
				return
			}
			writeJSON(w, http.StatusOK, boardPayload(res))
		})

		r.Get("/api/changelog", func(w http.ResponseWriter, req *http.Request) {
			res := com.Current()
			if res == nil {
				writeJSON(w, http.StatusServiceUnavailable, map[string]string{"error": "no data loaded"})
				return
			}
			mode := changelog.ParseMode(req.URL.Query().Get("mode"))
			cutoff := time.Now().Add(-summaryWindow())
			writeJSON(w, http.StatusOK, changelog.Aggregate(res.Board, mode, cutoff))
		})

		r.Post("/api/reload", func(w http.ResponseWriter, req *http.Request) {
			if err := reloadBoard(req.Context(), l, com); err != nil {
				writeJSON(w, http.StatusBadGateway, map[string]string{"error": err.Error()})
				return
			}
			res := com.Current()
			writeJSON(w, http.StatusOK, map[string]any{
				"source":     res.Source,
				"attempt_id": res.AttemptID,
				"loaded_at":  res.LoadedAt,
				"rows":       len(res.Rows),
			})
		})

		port := servePort
		if port == 0 {
			port = cfg.Server.Port
		}

		srv := &http.Server{
			Addr:    fmt.Sprintf(":%d", port),
			Handler: r,
		}

		// Graceful shutdown
		go func() {
			<-ctx.Done()
			zap.L().Info("shutting down server")
			shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
			defer cancel()
			_ = srv.Shutdown(shutdownCtx)
		}()

		zap.L().Info("starting server", zap.Int("port", port))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			return eris.Wrap(err, "server listen")
		}

		return nil
	},
}

// reloadBoard runs one sequence-guarded load cycle. Overlapping reload
// requests race on the committer, which keeps only the newest attempt's
// result.
func reloadBoard(ctx context.Context, l *loader.Loader, com *loader.Committer) error {
	seq := com.Begin()
	res, err := l.Load(ctx)
	if err != nil {
		return err
	}
	res.Seq = seq
	if !com.Commit(res) {
		zap.L().Info("discarded stale load result", zap.Uint64("seq", seq))
	}
	return nil
}

// boardPayload is the /api/board response shape.
func boardPayload(res *loader.Result) map[string]any {
	return map[string]any{
		"source":     res.Source,
		"attempt_id": res.AttemptID,
		"loaded_at":  res.LoadedAt,
		"sections":   res.Board.Sections,
	}
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		zap.L().Error("write response", zap.Error(err))
	}
}

func init() {
	serveCmd.Flags().IntVar(&servePort, "port", 0, "server port (default from config)")
	rootCmd.AddCommand(serveCmd)
}
