// main runs every record exercise once and prints the transcript.
//
// STARTUP SEQUENCE:
//  1. Load configuration (YAML file and/or environment)
//  2. Initialise the logger
//  3. Open the transcript journal (SQLite, in memory by default)
//  4. Run all exercises
//  5. Print the transcript as text or JSON
//
// RUNNING:
//
//	go run ./cmd/oops-exercises --config=config/local.yaml
//
// or (environment only):
//
//	OUTPUT=json go run ./cmd/oops-exercises
package main

import (
	"log/slog"
	"os"

	"github.com/aanand-mishra/oops-exercises/internal/config"
	"github.com/aanand-mishra/oops-exercises/internal/exercise"
	"github.com/aanand-mishra/oops-exercises/internal/storage/sqlite"
	"github.com/aanand-mishra/oops-exercises/internal/utils/report"
)

func main() {
	// ── 1. Load Config ────────────────────────────────────────────────────
	cfg := config.MustLoad()

	// ── 2. Initialise Logger ──────────────────────────────────────────────
	// Logs go to stderr so stdout carries only the transcript.
	log := setupLogger(cfg.Env)
	slog.SetDefault(log)

	log.Info("starting oops-exercises",
		slog.String("env", cfg.Env),
		slog.String("version", "1.0.0"),
	)

	// ── 3. Open the Journal ───────────────────────────────────────────────
	journal, err := sqlite.New(cfg)
	if err != nil {
		log.Error("failed to initialise storage",
			slog.String("error", err.Error()))
		os.Exit(1)
	}
	defer journal.Close()

	log.Info("storage initialised",
		slog.String("path", cfg.StoragePath))

	// ── 4. Run Exercises ──────────────────────────────────────────────────
	runner := exercise.NewRunner(log, journal)
	if err := runner.Run(exercise.All()); err != nil {
		log.Error("run failed", slog.String("error", err.Error()))
		journal.Close()
		os.Exit(1)
	}

	// ── 5. Print Transcript ───────────────────────────────────────────────
	entries, err := journal.Entries(runner.RunID())
	if err != nil {
		log.Error("failed to read transcript", slog.String("error", err.Error()))
		journal.Close()
		os.Exit(1)
	}

	if cfg.Output == "json" {
		err = report.WriteJSON(os.Stdout, entries)
	} else {
		err = report.WriteText(os.Stdout, entries)
	}
	if err != nil {
		log.Error("failed to write transcript", slog.String("error", err.Error()))
		journal.Close()
		os.Exit(1)
	}

	summary := report.Summarize(entries)
	log.Info("run finished",
		slog.String("run_id", runner.RunID()),
		slog.Int("ok", summary.OK),
		slog.Int("refused", summary.Refused),
		slog.Int("invalid", summary.Invalid),
	)
}

// setupLogger returns a *slog.Logger configured for the given environment.
//
// Development (dev): human-readable text output at DEBUG level.
// Production (prod): machine-readable JSON output at INFO level.
func setupLogger(env string) *slog.Logger {
	switch env {
	case "prod":
		return slog.New(
			slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{
				Level: slog.LevelInfo,
			}),
		)
	case "staging":
		return slog.New(
			slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{
				Level: slog.LevelDebug,
			}),
		)
	default: // "dev" and anything unrecognised
		return slog.New(
			slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
				Level: slog.LevelDebug,
			}),
		)
	}
}
