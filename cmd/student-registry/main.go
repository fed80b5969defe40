// main is the entry point of the student-registry application.
//
// STARTUP SEQUENCE:
//  1. Load configuration (defaults mean zero arguments are required)
//  2. Initialise the logger (stderr, so stdout stays clean)
//  3. Connect to (and set up) the SQLite roster store
//  4. Run the record-lifecycle demonstration on stdout
//  5. Enroll the demonstrated students into the roster
//  6. Exit with status 0
//
// The program has exactly one synchronous control path from entry to
// exit — no goroutines, no signals, no server.
//
// RUNNING IT:
//
//	go run ./cmd/student-registry
//
// or with an explicit config file:
//
//	go run ./cmd/student-registry --config=config/local.yaml
package main

import (
	"log/slog"
	"os"

	"github.com/aanand-mishra/student-registry/internal/config"
	"github.com/aanand-mishra/student-registry/internal/registry"
	"github.com/aanand-mishra/student-registry/internal/scenario"
	"github.com/aanand-mishra/student-registry/internal/storage/sqlite"
)

func main() {
	// ── 1. Load Config ────────────────────────────────────────────────────
	// MustLoad resolves .env, CONFIG_PATH, the --config flag, and tag
	// defaults. If it returns, config is guaranteed valid.
	cfg := config.MustLoad()

	// ── 2. Initialise Logger ──────────────────────────────────────────────
	// Structured logs go to stderr. Stdout carries only the fixed
	// lifecycle output, so the two streams never interleave.
	log := setupLogger(cfg.Env)
	slog.SetDefault(log)

	log.Info("starting student-registry",
		slog.String("env", cfg.Env),
		slog.String("version", "1.0.0"),
	)

	// ── 3. Initialise Storage (Roster) ────────────────────────────────────
	// The default DSN is ":memory:" — the roster lives and dies with
	// the process. We hold the result as the storage.Storage interface
	// via registry.New, so swapping backends stays a one-line change.
	store, err := sqlite.New(cfg)
	if err != nil {
		log.Error("failed to initialise storage",
			slog.String("error", err.Error()))
		os.Exit(1)
	}
	defer store.Close()

	log.Info("storage initialised",
		slog.String("path", cfg.StoragePath))

	reg := registry.New(store)

	// ── 4. Run the Lifecycle Demonstration ────────────────────────────────
	// Writes the contractual sequence to stdout: one default-construction
	// notice, two display lines, three teardown notices in reverse
	// declaration order.
	if err := scenario.Run(os.Stdout); err != nil {
		log.Error("demonstration failed",
			slog.String("error", err.Error()))
		os.Exit(1)
	}

	// ── 5. Enroll the Demonstrated Students ───────────────────────────────
	// The two parameterized records join the roster; results go to the
	// log stream only.
	for _, s := range scenario.Enrollees() {
		if _, err := reg.Enroll(s); err != nil {
			log.Error("enrollment failed",
				slog.String("name", s.Name),
				slog.String("error", err.Error()))
			os.Exit(1)
		}
	}

	roster, err := reg.List()
	if err != nil {
		log.Error("failed to list roster",
			slog.String("error", err.Error()))
		os.Exit(1)
	}

	log.Info("roster complete", slog.Int("students", len(roster)))
}

// setupLogger returns a *slog.Logger configured for the given environment.
//
// Development (dev): human-readable text output at DEBUG level.
// Production (prod): machine-readable JSON output at INFO level.
//
// All handlers write to stderr — stdout is reserved for the lifecycle
// demonstration's fixed output.
func setupLogger(env string) *slog.Logger {
	switch env {
	case "prod":
		return slog.New(
			slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{
				Level: slog.LevelInfo, // INFO and above in production
			}),
		)
	case "staging":
		return slog.New(
			slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{
				Level: slog.LevelDebug, // more verbose in staging
			}),
		)
	default: // "dev" and anything unrecognised
		return slog.New(
			slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
				Level: slog.LevelDebug, // all levels in development
			}),
		)
	}
}
