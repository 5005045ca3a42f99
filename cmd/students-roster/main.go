// main is the entry point of the students roster console.
//
// STARTUP SEQUENCE:
//  1. Load configuration (.env, YAML file and environment)
//  2. Initialise the logger
//  3. Open storage and load the roster
//  4. Build the registration form and the roster table
//  5. Register the console commands
//  6. Read commands until quit, end of input or an OS signal
//
// RUNNING:
//
//	go run ./cmd/students-roster --config=config/local.yaml
//
// or (with environment variables only):
//
//	STORAGE_DRIVER=memory go run ./cmd/students-roster
package main

import (
	"context"
	"errors"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/aanand-mishra/students-roster/internal/config"
	"github.com/aanand-mishra/students-roster/internal/console"
	"github.com/aanand-mishra/students-roster/internal/console/handlers/student"
	"github.com/aanand-mishra/students-roster/internal/form"
	"github.com/aanand-mishra/students-roster/internal/roster"
	"github.com/aanand-mishra/students-roster/internal/storage"
	"github.com/aanand-mishra/students-roster/internal/storage/memory"
	"github.com/aanand-mishra/students-roster/internal/storage/sqlite"
	"github.com/aanand-mishra/students-roster/internal/table"
)

func main() {
	cfg := config.MustLoad()

	// Logs go to stderr so they never mix with JSON views on stdout.
	log := setupLogger(cfg.Env)
	slog.SetDefault(log)

	log.Info("starting students-roster",
		slog.String("env", cfg.Env),
		slog.String("storage", cfg.Storage.Driver),
	)

	store, err := openStorage(cfg.Storage)
	if err != nil {
		log.Error("failed to initialise storage",
			slog.String("error", err.Error()))
		os.Exit(1)
	}
	defer store.Close()

	owner, err := roster.New(store, roster.WithLogger(log))
	if err != nil {
		log.Error("failed to load roster",
			slog.String("error", err.Error()))
		os.Exit(1)
	}

	log.Info("roster loaded", slog.Int("students", owner.Len()))

	registration := form.New(
		form.Catalog{Belts: cfg.Catalog.Belts, BloodTypes: cfg.Catalog.BloodTypes},
		owner.AddStudent,
		form.WithLogger(log),
	)
	students := table.New(owner.DeleteStudent).WithLogger(log)

	c := console.New(os.Stdin, os.Stdout, cfg.Console.Output).WithLogger(log)
	if cfg.Console.Output == console.FormatText {
		c.WithPrompt("> ")
	}

	c.HandleFunc("fields", "fields", student.Fields(registration))
	c.HandleFunc("set", "set <campo> <valor>", student.Set(registration))
	c.HandleFunc("draft", "draft", student.Draft(registration))
	c.HandleFunc("submit", "submit", student.Submit(registration, owner))
	c.HandleFunc("list", "list", student.List(students, owner))
	c.HandleFunc("show", "show <id|linha>", student.Show(students, owner))
	c.HandleFunc("close", "close", student.Close(students))
	c.HandleFunc("delete", "delete <id|linha>", student.Delete(students, owner))

	// Ctrl+C (SIGINT) or SIGTERM cancels ctx and ends the read loop.
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := c.Run(ctx); err != nil && !errors.Is(err, context.Canceled) {
		log.Error("console stopped", slog.String("error", err.Error()))
		store.Close()
		os.Exit(1)
	}

	log.Info("students-roster stopped")
}

func openStorage(cfg config.Storage) (storage.Storage, error) {
	if cfg.Driver == "memory" {
		return memory.New(), nil
	}
	db, err := sqlite.New(cfg.Path)
	if err != nil {
		return nil, err
	}
	return db, nil
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
	default:
		return slog.New(
			slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
				Level: slog.LevelDebug,
			}),
		)
	}
}
