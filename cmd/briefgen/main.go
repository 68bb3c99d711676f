package main

import (
	"fmt"
	"math/rand"
	"os"
	"path/filepath"
	"time"

	"github.com/joho/godotenv"
	"github.com/mattn/go-isatty"

	"briefgen/internal/cli"
	"briefgen/internal/gemini"
	"briefgen/internal/history"
	"briefgen/internal/report"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	// Local .env is optional; the environment always wins.
	_ = godotenv.Load()

	// Determine DB path: env var or default ~/.briefgen/briefgen.db
	dbPath := os.Getenv("BRIEFGEN_DB")
	if dbPath == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return fmt.Errorf("finding home directory: %w", err)
		}
		dbPath = filepath.Join(home, ".briefgen", "briefgen.db")
	}

	database, err := history.OpenDB(dbPath)
	if err != nil {
		return fmt.Errorf("opening database: %w", err)
	}
	defer database.Close()
	store := history.NewStore(database)

	cfg := gemini.LoadConfig()
	var observer gemini.Observer = gemini.NoopObserver{}
	if cfg.LogCalls {
		observer = gemini.NewLogObserver(os.Stderr)
	}
	gateway := gemini.NewClient(cfg, observer)

	rng := rand.New(rand.NewSource(time.Now().UnixNano()))
	service := report.NewService(gateway, store, cfg.Model, rng)

	app := &cli.App{
		Service: service,
		Store:   store,
		Config:  cfg,
	}
	app.IsInteractive = func() bool {
		return isatty.IsTerminal(os.Stdin.Fd()) || isatty.IsCygwinTerminal(os.Stdin.Fd())
	}

	rootCmd := cli.NewRootCmd(app)
	return rootCmd.Execute()
}
