package main

import (
	"context"
	"database/sql"
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/sandeepkv93/gamedex/internal/gamepad"
	"github.com/sandeepkv93/gamedex/internal/storage"
	"github.com/sandeepkv93/gamedex/internal/update"
)

func main() {
	cfg := update.RuntimeConfigFromEnv(update.DefaultRuntimeConfig())

	db, err := sql.Open("sqlite3", cfg.DBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "gamedex failed: open db: %v\n", err)
		os.Exit(1)
	}
	defer db.Close()
	if err := storage.MigrateUp(db); err != nil {
		fmt.Fprintf(os.Stderr, "gamedex failed: migrate: %v\n", err)
		os.Exit(1)
	}
	repo, err := storage.NewSQLiteRepository(db)
	if err != nil {
		fmt.Fprintf(os.Stderr, "gamedex failed: %v\n", err)
		os.Exit(1)
	}

	store := storage.NewFileStore(cfg.LibraryPath)

	// The controller host boundary: swap in a platform driver here.
	source := gamepad.NewSimSource()

	model := update.NewModelWithConfig(repo, store, source, cfg)
	if err := model.LoadFromRepository(context.Background()); err != nil {
		fmt.Fprintf(os.Stderr, "gamedex failed: load library: %v\n", err)
		os.Exit(1)
	}

	program := tea.NewProgram(model)
	if _, err := program.Run(); err != nil {
		fmt.Fprintf(os.Stderr, "gamedex failed: %v\n", err)
		os.Exit(1)
	}
}
