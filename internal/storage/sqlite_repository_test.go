package storage

import (
	"context"
	"database/sql"
	"path/filepath"
	"testing"
	"time"
)

func setupRepo(t *testing.T) *SQLiteRepository {
	t.Helper()
	dbPath := filepath.Join(t.TempDir(), "gamedex-test.db")
	db, err := sql.Open("sqlite3", dbPath)
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	t.Cleanup(func() { _ = db.Close() })

	if err := MigrateUp(db); err != nil {
		t.Fatalf("migrate up: %v", err)
	}

	repo, err := NewSQLiteRepository(db)
	if err != nil {
		t.Fatalf("new repo: %v", err)
	}
	return repo
}

func parseRFC3339(t *testing.T, value string) time.Time {
	t.Helper()
	out, err := time.Parse(time.RFC3339, value)
	if err != nil {
		t.Fatalf("parse time: %v", err)
	}
	return out
}

func TestGameCRUDAndList(t *testing.T) {
	repo := setupRepo(t)
	ctx := context.Background()
	created := parseRFC3339(t, "2026-03-01T12:00:00Z")

	game := Game{ID: "game-1", Title: "Outer Wilds", CreatedAt: created}
	if err := repo.CreateGame(ctx, game); err != nil {
		t.Fatalf("create game: %v", err)
	}

	got, err := repo.GetGame(ctx, game.ID)
	if err != nil {
		t.Fatalf("get game: %v", err)
	}
	if got.Title != game.Title || got.Completed {
		t.Fatalf("unexpected game: %+v", got)
	}
	if !got.CreatedAt.Equal(created) {
		t.Fatalf("created_at mismatch: %v", got.CreatedAt)
	}

	got.Completed = true
	if err := repo.UpdateGame(ctx, got); err != nil {
		t.Fatalf("update game: %v", err)
	}

	completed := true
	listed, err := repo.ListGames(ctx, GameListFilter{Completed: &completed})
	if err != nil {
		t.Fatalf("list games: %v", err)
	}
	if len(listed) != 1 || listed[0].ID != "game-1" {
		t.Fatalf("unexpected completed list: %+v", listed)
	}

	if err := repo.DeleteGame(ctx, game.ID); err != nil {
		t.Fatalf("delete game: %v", err)
	}
	if _, err := repo.GetGame(ctx, game.ID); err != ErrNotFound {
		t.Fatalf("expected ErrNotFound after delete, got %v", err)
	}
}

func TestUpdateAndDeleteMissingGame(t *testing.T) {
	repo := setupRepo(t)
	ctx := context.Background()

	if err := repo.UpdateGame(ctx, Game{ID: "missing", Title: "x"}); err != ErrNotFound {
		t.Fatalf("expected ErrNotFound on update, got %v", err)
	}
	if err := repo.DeleteGame(ctx, "missing"); err != ErrNotFound {
		t.Fatalf("expected ErrNotFound on delete, got %v", err)
	}
}

func TestReplaceAllSwapsSnapshot(t *testing.T) {
	repo := setupRepo(t)
	ctx := context.Background()
	created := parseRFC3339(t, "2026-03-01T12:00:00Z")

	if err := repo.CreateGame(ctx, Game{ID: "old-1", Title: "Old", CreatedAt: created}); err != nil {
		t.Fatalf("seed game: %v", err)
	}

	snapshot := []Game{
		{ID: "game-1", Title: "Celeste", CreatedAt: created},
		{ID: "game-2", Title: "Hades", Completed: true, CreatedAt: created.Add(time.Minute)},
	}
	if err := repo.ReplaceAll(ctx, snapshot); err != nil {
		t.Fatalf("replace all: %v", err)
	}

	listed, err := repo.ListGames(ctx, GameListFilter{})
	if err != nil {
		t.Fatalf("list games: %v", err)
	}
	if len(listed) != 2 {
		t.Fatalf("expected 2 games after replace, got %d", len(listed))
	}
	if listed[0].ID != "game-1" || listed[1].ID != "game-2" {
		t.Fatalf("unexpected order: %+v", listed)
	}
	if _, err := repo.GetGame(ctx, "old-1"); err != ErrNotFound {
		t.Fatalf("expected old row gone, got %v", err)
	}
}

func TestMigrateDownRemovesTable(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "gamedex-test.db")
	db, err := sql.Open("sqlite3", dbPath)
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	t.Cleanup(func() { _ = db.Close() })

	if err := MigrateUp(db); err != nil {
		t.Fatalf("migrate up: %v", err)
	}
	if err := MigrateDown(db); err != nil {
		t.Fatalf("migrate down: %v", err)
	}
	if _, err := db.Exec(`SELECT COUNT(*) FROM games`); err == nil {
		t.Fatal("expected games table to be gone")
	}
}
