package storage

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/sandeepkv93/gamedex/internal/model"
)

func TestSaveLoadRoundTripPreservesOrderAndFields(t *testing.T) {
	path := filepath.Join(t.TempDir(), "library.json")
	store := NewFileStore(path)

	now := time.Now().UTC()
	games := []model.Game{
		{ID: "game-3", Title: "Tunic", Completed: true, CreatedAt: now},
		{ID: "game-1", Title: "Celeste", CreatedAt: now},
		{ID: "game-2", Title: "Hades", Completed: true, CreatedAt: now},
	}
	if err := store.Save(games); err != nil {
		t.Fatalf("save: %v", err)
	}

	loaded, dropped, outcome, err := store.Load()
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if outcome != LoadOK || dropped != 0 {
		t.Fatalf("unexpected outcome=%s dropped=%d", outcome, dropped)
	}
	if len(loaded) != len(games) {
		t.Fatalf("expected %d games, got %d", len(games), len(loaded))
	}
	for i := range games {
		if loaded[i].ID != games[i].ID || loaded[i].Title != games[i].Title || loaded[i].Completed != games[i].Completed {
			t.Fatalf("element %d mismatch: %+v vs %+v", i, loaded[i], games[i])
		}
	}
}

func TestLoadFiltersMalformedElements(t *testing.T) {
	path := filepath.Join(t.TempDir(), "library.json")
	content := `[
		{"id": "game-1", "title": "Celeste", "completed": false},
		{"id": "game-2", "title": 42, "completed": false},
		{"id": "", "title": "No ID", "completed": true},
		"not an object",
		{"id": "game-3", "title": "Hades", "completed": true}
	]`
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write fixture: %v", err)
	}

	store := NewFileStore(path)
	loaded, dropped, outcome, err := store.Load()
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if outcome != LoadOK {
		t.Fatalf("unexpected outcome: %s", outcome)
	}
	if dropped != 3 {
		t.Fatalf("expected 3 dropped elements, got %d", dropped)
	}
	if len(loaded) != 2 || loaded[0].ID != "game-1" || loaded[1].ID != "game-3" {
		t.Fatalf("unexpected surviving elements: %+v", loaded)
	}
}

func TestLoadMissingFileIsNormalOutcome(t *testing.T) {
	store := NewFileStore(filepath.Join(t.TempDir(), "absent.json"))
	loaded, dropped, outcome, err := store.Load()
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if outcome != LoadNoFile || len(loaded) != 0 || dropped != 0 {
		t.Fatalf("expected no-file outcome, got outcome=%s games=%d", outcome, len(loaded))
	}
}

func TestLoadRejectsNonListContent(t *testing.T) {
	path := filepath.Join(t.TempDir(), "library.json")
	if err := os.WriteFile(path, []byte(`{"not": "a list"}`), 0o644); err != nil {
		t.Fatalf("write fixture: %v", err)
	}
	store := NewFileStore(path)
	if _, _, _, err := store.Load(); err == nil {
		t.Fatal("expected parse error for non-list content")
	}
}

func TestSaveWithoutTargetReturnsErrNoTarget(t *testing.T) {
	store := NewFileStore("")
	if err := store.Save(nil); err != ErrNoTarget {
		t.Fatalf("expected ErrNoTarget, got %v", err)
	}
	if store.Established() {
		t.Fatal("store with empty path must not be established")
	}
	if store.Name() != "" {
		t.Fatalf("expected empty name, got %q", store.Name())
	}
}

func TestRetargetEstablishesSaveTarget(t *testing.T) {
	store := NewFileStore("")
	path := filepath.Join(t.TempDir(), "collection.json")
	store.Retarget(path)

	if !store.Established() {
		t.Fatal("expected established store after retarget")
	}
	if store.Name() != "collection.json" {
		t.Fatalf("unexpected name: %q", store.Name())
	}
	if err := store.Save([]model.Game{}); err != nil {
		t.Fatalf("save after retarget: %v", err)
	}
}
