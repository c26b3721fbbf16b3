package storage

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/sandeepkv93/gamedex/internal/model"
)

var ErrNoTarget = errors.New("storage: no library file established")

// LoadOutcome distinguishes the normal non-error results of a load.
type LoadOutcome string

const (
	// LoadOK means the target existed and was read.
	LoadOK LoadOutcome = "ok"
	// LoadNoFile means no target is established or the file does not
	// exist yet. Both are normal outcomes, not errors.
	LoadNoFile LoadOutcome = "no_file"
)

type gameRecord struct {
	ID        *string `json:"id"`
	Title     *string `json:"title"`
	Completed *bool   `json:"completed"`
}

// FileStore persists the library as an ordered JSON array of
// {id, title, completed} records. Saves are suppressed until a target
// path has been established.
type FileStore struct {
	path string
}

func NewFileStore(path string) *FileStore {
	return &FileStore{path: strings.TrimSpace(path)}
}

// Retarget establishes (or replaces) the target path.
func (s *FileStore) Retarget(path string) {
	s.path = strings.TrimSpace(path)
}

func (s *FileStore) Established() bool {
	return s.path != ""
}

// Name returns the base name of the current target, or "".
func (s *FileStore) Name() string {
	if s.path == "" {
		return ""
	}
	return filepath.Base(s.path)
}

// Load reads the target file. Invalid elements are filtered out and
// counted; the remaining valid elements still load. The dropped count
// is the caller's non-fatal warning signal.
func (s *FileStore) Load() ([]model.Game, int, LoadOutcome, error) {
	if s.path == "" {
		return nil, 0, LoadNoFile, nil
	}
	raw, err := os.ReadFile(s.path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, 0, LoadNoFile, nil
		}
		return nil, 0, LoadOK, fmt.Errorf("read library: %w", err)
	}
	if strings.TrimSpace(string(raw)) == "" {
		return []model.Game{}, 0, LoadOK, nil
	}

	var elements []json.RawMessage
	if err := json.Unmarshal(raw, &elements); err != nil {
		return nil, 0, LoadOK, fmt.Errorf("parse library: %w", err)
	}

	loadedAt := time.Now().UTC()
	games := make([]model.Game, 0, len(elements))
	dropped := 0
	for _, element := range elements {
		rec, ok := decodeRecord(element)
		if !ok {
			dropped++
			continue
		}
		games = append(games, model.Game{
			ID:        *rec.ID,
			Title:     *rec.Title,
			Completed: *rec.Completed,
			CreatedAt: loadedAt,
		})
	}
	return games, dropped, LoadOK, nil
}

// Save writes the list atomically via a temp file and rename. Field
// order and element order are preserved so a load reproduces the list.
func (s *FileStore) Save(games []model.Game) error {
	if s.path == "" {
		return ErrNoTarget
	}
	records := make([]gameRecord, 0, len(games))
	for i := range games {
		g := games[i]
		records = append(records, gameRecord{ID: &g.ID, Title: &g.Title, Completed: &g.Completed})
	}
	payload, err := json.MarshalIndent(records, "", "  ")
	if err != nil {
		return err
	}
	dir := filepath.Dir(s.path)
	if dir != "." && dir != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return err
		}
	}
	tmp := s.path + ".tmp"
	if err := os.WriteFile(tmp, append(payload, '\n'), 0o644); err != nil {
		return err
	}
	return os.Rename(tmp, s.path)
}

// decodeRecord enforces the {id:text, title:text, completed:bool}
// shape; anything else is filtered by the caller.
func decodeRecord(raw json.RawMessage) (gameRecord, bool) {
	var rec gameRecord
	dec := json.NewDecoder(strings.NewReader(string(raw)))
	dec.DisallowUnknownFields()
	if err := dec.Decode(&rec); err != nil {
		return gameRecord{}, false
	}
	if rec.ID == nil || rec.Title == nil || rec.Completed == nil {
		return gameRecord{}, false
	}
	if strings.TrimSpace(*rec.ID) == "" || strings.TrimSpace(*rec.Title) == "" {
		return gameRecord{}, false
	}
	return rec, true
}
