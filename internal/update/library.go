package update

import (
	"context"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/sandeepkv93/gamedex/internal/model"
	"github.com/sandeepkv93/gamedex/internal/storage"
)

func (m *Model) addGame(title string) {
	trimmed := strings.TrimSpace(title)
	if trimmed == "" {
		m.Status = StatusBar{Text: "nothing to add", IsError: false}
		return
	}
	game := model.Game{
		ID:        fmt.Sprintf("game-%d", m.Library.NextID),
		Title:     trimmed,
		CreatedAt: time.Now().UTC(),
	}
	m.Library.NextID++
	m.Library.Items = append(m.Library.Items, game)
	m.titleInput.SetValue("")
	m.clampFocus()
	m.Status = StatusBar{Text: fmt.Sprintf("added %s", game.Title), IsError: false}
	m.markDirty()
}

func (m *Model) toggleGame(id string) {
	for i := range m.Library.Items {
		if m.Library.Items[i].ID != id {
			continue
		}
		m.Library.Items[i].Completed = !m.Library.Items[i].Completed
		state := "playing"
		if m.Library.Items[i].Completed {
			state = "completed"
		}
		m.Status = StatusBar{Text: fmt.Sprintf("%s marked %s", m.Library.Items[i].Title, state), IsError: false}
		m.markDirty()
		return
	}
	m.Status = StatusBar{Text: fmt.Sprintf("no entry %s", id), IsError: true}
}

func (m *Model) deleteGame(id string) {
	for i := range m.Library.Items {
		if m.Library.Items[i].ID != id {
			continue
		}
		title := m.Library.Items[i].Title
		m.Library.Items = append(m.Library.Items[:i], m.Library.Items[i+1:]...)
		m.clampFocus()
		m.Status = StatusBar{Text: fmt.Sprintf("deleted %s", title), IsError: false}
		m.markDirty()
		return
	}
	m.Status = StatusBar{Text: fmt.Sprintf("no entry %s", id), IsError: true}
}

// resolveTarget accepts an entry id or a 1-based display position.
func (m Model) resolveTarget(target string) (string, bool) {
	games := m.displayGames()
	if n, err := strconv.Atoi(target); err == nil {
		if n < 1 || n > len(games) {
			return "", false
		}
		return games[n-1].ID, true
	}
	for _, g := range games {
		if strings.EqualFold(g.ID, target) {
			return g.ID, true
		}
	}
	return "", false
}

// markDirty re-arms the debounced save; every further mutation inside
// the quiet period replaces the pending intent.
func (m *Model) markDirty() {
	m.dirty = true
	if err := m.saver.Trigger(); err != nil {
		m.Status = StatusBar{Text: err.Error(), IsError: true}
	}
}

// performSave runs when the quiet period elapses (or on demand). The
// file write is suppressed while no library target is established; the
// sqlite mirror always receives the snapshot.
func (m *Model) performSave() {
	saved := false

	if m.store.Established() {
		if err := m.store.Save(m.Library.Items); err != nil {
			m.Status = StatusBar{Text: fmt.Sprintf("save failed: %v", err), IsError: true}
			return
		}
		saved = true
	}
	if m.repo != nil {
		if err := m.repo.ReplaceAll(context.Background(), toEntities(m.Library.Items)); err != nil {
			m.Status = StatusBar{Text: fmt.Sprintf("save failed: %v", err), IsError: true}
			return
		}
		saved = true
	}

	m.dirty = false
	if saved {
		m.Status = StatusBar{Text: fmt.Sprintf("saved %d entries", len(m.Library.Items)), IsError: false}
	}
}

// saveNow is the file-save target: immediate, not debounced. Without
// an established target it is a silent skip, not an error.
func (m *Model) saveNow() {
	if !m.store.Established() && m.repo == nil {
		m.Status = StatusBar{Text: "no library file open; use /saveas <path>", IsError: false}
		return
	}
	m.saver.Cancel()
	m.performSave()
}

// loadLibrary is the file-open target.
func (m *Model) loadLibrary() {
	games, dropped, outcome, err := m.store.Load()
	if err != nil {
		m.LastError = err
		m.Status = StatusBar{Text: err.Error(), IsError: true}
		return
	}
	if outcome == storage.LoadNoFile {
		m.Status = StatusBar{Text: "no library file to open", IsError: false}
		return
	}
	m.saver.Cancel()
	m.SetLibrary(games)
	m.dirty = false
	if dropped > 0 {
		m.Status = StatusBar{Text: fmt.Sprintf("loaded %d entries (%d malformed entries skipped)", len(games), dropped), IsError: false}
		return
	}
	m.Status = StatusBar{Text: fmt.Sprintf("loaded %d entries", len(games)), IsError: false}
}

func toEntities(games []model.Game) []storage.Game {
	out := make([]storage.Game, 0, len(games))
	for _, g := range games {
		out = append(out, storage.Game{
			ID:        g.ID,
			Title:     g.Title,
			Completed: g.Completed,
			CreatedAt: g.CreatedAt,
		})
	}
	return out
}

func fromEntities(games []storage.Game) []model.Game {
	out := make([]model.Game, 0, len(games))
	for _, g := range games {
		out = append(out, model.Game{
			ID:        g.ID,
			Title:     g.Title,
			Completed: g.Completed,
			CreatedAt: g.CreatedAt,
		})
	}
	return out
}

// LoadFromRepository seeds the in-memory list from the sqlite mirror.
func (m *Model) LoadFromRepository(ctx context.Context) error {
	if m.repo == nil {
		return nil
	}
	games, err := m.repo.ListGames(ctx, storage.GameListFilter{})
	if err != nil {
		return err
	}
	m.SetLibrary(fromEntities(games))
	return nil
}
