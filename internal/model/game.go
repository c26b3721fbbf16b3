package model

import (
	"errors"
	"sort"
	"strings"
	"time"
)

var ErrEmptyTitle = errors.New("model: game title is required")

type Game struct {
	ID        string
	Title     string
	Completed bool
	CreatedAt time.Time
}

func (g Game) Validate() error {
	if strings.TrimSpace(g.ID) == "" {
		return errors.New("model: game id is required")
	}
	if strings.TrimSpace(g.Title) == "" {
		return ErrEmptyTitle
	}
	if g.CreatedAt.IsZero() {
		return errors.New("model: game created_at is required")
	}
	return nil
}

// DisplayOrder returns the list as shown on screen: games still being
// played first, completed games after, stable within each group. The
// focus cursor indexes this ordering, not the storage ordering.
func DisplayOrder(games []Game) []Game {
	out := make([]Game, len(games))
	copy(out, games)
	sort.SliceStable(out, func(i, j int) bool {
		return !out[i].Completed && out[j].Completed
	})
	return out
}
