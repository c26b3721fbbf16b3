package storage

import (
	"context"
	"errors"
)

var ErrNotFound = errors.New("storage: not found")

type Repository interface {
	CreateGame(ctx context.Context, in Game) error
	GetGame(ctx context.Context, id string) (Game, error)
	UpdateGame(ctx context.Context, in Game) error
	DeleteGame(ctx context.Context, id string) error
	ListGames(ctx context.Context, filter GameListFilter) ([]Game, error)

	// ReplaceAll swaps the stored library for the given snapshot in one
	// transaction; the debounced-save path relies on it being
	// all-or-nothing.
	ReplaceAll(ctx context.Context, games []Game) error
}
