package storage

import "time"

type Game struct {
	ID        string
	Title     string
	Completed bool
	CreatedAt time.Time
}

type GameListFilter struct {
	Completed *bool
	Limit     int
	Offset    int
}
