package storage

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	_ "github.com/mattn/go-sqlite3"
)

const sqliteTimeLayout = time.RFC3339Nano

type SQLiteRepository struct {
	db *sql.DB
}

func NewSQLiteRepository(db *sql.DB) (*SQLiteRepository, error) {
	if db == nil {
		return nil, errors.New("storage: nil db")
	}
	if _, err := db.Exec("PRAGMA foreign_keys = ON"); err != nil {
		return nil, fmt.Errorf("enable foreign keys: %w", err)
	}
	return &SQLiteRepository{db: db}, nil
}

func OpenSQLite(path string) (*SQLiteRepository, error) {
	db, err := sql.Open("sqlite3", path)
	if err != nil {
		return nil, fmt.Errorf("open sqlite: %w", err)
	}
	repo, err := NewSQLiteRepository(db)
	if err != nil {
		_ = db.Close()
		return nil, err
	}
	return repo, nil
}

func (r *SQLiteRepository) Close() error {
	return r.db.Close()
}

func (r *SQLiteRepository) CreateGame(ctx context.Context, in Game) error {
	_, err := r.db.ExecContext(ctx, `
		INSERT INTO games (id, title, completed, created_at)
		VALUES (?, ?, ?, ?)`,
		in.ID, in.Title, boolInt(in.Completed), mustTime(in.CreatedAt),
	)
	return err
}

func (r *SQLiteRepository) GetGame(ctx context.Context, id string) (Game, error) {
	row := r.db.QueryRowContext(ctx, `
		SELECT id, title, completed, created_at
		FROM games WHERE id = ?`, id)
	game, err := scanGame(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return Game{}, ErrNotFound
		}
		return Game{}, err
	}
	return game, nil
}

func (r *SQLiteRepository) UpdateGame(ctx context.Context, in Game) error {
	res, err := r.db.ExecContext(ctx, `
		UPDATE games SET title = ?, completed = ? WHERE id = ?`,
		in.Title, boolInt(in.Completed), in.ID,
	)
	if err != nil {
		return err
	}
	return checkRowsAffected(res)
}

func (r *SQLiteRepository) DeleteGame(ctx context.Context, id string) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM games WHERE id = ?`, id)
	if err != nil {
		return err
	}
	return checkRowsAffected(res)
}

func (r *SQLiteRepository) ListGames(ctx context.Context, filter GameListFilter) ([]Game, error) {
	query := `SELECT id, title, completed, created_at FROM games`
	args := make([]any, 0, 3)
	if filter.Completed != nil {
		query += ` WHERE completed = ?`
		args = append(args, boolInt(*filter.Completed))
	}
	query += ` ORDER BY created_at ASC, id ASC`
	query += applyPagination(&args, filter.Limit, filter.Offset)

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]Game, 0)
	for rows.Next() {
		game, scanErr := scanGame(rows)
		if scanErr != nil {
			return nil, scanErr
		}
		out = append(out, game)
	}
	return out, rows.Err()
}

func (r *SQLiteRepository) ReplaceAll(ctx context.Context, games []Game) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	if _, err := tx.ExecContext(ctx, `DELETE FROM games`); err != nil {
		_ = tx.Rollback()
		return err
	}
	for _, game := range games {
		if _, err := tx.ExecContext(ctx, `
			INSERT INTO games (id, title, completed, created_at)
			VALUES (?, ?, ?, ?)`,
			game.ID, game.Title, boolInt(game.Completed), mustTime(game.CreatedAt),
		); err != nil {
			_ = tx.Rollback()
			return err
		}
	}
	return tx.Commit()
}

func mustTime(v time.Time) string {
	return v.UTC().Format(sqliteTimeLayout)
}

func parseRequiredTime(v string) (time.Time, error) {
	return time.Parse(sqliteTimeLayout, v)
}

func boolInt(v bool) int {
	if v {
		return 1
	}
	return 0
}

func applyPagination(args *[]any, limit, offset int) string {
	sql := ""
	if limit > 0 {
		sql += " LIMIT ?"
		*args = append(*args, limit)
	}
	if offset > 0 {
		sql += " OFFSET ?"
		*args = append(*args, offset)
	}
	return sql
}

type scanner interface {
	Scan(dest ...any) error
}

func scanGame(s scanner) (Game, error) {
	var out Game
	var completed int
	var created string
	if err := s.Scan(&out.ID, &out.Title, &completed, &created); err != nil {
		return Game{}, err
	}
	createdAt, err := parseRequiredTime(created)
	if err != nil {
		return Game{}, err
	}
	out.Completed = completed == 1
	out.CreatedAt = createdAt
	return out, nil
}

func checkRowsAffected(res sql.Result) error {
	affected, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return ErrNotFound
	}
	return nil
}
