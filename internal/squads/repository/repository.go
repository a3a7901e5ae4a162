// Package repository provides PostgreSQL persistence for fantasy squads.
// Player entries are stored as an opaque JSONB array.
package repository

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// ErrNotFound is returned when no squad matches id and owner together.
var ErrNotFound = errors.New("squad not found")

const squadColumns = `id, squad_name, players, total_value, user_id, created_at, updated_at`

const (
	insertSquadQuery = `
		INSERT INTO squads (squad_name, players, total_value, user_id)
		VALUES ($1, $2, $3, $4)
		RETURNING ` + squadColumns

	listSquadsByOwnerQuery = `
		SELECT ` + squadColumns + `
		FROM squads
		WHERE user_id = $1
		ORDER BY created_at DESC`

	// The owner predicate makes "someone else's squad" indistinguishable
	// from "no such squad".
	deleteSquadByOwnerQuery = `DELETE FROM squads WHERE id = $1 AND user_id = $2`
)

type Squad struct {
	ID         uuid.UUID
	SquadName  string
	Players    []byte
	TotalValue float64
	UserID     uuid.UUID
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

type Repository struct {
	pool *pgxpool.Pool
}

func New(pool *pgxpool.Pool) *Repository {
	return &Repository{pool: pool}
}

func (r *Repository) Create(ctx context.Context, squadName string, players []byte, totalValue float64, userID uuid.UUID) (Squad, error) {
	row := r.pool.QueryRow(ctx, insertSquadQuery, squadName, players, totalValue, userID)
	return scanSquad(row)
}

func (r *Repository) ListByOwner(ctx context.Context, userID uuid.UUID) ([]Squad, error) {
	rows, err := r.pool.Query(ctx, listSquadsByOwnerQuery, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var squads []Squad
	for rows.Next() {
		s, err := scanSquad(rows)
		if err != nil {
			return nil, err
		}
		squads = append(squads, s)
	}
	return squads, rows.Err()
}

func (r *Repository) DeleteByOwner(ctx context.Context, id, userID uuid.UUID) error {
	tag, err := r.pool.Exec(ctx, deleteSquadByOwnerQuery, id, userID)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

func scanSquad(row pgx.Row) (Squad, error) {
	var s Squad
	err := row.Scan(&s.ID, &s.SquadName, &s.Players, &s.TotalValue, &s.UserID, &s.CreatedAt, &s.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return Squad{}, ErrNotFound
		}
		return Squad{}, err
	}
	return s, nil
}
