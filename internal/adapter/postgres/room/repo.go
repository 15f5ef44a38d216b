// Package room implements the Room repository using PostgreSQL.
package room

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/jackc/pgx/v5/pgxpool"

	postgres "github.com/heartmarshall/founty-inventory/internal/adapter/postgres"
	"github.com/heartmarshall/founty-inventory/internal/domain"
)

// Repo provides room persistence backed by PostgreSQL.
type Repo struct {
	pool *pgxpool.Pool
}

// New creates a new room repository.
func New(pool *pgxpool.Pool) *Repo {
	return &Repo{pool: pool}
}

const createSQL = `
INSERT INTO rooms (id, name, room_type, location)
VALUES ($1, $2, $3, $4)
RETURNING id, name, room_type, location, created_at`

const ensureSQL = `
INSERT INTO rooms (id, name)
VALUES ($1, $2)
ON CONFLICT (name) DO NOTHING`

const getByNameSQL = `
SELECT id, name, room_type, location, created_at
FROM rooms
WHERE name = $1`

const listSQL = `
SELECT id, name, room_type, location, created_at
FROM rooms
ORDER BY name`

const deleteByNameSQL = `DELETE FROM rooms WHERE name = $1`

const countSQL = `SELECT count(*) FROM rooms`

// Create inserts a new room.
// Returns domain.ErrAlreadyExists if a room with the same name exists.
func (r *Repo) Create(ctx context.Context, room *domain.Room) (*domain.Room, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	id := room.ID
	if id == uuid.Nil {
		id = uuid.New()
	}

	row := q.QueryRow(ctx, createSQL, id, room.Name,
		ptrToPgText(room.RoomType), ptrToPgText(room.Location))

	created, err := scanRoom(row)
	if err != nil {
		return nil, postgres.MapError(err, "room", room.Name)
	}
	return created, nil
}

// EnsureByName inserts the room if its name is unseen and returns the stored
// row either way. This is the auto-vivification primitive used by the entry
// write path; it must run inside the caller's transaction.
func (r *Repo) EnsureByName(ctx context.Context, name string) (*domain.Room, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	if _, err := q.Exec(ctx, ensureSQL, uuid.New(), name); err != nil {
		return nil, postgres.MapError(err, "room", name)
	}

	room, err := scanRoom(q.QueryRow(ctx, getByNameSQL, name))
	if err != nil {
		return nil, postgres.MapError(err, "room", name)
	}
	return room, nil
}

// GetByName returns a room by its unique name.
// Returns domain.ErrNotFound if the room does not exist.
func (r *Repo) GetByName(ctx context.Context, name string) (*domain.Room, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	room, err := scanRoom(q.QueryRow(ctx, getByNameSQL, name))
	if err != nil {
		return nil, postgres.MapError(err, "room", name)
	}
	return room, nil
}

// List returns all rooms ordered by name.
// Returns an empty slice (not nil) when there are none.
func (r *Repo) List(ctx context.Context) ([]*domain.Room, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	rows, err := q.Query(ctx, listSQL)
	if err != nil {
		return nil, fmt.Errorf("list rooms: %w", err)
	}
	defer rows.Close()

	result := []*domain.Room{}
	for rows.Next() {
		room, err := scanRoom(rows)
		if err != nil {
			return nil, fmt.Errorf("list rooms: %w", err)
		}
		result = append(result, room)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list rooms: %w", err)
	}

	return result, nil
}

// DeleteByName removes a room. Entries referencing the room are untouched.
// Returns domain.ErrNotFound if no room with that name exists.
func (r *Repo) DeleteByName(ctx context.Context, name string) error {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	tag, err := q.Exec(ctx, deleteByNameSQL, name)
	if err != nil {
		return postgres.MapError(err, "room", name)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("room %s: %w", name, domain.ErrNotFound)
	}

	return nil
}

// Count returns the number of rooms.
func (r *Repo) Count(ctx context.Context) (int, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	var count int
	if err := q.QueryRow(ctx, countSQL).Scan(&count); err != nil {
		return 0, fmt.Errorf("count rooms: %w", err)
	}

	return count, nil
}

// ---------------------------------------------------------------------------
// Row scanning helpers
// ---------------------------------------------------------------------------

type rowScanner interface {
	Scan(dest ...any) error
}

func scanRoom(row rowScanner) (*domain.Room, error) {
	var (
		id        uuid.UUID
		name      string
		roomType  pgtype.Text
		location  pgtype.Text
		createdAt time.Time
	)

	if err := row.Scan(&id, &name, &roomType, &location, &createdAt); err != nil {
		return nil, err
	}

	room := &domain.Room{
		ID:        id,
		Name:      name,
		CreatedAt: createdAt,
	}
	if roomType.Valid {
		room.RoomType = &roomType.String
	}
	if location.Valid {
		room.Location = &location.String
	}

	return room, nil
}

func ptrToPgText(s *string) pgtype.Text {
	if s == nil {
		return pgtype.Text{}
	}
	return pgtype.Text{String: *s, Valid: true}
}
