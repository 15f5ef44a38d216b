// Package user implements the User repository using PostgreSQL.
package user

import (
	"context"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"

	postgres "github.com/heartmarshall/founty-inventory/internal/adapter/postgres"
	"github.com/heartmarshall/founty-inventory/internal/domain"
)

// Repo provides user persistence backed by PostgreSQL.
type Repo struct {
	pool *pgxpool.Pool
}

// New creates a new user repository.
func New(pool *pgxpool.Pool) *Repo {
	return &Repo{pool: pool}
}

const upsertSQL = `
INSERT INTO users (id, display_name)
VALUES ($1, $2)
ON CONFLICT (id) DO UPDATE
SET display_name = EXCLUDED.display_name, updated_at = now()
RETURNING id, display_name, created_at, updated_at`

const getByIDSQL = `
SELECT id, display_name, created_at, updated_at
FROM users
WHERE id = $1`

// Upsert creates the user on first contact and refreshes the display name
// on every later one.
func (r *Repo) Upsert(ctx context.Context, id int64, displayName string) (*domain.User, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	u, err := scanUser(q.QueryRow(ctx, upsertSQL, id, displayName))
	if err != nil {
		return nil, postgres.MapError(err, "user", displayName)
	}
	return u, nil
}

// GetByID returns a user by its external identifier.
// Returns domain.ErrNotFound if the user does not exist.
func (r *Repo) GetByID(ctx context.Context, id int64) (*domain.User, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	u, err := scanUser(q.QueryRow(ctx, getByIDSQL, id))
	if err != nil {
		return nil, postgres.MapError(err, "user", "")
	}
	return u, nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanUser(row rowScanner) (*domain.User, error) {
	var (
		id          int64
		displayName string
		createdAt   time.Time
		updatedAt   time.Time
	)

	if err := row.Scan(&id, &displayName, &createdAt, &updatedAt); err != nil {
		return nil, err
	}

	return &domain.User{
		ID:          id,
		DisplayName: displayName,
		CreatedAt:   createdAt,
		UpdatedAt:   updatedAt,
	}, nil
}
