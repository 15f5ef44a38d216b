// Package color implements the ColorOption repository using PostgreSQL.
package color

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	postgres "github.com/heartmarshall/founty-inventory/internal/adapter/postgres"
	"github.com/heartmarshall/founty-inventory/internal/domain"
)

// Repo provides color option persistence backed by PostgreSQL.
type Repo struct {
	pool *pgxpool.Pool
}

// New creates a new color option repository.
func New(pool *pgxpool.Pool) *Repo {
	return &Repo{pool: pool}
}

const createSQL = `
INSERT INTO color_options (id, name, code)
VALUES ($1, $2, $3)
RETURNING id, name, code, created_at`

const getByIDSQL = `
SELECT id, name, code, created_at
FROM color_options
WHERE id = $1`

const listSQL = `
SELECT id, name, code, created_at
FROM color_options
ORDER BY name`

const updateSQL = `
UPDATE color_options
SET name = $2, code = $3
WHERE id = $1
RETURNING id, name, code, created_at`

const deleteSQL = `DELETE FROM color_options WHERE id = $1`

// Create inserts a new color option.
// Returns domain.ErrAlreadyExists if a color with the same name exists.
func (r *Repo) Create(ctx context.Context, c *domain.ColorOption) (*domain.ColorOption, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	id := c.ID
	if id == uuid.Nil {
		id = uuid.New()
	}

	created, err := scanColor(q.QueryRow(ctx, createSQL, id, c.Name, c.Code))
	if err != nil {
		return nil, postgres.MapError(err, "color", c.Name)
	}
	return created, nil
}

// GetByID returns a color option by its identifier.
// Returns domain.ErrNotFound if the color does not exist.
func (r *Repo) GetByID(ctx context.Context, id uuid.UUID) (*domain.ColorOption, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	c, err := scanColor(q.QueryRow(ctx, getByIDSQL, id))
	if err != nil {
		return nil, postgres.MapError(err, "color", id.String())
	}
	return c, nil
}

// List returns all color options ordered by name.
// Returns an empty slice (not nil) when there are none.
func (r *Repo) List(ctx context.Context) ([]*domain.ColorOption, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	rows, err := q.Query(ctx, listSQL)
	if err != nil {
		return nil, fmt.Errorf("list colors: %w", err)
	}
	defer rows.Close()

	result := []*domain.ColorOption{}
	for rows.Next() {
		c, err := scanColor(rows)
		if err != nil {
			return nil, fmt.Errorf("list colors: %w", err)
		}
		result = append(result, c)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list colors: %w", err)
	}

	return result, nil
}

// Update replaces the name and code of an existing color option.
// Returns domain.ErrNotFound if the color does not exist,
// domain.ErrAlreadyExists if the new name collides with another color.
func (r *Repo) Update(ctx context.Context, c *domain.ColorOption) (*domain.ColorOption, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	updated, err := scanColor(q.QueryRow(ctx, updateSQL, c.ID, c.Name, c.Code))
	if err != nil {
		return nil, postgres.MapError(err, "color", c.Name)
	}
	return updated, nil
}

// Delete removes a color option. Entries referencing it keep their color_id.
// Returns domain.ErrNotFound if no color with that id exists.
func (r *Repo) Delete(ctx context.Context, id uuid.UUID) error {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	tag, err := q.Exec(ctx, deleteSQL, id)
	if err != nil {
		return postgres.MapError(err, "color", id.String())
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("color %s: %w", id, domain.ErrNotFound)
	}

	return nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanColor(row rowScanner) (*domain.ColorOption, error) {
	var (
		id        uuid.UUID
		name      string
		code      string
		createdAt time.Time
	)

	if err := row.Scan(&id, &name, &code, &createdAt); err != nil {
		return nil, err
	}

	return &domain.ColorOption{
		ID:        id,
		Name:      name,
		Code:      code,
		CreatedAt: createdAt,
	}, nil
}
