// Package material implements the Material repository using PostgreSQL.
package material

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

// Repo provides material persistence backed by PostgreSQL.
type Repo struct {
	pool *pgxpool.Pool
}

// New creates a new material repository.
func New(pool *pgxpool.Pool) *Repo {
	return &Repo{pool: pool}
}

const createSQL = `
INSERT INTO materials (id, name, emoji, category, requires_color)
VALUES ($1, $2, $3, $4, $5)
RETURNING id, name, emoji, category, requires_color, created_at`

const getByNameSQL = `
SELECT id, name, emoji, category, requires_color, created_at
FROM materials
WHERE name = $1`

const listSQL = `
SELECT id, name, emoji, category, requires_color, created_at
FROM materials
ORDER BY name`

const deleteByNameSQL = `DELETE FROM materials WHERE name = $1`

const countSQL = `SELECT count(*) FROM materials`

// Create inserts a new material.
// Returns domain.ErrAlreadyExists if a material with the same name exists.
func (r *Repo) Create(ctx context.Context, m *domain.Material) (*domain.Material, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	id := m.ID
	if id == uuid.Nil {
		id = uuid.New()
	}

	row := q.QueryRow(ctx, createSQL, id, m.Name, m.Emoji,
		ptrToPgText(m.Category), m.RequiresColor)

	created, err := scanMaterial(row)
	if err != nil {
		return nil, postgres.MapError(err, "material", m.Name)
	}
	return created, nil
}

// GetByName returns a material by its unique name.
// Returns domain.ErrNotFound if the material does not exist.
func (r *Repo) GetByName(ctx context.Context, name string) (*domain.Material, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	m, err := scanMaterial(q.QueryRow(ctx, getByNameSQL, name))
	if err != nil {
		return nil, postgres.MapError(err, "material", name)
	}
	return m, nil
}

// List returns all materials ordered by name.
// Returns an empty slice (not nil) when there are none.
func (r *Repo) List(ctx context.Context) ([]*domain.Material, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	rows, err := q.Query(ctx, listSQL)
	if err != nil {
		return nil, fmt.Errorf("list materials: %w", err)
	}
	defer rows.Close()

	result := []*domain.Material{}
	for rows.Next() {
		m, err := scanMaterial(rows)
		if err != nil {
			return nil, fmt.Errorf("list materials: %w", err)
		}
		result = append(result, m)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list materials: %w", err)
	}

	return result, nil
}

// DeleteByName removes a material. Entries referencing it are untouched.
// Returns domain.ErrNotFound if no material with that name exists.
func (r *Repo) DeleteByName(ctx context.Context, name string) error {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	tag, err := q.Exec(ctx, deleteByNameSQL, name)
	if err != nil {
		return postgres.MapError(err, "material", name)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("material %s: %w", name, domain.ErrNotFound)
	}

	return nil
}

// Count returns the number of materials.
func (r *Repo) Count(ctx context.Context) (int, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	var count int
	if err := q.QueryRow(ctx, countSQL).Scan(&count); err != nil {
		return 0, fmt.Errorf("count materials: %w", err)
	}

	return count, nil
}

// ---------------------------------------------------------------------------
// Row scanning helpers
// ---------------------------------------------------------------------------

type rowScanner interface {
	Scan(dest ...any) error
}

func scanMaterial(row rowScanner) (*domain.Material, error) {
	var (
		id            uuid.UUID
		name          string
		emoji         string
		category      pgtype.Text
		requiresColor bool
		createdAt     time.Time
	)

	if err := row.Scan(&id, &name, &emoji, &category, &requiresColor, &createdAt); err != nil {
		return nil, err
	}

	m := &domain.Material{
		ID:            id,
		Name:          name,
		Emoji:         emoji,
		RequiresColor: requiresColor,
		CreatedAt:     createdAt,
	}
	if category.Valid {
		m.Category = &category.String
	}

	return m, nil
}

func ptrToPgText(s *string) pgtype.Text {
	if s == nil {
		return pgtype.Text{}
	}
	return pgtype.Text{String: *s, Valid: true}
}
