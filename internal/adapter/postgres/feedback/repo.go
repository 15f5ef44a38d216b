// Package feedback implements the FeedbackNote repository using PostgreSQL.
package feedback

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	postgres "github.com/heartmarshall/founty-inventory/internal/adapter/postgres"
	"github.com/heartmarshall/founty-inventory/internal/domain"
)

// Repo provides feedback persistence backed by PostgreSQL.
type Repo struct {
	pool *pgxpool.Pool
}

// New creates a new feedback repository.
func New(pool *pgxpool.Pool) *Repo {
	return &Repo{pool: pool}
}

const insertSQL = `
INSERT INTO feedback (id, user_id, text)
VALUES ($1, $2, $3)
RETURNING id, user_id, text, created_at`

const listRecentSQL = `
SELECT f.id, f.user_id, f.text, f.created_at, u.display_name
FROM feedback f
JOIN users u ON u.id = f.user_id
ORDER BY f.created_at DESC
LIMIT $1`

// Insert stores a feedback note for the given user.
func (r *Repo) Insert(ctx context.Context, userID int64, text string) (*domain.FeedbackNote, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	var note domain.FeedbackNote
	err := q.QueryRow(ctx, insertSQL, uuid.New(), userID, text).
		Scan(&note.ID, &note.UserID, &note.Text, &note.CreatedAt)
	if err != nil {
		return nil, postgres.MapError(err, "feedback", "")
	}

	return &note, nil
}

// ListRecent returns the latest notes with author display names,
// newest first, capped at limit.
func (r *Repo) ListRecent(ctx context.Context, limit int) ([]*domain.FeedbackWithUser, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	rows, err := q.Query(ctx, listRecentSQL, limit)
	if err != nil {
		return nil, fmt.Errorf("list feedback: %w", err)
	}
	defer rows.Close()

	result := []*domain.FeedbackWithUser{}
	for rows.Next() {
		var (
			fw        domain.FeedbackWithUser
			createdAt time.Time
		)
		if err := rows.Scan(&fw.ID, &fw.UserID, &fw.Text, &createdAt, &fw.DisplayName); err != nil {
			return nil, fmt.Errorf("list feedback: %w", err)
		}
		fw.CreatedAt = createdAt
		result = append(result, &fw)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list feedback: %w", err)
	}

	return result, nil
}
