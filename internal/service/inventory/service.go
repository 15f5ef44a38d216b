// Package inventory implements the write side of the inventory log:
// recording entries, managing reference data (rooms, materials, colors),
// feedback, exports, and seeding.
package inventory

import (
	"context"
	"log/slog"
	"strings"

	"github.com/google/uuid"

	"github.com/heartmarshall/founty-inventory/internal/domain"
)

type roomRepo interface {
	Create(ctx context.Context, room *domain.Room) (*domain.Room, error)
	EnsureByName(ctx context.Context, name string) (*domain.Room, error)
	GetByName(ctx context.Context, name string) (*domain.Room, error)
	List(ctx context.Context) ([]*domain.Room, error)
	DeleteByName(ctx context.Context, name string) error
}

type materialRepo interface {
	Create(ctx context.Context, m *domain.Material) (*domain.Material, error)
	GetByName(ctx context.Context, name string) (*domain.Material, error)
	List(ctx context.Context) ([]*domain.Material, error)
	DeleteByName(ctx context.Context, name string) error
}

type colorRepo interface {
	Create(ctx context.Context, c *domain.ColorOption) (*domain.ColorOption, error)
	GetByID(ctx context.Context, id uuid.UUID) (*domain.ColorOption, error)
	List(ctx context.Context) ([]*domain.ColorOption, error)
	Update(ctx context.Context, c *domain.ColorOption) (*domain.ColorOption, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

type entryRepo interface {
	Insert(ctx context.Context, e *domain.Entry) (*domain.Entry, error)
	ExportRows(ctx context.Context) ([]*domain.ExportRow, error)
}

type userRepo interface {
	Upsert(ctx context.Context, id int64, displayName string) (*domain.User, error)
}

type feedbackRepo interface {
	Insert(ctx context.Context, userID int64, text string) (*domain.FeedbackNote, error)
	ListRecent(ctx context.Context, limit int) ([]*domain.FeedbackWithUser, error)
}

type txManager interface {
	RunInTx(ctx context.Context, fn func(ctx context.Context) error) error
}

// RecentFeedbackLimit caps how many notes the admin review screen shows.
const RecentFeedbackLimit = 10

// Service provides inventory write operations.
type Service struct {
	rooms     roomRepo
	materials materialRepo
	colors    colorRepo
	entries   entryRepo
	users     userRepo
	feedback  feedbackRepo
	tx        txManager
	log       *slog.Logger
}

// NewService creates a new inventory service.
func NewService(
	log *slog.Logger,
	rooms roomRepo,
	materials materialRepo,
	colors colorRepo,
	entries entryRepo,
	users userRepo,
	feedback feedbackRepo,
	tx txManager,
) *Service {
	return &Service{
		rooms:     rooms,
		materials: materials,
		colors:    colors,
		entries:   entries,
		users:     users,
		feedback:  feedback,
		tx:        tx,
		log:       log.With("service", "inventory"),
	}
}

// trimOrNil trims whitespace. Returns nil if result is empty.
func trimOrNil(s *string) *string {
	if s == nil {
		return nil
	}
	trimmed := strings.TrimSpace(*s)
	if trimmed == "" {
		return nil
	}
	return &trimmed
}
