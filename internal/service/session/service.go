// Package session drives the per-user conversation: a finite automaton that
// walks each user from role selection through room, material, optional
// color, counts and condition to a confirmed entry, plus the secret-gated
// admin states for reference-data management and reporting.
package session

import (
	"context"
	"log/slog"

	"github.com/google/uuid"

	"github.com/heartmarshall/founty-inventory/internal/domain"
	"github.com/heartmarshall/founty-inventory/internal/service/inventory"
)

type inventoryService interface {
	RegisterContact(ctx context.Context, id int64, displayName string) (*domain.User, error)
	RecordEntry(ctx context.Context, input inventory.RecordEntryInput) (*domain.Entry, error)

	ListRooms(ctx context.Context) ([]*domain.Room, error)
	ListMaterials(ctx context.Context) ([]*domain.Material, error)
	ListColors(ctx context.Context) ([]*domain.ColorOption, error)

	AddRoom(ctx context.Context, input inventory.AddRoomInput) (*domain.Room, error)
	RemoveRoom(ctx context.Context, name string) error
	AddMaterial(ctx context.Context, input inventory.AddMaterialInput) (*domain.Material, error)
	RemoveMaterial(ctx context.Context, name string) error
	AddColor(ctx context.Context, input inventory.AddColorInput) (*domain.ColorOption, error)
	UpdateColor(ctx context.Context, input inventory.UpdateColorInput) (*domain.ColorOption, error)
	RemoveColor(ctx context.Context, id uuid.UUID) error

	LeaveFeedback(ctx context.Context, input inventory.LeaveFeedbackInput) (*domain.FeedbackNote, error)
	RecentFeedback(ctx context.Context) ([]*domain.FeedbackWithUser, error)
}

type statsService interface {
	Dashboard(ctx context.Context) (*domain.Dashboard, error)
	RoomDetail(ctx context.Context, roomName string) (*domain.RoomDetail, error)
	LowStock(ctx context.Context) ([]*domain.LowStockGroup, error)
	Search(ctx context.Context, query string) ([]*domain.SearchResult, error)
}

type secretGate interface {
	Verify(secret string) error
}

// Button is one outbound choice. The transport encodes Action and Arg into
// its own callback token format; the core never builds token strings.
type Button struct {
	Label  string
	Action domain.SelectionAction
	Arg    string
}

// Reply is the outcome of handling one event: the text to show, optional
// button rows, and the state the session ended up in.
type Reply struct {
	Text    string
	Buttons [][]Button
	State   State
}

// Service routes inbound events through the state machine.
type Service struct {
	registry   *Registry
	inv        inventoryService
	stats      statsService
	gate       secretGate
	conditions []string
	log        *slog.Logger
}

// NewService creates the conversation service. conditions is the enumerated
// set of condition labels offered at the condition step.
func NewService(
	log *slog.Logger,
	inv inventoryService,
	stats statsService,
	gate secretGate,
	conditions []string,
) *Service {
	return &Service{
		registry:   NewRegistry(),
		inv:        inv,
		stats:      stats,
		gate:       gate,
		conditions: conditions,
		log:        log.With("service", "session"),
	}
}

// Sessions exposes the registry size for health reporting.
func (s *Service) Sessions() int {
	return s.registry.Len()
}
