package stats

import (
	"context"
	"fmt"
	"strings"

	"github.com/heartmarshall/founty-inventory/internal/domain"
)

// RoomDetail returns one room's aggregate with its per-material breakdown.
// A known room nobody has inventoried yet comes back with zero counters;
// a name matching neither a room nor any entry is ErrNotFound.
func (s *Service) RoomDetail(ctx context.Context, roomName string) (*domain.RoomDetail, error) {
	roomName = strings.TrimSpace(roomName)
	if roomName == "" {
		return nil, domain.NewValidationError("room", "required")
	}

	detail, err := s.entries.RoomDetail(ctx, roomName)
	if err != nil {
		return nil, err
	}
	if detail.EntryCount == 0 {
		// Entries outlive room deletion, so only a name without either
		// a room row or recorded entries is truly unknown.
		if _, err := s.rooms.GetByName(ctx, roomName); err != nil {
			return nil, fmt.Errorf("room detail %q: %w", roomName, err)
		}
	}

	return detail, nil
}

// LowStock returns the (room, material) groups flagged as depleted or
// heavily broken, worst broken share first.
func (s *Service) LowStock(ctx context.Context) ([]*domain.LowStockGroup, error) {
	return s.entries.LowStock(ctx, s.threshold)
}

// Search matches entries by room or material name substring,
// case-insensitive, newest first.
func (s *Service) Search(ctx context.Context, query string) ([]*domain.SearchResult, error) {
	query = strings.TrimSpace(query)
	if query == "" {
		return nil, domain.NewValidationError("query", "required")
	}

	return s.entries.Search(ctx, query, SearchLimit)
}
