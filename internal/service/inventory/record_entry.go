package inventory

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/heartmarshall/founty-inventory/internal/domain"
)

// RecordEntry persists a finished inventory entry.
//
// The material must already exist; an unknown material name is rejected with
// domain.ErrUnknownMaterial. The room is created on the fly when unseen, so a
// typo in a room name yields a new room rather than an error. Both lookups
// and the insert run in one transaction.
func (s *Service) RecordEntry(ctx context.Context, input RecordEntryInput) (*domain.Entry, error) {
	if err := input.Validate(); err != nil {
		return nil, err
	}

	roomName := strings.TrimSpace(input.RoomName)
	materialName := strings.TrimSpace(input.MaterialName)

	var entry *domain.Entry
	err := s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		material, err := s.materials.GetByName(txCtx, materialName)
		if err != nil {
			if errors.Is(err, domain.ErrNotFound) {
				return fmt.Errorf("material %s: %w", materialName, domain.ErrUnknownMaterial)
			}
			return fmt.Errorf("get material: %w", err)
		}

		if _, err := s.rooms.EnsureByName(txCtx, roomName); err != nil {
			return fmt.Errorf("ensure room: %w", err)
		}

		colorID := input.ColorID
		if colorID != nil {
			if _, err := s.colors.GetByID(txCtx, *colorID); err != nil {
				return fmt.Errorf("get color: %w", err)
			}
		}
		if !material.RequiresColor {
			colorID = nil
		}

		entry, err = s.entries.Insert(txCtx, &domain.Entry{
			UserID:       input.UserID,
			RoomName:     roomName,
			MaterialName: material.Name,
			ColorID:      colorID,
			Total:        input.Total,
			Broken:       input.Broken,
			Good:         input.Total - input.Broken,
			Condition:    strings.TrimSpace(input.Condition),
		})
		if err != nil {
			return fmt.Errorf("insert entry: %w", err)
		}

		return nil
	})
	if err != nil {
		return nil, err
	}

	s.log.InfoContext(ctx, "entry recorded",
		slog.Int64("user_id", input.UserID),
		slog.String("entry_id", entry.ID.String()),
		slog.String("room", roomName),
		slog.String("material", materialName),
		slog.Int("total", entry.Total),
		slog.Int("broken", entry.Broken),
	)

	return entry, nil
}
