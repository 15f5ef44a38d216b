package inventory

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/heartmarshall/founty-inventory/internal/domain"
)

// SeedData is the reference data loaded on startup.
type SeedData struct {
	Rooms     []AddRoomInput
	Materials []AddMaterialInput
	Colors    []AddColorInput
}

// Seed inserts the configured reference data, skipping whatever already
// exists. Safe to run on every startup.
func (s *Service) Seed(ctx context.Context, data SeedData) error {
	var created, skipped int

	for _, in := range data.Rooms {
		if _, err := s.AddRoom(ctx, in); err != nil {
			if errors.Is(err, domain.ErrAlreadyExists) {
				skipped++
				continue
			}
			return fmt.Errorf("seed room %q: %w", in.Name, err)
		}
		created++
	}

	for _, in := range data.Materials {
		if _, err := s.AddMaterial(ctx, in); err != nil {
			if errors.Is(err, domain.ErrAlreadyExists) {
				skipped++
				continue
			}
			return fmt.Errorf("seed material %q: %w", in.Name, err)
		}
		created++
	}

	for _, in := range data.Colors {
		if _, err := s.AddColor(ctx, in); err != nil {
			if errors.Is(err, domain.ErrAlreadyExists) {
				skipped++
				continue
			}
			return fmt.Errorf("seed color %q: %w", in.Name, err)
		}
		created++
	}

	s.log.InfoContext(ctx, "reference data seeded",
		slog.Int("created", created),
		slog.Int("skipped", skipped),
	)

	return nil
}
