package inventory

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/google/uuid"

	"github.com/heartmarshall/founty-inventory/internal/domain"
)

// ---------------------------------------------------------------------------
// Rooms
// ---------------------------------------------------------------------------

// ListRooms returns all rooms ordered by name.
func (s *Service) ListRooms(ctx context.Context) ([]*domain.Room, error) {
	return s.rooms.List(ctx)
}

// AddRoom creates a room.
// Returns domain.ErrAlreadyExists if the room name is taken.
func (s *Service) AddRoom(ctx context.Context, input AddRoomInput) (*domain.Room, error) {
	if err := input.Validate(); err != nil {
		return nil, err
	}

	room, err := s.rooms.Create(ctx, &domain.Room{
		Name:     strings.TrimSpace(input.Name),
		RoomType: trimOrNil(input.RoomType),
		Location: trimOrNil(input.Location),
	})
	if err != nil {
		return nil, err
	}

	s.log.InfoContext(ctx, "room added", slog.String("name", room.Name))
	return room, nil
}

// RemoveRoom deletes a room by name. Existing entries for the room are kept
// and stay queryable under the removed name.
func (s *Service) RemoveRoom(ctx context.Context, name string) error {
	name = strings.TrimSpace(name)
	if name == "" {
		return domain.NewValidationError("name", "required")
	}

	if err := s.rooms.DeleteByName(ctx, name); err != nil {
		return err
	}

	s.log.InfoContext(ctx, "room removed", slog.String("name", name))
	return nil
}

// ---------------------------------------------------------------------------
// Materials
// ---------------------------------------------------------------------------

// ListMaterials returns all materials ordered by name.
func (s *Service) ListMaterials(ctx context.Context) ([]*domain.Material, error) {
	return s.materials.List(ctx)
}

// AddMaterial creates a material. An empty emoji falls back to the box icon.
// Returns domain.ErrAlreadyExists if the material name is taken.
func (s *Service) AddMaterial(ctx context.Context, input AddMaterialInput) (*domain.Material, error) {
	if err := input.Validate(); err != nil {
		return nil, err
	}

	emoji := strings.TrimSpace(input.Emoji)
	if emoji == "" {
		emoji = domain.DefaultMaterialEmoji
	}

	m, err := s.materials.Create(ctx, &domain.Material{
		Name:          strings.TrimSpace(input.Name),
		Emoji:         emoji,
		Category:      trimOrNil(input.Category),
		RequiresColor: input.RequiresColor,
	})
	if err != nil {
		return nil, err
	}

	s.log.InfoContext(ctx, "material added",
		slog.String("name", m.Name),
		slog.Bool("requires_color", m.RequiresColor),
	)
	return m, nil
}

// RemoveMaterial deletes a material by name. Existing entries for the
// material are kept and stay queryable under the removed name.
func (s *Service) RemoveMaterial(ctx context.Context, name string) error {
	name = strings.TrimSpace(name)
	if name == "" {
		return domain.NewValidationError("name", "required")
	}

	if err := s.materials.DeleteByName(ctx, name); err != nil {
		return err
	}

	s.log.InfoContext(ctx, "material removed", slog.String("name", name))
	return nil
}

// ---------------------------------------------------------------------------
// Colors
// ---------------------------------------------------------------------------

// ListColors returns all color options ordered by name.
func (s *Service) ListColors(ctx context.Context) ([]*domain.ColorOption, error) {
	return s.colors.List(ctx)
}

// AddColor creates a color option.
// Returns domain.ErrAlreadyExists if the color name is taken.
func (s *Service) AddColor(ctx context.Context, input AddColorInput) (*domain.ColorOption, error) {
	if err := input.Validate(); err != nil {
		return nil, err
	}

	c, err := s.colors.Create(ctx, &domain.ColorOption{
		Name: strings.TrimSpace(input.Name),
		Code: strings.TrimSpace(input.Code),
	})
	if err != nil {
		return nil, err
	}

	s.log.InfoContext(ctx, "color added", slog.String("name", c.Name))
	return c, nil
}

// UpdateColor renames a color option and replaces its code.
func (s *Service) UpdateColor(ctx context.Context, input UpdateColorInput) (*domain.ColorOption, error) {
	if err := input.Validate(); err != nil {
		return nil, err
	}

	c, err := s.colors.Update(ctx, &domain.ColorOption{
		ID:   input.ColorID,
		Name: strings.TrimSpace(input.Name),
		Code: strings.TrimSpace(input.Code),
	})
	if err != nil {
		return nil, err
	}

	s.log.InfoContext(ctx, "color updated", slog.String("name", c.Name))
	return c, nil
}

// RemoveColor deletes a color option. Entries keep their recorded color id.
func (s *Service) RemoveColor(ctx context.Context, id uuid.UUID) error {
	if id == uuid.Nil {
		return domain.NewValidationError("color_id", "required")
	}

	if err := s.colors.Delete(ctx, id); err != nil {
		return err
	}

	s.log.InfoContext(ctx, "color removed", slog.String("color_id", id.String()))
	return nil
}

// ---------------------------------------------------------------------------
// Users
// ---------------------------------------------------------------------------

// RegisterContact upserts the user on each incoming event so display names
// stay fresh without an explicit signup step.
func (s *Service) RegisterContact(ctx context.Context, id int64, displayName string) (*domain.User, error) {
	if id == 0 {
		return nil, domain.NewValidationError("user_id", "required")
	}

	displayName = strings.TrimSpace(displayName)
	if displayName == "" {
		displayName = fmt.Sprintf("user-%d", id)
	}

	return s.users.Upsert(ctx, id, displayName)
}
