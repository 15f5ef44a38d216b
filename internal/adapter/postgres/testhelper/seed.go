package testhelper

import (
	"context"
	"math/rand/v2"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/heartmarshall/founty-inventory/internal/domain"
)

// uniqueSuffix returns a short unique string for generating non-conflicting test data.
func uniqueSuffix() string {
	return uuid.New().String()[:8]
}

// SeedUser creates a user with a unique display name. Returns a filled domain.User.
func SeedUser(t *testing.T, pool *pgxpool.Pool) domain.User {
	t.Helper()
	ctx := context.Background()

	suffix := uniqueSuffix()
	now := time.Now().UTC().Truncate(time.Microsecond)
	user := domain.User{
		ID:          rand.Int64N(1_000_000_000) + 1,
		DisplayName: "Test User " + suffix,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	_, err := pool.Exec(ctx,
		`INSERT INTO users (id, display_name, created_at, updated_at)
		 VALUES ($1, $2, $3, $4)`,
		user.ID, user.DisplayName, user.CreatedAt, user.UpdatedAt,
	)
	if err != nil {
		t.Fatalf("testhelper: SeedUser insert user: %v", err)
	}

	return user
}

// SeedRoom creates a room with a unique name. Returns a filled domain.Room.
func SeedRoom(t *testing.T, pool *pgxpool.Pool) domain.Room {
	t.Helper()
	ctx := context.Background()

	suffix := uniqueSuffix()
	now := time.Now().UTC().Truncate(time.Microsecond)
	location := "Floor " + suffix[:2]
	room := domain.Room{
		ID:        uuid.New(),
		Name:      "Room " + suffix,
		Location:  &location,
		CreatedAt: now,
	}

	_, err := pool.Exec(ctx,
		`INSERT INTO rooms (id, name, location, created_at)
		 VALUES ($1, $2, $3, $4)`,
		room.ID, room.Name, room.Location, room.CreatedAt,
	)
	if err != nil {
		t.Fatalf("testhelper: SeedRoom insert room: %v", err)
	}

	return room
}

// SeedMaterial creates a material with a unique name.
// Returns a filled domain.Material.
func SeedMaterial(t *testing.T, pool *pgxpool.Pool, requiresColor bool) domain.Material {
	t.Helper()
	ctx := context.Background()

	suffix := uniqueSuffix()
	now := time.Now().UTC().Truncate(time.Microsecond)
	m := domain.Material{
		ID:            uuid.New(),
		Name:          "Material " + suffix,
		Emoji:         "📦",
		RequiresColor: requiresColor,
		CreatedAt:     now,
	}

	_, err := pool.Exec(ctx,
		`INSERT INTO materials (id, name, emoji, requires_color, created_at)
		 VALUES ($1, $2, $3, $4, $5)`,
		m.ID, m.Name, m.Emoji, m.RequiresColor, m.CreatedAt,
	)
	if err != nil {
		t.Fatalf("testhelper: SeedMaterial insert material: %v", err)
	}

	return m
}

// SeedColor creates a color option with a unique name.
// Returns a filled domain.ColorOption.
func SeedColor(t *testing.T, pool *pgxpool.Pool) domain.ColorOption {
	t.Helper()
	ctx := context.Background()

	suffix := uniqueSuffix()
	now := time.Now().UTC().Truncate(time.Microsecond)
	c := domain.ColorOption{
		ID:        uuid.New(),
		Name:      "Color " + suffix,
		Code:      "#AB12CD",
		CreatedAt: now,
	}

	_, err := pool.Exec(ctx,
		`INSERT INTO color_options (id, name, code, created_at)
		 VALUES ($1, $2, $3, $4)`,
		c.ID, c.Name, c.Code, c.CreatedAt,
	)
	if err != nil {
		t.Fatalf("testhelper: SeedColor insert color: %v", err)
	}

	return c
}

// SeedEntry creates an inventory entry for the given user, room and material
// names. Good is derived from total and broken. Returns a filled domain.Entry.
func SeedEntry(t *testing.T, pool *pgxpool.Pool, userID int64, roomName, materialName string, total, broken int) domain.Entry {
	t.Helper()
	ctx := context.Background()

	now := time.Now().UTC().Truncate(time.Microsecond)
	e := domain.Entry{
		ID:           uuid.New(),
		UserID:       userID,
		RoomName:     roomName,
		MaterialName: materialName,
		Total:        total,
		Broken:       broken,
		Good:         total - broken,
		Condition:    "Bon",
		RecordedAt:   now,
	}

	_, err := pool.Exec(ctx,
		`INSERT INTO entries (id, user_id, room_name, material_name, total, broken, good, condition, recorded_at)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`,
		e.ID, e.UserID, e.RoomName, e.MaterialName, e.Total, e.Broken, e.Good, e.Condition, e.RecordedAt,
	)
	if err != nil {
		t.Fatalf("testhelper: SeedEntry insert entry: %v", err)
	}

	return e
}
