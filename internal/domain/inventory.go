package domain

import (
	"time"

	"github.com/google/uuid"
)

// Room is a physical location observations are filed against.
// Rooms are created by seeding, by admin action, or implicitly when an entry
// references a room name the store has not seen yet (auto-vivification).
type Room struct {
	ID        uuid.UUID
	Name      string
	RoomType  *string
	Location  *string
	CreatedAt time.Time
}

// DefaultMaterialEmoji is used when a material is added without an icon.
const DefaultMaterialEmoji = "📦"

// Material is a countable item category (chairs, tables, projectors, ...).
// RequiresColor marks chair-like materials whose entry flow includes a color
// pick when at least one ColorOption exists.
type Material struct {
	ID            uuid.UUID
	Name          string
	Emoji         string
	Category      *string
	RequiresColor bool
	CreatedAt     time.Time
}

// ColorOption is a selectable color for materials with RequiresColor set.
type ColorOption struct {
	ID        uuid.UUID
	Name      string
	Code      string
	CreatedAt time.Time
}

// Entry is one persisted inventory observation. Entries are append-only:
// never mutated or deleted. Room and material are referenced by name snapshot,
// not by foreign key, so removing reference data leaves entries behind with
// the stale name still visible in exports and statistics.
type Entry struct {
	ID           uuid.UUID
	UserID       int64
	RoomName     string
	MaterialName string
	ColorID      *uuid.UUID
	Total        int
	Broken       int
	Good         int
	Condition    string
	RecordedAt   time.Time
}

// User is a chat user, keyed by the transport's external id and upserted on
// every interaction. Role is session-local and never persisted.
type User struct {
	ID          int64
	DisplayName string
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// FeedbackNote is a free-text note from a user, unrelated to entries.
type FeedbackNote struct {
	ID        uuid.UUID
	UserID    int64
	Text      string
	CreatedAt time.Time
}

// FeedbackWithUser is a feedback note joined with the author's display name.
type FeedbackWithUser struct {
	FeedbackNote
	DisplayName string
}

// ExportRow is one entry joined with user/room/material display names,
// the shape of the tabular export.
type ExportRow struct {
	User       string
	Room       string
	Material   string
	Total      int
	Broken     int
	Good       int
	Condition  string
	Location   string
	RecordedAt time.Time
}
