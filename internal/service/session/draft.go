package session

import "github.com/google/uuid"

// Draft accumulates the fields of an in-progress entry. It lives only in the
// session; nothing is persisted until the user confirms.
type Draft struct {
	RoomName     string
	MaterialName string
	ColorID      *uuid.UUID
	ColorName    string
	Total        int
	Broken       int
	Condition    string
}

// Clear wipes every draft field.
func (d *Draft) Clear() {
	*d = Draft{}
}

// ClearForStay wipes everything except the selected room, so the user can
// immediately record another material in the same place.
func (d *Draft) ClearForStay() {
	room := d.RoomName
	*d = Draft{RoomName: room}
}
