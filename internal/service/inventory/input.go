package inventory

import (
	"strings"

	"github.com/google/uuid"

	"github.com/heartmarshall/founty-inventory/internal/domain"
)

// RecordEntryInput holds the parameters for recording a finished entry.
type RecordEntryInput struct {
	UserID       int64
	RoomName     string
	MaterialName string
	ColorID      *uuid.UUID
	Total        int
	Broken       int
	Condition    string
}

// Validate checks all fields and collects all errors.
func (i RecordEntryInput) Validate() error {
	var errs []domain.FieldError

	if i.UserID == 0 {
		errs = append(errs, domain.FieldError{Field: "user_id", Message: "required"})
	}
	if strings.TrimSpace(i.RoomName) == "" {
		errs = append(errs, domain.FieldError{Field: "room", Message: "required"})
	}
	if strings.TrimSpace(i.MaterialName) == "" {
		errs = append(errs, domain.FieldError{Field: "material", Message: "required"})
	}
	if i.Total < 0 {
		errs = append(errs, domain.FieldError{Field: "total", Message: "must not be negative"})
	}
	if i.Broken < 0 {
		errs = append(errs, domain.FieldError{Field: "broken", Message: "must not be negative"})
	}
	if i.Broken > i.Total {
		errs = append(errs, domain.FieldError{Field: "broken", Message: "must not exceed total"})
	}
	if strings.TrimSpace(i.Condition) == "" {
		errs = append(errs, domain.FieldError{Field: "condition", Message: "required"})
	}

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

// AddRoomInput holds the parameters for adding a room.
type AddRoomInput struct {
	Name     string
	RoomType *string
	Location *string
}

// Validate checks all fields and collects all errors.
func (i AddRoomInput) Validate() error {
	var errs []domain.FieldError

	name := strings.TrimSpace(i.Name)
	if name == "" {
		errs = append(errs, domain.FieldError{Field: "name", Message: "required"})
	}
	if len(name) > 100 {
		errs = append(errs, domain.FieldError{Field: "name", Message: "max 100 characters"})
	}

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

// AddMaterialInput holds the parameters for adding a material.
type AddMaterialInput struct {
	Name          string
	Emoji         string
	Category      *string
	RequiresColor bool
}

// Validate checks all fields and collects all errors.
func (i AddMaterialInput) Validate() error {
	var errs []domain.FieldError

	name := strings.TrimSpace(i.Name)
	if name == "" {
		errs = append(errs, domain.FieldError{Field: "name", Message: "required"})
	}
	if len(name) > 100 {
		errs = append(errs, domain.FieldError{Field: "name", Message: "max 100 characters"})
	}

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

// AddColorInput holds the parameters for adding a color option.
type AddColorInput struct {
	Name string
	Code string
}

// Validate checks all fields and collects all errors.
func (i AddColorInput) Validate() error {
	var errs []domain.FieldError

	if strings.TrimSpace(i.Name) == "" {
		errs = append(errs, domain.FieldError{Field: "name", Message: "required"})
	}
	if code := strings.TrimSpace(i.Code); code != "" && !strings.HasPrefix(code, "#") {
		errs = append(errs, domain.FieldError{Field: "code", Message: "must start with #"})
	}

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

// UpdateColorInput holds the parameters for renaming a color option.
type UpdateColorInput struct {
	ColorID uuid.UUID
	Name    string
	Code    string
}

// Validate checks all fields and collects all errors.
func (i UpdateColorInput) Validate() error {
	var errs []domain.FieldError

	if i.ColorID == uuid.Nil {
		errs = append(errs, domain.FieldError{Field: "color_id", Message: "required"})
	}
	if strings.TrimSpace(i.Name) == "" {
		errs = append(errs, domain.FieldError{Field: "name", Message: "required"})
	}
	if code := strings.TrimSpace(i.Code); code != "" && !strings.HasPrefix(code, "#") {
		errs = append(errs, domain.FieldError{Field: "code", Message: "must start with #"})
	}

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

// LeaveFeedbackInput holds the parameters for storing a feedback note.
type LeaveFeedbackInput struct {
	UserID int64
	Text   string
}

// Validate checks all fields and collects all errors.
func (i LeaveFeedbackInput) Validate() error {
	var errs []domain.FieldError

	if i.UserID == 0 {
		errs = append(errs, domain.FieldError{Field: "user_id", Message: "required"})
	}
	text := strings.TrimSpace(i.Text)
	if text == "" {
		errs = append(errs, domain.FieldError{Field: "text", Message: "required"})
	}
	if len(text) > 2000 {
		errs = append(errs, domain.FieldError{Field: "text", Message: "max 2000 characters"})
	}

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}
