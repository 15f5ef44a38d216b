package session

import (
	"context"

	"github.com/google/uuid"

	"github.com/heartmarshall/founty-inventory/internal/domain"
	"github.com/heartmarshall/founty-inventory/internal/service/inventory"
)

// invMock implements inventoryService from canned reference data.
type invMock struct {
	rooms     []*domain.Room
	materials []*domain.Material
	colors    []*domain.ColorOption

	recorded    []inventory.RecordEntryInput
	recordErr   error
	feedback    []inventory.LeaveFeedbackInput
	addedRooms  []inventory.AddRoomInput
	removedRoom []string
}

func (m *invMock) RegisterContact(ctx context.Context, id int64, displayName string) (*domain.User, error) {
	return &domain.User{ID: id, DisplayName: displayName}, nil
}

func (m *invMock) RecordEntry(ctx context.Context, input inventory.RecordEntryInput) (*domain.Entry, error) {
	if m.recordErr != nil {
		return nil, m.recordErr
	}
	m.recorded = append(m.recorded, input)
	return &domain.Entry{
		ID:           uuid.New(),
		UserID:       input.UserID,
		RoomName:     input.RoomName,
		MaterialName: input.MaterialName,
		ColorID:      input.ColorID,
		Total:        input.Total,
		Broken:       input.Broken,
		Good:         input.Total - input.Broken,
		Condition:    input.Condition,
	}, nil
}

func (m *invMock) ListRooms(ctx context.Context) ([]*domain.Room, error) {
	return m.rooms, nil
}

func (m *invMock) ListMaterials(ctx context.Context) ([]*domain.Material, error) {
	return m.materials, nil
}

func (m *invMock) ListColors(ctx context.Context) ([]*domain.ColorOption, error) {
	return m.colors, nil
}

func (m *invMock) AddRoom(ctx context.Context, input inventory.AddRoomInput) (*domain.Room, error) {
	m.addedRooms = append(m.addedRooms, input)
	return &domain.Room{ID: uuid.New(), Name: input.Name}, nil
}

func (m *invMock) RemoveRoom(ctx context.Context, name string) error {
	m.removedRoom = append(m.removedRoom, name)
	return nil
}

func (m *invMock) AddMaterial(ctx context.Context, input inventory.AddMaterialInput) (*domain.Material, error) {
	return &domain.Material{ID: uuid.New(), Name: input.Name, Emoji: input.Emoji}, nil
}

func (m *invMock) RemoveMaterial(ctx context.Context, name string) error { return nil }

func (m *invMock) AddColor(ctx context.Context, input inventory.AddColorInput) (*domain.ColorOption, error) {
	return &domain.ColorOption{ID: uuid.New(), Name: input.Name, Code: input.Code}, nil
}

func (m *invMock) UpdateColor(ctx context.Context, input inventory.UpdateColorInput) (*domain.ColorOption, error) {
	return &domain.ColorOption{ID: input.ColorID, Name: input.Name, Code: input.Code}, nil
}

func (m *invMock) RemoveColor(ctx context.Context, id uuid.UUID) error { return nil }

func (m *invMock) LeaveFeedback(ctx context.Context, input inventory.LeaveFeedbackInput) (*domain.FeedbackNote, error) {
	m.feedback = append(m.feedback, input)
	return &domain.FeedbackNote{ID: uuid.New(), UserID: input.UserID, Text: input.Text}, nil
}

func (m *invMock) RecentFeedback(ctx context.Context) ([]*domain.FeedbackWithUser, error) {
	return []*domain.FeedbackWithUser{}, nil
}

// statsMock implements statsService with canned reports.
type statsMock struct {
	dashboard *domain.Dashboard
	lowStock  []*domain.LowStockGroup
	detail    *domain.RoomDetail
	detailErr error
	results   []*domain.SearchResult
}

func (m *statsMock) Dashboard(ctx context.Context) (*domain.Dashboard, error) {
	if m.dashboard == nil {
		return &domain.Dashboard{}, nil
	}
	return m.dashboard, nil
}

func (m *statsMock) RoomDetail(ctx context.Context, roomName string) (*domain.RoomDetail, error) {
	if m.detailErr != nil {
		return nil, m.detailErr
	}
	if m.detail == nil {
		return &domain.RoomDetail{Room: roomName}, nil
	}
	return m.detail, nil
}

func (m *statsMock) LowStock(ctx context.Context) ([]*domain.LowStockGroup, error) {
	return m.lowStock, nil
}

func (m *statsMock) Search(ctx context.Context, query string) ([]*domain.SearchResult, error) {
	return m.results, nil
}

// gateMock accepts one fixed secret.
type gateMock struct {
	secret string
}

func (m *gateMock) Verify(secret string) error {
	if secret != m.secret {
		return domain.ErrCredentialMismatch
	}
	return nil
}
