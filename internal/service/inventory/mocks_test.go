package inventory

import (
	"context"
	"sync"

	"github.com/google/uuid"

	"github.com/heartmarshall/founty-inventory/internal/domain"
)

var _ roomRepo = &roomRepoMock{}

type roomRepoMock struct {
	CreateFunc       func(ctx context.Context, room *domain.Room) (*domain.Room, error)
	EnsureByNameFunc func(ctx context.Context, name string) (*domain.Room, error)
	GetByNameFunc    func(ctx context.Context, name string) (*domain.Room, error)
	ListFunc         func(ctx context.Context) ([]*domain.Room, error)
	DeleteByNameFunc func(ctx context.Context, name string) error

	calls struct {
		Create       []struct{ Room *domain.Room }
		EnsureByName []struct{ Name string }
		GetByName    []struct{ Name string }
		List         []struct{}
		DeleteByName []struct{ Name string }
	}
	lock sync.RWMutex
}

func (mock *roomRepoMock) Create(ctx context.Context, room *domain.Room) (*domain.Room, error) {
	if mock.CreateFunc == nil {
		panic("roomRepoMock.CreateFunc: method is nil but roomRepo.Create was just called")
	}
	mock.lock.Lock()
	mock.calls.Create = append(mock.calls.Create, struct{ Room *domain.Room }{room})
	mock.lock.Unlock()
	return mock.CreateFunc(ctx, room)
}

func (mock *roomRepoMock) CreateCalls() []struct{ Room *domain.Room } {
	mock.lock.RLock()
	defer mock.lock.RUnlock()
	return mock.calls.Create
}

func (mock *roomRepoMock) EnsureByName(ctx context.Context, name string) (*domain.Room, error) {
	if mock.EnsureByNameFunc == nil {
		panic("roomRepoMock.EnsureByNameFunc: method is nil but roomRepo.EnsureByName was just called")
	}
	mock.lock.Lock()
	mock.calls.EnsureByName = append(mock.calls.EnsureByName, struct{ Name string }{name})
	mock.lock.Unlock()
	return mock.EnsureByNameFunc(ctx, name)
}

func (mock *roomRepoMock) EnsureByNameCalls() []struct{ Name string } {
	mock.lock.RLock()
	defer mock.lock.RUnlock()
	return mock.calls.EnsureByName
}

func (mock *roomRepoMock) GetByName(ctx context.Context, name string) (*domain.Room, error) {
	if mock.GetByNameFunc == nil {
		panic("roomRepoMock.GetByNameFunc: method is nil but roomRepo.GetByName was just called")
	}
	mock.lock.Lock()
	mock.calls.GetByName = append(mock.calls.GetByName, struct{ Name string }{name})
	mock.lock.Unlock()
	return mock.GetByNameFunc(ctx, name)
}

func (mock *roomRepoMock) List(ctx context.Context) ([]*domain.Room, error) {
	if mock.ListFunc == nil {
		panic("roomRepoMock.ListFunc: method is nil but roomRepo.List was just called")
	}
	mock.lock.Lock()
	mock.calls.List = append(mock.calls.List, struct{}{})
	mock.lock.Unlock()
	return mock.ListFunc(ctx)
}

func (mock *roomRepoMock) DeleteByName(ctx context.Context, name string) error {
	if mock.DeleteByNameFunc == nil {
		panic("roomRepoMock.DeleteByNameFunc: method is nil but roomRepo.DeleteByName was just called")
	}
	mock.lock.Lock()
	mock.calls.DeleteByName = append(mock.calls.DeleteByName, struct{ Name string }{name})
	mock.lock.Unlock()
	return mock.DeleteByNameFunc(ctx, name)
}

func (mock *roomRepoMock) DeleteByNameCalls() []struct{ Name string } {
	mock.lock.RLock()
	defer mock.lock.RUnlock()
	return mock.calls.DeleteByName
}

var _ materialRepo = &materialRepoMock{}

type materialRepoMock struct {
	CreateFunc       func(ctx context.Context, m *domain.Material) (*domain.Material, error)
	GetByNameFunc    func(ctx context.Context, name string) (*domain.Material, error)
	ListFunc         func(ctx context.Context) ([]*domain.Material, error)
	DeleteByNameFunc func(ctx context.Context, name string) error

	calls struct {
		Create       []struct{ Material *domain.Material }
		GetByName    []struct{ Name string }
		List         []struct{}
		DeleteByName []struct{ Name string }
	}
	lock sync.RWMutex
}

func (mock *materialRepoMock) Create(ctx context.Context, m *domain.Material) (*domain.Material, error) {
	if mock.CreateFunc == nil {
		panic("materialRepoMock.CreateFunc: method is nil but materialRepo.Create was just called")
	}
	mock.lock.Lock()
	mock.calls.Create = append(mock.calls.Create, struct{ Material *domain.Material }{m})
	mock.lock.Unlock()
	return mock.CreateFunc(ctx, m)
}

func (mock *materialRepoMock) CreateCalls() []struct{ Material *domain.Material } {
	mock.lock.RLock()
	defer mock.lock.RUnlock()
	return mock.calls.Create
}

func (mock *materialRepoMock) GetByName(ctx context.Context, name string) (*domain.Material, error) {
	if mock.GetByNameFunc == nil {
		panic("materialRepoMock.GetByNameFunc: method is nil but materialRepo.GetByName was just called")
	}
	mock.lock.Lock()
	mock.calls.GetByName = append(mock.calls.GetByName, struct{ Name string }{name})
	mock.lock.Unlock()
	return mock.GetByNameFunc(ctx, name)
}

func (mock *materialRepoMock) GetByNameCalls() []struct{ Name string } {
	mock.lock.RLock()
	defer mock.lock.RUnlock()
	return mock.calls.GetByName
}

func (mock *materialRepoMock) List(ctx context.Context) ([]*domain.Material, error) {
	if mock.ListFunc == nil {
		panic("materialRepoMock.ListFunc: method is nil but materialRepo.List was just called")
	}
	mock.lock.Lock()
	mock.calls.List = append(mock.calls.List, struct{}{})
	mock.lock.Unlock()
	return mock.ListFunc(ctx)
}

func (mock *materialRepoMock) DeleteByName(ctx context.Context, name string) error {
	if mock.DeleteByNameFunc == nil {
		panic("materialRepoMock.DeleteByNameFunc: method is nil but materialRepo.DeleteByName was just called")
	}
	mock.lock.Lock()
	mock.calls.DeleteByName = append(mock.calls.DeleteByName, struct{ Name string }{name})
	mock.lock.Unlock()
	return mock.DeleteByNameFunc(ctx, name)
}

var _ colorRepo = &colorRepoMock{}

type colorRepoMock struct {
	CreateFunc  func(ctx context.Context, c *domain.ColorOption) (*domain.ColorOption, error)
	GetByIDFunc func(ctx context.Context, id uuid.UUID) (*domain.ColorOption, error)
	ListFunc    func(ctx context.Context) ([]*domain.ColorOption, error)
	UpdateFunc  func(ctx context.Context, c *domain.ColorOption) (*domain.ColorOption, error)
	DeleteFunc  func(ctx context.Context, id uuid.UUID) error

	calls struct {
		Create  []struct{ Color *domain.ColorOption }
		GetByID []struct{ ID uuid.UUID }
		List    []struct{}
		Update  []struct{ Color *domain.ColorOption }
		Delete  []struct{ ID uuid.UUID }
	}
	lock sync.RWMutex
}

func (mock *colorRepoMock) Create(ctx context.Context, c *domain.ColorOption) (*domain.ColorOption, error) {
	if mock.CreateFunc == nil {
		panic("colorRepoMock.CreateFunc: method is nil but colorRepo.Create was just called")
	}
	mock.lock.Lock()
	mock.calls.Create = append(mock.calls.Create, struct{ Color *domain.ColorOption }{c})
	mock.lock.Unlock()
	return mock.CreateFunc(ctx, c)
}

func (mock *colorRepoMock) CreateCalls() []struct{ Color *domain.ColorOption } {
	mock.lock.RLock()
	defer mock.lock.RUnlock()
	return mock.calls.Create
}

func (mock *colorRepoMock) GetByID(ctx context.Context, id uuid.UUID) (*domain.ColorOption, error) {
	if mock.GetByIDFunc == nil {
		panic("colorRepoMock.GetByIDFunc: method is nil but colorRepo.GetByID was just called")
	}
	mock.lock.Lock()
	mock.calls.GetByID = append(mock.calls.GetByID, struct{ ID uuid.UUID }{id})
	mock.lock.Unlock()
	return mock.GetByIDFunc(ctx, id)
}

func (mock *colorRepoMock) GetByIDCalls() []struct{ ID uuid.UUID } {
	mock.lock.RLock()
	defer mock.lock.RUnlock()
	return mock.calls.GetByID
}

func (mock *colorRepoMock) List(ctx context.Context) ([]*domain.ColorOption, error) {
	if mock.ListFunc == nil {
		panic("colorRepoMock.ListFunc: method is nil but colorRepo.List was just called")
	}
	mock.lock.Lock()
	mock.calls.List = append(mock.calls.List, struct{}{})
	mock.lock.Unlock()
	return mock.ListFunc(ctx)
}

func (mock *colorRepoMock) Update(ctx context.Context, c *domain.ColorOption) (*domain.ColorOption, error) {
	if mock.UpdateFunc == nil {
		panic("colorRepoMock.UpdateFunc: method is nil but colorRepo.Update was just called")
	}
	mock.lock.Lock()
	mock.calls.Update = append(mock.calls.Update, struct{ Color *domain.ColorOption }{c})
	mock.lock.Unlock()
	return mock.UpdateFunc(ctx, c)
}

func (mock *colorRepoMock) Delete(ctx context.Context, id uuid.UUID) error {
	if mock.DeleteFunc == nil {
		panic("colorRepoMock.DeleteFunc: method is nil but colorRepo.Delete was just called")
	}
	mock.lock.Lock()
	mock.calls.Delete = append(mock.calls.Delete, struct{ ID uuid.UUID }{id})
	mock.lock.Unlock()
	return mock.DeleteFunc(ctx, id)
}

var _ entryRepo = &entryRepoMock{}

type entryRepoMock struct {
	InsertFunc     func(ctx context.Context, e *domain.Entry) (*domain.Entry, error)
	ExportRowsFunc func(ctx context.Context) ([]*domain.ExportRow, error)

	calls struct {
		Insert     []struct{ Entry *domain.Entry }
		ExportRows []struct{}
	}
	lock sync.RWMutex
}

func (mock *entryRepoMock) Insert(ctx context.Context, e *domain.Entry) (*domain.Entry, error) {
	if mock.InsertFunc == nil {
		panic("entryRepoMock.InsertFunc: method is nil but entryRepo.Insert was just called")
	}
	mock.lock.Lock()
	mock.calls.Insert = append(mock.calls.Insert, struct{ Entry *domain.Entry }{e})
	mock.lock.Unlock()
	return mock.InsertFunc(ctx, e)
}

func (mock *entryRepoMock) InsertCalls() []struct{ Entry *domain.Entry } {
	mock.lock.RLock()
	defer mock.lock.RUnlock()
	return mock.calls.Insert
}

func (mock *entryRepoMock) ExportRows(ctx context.Context) ([]*domain.ExportRow, error) {
	if mock.ExportRowsFunc == nil {
		panic("entryRepoMock.ExportRowsFunc: method is nil but entryRepo.ExportRows was just called")
	}
	mock.lock.Lock()
	mock.calls.ExportRows = append(mock.calls.ExportRows, struct{}{})
	mock.lock.Unlock()
	return mock.ExportRowsFunc(ctx)
}

var _ userRepo = &userRepoMock{}

type userRepoMock struct {
	UpsertFunc func(ctx context.Context, id int64, displayName string) (*domain.User, error)

	calls struct {
		Upsert []struct {
			ID          int64
			DisplayName string
		}
	}
	lock sync.RWMutex
}

func (mock *userRepoMock) Upsert(ctx context.Context, id int64, displayName string) (*domain.User, error) {
	if mock.UpsertFunc == nil {
		panic("userRepoMock.UpsertFunc: method is nil but userRepo.Upsert was just called")
	}
	mock.lock.Lock()
	mock.calls.Upsert = append(mock.calls.Upsert, struct {
		ID          int64
		DisplayName string
	}{id, displayName})
	mock.lock.Unlock()
	return mock.UpsertFunc(ctx, id, displayName)
}

func (mock *userRepoMock) UpsertCalls() []struct {
	ID          int64
	DisplayName string
} {
	mock.lock.RLock()
	defer mock.lock.RUnlock()
	return mock.calls.Upsert
}

var _ feedbackRepo = &feedbackRepoMock{}

type feedbackRepoMock struct {
	InsertFunc     func(ctx context.Context, userID int64, text string) (*domain.FeedbackNote, error)
	ListRecentFunc func(ctx context.Context, limit int) ([]*domain.FeedbackWithUser, error)

	calls struct {
		Insert []struct {
			UserID int64
			Text   string
		}
		ListRecent []struct{ Limit int }
	}
	lock sync.RWMutex
}

func (mock *feedbackRepoMock) Insert(ctx context.Context, userID int64, text string) (*domain.FeedbackNote, error) {
	if mock.InsertFunc == nil {
		panic("feedbackRepoMock.InsertFunc: method is nil but feedbackRepo.Insert was just called")
	}
	mock.lock.Lock()
	mock.calls.Insert = append(mock.calls.Insert, struct {
		UserID int64
		Text   string
	}{userID, text})
	mock.lock.Unlock()
	return mock.InsertFunc(ctx, userID, text)
}

func (mock *feedbackRepoMock) InsertCalls() []struct {
	UserID int64
	Text   string
} {
	mock.lock.RLock()
	defer mock.lock.RUnlock()
	return mock.calls.Insert
}

func (mock *feedbackRepoMock) ListRecent(ctx context.Context, limit int) ([]*domain.FeedbackWithUser, error) {
	if mock.ListRecentFunc == nil {
		panic("feedbackRepoMock.ListRecentFunc: method is nil but feedbackRepo.ListRecent was just called")
	}
	mock.lock.Lock()
	mock.calls.ListRecent = append(mock.calls.ListRecent, struct{ Limit int }{limit})
	mock.lock.Unlock()
	return mock.ListRecentFunc(ctx, limit)
}

func (mock *feedbackRepoMock) ListRecentCalls() []struct{ Limit int } {
	mock.lock.RLock()
	defer mock.lock.RUnlock()
	return mock.calls.ListRecent
}

var _ txManager = &txManagerMock{}

type txManagerMock struct {
	RunInTxFunc func(ctx context.Context, fn func(ctx context.Context) error) error

	calls struct {
		RunInTx []struct{}
	}
	lock sync.RWMutex
}

func (mock *txManagerMock) RunInTx(ctx context.Context, fn func(ctx context.Context) error) error {
	if mock.RunInTxFunc == nil {
		panic("txManagerMock.RunInTxFunc: method is nil but txManager.RunInTx was just called")
	}
	mock.lock.Lock()
	mock.calls.RunInTx = append(mock.calls.RunInTx, struct{}{})
	mock.lock.Unlock()
	return mock.RunInTxFunc(ctx, fn)
}

func (mock *txManagerMock) RunInTxCalls() []struct{} {
	mock.lock.RLock()
	defer mock.lock.RUnlock()
	return mock.calls.RunInTx
}
