package stats

import (
	"context"
	"errors"
	"log/slog"
	"testing"
	"time"

	"github.com/heartmarshall/founty-inventory/internal/domain"
)

type entryStatsMock struct {
	AggregateTotalsFunc     func(ctx context.Context) (*domain.EntryTotals, error)
	DistinctUsersFunc       func(ctx context.Context) (int, error)
	CountSinceFunc          func(ctx context.Context, cutoff time.Time) (int, error)
	TopProblematicRoomsFunc func(ctx context.Context, limit int) ([]*domain.RoomRanking, error)
	TopMaterialsFunc        func(ctx context.Context, limit int) ([]*domain.MaterialRanking, error)
	ConditionCountsFunc     func(ctx context.Context) ([]*domain.ConditionCount, error)
	RoomDetailFunc          func(ctx context.Context, roomName string) (*domain.RoomDetail, error)
	LowStockFunc            func(ctx context.Context, threshold float64) ([]*domain.LowStockGroup, error)
	SearchFunc              func(ctx context.Context, pattern string, limit int) ([]*domain.SearchResult, error)
}

func (m *entryStatsMock) AggregateTotals(ctx context.Context) (*domain.EntryTotals, error) {
	return m.AggregateTotalsFunc(ctx)
}

func (m *entryStatsMock) DistinctUsers(ctx context.Context) (int, error) {
	return m.DistinctUsersFunc(ctx)
}

func (m *entryStatsMock) CountSince(ctx context.Context, cutoff time.Time) (int, error) {
	return m.CountSinceFunc(ctx, cutoff)
}

func (m *entryStatsMock) TopProblematicRooms(ctx context.Context, limit int) ([]*domain.RoomRanking, error) {
	return m.TopProblematicRoomsFunc(ctx, limit)
}

func (m *entryStatsMock) TopMaterials(ctx context.Context, limit int) ([]*domain.MaterialRanking, error) {
	return m.TopMaterialsFunc(ctx, limit)
}

func (m *entryStatsMock) ConditionCounts(ctx context.Context) ([]*domain.ConditionCount, error) {
	return m.ConditionCountsFunc(ctx)
}

func (m *entryStatsMock) RoomDetail(ctx context.Context, roomName string) (*domain.RoomDetail, error) {
	return m.RoomDetailFunc(ctx, roomName)
}

func (m *entryStatsMock) LowStock(ctx context.Context, threshold float64) ([]*domain.LowStockGroup, error) {
	return m.LowStockFunc(ctx, threshold)
}

func (m *entryStatsMock) Search(ctx context.Context, pattern string, limit int) ([]*domain.SearchResult, error) {
	return m.SearchFunc(ctx, pattern, limit)
}

type counterMock struct {
	n   int
	err error
}

func (m *counterMock) Count(ctx context.Context) (int, error) {
	return m.n, m.err
}

type roomsMock struct {
	n         int
	lookupErr error
}

func (m *roomsMock) Count(ctx context.Context) (int, error) {
	return m.n, nil
}

func (m *roomsMock) GetByName(ctx context.Context, name string) (*domain.Room, error) {
	if m.lookupErr != nil {
		return nil, m.lookupErr
	}
	return &domain.Room{Name: name}, nil
}

func emptyRankings(m *entryStatsMock) *entryStatsMock {
	m.TopProblematicRoomsFunc = func(ctx context.Context, limit int) ([]*domain.RoomRanking, error) {
		return nil, nil
	}
	m.TopMaterialsFunc = func(ctx context.Context, limit int) ([]*domain.MaterialRanking, error) {
		return nil, nil
	}
	m.ConditionCountsFunc = func(ctx context.Context) ([]*domain.ConditionCount, error) {
		return nil, nil
	}
	m.DistinctUsersFunc = func(ctx context.Context) (int, error) { return 0, nil }
	m.CountSinceFunc = func(ctx context.Context, cutoff time.Time) (int, error) { return 0, nil }
	return m
}

func TestDashboard_Percentages(t *testing.T) {
	t.Parallel()

	entries := emptyRankings(&entryStatsMock{
		AggregateTotalsFunc: func(ctx context.Context) (*domain.EntryTotals, error) {
			return &domain.EntryTotals{Entries: 3, Items: 30, Broken: 7, Good: 23}, nil
		},
	})
	svc := NewService(slog.Default(), entries, &roomsMock{n: 4}, &counterMock{n: 6}, 5)

	d, err := svc.Dashboard(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if d.BrokenPct != 23.33 {
		t.Errorf("BrokenPct: got %v, want 23.33", d.BrokenPct)
	}
	if d.GoodPct != 76.67 {
		t.Errorf("GoodPct: got %v, want 76.67", d.GoodPct)
	}
	if d.RoomCount != 4 || d.MaterialCount != 6 {
		t.Errorf("counts: got rooms=%d materials=%d", d.RoomCount, d.MaterialCount)
	}
}

func TestDashboard_ZeroItems(t *testing.T) {
	t.Parallel()

	entries := emptyRankings(&entryStatsMock{
		AggregateTotalsFunc: func(ctx context.Context) (*domain.EntryTotals, error) {
			return &domain.EntryTotals{}, nil
		},
	})
	svc := NewService(slog.Default(), entries, &roomsMock{}, &counterMock{}, 5)

	d, err := svc.Dashboard(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if d.BrokenPct != 0 || d.GoodPct != 0 {
		t.Errorf("expected zero percentages on empty log, got broken=%v good=%v", d.BrokenPct, d.GoodPct)
	}
	if d.ProblematicRooms == nil || d.TopMaterials == nil || d.Conditions == nil {
		t.Error("rankings should be empty slices, not nil")
	}
}

func TestDashboard_RecentWindowIs24h(t *testing.T) {
	t.Parallel()

	var gotCutoff time.Time
	entries := emptyRankings(&entryStatsMock{
		AggregateTotalsFunc: func(ctx context.Context) (*domain.EntryTotals, error) {
			return &domain.EntryTotals{}, nil
		},
	})
	entries.CountSinceFunc = func(ctx context.Context, cutoff time.Time) (int, error) {
		gotCutoff = cutoff
		return 0, nil
	}

	svc := NewService(slog.Default(), entries, &roomsMock{}, &counterMock{}, 5)
	fixed := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	svc.now = func() time.Time { return fixed }

	if _, err := svc.Dashboard(context.Background()); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if want := fixed.Add(-24 * time.Hour); !gotCutoff.Equal(want) {
		t.Errorf("cutoff: got %v, want %v", gotCutoff, want)
	}
}

func TestDashboard_RepoErrorPropagates(t *testing.T) {
	t.Parallel()

	boom := errors.New("connection refused")
	entries := &entryStatsMock{
		AggregateTotalsFunc: func(ctx context.Context) (*domain.EntryTotals, error) {
			return nil, boom
		},
	}
	svc := NewService(slog.Default(), entries, &roomsMock{}, &counterMock{}, 5)

	_, err := svc.Dashboard(context.Background())
	if !errors.Is(err, boom) {
		t.Errorf("expected repo error to propagate, got %v", err)
	}
}

func TestLowStock_PassesConfiguredThreshold(t *testing.T) {
	t.Parallel()

	var gotThreshold float64
	entries := &entryStatsMock{
		LowStockFunc: func(ctx context.Context, threshold float64) ([]*domain.LowStockGroup, error) {
			gotThreshold = threshold
			return []*domain.LowStockGroup{}, nil
		},
	}
	svc := NewService(slog.Default(), entries, &roomsMock{}, &counterMock{}, 7.5)

	if _, err := svc.LowStock(context.Background()); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if gotThreshold != 7.5 {
		t.Errorf("threshold: got %v, want 7.5", gotThreshold)
	}
}

func TestSearch_EmptyQuery(t *testing.T) {
	t.Parallel()

	svc := NewService(slog.Default(), &entryStatsMock{}, &roomsMock{}, &counterMock{}, 5)

	_, err := svc.Search(context.Background(), "  ")
	if !errors.Is(err, domain.ErrValidation) {
		t.Errorf("expected ErrValidation, got %v", err)
	}
}

func TestSearch_AppliesLimit(t *testing.T) {
	t.Parallel()

	var gotLimit int
	entries := &entryStatsMock{
		SearchFunc: func(ctx context.Context, pattern string, limit int) ([]*domain.SearchResult, error) {
			gotLimit = limit
			return []*domain.SearchResult{}, nil
		},
	}
	svc := NewService(slog.Default(), entries, &roomsMock{}, &counterMock{}, 5)

	if _, err := svc.Search(context.Background(), "salle"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if gotLimit != SearchLimit {
		t.Errorf("limit: got %d, want %d", gotLimit, SearchLimit)
	}
}

func TestRoomDetail_EmptyName(t *testing.T) {
	t.Parallel()

	svc := NewService(slog.Default(), &entryStatsMock{}, &roomsMock{}, &counterMock{}, 5)

	_, err := svc.RoomDetail(context.Background(), "")
	if !errors.Is(err, domain.ErrValidation) {
		t.Errorf("expected ErrValidation, got %v", err)
	}
}

func TestRoomDetail_UnknownRoom(t *testing.T) {
	t.Parallel()

	entries := &entryStatsMock{
		RoomDetailFunc: func(ctx context.Context, roomName string) (*domain.RoomDetail, error) {
			return &domain.RoomDetail{Room: roomName, Materials: []domain.MaterialBreakdown{}}, nil
		},
	}
	rooms := &roomsMock{lookupErr: domain.ErrNotFound}
	svc := NewService(slog.Default(), entries, rooms, &counterMock{}, 5)

	_, err := svc.RoomDetail(context.Background(), "Nowhere")
	if !errors.Is(err, domain.ErrNotFound) {
		t.Errorf("expected ErrNotFound, got %v", err)
	}
}

func TestRoomDetail_KnownRoomWithoutEntries(t *testing.T) {
	t.Parallel()

	entries := &entryStatsMock{
		RoomDetailFunc: func(ctx context.Context, roomName string) (*domain.RoomDetail, error) {
			return &domain.RoomDetail{Room: roomName, Materials: []domain.MaterialBreakdown{}}, nil
		},
	}
	svc := NewService(slog.Default(), entries, &roomsMock{}, &counterMock{}, 5)

	detail, err := svc.RoomDetail(context.Background(), "Salle 101")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if detail.EntryCount != 0 {
		t.Errorf("EntryCount: got %d, want 0", detail.EntryCount)
	}
}

func TestRoomDetail_DeletedRoomKeepsEntries(t *testing.T) {
	t.Parallel()

	entries := &entryStatsMock{
		RoomDetailFunc: func(ctx context.Context, roomName string) (*domain.RoomDetail, error) {
			return &domain.RoomDetail{Room: roomName, EntryCount: 2, Total: 30}, nil
		},
	}
	rooms := &roomsMock{lookupErr: domain.ErrNotFound}
	svc := NewService(slog.Default(), entries, rooms, &counterMock{}, 5)

	detail, err := svc.RoomDetail(context.Background(), "Salle fermée")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if detail.Total != 30 {
		t.Errorf("Total: got %d, want 30", detail.Total)
	}
}
