// Package stats implements the read-only reporting side: the dashboard,
// per-room drill-downs, the low-stock report, and the entry search.
package stats

import (
	"context"
	"log/slog"
	"math"
	"time"

	"github.com/heartmarshall/founty-inventory/internal/domain"
)

type entryStatsRepo interface {
	AggregateTotals(ctx context.Context) (*domain.EntryTotals, error)
	DistinctUsers(ctx context.Context) (int, error)
	CountSince(ctx context.Context, cutoff time.Time) (int, error)
	TopProblematicRooms(ctx context.Context, limit int) ([]*domain.RoomRanking, error)
	TopMaterials(ctx context.Context, limit int) ([]*domain.MaterialRanking, error)
	ConditionCounts(ctx context.Context) ([]*domain.ConditionCount, error)
	RoomDetail(ctx context.Context, roomName string) (*domain.RoomDetail, error)
	LowStock(ctx context.Context, threshold float64) ([]*domain.LowStockGroup, error)
	Search(ctx context.Context, pattern string, limit int) ([]*domain.SearchResult, error)
}

type roomRepo interface {
	Count(ctx context.Context) (int, error)
	GetByName(ctx context.Context, name string) (*domain.Room, error)
}

type materialCounter interface {
	Count(ctx context.Context) (int, error)
}

const (
	// RankingSize caps the dashboard's room and material rankings.
	RankingSize = 5

	// SearchLimit caps the number of rows the entry search returns.
	SearchLimit = 20

	recentWindow = 24 * time.Hour
)

// Service provides reporting operations over the entry log.
type Service struct {
	entries   entryStatsRepo
	rooms     roomRepo
	materials materialCounter
	threshold float64
	log       *slog.Logger
	now       func() time.Time
}

// NewService creates a new stats service. lowStockThreshold is the average
// total below which a (room, material) group counts as running low.
func NewService(
	log *slog.Logger,
	entries entryStatsRepo,
	rooms roomRepo,
	materials materialCounter,
	lowStockThreshold float64,
) *Service {
	return &Service{
		entries:   entries,
		rooms:     rooms,
		materials: materials,
		threshold: lowStockThreshold,
		log:       log.With("service", "stats"),
		now:       time.Now,
	}
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
