package stats

import (
	"context"
	"fmt"

	"github.com/heartmarshall/founty-inventory/internal/domain"
)

// Dashboard assembles the global statistics screen: totals, percentages,
// the problematic-rooms and top-materials rankings, and the condition
// histogram. Percentages are 0 when no items have been counted yet.
func (s *Service) Dashboard(ctx context.Context) (*domain.Dashboard, error) {
	totals, err := s.entries.AggregateTotals(ctx)
	if err != nil {
		return nil, fmt.Errorf("aggregate totals: %w", err)
	}

	d := &domain.Dashboard{
		TotalEntries: totals.Entries,
		TotalItems:   totals.Items,
		TotalBroken:  totals.Broken,
		TotalGood:    totals.Good,
	}
	if totals.Items > 0 {
		d.BrokenPct = round2(float64(totals.Broken) / float64(totals.Items) * 100)
		d.GoodPct = round2(float64(totals.Good) / float64(totals.Items) * 100)
	}

	if d.RoomCount, err = s.rooms.Count(ctx); err != nil {
		return nil, fmt.Errorf("count rooms: %w", err)
	}
	if d.MaterialCount, err = s.materials.Count(ctx); err != nil {
		return nil, fmt.Errorf("count materials: %w", err)
	}
	if d.ActiveUsers, err = s.entries.DistinctUsers(ctx); err != nil {
		return nil, fmt.Errorf("distinct users: %w", err)
	}
	if d.Entries24h, err = s.entries.CountSince(ctx, s.now().Add(-recentWindow)); err != nil {
		return nil, fmt.Errorf("count recent: %w", err)
	}

	rooms, err := s.entries.TopProblematicRooms(ctx, RankingSize)
	if err != nil {
		return nil, fmt.Errorf("top rooms: %w", err)
	}
	d.ProblematicRooms = make([]domain.RoomRanking, 0, len(rooms))
	for _, r := range rooms {
		d.ProblematicRooms = append(d.ProblematicRooms, *r)
	}

	materials, err := s.entries.TopMaterials(ctx, RankingSize)
	if err != nil {
		return nil, fmt.Errorf("top materials: %w", err)
	}
	d.TopMaterials = make([]domain.MaterialRanking, 0, len(materials))
	for _, m := range materials {
		d.TopMaterials = append(d.TopMaterials, *m)
	}

	conditions, err := s.entries.ConditionCounts(ctx)
	if err != nil {
		return nil, fmt.Errorf("condition counts: %w", err)
	}
	d.Conditions = make([]domain.ConditionCount, 0, len(conditions))
	for _, c := range conditions {
		d.Conditions = append(d.Conditions, *c)
	}

	return d, nil
}
