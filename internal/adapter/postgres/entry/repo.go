// Package entry implements the inventory Entry repository using PostgreSQL.
//
// Entries snapshot the room and material names at write time, so the
// aggregate queries below group and join by name rather than by id. A room
// or material deleted later leaves its entries intact under the old name.
package entry

import (
	"context"
	"fmt"
	"math"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/jackc/pgx/v5/pgxpool"

	postgres "github.com/heartmarshall/founty-inventory/internal/adapter/postgres"
	"github.com/heartmarshall/founty-inventory/internal/domain"
)

// Repo provides entry persistence and reporting queries.
type Repo struct {
	pool *pgxpool.Pool
	sb   sq.StatementBuilderType
}

// New creates a new entry repository.
func New(pool *pgxpool.Pool) *Repo {
	return &Repo{
		pool: pool,
		sb:   sq.StatementBuilder.PlaceholderFormat(sq.Dollar),
	}
}

const insertSQL = `
INSERT INTO entries (id, user_id, room_name, material_name, color_id, total, broken, good, condition)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
RETURNING id, recorded_at`

// Insert stores a finished inventory entry. The good count is derived by the
// service layer; the table CHECK constraints back it up.
func (r *Repo) Insert(ctx context.Context, e *domain.Entry) (*domain.Entry, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	id := e.ID
	if id == uuid.Nil {
		id = uuid.New()
	}

	var colorID pgtype.UUID
	if e.ColorID != nil {
		colorID = pgtype.UUID{Bytes: *e.ColorID, Valid: true}
	}

	stored := *e
	stored.ID = id
	err := q.QueryRow(ctx, insertSQL,
		id, e.UserID, e.RoomName, e.MaterialName, colorID,
		e.Total, e.Broken, e.Good, e.Condition,
	).Scan(&stored.ID, &stored.RecordedAt)
	if err != nil {
		return nil, postgres.MapError(err, "entry", e.RoomName)
	}

	return &stored, nil
}

// ---------------------------------------------------------------------------
// Export
// ---------------------------------------------------------------------------

const exportSQL = `
SELECT u.display_name, e.room_name, e.material_name,
       e.total, e.broken, e.good, e.condition,
       COALESCE(r.location, ''), e.recorded_at
FROM entries e
JOIN users u ON u.id = e.user_id
LEFT JOIN rooms r ON r.name = e.room_name
ORDER BY e.recorded_at DESC`

// ExportRows returns every entry joined with its author and, when the room
// still exists, the room location. Newest first.
func (r *Repo) ExportRows(ctx context.Context) ([]*domain.ExportRow, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	rows, err := q.Query(ctx, exportSQL)
	if err != nil {
		return nil, fmt.Errorf("export entries: %w", err)
	}
	defer rows.Close()

	result := []*domain.ExportRow{}
	for rows.Next() {
		var row domain.ExportRow
		err := rows.Scan(&row.User, &row.Room, &row.Material,
			&row.Total, &row.Broken, &row.Good, &row.Condition,
			&row.Location, &row.RecordedAt)
		if err != nil {
			return nil, fmt.Errorf("export entries: %w", err)
		}
		result = append(result, &row)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("export entries: %w", err)
	}

	return result, nil
}

// ---------------------------------------------------------------------------
// Dashboard aggregates
// ---------------------------------------------------------------------------

const totalsSQL = `
SELECT count(*),
       COALESCE(sum(total), 0),
       COALESCE(sum(broken), 0),
       COALESCE(sum(good), 0)
FROM entries`

// AggregateTotals returns entry count and item sums over all entries.
func (r *Repo) AggregateTotals(ctx context.Context) (*domain.EntryTotals, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	var t domain.EntryTotals
	err := q.QueryRow(ctx, totalsSQL).Scan(&t.Entries, &t.Items, &t.Broken, &t.Good)
	if err != nil {
		return nil, fmt.Errorf("aggregate totals: %w", err)
	}

	return &t, nil
}

const distinctUsersSQL = `SELECT count(DISTINCT user_id) FROM entries`

// DistinctUsers returns how many users have recorded at least one entry.
func (r *Repo) DistinctUsers(ctx context.Context) (int, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	var n int
	if err := q.QueryRow(ctx, distinctUsersSQL).Scan(&n); err != nil {
		return 0, fmt.Errorf("distinct users: %w", err)
	}

	return n, nil
}

// CountSince returns the number of entries recorded at or after the cutoff.
func (r *Repo) CountSince(ctx context.Context, cutoff time.Time) (int, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	query, args, err := r.sb.
		Select("count(*)").
		From("entries").
		Where(sq.GtOrEq{"recorded_at": cutoff}).
		ToSql()
	if err != nil {
		return 0, fmt.Errorf("build count since query: %w", err)
	}

	var n int
	if err := q.QueryRow(ctx, query, args...).Scan(&n); err != nil {
		return 0, fmt.Errorf("count since: %w", err)
	}

	return n, nil
}

const topRoomsSQL = `
SELECT room_name, sum(broken), sum(total)
FROM entries
GROUP BY room_name
HAVING sum(total) > 0
ORDER BY sum(broken)::float / sum(total) DESC
LIMIT $1`

// TopProblematicRooms returns rooms ranked by broken share, worst first.
// Rooms whose entries sum to zero items are skipped.
func (r *Repo) TopProblematicRooms(ctx context.Context, limit int) ([]*domain.RoomRanking, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	rows, err := q.Query(ctx, topRoomsSQL, limit)
	if err != nil {
		return nil, fmt.Errorf("top rooms: %w", err)
	}
	defer rows.Close()

	result := []*domain.RoomRanking{}
	for rows.Next() {
		var rr domain.RoomRanking
		if err := rows.Scan(&rr.Room, &rr.Broken, &rr.Total); err != nil {
			return nil, fmt.Errorf("top rooms: %w", err)
		}
		if rr.Total > 0 {
			rr.BrokenPct = round2(float64(rr.Broken) / float64(rr.Total) * 100)
		}
		result = append(result, &rr)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("top rooms: %w", err)
	}

	return result, nil
}

const topMaterialsSQL = `
SELECT e.material_name, COALESCE(m.emoji, '📦'), count(*), sum(e.total), sum(e.broken)
FROM entries e
LEFT JOIN materials m ON m.name = e.material_name
GROUP BY e.material_name, m.emoji
ORDER BY count(*) DESC
LIMIT $1`

// TopMaterials returns materials ranked by how often they were inventoried.
func (r *Repo) TopMaterials(ctx context.Context, limit int) ([]*domain.MaterialRanking, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	rows, err := q.Query(ctx, topMaterialsSQL, limit)
	if err != nil {
		return nil, fmt.Errorf("top materials: %w", err)
	}
	defer rows.Close()

	result := []*domain.MaterialRanking{}
	for rows.Next() {
		var mr domain.MaterialRanking
		if err := rows.Scan(&mr.Material, &mr.Emoji, &mr.Entries, &mr.Total, &mr.Broken); err != nil {
			return nil, fmt.Errorf("top materials: %w", err)
		}
		result = append(result, &mr)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("top materials: %w", err)
	}

	return result, nil
}

const conditionCountsSQL = `
SELECT condition, count(*)
FROM entries
GROUP BY condition
ORDER BY count(*) DESC`

// ConditionCounts returns the histogram of recorded conditions.
func (r *Repo) ConditionCounts(ctx context.Context) ([]*domain.ConditionCount, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	rows, err := q.Query(ctx, conditionCountsSQL)
	if err != nil {
		return nil, fmt.Errorf("condition counts: %w", err)
	}
	defer rows.Close()

	result := []*domain.ConditionCount{}
	for rows.Next() {
		var cc domain.ConditionCount
		if err := rows.Scan(&cc.Condition, &cc.Count); err != nil {
			return nil, fmt.Errorf("condition counts: %w", err)
		}
		result = append(result, &cc)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("condition counts: %w", err)
	}

	return result, nil
}

// ---------------------------------------------------------------------------
// Room detail
// ---------------------------------------------------------------------------

const roomTotalsSQL = `
SELECT count(*),
       COALESCE(sum(total), 0),
       COALESCE(sum(broken), 0),
       COALESCE(sum(good), 0)
FROM entries
WHERE room_name = $1`

const roomMaterialsSQL = `
SELECT e.material_name, COALESCE(m.emoji, '📦'),
       sum(e.total), sum(e.broken), sum(e.good)
FROM entries e
LEFT JOIN materials m ON m.name = e.material_name
WHERE e.room_name = $1
GROUP BY e.material_name, m.emoji
ORDER BY sum(e.total) DESC`

// RoomDetail aggregates one room's entries with a per-material breakdown.
// A room with no entries yields zero counters, not an error.
func (r *Repo) RoomDetail(ctx context.Context, roomName string) (*domain.RoomDetail, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	detail := &domain.RoomDetail{Room: roomName, Materials: []domain.MaterialBreakdown{}}
	err := q.QueryRow(ctx, roomTotalsSQL, roomName).
		Scan(&detail.EntryCount, &detail.Total, &detail.Broken, &detail.Good)
	if err != nil {
		return nil, fmt.Errorf("room detail %s: %w", roomName, err)
	}
	if detail.Total > 0 {
		detail.BrokenPct = round2(float64(detail.Broken) / float64(detail.Total) * 100)
	}

	rows, err := q.Query(ctx, roomMaterialsSQL, roomName)
	if err != nil {
		return nil, fmt.Errorf("room detail %s: %w", roomName, err)
	}
	defer rows.Close()

	for rows.Next() {
		var mb domain.MaterialBreakdown
		if err := rows.Scan(&mb.Material, &mb.Emoji, &mb.Total, &mb.Broken, &mb.Good); err != nil {
			return nil, fmt.Errorf("room detail %s: %w", roomName, err)
		}
		detail.Materials = append(detail.Materials, mb)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("room detail %s: %w", roomName, err)
	}

	return detail, nil
}

// ---------------------------------------------------------------------------
// Low stock and search
// ---------------------------------------------------------------------------

// LowStock groups entries by room and material and flags groups whose broken
// share exceeds 20% or whose average total falls below the threshold.
func (r *Repo) LowStock(ctx context.Context, threshold float64) ([]*domain.LowStockGroup, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	query, args, err := r.sb.
		Select(
			"room_name",
			"material_name",
			"avg(total)",
			"avg(broken)",
			"CASE WHEN sum(total) > 0 THEN sum(broken)::float / sum(total) * 100 ELSE 0 END AS broken_pct",
		).
		From("entries").
		GroupBy("room_name", "material_name").
		Having("sum(broken)::float / NULLIF(sum(total), 0) * 100 > 20 OR avg(total) < ?", threshold).
		OrderBy("broken_pct DESC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build low stock query: %w", err)
	}

	rows, err := q.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("low stock: %w", err)
	}
	defer rows.Close()

	result := []*domain.LowStockGroup{}
	for rows.Next() {
		var g domain.LowStockGroup
		if err := rows.Scan(&g.Room, &g.Material, &g.AvgTotal, &g.AvgBroken, &g.BrokenPct); err != nil {
			return nil, fmt.Errorf("low stock: %w", err)
		}
		g.AvgTotal = round2(g.AvgTotal)
		g.AvgBroken = round2(g.AvgBroken)
		g.BrokenPct = round2(g.BrokenPct)
		result = append(result, &g)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("low stock: %w", err)
	}

	return result, nil
}

// Search returns entries whose room or material name matches the query,
// newest first, capped at limit.
func (r *Repo) Search(ctx context.Context, pattern string, limit int) ([]*domain.SearchResult, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	like := "%" + pattern + "%"
	query, args, err := r.sb.
		Select("room_name", "material_name", "total", "broken", "condition", "recorded_at").
		From("entries").
		Where(sq.Or{
			sq.ILike{"room_name": like},
			sq.ILike{"material_name": like},
		}).
		OrderBy("recorded_at DESC").
		Limit(uint64(limit)).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build search query: %w", err)
	}

	rows, err := q.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("search entries: %w", err)
	}
	defer rows.Close()

	result := []*domain.SearchResult{}
	for rows.Next() {
		var sr domain.SearchResult
		if err := rows.Scan(&sr.Room, &sr.Material, &sr.Total, &sr.Broken, &sr.Condition, &sr.RecordedAt); err != nil {
			return nil, fmt.Errorf("search entries: %w", err)
		}
		result = append(result, &sr)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("search entries: %w", err)
	}

	return result, nil
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
