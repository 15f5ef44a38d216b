package domain

import "time"

// EntryTotals holds the whole-table sums the dashboard starts from.
type EntryTotals struct {
	Entries int
	Items   int
	Broken  int
	Good    int
}

// Dashboard is the global aggregate over all entries.
type Dashboard struct {
	TotalEntries  int
	TotalItems    int
	TotalBroken   int
	TotalGood     int
	BrokenPct     float64 // round(100*broken/items, 2); 0 when items == 0
	GoodPct       float64
	RoomCount     int
	MaterialCount int
	ActiveUsers   int
	Entries24h    int

	ProblematicRooms []RoomRanking      // top 5 by broken percentage, rooms with total == 0 excluded
	TopMaterials     []MaterialRanking  // top 5 by entry count
	Conditions       []ConditionCount   // histogram, count descending
}

// RoomRanking is one row of the "most problematic rooms" ranking.
type RoomRanking struct {
	Room      string
	Broken    int
	Total     int
	BrokenPct float64
}

// MaterialRanking is one row of the "most tracked materials" ranking.
type MaterialRanking struct {
	Material string
	Emoji    string
	Entries  int
	Total    int
	Broken   int
}

// ConditionCount is one bucket of the condition-label histogram.
type ConditionCount struct {
	Condition string
	Count     int
}

// RoomDetail is the per-room drill-down.
type RoomDetail struct {
	Room       string
	EntryCount int
	Total      int
	Broken     int
	Good       int
	BrokenPct  float64 // 0 when Total == 0
	Materials  []MaterialBreakdown // ordered by total descending
}

// MaterialBreakdown is one material's aggregate within a room.
type MaterialBreakdown struct {
	Material string
	Emoji    string
	Total    int
	Broken   int
	Good     int
}

// LowStockGroup is a (room, material) pair flagged by the low-stock report:
// avgBroken/avgTotal > 20% or avgTotal below the configured threshold.
type LowStockGroup struct {
	Room      string
	Material  string
	AvgTotal  float64
	AvgBroken float64
	BrokenPct float64
}

// SearchResult is one row of the admin entry search.
type SearchResult struct {
	Room       string
	Material   string
	Total      int
	Broken     int
	Condition  string
	RecordedAt time.Time
}
