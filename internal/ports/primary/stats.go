package primary

import "context"

// StatsService defines the primary port for order statistics.
type StatsService interface {
	// DailyStats aggregates the completed orders created on the given day
	// (YYYY-MM-DD, empty for today), grouped per shop. Every active shop
	// appears in the result even when nothing was completed.
	DailyStats(ctx context.Context, date string) (*DailyStats, error)
}

// DailyStats is the per-day aggregate across all shops.
type DailyStats struct {
	Date        string // YYYY-MM-DD
	TotalOrders int
	TotalTenge  int64
	Shops       []*ShopStats
}

// ShopStats is the per-shop slice of a daily aggregate. Count and revenue
// cover completed orders only.
type ShopStats struct {
	ShopCode   string
	ShopName   string
	Orders     int
	TotalTenge int64
}
