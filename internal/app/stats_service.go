package app

import (
	"context"
	"fmt"
	"time"

	"github.com/example/kwonka/internal/models"
	"github.com/example/kwonka/internal/ports/primary"
	"github.com/example/kwonka/internal/ports/secondary"
)

// StatsServiceImpl implements the StatsService interface.
type StatsServiceImpl struct {
	orderRepo secondary.OrderRepository
	shopRepo  secondary.ShopRepository
	clock     secondary.Clock
}

// NewStatsService creates a new StatsService with injected dependencies.
func NewStatsService(orderRepo secondary.OrderRepository, shopRepo secondary.ShopRepository, clock secondary.Clock) *StatsServiceImpl {
	return &StatsServiceImpl{
		orderRepo: orderRepo,
		shopRepo:  shopRepo,
		clock:     clock,
	}
}

// DailyStats aggregates the completed orders created on the given day,
// grouped per shop. Every active shop appears in the result, zero-valued
// when nothing was completed that day.
func (s *StatsServiceImpl) DailyStats(ctx context.Context, date string) (*primary.DailyStats, error) {
	if date == "" {
		date = s.clock.Now().Format("2006-01-02")
	} else if _, err := time.Parse("2006-01-02", date); err != nil {
		return nil, fmt.Errorf("invalid date %q, expected YYYY-MM-DD", date)
	}

	shops, err := s.shopRepo.ListActive(ctx)
	if err != nil {
		return nil, err
	}

	orders, err := s.orderRepo.List(ctx, secondary.OrderFilters{
		Statuses: []string{models.OrderStatusCompleted},
	})
	if err != nil {
		return nil, err
	}

	byShop := make(map[string]*primary.ShopStats, len(shops))
	stats := &primary.DailyStats{Date: date}
	for _, shop := range shops {
		ss := &primary.ShopStats{ShopCode: shop.Code, ShopName: shop.Name}
		byShop[shop.Code] = ss
		stats.Shops = append(stats.Shops, ss)
	}

	for _, order := range orders {
		if order.CreatedAt.Format("2006-01-02") != date {
			continue
		}

		stats.TotalOrders++
		stats.TotalTenge += order.TotalPrice

		ss, ok := byShop[order.ShopCode]
		if !ok {
			// Orders taken by a shop deactivated later still count.
			ss = &primary.ShopStats{ShopCode: order.ShopCode, ShopName: order.ShopCode}
			byShop[order.ShopCode] = ss
			stats.Shops = append(stats.Shops, ss)
		}
		ss.Orders++
		ss.TotalTenge += order.TotalPrice
	}

	return stats, nil
}
