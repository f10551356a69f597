package app

import (
	"context"
	"fmt"
	"log"
	"sync"
	"time"

	"github.com/example/kwonka/internal/core/monitor"
	"github.com/example/kwonka/internal/models"
	"github.com/example/kwonka/internal/ports/primary"
	"github.com/example/kwonka/internal/ports/secondary"
)

// EscalationServiceImpl implements the EscalationService interface.
//
// Delayed orders are a pull-only view; only orders past the critical
// threshold are pushed to admins, and the dedup ledger caps that at one
// broadcast per order while it stays pending. The ledger is pruned
// periodically so resolved orders do not pile up in memory.
type EscalationServiceImpl struct {
	orderRepo secondary.OrderRepository
	notifier  *Notifier
	registry  *AdminRegistry
	clock     secondary.Clock

	scanInterval    time.Duration
	cleanupInterval time.Duration

	mu     sync.Mutex
	ledger map[string]struct{} // order numbers already escalated
}

// NewEscalationService creates a new EscalationService with injected
// dependencies. Zero intervals fall back to the defaults (5 minute scan,
// 1 hour ledger cleanup).
func NewEscalationService(orderRepo secondary.OrderRepository, notifier *Notifier, registry *AdminRegistry, clock secondary.Clock, scanInterval, cleanupInterval time.Duration) *EscalationServiceImpl {
	if scanInterval <= 0 {
		scanInterval = 5 * time.Minute
	}
	if cleanupInterval <= 0 {
		cleanupInterval = time.Hour
	}
	return &EscalationServiceImpl{
		orderRepo:       orderRepo,
		notifier:        notifier,
		registry:        registry,
		clock:           clock,
		scanInterval:    scanInterval,
		cleanupInterval: cleanupInterval,
		ledger:          make(map[string]struct{}),
	}
}

// Subscribe adds an admin chat to escalation fan-out.
func (s *EscalationServiceImpl) Subscribe(chatID int64) {
	s.registry.Add(chatID)
}

// Unsubscribe removes an admin chat from escalation fan-out.
func (s *EscalationServiceImpl) Unsubscribe(chatID int64) {
	s.registry.Remove(chatID)
}

// Subscribers returns the chat IDs currently receiving escalations.
func (s *EscalationServiceImpl) Subscribers() []int64 {
	return s.registry.Snapshot()
}

// CheckOrders scans pending orders once and broadcasts an escalation for
// each order past the critical threshold that has not been escalated yet.
// Orders that are merely delayed never trigger a push; they show up in
// the DelayedOrders view instead.
func (s *EscalationServiceImpl) CheckOrders(ctx context.Context) ([]*primary.Escalation, error) {
	pending, err := s.pendingOrders(ctx)
	if err != nil {
		return nil, err
	}

	_, critical := monitor.Partition(pending, s.clock.Now())

	var raised []*primary.Escalation
	for _, d := range critical {
		if e := s.escalate(ctx, d); e != nil {
			raised = append(raised, e)
		}
	}
	return raised, nil
}

// escalate broadcasts one escalation unless the ledger already holds the
// order.
func (s *EscalationServiceImpl) escalate(ctx context.Context, d monitor.DelayedOrder) *primary.Escalation {
	s.mu.Lock()
	if _, sent := s.ledger[d.Order.OrderNumber]; sent {
		s.mu.Unlock()
		return nil
	}
	s.ledger[d.Order.OrderNumber] = struct{}{}
	s.mu.Unlock()

	text := fmt.Sprintf("Order #%s has been waiting %d minutes at %s.",
		d.Order.OrderNumber, d.WaitMinutes, d.Order.ShopCode)
	s.notifier.NotifyAdmins(ctx, s.registry.Snapshot(), text)

	return &primary.Escalation{
		OrderNumber: d.Order.OrderNumber,
		WaitMinutes: d.WaitMinutes,
		ShopCode:    d.Order.ShopCode,
	}
}

// DelayedOrders returns the pending orders currently past the delayed
// threshold, longest-waiting first.
func (s *EscalationServiceImpl) DelayedOrders(ctx context.Context) ([]*primary.DelayedOrder, error) {
	pending, err := s.pendingOrders(ctx)
	if err != nil {
		return nil, err
	}

	delayed, _ := monitor.Partition(pending, s.clock.Now())

	out := make([]*primary.DelayedOrder, 0, len(delayed))
	for _, d := range delayed {
		out = append(out, s.toDelayed(d, d.WaitMinutes >= monitor.CriticalThresholdMinutes))
	}
	return out, nil
}

// CleanupLedger drops ledger entries for orders that are no longer pending.
func (s *EscalationServiceImpl) CleanupLedger(ctx context.Context) error {
	pending, err := s.pendingOrders(ctx)
	if err != nil {
		return err
	}

	still := make(map[string]struct{}, len(pending))
	for _, o := range pending {
		still[o.OrderNumber] = struct{}{}
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	for number := range s.ledger {
		if _, ok := still[number]; !ok {
			delete(s.ledger, number)
		}
	}
	return nil
}

// Start runs the periodic scan and ledger cleanup until ctx is cancelled.
func (s *EscalationServiceImpl) Start(ctx context.Context) {
	scan := time.NewTicker(s.scanInterval)
	cleanup := time.NewTicker(s.cleanupInterval)
	defer scan.Stop()
	defer cleanup.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-scan.C:
			if _, err := s.CheckOrders(ctx); err != nil {
				log.Printf("escalation scan failed: %v", err)
			}
		case <-cleanup.C:
			if err := s.CleanupLedger(ctx); err != nil {
				log.Printf("escalation ledger cleanup failed: %v", err)
			}
		}
	}
}

func (s *EscalationServiceImpl) pendingOrders(ctx context.Context) ([]models.Order, error) {
	records, err := s.orderRepo.List(ctx, secondary.OrderFilters{
		Statuses: []string{models.OrderStatusPending},
	})
	if err != nil {
		return nil, fmt.Errorf("failed to list pending orders: %w", err)
	}

	orders := make([]models.Order, 0, len(records))
	for _, r := range records {
		orders = append(orders, models.Order{
			ID:          r.ID,
			OrderNumber: r.OrderNumber,
			CustomerID:  r.CustomerID,
			ShopCode:    r.ShopCode,
			Drink:       r.Drink,
			Size:        r.Size,
			MilkType:    r.MilkType,
			SyrupType:   r.SyrupType,
			TotalPrice:  r.TotalPrice,
			Status:      r.Status,
			CreatedAt:   r.CreatedAt,
			UpdatedAt:   r.UpdatedAt,
		})
	}
	return orders, nil
}

func (s *EscalationServiceImpl) toDelayed(d monitor.DelayedOrder, critical bool) *primary.DelayedOrder {
	return &primary.DelayedOrder{
		Order: &primary.Order{
			OrderNumber: d.Order.OrderNumber,
			CustomerID:  d.Order.CustomerID,
			ShopCode:    d.Order.ShopCode,
			Drink:       d.Order.Drink,
			Size:        d.Order.Size,
			MilkType:    d.Order.MilkType,
			SyrupType:   d.Order.SyrupType,
			TotalPrice:  d.Order.TotalPrice,
			Status:      d.Order.Status,
			CreatedAt:   d.Order.CreatedAt.Format(time.RFC3339),
			UpdatedAt:   d.Order.UpdatedAt.Format(time.RFC3339),
		},
		WaitMinutes: d.WaitMinutes,
		Critical:    critical,
	}
}
