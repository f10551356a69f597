package app

import (
	"context"
	"fmt"
	"strconv"
	"sync"
	"time"

	"github.com/example/kwonka/internal/core/menu"
	"github.com/example/kwonka/internal/models"
	"github.com/example/kwonka/internal/ports/primary"
	"github.com/example/kwonka/internal/ports/secondary"
)

// OrderServiceImpl implements the OrderService interface. It is the single
// writer of order numbers and status transitions; numbering is serialized on
// an internal mutex so concurrent orders can never share a number.
type OrderServiceImpl struct {
	orderRepo secondary.OrderRepository
	shopRepo  secondary.ShopRepository
	notifier  *Notifier
	logWriter secondary.LogWriter
	clock     secondary.Clock

	numberMu sync.Mutex
}

// NewOrderService creates a new OrderService with injected dependencies.
func NewOrderService(orderRepo secondary.OrderRepository, shopRepo secondary.ShopRepository, notifier *Notifier, logWriter secondary.LogWriter, clock secondary.Clock) *OrderServiceImpl {
	return &OrderServiceImpl{
		orderRepo: orderRepo,
		shopRepo:  shopRepo,
		notifier:  notifier,
		logWriter: logWriter,
		clock:     clock,
	}
}

// CreateOrder persists a new order with the next sequential order number.
func (s *OrderServiceImpl) CreateOrder(ctx context.Context, req primary.CreateOrderRequest) (*primary.Order, error) {
	shop, err := s.shopRepo.GetByCode(ctx, req.ShopCode)
	if err != nil {
		return nil, fmt.Errorf("shop not found: %w", err)
	}
	if !shop.Active {
		return nil, fmt.Errorf("shop %s is not active", req.ShopCode)
	}

	price, err := menu.Price(req.Drink, req.Size, req.MilkType != "", req.SyrupType != "")
	if err != nil {
		return nil, fmt.Errorf("invalid selection: %w", err)
	}

	now := s.clock.Now()
	record := &secondary.OrderRecord{
		CustomerID: req.CustomerID,
		ShopCode:   req.ShopCode,
		Drink:      req.Drink,
		Size:       req.Size,
		MilkType:   req.MilkType,
		SyrupType:  req.SyrupType,
		TotalPrice: price,
		Status:     models.OrderStatusPending,
		CreatedAt:  now,
		UpdatedAt:  now,
	}

	s.numberMu.Lock()
	max, err := s.orderRepo.MaxOrderNumber(ctx)
	if err != nil {
		s.numberMu.Unlock()
		return nil, fmt.Errorf("failed to assign order number: %w", err)
	}
	record.OrderNumber = strconv.Itoa(max + 1)
	err = s.orderRepo.Create(ctx, record)
	s.numberMu.Unlock()
	if err != nil {
		return nil, fmt.Errorf("failed to create order: %w", err)
	}

	if err := s.logWriter.LogCreate(ctx, "order", record.OrderNumber); err != nil {
		return nil, fmt.Errorf("failed to log order creation: %w", err)
	}

	s.notifier.NotifyBarista(ctx, record.ShopCode,
		fmt.Sprintf("New order #%s: %s, %s. Total %d tenge.", record.OrderNumber, record.Drink, record.Size, record.TotalPrice))

	return s.toOrder(record, shop.Name), nil
}

// GetOrder retrieves an order by its order number.
func (s *OrderServiceImpl) GetOrder(ctx context.Context, number string) (*primary.Order, error) {
	record, err := s.orderRepo.GetByNumber(ctx, number)
	if err != nil {
		return nil, err
	}
	return s.toOrder(record, s.shopName(ctx, record.ShopCode)), nil
}

// ListOrders lists orders with optional filters, newest first.
func (s *OrderServiceImpl) ListOrders(ctx context.Context, filters primary.OrderFilters) ([]*primary.Order, error) {
	records, err := s.orderRepo.List(ctx, secondary.OrderFilters{
		Statuses:   filters.Statuses,
		ShopCode:   filters.ShopCode,
		CustomerID: filters.CustomerID,
		Limit:      filters.Limit,
	})
	if err != nil {
		return nil, err
	}

	names := map[string]string{}
	orders := make([]*primary.Order, 0, len(records))
	for _, record := range records {
		name, ok := names[record.ShopCode]
		if !ok {
			name = s.shopName(ctx, record.ShopCode)
			names[record.ShopCode] = name
		}
		orders = append(orders, s.toOrder(record, name))
	}
	return orders, nil
}

// AcceptOrder moves a PENDING order to IN_PREPARATION.
func (s *OrderServiceImpl) AcceptOrder(ctx context.Context, number string) (*primary.Order, error) {
	order, err := s.transition(ctx, number, models.OrderStatusInPreparation, models.OrderStatusPending)
	if err != nil {
		return nil, err
	}
	s.notifier.NotifyCustomer(ctx, order.CustomerID,
		fmt.Sprintf("Your order #%s is being prepared.", order.OrderNumber))
	return order, nil
}

// CompleteOrder moves an IN_PREPARATION order to READY.
func (s *OrderServiceImpl) CompleteOrder(ctx context.Context, number string) (*primary.Order, error) {
	order, err := s.transition(ctx, number, models.OrderStatusReady, models.OrderStatusInPreparation)
	if err != nil {
		return nil, err
	}
	s.notifier.NotifyCustomer(ctx, order.CustomerID,
		fmt.Sprintf("Your order #%s is ready for pickup at %s.", order.OrderNumber, order.ShopName))
	return order, nil
}

// PickUpOrder moves a READY order to COMPLETED.
func (s *OrderServiceImpl) PickUpOrder(ctx context.Context, number string) (*primary.Order, error) {
	return s.transition(ctx, number, models.OrderStatusCompleted, models.OrderStatusReady)
}

// CancelOrder moves a PENDING or IN_PREPARATION order to CANCELLED.
func (s *OrderServiceImpl) CancelOrder(ctx context.Context, number string) (*primary.Order, error) {
	return s.transition(ctx, number, models.OrderStatusCancelled, models.OrderStatusPending, models.OrderStatusInPreparation)
}

// transition validates the current status against the allowed set, applies
// the new status, and writes the audit entry.
func (s *OrderServiceImpl) transition(ctx context.Context, number, to string, allowedFrom ...string) (*primary.Order, error) {
	record, err := s.orderRepo.GetByNumber(ctx, number)
	if err != nil {
		return nil, err
	}

	ok := false
	for _, from := range allowedFrom {
		if record.Status == from {
			ok = true
			break
		}
	}
	if !ok {
		return nil, fmt.Errorf("order %s is %s, cannot move to %s", number, record.Status, to)
	}

	now := s.clock.Now()
	if err := s.orderRepo.UpdateStatus(ctx, number, to, now); err != nil {
		return nil, err
	}

	if err := s.logWriter.LogStatusChange(ctx, "order", number, record.Status, to); err != nil {
		return nil, fmt.Errorf("failed to log status change: %w", err)
	}

	record.Status = to
	record.UpdatedAt = now
	return s.toOrder(record, s.shopName(ctx, record.ShopCode)), nil
}

// shopName resolves a shop code to its display name, falling back to the
// code when the shop row is gone.
func (s *OrderServiceImpl) shopName(ctx context.Context, code string) string {
	shop, err := s.shopRepo.GetByCode(ctx, code)
	if err != nil {
		return code
	}
	return shop.Name
}

func (s *OrderServiceImpl) toOrder(record *secondary.OrderRecord, shopName string) *primary.Order {
	return &primary.Order{
		OrderNumber: record.OrderNumber,
		CustomerID:  record.CustomerID,
		ShopCode:    record.ShopCode,
		ShopName:    shopName,
		Drink:       record.Drink,
		Size:        record.Size,
		MilkType:    record.MilkType,
		SyrupType:   record.SyrupType,
		TotalPrice:  record.TotalPrice,
		Status:      record.Status,
		CreatedAt:   record.CreatedAt.Format(time.RFC3339),
		UpdatedAt:   record.UpdatedAt.Format(time.RFC3339),
	}
}
