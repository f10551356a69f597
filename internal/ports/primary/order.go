// Package primary defines the primary ports (driving adapters) for the application.
// These are the interfaces through which the outside world drives the application.
package primary

import "context"

// OrderService defines the primary port for order lifecycle operations.
// It is the single authority for order numbering and status transitions.
type OrderService interface {
	// CreateOrder persists a new order with the next sequential order number
	// and returns it in PENDING status.
	CreateOrder(ctx context.Context, req CreateOrderRequest) (*Order, error)

	// GetOrder retrieves an order by its order number.
	GetOrder(ctx context.Context, number string) (*Order, error)

	// ListOrders lists orders with optional filters, newest first.
	ListOrders(ctx context.Context, filters OrderFilters) ([]*Order, error)

	// AcceptOrder moves a PENDING order to IN_PREPARATION and notifies the
	// customer that their drink is being prepared.
	AcceptOrder(ctx context.Context, number string) (*Order, error)

	// CompleteOrder moves an IN_PREPARATION order to READY and notifies the
	// customer that their drink is waiting.
	CompleteOrder(ctx context.Context, number string) (*Order, error)

	// PickUpOrder moves a READY order to COMPLETED.
	PickUpOrder(ctx context.Context, number string) (*Order, error)

	// CancelOrder moves a PENDING or IN_PREPARATION order to CANCELLED.
	CancelOrder(ctx context.Context, number string) (*Order, error)
}

// CreateOrderRequest carries the selections needed to place an order.
type CreateOrderRequest struct {
	CustomerID int64
	ShopCode   string
	Drink      string
	Size       string
	MilkType   string // empty for no milk add-on
	SyrupType  string // empty for no syrup add-on
}

// Order represents an order entity at the port boundary.
type Order struct {
	OrderNumber string
	CustomerID  int64
	ShopCode    string
	ShopName    string
	Drink       string
	Size        string
	MilkType    string
	SyrupType   string
	TotalPrice  int64 // tenge
	Status      string
	CreatedAt   string
	UpdatedAt   string
}

// OrderFilters contains filter options for listing orders.
type OrderFilters struct {
	Statuses   []string
	ShopCode   string
	CustomerID int64
	Limit      int
}
