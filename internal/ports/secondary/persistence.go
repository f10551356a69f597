// Package secondary defines the secondary ports (driven adapters) for the application.
// These are the interfaces through which the application drives external systems.
package secondary

import (
	"context"
	"time"
)

// OrderRepository defines the secondary port for order persistence.
type OrderRepository interface {
	// Create persists a new order.
	Create(ctx context.Context, order *OrderRecord) error

	// GetByNumber retrieves an order by its order number.
	GetByNumber(ctx context.Context, number string) (*OrderRecord, error)

	// List retrieves orders matching the given filters, newest first.
	List(ctx context.Context, filters OrderFilters) ([]*OrderRecord, error)

	// UpdateStatus updates the status of an order identified by number.
	UpdateStatus(ctx context.Context, number, status string, updatedAt time.Time) error

	// MaxOrderNumber returns the highest order number assigned so far,
	// or 0 when no orders exist.
	MaxOrderNumber(ctx context.Context) (int, error)
}

// OrderRecord represents an order as stored in persistence.
type OrderRecord struct {
	ID          int64
	OrderNumber string
	CustomerID  int64
	ShopCode    string // FK to coffee_shops
	Drink       string
	Size        string
	MilkType    string // empty when no milk add-on
	SyrupType   string // empty when no syrup add-on
	TotalPrice  int64  // tenge
	Status      string
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// OrderFilters contains filter options for querying orders.
type OrderFilters struct {
	Statuses   []string
	ShopCode   string
	CustomerID int64
	Limit      int
}

// ShopRepository defines the secondary port for coffee shop persistence.
type ShopRepository interface {
	// Create persists a new coffee shop.
	Create(ctx context.Context, shop *ShopRecord) error

	// GetByCode retrieves a coffee shop by its code.
	GetByCode(ctx context.Context, code string) (*ShopRecord, error)

	// ListActive retrieves all active coffee shops ordered by name.
	ListActive(ctx context.Context) ([]*ShopRecord, error)

	// SetActive marks a coffee shop active or inactive.
	SetActive(ctx context.Context, code string, active bool) error
}

// ShopRecord represents a coffee shop as stored in persistence.
type ShopRecord struct {
	ID        int64
	Code      string
	Name      string
	Address   string
	Active    bool
	CreatedAt time.Time
}
