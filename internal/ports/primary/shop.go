package primary

import "context"

// ShopService defines the primary port for coffee shop management.
type ShopService interface {
	// AddShop registers a new coffee shop.
	AddShop(ctx context.Context, req AddShopRequest) (*Shop, error)

	// GetShop retrieves a coffee shop by code.
	GetShop(ctx context.Context, code string) (*Shop, error)

	// ListShops lists all active coffee shops.
	ListShops(ctx context.Context) ([]*Shop, error)

	// DeactivateShop removes a coffee shop from the active roster.
	DeactivateShop(ctx context.Context, code string) error
}

// AddShopRequest carries the fields for registering a coffee shop.
type AddShopRequest struct {
	Code    string
	Name    string
	Address string
}

// Shop represents a coffee shop at the port boundary.
type Shop struct {
	Code    string
	Name    string
	Address string
	Active  bool
}
