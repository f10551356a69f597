package app

import (
	"context"
	"fmt"
	"strings"

	"github.com/example/kwonka/internal/ports/primary"
	"github.com/example/kwonka/internal/ports/secondary"
)

// ShopServiceImpl implements the ShopService interface.
type ShopServiceImpl struct {
	shopRepo secondary.ShopRepository
}

// NewShopService creates a new ShopService with injected dependencies.
func NewShopService(shopRepo secondary.ShopRepository) *ShopServiceImpl {
	return &ShopServiceImpl{shopRepo: shopRepo}
}

// AddShop registers a new coffee shop.
func (s *ShopServiceImpl) AddShop(ctx context.Context, req primary.AddShopRequest) (*primary.Shop, error) {
	code := strings.ToUpper(strings.TrimSpace(req.Code))
	if code == "" {
		return nil, fmt.Errorf("shop code is required")
	}
	if strings.TrimSpace(req.Name) == "" {
		return nil, fmt.Errorf("shop name is required")
	}

	record := &secondary.ShopRecord{
		Code:    code,
		Name:    strings.TrimSpace(req.Name),
		Address: strings.TrimSpace(req.Address),
		Active:  true,
	}
	if err := s.shopRepo.Create(ctx, record); err != nil {
		return nil, err
	}

	return toShop(record), nil
}

// GetShop retrieves a coffee shop by code.
func (s *ShopServiceImpl) GetShop(ctx context.Context, code string) (*primary.Shop, error) {
	record, err := s.shopRepo.GetByCode(ctx, strings.ToUpper(code))
	if err != nil {
		return nil, err
	}
	return toShop(record), nil
}

// ListShops lists all active coffee shops.
func (s *ShopServiceImpl) ListShops(ctx context.Context) ([]*primary.Shop, error) {
	records, err := s.shopRepo.ListActive(ctx)
	if err != nil {
		return nil, err
	}

	shops := make([]*primary.Shop, 0, len(records))
	for _, record := range records {
		shops = append(shops, toShop(record))
	}
	return shops, nil
}

// DeactivateShop removes a coffee shop from the active roster.
func (s *ShopServiceImpl) DeactivateShop(ctx context.Context, code string) error {
	return s.shopRepo.SetActive(ctx, strings.ToUpper(code), false)
}

func toShop(record *secondary.ShopRecord) *primary.Shop {
	return &primary.Shop{
		Code:    record.Code,
		Name:    record.Name,
		Address: record.Address,
		Active:  record.Active,
	}
}
