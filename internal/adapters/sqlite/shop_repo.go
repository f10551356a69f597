package sqlite

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/example/kwonka/internal/ports/secondary"
)

// ShopRepository implements secondary.ShopRepository with SQLite.
type ShopRepository struct {
	db *sql.DB
}

// NewShopRepository creates a new SQLite shop repository.
func NewShopRepository(db *sql.DB) *ShopRepository {
	return &ShopRepository{db: db}
}

// Create persists a new coffee shop.
func (r *ShopRepository) Create(ctx context.Context, shop *secondary.ShopRecord) error {
	res, err := r.db.ExecContext(ctx,
		`INSERT INTO coffee_shops (code, name, address, active) VALUES (?, ?, ?, ?)`,
		shop.Code,
		shop.Name,
		shop.Address,
		shop.Active,
	)
	if err != nil {
		return fmt.Errorf("failed to create shop: %w", err)
	}

	id, err := res.LastInsertId()
	if err != nil {
		return fmt.Errorf("failed to read shop id: %w", err)
	}
	shop.ID = id

	return nil
}

// GetByCode retrieves a coffee shop by its code.
func (r *ShopRepository) GetByCode(ctx context.Context, code string) (*secondary.ShopRecord, error) {
	record := &secondary.ShopRecord{}
	err := r.db.QueryRowContext(ctx,
		`SELECT id, code, name, address, active, created_at FROM coffee_shops WHERE code = ?`,
		code,
	).Scan(&record.ID, &record.Code, &record.Name, &record.Address, &record.Active, &record.CreatedAt)

	if err == sql.ErrNoRows {
		return nil, fmt.Errorf("shop %s not found", code)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get shop: %w", err)
	}

	return record, nil
}

// ListActive retrieves all active coffee shops ordered by name.
func (r *ShopRepository) ListActive(ctx context.Context) ([]*secondary.ShopRecord, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT id, code, name, address, active, created_at FROM coffee_shops WHERE active = 1 ORDER BY name`,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to list shops: %w", err)
	}
	defer rows.Close()

	var records []*secondary.ShopRecord
	for rows.Next() {
		record := &secondary.ShopRecord{}
		if err := rows.Scan(&record.ID, &record.Code, &record.Name, &record.Address, &record.Active, &record.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan shop: %w", err)
		}
		records = append(records, record)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate shops: %w", err)
	}

	return records, nil
}

// SetActive marks a coffee shop active or inactive.
func (r *ShopRepository) SetActive(ctx context.Context, code string, active bool) error {
	res, err := r.db.ExecContext(ctx,
		`UPDATE coffee_shops SET active = ? WHERE code = ?`,
		active, code,
	)
	if err != nil {
		return fmt.Errorf("failed to update shop: %w", err)
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to check update result: %w", err)
	}
	if affected == 0 {
		return fmt.Errorf("shop %s not found", code)
	}

	return nil
}
