// Package sqlite contains SQLite implementations of repository interfaces.
package sqlite

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/example/kwonka/internal/ports/secondary"
)

// OrderRepository implements secondary.OrderRepository with SQLite.
type OrderRepository struct {
	db *sql.DB
}

// NewOrderRepository creates a new SQLite order repository.
func NewOrderRepository(db *sql.DB) *OrderRepository {
	return &OrderRepository{db: db}
}

const orderColumns = "id, order_number, customer_id, shop_code, drink, size, milk_type, syrup_type, total_price, status, created_at, updated_at"

// Create persists a new order.
func (r *OrderRepository) Create(ctx context.Context, order *secondary.OrderRecord) error {
	res, err := r.db.ExecContext(ctx,
		`INSERT INTO orders (order_number, customer_id, shop_code, drink, size, milk_type, syrup_type, total_price, status, created_at, updated_at) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		order.OrderNumber,
		order.CustomerID,
		order.ShopCode,
		order.Drink,
		order.Size,
		order.MilkType,
		order.SyrupType,
		order.TotalPrice,
		order.Status,
		order.CreatedAt,
		order.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to create order: %w", err)
	}

	id, err := res.LastInsertId()
	if err != nil {
		return fmt.Errorf("failed to read order id: %w", err)
	}
	order.ID = id

	return nil
}

// GetByNumber retrieves an order by its order number.
func (r *OrderRepository) GetByNumber(ctx context.Context, number string) (*secondary.OrderRecord, error) {
	record := &secondary.OrderRecord{}
	err := r.db.QueryRowContext(ctx,
		`SELECT `+orderColumns+` FROM orders WHERE order_number = ?`,
		number,
	).Scan(
		&record.ID, &record.OrderNumber, &record.CustomerID, &record.ShopCode,
		&record.Drink, &record.Size, &record.MilkType, &record.SyrupType,
		&record.TotalPrice, &record.Status, &record.CreatedAt, &record.UpdatedAt,
	)

	if err == sql.ErrNoRows {
		return nil, fmt.Errorf("order %s not found", number)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get order: %w", err)
	}

	return record, nil
}

// List retrieves orders matching the given filters, newest first.
func (r *OrderRepository) List(ctx context.Context, filters secondary.OrderFilters) ([]*secondary.OrderRecord, error) {
	query := `SELECT ` + orderColumns + ` FROM orders WHERE 1=1`
	args := []any{}

	if len(filters.Statuses) > 0 {
		query += " AND status IN (?" + placeholders(len(filters.Statuses)-1) + ")"
		for _, s := range filters.Statuses {
			args = append(args, s)
		}
	}

	if filters.ShopCode != "" {
		query += " AND shop_code = ?"
		args = append(args, filters.ShopCode)
	}

	if filters.CustomerID != 0 {
		query += " AND customer_id = ?"
		args = append(args, filters.CustomerID)
	}

	query += " ORDER BY created_at DESC, id DESC"

	if filters.Limit > 0 {
		query += " LIMIT ?"
		args = append(args, filters.Limit)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list orders: %w", err)
	}
	defer rows.Close()

	var records []*secondary.OrderRecord
	for rows.Next() {
		record := &secondary.OrderRecord{}
		if err := rows.Scan(
			&record.ID, &record.OrderNumber, &record.CustomerID, &record.ShopCode,
			&record.Drink, &record.Size, &record.MilkType, &record.SyrupType,
			&record.TotalPrice, &record.Status, &record.CreatedAt, &record.UpdatedAt,
		); err != nil {
			return nil, fmt.Errorf("failed to scan order: %w", err)
		}
		records = append(records, record)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate orders: %w", err)
	}

	return records, nil
}

// UpdateStatus updates the status of an order identified by number.
func (r *OrderRepository) UpdateStatus(ctx context.Context, number, status string, updatedAt time.Time) error {
	res, err := r.db.ExecContext(ctx,
		`UPDATE orders SET status = ?, updated_at = ? WHERE order_number = ?`,
		status, updatedAt, number,
	)
	if err != nil {
		return fmt.Errorf("failed to update order status: %w", err)
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to check update result: %w", err)
	}
	if affected == 0 {
		return fmt.Errorf("order %s not found", number)
	}

	return nil
}

// MaxOrderNumber returns the highest order number assigned so far, or 0 when
// no orders exist. Order numbers are stored as text but compared numerically.
func (r *OrderRepository) MaxOrderNumber(ctx context.Context) (int, error) {
	var max sql.NullInt64
	err := r.db.QueryRowContext(ctx,
		`SELECT MAX(CAST(order_number AS INTEGER)) FROM orders`,
	).Scan(&max)
	if err != nil {
		return 0, fmt.Errorf("failed to get max order number: %w", err)
	}
	if !max.Valid {
		return 0, nil
	}
	return int(max.Int64), nil
}

// placeholders returns n comma-prefixed SQL placeholders.
func placeholders(n int) string {
	out := ""
	for i := 0; i < n; i++ {
		out += ", ?"
	}
	return out
}
