package sqlite

import (
	"database/sql"
	"testing"
	"time"

	_ "github.com/mattn/go-sqlite3"

	"github.com/example/kwonka/internal/db"
	"github.com/example/kwonka/internal/ports/secondary"
)

// setupTestDB creates an in-memory SQLite database with the authoritative
// schema from internal/db.
func setupTestDB(t *testing.T) *sql.DB {
	t.Helper()

	testDB, err := sql.Open("sqlite3", ":memory:")
	if err != nil {
		t.Fatalf("failed to open test db: %v", err)
	}

	if _, err := testDB.Exec(db.GetSchemaSQL()); err != nil {
		t.Fatalf("failed to create schema: %v", err)
	}

	t.Cleanup(func() {
		testDB.Close()
	})

	return testDB
}

// seedShop inserts a coffee shop row for tests that need the FK satisfied.
func seedShop(t *testing.T, testDB *sql.DB, code, name string) {
	t.Helper()

	if _, err := testDB.Exec(
		"INSERT INTO coffee_shops (code, name, address, active) VALUES (?, ?, '', 1)",
		code, name,
	); err != nil {
		t.Fatalf("failed to seed shop: %v", err)
	}
}

// testOrder returns an order record with sensible defaults.
func testOrder(number string, createdAt time.Time) *secondary.OrderRecord {
	return &secondary.OrderRecord{
		OrderNumber: number,
		CustomerID:  1042,
		ShopCode:    "DOWNTOWN",
		Drink:       "Americano",
		Size:        "Small 250 ml",
		TotalPrice:  990,
		Status:      "PENDING",
		CreatedAt:   createdAt,
		UpdatedAt:   createdAt,
	}
}
