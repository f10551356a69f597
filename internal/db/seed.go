package db

import (
	"database/sql"
	"fmt"
)

// SeedShops inserts the default One Shott locations when they are missing.
// Safe to call repeatedly.
func SeedShops(database *sql.DB) error {
	shops := []struct{ code, name, address string }{
		{"DOWNTOWN", "One Shott Downtown", "12 Abay Ave"},
		{"MALL", "One Shott Mall", "Mega Center, 2nd floor"},
	}
	for _, s := range shops {
		if _, err := database.Exec(
			"INSERT OR IGNORE INTO coffee_shops (code, name, address, active) VALUES (?, ?, ?, 1)",
			s.code, s.name, s.address,
		); err != nil {
			return fmt.Errorf("seed shops: %w", err)
		}
	}
	return nil
}
