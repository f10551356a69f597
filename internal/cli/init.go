package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/example/kwonka/internal/db"
)

// InitCmd returns the init command
func InitCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "init",
		Short: "Initialize the kwonka database",
		Long:  `Initialize the database at ~/.kwonka/kwonka.db with the schema and the default One Shott locations.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			dbPath, err := db.GetDBPath()
			if err != nil {
				return fmt.Errorf("failed to get database path: %w", err)
			}

			fmt.Printf("Initializing database at %s\n", dbPath)

			database, err := db.GetDB()
			if err != nil {
				return fmt.Errorf("failed to initialize database: %w", err)
			}
			if err := db.SeedShops(database); err != nil {
				return fmt.Errorf("failed to seed shops: %w", err)
			}

			fmt.Println("✓ Database initialized")
			fmt.Println()
			fmt.Println("Next steps:")
			fmt.Println("  kwonka shop list")
			fmt.Println("  kwonka chat --role customer --chat 1")

			return nil
		},
	}
}
