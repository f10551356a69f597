package cli

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/example/kwonka/internal/wire"
)

// StatsCmd returns the stats command group
func StatsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "stats",
		Short: "Order statistics",
	}
	cmd.AddCommand(statsDailyCmd())
	return cmd
}

func statsDailyCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "daily",
		Short: "Per-shop report of completed orders for a day",
		RunE: func(cmd *cobra.Command, args []string) error {
			date, _ := cmd.Flags().GetString("date")

			stats, err := wire.StatsService().DailyStats(NewContext(), date)
			if err != nil {
				return fmt.Errorf("failed to compute stats: %w", err)
			}

			fmt.Printf("Report for %s\n", stats.Date)
			fmt.Printf("Completed orders: %d   Revenue: %d tenge\n\n", stats.TotalOrders, stats.TotalTenge)

			w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
			fmt.Fprintln(w, "SHOP\tCOMPLETED\tREVENUE")
			fmt.Fprintln(w, "----\t---------\t-------")
			for _, shop := range stats.Shops {
				fmt.Fprintf(w, "%s\t%d\t%d\n", shop.ShopName, shop.Orders, shop.TotalTenge)
			}
			w.Flush()
			return nil
		},
	}
	cmd.Flags().String("date", "", "Day to report on (YYYY-MM-DD), defaults to today")
	return cmd
}
