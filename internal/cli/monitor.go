package cli

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/example/kwonka/internal/wire"
)

// MonitorCmd returns the monitor command group
func MonitorCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "monitor",
		Short: "Delay monitoring",
	}
	cmd.AddCommand(monitorDelayedCmd(), monitorCheckCmd())
	return cmd
}

func monitorDelayedCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "delayed",
		Short: "List pending orders past the delay threshold",
		RunE: func(cmd *cobra.Command, args []string) error {
			delayed, err := wire.EscalationService().DelayedOrders(NewContext())
			if err != nil {
				return fmt.Errorf("failed to list delayed orders: %w", err)
			}

			if len(delayed) == 0 {
				fmt.Println("No delayed orders. All queues are healthy.")
				return nil
			}

			w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
			fmt.Fprintln(w, "NUMBER\tWAIT\tSHOP\tDRINK\tTIER")
			fmt.Fprintln(w, "------\t----\t----\t-----\t----")
			for _, d := range delayed {
				tier := "delayed"
				if d.Critical {
					tier = color.New(color.FgRed).Sprint("CRITICAL")
				}
				fmt.Fprintf(w, "%s\t%d min\t%s\t%s\t%s\n",
					d.Order.OrderNumber, d.WaitMinutes, d.Order.ShopCode, d.Order.Drink, tier)
			}
			w.Flush()
			return nil
		},
	}
}

func monitorCheckCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "check",
		Short: "Run one escalation scan now",
		RunE: func(cmd *cobra.Command, args []string) error {
			raised, err := wire.EscalationService().CheckOrders(NewContext())
			if err != nil {
				return fmt.Errorf("scan failed: %w", err)
			}

			if len(raised) == 0 {
				fmt.Println("Nothing to escalate.")
				return nil
			}
			for _, e := range raised {
				fmt.Printf("Escalated #%s: waiting %d min at %s\n",
					e.OrderNumber, e.WaitMinutes, e.ShopCode)
			}
			return nil
		},
	}
}
