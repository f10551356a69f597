package cli

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/example/kwonka/internal/ports/primary"
	"github.com/example/kwonka/internal/wire"
)

// OrderCmd returns the order command group
func OrderCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "order",
		Short: "Inspect and move orders",
	}
	cmd.AddCommand(orderListCmd(), orderShowCmd(), orderSetCmd())
	return cmd
}

func orderListCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List orders",
		RunE: func(cmd *cobra.Command, args []string) error {
			status, _ := cmd.Flags().GetString("status")
			shop, _ := cmd.Flags().GetString("shop")
			limit, _ := cmd.Flags().GetInt("limit")

			filters := primary.OrderFilters{ShopCode: shop, Limit: limit}
			if status != "" {
				filters.Statuses = []string{status}
			}

			orders, err := wire.OrderService().ListOrders(NewContext(), filters)
			if err != nil {
				return fmt.Errorf("failed to list orders: %w", err)
			}

			if len(orders) == 0 {
				fmt.Println("No orders found.")
				return nil
			}

			w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
			fmt.Fprintln(w, "NUMBER\tDRINK\tSIZE\tTOTAL\tSTATUS\tSHOP\tCREATED")
			fmt.Fprintln(w, "------\t-----\t----\t-----\t------\t----\t-------")
			for _, o := range orders {
				fmt.Fprintf(w, "%s\t%s\t%s\t%d\t%s\t%s\t%s\n",
					o.OrderNumber, o.Drink, o.Size, o.TotalPrice, o.Status, o.ShopCode, o.CreatedAt)
			}
			w.Flush()
			return nil
		},
	}
	cmd.Flags().String("status", "", "Filter by status (PENDING, IN_PREPARATION, READY, COMPLETED, CANCELLED)")
	cmd.Flags().String("shop", "", "Filter by shop code")
	cmd.Flags().Int("limit", 0, "Limit the number of rows")
	return cmd
}

func orderShowCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "show [number]",
		Short: "Show order details",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			o, err := wire.OrderService().GetOrder(NewContext(), args[0])
			if err != nil {
				return fmt.Errorf("order not found: %w", err)
			}

			fmt.Printf("Order: #%s\n", o.OrderNumber)
			fmt.Printf("Status: %s\n", o.Status)
			fmt.Printf("Drink: %s, %s\n", o.Drink, o.Size)
			if o.MilkType != "" {
				fmt.Printf("Milk: %s\n", o.MilkType)
			}
			if o.SyrupType != "" {
				fmt.Printf("Syrup: %s\n", o.SyrupType)
			}
			fmt.Printf("Total: %d tenge\n", o.TotalPrice)
			fmt.Printf("Pickup: %s (%s)\n", o.ShopName, o.ShopCode)
			fmt.Printf("Customer: %d\n", o.CustomerID)
			fmt.Printf("Created: %s\n", o.CreatedAt)
			fmt.Printf("Updated: %s\n", o.UpdatedAt)
			return nil
		},
	}
}

func orderSetCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "set [number] [accept|ready|pickup|cancel]",
		Short: "Move an order through its lifecycle",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := NewContext()
			svc := wire.OrderService()

			var (
				o   *primary.Order
				err error
			)
			switch args[1] {
			case "accept":
				o, err = svc.AcceptOrder(ctx, args[0])
			case "ready":
				o, err = svc.CompleteOrder(ctx, args[0])
			case "pickup":
				o, err = svc.PickUpOrder(ctx, args[0])
			case "cancel":
				o, err = svc.CancelOrder(ctx, args[0])
			default:
				return fmt.Errorf("unknown action %s", args[1])
			}
			if err != nil {
				return err
			}

			fmt.Printf("✓ Order #%s is now %s\n", o.OrderNumber, o.Status)
			return nil
		},
	}
}
