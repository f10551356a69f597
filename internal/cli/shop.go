package cli

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/example/kwonka/internal/ports/primary"
	"github.com/example/kwonka/internal/wire"
)

// ShopCmd returns the shop command group
func ShopCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "shop",
		Short: "Manage coffee shops",
	}
	cmd.AddCommand(shopListCmd(), shopAddCmd(), shopDeactivateCmd())
	return cmd
}

func shopListCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List active coffee shops",
		RunE: func(cmd *cobra.Command, args []string) error {
			shops, err := wire.ShopService().ListShops(NewContext())
			if err != nil {
				return fmt.Errorf("failed to list shops: %w", err)
			}

			if len(shops) == 0 {
				fmt.Println("No active shops. Run 'kwonka init' or 'kwonka shop add'.")
				return nil
			}

			w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
			fmt.Fprintln(w, "CODE\tNAME\tADDRESS")
			fmt.Fprintln(w, "----\t----\t-------")
			for _, shop := range shops {
				address := shop.Address
				if address == "" {
					address = "-"
				}
				fmt.Fprintf(w, "%s\t%s\t%s\n", shop.Code, shop.Name, address)
			}
			w.Flush()
			return nil
		},
	}
}

func shopAddCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "add [code] [name]",
		Short: "Register a coffee shop",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			address, _ := cmd.Flags().GetString("address")

			shop, err := wire.ShopService().AddShop(NewContext(), primary.AddShopRequest{
				Code:    args[0],
				Name:    args[1],
				Address: address,
			})
			if err != nil {
				return fmt.Errorf("failed to add shop: %w", err)
			}

			fmt.Printf("✓ Shop %s (%s) registered\n", shop.Name, shop.Code)
			return nil
		},
	}
	cmd.Flags().String("address", "", "Street address")
	return cmd
}

func shopDeactivateCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "deactivate [code]",
		Short: "Remove a coffee shop from the active roster",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := wire.ShopService().DeactivateShop(NewContext(), args[0]); err != nil {
				return fmt.Errorf("failed to deactivate shop: %w", err)
			}
			fmt.Printf("✓ Shop %s deactivated\n", args[0])
			return nil
		},
	}
}
