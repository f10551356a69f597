package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/example/kwonka/internal/cli"
	"github.com/example/kwonka/internal/version"
)

func main() {
	rootCmd := &cobra.Command{
		Use:     "kwonka",
		Short:   "kwonka - One Shott coffee order coordination",
		Version: version.String(),
		Long: `kwonka coordinates coffee ordering across three actor channels:
customers place orders, baristas work the queues, and admins watch for
delayed orders and daily numbers.`,
	}

	// Add subcommands
	rootCmd.AddCommand(cli.InitCmd())
	rootCmd.AddCommand(cli.ServeCmd())
	rootCmd.AddCommand(cli.ChatCmd())
	rootCmd.AddCommand(cli.OrderCmd())
	rootCmd.AddCommand(cli.ShopCmd())
	rootCmd.AddCommand(cli.StatsCmd())
	rootCmd.AddCommand(cli.MonitorCmd())

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}
