package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
)

var version = "0.0.1"

func main() {
	ctx, cancel := signal.NotifyContext(context.Background(),
		syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	if err := rootCmd.ExecuteContext(ctx); err != nil {
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:     "marketplace",
	Short:   "Yahoo! Shopping store order client",
	Version: version,
}

func init() {
	rootCmd.AddCommand(newSearchOrdersCmd())
	rootCmd.AddCommand(newUpdateShipStatusCmd())
}
