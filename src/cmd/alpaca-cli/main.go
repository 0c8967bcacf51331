package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/tradekit/alpaca-go/src/alpaca"
	"github.com/tradekit/alpaca-go/src/endpoints"
	"github.com/tradekit/alpaca-go/src/utils"
)

var api *alpaca.API

var rootCmd = &cobra.Command{
	Use:   "alpaca-cli",
	Short: "Inspect an Alpaca trading account from the command line",
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		verbose, err := cmd.Flags().GetBool("verbose")
		if err != nil {
			return fmt.Errorf("error getting verbose flag: %w", err)
		}
		if verbose {
			log.SetLevel(log.DebugLevel)
		}

		if err := utils.InitEnvironmentVariables(); err != nil {
			return fmt.Errorf("error loading environment: %w", err)
		}

		propertiesFile, err := cmd.Flags().GetString("properties")
		if err != nil {
			return fmt.Errorf("error getting properties flag: %w", err)
		}

		properties, err := alpaca.LoadProperties(propertiesFile)
		if err != nil {
			return err
		}

		api, err = alpaca.NewFromProperties(properties)
		if err != nil {
			return err
		}

		return nil
	},
}

var accountCmd = &cobra.Command{
	Use:   "account",
	Short: "Show the account",
	Run: func(cmd *cobra.Command, args []string) {
		account, err := api.Account().Get(cmd.Context())
		if err != nil {
			log.Fatalf("error fetching account: %v", err)
		}

		printJSON(account)
	},
}

var clockCmd = &cobra.Command{
	Use:   "clock",
	Short: "Show the market clock",
	Run: func(cmd *cobra.Command, args []string) {
		clock, err := api.Clock().Get(cmd.Context())
		if err != nil {
			log.Fatalf("error fetching clock: %v", err)
		}

		printJSON(clock)
	},
}

var ordersCmd = &cobra.Command{
	Use:   "orders",
	Short: "List orders",
	Run: func(cmd *cobra.Command, args []string) {
		status, err := cmd.Flags().GetString("status")
		if err != nil {
			log.Fatalf("error getting status: %v", err)
		}

		limit, err := cmd.Flags().GetInt("limit")
		if err != nil {
			log.Fatalf("error getting limit: %v", err)
		}

		orders, err := api.Orders().List(cmd.Context(), endpoints.ListOrdersRequest{
			Status: status,
			Limit:  limit,
		})
		if err != nil {
			log.Fatalf("error fetching orders: %v", err)
		}

		printJSON(orders)
	},
}

var positionsCmd = &cobra.Command{
	Use:   "positions",
	Short: "List open positions",
	Run: func(cmd *cobra.Command, args []string) {
		positions, err := api.Positions().List(cmd.Context())
		if err != nil {
			log.Fatalf("error fetching positions: %v", err)
		}

		printJSON(positions)
	},
}

func printJSON(v interface{}) {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		log.Fatalf("error encoding output: %v", err)
	}

	fmt.Println(string(data))
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	rootCmd.PersistentFlags().String("properties", "", "path to an alpaca.yaml properties file")
	rootCmd.PersistentFlags().Bool("verbose", false, "enable debug logging")
	ordersCmd.Flags().String("status", "open", "order status filter: open, closed or all")
	ordersCmd.Flags().Int("limit", 50, "maximum number of orders to return")

	rootCmd.AddCommand(accountCmd)
	rootCmd.AddCommand(clockCmd)
	rootCmd.AddCommand(ordersCmd)
	rootCmd.AddCommand(positionsCmd)

	if err := rootCmd.ExecuteContext(ctx); err != nil {
		log.Fatal(err)
	}
}
