package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/example/spendview/internal/config"
	"github.com/example/spendview/internal/logger"
	"github.com/example/spendview/internal/reader"
	"github.com/example/spendview/internal/services"
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "spendview",
	Short: "Generate personal finance dashboard reports from a card operations export",
	Long: `Spendview reads an xlsx export of bank card operations, aggregates spend
and cashback per card for the month of a reference date, ranks the top
transactions, and enriches the result with live currency and stock quotes.`,
	Run: func(cmd *cobra.Command, args []string) {
		cmd.Println("Use --help for available commands")
	},
}

func init() {
	rootCmd.PersistentFlags().String("file", "", "path to the operations xlsx export")
	rootCmd.PersistentFlags().String("settings", "", "path to the user settings JSON")
	viper.BindPFlag("file", rootCmd.PersistentFlags().Lookup("file"))
	viper.BindPFlag("settings", rootCmd.PersistentFlags().Lookup("settings"))

	reportCmd.Flags().String("date", "", "reference date, DD.MM.YYYY (required)")
	reportCmd.MarkFlagRequired("date")

	rootCmd.AddCommand(reportCmd)
	rootCmd.AddCommand(transfersCmd)
}

var reportCmd = &cobra.Command{
	Use:   "report",
	Short: "Print the dashboard JSON for a reference date",
	RunE: func(cmd *cobra.Command, args []string) error {
		_ = godotenv.Load()
		cfg := config.FromEnv()

		zlog, err := logger.New(os.Getenv("APP_ENV"))
		if err != nil {
			return err
		}
		defer zlog.Sync()

		settingsPath := viper.GetString("settings")
		if settingsPath == "" {
			settingsPath = cfg.SettingsFile
		}
		settings, err := config.LoadUserSettings(settingsPath)
		if err != nil {
			return err
		}

		transactions, err := reader.NewXLSXReader().Read(operationsPath(cfg))
		if err != nil {
			return err
		}

		dateStr, _ := cmd.Flags().GetString("date")
		rates := services.NewHTTPRateProvider(cfg.CurrencyAPIKey, "RUB", "", zlog)
		quotes := services.NewHTTPQuoteProvider(cfg.StocksAPIKey, "", zlog)
		svc := services.NewReportService(rates, quotes, time.Now, zlog)

		report, err := svc.Generate(context.Background(), transactions, dateStr, settings)
		if err != nil {
			return err
		}
		return printJSON(cmd, report)
	},
}

var transfersCmd = &cobra.Command{
	Use:   "transfers",
	Short: "Print transfers to private persons found in the export",
	RunE: func(cmd *cobra.Command, args []string) error {
		_ = godotenv.Load()
		cfg := config.FromEnv()

		transactions, err := reader.NewXLSXReader().Read(operationsPath(cfg))
		if err != nil {
			return err
		}

		matches := services.SearchTransfersToIndividuals(transactions)
		return printJSON(cmd, services.TransferEntries(matches))
	},
}

func operationsPath(cfg *config.Config) string {
	if path := viper.GetString("file"); path != "" {
		return path
	}
	return cfg.OperationsFile
}

func printJSON(cmd *cobra.Command, payload interface{}) error {
	raw, err := json.MarshalIndent(payload, "", "    ")
	if err != nil {
		return err
	}
	cmd.Println(string(raw))
	return nil
}
