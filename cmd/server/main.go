package main

import (
	"log"
	"net/http"
	"os"
	"time"

	"github.com/gorilla/mux"
	"github.com/joho/godotenv"
	"go.uber.org/zap"

	"github.com/example/spendview/internal/config"
	"github.com/example/spendview/internal/handlers"
	"github.com/example/spendview/internal/logger"
	"github.com/example/spendview/internal/reader"
	"github.com/example/spendview/internal/services"
)

func main() {
	// .env is optional; real deployments set the environment directly.
	_ = godotenv.Load()

	zlog, err := logger.New(os.Getenv("APP_ENV"))
	if err != nil {
		log.Fatal("Failed to build logger:", err)
	}
	defer zlog.Sync()

	cfg := config.FromEnv()

	settings, err := config.LoadUserSettings(cfg.SettingsFile)
	if err != nil {
		zlog.Fatal("load user settings", zap.Error(err))
	}

	var operations services.TransactionReader = reader.NewXLSXReader()
	transactions, err := operations.Read(cfg.OperationsFile)
	if err != nil {
		zlog.Fatal("load operations", zap.Error(err))
	}
	zlog.Info("operations loaded",
		zap.String("file", cfg.OperationsFile),
		zap.Int("transactions", len(transactions)))

	rates := services.NewHTTPRateProvider(cfg.CurrencyAPIKey, "RUB", "", zlog)
	quotes := services.NewHTTPQuoteProvider(cfg.StocksAPIKey, "", zlog)
	reportService := services.NewReportService(rates, quotes, time.Now, zlog)

	router := mux.NewRouter()
	router.HandleFunc("/health", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"status":"healthy","service":"spendview"}`))
	}).Methods(http.MethodGet)

	reportHandler := handlers.NewReportHandler(reportService, transactions, settings, zlog)
	reportHandler.Register(router)

	zlog.Info("server starting", zap.String("addr", cfg.ListenAddr))
	if err := http.ListenAndServe(cfg.ListenAddr, router); err != nil {
		zlog.Fatal("server stopped", zap.Error(err))
	}
}
