// main.go
package main

import (
	"context"
	"log"

	"hotel-frontdesk/cmd"
	"hotel-frontdesk/internal/data/ledger"
	"hotel-frontdesk/internal/gateway"
	"hotel-frontdesk/internal/wire"
	"hotel-frontdesk/pkg/database"
	"hotel-frontdesk/pkg/utils"

	"go.uber.org/zap"
)

func main() {
	// Load config
	config, err := utils.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	// Initialize logger
	logger, err := utils.InitLogger(config.App.LogPath, config.App.Debug)
	if err != nil {
		log.Printf("Failed to init logger: %v. Using standard log.", err)
		logger, _ = zap.NewProduction()
	}
	defer logger.Sync()

	logger.Info("Starting application",
		zap.String("app", config.App.Name),
		zap.String("port", config.App.Port),
		zap.Bool("debug", config.App.Debug),
	)

	// Connect to database
	db, err := database.InitDB(config.Database)
	if err != nil {
		logger.Fatal("Failed to connect to database", zap.Error(err))
	}
	defer db.Close()

	logger.Info("Database connected successfully")

	if err := ledger.EnsureSchema(context.Background(), db); err != nil {
		logger.Fatal("Failed to prepare ledger schema", zap.Error(err))
	}

	// Ledger store and payment gateway
	store := ledger.NewPostgresStore(db, config.Ledger.StorageKey, logger)
	gw := gateway.NewRazorpayClient(gateway.RazorpayConfig{
		BaseURL:   config.Razorpay.BaseURL,
		KeyID:     config.Razorpay.KeyID,
		KeySecret: config.Razorpay.KeySecret,
		Currency:  config.Razorpay.Currency,
	}, logger)

	// Wire all dependencies
	app := wire.Wiring(store, gw, config, logger)

	// Start server
	logger.Info("Starting HTTP server", zap.String("port", config.App.Port))

	cmd.APIServer(app.Router, config.App.Port)
}
