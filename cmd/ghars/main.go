package main

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"ghars/internal/api"
	"ghars/internal/api/handlers"
	"ghars/internal/catalog"
	"ghars/internal/predictor"
	"ghars/internal/service"
	"ghars/pkg/config"
	"ghars/pkg/logger"

	"go.uber.org/zap"
)

// @title Ghars API
// @version 1.0
// @description Tree-planting advisory service for Oman: success prediction, recommendations, and agricultural Q&A

// @license.name MIT
// @license.url https://opensource.org/licenses/MIT

// @host localhost:8080
// @BasePath /

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Printf("Failed to load config: %v\n", err)
		os.Exit(1)
	}

	if err := logger.Init(cfg.Logger.Level); err != nil {
		fmt.Printf("Failed to initialize logger: %v\n", err)
		os.Exit(1)
	}
	defer logger.Sync()

	appLogger := logger.Get()
	appLogger.Info("Starting ghars advisory service")

	// Reference data is mandatory; a missing or malformed file is a
	// configuration error, not something to degrade around.
	catalogs, err := catalog.New(cfg.Data.TreesPath, cfg.Data.ClimatePath)
	if err != nil {
		appLogger.Fatal("Failed to load reference catalogs", zap.Error(err))
	}
	appLogger.Info("Reference catalogs loaded",
		zap.Int("species", len(catalogs.Species())),
		zap.Int("governorates", len(catalogs.Governorates())),
	)

	var successPredictor predictor.SuccessPredictor
	if cfg.Predictor.URL != "" {
		successPredictor = predictor.NewHTTPPredictor(cfg.Predictor.URL, cfg.Predictor.Timeout, appLogger)
		appLogger.Info("External predictor configured", zap.String("url", cfg.Predictor.URL))
	} else {
		appLogger.Info("No external predictor configured, using compatibility scoring")
	}

	predictionService := service.NewPredictionService(catalogs, successPredictor, appLogger)
	recommendationService := service.NewRecommendationService(catalogs, appLogger)

	conversationLog := service.NewConversationLog(cfg.Chat.HistoryLimit)
	chatService := service.NewChatService(catalogs, conversationLog, appLogger)

	advisoryHandler := handlers.NewAdvisoryHandler(predictionService, recommendationService, chatService, catalogs, appLogger)
	chatHandler := handlers.NewChatHandler(chatService, appLogger)

	app := api.SetupRouter(advisoryHandler, chatHandler)

	go func() {
		addr := ":" + cfg.Server.Port
		appLogger.Info("Server starting", zap.String("address", addr))
		if err := app.Listen(addr); err != nil {
			appLogger.Fatal("Server failed", zap.Error(err))
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	appLogger.Info("Shutting down server")
	if err := app.Shutdown(); err != nil {
		appLogger.Error("Server shutdown error", zap.Error(err))
	}
}
