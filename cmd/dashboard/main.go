package main

import (
	"fmt"
	"log"

	"github.com/labstack/echo/v4"
	"github.com/rafflepay/wallet-dashboard/internal/pkg/config"
	"github.com/rafflepay/wallet-dashboard/internal/pkg/database"
	"github.com/rafflepay/wallet-dashboard/internal/pkg/health"
	"github.com/rafflepay/wallet-dashboard/internal/pkg/logger"
	"github.com/rafflepay/wallet-dashboard/internal/pkg/middleware"
	natspkg "github.com/rafflepay/wallet-dashboard/internal/pkg/nats"
	"github.com/rafflepay/wallet-dashboard/services/wallet/gateway"
	"github.com/rafflepay/wallet-dashboard/services/wallet/handler"
	httpHandler "github.com/rafflepay/wallet-dashboard/services/wallet/handler/http"
	wsHandler "github.com/rafflepay/wallet-dashboard/services/wallet/handler/websocket"
	"github.com/rafflepay/wallet-dashboard/services/wallet/repository"
	"github.com/rafflepay/wallet-dashboard/services/wallet/usecase"
	"go.uber.org/zap"
)

func main() {
	appName := "wallet-dashboard"
	configPath := config.GetEnv("CONFIG_PATH", "config/dashboard.env")
	configs := config.InitConfig(configPath)

	zapLogger, err := logger.InitZapLoggerFromConfig(configs)
	if err != nil {
		log.Fatalf("Failed to create Zap logger: %v", err)
	}
	defer zapLogger.Close()
	logger.SetGlobalLogger(zapLogger)

	zapLogger.Info("Starting application",
		zap.String("app", appName),
		zap.String("version", configs.App.Version),
		zap.String("environment", configs.App.Environment),
	)

	// Initialize PostgreSQL database connection
	postgresClient, err := database.NewPostgresClient(configs.Database)
	if err != nil {
		zapLogger.Fatal("Failed to connect to PostgreSQL", zap.Error(err))
	}
	defer postgresClient.Close()

	// Initialize Redis client
	redisClient, err := database.NewRedisClient(configs.Redis)
	if err != nil {
		zapLogger.Fatal("Failed to connect to Redis", zap.Error(err))
	}
	defer redisClient.Close()

	// Initialize NATS
	natsClient, err := natspkg.NewClient(configs.NATS.URL)
	if err != nil {
		zapLogger.Fatal("Failed to connect to NATS", zap.Error(err))
	}
	defer natsClient.Close()

	// Initialize repository
	txRepo := repository.NewTransactionRepo(configs, postgresClient.GetDB())

	// Initialize gateway
	walletGW := gateway.NewWalletGW(natsClient, configs.Webhook)

	// Initialize usecase
	walletUC := usecase.NewWalletUC(configs, txRepo, walletGW, redisClient)

	// Handlers for HTTP
	transactionHandler := httpHandler.NewTransactionHandler(walletUC)

	// Handler for the WebSocket live feed
	feedHandler := wsHandler.NewFeedHandler(natsClient)

	// Initialize handlers
	h := handler.NewHandler(transactionHandler, feedHandler, configs)

	// Wire the live feed to the change-notification stream
	if err := h.InitConsumers(); err != nil {
		zapLogger.Fatal("Failed to initialize change stream consumers", zap.Error(err))
	}

	// Initialize Echo router
	e := echo.New()

	// Add middlewares
	e.Use(middleware.RequestIDMiddleware())
	e.Use(logger.ZapEchoMiddleware(zapLogger))
	e.Use(middleware.PanicRecoveryMiddleware(zapLogger))

	// Register health endpoints
	health.RegisterHealthEndpoints(e, appName)

	// Register service routes
	h.RegisterRoutes(e)

	// Start server
	zapLogger.Info("Starting server",
		zap.String("app", appName),
		zap.Int("port", configs.Server.Port),
	)

	if err := e.Start(fmt.Sprintf(":%d", configs.Server.Port)); err != nil {
		zapLogger.Fatal("Failed to start server",
			zap.String("app", appName),
			zap.Error(err),
		)
	}
}
