package handler

import (
	"github.com/labstack/echo/v4"
	"github.com/rafflepay/wallet-dashboard/internal/pkg/models"
	httpHandler "github.com/rafflepay/wallet-dashboard/services/wallet/handler/http"
	wsHandler "github.com/rafflepay/wallet-dashboard/services/wallet/handler/websocket"
)

// Handler coordinates all protocol handlers for the wallet dashboard
type Handler struct {
	transactionHandler *httpHandler.TransactionHandler
	feedHandler        *wsHandler.FeedHandler
	cfg                *models.Config
}

// NewHandler creates and initializes all handlers
func NewHandler(
	transactionHandler *httpHandler.TransactionHandler,
	feedHandler *wsHandler.FeedHandler,
	cfg *models.Config,
) *Handler {
	return &Handler{
		transactionHandler: transactionHandler,
		feedHandler:        feedHandler,
		cfg:                cfg,
	}
}

// InitConsumers wires the live feed to the change-notification stream
func (h *Handler) InitConsumers() error {
	return h.feedHandler.InitConsumers()
}

// RegisterRoutes registers all HTTP and WebSocket routes
func (h *Handler) RegisterRoutes(e *echo.Echo) {
	api := e.Group("/api/v1")

	api.GET("/transactions", h.transactionHandler.ListTransactions)
	api.POST("/transactions", h.transactionHandler.CreateCashIn)
	api.PATCH("/transactions/:id/status", h.transactionHandler.UpdateStatus)
	api.GET("/transactions/export", h.transactionHandler.ExportCSV)
	api.GET("/metrics", h.transactionHandler.Metrics)
	api.GET("/analytics", h.transactionHandler.Analytics)

	e.GET("/ws/transactions", h.feedHandler.HandleWebSocket)
}
