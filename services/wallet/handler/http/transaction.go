package http

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/rafflepay/wallet-dashboard/internal/pkg/logger"
	"github.com/rafflepay/wallet-dashboard/internal/pkg/models"
	"github.com/rafflepay/wallet-dashboard/internal/utils"
	"github.com/rafflepay/wallet-dashboard/services/wallet"
)

// TransactionHandler handles HTTP requests for transaction operations
type TransactionHandler struct {
	walletUC wallet.WalletUC
}

// NewTransactionHandler creates a new transaction handler
func NewTransactionHandler(walletUC wallet.WalletUC) *TransactionHandler {
	return &TransactionHandler{
		walletUC: walletUC,
	}
}

// ListTransactions handles transaction listing with optional search and
// date-range filters
func (h *TransactionHandler) ListTransactions(c echo.Context) error {
	filter, err := parseFilter(c)
	if err != nil {
		return utils.BadRequestResponse(c, err.Error())
	}

	txs, err := h.walletUC.ListTransactions(c.Request().Context(), filter)
	if err != nil {
		logger.Error("Failed to list transactions", logger.Err(err))
		return utils.InternalServerErrorResponse(c, "Failed to list transactions")
	}

	return utils.SuccessResponse(c, http.StatusOK, "Transactions retrieved successfully", txs)
}

// CreateCashIn handles creation of a new pending cash-in transaction
func (h *TransactionHandler) CreateCashIn(c echo.Context) error {
	var req models.CashInRequest
	if err := c.Bind(&req); err != nil {
		logger.Warn("Invalid request payload for cash-in creation", logger.Err(err))
		return utils.BadRequestResponse(c, "Invalid request payload")
	}

	created, err := h.walletUC.CreateCashIn(c.Request().Context(), &req)
	if err != nil {
		switch {
		case errors.Is(err, wallet.ErrInvalidUserID),
			errors.Is(err, wallet.ErrInvalidAmount),
			errors.Is(err, wallet.ErrInvalidMethod):
			return utils.BadRequestResponse(c, err.Error())
		default:
			logger.Error("Failed to create cash-in transaction", logger.Err(err))
			return utils.InternalServerErrorResponse(c, "Failed to create transaction")
		}
	}

	return utils.SuccessResponse(c, http.StatusCreated, "Transaction created successfully", created)
}

// UpdateStatus handles status transition requests
func (h *TransactionHandler) UpdateStatus(c echo.Context) error {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		return utils.BadRequestResponse(c, "Invalid transaction ID")
	}

	var req models.StatusChangeRequest
	if err := c.Bind(&req); err != nil {
		return utils.BadRequestResponse(c, "Invalid request payload")
	}

	updated, err := h.walletUC.RequestStatusChange(c.Request().Context(), id, req.Status)
	if err != nil {
		switch {
		case errors.Is(err, wallet.ErrInvalidStatus):
			return utils.BadRequestResponse(c, err.Error())
		case errors.Is(err, wallet.ErrTransactionNotFound):
			return utils.NotFoundResponse(c, "Transaction not found")
		case errors.Is(err, wallet.ErrEligibilityExpired):
			return utils.UnprocessableEntityResponse(c, err.Error())
		default:
			logger.Error("Failed to update transaction status",
				logger.Err(err),
				logger.Int64("transaction_id", id),
				logger.String("target_status", req.Status.String()),
			)
			return utils.InternalServerErrorResponse(c, "Failed to update transaction status")
		}
	}

	return utils.SuccessResponse(c, http.StatusOK, "Transaction status updated successfully", updated)
}

// Metrics handles dashboard summary requests
func (h *TransactionHandler) Metrics(c echo.Context) error {
	metrics, err := h.walletUC.DashboardMetrics(c.Request().Context())
	if err != nil {
		logger.Error("Failed to compute dashboard metrics", logger.Err(err))
		return utils.InternalServerErrorResponse(c, "Failed to compute metrics")
	}

	return utils.SuccessResponse(c, http.StatusOK, "Metrics retrieved successfully", metrics)
}

// Analytics handles analytics chart data requests
func (h *TransactionHandler) Analytics(c echo.Context) error {
	report, err := h.walletUC.Analytics(c.Request().Context())
	if err != nil {
		logger.Error("Failed to compute analytics", logger.Err(err))
		return utils.InternalServerErrorResponse(c, "Failed to compute analytics")
	}

	return utils.SuccessResponse(c, http.StatusOK, "Analytics retrieved successfully", report)
}

// parseFilter extracts search and date-range filters from the query string
func parseFilter(c echo.Context) (models.TransactionFilter, error) {
	filter := models.TransactionFilter{
		Search: c.QueryParam("search"),
	}

	if start := c.QueryParam("start"); start != "" {
		t, err := parseTimeParam(start)
		if err != nil {
			return filter, errors.New("invalid start date")
		}
		filter.Start = &t
	}
	if end := c.QueryParam("end"); end != "" {
		t, err := parseTimeParam(end)
		if err != nil {
			return filter, errors.New("invalid end date")
		}
		filter.End = &t
	}

	return filter, nil
}

// parseTimeParam accepts RFC3339 timestamps or plain dates
func parseTimeParam(value string) (time.Time, error) {
	if t, err := time.Parse(time.RFC3339, value); err == nil {
		return t, nil
	}
	return time.Parse("2006-01-02", value)
}
