package http

import (
	"bytes"
	"encoding/csv"
	"net/http"
	"strconv"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/rafflepay/wallet-dashboard/internal/pkg/logger"
	"github.com/rafflepay/wallet-dashboard/internal/pkg/models"
	"github.com/rafflepay/wallet-dashboard/internal/utils"
)

var exportHeader = []string{"id", "user_id", "amount_cents", "method", "status", "created_at", "referral_code"}

// ExportCSV streams the filtered transaction list as a CSV attachment
func (h *TransactionHandler) ExportCSV(c echo.Context) error {
	filter, err := parseFilter(c)
	if err != nil {
		return utils.BadRequestResponse(c, err.Error())
	}

	txs, err := h.walletUC.ListTransactions(c.Request().Context(), filter)
	if err != nil {
		logger.Error("Failed to export transactions", logger.Err(err))
		return utils.InternalServerErrorResponse(c, "Failed to export transactions")
	}

	body, err := marshalCSV(txs)
	if err != nil {
		logger.Error("Failed to encode transaction CSV", logger.Err(err))
		return utils.InternalServerErrorResponse(c, "Failed to export transactions")
	}

	c.Response().Header().Set(echo.HeaderContentDisposition, `attachment; filename="wallet_transactions.csv"`)
	return c.Blob(http.StatusOK, "text/csv", body)
}

// marshalCSV renders transactions in the canonical export format
func marshalCSV(txs []models.WalletTransaction) ([]byte, error) {
	var buf bytes.Buffer
	w := csv.NewWriter(&buf)

	if err := w.Write(exportHeader); err != nil {
		return nil, err
	}

	for _, tx := range txs {
		referral := ""
		if tx.ReferralCode != nil {
			referral = *tx.ReferralCode
		}

		record := []string{
			strconv.FormatInt(tx.ID, 10),
			tx.UserID,
			strconv.FormatInt(tx.AmountCents, 10),
			tx.Method.String(),
			tx.Status.String(),
			tx.CreatedAt.Format(time.RFC3339),
			referral,
		}
		if err := w.Write(record); err != nil {
			return nil, err
		}
	}

	w.Flush()
	if err := w.Error(); err != nil {
		return nil, err
	}

	return buf.Bytes(), nil
}
