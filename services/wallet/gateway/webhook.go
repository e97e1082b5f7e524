package gateway

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"

	"github.com/rafflepay/wallet-dashboard/internal/pkg/logger"
	"github.com/rafflepay/wallet-dashboard/internal/pkg/models"
)

// NotifyStatusChanged posts the status-update payload to the notification
// sink. Non-2xx responses are errors; the caller decides whether to absorb
// them (the engine does).
func (g *WalletGW) NotifyStatusChanged(ctx context.Context, payload *models.StatusWebhookPayload) error {
	if g.webhookURL == "" {
		logger.Debug("Webhook URL not configured, skipping notification",
			logger.Int64("transaction_id", payload.TransactionID),
		)
		return nil
	}

	body, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("failed to marshal webhook payload: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, g.webhookURL, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("failed to build webhook request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := g.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("webhook request failed: %w", err)
	}
	defer resp.Body.Close()

	// drain so the connection can be reused; the sink may return no content
	_, _ = io.Copy(io.Discard, resp.Body)

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return fmt.Errorf("webhook failed with status: %d", resp.StatusCode)
	}

	return nil
}
