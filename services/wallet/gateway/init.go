package gateway

import (
	"net/http"
	"time"

	"github.com/rafflepay/wallet-dashboard/internal/pkg/models"
	natspkg "github.com/rafflepay/wallet-dashboard/internal/pkg/nats"
)

// WalletGW implements the outbound gateway: the NATS change stream and the
// webhook notification sink
type WalletGW struct {
	natsClient *natspkg.Client
	webhookURL string
	httpClient *http.Client
}

// NewWalletGW creates a new wallet gateway
func NewWalletGW(natsClient *natspkg.Client, webhookCfg models.WebhookConfig) *WalletGW {
	timeout := time.Duration(webhookCfg.Timeout) * time.Second
	if timeout == 0 {
		timeout = 10 * time.Second
	}

	return &WalletGW{
		natsClient: natsClient,
		webhookURL: webhookCfg.URL,
		httpClient: &http.Client{
			Timeout: timeout,
		},
	}
}
