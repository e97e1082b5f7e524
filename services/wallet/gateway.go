package wallet

import (
	"context"

	"github.com/rafflepay/wallet-dashboard/internal/pkg/models"
)

//go:generate mockgen -destination=mocks/mock_gateway.go -package=mocks github.com/rafflepay/wallet-dashboard/services/wallet WalletGW

// WalletGW represents the outbound gateway interface: the change-notification
// stream and the notification sink
type WalletGW interface {
	// change stream
	PublishTransactionCreated(ctx context.Context, tx *models.WalletTransaction) error
	PublishTransactionUpdated(ctx context.Context, tx *models.WalletTransaction) error

	// notification sink; delivery is fire-and-forget from the caller's view
	NotifyStatusChanged(ctx context.Context, payload *models.StatusWebhookPayload) error
}
