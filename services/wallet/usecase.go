package wallet

import (
	"context"

	"github.com/rafflepay/wallet-dashboard/internal/pkg/models"
)

//go:generate mockgen -destination=mocks/mock_usecase.go -package=mocks github.com/rafflepay/wallet-dashboard/services/wallet WalletUC

// WalletUC represents the wallet usecase interface
type WalletUC interface {
	// listing
	ListTransactions(ctx context.Context, filter models.TransactionFilter) ([]models.WalletTransaction, error)

	// creation
	CreateCashIn(ctx context.Context, req *models.CashInRequest) (*models.WalletTransaction, error)

	// status engine
	RequestStatusChange(ctx context.Context, id int64, target models.TransactionStatus) (*models.WalletTransaction, error)

	// dashboard aggregates
	DashboardMetrics(ctx context.Context) (*models.DashboardMetrics, error)
	Analytics(ctx context.Context) (*models.AnalyticsReport, error)
}
