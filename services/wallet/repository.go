package wallet

import (
	"context"
	"time"

	"github.com/rafflepay/wallet-dashboard/internal/pkg/models"
)

//go:generate mockgen -destination=mocks/mock_repository.go -package=mocks github.com/rafflepay/wallet-dashboard/services/wallet TransactionRepo

// TransactionRepo represents the transaction store interface
type TransactionRepo interface {
	// List returns transactions matching the filter, newest first
	List(ctx context.Context, filter models.TransactionFilter) ([]models.WalletTransaction, error)

	// GetByID returns a single transaction or ErrTransactionNotFound
	GetByID(ctx context.Context, id int64) (*models.WalletTransaction, error)

	// Insert stores a new transaction; id and created_at are store-assigned
	Insert(ctx context.Context, req *models.CashInRequest) (*models.WalletTransaction, error)

	// UpdateStatus sets the status of a transaction and returns the updated
	// row. A store-side transition policy rejection is reported as an error
	// matching ErrTransitionBlocked.
	UpdateStatus(ctx context.Context, id int64, status models.TransactionStatus) (*models.WalletTransaction, error)

	// aggregates for the dashboard
	TotalApprovedCents(ctx context.Context) (int64, error)
	ApprovedCentsSince(ctx context.Context, since time.Time) (int64, error)
	CountByStatus(ctx context.Context, status models.TransactionStatus) (int64, error)
	TopReferrer(ctx context.Context) (*models.TopReferrer, error)
	DailyVolume(ctx context.Context, days int) ([]models.DailyVolume, error)
	MethodBreakdown(ctx context.Context) ([]models.MethodBreakdown, error)
}
