package usecase

import (
	"github.com/rafflepay/wallet-dashboard/internal/pkg/database"
	"github.com/rafflepay/wallet-dashboard/internal/pkg/models"
	"github.com/rafflepay/wallet-dashboard/services/wallet"
)

// WalletUC implements the wallet usecase: the status engine plus the
// dashboard aggregates built on top of the transaction store
type WalletUC struct {
	cfg    *models.Config
	txRepo wallet.TransactionRepo
	gw     wallet.WalletGW
	cache  *database.RedisClient
}

// NewWalletUC creates a new wallet usecase instance. The cache may be nil,
// in which case metric reads always go to the store.
func NewWalletUC(
	cfg *models.Config,
	txRepo wallet.TransactionRepo,
	gw wallet.WalletGW,
	cache *database.RedisClient,
) *WalletUC {
	return &WalletUC{
		cfg:    cfg,
		txRepo: txRepo,
		gw:     gw,
		cache:  cache,
	}
}
