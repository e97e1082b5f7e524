package repository

import (
	"github.com/jmoiron/sqlx"
	"github.com/rafflepay/wallet-dashboard/internal/pkg/models"
)

// TransactionRepo implements the transaction store over PostgreSQL
type TransactionRepo struct {
	cfg *models.Config
	db  *sqlx.DB
}

// NewTransactionRepo creates a new transaction repository instance
func NewTransactionRepo(cfg *models.Config, db *sqlx.DB) *TransactionRepo {
	return &TransactionRepo{
		cfg: cfg,
		db:  db,
	}
}
