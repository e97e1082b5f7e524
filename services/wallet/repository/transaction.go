package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"regexp"
	"strings"

	"github.com/jackc/pgconn"
	"github.com/rafflepay/wallet-dashboard/internal/pkg/models"
	"github.com/rafflepay/wallet-dashboard/services/wallet"
)

const transactionColumns = `id, user_id, amount_cents, method, status, created_at, updated_at, referral_code`

// transitionPolicyPattern recognizes the store trigger's rejection of a
// direct status jump, e.g. approved to rejected without passing pending
var transitionPolicyPattern = regexp.MustCompile(`(?i)cannot\s+change\s+status|status\s+transition|not\s+allowed`)

// List returns transactions matching the filter, newest first
func (r *TransactionRepo) List(ctx context.Context, filter models.TransactionFilter) ([]models.WalletTransaction, error) {
	query := `SELECT ` + transactionColumns + ` FROM wallet_transactions`

	var conds []string
	var args []interface{}

	if filter.Search != "" {
		term := "%" + strings.ToLower(filter.Search) + "%"
		args = append(args, term)
		n := len(args)
		conds = append(conds, fmt.Sprintf(
			"(LOWER(user_id) LIKE $%d OR LOWER(method) LIKE $%d OR LOWER(COALESCE(referral_code, '')) LIKE $%d)",
			n, n, n,
		))
	}
	if filter.Start != nil {
		args = append(args, *filter.Start)
		conds = append(conds, fmt.Sprintf("created_at >= $%d", len(args)))
	}
	if filter.End != nil {
		args = append(args, *filter.End)
		conds = append(conds, fmt.Sprintf("created_at <= $%d", len(args)))
	}

	if len(conds) > 0 {
		query += " WHERE " + strings.Join(conds, " AND ")
	}
	query += " ORDER BY created_at DESC"

	txs := []models.WalletTransaction{}
	if err := r.db.SelectContext(ctx, &txs, query, args...); err != nil {
		return nil, fmt.Errorf("failed to list transactions: %w", err)
	}

	return txs, nil
}

// GetByID retrieves a single transaction by id
func (r *TransactionRepo) GetByID(ctx context.Context, id int64) (*models.WalletTransaction, error) {
	query := `SELECT ` + transactionColumns + ` FROM wallet_transactions WHERE id = $1`

	var tx models.WalletTransaction
	err := r.db.GetContext(ctx, &tx, query, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, wallet.ErrTransactionNotFound
		}
		return nil, fmt.Errorf("failed to get transaction: %w", err)
	}

	return &tx, nil
}

// Insert stores a new pending transaction; id and created_at are assigned by
// the store
func (r *TransactionRepo) Insert(ctx context.Context, req *models.CashInRequest) (*models.WalletTransaction, error) {
	query := `
		INSERT INTO wallet_transactions (user_id, amount_cents, method, status, referral_code)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING ` + transactionColumns

	var referral *string
	if req.ReferralCode != "" {
		referral = &req.ReferralCode
	}

	var tx models.WalletTransaction
	err := r.db.GetContext(ctx, &tx, query,
		req.UserID,
		req.AmountCents,
		req.Method,
		models.StatusPending,
		referral,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to insert transaction: %w", err)
	}

	return &tx, nil
}

// UpdateStatus sets the status of a transaction and returns the updated row.
// A trigger-raised transition policy rejection is mapped to
// wallet.ErrTransitionBlocked so callers can apply the two-step fallback.
func (r *TransactionRepo) UpdateStatus(ctx context.Context, id int64, status models.TransactionStatus) (*models.WalletTransaction, error) {
	query := `
		UPDATE wallet_transactions
		SET status = $1, updated_at = now()
		WHERE id = $2
		RETURNING ` + transactionColumns

	var tx models.WalletTransaction
	err := r.db.GetContext(ctx, &tx, query, status, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, wallet.ErrTransactionNotFound
		}
		if msg, blocked := transitionPolicyMessage(err); blocked {
			return nil, fmt.Errorf("%w: %s", wallet.ErrTransitionBlocked, msg)
		}
		return nil, fmt.Errorf("failed to update transaction status: %w", err)
	}

	return &tx, nil
}

// transitionPolicyMessage reports whether err is a store-side transition
// policy rejection and returns the raised message
func transitionPolicyMessage(err error) (string, bool) {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && transitionPolicyPattern.MatchString(pgErr.Message) {
		return pgErr.Message, true
	}
	return "", false
}
