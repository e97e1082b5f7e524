package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/rafflepay/wallet-dashboard/internal/pkg/models"
)

// TotalApprovedCents sums the amounts of all approved transactions
func (r *TransactionRepo) TotalApprovedCents(ctx context.Context) (int64, error) {
	query := `SELECT COALESCE(SUM(amount_cents), 0) FROM wallet_transactions WHERE status = $1`

	var total int64
	if err := r.db.GetContext(ctx, &total, query, models.StatusApproved); err != nil {
		return 0, fmt.Errorf("failed to sum approved transactions: %w", err)
	}

	return total, nil
}

// ApprovedCentsSince sums approved amounts created at or after the given time
func (r *TransactionRepo) ApprovedCentsSince(ctx context.Context, since time.Time) (int64, error) {
	query := `
		SELECT COALESCE(SUM(amount_cents), 0)
		FROM wallet_transactions
		WHERE status = $1 AND created_at >= $2
	`

	var total int64
	if err := r.db.GetContext(ctx, &total, query, models.StatusApproved, since); err != nil {
		return 0, fmt.Errorf("failed to sum approved transactions since %s: %w", since.Format(time.RFC3339), err)
	}

	return total, nil
}

// CountByStatus counts transactions in the given status
func (r *TransactionRepo) CountByStatus(ctx context.Context, status models.TransactionStatus) (int64, error) {
	query := `SELECT COUNT(*) FROM wallet_transactions WHERE status = $1`

	var count int64
	if err := r.db.GetContext(ctx, &count, query, status); err != nil {
		return 0, fmt.Errorf("failed to count transactions: %w", err)
	}

	return count, nil
}

// TopReferrer returns the referral code with the largest summed approved
// amount, or nil when no approved transaction carries a referral code
func (r *TransactionRepo) TopReferrer(ctx context.Context) (*models.TopReferrer, error) {
	query := `
		SELECT referral_code, SUM(amount_cents) AS total_amount_cents
		FROM wallet_transactions
		WHERE status = $1 AND referral_code IS NOT NULL
		GROUP BY referral_code
		ORDER BY total_amount_cents DESC
		LIMIT 1
	`

	var top models.TopReferrer
	err := r.db.QueryRowContext(ctx, query, models.StatusApproved).Scan(&top.ReferralCode, &top.TotalAmountCents)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get top referrer: %w", err)
	}

	return &top, nil
}

// DailyVolume returns per-day totals for the trailing number of days
func (r *TransactionRepo) DailyVolume(ctx context.Context, days int) ([]models.DailyVolume, error) {
	query := `
		SELECT
			date_trunc('day', created_at) AS day,
			COALESCE(SUM(amount_cents), 0) AS total_cents,
			COALESCE(SUM(amount_cents) FILTER (WHERE status = 'approved'), 0) AS approved_cents,
			COUNT(*) AS count
		FROM wallet_transactions
		WHERE created_at >= $1
		GROUP BY day
		ORDER BY day
	`

	since := time.Now().AddDate(0, 0, -days)

	volumes := []models.DailyVolume{}
	if err := r.db.SelectContext(ctx, &volumes, query, since); err != nil {
		return nil, fmt.Errorf("failed to get daily volume: %w", err)
	}

	return volumes, nil
}

// MethodBreakdown returns totals per payment channel
func (r *TransactionRepo) MethodBreakdown(ctx context.Context) ([]models.MethodBreakdown, error) {
	query := `
		SELECT method, COALESCE(SUM(amount_cents), 0) AS total_cents, COUNT(*) AS count
		FROM wallet_transactions
		GROUP BY method
		ORDER BY total_cents DESC
	`

	breakdown := []models.MethodBreakdown{}
	if err := r.db.SelectContext(ctx, &breakdown, query); err != nil {
		return nil, fmt.Errorf("failed to get method breakdown: %w", err)
	}

	return breakdown, nil
}
