package usecase

import (
	"context"
	"errors"
	"time"

	"github.com/rafflepay/wallet-dashboard/internal/pkg/logger"
	"github.com/rafflepay/wallet-dashboard/internal/pkg/models"
	"github.com/rafflepay/wallet-dashboard/services/wallet"
)

// RejectWindow is the period after creation during which a transaction may
// still be rejected
const RejectWindow = 24 * time.Hour

// ListTransactions returns transactions matching the filter, newest first
func (uc *WalletUC) ListTransactions(ctx context.Context, filter models.TransactionFilter) ([]models.WalletTransaction, error) {
	return uc.txRepo.List(ctx, filter)
}

// CreateCashIn inserts a new pending transaction
func (uc *WalletUC) CreateCashIn(ctx context.Context, req *models.CashInRequest) (*models.WalletTransaction, error) {
	if req.UserID == "" {
		return nil, wallet.ErrInvalidUserID
	}
	if req.AmountCents <= 0 {
		return nil, wallet.ErrInvalidAmount
	}
	if !req.Method.IsValid() {
		return nil, wallet.ErrInvalidMethod
	}

	created, err := uc.txRepo.Insert(ctx, req)
	if err != nil {
		return nil, err
	}

	uc.invalidateMetrics(ctx)

	if err := uc.gw.PublishTransactionCreated(ctx, created); err != nil {
		logger.Warn("Failed to publish transaction created event",
			logger.Err(err),
			logger.Int64("transaction_id", created.ID),
		)
	}

	return created, nil
}

// RequestStatusChange moves a transaction to the target status.
//
// Rejections are gated by the 24-hour eligibility window measured from the
// stored created_at. When the store's transition policy blocks a direct jump
// to rejected, the transition is retried as two writes through pending; if
// the first fallback write fails, the original direct-update error is
// reported, since the fallback was never reached.
func (uc *WalletUC) RequestStatusChange(ctx context.Context, id int64, target models.TransactionStatus) (*models.WalletTransaction, error) {
	if !target.IsValid() {
		return nil, wallet.ErrInvalidStatus
	}

	existing, err := uc.txRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	previous := existing.Status

	var updated *models.WalletTransaction

	if target == models.StatusRejected {
		if time.Since(existing.CreatedAt) > RejectWindow {
			return nil, wallet.ErrEligibilityExpired
		}

		updated, err = uc.txRepo.UpdateStatus(ctx, id, models.StatusRejected)
		if err != nil {
			if !errors.Is(err, wallet.ErrTransitionBlocked) {
				return nil, err
			}
			directErr := err

			intermediate, pendErr := uc.txRepo.UpdateStatus(ctx, id, models.StatusPending)
			if pendErr != nil {
				return nil, directErr
			}
			uc.publishUpdated(ctx, intermediate)

			updated, err = uc.txRepo.UpdateStatus(ctx, id, models.StatusRejected)
			if err != nil {
				return nil, err
			}
		}
	} else {
		updated, err = uc.txRepo.UpdateStatus(ctx, id, target)
		if err != nil {
			return nil, err
		}
	}

	uc.invalidateMetrics(ctx)
	uc.publishUpdated(ctx, updated)

	// notification sink fires only for transitions landing in approved or
	// rejected; failures are logged, never surfaced, never rolled back
	if target == models.StatusApproved || target == models.StatusRejected {
		payload := &models.StatusWebhookPayload{
			Event:          models.WebhookEventStatusUpdated,
			TransactionID:  updated.ID,
			UserID:         updated.UserID,
			PreviousStatus: previous,
			NewStatus:      updated.Status,
			AmountCents:    updated.AmountCents,
			Method:         updated.Method,
			Timestamp:      time.Now().UTC(),
		}
		if err := uc.gw.NotifyStatusChanged(ctx, payload); err != nil {
			logger.Warn("Status change notification failed",
				logger.Err(err),
				logger.Int64("transaction_id", updated.ID),
				logger.String("new_status", updated.Status.String()),
			)
		}
	}

	return updated, nil
}

// publishUpdated emits a row-change event; the change stream is advisory and
// publish failures never affect the transition
func (uc *WalletUC) publishUpdated(ctx context.Context, tx *models.WalletTransaction) {
	if err := uc.gw.PublishTransactionUpdated(ctx, tx); err != nil {
		logger.Warn("Failed to publish transaction updated event",
			logger.Err(err),
			logger.Int64("transaction_id", tx.ID),
		)
	}
}
