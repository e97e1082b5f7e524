package usecase

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/rafflepay/wallet-dashboard/internal/pkg/models"
	"github.com/rafflepay/wallet-dashboard/services/wallet"
	"github.com/rafflepay/wallet-dashboard/services/wallet/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupEngineTest(t *testing.T) (*WalletUC, *mocks.MockTransactionRepo, *mocks.MockWalletGW) {
	ctrl := gomock.NewController(t)
	t.Cleanup(ctrl.Finish)

	mockRepo := mocks.NewMockTransactionRepo(ctrl)
	mockGW := mocks.NewMockWalletGW(ctrl)

	uc := NewWalletUC(&models.Config{}, mockRepo, mockGW, nil)
	return uc, mockRepo, mockGW
}

func pendingTransaction(id int64, age time.Duration) *models.WalletTransaction {
	now := time.Now()
	return &models.WalletTransaction{
		ID:          id,
		UserID:      "user123",
		AmountCents: 15000,
		Method:      models.MethodGCash,
		Status:      models.StatusPending,
		CreatedAt:   now.Add(-age),
		UpdatedAt:   now.Add(-age),
	}
}

func withStatus(tx *models.WalletTransaction, status models.TransactionStatus) *models.WalletTransaction {
	clone := *tx
	clone.Status = status
	clone.UpdatedAt = time.Now()
	return &clone
}

func TestRequestStatusChange_ApproveSuccess(t *testing.T) {
	uc, mockRepo, mockGW := setupEngineTest(t)

	existing := pendingTransaction(1, time.Hour)
	approved := withStatus(existing, models.StatusApproved)

	mockRepo.EXPECT().GetByID(gomock.Any(), int64(1)).Return(existing, nil)
	mockRepo.EXPECT().UpdateStatus(gomock.Any(), int64(1), models.StatusApproved).Return(approved, nil)
	mockGW.EXPECT().PublishTransactionUpdated(gomock.Any(), approved).Return(nil)
	mockGW.EXPECT().NotifyStatusChanged(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, payload *models.StatusWebhookPayload) error {
			assert.Equal(t, models.WebhookEventStatusUpdated, payload.Event)
			assert.Equal(t, int64(1), payload.TransactionID)
			assert.Equal(t, models.StatusPending, payload.PreviousStatus)
			assert.Equal(t, models.StatusApproved, payload.NewStatus)
			assert.Equal(t, int64(15000), payload.AmountCents)
			assert.Equal(t, models.MethodGCash, payload.Method)
			return nil
		})

	updated, err := uc.RequestStatusChange(context.Background(), 1, models.StatusApproved)

	require.NoError(t, err)
	assert.Equal(t, models.StatusApproved, updated.Status)
}

func TestRequestStatusChange_ApproveIgnoresAge(t *testing.T) {
	uc, mockRepo, mockGW := setupEngineTest(t)

	// well past the reject window; approvals are not time-gated
	existing := pendingTransaction(2, 72*time.Hour)
	approved := withStatus(existing, models.StatusApproved)

	mockRepo.EXPECT().GetByID(gomock.Any(), int64(2)).Return(existing, nil)
	mockRepo.EXPECT().UpdateStatus(gomock.Any(), int64(2), models.StatusApproved).Return(approved, nil)
	mockGW.EXPECT().PublishTransactionUpdated(gomock.Any(), approved).Return(nil)
	mockGW.EXPECT().NotifyStatusChanged(gomock.Any(), gomock.Any()).Return(nil)

	updated, err := uc.RequestStatusChange(context.Background(), 2, models.StatusApproved)

	require.NoError(t, err)
	assert.Equal(t, models.StatusApproved, updated.Status)
}

func TestRequestStatusChange_PendingNoNotification(t *testing.T) {
	uc, mockRepo, mockGW := setupEngineTest(t)

	existing := pendingTransaction(3, 48*time.Hour)
	existing.Status = models.StatusApproved
	pending := withStatus(existing, models.StatusPending)

	mockRepo.EXPECT().GetByID(gomock.Any(), int64(3)).Return(existing, nil)
	mockRepo.EXPECT().UpdateStatus(gomock.Any(), int64(3), models.StatusPending).Return(pending, nil)
	mockGW.EXPECT().PublishTransactionUpdated(gomock.Any(), pending).Return(nil)
	// no NotifyStatusChanged expectation: a pending landing never notifies

	updated, err := uc.RequestStatusChange(context.Background(), 3, models.StatusPending)

	require.NoError(t, err)
	assert.Equal(t, models.StatusPending, updated.Status)
}

func TestRequestStatusChange_RejectWithinWindow(t *testing.T) {
	uc, mockRepo, mockGW := setupEngineTest(t)

	existing := pendingTransaction(4, 23*time.Hour+59*time.Minute)
	rejected := withStatus(existing, models.StatusRejected)

	mockRepo.EXPECT().GetByID(gomock.Any(), int64(4)).Return(existing, nil)
	mockRepo.EXPECT().UpdateStatus(gomock.Any(), int64(4), models.StatusRejected).Return(rejected, nil)
	mockGW.EXPECT().PublishTransactionUpdated(gomock.Any(), rejected).Return(nil)
	mockGW.EXPECT().NotifyStatusChanged(gomock.Any(), gomock.Any()).Return(nil)

	updated, err := uc.RequestStatusChange(context.Background(), 4, models.StatusRejected)

	require.NoError(t, err)
	assert.Equal(t, models.StatusRejected, updated.Status)
}

func TestRequestStatusChange_RejectWindowExpired(t *testing.T) {
	uc, mockRepo, _ := setupEngineTest(t)

	existing := pendingTransaction(5, 24*time.Hour+time.Minute)

	// GetByID is the only store interaction; no mutation may happen
	mockRepo.EXPECT().GetByID(gomock.Any(), int64(5)).Return(existing, nil)

	updated, err := uc.RequestStatusChange(context.Background(), 5, models.StatusRejected)

	assert.ErrorIs(t, err, wallet.ErrEligibilityExpired)
	assert.Nil(t, updated)
}

func TestRequestStatusChange_FallbackSuccess(t *testing.T) {
	uc, mockRepo, mockGW := setupEngineTest(t)

	existing := pendingTransaction(6, time.Hour)
	existing.Status = models.StatusApproved
	intermediate := withStatus(existing, models.StatusPending)
	rejected := withStatus(existing, models.StatusRejected)

	directErr := fmt.Errorf("%w: cannot change status from approved to rejected", wallet.ErrTransitionBlocked)

	mockRepo.EXPECT().GetByID(gomock.Any(), int64(6)).Return(existing, nil)
	gomock.InOrder(
		mockRepo.EXPECT().UpdateStatus(gomock.Any(), int64(6), models.StatusRejected).Return(nil, directErr),
		mockRepo.EXPECT().UpdateStatus(gomock.Any(), int64(6), models.StatusPending).Return(intermediate, nil),
		mockRepo.EXPECT().UpdateStatus(gomock.Any(), int64(6), models.StatusRejected).Return(rejected, nil),
	)
	mockGW.EXPECT().PublishTransactionUpdated(gomock.Any(), intermediate).Return(nil)
	mockGW.EXPECT().PublishTransactionUpdated(gomock.Any(), rejected).Return(nil)
	mockGW.EXPECT().NotifyStatusChanged(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, payload *models.StatusWebhookPayload) error {
			assert.Equal(t, models.StatusApproved, payload.PreviousStatus)
			assert.Equal(t, models.StatusRejected, payload.NewStatus)
			return nil
		})

	updated, err := uc.RequestStatusChange(context.Background(), 6, models.StatusRejected)

	require.NoError(t, err)
	assert.Equal(t, models.StatusRejected, updated.Status)
}

func TestRequestStatusChange_FallbackFirstStepFailsKeepsOriginalError(t *testing.T) {
	uc, mockRepo, _ := setupEngineTest(t)

	existing := pendingTransaction(7, time.Hour)
	existing.Status = models.StatusApproved

	directErr := fmt.Errorf("%w: cannot change status from approved to rejected", wallet.ErrTransitionBlocked)
	pendErr := errors.New("connection reset")

	mockRepo.EXPECT().GetByID(gomock.Any(), int64(7)).Return(existing, nil)
	gomock.InOrder(
		mockRepo.EXPECT().UpdateStatus(gomock.Any(), int64(7), models.StatusRejected).Return(nil, directErr),
		mockRepo.EXPECT().UpdateStatus(gomock.Any(), int64(7), models.StatusPending).Return(nil, pendErr),
	)

	updated, err := uc.RequestStatusChange(context.Background(), 7, models.StatusRejected)

	assert.Nil(t, updated)
	// the fallback was never reached, so the direct-update error surfaces
	assert.ErrorIs(t, err, wallet.ErrTransitionBlocked)
	assert.NotContains(t, err.Error(), "connection reset")
}

func TestRequestStatusChange_FallbackSecondStepFails(t *testing.T) {
	uc, mockRepo, mockGW := setupEngineTest(t)

	existing := pendingTransaction(8, time.Hour)
	existing.Status = models.StatusApproved
	intermediate := withStatus(existing, models.StatusPending)

	directErr := fmt.Errorf("%w: cannot change status from approved to rejected", wallet.ErrTransitionBlocked)
	rejErr := errors.New("failed to update transaction status: timeout")

	mockRepo.EXPECT().GetByID(gomock.Any(), int64(8)).Return(existing, nil)
	gomock.InOrder(
		mockRepo.EXPECT().UpdateStatus(gomock.Any(), int64(8), models.StatusRejected).Return(nil, directErr),
		mockRepo.EXPECT().UpdateStatus(gomock.Any(), int64(8), models.StatusPending).Return(intermediate, nil),
		mockRepo.EXPECT().UpdateStatus(gomock.Any(), int64(8), models.StatusRejected).Return(nil, rejErr),
	)
	mockGW.EXPECT().PublishTransactionUpdated(gomock.Any(), intermediate).Return(nil)

	updated, err := uc.RequestStatusChange(context.Background(), 8, models.StatusRejected)

	assert.Nil(t, updated)
	assert.EqualError(t, err, rejErr.Error())
}

func TestRequestStatusChange_NonPolicyErrorPropagates(t *testing.T) {
	uc, mockRepo, _ := setupEngineTest(t)

	existing := pendingTransaction(9, time.Hour)
	storeErr := errors.New("failed to update transaction status: connection refused")

	mockRepo.EXPECT().GetByID(gomock.Any(), int64(9)).Return(existing, nil)
	mockRepo.EXPECT().UpdateStatus(gomock.Any(), int64(9), models.StatusRejected).Return(nil, storeErr)

	updated, err := uc.RequestStatusChange(context.Background(), 9, models.StatusRejected)

	assert.Nil(t, updated)
	assert.EqualError(t, err, storeErr.Error())
}

func TestRequestStatusChange_NotFound(t *testing.T) {
	uc, mockRepo, _ := setupEngineTest(t)

	mockRepo.EXPECT().GetByID(gomock.Any(), int64(404)).Return(nil, wallet.ErrTransactionNotFound)

	updated, err := uc.RequestStatusChange(context.Background(), 404, models.StatusApproved)

	assert.Nil(t, updated)
	assert.ErrorIs(t, err, wallet.ErrTransactionNotFound)
}

func TestRequestStatusChange_InvalidStatus(t *testing.T) {
	uc, _, _ := setupEngineTest(t)

	updated, err := uc.RequestStatusChange(context.Background(), 1, models.TransactionStatus("archived"))

	assert.Nil(t, updated)
	assert.ErrorIs(t, err, wallet.ErrInvalidStatus)
}

func TestRequestStatusChange_NotificationFailureAbsorbed(t *testing.T) {
	uc, mockRepo, mockGW := setupEngineTest(t)

	existing := pendingTransaction(10, time.Hour)
	approved := withStatus(existing, models.StatusApproved)

	mockRepo.EXPECT().GetByID(gomock.Any(), int64(10)).Return(existing, nil)
	mockRepo.EXPECT().UpdateStatus(gomock.Any(), int64(10), models.StatusApproved).Return(approved, nil)
	mockGW.EXPECT().PublishTransactionUpdated(gomock.Any(), approved).Return(nil)
	mockGW.EXPECT().NotifyStatusChanged(gomock.Any(), gomock.Any()).Return(errors.New("webhook failed with status: 503"))

	updated, err := uc.RequestStatusChange(context.Background(), 10, models.StatusApproved)

	// the status mutation is committed once the store confirms it
	require.NoError(t, err)
	assert.Equal(t, models.StatusApproved, updated.Status)
}

func TestCreateCashIn_Success(t *testing.T) {
	uc, mockRepo, mockGW := setupEngineTest(t)

	req := &models.CashInRequest{
		UserID:      "user123",
		AmountCents: 15000,
		Method:      models.MethodGCash,
	}
	created := &models.WalletTransaction{
		ID:          42,
		UserID:      "user123",
		AmountCents: 15000,
		Method:      models.MethodGCash,
		Status:      models.StatusPending,
		CreatedAt:   time.Now(),
	}

	mockRepo.EXPECT().Insert(gomock.Any(), req).Return(created, nil)
	mockGW.EXPECT().PublishTransactionCreated(gomock.Any(), created).Return(nil)

	got, err := uc.CreateCashIn(context.Background(), req)

	require.NoError(t, err)
	assert.Equal(t, models.StatusPending, got.Status)
	assert.Equal(t, int64(15000), got.AmountCents)
}

func TestCreateCashIn_Validation(t *testing.T) {
	uc, _, _ := setupEngineTest(t)

	testCases := []struct {
		name    string
		req     *models.CashInRequest
		wantErr error
	}{
		{
			name:    "missing user",
			req:     &models.CashInRequest{AmountCents: 100, Method: models.MethodBank},
			wantErr: wallet.ErrInvalidUserID,
		},
		{
			name:    "zero amount",
			req:     &models.CashInRequest{UserID: "u1", AmountCents: 0, Method: models.MethodBank},
			wantErr: wallet.ErrInvalidAmount,
		},
		{
			name:    "negative amount",
			req:     &models.CashInRequest{UserID: "u1", AmountCents: -500, Method: models.MethodBank},
			wantErr: wallet.ErrInvalidAmount,
		},
		{
			name:    "unknown method",
			req:     &models.CashInRequest{UserID: "u1", AmountCents: 100, Method: models.PaymentMethod("Cash")},
			wantErr: wallet.ErrInvalidMethod,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := uc.CreateCashIn(context.Background(), tc.req)
			assert.Nil(t, got)
			assert.ErrorIs(t, err, tc.wantErr)
		})
	}
}

func TestCreateCashIn_InsertError(t *testing.T) {
	uc, mockRepo, _ := setupEngineTest(t)

	req := &models.CashInRequest{UserID: "u1", AmountCents: 100, Method: models.MethodPayPal}
	insertErr := errors.New("failed to insert transaction: connection refused")

	mockRepo.EXPECT().Insert(gomock.Any(), req).Return(nil, insertErr)

	got, err := uc.CreateCashIn(context.Background(), req)

	assert.Nil(t, got)
	assert.EqualError(t, err, insertErr.Error())
}
