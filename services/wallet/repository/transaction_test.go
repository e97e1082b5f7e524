package repository

import (
	"context"
	"database/sql"
	"errors"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jackc/pgconn"
	"github.com/jmoiron/sqlx"
	"github.com/rafflepay/wallet-dashboard/internal/pkg/models"
	"github.com/rafflepay/wallet-dashboard/services/wallet"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var columns = []string{"id", "user_id", "amount_cents", "method", "status", "created_at", "updated_at", "referral_code"}

func setupRepoTest(t *testing.T) (*TransactionRepo, sqlmock.Sqlmock) {
	mockDB, mock, err := sqlmock.New()
	require.NoError(t, err)

	sqlxDB := sqlx.NewDb(mockDB, "sqlmock")
	t.Cleanup(func() { sqlxDB.Close() })

	repo := &TransactionRepo{
		cfg: &models.Config{},
		db:  sqlxDB,
	}

	return repo, mock
}

func transactionRow(id int64, status models.TransactionStatus) *sqlmock.Rows {
	now := time.Now()
	return sqlmock.NewRows(columns).
		AddRow(id, "user123", int64(15000), "GCash", string(status), now, now, nil)
}

func TestGetByID(t *testing.T) {
	t.Run("found", func(t *testing.T) {
		repo, mock := setupRepoTest(t)

		mock.ExpectQuery("^SELECT (.+) FROM wallet_transactions WHERE id").
			WithArgs(int64(1)).
			WillReturnRows(transactionRow(1, models.StatusPending))

		tx, err := repo.GetByID(context.Background(), 1)

		require.NoError(t, err)
		assert.Equal(t, int64(1), tx.ID)
		assert.Equal(t, models.StatusPending, tx.Status)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("not found", func(t *testing.T) {
		repo, mock := setupRepoTest(t)

		mock.ExpectQuery("^SELECT (.+) FROM wallet_transactions WHERE id").
			WithArgs(int64(99)).
			WillReturnError(sql.ErrNoRows)

		tx, err := repo.GetByID(context.Background(), 99)

		assert.Nil(t, tx)
		assert.ErrorIs(t, err, wallet.ErrTransactionNotFound)
	})
}

func TestList(t *testing.T) {
	t.Run("no filter", func(t *testing.T) {
		repo, mock := setupRepoTest(t)

		rows := sqlmock.NewRows(columns).
			AddRow(int64(2), "bob", int64(500), "Bank", "approved", time.Now(), time.Now(), nil).
			AddRow(int64(1), "alice", int64(1500), "GCash", "pending", time.Now().Add(-time.Hour), time.Now().Add(-time.Hour), nil)
		mock.ExpectQuery("^SELECT (.+) FROM wallet_transactions ORDER BY created_at DESC").
			WillReturnRows(rows)

		txs, err := repo.List(context.Background(), models.TransactionFilter{})

		require.NoError(t, err)
		require.Len(t, txs, 2)
		assert.Equal(t, int64(2), txs[0].ID)
	})

	t.Run("search filter is case-insensitive", func(t *testing.T) {
		repo, mock := setupRepoTest(t)

		mock.ExpectQuery("^SELECT (.+) FROM wallet_transactions WHERE \\(LOWER\\(user_id\\) LIKE").
			WithArgs("%alice%").
			WillReturnRows(transactionRow(1, models.StatusPending))

		txs, err := repo.List(context.Background(), models.TransactionFilter{Search: "ALICE"})

		require.NoError(t, err)
		assert.Len(t, txs, 1)
	})

	t.Run("date range filter", func(t *testing.T) {
		repo, mock := setupRepoTest(t)

		start := time.Date(2025, 8, 1, 0, 0, 0, 0, time.UTC)
		end := time.Date(2025, 8, 31, 0, 0, 0, 0, time.UTC)

		mock.ExpectQuery("^SELECT (.+) FROM wallet_transactions WHERE created_at >= (.+) AND created_at <=").
			WithArgs(start, end).
			WillReturnRows(sqlmock.NewRows(columns))

		txs, err := repo.List(context.Background(), models.TransactionFilter{Start: &start, End: &end})

		require.NoError(t, err)
		assert.Empty(t, txs)
	})
}

func TestInsert(t *testing.T) {
	repo, mock := setupRepoTest(t)

	mock.ExpectQuery("INSERT INTO wallet_transactions").
		WithArgs("user123", int64(15000), models.MethodGCash, models.StatusPending, nil).
		WillReturnRows(transactionRow(42, models.StatusPending))

	req := &models.CashInRequest{
		UserID:      "user123",
		AmountCents: 15000,
		Method:      models.MethodGCash,
	}

	tx, err := repo.Insert(context.Background(), req)

	require.NoError(t, err)
	assert.Equal(t, int64(42), tx.ID)
	assert.Equal(t, models.StatusPending, tx.Status)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestUpdateStatus(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		repo, mock := setupRepoTest(t)

		mock.ExpectQuery("UPDATE wallet_transactions").
			WithArgs(models.StatusApproved, int64(1)).
			WillReturnRows(transactionRow(1, models.StatusApproved))

		tx, err := repo.UpdateStatus(context.Background(), 1, models.StatusApproved)

		require.NoError(t, err)
		assert.Equal(t, models.StatusApproved, tx.Status)
	})

	t.Run("transition policy violation maps to sentinel", func(t *testing.T) {
		repo, mock := setupRepoTest(t)

		pgErr := &pgconn.PgError{
			Code:    "P0001",
			Message: "cannot change status from approved to rejected",
		}
		mock.ExpectQuery("UPDATE wallet_transactions").
			WithArgs(models.StatusRejected, int64(1)).
			WillReturnError(pgErr)

		tx, err := repo.UpdateStatus(context.Background(), 1, models.StatusRejected)

		assert.Nil(t, tx)
		assert.ErrorIs(t, err, wallet.ErrTransitionBlocked)
		assert.Contains(t, err.Error(), "cannot change status")
	})

	t.Run("unrelated pg error is not a policy violation", func(t *testing.T) {
		repo, mock := setupRepoTest(t)

		pgErr := &pgconn.PgError{
			Code:    "23514",
			Message: "new row violates check constraint",
		}
		mock.ExpectQuery("UPDATE wallet_transactions").
			WithArgs(models.StatusRejected, int64(1)).
			WillReturnError(pgErr)

		tx, err := repo.UpdateStatus(context.Background(), 1, models.StatusRejected)

		assert.Nil(t, tx)
		assert.NotErrorIs(t, err, wallet.ErrTransitionBlocked)
	})

	t.Run("plain error is not a policy violation", func(t *testing.T) {
		repo, mock := setupRepoTest(t)

		mock.ExpectQuery("UPDATE wallet_transactions").
			WithArgs(models.StatusRejected, int64(1)).
			WillReturnError(errors.New("connection refused"))

		tx, err := repo.UpdateStatus(context.Background(), 1, models.StatusRejected)

		assert.Nil(t, tx)
		assert.NotErrorIs(t, err, wallet.ErrTransitionBlocked)
	})

	t.Run("not found", func(t *testing.T) {
		repo, mock := setupRepoTest(t)

		mock.ExpectQuery("UPDATE wallet_transactions").
			WithArgs(models.StatusApproved, int64(99)).
			WillReturnError(sql.ErrNoRows)

		tx, err := repo.UpdateStatus(context.Background(), 99, models.StatusApproved)

		assert.Nil(t, tx)
		assert.ErrorIs(t, err, wallet.ErrTransactionNotFound)
	})
}

func TestTransitionPolicyMessage(t *testing.T) {
	testCases := []struct {
		name    string
		message string
		blocked bool
	}{
		{"cannot change status", "cannot change status from approved to rejected", true},
		{"status transition", "invalid status transition", true},
		{"not allowed", "direct jump not allowed", true},
		{"unrelated", "duplicate key value violates unique constraint", false},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			err := &pgconn.PgError{Code: "P0001", Message: tc.message}
			msg, blocked := transitionPolicyMessage(err)
			assert.Equal(t, tc.blocked, blocked)
			if blocked {
				assert.Equal(t, tc.message, msg)
			}
		})
	}
}
