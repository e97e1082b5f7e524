package usecase

import (
	"context"
	"encoding/json"
	"time"

	"github.com/rafflepay/wallet-dashboard/internal/pkg/constants"
	"github.com/rafflepay/wallet-dashboard/internal/pkg/logger"
	"github.com/rafflepay/wallet-dashboard/internal/pkg/models"
)

// analyticsWindowDays is how far back the daily volume chart reaches
const analyticsWindowDays = 30

// DashboardMetrics computes the dashboard summary figures. Results are
// cached in Redis for a short TTL; the store stays the ground truth and the
// cache is dropped on every engine write.
func (uc *WalletUC) DashboardMetrics(ctx context.Context) (*models.DashboardMetrics, error) {
	if cached := uc.cachedMetrics(ctx); cached != nil {
		return cached, nil
	}

	total, err := uc.txRepo.TotalApprovedCents(ctx)
	if err != nil {
		return nil, err
	}

	now := time.Now()
	firstOfMonth := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location())
	approvedThisMonth, err := uc.txRepo.ApprovedCentsSince(ctx, firstOfMonth)
	if err != nil {
		return nil, err
	}

	pending, err := uc.txRepo.CountByStatus(ctx, models.StatusPending)
	if err != nil {
		return nil, err
	}

	topReferrer, err := uc.txRepo.TopReferrer(ctx)
	if err != nil {
		return nil, err
	}

	metrics := &models.DashboardMetrics{
		TotalBalanceCents: total,
		ApprovedThisMonth: approvedThisMonth,
		PendingRequests:   pending,
		TopReferrer:       topReferrer,
		GeneratedAt:       now.UTC(),
	}

	uc.cacheMetrics(ctx, metrics)

	return metrics, nil
}

// Analytics returns the aggregates behind the dashboard charts
func (uc *WalletUC) Analytics(ctx context.Context) (*models.AnalyticsReport, error) {
	daily, err := uc.txRepo.DailyVolume(ctx, analyticsWindowDays)
	if err != nil {
		return nil, err
	}

	methods, err := uc.txRepo.MethodBreakdown(ctx)
	if err != nil {
		return nil, err
	}

	return &models.AnalyticsReport{
		Daily:   daily,
		Methods: methods,
	}, nil
}

func (uc *WalletUC) cachedMetrics(ctx context.Context) *models.DashboardMetrics {
	if uc.cache == nil {
		return nil
	}

	raw, err := uc.cache.Get(ctx, constants.KeyDashboardMetrics)
	if err != nil {
		return nil
	}

	var metrics models.DashboardMetrics
	if err := json.Unmarshal([]byte(raw), &metrics); err != nil {
		logger.Warn("Discarding malformed cached metrics", logger.Err(err))
		return nil
	}

	return &metrics
}

func (uc *WalletUC) cacheMetrics(ctx context.Context, metrics *models.DashboardMetrics) {
	if uc.cache == nil {
		return
	}

	raw, err := json.Marshal(metrics)
	if err != nil {
		return
	}

	if err := uc.cache.Set(ctx, constants.KeyDashboardMetrics, raw, constants.MetricsCacheTTL); err != nil {
		logger.Warn("Failed to cache dashboard metrics", logger.Err(err))
	}
}

// invalidateMetrics drops the cached summary after any store mutation
func (uc *WalletUC) invalidateMetrics(ctx context.Context) {
	if uc.cache == nil {
		return
	}

	if err := uc.cache.Delete(ctx, constants.KeyDashboardMetrics); err != nil {
		logger.Warn("Failed to invalidate dashboard metrics cache", logger.Err(err))
	}
}
