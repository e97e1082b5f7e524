package models

import (
	"time"
)

// Change event types emitted on the transaction change stream
const (
	ChangeEventInsert = "insert"
	ChangeEventUpdate = "update"
	ChangeEventDelete = "delete"
)

// TransactionChangeEvent is pushed to the change stream whenever a row is
// inserted, updated or deleted in the transaction table
type TransactionChangeEvent struct {
	Event       string             `json:"event"`
	Transaction *WalletTransaction `json:"transaction"`
}

// WebhookEventStatusUpdated identifies a status-update webhook payload
const WebhookEventStatusUpdated = "transaction_status_updated"

// StatusWebhookPayload is the body posted to the notification sink after a
// transaction lands in approved or rejected
type StatusWebhookPayload struct {
	Event          string            `json:"event"`
	TransactionID  int64             `json:"transaction_id"`
	UserID         string            `json:"user_id"`
	PreviousStatus TransactionStatus `json:"previous_status"`
	NewStatus      TransactionStatus `json:"new_status"`
	AmountCents    int64             `json:"amount_cents"`
	Method         PaymentMethod     `json:"method"`
	Timestamp      time.Time         `json:"timestamp"`
}

// DashboardMetrics aggregates the summary figures shown on the dashboard
type DashboardMetrics struct {
	TotalBalanceCents int64        `json:"total_balance_cents"`
	ApprovedThisMonth int64        `json:"approved_this_month_cents"`
	PendingRequests   int64        `json:"pending_requests"`
	TopReferrer       *TopReferrer `json:"top_referrer"`
	GeneratedAt       time.Time    `json:"generated_at"`
}

// TopReferrer is the referral code with the largest summed approved amount
type TopReferrer struct {
	ReferralCode     string `json:"referral_code"`
	TotalAmountCents int64  `json:"total_amount_cents"`
}

// DailyVolume is one day's worth of cash-in volume for the analytics charts
type DailyVolume struct {
	Day           time.Time `json:"day" db:"day"`
	TotalCents    int64     `json:"total_cents" db:"total_cents"`
	ApprovedCents int64     `json:"approved_cents" db:"approved_cents"`
	Count         int64     `json:"count" db:"count"`
}

// MethodBreakdown is the per-channel slice of the analytics charts
type MethodBreakdown struct {
	Method     PaymentMethod `json:"method" db:"method"`
	TotalCents int64         `json:"total_cents" db:"total_cents"`
	Count      int64         `json:"count" db:"count"`
}

// AnalyticsReport bundles the aggregates the dashboard charts consume
type AnalyticsReport struct {
	Daily   []DailyVolume     `json:"daily"`
	Methods []MethodBreakdown `json:"methods"`
}
