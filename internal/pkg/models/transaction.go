package models

import (
	"time"
)

// TransactionStatus represents the lifecycle state of a wallet transaction
type TransactionStatus string

const (
	StatusPending  TransactionStatus = "pending"
	StatusApproved TransactionStatus = "approved"
	StatusRejected TransactionStatus = "rejected"
)

// IsValid reports whether the status is one of the enumerated lifecycle states
func (s TransactionStatus) IsValid() bool {
	switch s {
	case StatusPending, StatusApproved, StatusRejected:
		return true
	}
	return false
}

func (s TransactionStatus) String() string {
	return string(s)
}

// PaymentMethod represents the payment channel used for a cash-in
type PaymentMethod string

const (
	MethodGCash  PaymentMethod = "GCash"
	MethodBank   PaymentMethod = "Bank"
	MethodPayPal PaymentMethod = "PayPal"
)

// IsValid reports whether the method is one of the supported channels
func (m PaymentMethod) IsValid() bool {
	switch m {
	case MethodGCash, MethodBank, MethodPayPal:
		return true
	}
	return false
}

func (m PaymentMethod) String() string {
	return string(m)
}

// WalletTransaction represents a user cash-in request
type WalletTransaction struct {
	ID           int64             `json:"id" db:"id"`
	UserID       string            `json:"user_id" db:"user_id"`
	AmountCents  int64             `json:"amount_cents" db:"amount_cents"`
	Method       PaymentMethod     `json:"method" db:"method"`
	Status       TransactionStatus `json:"status" db:"status"`
	CreatedAt    time.Time         `json:"created_at" db:"created_at"`
	UpdatedAt    time.Time         `json:"updated_at" db:"updated_at"`
	ReferralCode *string           `json:"referral_code" db:"referral_code"`
}

// CashInRequest represents a request to create a new pending transaction
type CashInRequest struct {
	UserID       string        `json:"user_id"`
	AmountCents  int64         `json:"amount_cents"`
	Method       PaymentMethod `json:"method"`
	ReferralCode string        `json:"referral_code,omitempty"`
}

// StatusChangeRequest represents a request to move a transaction to a new status
type StatusChangeRequest struct {
	Status TransactionStatus `json:"status"`
}

// TransactionFilter narrows a transaction listing
type TransactionFilter struct {
	Search string     // matches user_id, method or referral_code, case-insensitive
	Start  *time.Time // inclusive lower bound on created_at
	End    *time.Time // inclusive upper bound on created_at
}
