package wallet

import "errors"

var (
	// ErrEligibilityExpired is returned when a reject is requested more than
	// 24 hours after the transaction was created
	ErrEligibilityExpired = errors.New("reject window expired (24 hours)")

	// ErrTransitionBlocked marks a store-side transition policy violation,
	// e.g. a trigger disallowing a direct approved to rejected jump
	ErrTransitionBlocked = errors.New("status transition blocked by store policy")

	// ErrTransactionNotFound is returned when no row matches the requested id
	ErrTransactionNotFound = errors.New("transaction not found")

	ErrInvalidStatus = errors.New("invalid transaction status")
	ErrInvalidMethod = errors.New("invalid payment method")
	ErrInvalidUserID = errors.New("user_id is required")
	ErrInvalidAmount = errors.New("amount_cents must be a positive integer")
)
