package constants

// NATS subjects for the transaction change-notification stream
const (
	SubjectTransactionCreated = "wallet.transaction.created"
	SubjectTransactionUpdated = "wallet.transaction.updated"
	SubjectTransactionDeleted = "wallet.transaction.deleted"
)
