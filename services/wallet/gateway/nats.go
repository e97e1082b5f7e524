package gateway

import (
	"context"
	"encoding/json"

	"github.com/rafflepay/wallet-dashboard/internal/pkg/constants"
	"github.com/rafflepay/wallet-dashboard/internal/pkg/models"
)

// PublishTransactionCreated publishes an insert event to the change stream
func (g *WalletGW) PublishTransactionCreated(ctx context.Context, tx *models.WalletTransaction) error {
	event := models.TransactionChangeEvent{
		Event:       models.ChangeEventInsert,
		Transaction: tx,
	}

	data, err := json.Marshal(event)
	if err != nil {
		return err
	}
	return g.natsClient.Publish(constants.SubjectTransactionCreated, data)
}

// PublishTransactionUpdated publishes an update event to the change stream
func (g *WalletGW) PublishTransactionUpdated(ctx context.Context, tx *models.WalletTransaction) error {
	event := models.TransactionChangeEvent{
		Event:       models.ChangeEventUpdate,
		Transaction: tx,
	}

	data, err := json.Marshal(event)
	if err != nil {
		return err
	}
	return g.natsClient.Publish(constants.SubjectTransactionUpdated, data)
}
