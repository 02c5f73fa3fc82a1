package kafka

import (
	"context"
	"log/slog"

	"salon-broker/internal/infra/payment"
	"salon-broker/internal/usecase/commands"

	"github.com/segmentio/kafka-go"
)

// NewPaymentEventHandler feeds processor events from the topic into settlement.
// Stale events are acknowledged.
func NewPaymentEventHandler(settlement commands.SettlementCommands, logger *slog.Logger) Handler {
	return func(ctx context.Context, m kafka.Message) error {
		ev, err := payment.ParseEvent(m.Value)
		if err != nil {
			return err
		}
		completed, ok, err := ev.PaymentCompleted()
		if err != nil {
			return err
		}
		if !ok {
			logger.Debug("ignoring payment event", "event_id", ev.ID, "type", ev.Type)
			return nil
		}

		res, err := settlement.OnPaymentCompleted(ctx, completed)
		if err != nil {
			return err
		}
		logger.Info("payment event processed",
			"event_id", ev.ID, "transaction_ref", completed.TransactionRef, "outcome", res.Outcome)
		return nil
	}
}
