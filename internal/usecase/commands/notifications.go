package commands

import (
	"context"
	"log/slog"

	"salon-broker/internal/pkg/clock"
	"salon-broker/internal/pkg/metrics"
	"salon-broker/internal/usecase/shared"
)

type notification struct {
	dedupeKey string
	requestID int64
	recipient string
	kind      shared.NotificationKind
	data      map[string]any
}

// dispatcher sends best-effort notifications. Failures are logged and never
// surface to the caller.
type dispatcher struct {
	notifier shared.Notifier
	uow      shared.UnitOfWork
	clock    clock.Clock
	logger   *slog.Logger
}

func newDispatcher(notifier shared.Notifier, uow shared.UnitOfWork, clk clock.Clock, logger *slog.Logger) *dispatcher {
	return &dispatcher{notifier: notifier, uow: uow, clock: clk, logger: logger}
}

func (d *dispatcher) send(ctx context.Context, n notification) {
	if n.recipient == "" {
		d.logger.Warn("notification skipped: no recipient", "kind", n.kind, "request_id", n.requestID)
		return
	}

	var claimed bool
	err := d.uow.WithDB(ctx, func(ctx context.Context, tx shared.Tx) error {
		var err error
		claimed, err = tx.NotificationLogs().Claim(ctx, shared.NotificationLogEntry{
			DedupeKey: n.dedupeKey,
			RequestID: n.requestID,
			Recipient: n.recipient,
			Kind:      n.kind,
			CreatedAt: d.clock.Now(),
		})
		return err
	})
	if err != nil {
		d.logger.Warn("notification log unavailable", "kind", n.kind, "dedupe_key", n.dedupeKey, "error", err)
		return
	}
	if !claimed {
		d.logger.Debug("notification already sent", "kind", n.kind, "dedupe_key", n.dedupeKey)
		return
	}

	res, err := d.notifier.Notify(ctx, n.recipient, n.kind, n.data)
	delivered := err == nil && res.Delivered
	metrics.ObserveNotification(string(n.kind), delivered)
	if err != nil {
		d.logger.Warn("notification failed", "kind", n.kind, "request_id", n.requestID, "error", err)
		return
	}
	if !delivered {
		return
	}

	err = d.uow.WithDB(ctx, func(ctx context.Context, tx shared.Tx) error {
		return tx.NotificationLogs().MarkDelivered(ctx, n.dedupeKey, res.MessageRef, d.clock.Now())
	})
	if err != nil {
		d.logger.Warn("failed to mark notification delivered", "dedupe_key", n.dedupeKey, "error", err)
	}
}
