package repository

import (
	"context"
	"time"

	"salon-broker/internal/infra"
	sqlc "salon-broker/internal/infra/sqlc/generated"
	"salon-broker/internal/pkg/pgconv"
	"salon-broker/internal/usecase/shared"
)

type NotificationLogQueries interface {
	ClaimNotification(ctx context.Context, db sqlc.DBTX, arg sqlc.ClaimNotificationParams) (int64, error)
	MarkNotificationDelivered(ctx context.Context, db sqlc.DBTX, arg sqlc.MarkNotificationDeliveredParams) (int64, error)
}

type NotificationLogRepository struct {
	queries NotificationLogQueries
	db      sqlc.DBTX
}

func NewNotificationLogRepository(queries NotificationLogQueries, db sqlc.DBTX) *NotificationLogRepository {
	return &NotificationLogRepository{
		queries: queries,
		db:      db,
	}
}

// Claim inserts the dedupe key; false means some earlier attempt owns it.
func (r *NotificationLogRepository) Claim(ctx context.Context, entry shared.NotificationLogEntry) (bool, error) {
	n, err := r.queries.ClaimNotification(ctx, r.db, sqlc.ClaimNotificationParams{
		DedupeKey: entry.DedupeKey,
		RequestID: entry.RequestID,
		Recipient: entry.Recipient,
		Kind:      string(entry.Kind),
		CreatedAt: pgconv.TimeToPgtype(entry.CreatedAt),
	})
	if err != nil {
		return false, infra.WrapRepoErr("failed to claim notification", err)
	}
	return n > 0, nil
}

func (r *NotificationLogRepository) MarkDelivered(ctx context.Context, dedupeKey, messageRef string, now time.Time) error {
	n, err := r.queries.MarkNotificationDelivered(ctx, r.db, sqlc.MarkNotificationDeliveredParams{
		DedupeKey:   dedupeKey,
		MessageRef:  pgconv.StringToPgtype(messageRef),
		DeliveredAt: pgconv.TimeToPgtype(now),
	})
	if err != nil {
		return infra.WrapRepoErr("failed to mark notification delivered", err)
	}
	if n == 0 {
		return infra.NotFound("notification log not found")
	}
	return nil
}
