package bootstrap

import (
	"context"
	"log/slog"

	"salon-broker/internal/infra/lock"
	"salon-broker/internal/infra/notify"
	"salon-broker/internal/infra/payment"
	"salon-broker/internal/pkg/clock"
	"salon-broker/internal/pkg/config"
	"salon-broker/internal/usecase/shared"

	"github.com/redis/go-redis/v9"
	"go.uber.org/fx"
)

var IntegrationModule = fx.Module("integration",
	fx.Provide(
		fx.Annotate(
			NewPaymentGateway,
			fx.As(new(shared.PaymentGateway)),
		),
		fx.Annotate(
			NewNotifier,
			fx.As(new(shared.Notifier)),
		),
		fx.Annotate(
			NewLocker,
			fx.As(new(shared.Locker)),
		),
	),
)

func NewPaymentGateway(cfg config.Config, clk clock.Clock, logger *slog.Logger) *payment.Gateway {
	return payment.NewGateway(cfg.Payment, clk, logger)
}

func NewNotifier(lc fx.Lifecycle, cfg config.Config, clk clock.Clock, logger *slog.Logger) (*notify.Publisher, error) {
	pub, err := notify.Dial(cfg.Notify, clk, logger)
	if err != nil {
		return nil, err
	}

	lc.Append(fx.Hook{
		OnStop: func(_ context.Context) error {
			return pub.Close()
		},
	})

	return pub, nil
}

func NewLocker(client *redis.Client, logger *slog.Logger) *lock.RedisLocker {
	return lock.NewRedisLocker(client, nil, logger)
}
