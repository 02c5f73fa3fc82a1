package bootstrap

import (
	"context"
	"log/slog"

	"salon-broker/internal/infra/kafka"
	"salon-broker/internal/infra/payment"
	"salon-broker/internal/pkg/config"
	"salon-broker/internal/usecase"
	"salon-broker/internal/usecase/commands"
	"salon-broker/internal/usecase/shared"

	"go.uber.org/fx"
)

var WorkerModule = fx.Module("worker",
	fx.Provide(
		NewSweeper,
	),
	fx.Invoke(
		startSweeper,
		startPaymentConsumer,
	),
)

func NewSweeper(ledger commands.SlotLedger, locker shared.Locker, cfg config.Config, logger *slog.Logger) *usecase.Sweeper {
	return usecase.NewSweeper(ledger, locker, cfg.Booking.SweepInterval, cfg.Redis.SweepLockTTL, logger)
}

func startSweeper(lc fx.Lifecycle, sweeper *usecase.Sweeper, logger *slog.Logger) {
	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})

	lc.Append(fx.Hook{
		OnStart: func(_ context.Context) error {
			logger.Info("Starting hold sweeper")
			go func() {
				defer close(done)
				sweeper.Run(ctx)
			}()
			return nil
		},
		OnStop: func(stopCtx context.Context) error {
			cancel()
			select {
			case <-done:
			case <-stopCtx.Done():
			}
			return nil
		},
	})
}

// startPaymentConsumer is a no-op unless KAFKA_BROKERS is set.
func startPaymentConsumer(lc fx.Lifecycle, cfg config.Config, settlement commands.SettlementCommands, logger *slog.Logger) {
	if len(cfg.Kafka.Brokers) == 0 {
		return
	}

	consumer := kafka.NewConsumer(cfg.Kafka, payment.IsPermanent, logger)
	handler := kafka.NewPaymentEventHandler(settlement, logger)
	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})

	lc.Append(fx.Hook{
		OnStart: func(_ context.Context) error {
			logger.Info("Starting payment event consumer",
				"brokers", cfg.Kafka.Brokers, "topic", cfg.Kafka.PaymentTopic, "workers", cfg.Kafka.Workers)
			go func() {
				defer close(done)
				if err := consumer.Start(ctx, handler); err != nil {
					logger.Error("Payment event consumer stopped", "error", err)
				}
			}()
			return nil
		},
		OnStop: func(stopCtx context.Context) error {
			cancel()
			select {
			case <-done:
			case <-stopCtx.Done():
			}
			return nil
		},
	})
}
