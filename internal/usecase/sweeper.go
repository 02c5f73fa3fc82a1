package usecase

import (
	"context"
	"log/slog"
	"time"

	"salon-broker/internal/usecase/commands"
	"salon-broker/internal/usecase/shared"
)

const sweepLockKey = "salon-broker:sweeper"

// Sweeper periodically releases lapsed holds. Replicas coordinate through
// the Locker so a single instance sweeps per tick.
type Sweeper struct {
	ledger   commands.SlotLedger
	locker   shared.Locker
	interval time.Duration
	lockTTL  time.Duration
	logger   *slog.Logger
}

func NewSweeper(ledger commands.SlotLedger, locker shared.Locker, interval, lockTTL time.Duration, logger *slog.Logger) *Sweeper {
	return &Sweeper{
		ledger:   ledger,
		locker:   locker,
		interval: interval,
		lockTTL:  lockTTL,
		logger:   logger,
	}
}

// RunOnce sweeps if the lease is free. It returns nil report when another
// replica holds the lease.
func (s *Sweeper) RunOnce(ctx context.Context) (*commands.SweepReport, error) {
	if s.locker != nil {
		release, acquired, err := s.locker.TryAcquire(ctx, sweepLockKey, s.lockTTL)
		if err != nil {
			s.logger.Warn("sweep lock unavailable, sweeping anyway", "error", err)
		} else if !acquired {
			s.logger.Debug("sweep skipped: lease held elsewhere")
			return nil, nil
		} else {
			defer release(context.WithoutCancel(ctx))
		}
	}
	return s.ledger.SweepExpired(ctx)
}

// Run blocks until ctx is done.
func (s *Sweeper) Run(ctx context.Context) {
	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			if _, err := s.RunOnce(ctx); err != nil {
				s.logger.Error("sweep failed", "error", err)
			}
		}
	}
}
