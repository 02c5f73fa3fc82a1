package kafka

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"salon-broker/internal/pkg/config"

	"github.com/segmentio/kafka-go"
)

// Handler returns nil only when the message is done and its offset may be
// committed.
type Handler func(ctx context.Context, m kafka.Message) error

// Reader is the subset of *kafka.Reader the consumer uses.
type Reader interface {
	FetchMessage(ctx context.Context) (kafka.Message, error)
	CommitMessages(ctx context.Context, msgs ...kafka.Message) error
	Close() error
}

type Consumer struct {
	r         Reader
	workers   int
	backoff   time.Duration
	permanent func(error) bool
	logger    *slog.Logger
}

func NewConsumer(cfg config.KafkaConfig, permanent func(error) bool, logger *slog.Logger) *Consumer {
	r := kafka.NewReader(kafka.ReaderConfig{
		Brokers:        cfg.Brokers,
		GroupID:        cfg.GroupID,
		Topic:          cfg.PaymentTopic,
		MinBytes:       1,
		MaxBytes:       10e6,
		CommitInterval: 0, // manual commit
	})
	return NewConsumerWithReader(r, cfg.Workers, permanent, logger)
}

func NewConsumerWithReader(r Reader, workers int, permanent func(error) bool, logger *slog.Logger) *Consumer {
	if workers <= 0 {
		workers = 1
	}
	if permanent == nil {
		permanent = func(error) bool { return false }
	}
	return &Consumer{
		r:         r,
		workers:   workers,
		backoff:   200 * time.Millisecond,
		permanent: permanent,
		logger:    logger,
	}
}

// Start blocks until ctx is cancelled or the reader fails. Messages of one
// partition always go to the same worker so offsets are committed in order.
func (c *Consumer) Start(ctx context.Context, h Handler) error {
	defer c.r.Close()

	jobs := make([]chan kafka.Message, c.workers)
	var wg sync.WaitGroup
	for i := range jobs {
		jobs[i] = make(chan kafka.Message, 64)
		wg.Add(1)
		go func(in <-chan kafka.Message) {
			defer wg.Done()
			for m := range in {
				c.process(ctx, h, m)
			}
		}(jobs[i])
	}
	stop := func() {
		for _, ch := range jobs {
			close(ch)
		}
		wg.Wait()
	}

	for {
		m, err := c.r.FetchMessage(ctx)
		if err != nil {
			stop()
			if ctx.Err() != nil {
				return nil
			}
			return err
		}
		select {
		case jobs[m.Partition%c.workers] <- m:
		case <-ctx.Done():
			stop()
			return nil
		}
	}
}

// process retries transient failures until they succeed or ctx ends; an
// uncommitted message is redelivered after a restart.
func (c *Consumer) process(ctx context.Context, h Handler, m kafka.Message) {
	for {
		err := h(ctx, m)
		if err == nil {
			break
		}
		if c.permanent(err) {
			c.logger.Warn("dropping unprocessable message",
				"topic", m.Topic, "partition", m.Partition, "offset", m.Offset, "error", err)
			break
		}
		c.logger.Error("message handler failed, retrying",
			"topic", m.Topic, "partition", m.Partition, "offset", m.Offset, "error", err)
		select {
		case <-ctx.Done():
			return
		case <-time.After(c.backoff):
		}
	}
	if err := c.r.CommitMessages(ctx, m); err != nil && ctx.Err() == nil {
		c.logger.Error("failed to commit offset", "partition", m.Partition, "offset", m.Offset, "error", err)
	}
}
