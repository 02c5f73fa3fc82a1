// Package notify delivers notifications by publishing them to a RabbitMQ work
// queue consumed by the mail/SMS workers.
package notify

import (
	"context"
	"encoding/json"
	"log/slog"
	"sync"
	"time"

	"salon-broker/internal/pkg/clock"
	"salon-broker/internal/pkg/config"
	"salon-broker/internal/pkg/errs"
	"salon-broker/internal/usecase/shared"

	"github.com/google/uuid"
	amqp "github.com/rabbitmq/amqp091-go"
)

// Channel is the subset of *amqp.Channel the publisher needs.
type Channel interface {
	QueueDeclare(name string, durable, autoDelete, exclusive, noWait bool, args amqp.Table) (amqp.Queue, error)
	PublishWithContext(ctx context.Context, exchange, key string, mandatory, immediate bool, msg amqp.Publishing) error
	Close() error
}

// Message is the JSON body placed on the queue.
type Message struct {
	MessageID string                  `json:"message_id"`
	Recipient string                  `json:"recipient"`
	Kind      shared.NotificationKind `json:"kind"`
	Data      map[string]any          `json:"data"`
	CreatedAt time.Time               `json:"created_at"`
}

type Publisher struct {
	queue  string
	clock  clock.Clock
	logger *slog.Logger

	mu      sync.Mutex
	ch      Channel
	reopen  func() (Channel, error)
	closeFn func() error
}

var _ shared.Notifier = (*Publisher)(nil)

// Dial connects to the broker and declares the durable queue.
func Dial(cfg config.NotifyConfig, clk clock.Clock, logger *slog.Logger) (*Publisher, error) {
	conn, err := amqp.Dial(cfg.RabbitMQURL)
	if err != nil {
		return nil, errs.Wrap(err, "rabbitmq: dial failed")
	}
	open := func() (Channel, error) {
		ch, err := conn.Channel()
		if err != nil {
			return nil, errs.Wrap(err, "rabbitmq: channel open failed")
		}
		return ch, nil
	}
	p, err := NewPublisher(cfg.Queue, open, clk, logger)
	if err != nil {
		_ = conn.Close()
		return nil, err
	}
	p.closeFn = conn.Close
	return p, nil
}

// NewPublisher opens a channel with open and declares queue. open is called
// again whenever a publish fails so a dropped channel is replaced.
func NewPublisher(queue string, open func() (Channel, error), clk clock.Clock, logger *slog.Logger) (*Publisher, error) {
	p := &Publisher{queue: queue, clock: clk, logger: logger, reopen: open}
	if _, err := p.channel(); err != nil {
		return nil, err
	}
	return p, nil
}

func (p *Publisher) channel() (Channel, error) {
	if p.ch != nil {
		return p.ch, nil
	}
	ch, err := p.reopen()
	if err != nil {
		return nil, err
	}
	if _, err := ch.QueueDeclare(p.queue, true, false, false, false, nil); err != nil {
		_ = ch.Close()
		return nil, errs.Wrap(err, "rabbitmq: queue declare failed")
	}
	p.ch = ch
	return ch, nil
}

// Notify enqueues one message. Delivered means the broker accepted it; the
// message id is returned as the reference.
func (p *Publisher) Notify(ctx context.Context, recipient string, kind shared.NotificationKind, data map[string]any) (shared.NotifyResult, error) {
	msg := Message{
		MessageID: uuid.NewString(),
		Recipient: recipient,
		Kind:      kind,
		Data:      data,
		CreatedAt: p.clock.Now().UTC(),
	}
	body, err := json.Marshal(msg)
	if err != nil {
		return shared.NotifyResult{}, errs.Wrap(err, "rabbitmq: marshal message failed")
	}
	pub := amqp.Publishing{
		ContentType:  "application/json",
		DeliveryMode: amqp.Persistent,
		MessageId:    msg.MessageID,
		Type:         string(kind),
		Timestamp:    msg.CreatedAt,
		Body:         body,
	}

	p.mu.Lock()
	defer p.mu.Unlock()

	for attempt := 0; attempt < 2; attempt++ {
		ch, err := p.channel()
		if err != nil {
			return shared.NotifyResult{}, err
		}
		err = ch.PublishWithContext(ctx, "", p.queue, false, false, pub)
		if err == nil {
			return shared.NotifyResult{Delivered: true, MessageRef: msg.MessageID}, nil
		}
		p.logger.Warn("rabbitmq: publish failed", "kind", kind, "attempt", attempt+1, "error", err)
		_ = ch.Close()
		p.ch = nil
		if ctx.Err() != nil {
			return shared.NotifyResult{}, errs.Wrap(err, "rabbitmq: publish failed")
		}
	}
	return shared.NotifyResult{}, errs.New("rabbitmq: publish failed after reopening channel")
}

func (p *Publisher) Close() error {
	p.mu.Lock()
	defer p.mu.Unlock()
	var err error
	if p.ch != nil {
		err = p.ch.Close()
		p.ch = nil
	}
	if p.closeFn != nil {
		if cerr := p.closeFn(); cerr != nil && err == nil {
			err = cerr
		}
	}
	return err
}
