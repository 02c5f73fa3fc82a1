//go:build unit

package kafka_test

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	kafkax "salon-broker/internal/infra/kafka"
	"salon-broker/internal/pkg/errs"
	"salon-broker/internal/usecase/commands"
	commandsmock "salon-broker/tests/mock/commands"

	"github.com/segmentio/kafka-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

type fakeReader struct {
	msgs chan kafka.Message

	mu        sync.Mutex
	committed []int64
	closed    bool
}

func newFakeReader(msgs ...kafka.Message) *fakeReader {
	r := &fakeReader{msgs: make(chan kafka.Message, len(msgs))}
	for _, m := range msgs {
		r.msgs <- m
	}
	return r
}

func (r *fakeReader) FetchMessage(ctx context.Context) (kafka.Message, error) {
	select {
	case m := <-r.msgs:
		return m, nil
	case <-ctx.Done():
		return kafka.Message{}, ctx.Err()
	}
}

func (r *fakeReader) CommitMessages(_ context.Context, msgs ...kafka.Message) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, m := range msgs {
		r.committed = append(r.committed, m.Offset)
	}
	return nil
}

func (r *fakeReader) Close() error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.closed = true
	return nil
}

func (r *fakeReader) Committed() []int64 {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]int64(nil), r.committed...)
}

var errPermanent = errors.New("unparseable")

func run(t *testing.T, r *fakeReader, h kafkax.Handler, wantCommits int) {
	t.Helper()
	c := kafkax.NewConsumerWithReader(r, 2, func(err error) bool { return errors.Is(err, errPermanent) },
		slog.New(slog.NewTextHandler(io.Discard, nil)))

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- c.Start(ctx, h) }()

	require.Eventually(t, func() bool { return len(r.Committed()) == wantCommits }, 3*time.Second, 10*time.Millisecond)
	cancel()
	require.NoError(t, <-done)
	assert.True(t, r.closed)
}

func TestConsumer_CommitsAfterHandlerSuccess(t *testing.T) {
	r := newFakeReader(
		kafka.Message{Partition: 0, Offset: 1},
		kafka.Message{Partition: 0, Offset: 2},
		kafka.Message{Partition: 1, Offset: 1},
	)
	var handled atomic.Int32

	run(t, r, func(ctx context.Context, m kafka.Message) error {
		handled.Add(1)
		return nil
	}, 3)

	assert.Equal(t, int32(3), handled.Load())
}

func TestConsumer_RetriesTransientFailures(t *testing.T) {
	r := newFakeReader(kafka.Message{Partition: 0, Offset: 7})
	var attempts atomic.Int32

	run(t, r, func(ctx context.Context, m kafka.Message) error {
		if attempts.Add(1) < 3 {
			return errors.New("database unavailable")
		}
		return nil
	}, 1)

	assert.Equal(t, int32(3), attempts.Load())
	assert.Equal(t, []int64{7}, r.Committed())
}

func TestConsumer_DropsPermanentFailures(t *testing.T) {
	r := newFakeReader(kafka.Message{Partition: 0, Offset: 3})
	var attempts atomic.Int32

	run(t, r, func(ctx context.Context, m kafka.Message) error {
		attempts.Add(1)
		return errPermanent
	}, 1)

	assert.Equal(t, int32(1), attempts.Load())
}

const paidEvent = `{"id":"evt_1","type":"checkout.session.completed","data":{"object":{"id":"cs_1","payment_intent":"pi_1","payment_status":"paid","amount_total":15000,"metadata":{"request_id":"42","checkout_token":"chk_abc"}}}}`

func TestPaymentEventHandler(t *testing.T) {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	t.Run("paid checkout settles", func(t *testing.T) {
		settlement := commandsmock.NewMockSettlementCommands(gomock.NewController(t))
		settlement.EXPECT().OnPaymentCompleted(gomock.Any(), commands.PaymentCompleted{
			TransactionRef:  "pi_1",
			RequestID:       42,
			CheckoutToken:   "chk_abc",
			AmountPaidCents: 15000,
		}).Return(&commands.SettlementResult{Outcome: commands.OutcomeSettled}, nil)

		h := kafkax.NewPaymentEventHandler(settlement, logger)

		require.NoError(t, h(context.Background(), kafka.Message{Value: []byte(paidEvent)}))
	})

	t.Run("stale outcome is acknowledged", func(t *testing.T) {
		settlement := commandsmock.NewMockSettlementCommands(gomock.NewController(t))
		settlement.EXPECT().OnPaymentCompleted(gomock.Any(), gomock.Any()).
			Return(&commands.SettlementResult{Outcome: commands.OutcomeStale}, nil)

		h := kafkax.NewPaymentEventHandler(settlement, logger)

		require.NoError(t, h(context.Background(), kafka.Message{Value: []byte(paidEvent)}))
	})

	t.Run("other event types skip settlement", func(t *testing.T) {
		settlement := commandsmock.NewMockSettlementCommands(gomock.NewController(t))
		h := kafkax.NewPaymentEventHandler(settlement, logger)

		require.NoError(t, h(context.Background(), kafka.Message{Value: []byte(`{"id":"evt_2","type":"charge.refunded","data":{"object":{}}}`)}))
	})

	t.Run("interrupted settlement is retried", func(t *testing.T) {
		settlement := commandsmock.NewMockSettlementCommands(gomock.NewController(t))
		settlement.EXPECT().OnPaymentCompleted(gomock.Any(), gomock.Any()).
			Return(nil, errs.Mark(errors.New("connection reset"), errs.ErrSettlementInterrupted))

		h := kafkax.NewPaymentEventHandler(settlement, logger)

		err := h(context.Background(), kafka.Message{Value: []byte(paidEvent)})
		require.Error(t, err)
	})
}
