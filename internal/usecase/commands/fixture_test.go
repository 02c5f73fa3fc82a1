//go:build unit

package commands_test

import (
	"context"
	"io"
	"log/slog"
	"sync"
	"testing"
	"time"

	"salon-broker/internal/domain/servicerequest"
	"salon-broker/internal/pkg/clock"
	"salon-broker/internal/usecase/commands"
	"salon-broker/internal/usecase/shared"
	"salon-broker/tests/common/builder"
	"salon-broker/tests/common/memstore"
	sharedmock "salon-broker/tests/mock/shared"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

var t0 = time.Date(2026, 3, 2, 10, 0, 0, 0, time.UTC)

type fixture struct {
	store    *memstore.Store
	clock    *clock.MockClock
	payments *sharedmock.MockPaymentGateway
	notifier *sharedmock.MockNotifier
	policy   commands.Policy
	logger   *slog.Logger

	req      *servicerequest.ServiceRequest
	salon    shared.Principal
	referrer shared.PartySnapshot

	reservations commands.ReservationCommands
	bookings     commands.BookingCommands
	settlement   commands.SettlementCommands
	ledger       commands.SlotLedger
	intake       commands.IntakeCommands

	mu   sync.Mutex
	sent []sentNotification
}

type sentNotification struct {
	recipient string
	kind      shared.NotificationKind
	data      map[string]any
}

// newFixture seeds request #42 from the default builder with its salon,
// referrer and offer. Notifications are accepted and delivered.
func newFixture(t *testing.T) *fixture {
	t.Helper()
	ctrl := gomock.NewController(t)

	f := &fixture{
		store:    memstore.New(),
		clock:    clock.NewMockClock(t0),
		payments: sharedmock.NewMockPaymentGateway(ctrl),
		notifier: sharedmock.NewMockNotifier(ctrl),
		policy:   commands.DefaultPolicy(),
		logger:   slog.New(slog.NewTextHandler(io.Discard, nil)),
	}

	b := builder.NewServiceRequestBuilder()
	f.req = b.BuildDomain()
	f.salon = shared.Principal{Kind: shared.PrincipalSalon, AccountID: b.SalonID}
	f.referrer = shared.PartySnapshot{ID: b.ReferrerID, Name: "Riley Referrer", Email: "riley@example.com"}

	f.store.AddSalon(shared.PartySnapshot{ID: b.SalonID, Name: "Glow Studio", Email: "salon@example.com"})
	f.store.AddReferrer(f.referrer)
	f.store.AddOffer(b.BuildOffer())
	f.store.PutRequest(f.req)

	f.notifier.EXPECT().Notify(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, recipient string, kind shared.NotificationKind, data map[string]any) (shared.NotifyResult, error) {
			f.mu.Lock()
			defer f.mu.Unlock()
			f.sent = append(f.sent, sentNotification{recipient: recipient, kind: kind, data: data})
			return shared.NotifyResult{Delivered: true, MessageRef: "msg-1"}, nil
		}).AnyTimes()

	f.build()
	return f
}

func (f *fixture) build() {
	f.reservations = commands.NewReservationCommands(f.store, f.payments, f.notifier, f.clock, f.policy, f.logger)
	f.bookings = commands.NewBookingCommands(f.store, f.notifier, f.clock, f.policy, f.logger)
	f.settlement = commands.NewSettlementCommands(f.store, f.payments, f.notifier, f.clock, f.policy, f.logger)
	f.ledger = commands.NewSlotLedger(f.store, f.clock, f.policy, f.logger)
	f.intake = commands.NewIntakeCommands(f.store, f.notifier, f.clock, f.policy, f.logger)
}

// respond offers options for the seeded request and returns the decision hold.
func (f *fixture) respond(t *testing.T, options ...string) *commands.DecisionHold {
	t.Helper()
	dh, err := f.reservations.RespondWithTimeOptions(context.Background(), f.salon, f.req.ID(), options)
	require.NoError(t, err)
	return dh
}

// expectCharge accepts one checkout creation and returns the captured request.
func (f *fixture) expectCharge() *shared.ChargeRequest {
	captured := &shared.ChargeRequest{}
	f.payments.EXPECT().CreateCharge(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, req shared.ChargeRequest) (*shared.Charge, error) {
			*captured = req
			return &shared.Charge{ChargeRef: "cs_test_1", CheckoutURL: "https://pay.example/cs_test_1"}, nil
		})
	return captured
}

// checkout walks request #42 to a live checkout hold on option.
func (f *fixture) checkout(t *testing.T, option string, options ...string) *commands.CheckoutSession {
	t.Helper()
	dh := f.respond(t, options...)
	f.expectCharge()
	session, err := f.reservations.SelectTime(context.Background(), f.req.ID(), dh.HourToken, option)
	require.NoError(t, err)
	return session
}

// settle runs a full payment completion for session.
func (f *fixture) settle(t *testing.T, session *commands.CheckoutSession, ref string) *commands.SettlementResult {
	t.Helper()
	res, err := f.settlement.OnPaymentCompleted(context.Background(), commands.PaymentCompleted{
		TransactionRef:  ref,
		RequestID:       session.RequestID,
		CheckoutToken:   session.CheckoutToken,
		AmountPaidCents: f.req.FeeCents(),
	})
	require.NoError(t, err)
	return res
}

// lastSent returns the most recent notification of kind handed to the notifier.
func (f *fixture) lastSent(t *testing.T, kind shared.NotificationKind) sentNotification {
	t.Helper()
	f.mu.Lock()
	defer f.mu.Unlock()
	for i := len(f.sent) - 1; i >= 0; i-- {
		if f.sent[i].kind == kind {
			return f.sent[i]
		}
	}
	t.Fatalf("no %s notification sent", kind)
	return sentNotification{}
}

func otherSalon() shared.Principal {
	return shared.Principal{Kind: shared.PrincipalSalon, AccountID: uuid.MustParse("5a10c0de-0000-4000-8000-0000000000ff")}
}
