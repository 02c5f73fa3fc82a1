//go:build e2e

package e2e

import (
	"context"
	"fmt"
	"sync"

	"salon-broker/internal/usecase/shared"
)

type FakeGateway struct {
	mu      sync.Mutex
	charges []shared.ChargeRequest
	refunds []shared.RefundRequest
}

func NewFakeGateway() *FakeGateway {
	return &FakeGateway{}
}

func (g *FakeGateway) CreateCharge(_ context.Context, req shared.ChargeRequest) (*shared.Charge, error) {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.charges = append(g.charges, req)
	ref := fmt.Sprintf("cs_e2e_%d", len(g.charges))
	return &shared.Charge{ChargeRef: ref, CheckoutURL: "https://pay.example/" + ref}, nil
}

func (g *FakeGateway) Refund(_ context.Context, req shared.RefundRequest) (string, error) {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.refunds = append(g.refunds, req)
	return fmt.Sprintf("re_e2e_%d", len(g.refunds)), nil
}

func (g *FakeGateway) Charges() []shared.ChargeRequest {
	g.mu.Lock()
	defer g.mu.Unlock()
	return append([]shared.ChargeRequest(nil), g.charges...)
}

func (g *FakeGateway) Refunds() []shared.RefundRequest {
	g.mu.Lock()
	defer g.mu.Unlock()
	return append([]shared.RefundRequest(nil), g.refunds...)
}

func (g *FakeGateway) Reset() {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.charges = nil
	g.refunds = nil
}

type SentNotification struct {
	Recipient string
	Kind      shared.NotificationKind
	Data      map[string]any
}

type FakeNotifier struct {
	mu   sync.Mutex
	sent []SentNotification
}

func NewFakeNotifier() *FakeNotifier {
	return &FakeNotifier{}
}

func (n *FakeNotifier) Notify(_ context.Context, recipient string, kind shared.NotificationKind, data map[string]any) (shared.NotifyResult, error) {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.sent = append(n.sent, SentNotification{Recipient: recipient, Kind: kind, Data: data})
	return shared.NotifyResult{Delivered: true, MessageRef: fmt.Sprintf("msg_%d", len(n.sent))}, nil
}

func (n *FakeNotifier) Sent() []SentNotification {
	n.mu.Lock()
	defer n.mu.Unlock()
	return append([]SentNotification(nil), n.sent...)
}

// Last returns the newest notification of kind.
func (n *FakeNotifier) Last(kind shared.NotificationKind) (SentNotification, bool) {
	n.mu.Lock()
	defer n.mu.Unlock()
	for i := len(n.sent) - 1; i >= 0; i-- {
		if n.sent[i].Kind == kind {
			return n.sent[i], true
		}
	}
	return SentNotification{}, false
}

func (n *FakeNotifier) Reset() {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.sent = nil
}
