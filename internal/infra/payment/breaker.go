package payment

import (
	"sync"
	"time"

	"salon-broker/internal/pkg/clock"
	"salon-broker/internal/pkg/errs"
)

var ErrCircuitOpen = errs.New("payment circuit breaker is open")

type State int

const (
	StateClosed State = iota
	StateHalfOpen
	StateOpen
)

func (s State) String() string {
	switch s {
	case StateClosed:
		return "closed"
	case StateHalfOpen:
		return "half-open"
	case StateOpen:
		return "open"
	}
	return "unknown"
}

// Breaker trips after maxFailures consecutive failures and lets a single
// trial call through once the cool-down has passed.
type Breaker struct {
	maxFailures uint32
	coolDown    time.Duration
	clock       clock.Clock

	mu          sync.Mutex
	state       State
	failures    uint32
	probing     bool
	openedUntil time.Time
}

func NewBreaker(maxFailures uint32, coolDown time.Duration, clk clock.Clock) *Breaker {
	if maxFailures == 0 {
		maxFailures = 1
	}
	return &Breaker{
		maxFailures: maxFailures,
		coolDown:    coolDown,
		clock:       clk,
		state:       StateClosed,
	}
}

// Execute runs fn unless the circuit is open. Only errors for which
// countsAsFailure reports true move the breaker towards open.
func (b *Breaker) Execute(fn func() error, countsAsFailure func(error) bool) error {
	if err := b.before(); err != nil {
		return err
	}
	err := fn()
	b.after(err != nil && countsAsFailure(err))
	return err
}

func (b *Breaker) State() State {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.currentState(b.clock.Now())
}

func (b *Breaker) before() error {
	b.mu.Lock()
	defer b.mu.Unlock()

	switch b.currentState(b.clock.Now()) {
	case StateOpen:
		return ErrCircuitOpen
	case StateHalfOpen:
		if b.probing {
			return ErrCircuitOpen
		}
		b.probing = true
	}
	return nil
}

func (b *Breaker) after(failed bool) {
	b.mu.Lock()
	defer b.mu.Unlock()

	now := b.clock.Now()
	state := b.currentState(now)
	b.probing = false

	if !failed {
		b.failures = 0
		b.state = StateClosed
		return
	}

	b.failures++
	if state == StateHalfOpen || b.failures >= b.maxFailures {
		b.state = StateOpen
		b.openedUntil = now.Add(b.coolDown)
	}
}

func (b *Breaker) currentState(now time.Time) State {
	if b.state == StateOpen && !now.Before(b.openedUntil) {
		b.state = StateHalfOpen
		b.probing = false
	}
	return b.state
}
