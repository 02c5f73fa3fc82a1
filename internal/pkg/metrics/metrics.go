package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "salon_broker"

var (
	slotReservations = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "slot_reservations_total",
			Help:      "Conditional slot reservation attempts by outcome",
		},
		[]string{"outcome"},
	)

	holdsIssued = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "holds_issued_total",
			Help:      "Hold tokens issued by kind",
		},
		[]string{"kind"},
	)

	settlementEvents = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "settlement_events_total",
			Help:      "Payment completion events by outcome",
		},
		[]string{"outcome"},
	)

	sweptSlots = promauto.NewCounter(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "swept_slots_total",
			Help:      "Expired slot holds reset by the sweeper",
		},
	)

	notifications = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "notifications_total",
			Help:      "Notification dispatch attempts",
		},
		[]string{"kind", "status"},
	)

	paymentCalls = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "payment_call_duration_seconds",
			Help:      "Latency of payment capability calls",
			Buckets:   prometheus.DefBuckets,
		},
		[]string{"operation", "status"},
	)
)

func ObserveReservation(outcome string) {
	slotReservations.WithLabelValues(outcome).Inc()
}

func ObserveHoldIssued(kind string) {
	holdsIssued.WithLabelValues(kind).Inc()
}

func ObserveSettlement(outcome string) {
	settlementEvents.WithLabelValues(outcome).Inc()
}

func ObserveSweep(released int64) {
	if released > 0 {
		sweptSlots.Add(float64(released))
	}
}

func ObserveNotification(kind string, delivered bool) {
	status := "delivered"
	if !delivered {
		status = "failed"
	}
	notifications.WithLabelValues(kind, status).Inc()
}

func ObservePaymentCall(operation string, started time.Time, err error) {
	status := "ok"
	if err != nil {
		status = "error"
	}
	paymentCalls.WithLabelValues(operation, status).Observe(time.Since(started).Seconds())
}
