package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

// CheckoutMetrics records order placement outcomes. All methods are safe on a
// nil receiver so services can run without a registry wired in.
type CheckoutMetrics struct {
	placed     prometheus.Counter
	duplicates prometheus.Counter
	duration   prometheus.Histogram
}

// NewCheckoutMetrics registers the checkout metrics on the provided registerer.
func NewCheckoutMetrics(reg prometheus.Registerer) *CheckoutMetrics {
	if reg == nil {
		return &CheckoutMetrics{}
	}
	placed := prometheus.NewCounter(prometheus.CounterOpts{
		Name: "orders_placed_total",
		Help: "Successfully placed orders.",
	})
	duplicates := prometheus.NewCounter(prometheus.CounterOpts{
		Name: "orders_duplicate_submissions_total",
		Help: "Place-order calls ignored because one was already in flight.",
	})
	duration := prometheus.NewHistogram(prometheus.HistogramOpts{
		Name:    "order_placement_duration_seconds",
		Help:    "End-to-end duration of order placement, including the simulated payment call.",
		Buckets: prometheus.DefBuckets,
	})
	reg.MustRegister(placed, duplicates, duration)
	return &CheckoutMetrics{
		placed:     placed,
		duplicates: duplicates,
		duration:   duration,
	}
}

// IncPlaced counts a completed order.
func (m *CheckoutMetrics) IncPlaced() {
	if m == nil || m.placed == nil {
		return
	}
	m.placed.Inc()
}

// IncDuplicate counts a suppressed duplicate submission.
func (m *CheckoutMetrics) IncDuplicate() {
	if m == nil || m.duplicates == nil {
		return
	}
	m.duplicates.Inc()
}

// ObservePlacement records how long the placement took.
func (m *CheckoutMetrics) ObservePlacement(elapsed time.Duration) {
	if m == nil || m.duration == nil {
		return
	}
	m.duration.Observe(elapsed.Seconds())
}
