package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	pollerTicksTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "scavengerhunt",
		Subsystem: "confirmation_poller",
		Name:      "ticks_total",
		Help:      "Count of reference lookups by view and result.",
	}, []string{"view", "result"})
	pollerTickDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: "scavengerhunt",
		Subsystem: "confirmation_poller",
		Name:      "tick_duration_seconds",
		Help:      "Duration of reference lookups.",
		Buckets:   prometheus.DefBuckets,
	}, []string{"view", "result"})
)

// ConfirmationPoller tracks reference lookups of a single view.
type ConfirmationPoller struct {
	view string
}

// NewConfirmationPoller creates a collector for the named view.
func NewConfirmationPoller(view string) *ConfirmationPoller {
	if view == "" {
		view = "unknown"
	}
	return &ConfirmationPoller{view: view}
}

// ObserveTick records one lookup. Not found lookups are the steady state and are
// counted separately from errors.
func (m ConfirmationPoller) ObserveTick(found bool, err error, started time.Time) {
	result := "pending"
	switch {
	case err != nil:
		result = "error"
	case found:
		result = "confirmed"
	}
	pollerTicksTotal.WithLabelValues(m.view, result).Inc()
	pollerTickDuration.WithLabelValues(m.view, result).Observe(time.Since(started).Seconds())
}
