package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	eventRepositoryRequestsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "scavengerhunt",
		Subsystem: "event_repository",
		Name:      "operations_total",
		Help:      "Count of event repository operations.",
	}, []string{"operation", "status"})
	eventRepositoryRequestDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: "scavengerhunt",
		Subsystem: "event_repository",
		Name:      "operation_duration_seconds",
		Help:      "Duration of event repository operations.",
		Buckets:   []float64{.005, .01, .025, .05, .1, .25, .5, 1, 2.5, 5, 10, 15, 20, 30},
	}, []string{"operation", "status"})
	eventsDroppedTotal = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: "scavengerhunt",
		Subsystem: "event_recorder",
		Name:      "dropped_total",
		Help:      "Count of hunt events dropped because the buffer was full.",
	})
)

// EventRepository tracks metrics for ClickHouse event storage.
type EventRepository struct{}

// NewEventRepository creates an EventRepository metrics collector.
func NewEventRepository() *EventRepository {
	return &EventRepository{}
}

// Observe records duration and status of a repository operation.
func (m EventRepository) Observe(operation string, err error, started time.Time) {
	status := statusOf(err)
	eventRepositoryRequestsTotal.WithLabelValues(operation, status).Inc()
	eventRepositoryRequestDuration.WithLabelValues(operation, status).Observe(time.Since(started).Seconds())
}

// ObserveDropped counts an event that could not be buffered.
func (m EventRepository) ObserveDropped() {
	eventsDroppedTotal.Inc()
}
