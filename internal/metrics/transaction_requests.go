package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	transactionRequestsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "scavengerhunt",
		Subsystem: "transaction_requests",
		Name:      "handled_total",
		Help:      "Count of handled transaction request calls by endpoint, method and result.",
	}, []string{"endpoint", "method", "result"})
	transactionRequestDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: "scavengerhunt",
		Subsystem: "transaction_requests",
		Name:      "duration_seconds",
		Help:      "Duration of transaction request calls.",
		Buckets:   []float64{.005, .01, .025, .05, .1, .25, .5, 1, 2.5, 5, 10},
	}, []string{"endpoint", "method", "result"})
)

// TransactionRequests tracks the wallet-facing endpoints.
type TransactionRequests struct {
	endpoint string
}

// NewTransactionRequests creates a collector for one endpoint.
func NewTransactionRequests(endpoint string) *TransactionRequests {
	if endpoint == "" {
		endpoint = "unknown"
	}
	return &TransactionRequests{endpoint: endpoint}
}

// Observe records one handled request. Result is one of the handler outcome labels
// (metadata, accepted, rejected, bad_request, failed, method_not_allowed).
func (m TransactionRequests) Observe(method, result string, started time.Time) {
	transactionRequestsTotal.WithLabelValues(m.endpoint, method, result).Inc()
	transactionRequestDuration.WithLabelValues(m.endpoint, method, result).Observe(time.Since(started).Seconds())
}
