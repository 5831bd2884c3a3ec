package metrics

import (
	"time"

	"github.com/goodnatureofminers/scavengerhunt-backend/internal/model"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	ledgerRequestsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "scavengerhunt",
		Subsystem: "ledger_client",
		Name:      "operations_total",
		Help:      "Count of Solana RPC operations.",
	}, []string{"operation", "cluster", "status"})
	ledgerRequestDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: "scavengerhunt",
		Subsystem: "ledger_client",
		Name:      "operation_duration_seconds",
		Help:      "Duration of Solana RPC operations.",
		Buckets:   prometheus.DefBuckets,
	}, []string{"operation", "cluster", "status"})
)

// LedgerClient tracks metrics for RPC calls to the Solana cluster.
type LedgerClient struct {
	cluster model.Cluster
}

// NewLedgerClient constructs a metrics collector for ledger RPC calls.
func NewLedgerClient(cluster model.Cluster) *LedgerClient {
	if cluster == "" {
		cluster = "unknown"
	}
	return &LedgerClient{cluster: cluster}
}

// Observe records a single RPC call outcome and duration.
func (m LedgerClient) Observe(operation string, err error, started time.Time) {
	status := statusOf(err)
	ledgerRequestsTotal.WithLabelValues(operation, string(m.cluster), status).Inc()
	ledgerRequestDuration.WithLabelValues(operation, string(m.cluster), status).Observe(time.Since(started).Seconds())
}

func statusOf(err error) string {
	if err != nil {
		return "error"
	}
	return "success"
}
