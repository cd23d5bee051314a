package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	"github.com/goodnatureofminers/income-scanner/internal/model"
)

var (
	ledgerRPCRequestsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "income_scanner",
		Subsystem: "ledger_rpc",
		Name:      "operations_total",
		Help:      "Count of ledger node RPC operations.",
	}, []string{"operation", "network", "status"})

	ledgerRPCRequestDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: "income_scanner",
		Subsystem: "ledger_rpc",
		Name:      "operation_duration_seconds",
		Help:      "Duration of ledger node RPC operations.",
		Buckets:   prometheus.DefBuckets,
	}, []string{"operation", "network", "status"})
)

type LedgerRPC struct {
	network model.Network
}

func NewLedgerRPC(network model.Network) *LedgerRPC {
	if network == "" {
		network = "unknown"
	}
	return &LedgerRPC{network: network}
}

func (m LedgerRPC) Observe(operation string, err error, started time.Time) {
	status := statusOf(err)
	ledgerRPCRequestsTotal.WithLabelValues(operation, string(m.network), status).Inc()
	ledgerRPCRequestDuration.WithLabelValues(operation, string(m.network), status).
		Observe(time.Since(started).Seconds())
}
