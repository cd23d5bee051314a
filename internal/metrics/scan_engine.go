// Package metrics exposes Prometheus instrumentation for scanner components.
package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	"github.com/goodnatureofminers/income-scanner/internal/model"
)

var (
	scanPassTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "income_scanner",
		Subsystem: "scan_engine",
		Name:      "pass_total",
		Help:      "Count of resume-to-tip scan passes.",
	}, []string{"network", "status"})

	scanPassDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: "income_scanner",
		Subsystem: "scan_engine",
		Name:      "pass_duration_seconds",
		Help:      "Duration of a scan pass.",
		Buckets:   prometheus.DefBuckets,
	}, []string{"network", "status"})

	scanPassHeights = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: "income_scanner",
		Subsystem: "scan_engine",
		Name:      "pass_heights",
		Help:      "Number of heights processed per scan pass.",
		Buckets:   prometheus.ExponentialBuckets(1, 2, 16), // 1..32768
	}, []string{"network"})

	scanTipFetchTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "income_scanner",
		Subsystem: "scan_engine",
		Name:      "tip_fetch_total",
		Help:      "Count of ledger tip height fetches.",
	}, []string{"network", "status"})

	scanTipFetchDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: "income_scanner",
		Subsystem: "scan_engine",
		Name:      "tip_fetch_duration_seconds",
		Help:      "Duration of ledger tip height fetches.",
		Buckets:   prometheus.DefBuckets,
	}, []string{"network", "status"})

	scanHeightDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: "income_scanner",
		Subsystem: "scan_engine",
		Name:      "height_duration_seconds",
		Help:      "Duration of processing a single height.",
		Buckets:   prometheus.DefBuckets,
	}, []string{"network", "status"})

	scanRecordsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "income_scanner",
		Subsystem: "scan_engine",
		Name:      "income_records_total",
		Help:      "Count of income records observed while scanning.",
	}, []string{"network", "outcome"})

	scanTipHeight = promauto.NewGaugeVec(prometheus.GaugeOpts{
		Namespace: "income_scanner",
		Subsystem: "scan_engine",
		Name:      "tip_height",
		Help:      "Latest chain tip height reported by the ledger node.",
	}, []string{"network"})

	scanCursorHeight = promauto.NewGaugeVec(prometheus.GaugeOpts{
		Namespace: "income_scanner",
		Subsystem: "scan_engine",
		Name:      "cursor_height",
		Help:      "Highest height for which ingestion is fully durable.",
	}, []string{"network"})
)

type ScanEngine struct {
	network model.Network
}

func NewScanEngine(network model.Network) *ScanEngine {
	if network == "" {
		network = "unknown"
	}
	return &ScanEngine{network: network}
}

func (m ScanEngine) ObserveTipFetch(err error, started time.Time) {
	status := statusOf(err)
	scanTipFetchTotal.WithLabelValues(string(m.network), status).Inc()
	scanTipFetchDuration.WithLabelValues(string(m.network), status).
		Observe(time.Since(started).Seconds())
}

func (m ScanEngine) ObservePass(err error, heights int, started time.Time) {
	status := statusOf(err)
	scanPassTotal.WithLabelValues(string(m.network), status).Inc()
	scanPassDuration.WithLabelValues(string(m.network), status).
		Observe(time.Since(started).Seconds())
	scanPassHeights.WithLabelValues(string(m.network)).Observe(float64(heights))
}

func (m ScanEngine) ObserveHeight(err error, height uint64, started time.Time) {
	scanHeightDuration.WithLabelValues(string(m.network), statusOf(err)).
		Observe(time.Since(started).Seconds())
}

func (m ScanEngine) AddRecords(inserted, duplicates int) {
	scanRecordsTotal.WithLabelValues(string(m.network), "inserted").Add(float64(inserted))
	scanRecordsTotal.WithLabelValues(string(m.network), "duplicate").Add(float64(duplicates))
}

func (m ScanEngine) SetTip(height uint64) {
	scanTipHeight.WithLabelValues(string(m.network)).Set(float64(height))
}

func (m ScanEngine) SetCursor(height uint64) {
	scanCursorHeight.WithLabelValues(string(m.network)).Set(float64(height))
}

func statusOf(err error) string {
	if err != nil {
		return "error"
	}
	return "success"
}
