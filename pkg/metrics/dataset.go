package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

// DatasetMetrics records metadata for the one-time dataset load.
type DatasetMetrics struct {
	rows         prometheus.Gauge
	loadDuration prometheus.Histogram
	loadFailures prometheus.Counter
}

// NewDatasetMetrics registers the dataset metrics on the provided registerer.
func NewDatasetMetrics(reg prometheus.Registerer) *DatasetMetrics {
	if reg == nil {
		return &DatasetMetrics{}
	}
	rows := prometheus.NewGauge(prometheus.GaugeOpts{
		Name: "dataset_rows",
		Help: "Rows in the loaded event table.",
	})
	loadDuration := prometheus.NewHistogram(prometheus.HistogramOpts{
		Name:    "dataset_load_duration_seconds",
		Help:    "Duration of the dataset load in seconds.",
		Buckets: prometheus.DefBuckets,
	})
	loadFailures := prometheus.NewCounter(prometheus.CounterOpts{
		Name: "dataset_load_failures_total",
		Help: "Failed dataset load attempts.",
	})
	reg.MustRegister(rows, loadDuration, loadFailures)
	return &DatasetMetrics{
		rows:         rows,
		loadDuration: loadDuration,
		loadFailures: loadFailures,
	}
}

// ObserveLoad records a successful load of n rows.
func (m *DatasetMetrics) ObserveLoad(n int, elapsed time.Duration) {
	if m == nil || m.rows == nil {
		return
	}
	m.rows.Set(float64(n))
	m.loadDuration.Observe(elapsed.Seconds())
}

// IncFailure increments the failed load counter.
func (m *DatasetMetrics) IncFailure() {
	if m == nil || m.loadFailures == nil {
		return
	}
	m.loadFailures.Inc()
}
