package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics holds all prometheus metrics
type Metrics struct {
	BatchesImported prometheus.Counter
	RowsImported    prometheus.Counter
	RowsSkipped     prometheus.Counter
	ImportDuration  prometheus.Histogram
	ErrorsCount     *prometheus.CounterVec

	// Dataset gauges, refreshed by the stats loop
	TotalPNRs           prometheus.Gauge
	ReachablePNRs       prometheus.Gauge
	AverageQualityScore prometheus.Gauge
}

// NewMetrics creates new prometheus metrics
func NewMetrics(namespace string) *Metrics {
	return &Metrics{
		BatchesImported: promauto.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "batches_imported_total",
			Help:      "The total number of import batches processed successfully",
		}),
		RowsImported: promauto.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "rows_imported_total",
			Help:      "The total number of raw rows imported",
		}),
		RowsSkipped: promauto.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "rows_skipped_total",
			Help:      "The total number of raw rows skipped during import",
		}),
		ImportDuration: promauto.NewHistogram(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "import_duration_seconds",
			Help:      "Time taken to import one batch",
			Buckets:   prometheus.DefBuckets,
		}),
		ErrorsCount: promauto.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "errors_total",
			Help:      "The total number of errors",
		}, []string{"operation"}),
		TotalPNRs: promauto.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "pnrs_total",
			Help:      "Number of PNRs in the dataset",
		}),
		ReachablePNRs: promauto.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "pnrs_reachable",
			Help:      "Number of PNRs with at least one valid contact",
		}),
		AverageQualityScore: promauto.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "quality_score_average",
			Help:      "Average quality score across the dataset",
		}),
	}
}
