// internal/common/metrics/metrics.go
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	WorkerJobsCompleted = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "worker_jobs_completed_total",
			Help: "Total number of jobs completed by worker",
		},
		[]string{"task_type"},
	)

	WorkerJobsFailed = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "worker_jobs_failed_total",
			Help: "Total number of jobs failed by worker",
		},
		[]string{"task_type", "error_code"},
	)

	WorkerJobDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name: "worker_job_duration_seconds",
			Help: "Duration of job processing in seconds",
		},
		[]string{"task_type"},
	)

	WorkerJobsActive = promauto.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "worker_jobs_active",
			Help: "Number of active jobs per worker",
		},
		[]string{"task_type"},
	)

	ExtractionsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "mission_extractions_total",
			Help: "Mission extractions by strategy and outcome",
		},
		[]string{"strategy", "status"},
	)

	ExtractionConfidence = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "mission_extraction_confidence",
			Help:    "Confidence score of successful extractions",
			Buckets: []float64{0, 17, 33, 50, 67, 83, 100},
		},
		[]string{"strategy"},
	)

	QuotationsGenerated = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "quotations_generated_total",
			Help: "Total number of quotations generated",
		},
	)

	QuotationTotal = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "quotation_total_amount",
			Help:    "Grand total of generated quotations",
			Buckets: prometheus.ExponentialBuckets(500, 2, 10),
		},
	)

	CatalogMisses = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "catalog_misses_total",
			Help: "Kit references that did not resolve to a catalog item",
		},
		[]string{"kit"},
	)

	ExportsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "quotation_exports_total",
			Help: "Quotation exports by format",
		},
		[]string{"format"},
	)
)
