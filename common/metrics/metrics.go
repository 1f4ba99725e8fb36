// Package metrics defines the Prometheus metrics exposed by the service.
package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// ExtractionsTotal counts extraction runs by operation and outcome.
	ExtractionsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "vendor_extractions_total",
		Help: "Total vendor extraction runs by operation and outcome",
	}, []string{"operation", "outcome"})

	// ExtractionDuration tracks end-to-end extraction latency.
	ExtractionDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "vendor_extraction_duration_seconds",
		Help:    "Duration of vendor extraction runs",
		Buckets: prometheus.DefBuckets,
	}, []string{"operation"})

	// RecordsExtracted counts vendor records returned to callers.
	RecordsExtracted = promauto.NewCounter(prometheus.CounterOpts{
		Name: "vendor_records_extracted_total",
		Help: "Total vendor records returned across all extractions",
	})

	// CacheHits counts page responses served from the result cache.
	CacheHits = promauto.NewCounter(prometheus.CounterOpts{
		Name: "vendor_extraction_cache_hits_total",
		Help: "Extraction responses served from the result cache",
	})
)

// ObserveExtraction records one finished extraction run.
func ObserveExtraction(operation string, start time.Time, records int, err error) {
	outcome := "success"
	if err != nil {
		outcome = "failure"
	}

	ExtractionsTotal.WithLabelValues(operation, outcome).Inc()
	ExtractionDuration.WithLabelValues(operation).Observe(time.Since(start).Seconds())
	if err == nil {
		RecordsExtracted.Add(float64(records))
	}
}
