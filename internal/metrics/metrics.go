// Package metrics registers the Prometheus collectors for loads and queries.
package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Query outcomes.
const (
	OutcomeOK           = "ok"
	OutcomeInvalidInput = "invalid_input"
	OutcomeNotFound     = "not_found"
	OutcomeError        = "error"
)

var (
	RowsLoaded = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "mediarec_rows_loaded_total",
			Help: "Rows applied to the catalog or association index",
		},
		[]string{"kind"},
	)

	LoadErrors = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "mediarec_load_errors_total",
			Help: "Load batches rejected",
		},
		[]string{"kind"},
	)

	CatalogItems = promauto.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "mediarec_catalog_items",
			Help: "Current number of records per kind",
		},
		[]string{"kind"},
	)

	QueriesTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "mediarec_queries_total",
			Help: "Queries served, by operation and outcome",
		},
		[]string{"op", "outcome"},
	)

	RateLimited = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "mediarec_http_rate_limited_total",
			Help: "Requests rejected by the per-client rate limiter",
		},
	)

	QueryDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "mediarec_query_duration_seconds",
			Help:    "Query latency in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"op"},
	)
)

// RecordLoad counts a load batch: n rows on success, one error otherwise.
func RecordLoad(kind string, n int, err error) {
	if err != nil {
		LoadErrors.WithLabelValues(kind).Inc()
		return
	}
	RowsLoaded.WithLabelValues(kind).Add(float64(n))
}

func SetCatalogItems(kind string, n int) {
	CatalogItems.WithLabelValues(kind).Set(float64(n))
}

func RecordQuery(op, outcome string, start time.Time) {
	QueriesTotal.WithLabelValues(op, outcome).Inc()
	QueryDuration.WithLabelValues(op).Observe(time.Since(start).Seconds())
}
