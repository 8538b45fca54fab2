// Package metrics holds the Prometheus collectors exported on the metrics endpoint.
package metrics

import (
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

const namespace = "orgs"

// Database query outcomes.
const (
	QueryOK       = "ok"
	QueryError    = "error"
	QueryCanceled = "canceled"
)

// Cache lookup outcomes.
const (
	CacheHit   = "hit"
	CacheMiss  = "miss"
	CacheError = "error"
)

var (
	httpRequestCounter = prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Subsystem: "http",
		Name:      "requests_total",
		Help:      "Number of HTTP requests grouped by method, route and status.",
	}, []string{"method", "route", "status"})

	httpDurationHistogram = prometheus.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: namespace,
		Subsystem: "http",
		Name:      "request_duration_seconds",
		Help:      "HTTP request latency grouped by method and route.",
		Buckets:   prometheus.DefBuckets,
	}, []string{"method", "route"})

	searchResultHistogram = prometheus.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: namespace,
		Subsystem: "search",
		Name:      "result_size",
		Help:      "Number of organizations returned per search kind.",
		Buckets:   []float64{0, 1, 5, 10, 25, 50, 100, 250, 500},
	}, []string{"kind"})

	hierarchyRefreshCounter = prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Subsystem: "hierarchy",
		Name:      "refreshes_total",
		Help:      "Number of activity closure rebuilds grouped by outcome.",
	}, []string{"outcome"})

	cacheLookupCounter = prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Subsystem: "cache",
		Name:      "lookups_total",
		Help:      "Number of search cache lookups grouped by result.",
	}, []string{"result"})

	dbQueryHistogram = prometheus.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: namespace,
		Subsystem: "db",
		Name:      "query_duration_seconds",
		Help:      "SQL statement latency grouped by statement verb and outcome.",
		Buckets:   []float64{.001, .005, .01, .025, .05, .1, .25, .5, 1, 2.5, 5},
	}, []string{"verb", "outcome"})
)

func init() {
	prometheus.MustRegister(
		httpRequestCounter,
		httpDurationHistogram,
		searchResultHistogram,
		hierarchyRefreshCounter,
		cacheLookupCounter,
		dbQueryHistogram,
	)
}

// RecordHTTPRequest counts a served request and observes its latency.
func RecordHTTPRequest(method, route string, status int, elapsed time.Duration) {
	if route == "" {
		route = "unmatched"
	}
	httpRequestCounter.WithLabelValues(method, route, strconv.Itoa(status)).Inc()
	httpDurationHistogram.WithLabelValues(method, route).Observe(elapsed.Seconds())
}

// RecordSearchResult observes how many organizations a search returned.
func RecordSearchResult(kind string, size int) {
	searchResultHistogram.WithLabelValues(kind).Observe(float64(size))
}

// RecordHierarchyRefresh counts a closure rebuild.
func RecordHierarchyRefresh(err error) {
	outcome := "ok"
	if err != nil {
		outcome = "error"
	}
	hierarchyRefreshCounter.WithLabelValues(outcome).Inc()
}

// RecordCacheLookup counts a search cache lookup with one of CacheHit, CacheMiss or CacheError.
func RecordCacheLookup(result string) {
	cacheLookupCounter.WithLabelValues(result).Inc()
}

// RecordDBQuery observes one SQL statement. verb is the leading keyword, e.g. SELECT.
func RecordDBQuery(verb, outcome string, elapsed time.Duration) {
	dbQueryHistogram.WithLabelValues(verb, outcome).Observe(elapsed.Seconds())
}
