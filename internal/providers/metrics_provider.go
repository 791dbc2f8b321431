package providers

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	"marinecast/internal/structures"
)

type MetricsProviderInterface interface {
	IncRequestsTotal(endpoint string, status int)
	ObserveRequestDuration(endpoint string, duration time.Duration)
	IncCacheHits()
	IncCacheMisses()
	IncFetches(outcome string)
	ObserveFetchDuration(duration time.Duration)
	IncParseFailures()
}

// RecordCounter reports how many zones currently hold a parsed record; the
// entry store satisfies it.
type RecordCounter interface {
	RecordCount() int
}

type MetricsProvider struct {
	requestsTotal   *prometheus.CounterVec
	requestDuration *prometheus.HistogramVec
	cacheHits       prometheus.Counter
	cacheMisses     prometheus.Counter
	fetchesTotal    *prometheus.CounterVec
	fetchDuration   prometheus.Histogram
	parseFailures   prometheus.Counter
}

func (m *MetricsProvider) IncRequestsTotal(endpoint string, status int) {
	m.requestsTotal.WithLabelValues(endpoint, httpStatusBucket(status)).Inc()
}

func (m *MetricsProvider) ObserveRequestDuration(endpoint string, duration time.Duration) {
	m.requestDuration.WithLabelValues(endpoint).Observe(duration.Seconds())
}

func (m *MetricsProvider) IncCacheHits() {
	m.cacheHits.Inc()
}

func (m *MetricsProvider) IncCacheMisses() {
	m.cacheMisses.Inc()
}

func (m *MetricsProvider) IncFetches(outcome string) {
	m.fetchesTotal.WithLabelValues(outcome).Inc()
}

func (m *MetricsProvider) ObserveFetchDuration(duration time.Duration) {
	m.fetchDuration.Observe(duration.Seconds())
}

func (m *MetricsProvider) IncParseFailures() {
	m.parseFailures.Inc()
}

func httpStatusBucket(code int) string {
	switch {
	case code < 200:
		return "1xx"
	case code < 300:
		return "2xx"
	case code < 400:
		return "3xx"
	case code < 500:
		return "4xx"
	default:
		return "5xx"
	}
}

func NewMetricsProvider(conf *structures.Config, records RecordCounter) MetricsProviderInterface {
	if !conf.Metrics.Enabled {
		return &noopMetrics{}
	}

	m := &MetricsProvider{
		requestsTotal: promauto.NewCounterVec(prometheus.CounterOpts{
			Name: "marinecast_requests_total",
			Help: "Total number of HTTP requests",
		}, []string{"endpoint", "status"}),

		requestDuration: promauto.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "marinecast_request_duration_seconds",
			Help:    "HTTP request duration in seconds",
			Buckets: prometheus.DefBuckets,
		}, []string{"endpoint"}),

		cacheHits: promauto.NewCounter(prometheus.CounterOpts{
			Name: "marinecast_cache_hits_total",
			Help: "Total number of response cache hits",
		}),

		cacheMisses: promauto.NewCounter(prometheus.CounterOpts{
			Name: "marinecast_cache_misses_total",
			Help: "Total number of response cache misses",
		}),

		fetchesTotal: promauto.NewCounterVec(prometheus.CounterOpts{
			Name: "marinecast_fetches_total",
			Help: "Total upstream bulletin fetches by outcome",
		}, []string{"outcome"}),

		fetchDuration: promauto.NewHistogram(prometheus.HistogramOpts{
			Name:    "marinecast_fetch_duration_seconds",
			Help:    "Upstream fetch+parse duration in seconds",
			Buckets: prometheus.DefBuckets,
		}),

		parseFailures: promauto.NewCounter(prometheus.CounterOpts{
			Name: "marinecast_parse_failures_total",
			Help: "Total bulletin parse failures",
		}),
	}

	promauto.NewGaugeFunc(prometheus.GaugeOpts{
		Name: "marinecast_zones_with_data",
		Help: "Number of zones currently holding a parsed forecast record",
	}, func() float64 {
		return float64(records.RecordCount())
	})

	return m
}

type noopMetrics struct{}

func (n *noopMetrics) IncRequestsTotal(_ string, _ int)                 {}
func (n *noopMetrics) ObserveRequestDuration(_ string, _ time.Duration) {}
func (n *noopMetrics) IncCacheHits()                                    {}
func (n *noopMetrics) IncCacheMisses()                                  {}
func (n *noopMetrics) IncFetches(_ string)                              {}
func (n *noopMetrics) ObserveFetchDuration(_ time.Duration)             {}
func (n *noopMetrics) IncParseFailures()                                {}
