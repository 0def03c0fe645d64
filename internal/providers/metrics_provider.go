package providers

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"photobooth/internal/structures"
	"time"
)

type MetricsProviderInterface interface {
	IncRequestsTotal(endpoint string, status int)
	ObserveRequestDuration(endpoint string, duration time.Duration)
	IncCacheHits()
	IncCacheMisses()
	ObservePersistenceDuration(duration time.Duration)
	IncSessions(outcome string)
	IncCaptures(result string)
	ObserveRenderDuration(kind string, duration time.Duration)
	SetPhotosInSession(count int)
}

type MetricsProvider struct {
	requestsTotal       *prometheus.CounterVec
	requestDuration     *prometheus.HistogramVec
	cacheHits           prometheus.Counter
	cacheMisses         prometheus.Counter
	persistenceDuration prometheus.Histogram
	sessionsTotal       *prometheus.CounterVec
	capturesTotal       *prometheus.CounterVec
	renderDuration      *prometheus.HistogramVec
	photosInSession     prometheus.Gauge
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

func (m *MetricsProvider) ObservePersistenceDuration(duration time.Duration) {
	m.persistenceDuration.Observe(duration.Seconds())
}

func (m *MetricsProvider) IncSessions(outcome string) {
	m.sessionsTotal.WithLabelValues(outcome).Inc()
}

func (m *MetricsProvider) IncCaptures(result string) {
	m.capturesTotal.WithLabelValues(result).Inc()
}

func (m *MetricsProvider) ObserveRenderDuration(kind string, duration time.Duration) {
	m.renderDuration.WithLabelValues(kind).Observe(duration.Seconds())
}

func (m *MetricsProvider) SetPhotosInSession(count int) {
	m.photosInSession.Set(float64(count))
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

func NewMetricsProvider(conf *structures.Config) MetricsProviderInterface {
	if !conf.Metrics.Enabled {
		return &noopMetrics{}
	}
	return newMetricsProvider(promauto.With(prometheus.DefaultRegisterer))
}

func newMetricsProvider(factory promauto.Factory) *MetricsProvider {
	return &MetricsProvider{
		requestsTotal: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "photobooth_requests_total",
			Help: "Total number of HTTP requests",
		}, []string{"endpoint", "status"}),

		requestDuration: factory.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "photobooth_request_duration_seconds",
			Help:    "HTTP request duration in seconds",
			Buckets: prometheus.DefBuckets,
		}, []string{"endpoint"}),

		cacheHits: factory.NewCounter(prometheus.CounterOpts{
			Name: "photobooth_cache_hits_total",
			Help: "Total number of render cache hits",
		}),

		cacheMisses: factory.NewCounter(prometheus.CounterOpts{
			Name: "photobooth_cache_misses_total",
			Help: "Total number of render cache misses",
		}),

		persistenceDuration: factory.NewHistogram(prometheus.HistogramOpts{
			Name:    "photobooth_persistence_duration_seconds",
			Help:    "Duration of persistence operations in seconds",
			Buckets: prometheus.DefBuckets,
		}),

		sessionsTotal: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "photobooth_sessions_total",
			Help: "Sessions by outcome (started, completed, aborted, rejected)",
		}, []string{"outcome"}),

		capturesTotal: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "photobooth_captures_total",
			Help: "Capture attempts by result (ok, skipped)",
		}, []string{"result"}),

		renderDuration: factory.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "photobooth_render_duration_seconds",
			Help:    "Duration of image renders in seconds",
			Buckets: prometheus.DefBuckets,
		}, []string{"kind"}),

		photosInSession: factory.NewGauge(prometheus.GaugeOpts{
			Name: "photobooth_session_photos",
			Help: "Photos held by the current session",
		}),
	}
}

// noopMetrics is a no-op implementation for when metrics are disabled.
type noopMetrics struct{}

func (n *noopMetrics) IncRequestsTotal(_ string, _ int)                 {}
func (n *noopMetrics) ObserveRequestDuration(_ string, _ time.Duration) {}
func (n *noopMetrics) IncCacheHits()                                    {}
func (n *noopMetrics) IncCacheMisses()                                  {}
func (n *noopMetrics) ObservePersistenceDuration(_ time.Duration)       {}
func (n *noopMetrics) IncSessions(_ string)                             {}
func (n *noopMetrics) IncCaptures(_ string)                             {}
func (n *noopMetrics) ObserveRenderDuration(_ string, _ time.Duration)  {}
func (n *noopMetrics) SetPhotosInSession(_ int)                         {}
