package metrics

import (
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/dmitrymomot/validkit/pkg/schema"
)

// DefaultNamespace prefixes every metric name.
const DefaultNamespace = "validkit"

// Collector records validation outcomes and HTTP traffic.
// It implements schema.Observer.
type Collector struct {
	registry *prometheus.Registry

	validations *prometheus.CounterVec
	failures    *prometheus.CounterVec
	duration    *prometheus.HistogramVec
	requests    *prometheus.CounterVec
}

// NewCollector registers the collector metrics with registry.
// A nil registry gets a fresh one.
//
// Metrics:
//   - validkit_validations_total{schema,result,phase}
//   - validkit_validation_failures_total{schema,phase}
//   - validkit_validation_duration_seconds{schema}
//   - validkit_http_requests_total{method,route,status}
func NewCollector(namespace string, registry *prometheus.Registry) *Collector {
	if namespace == "" {
		namespace = DefaultNamespace
	}
	if registry == nil {
		registry = prometheus.NewRegistry()
	}

	c := &Collector{
		registry: registry,
		validations: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "validations_total",
				Help:      "Total number of Validate calls by result and failing phase",
			},
			[]string{"schema", "result", "phase"},
		),
		failures: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "validation_failures_total",
				Help:      "Total number of reported failures by failing phase",
			},
			[]string{"schema", "phase"},
		),
		duration: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Namespace: namespace,
				Name:      "validation_duration_seconds",
				Help:      "Duration of Validate calls in seconds",
				Buckets:   prometheus.ExponentialBuckets(0.000001, 4, 10), // 1µs to ~262ms
			},
			[]string{"schema"},
		),
		requests: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "http_requests_total",
				Help:      "Total number of HTTP requests by route and status",
			},
			[]string{"method", "route", "status"},
		),
	}

	registry.MustRegister(c.validations, c.failures, c.duration, c.requests)
	return c
}

// ObserveValidation implements schema.Observer.
func (c *Collector) ObserveValidation(o schema.Outcome) {
	result := "valid"
	if !o.Succeeded() {
		result = "invalid"
	}
	phase := o.FailedPhase.String()

	c.validations.WithLabelValues(o.Schema, result, phase).Inc()
	if o.Failures > 0 {
		c.failures.WithLabelValues(o.Schema, phase).Add(float64(o.Failures))
	}
	c.duration.WithLabelValues(o.Schema).Observe(o.Duration.Seconds())
}

// Middleware counts requests by chi route pattern so path parameters do not
// inflate label cardinality.
func (c *Collector) Middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
		next.ServeHTTP(ww, r)

		route := "unmatched"
		if rctx := chi.RouteContext(r.Context()); rctx != nil {
			if p := rctx.RoutePattern(); p != "" {
				route = p
			}
		}
		status := ww.Status()
		if status == 0 {
			status = http.StatusOK
		}
		c.requests.WithLabelValues(r.Method, route, strconv.Itoa(status)).Inc()
	})
}

// Handler exposes the registry in the Prometheus exposition format.
func (c *Collector) Handler() http.Handler {
	return promhttp.HandlerFor(c.registry, promhttp.HandlerOpts{
		EnableOpenMetrics: true,
		ErrorHandling:     promhttp.ContinueOnError,
		Timeout:           10 * time.Second,
	})
}

// Registry returns the underlying registry.
func (c *Collector) Registry() *prometheus.Registry {
	return c.registry
}
