package metrics

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// ErrRegister wraps collector registration failures.
var ErrRegister = errors.New("failed to register metrics")

// DefaultNamespace is used when New gets an empty namespace.
const DefaultNamespace = "signupkit"

// Metrics holds the service collectors.
type Metrics struct {
	gatherer prometheus.Gatherer

	requestsTotal    *prometheus.CounterVec
	requestDuration  *prometheus.HistogramVec
	requestsInFlight prometheus.Gauge
	outcomes         *prometheus.CounterVec
	submissions      *prometheus.CounterVec
}

type options struct {
	registerer prometheus.Registerer
	gatherer   prometheus.Gatherer
}

type Option func(*options)

// WithRegistry registers into reg and serves reg from Handler.
func WithRegistry(reg *prometheus.Registry) Option {
	return func(o *options) {
		if reg != nil {
			o.registerer, o.gatherer = reg, reg
		}
	}
}

// New creates and registers the collectors.
func New(namespace string, opts ...Option) (*Metrics, error) {
	if namespace == "" {
		namespace = DefaultNamespace
	}
	o := &options{
		registerer: prometheus.DefaultRegisterer,
		gatherer:   prometheus.DefaultGatherer,
	}
	for _, opt := range opts {
		opt(o)
	}

	m := &Metrics{
		gatherer: o.gatherer,
		requestsTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "http_requests_total",
				Help:      "Total number of HTTP requests",
			},
			[]string{"method", "route", "status"},
		),
		requestDuration: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Namespace: namespace,
				Name:      "http_request_duration_seconds",
				Help:      "HTTP request duration in seconds",
				Buckets:   []float64{.001, .005, .01, .025, .05, .1, .25, .5, 1},
			},
			[]string{"method", "route"},
		),
		requestsInFlight: prometheus.NewGauge(
			prometheus.GaugeOpts{
				Namespace: namespace,
				Name:      "http_requests_in_flight",
				Help:      "Number of HTTP requests currently being processed",
			},
		),
		outcomes: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Subsystem: "validation",
				Name:      "outcomes_total",
				Help:      "Field validation outcomes by field and kind",
			},
			[]string{"field", "kind"},
		),
		submissions: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Subsystem: "validation",
				Name:      "submissions_total",
				Help:      "Form submissions by result",
			},
			[]string{"result"},
		),
	}

	for _, c := range []prometheus.Collector{
		m.requestsTotal,
		m.requestDuration,
		m.requestsInFlight,
		m.outcomes,
		m.submissions,
	} {
		if err := o.registerer.Register(c); err != nil {
			return nil, errors.Join(ErrRegister, err)
		}
	}

	return m, nil
}

// ObserveOutcome counts one field validation.
func (m *Metrics) ObserveOutcome(field, kind string) {
	m.outcomes.WithLabelValues(field, kind).Inc()
}

// ObserveSubmission counts one submission attempt.
func (m *Metrics) ObserveSubmission(accepted bool) {
	result := "rejected"
	if accepted {
		result = "accepted"
	}
	m.submissions.WithLabelValues(result).Inc()
}

// Handler serves the registry in the Prometheus exposition format.
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.gatherer, promhttp.HandlerOpts{})
}

// Middleware records request count, latency and concurrency.
// Requests that match no route are labelled "unmatched".
func (m *Metrics) Middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		m.requestsInFlight.Inc()
		defer m.requestsInFlight.Dec()

		sw := &statusWriter{ResponseWriter: w, status: http.StatusOK}
		next.ServeHTTP(sw, r)

		route := "unmatched"
		if rctx := chi.RouteContext(r.Context()); rctx != nil {
			if p := rctx.RoutePattern(); p != "" {
				route = p
			}
		}

		m.requestsTotal.WithLabelValues(r.Method, route, strconv.Itoa(sw.status)).Inc()
		m.requestDuration.WithLabelValues(r.Method, route).Observe(time.Since(start).Seconds())
	})
}

type statusWriter struct {
	http.ResponseWriter
	status      int
	wroteHeader bool
}

func (w *statusWriter) WriteHeader(code int) {
	if !w.wroteHeader {
		w.status, w.wroteHeader = code, true
	}
	w.ResponseWriter.WriteHeader(code)
}

func (w *statusWriter) Write(b []byte) (int, error) {
	w.wroteHeader = true
	return w.ResponseWriter.Write(b)
}

func (w *statusWriter) Unwrap() http.ResponseWriter {
	return w.ResponseWriter
}
