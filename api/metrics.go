package api

import (
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// =============================================================================
// METRICS - Prometheus collectors for the HTTP surface and payroll runs
// =============================================================================

// Metrics owns a private registry so tests can build as many as they like.
type Metrics struct {
	registry *prometheus.Registry

	requests        *prometheus.CounterVec
	requestDuration *prometheus.HistogramVec
	runs            *prometheus.CounterVec
	employees       prometheus.Histogram
	grossPay        prometheus.Counter
	warnings        prometheus.Counter
}

// NewMetrics registers every collector, plus the Go runtime and process
// collectors, on a fresh registry.
func NewMetrics() *Metrics {
	m := &Metrics{
		registry: prometheus.NewRegistry(),
		requests: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "payroll",
			Name:      "http_requests_total",
			Help:      "HTTP requests by route, method and status.",
		}, []string{"route", "method", "status"}),
		requestDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: "payroll",
			Name:      "http_request_duration_seconds",
			Help:      "HTTP request latency by route.",
			Buckets:   prometheus.DefBuckets,
		}, []string{"route"}),
		runs: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "payroll",
			Name:      "runs_total",
			Help:      "Payroll computations by kind (compute, preview, severance).",
		}, []string{"kind"}),
		employees: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: "payroll",
			Name:      "run_employees",
			Help:      "Employees per compute run.",
			Buckets:   []float64{1, 5, 10, 25, 50, 100, 250},
		}),
		grossPay: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "payroll",
			Name:      "gross_pay_won_total",
			Help:      "Sum of gross pay computed, in won.",
		}),
		warnings: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "payroll",
			Name:      "input_warnings_total",
			Help:      "Malformed records dropped or reported during compute.",
		}),
	}
	m.registry.MustRegister(
		m.requests, m.requestDuration, m.runs, m.employees, m.grossPay, m.warnings,
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	return m
}

// Handler serves the registry in the Prometheus text format.
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{Registry: m.registry})
}

// Instrument records count and latency per chi route pattern.
func (m *Metrics) Instrument(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
		start := time.Now()
		next.ServeHTTP(ww, r)

		route := "unmatched"
		if rc := chi.RouteContext(r.Context()); rc != nil && rc.RoutePattern() != "" {
			route = rc.RoutePattern()
		}
		status := ww.Status()
		if status == 0 {
			status = http.StatusOK
		}
		m.requests.WithLabelValues(route, r.Method, strconv.Itoa(status)).Inc()
		m.requestDuration.WithLabelValues(route).Observe(time.Since(start).Seconds())
	})
}

func (m *Metrics) observeCompute(employees int, gross int64, warnings int) {
	m.runs.WithLabelValues("compute").Inc()
	m.employees.Observe(float64(employees))
	if gross > 0 {
		m.grossPay.Add(float64(gross))
	}
	m.warnings.Add(float64(warnings))
}

func (m *Metrics) observe(kind string) {
	m.runs.WithLabelValues(kind).Inc()
}
