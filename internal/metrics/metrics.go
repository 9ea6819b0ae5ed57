// Package metrics exposes Prometheus instruments for service use cases and
// the HTTP API.
package metrics

import (
	"context"
	"net/http"
	"strconv"
	"time"

	"github.com/alexanderramin/greenspot/internal/service"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Metrics holds greenspot's Prometheus collectors.
//
// Metrics:
//   - greenspot_use_cases_total{use_case,outcome}
//   - greenspot_use_case_duration_seconds{use_case}
//   - greenspot_follow_up_tasks_total
//   - greenspot_http_requests_total{method,route,status}
//   - greenspot_http_request_duration_seconds{method,route}
type Metrics struct {
	registry *prometheus.Registry

	UseCasesTotal   *prometheus.CounterVec
	UseCaseDuration *prometheus.HistogramVec
	FollowUpsTotal  prometheus.Counter

	HTTPRequestsTotal   *prometheus.CounterVec
	HTTPRequestDuration *prometheus.HistogramVec
}

// New registers a fresh set of collectors on their own registry, together
// with the Go runtime and process collectors.
func New() *Metrics {
	reg := prometheus.NewRegistry()
	reg.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	f := promauto.With(reg)

	return &Metrics{
		registry: reg,
		UseCasesTotal: f.NewCounterVec(
			prometheus.CounterOpts{
				Name: "greenspot_use_cases_total",
				Help: "Service use cases executed, by outcome",
			},
			[]string{"use_case", "outcome"},
		),
		UseCaseDuration: f.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "greenspot_use_case_duration_seconds",
				Help:    "Duration of service use cases in seconds",
				Buckets: prometheus.ExponentialBuckets(0.0005, 2, 12),
			},
			[]string{"use_case"},
		),
		FollowUpsTotal: f.NewCounter(prometheus.CounterOpts{
			Name: "greenspot_follow_up_tasks_total",
			Help: "Recurring tasks scheduled after a completion",
		}),
		HTTPRequestsTotal: f.NewCounterVec(
			prometheus.CounterOpts{
				Name: "greenspot_http_requests_total",
				Help: "HTTP API requests, by route and status",
			},
			[]string{"method", "route", "status"},
		),
		HTTPRequestDuration: f.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "greenspot_http_request_duration_seconds",
				Help:    "HTTP API request latency in seconds",
				Buckets: prometheus.DefBuckets,
			},
			[]string{"method", "route"},
		),
	}
}

// Registry returns the registry the collectors are registered on.
func (m *Metrics) Registry() *prometheus.Registry {
	return m.registry
}

// Handler serves the registry in the Prometheus exposition format.
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{Registry: m.registry})
}

// ObserveRequest records one finished HTTP request.
func (m *Metrics) ObserveRequest(method, route string, status int, d time.Duration) {
	m.HTTPRequestsTotal.WithLabelValues(method, route, strconv.Itoa(status)).Inc()
	m.HTTPRequestDuration.WithLabelValues(method, route).Observe(d.Seconds())
}

type useCaseObserver struct {
	m *Metrics
}

// UseCaseObserver returns a service observer that feeds these metrics.
func (m *Metrics) UseCaseObserver() service.UseCaseObserver {
	return useCaseObserver{m: m}
}

func (o useCaseObserver) ObserveUseCase(_ context.Context, e service.UseCaseEvent) {
	outcome := "success"
	if !e.Success {
		outcome = "error"
	}
	o.m.UseCasesTotal.WithLabelValues(e.Name, outcome).Inc()
	o.m.UseCaseDuration.WithLabelValues(e.Name).Observe(e.Duration.Seconds())
	if followUp, _ := e.Fields["follow_up"].(bool); followUp {
		o.m.FollowUpsTotal.Inc()
	}
}
