// Package metrics exposes Prometheus counters of the share gateway.
package metrics

import (
	"net/http"
	"strconv"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/iudanet/divelog/internal/share"
)

const namespace = "divelog"

// Операции с токенами
const (
	OperationEncode = "encode"
	OperationDecode = "decode"
)

// Metrics holds the gateway collectors in a private registry
type Metrics struct {
	registry     *prometheus.Registry
	shareTokens  *prometheus.CounterVec
	httpRequests *prometheus.CounterVec
}

// New creates and registers the collectors
func New() *Metrics {
	m := &Metrics{
		registry: prometheus.NewRegistry(),
		shareTokens: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "share_tokens_total",
				Help:      "Share token operations by outcome kind.",
			},
			[]string{"operation", "kind"},
		),
		httpRequests: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "http_requests_total",
				Help:      "HTTP requests by method, route pattern and status code.",
			},
			[]string{"method", "route", "code"},
		),
	}

	m.registry.MustRegister(
		m.shareTokens,
		m.httpRequests,
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	return m
}

// ObserveShare counts one encode or decode with the kind of err
func (m *Metrics) ObserveShare(operation string, err error) {
	m.shareTokens.WithLabelValues(operation, share.Kind(err)).Inc()
}

// ObserveRequest counts one served request. An empty route means no pattern matched.
func (m *Metrics) ObserveRequest(method, route string, code int) {
	if route == "" {
		route = "unmatched"
	}
	m.httpRequests.WithLabelValues(method, route, strconv.Itoa(code)).Inc()
}

// Handler serves the registry in the Prometheus text format
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{})
}
