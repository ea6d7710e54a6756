// Package metrics owns the Prometheus collectors exported on /metrics.
// Collectors live on a private registry so tests can build as many as they
// like.
package metrics

import (
	"net/http"
	"strconv"
	"time"

	"github.com/dmitrijs2005/apibench/internal/dataset"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const namespace = "apibench"

type Metrics struct {
	registry *prometheus.Registry

	httpRequests *prometheus.CounterVec
	httpDuration *prometheus.HistogramVec
	grpcRequests *prometheus.CounterVec
	sieve        prometheus.Histogram
	datasetBuild *prometheus.GaugeVec
}

func New() *Metrics {
	m := &Metrics{
		registry: prometheus.NewRegistry(),
		httpRequests: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "http_requests_total",
			Help:      "HTTP requests served, by route, method and status code.",
		}, []string{"route", "method", "code"}),
		httpDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "http_request_duration_seconds",
			Help:      "HTTP request latency by route.",
			Buckets:   prometheus.DefBuckets,
		}, []string{"route"}),
		grpcRequests: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "grpc_requests_total",
			Help:      "gRPC unary calls served, by method and status code.",
		}, []string{"method", "code"}),
		sieve: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "sieve_duration_seconds",
			Help:      "Wall time of the prime sieve workload.",
			Buckets:   prometheus.ExponentialBuckets(0.001, 2, 12),
		}),
		datasetBuild: prometheus.NewGaugeVec(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "dataset_build_seconds",
			Help:      "Time taken to build each cached encoding of the user dataset.",
		}, []string{"encoding"}),
	}

	m.registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
		m.httpRequests,
		m.httpDuration,
		m.grpcRequests,
		m.sieve,
		m.datasetBuild,
	)
	return m
}

// Handler serves the registry in the Prometheus exposition format.
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{Registry: m.registry})
}

func (m *Metrics) ObserveHTTP(route, method string, code int, took time.Duration) {
	m.httpRequests.WithLabelValues(route, method, strconv.Itoa(code)).Inc()
	m.httpDuration.WithLabelValues(route).Observe(took.Seconds())
}

func (m *Metrics) ObserveGRPC(method, code string) {
	m.grpcRequests.WithLabelValues(method, code).Inc()
}

// ObserveSieve matches bench.SieveObserver.
func (m *Metrics) ObserveSieve(took time.Duration) {
	m.sieve.Observe(took.Seconds())
}

// ObserveDatasetBuild matches dataset.BuildObserver.
func (m *Metrics) ObserveDatasetBuild(enc dataset.Encoding, took time.Duration) {
	m.datasetBuild.WithLabelValues(string(enc)).Set(took.Seconds())
}
