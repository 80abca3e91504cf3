package metrics

import (
	"net/http"
	"tzconv/shared/constant"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const (
	ResultSuccess = "success"
	ResultFailure = "failure"

	ActionCreate = "create"
	ActionDelete = "delete"
)

// Metrics holds all prometheus metrics
type Metrics struct {
	Registry        *prometheus.Registry
	RequestsTotal   *prometheus.CounterVec
	RequestDuration *prometheus.HistogramVec
	Conversions     *prometheus.CounterVec
	SavedTimezones  *prometheus.CounterVec
}

// New creates the metrics on a dedicated registry so repeated construction does not collide.
func New() *Metrics {
	registry := prometheus.NewRegistry()
	registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)

	factory := promauto.With(registry)

	return &Metrics{
		Registry: registry,
		RequestsTotal: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: constant.MetricsNamespace,
			Name:      "http_requests_total",
			Help:      "The total number of served HTTP requests",
		}, []string{"method", "route", "status"}),
		RequestDuration: factory.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: constant.MetricsNamespace,
			Name:      "http_request_duration_seconds",
			Help:      "Time taken to serve HTTP requests",
			Buckets:   prometheus.DefBuckets,
		}, []string{"method", "route"}),
		Conversions: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: constant.MetricsNamespace,
			Name:      "conversions_total",
			Help:      "The total number of conversions to the target zone",
		}, []string{"result"}),
		SavedTimezones: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: constant.MetricsNamespace,
			Name:      "saved_timezone_operations_total",
			Help:      "The total number of saved timezone mutations",
		}, []string{"action", "result"}),
	}
}

func (m *Metrics) ObserveConversion(err error) {
	m.Conversions.WithLabelValues(result(err)).Inc()
}

func (m *Metrics) ObserveSavedTimezone(action string, err error) {
	m.SavedTimezones.WithLabelValues(action, result(err)).Inc()
}

// Handler exposes the registry in the Prometheus text format.
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.Registry, promhttp.HandlerOpts{Registry: m.Registry})
}

func result(err error) string {
	if err != nil {
		return ResultFailure
	}

	return ResultSuccess
}
