// Package metrics expone contadores Prometheus del servicio.
package metrics

import (
	"net/http"
	"strconv"
	"time"

	"hospital-management/internal/domain/vitals"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Metrics agrupa los collectors. Se registra en un Registry propio para que
// cada router (y cada test) tenga el suyo.
type Metrics struct {
	registry *prometheus.Registry

	httpRequests  *prometheus.CounterVec
	httpDuration  *prometheus.HistogramVec
	vitalsTotal   prometheus.Counter
	anomalyLabels *prometheus.CounterVec
	criticalTotal prometheus.Counter
}

func New(service string) *Metrics {
	constLabels := prometheus.Labels{"service": service}

	m := &Metrics{
		registry: prometheus.NewRegistry(),
		httpRequests: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name:        "http_requests_total",
			Help:        "Total number of HTTP requests",
			ConstLabels: constLabels,
		}, []string{"method", "route", "status_code"}),
		httpDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Name:        "http_request_duration_seconds",
			Help:        "Duration of HTTP requests in seconds",
			Buckets:     prometheus.DefBuckets,
			ConstLabels: constLabels,
		}, []string{"method", "route"}),
		vitalsTotal: prometheus.NewCounter(prometheus.CounterOpts{
			Name:        "vitals_readings_total",
			Help:        "Vitals readings recorded",
			ConstLabels: constLabels,
		}),
		anomalyLabels: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name:        "vitals_anomalies_total",
			Help:        "Anomaly labels raised by recorded readings",
			ConstLabels: constLabels,
		}, []string{"label"}),
		criticalTotal: prometheus.NewCounter(prometheus.CounterOpts{
			Name:        "vitals_critical_readings_total",
			Help:        "Recorded readings with at least one anomaly",
			ConstLabels: constLabels,
		}),
	}

	m.registry.MustRegister(
		m.httpRequests,
		m.httpDuration,
		m.vitalsTotal,
		m.anomalyLabels,
		m.criticalTotal,
		collectors.NewGoCollector(),
	)
	return m
}

// ObserveReading implementa vitals.Observer.
func (m *Metrics) ObserveReading(labels []vitals.AnomalyLabel) {
	m.vitalsTotal.Inc()
	if len(labels) > 0 {
		m.criticalTotal.Inc()
	}
	for _, l := range labels {
		m.anomalyLabels.WithLabelValues(string(l)).Inc()
	}
}

// Middleware mide cada request usando el patrón de ruta de chi (no el path
// crudo) para no explotar la cardinalidad con IDs.
func (m *Metrics) Middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		ww := chimw.NewWrapResponseWriter(w, r.ProtoMajor)

		next.ServeHTTP(ww, r)

		route := "unmatched"
		if rc := chi.RouteContext(r.Context()); rc != nil {
			if p := rc.RoutePattern(); p != "" {
				route = p
			}
		}
		status := ww.Status()
		if status == 0 {
			status = http.StatusOK
		}

		m.httpRequests.WithLabelValues(r.Method, route, strconv.Itoa(status)).Inc()
		m.httpDuration.WithLabelValues(r.Method, route).Observe(time.Since(start).Seconds())
	})
}

func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{})
}
