package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics набор prometheus-метрик сервиса
type Metrics struct {
	// HTTPRequestsTotal счетчик HTTP запросов (method, path, status)
	HTTPRequestsTotal *prometheus.CounterVec

	// HTTPRequestDuration гистограмма времени обработки HTTP запросов
	HTTPRequestDuration *prometheus.HistogramVec

	// FormSessionsActive текущее число активных сессий формы
	FormSessionsActive prometheus.Gauge
}

// New создает и регистрирует метрики в default registry
func New(serviceName string) *Metrics {
	constLabels := prometheus.Labels{"service": serviceName}

	return &Metrics{
		HTTPRequestsTotal: promauto.NewCounterVec(prometheus.CounterOpts{
			Name:        "http_requests_total",
			Help:        "Total number of HTTP requests",
			ConstLabels: constLabels,
		}, []string{"method", "path", "status"}),

		HTTPRequestDuration: promauto.NewHistogramVec(prometheus.HistogramOpts{
			Name:        "http_request_duration_seconds",
			Help:        "HTTP request duration in seconds",
			ConstLabels: constLabels,
			Buckets:     prometheus.DefBuckets,
		}, []string{"method", "path"}),

		FormSessionsActive: promauto.NewGauge(prometheus.GaugeOpts{
			Name:        "form_sessions_active",
			Help:        "Number of active in-memory form sessions",
			ConstLabels: constLabels,
		}),
	}
}
