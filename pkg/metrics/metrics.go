// Package metrics собирает Prometheus метрики HTTP слоя и connection pool.
package metrics

import (
	"database/sql"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Интервал опроса статистики connection pool
const dbStatsInterval = 15 * time.Second

// Metrics набор метрик сервиса
type Metrics struct {
	httpRequestsTotal   *prometheus.CounterVec
	httpRequestDuration *prometheus.HistogramVec

	dbOpenConns  prometheus.Gauge
	dbIdleConns  prometheus.Gauge
	dbInUseConns prometheus.Gauge
	dbWaitCount  prometheus.Gauge
}

// New создает и регистрирует метрики сервиса
func New(serviceName string) *Metrics {
	constLabels := prometheus.Labels{"service": serviceName}

	return &Metrics{
		httpRequestsTotal: promauto.NewCounterVec(prometheus.CounterOpts{
			Name:        "http_requests_total",
			Help:        "Total number of HTTP requests",
			ConstLabels: constLabels,
		}, []string{"method", "path", "status"}),

		httpRequestDuration: promauto.NewHistogramVec(prometheus.HistogramOpts{
			Name:        "http_request_duration_seconds",
			Help:        "HTTP request duration in seconds",
			ConstLabels: constLabels,
			Buckets:     prometheus.DefBuckets,
		}, []string{"method", "path"}),

		dbOpenConns: promauto.NewGauge(prometheus.GaugeOpts{
			Name:        "db_open_connections",
			Help:        "Number of open database connections",
			ConstLabels: constLabels,
		}),
		dbIdleConns: promauto.NewGauge(prometheus.GaugeOpts{
			Name:        "db_idle_connections",
			Help:        "Number of idle database connections",
			ConstLabels: constLabels,
		}),
		dbInUseConns: promauto.NewGauge(prometheus.GaugeOpts{
			Name:        "db_in_use_connections",
			Help:        "Number of database connections in use",
			ConstLabels: constLabels,
		}),
		dbWaitCount: promauto.NewGauge(prometheus.GaugeOpts{
			Name:        "db_wait_count_total",
			Help:        "Total number of connections waited for",
			ConstLabels: constLabels,
		}),
	}
}

// ObserveHTTP фиксирует завершенный HTTP запрос
func (m *Metrics) ObserveHTTP(method, path string, status int, duration time.Duration) {
	m.httpRequestsTotal.WithLabelValues(method, path, strconv.Itoa(status)).Inc()
	m.httpRequestDuration.WithLabelValues(method, path).Observe(duration.Seconds())
}

// StartDBStatsCollector запускает фоновый сбор статистики connection pool.
// Останавливается при закрытии stopCh
func (m *Metrics) StartDBStatsCollector(db *sql.DB, stopCh <-chan struct{}) {
	go func() {
		ticker := time.NewTicker(dbStatsInterval)
		defer ticker.Stop()

		for {
			select {
			case <-stopCh:
				return
			case <-ticker.C:
				stats := db.Stats()
				m.dbOpenConns.Set(float64(stats.OpenConnections))
				m.dbIdleConns.Set(float64(stats.Idle))
				m.dbInUseConns.Set(float64(stats.InUse))
				m.dbWaitCount.Set(float64(stats.WaitCount))
			}
		}
	}()
}
