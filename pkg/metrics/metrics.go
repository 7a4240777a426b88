package metrics

import (
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Metrics набор prometheus-коллекторов сервиса.
// Все методы безопасны для nil-получателя: при выключенных метриках передается nil.
type Metrics struct {
	registry *prometheus.Registry

	httpRequestsTotal   *prometheus.CounterVec
	httpRequestDuration *prometheus.HistogramVec

	catalogFetchesTotal     *prometheus.CounterVec
	catalogFetchesCoalesced prometheus.Counter
	staleSlotsTotal         prometheus.Counter
	illegalTransitions      *prometheus.CounterVec
	resolverSessions        prometheus.Gauge

	dbQueryDuration *prometheus.HistogramVec
	dbConnections   *prometheus.GaugeVec
}

// New создает и регистрирует коллекторы в собственном реестре
func New(serviceName string) *Metrics {
	constLabels := prometheus.Labels{"service": serviceName}

	m := &Metrics{
		registry: prometheus.NewRegistry(),
		httpRequestsTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name:        "http_requests_total",
			Help:        "Total number of HTTP requests",
			ConstLabels: constLabels,
		}, []string{"method", "route", "status"}),
		httpRequestDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Name:        "http_request_duration_seconds",
			Help:        "HTTP request latency",
			ConstLabels: constLabels,
			Buckets:     prometheus.DefBuckets,
		}, []string{"method", "route"}),
		catalogFetchesTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name:        "schedule_catalog_fetches_total",
			Help:        "Schedule catalog fetches by result",
			ConstLabels: constLabels,
		}, []string{"result"}),
		catalogFetchesCoalesced: prometheus.NewCounter(prometheus.CounterOpts{
			Name:        "schedule_catalog_fetches_coalesced_total",
			Help:        "Callers that joined an in-flight schedule catalog fetch",
			ConstLabels: constLabels,
		}),
		staleSlotsTotal: prometheus.NewCounter(prometheus.CounterOpts{
			Name:        "turns_stale_slot_rejections_total",
			Help:        "Submissions rejected because the slot was no longer offered",
			ConstLabels: constLabels,
		}),
		illegalTransitions: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name:        "turns_illegal_transitions_total",
			Help:        "Rejected turn state transitions",
			ConstLabels: constLabels,
		}, []string{"from", "to"}),
		resolverSessions: prometheus.NewGauge(prometheus.GaugeOpts{
			Name:        "availability_resolver_sessions",
			Help:        "Live availability resolver sessions",
			ConstLabels: constLabels,
		}),
		dbQueryDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Name:        "db_query_duration_seconds",
			Help:        "Database query latency",
			ConstLabels: constLabels,
			Buckets:     prometheus.DefBuckets,
		}, []string{"operation"}),
		dbConnections: prometheus.NewGaugeVec(prometheus.GaugeOpts{
			Name:        "db_connections",
			Help:        "Database connection pool state",
			ConstLabels: constLabels,
		}, []string{"state"}),
	}

	m.registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
		m.httpRequestsTotal,
		m.httpRequestDuration,
		m.catalogFetchesTotal,
		m.catalogFetchesCoalesced,
		m.staleSlotsTotal,
		m.illegalTransitions,
		m.resolverSessions,
		m.dbQueryDuration,
		m.dbConnections,
	)

	return m
}

// Handler http.Handler для эндпоинта /metrics
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{})
}

// Registry возвращает реестр (для тестов)
func (m *Metrics) Registry() *prometheus.Registry {
	return m.registry
}

func (m *Metrics) ObserveHTTPRequest(method, route string, status int, duration time.Duration) {
	if m == nil {
		return
	}
	m.httpRequestsTotal.WithLabelValues(method, route, strconv.Itoa(status)).Inc()
	m.httpRequestDuration.WithLabelValues(method, route).Observe(duration.Seconds())
}

func (m *Metrics) ObserveCatalogFetch(success bool) {
	if m == nil {
		return
	}
	result := "success"
	if !success {
		result = "error"
	}
	m.catalogFetchesTotal.WithLabelValues(result).Inc()
}

func (m *Metrics) IncCatalogFetchCoalesced() {
	if m == nil {
		return
	}
	m.catalogFetchesCoalesced.Inc()
}

func (m *Metrics) IncStaleSlot() {
	if m == nil {
		return
	}
	m.staleSlotsTotal.Inc()
}

func (m *Metrics) IncIllegalTransition(from, to string) {
	if m == nil {
		return
	}
	m.illegalTransitions.WithLabelValues(from, to).Inc()
}

func (m *Metrics) SetResolverSessions(n int) {
	if m == nil {
		return
	}
	m.resolverSessions.Set(float64(n))
}

func (m *Metrics) ObserveDBQuery(operation string, duration time.Duration) {
	if m == nil {
		return
	}
	m.dbQueryDuration.WithLabelValues(operation).Observe(duration.Seconds())
}

func (m *Metrics) SetDBConnections(open, inUse, idle int) {
	if m == nil {
		return
	}
	m.dbConnections.WithLabelValues("open").Set(float64(open))
	m.dbConnections.WithLabelValues("in_use").Set(float64(inUse))
	m.dbConnections.WithLabelValues("idle").Set(float64(idle))
}
