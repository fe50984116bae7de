package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics holds all prometheus collectors used by the service.
type Metrics struct {
	// HTTP layer
	HTTPRequestsTotal   *prometheus.CounterVec
	HTTPRequestDuration *prometheus.HistogramVec

	// Database layer
	DBQueriesTotal  *prometheus.CounterVec
	DBQueryDuration *prometheus.HistogramVec
	DBOpenConns     *prometheus.GaugeVec
	DBIdleConns     *prometheus.GaugeVec
	DBInUseConns    *prometheus.GaugeVec

	// Domain
	PolicyViolationsTotal *prometheus.CounterVec
	EstimatesTotal        *prometheus.CounterVec
	WelcomeEmailsTotal    *prometheus.CounterVec
}

// New registers and returns the service collectors on the default registry.
func New(serviceName string) *Metrics {
	constLabels := prometheus.Labels{"service": serviceName}

	return &Metrics{
		HTTPRequestsTotal: promauto.NewCounterVec(prometheus.CounterOpts{
			Name:        "http_requests_total",
			Help:        "Total number of HTTP requests.",
			ConstLabels: constLabels,
		}, []string{"method", "path", "status"}),

		HTTPRequestDuration: promauto.NewHistogramVec(prometheus.HistogramOpts{
			Name:        "http_request_duration_seconds",
			Help:        "HTTP request latency.",
			ConstLabels: constLabels,
			Buckets:     prometheus.DefBuckets,
		}, []string{"method", "path"}),

		DBQueriesTotal: promauto.NewCounterVec(prometheus.CounterOpts{
			Name:        "db_queries_total",
			Help:        "Total number of database queries.",
			ConstLabels: constLabels,
		}, []string{"operation", "status"}),

		DBQueryDuration: promauto.NewHistogramVec(prometheus.HistogramOpts{
			Name:        "db_query_duration_seconds",
			Help:        "Database query latency.",
			ConstLabels: constLabels,
			Buckets:     []float64{0.001, 0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1},
		}, []string{"operation"}),

		DBOpenConns: promauto.NewGaugeVec(prometheus.GaugeOpts{
			Name:        "db_pool_open_connections",
			Help:        "Open connections in the database pool.",
			ConstLabels: constLabels,
		}, []string{"db"}),

		DBIdleConns: promauto.NewGaugeVec(prometheus.GaugeOpts{
			Name:        "db_pool_idle_connections",
			Help:        "Idle connections in the database pool.",
			ConstLabels: constLabels,
		}, []string{"db"}),

		DBInUseConns: promauto.NewGaugeVec(prometheus.GaugeOpts{
			Name:        "db_pool_in_use_connections",
			Help:        "In-use connections in the database pool.",
			ConstLabels: constLabels,
		}, []string{"db"}),

		PolicyViolationsTotal: promauto.NewCounterVec(prometheus.CounterOpts{
			Name:        "plan_policy_violations_total",
			Help:        "Appointment validations rejected, by rule.",
			ConstLabels: constLabels,
		}, []string{"rule"}),

		EstimatesTotal: promauto.NewCounterVec(prometheus.CounterOpts{
			Name:        "return_estimates_total",
			Help:        "Return estimates produced, by strategy.",
			ConstLabels: constLabels,
		}, []string{"strategy"}),

		WelcomeEmailsTotal: promauto.NewCounterVec(prometheus.CounterOpts{
			Name:        "welcome_emails_total",
			Help:        "Welcome notifications attempted, by mode and result.",
			ConstLabels: constLabels,
		}, []string{"mode", "result"}),
	}
}

// IncPolicyViolation counts one rejected appointment validation.
func (m *Metrics) IncPolicyViolation(rule string) {
	m.PolicyViolationsTotal.WithLabelValues(rule).Inc()
}

// IncEstimate counts one produced return estimate.
func (m *Metrics) IncEstimate(strategy string) {
	m.EstimatesTotal.WithLabelValues(strategy).Inc()
}

// IncWelcomeEmail counts one welcome notification attempt.
func (m *Metrics) IncWelcomeEmail(mode, result string) {
	m.WelcomeEmailsTotal.WithLabelValues(mode, result).Inc()
}
