package observability

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// RequestDuration tracks request duration
	RequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name: "app_participa_request_duration_seconds",
			Help: "Duration of HTTP requests in seconds",
		},
		[]string{"path", "method", "status"},
	)

	// ValidationResults counts validation outcomes per kind (cpf, email, phone, identifier, form)
	ValidationResults = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "app_participa_validation_results_total",
			Help: "Number of validations by kind and outcome",
		},
		[]string{"kind", "outcome"},
	)

	// FieldClassifications counts how identifier inputs were classified
	FieldClassifications = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "app_participa_identifier_classifications_total",
			Help: "Number of identifier field classifications by mode",
		},
		[]string{"mode"},
	)

	// RateLimitRejections counts requests rejected by the form rate limiter
	RateLimitRejections = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "app_participa_rate_limit_rejections_total",
			Help: "Number of requests rejected by the rate limiter",
		},
		[]string{"scope"},
	)

	// ActiveConnections tracks active connections
	ActiveConnections = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "app_participa_active_connections",
			Help: "Number of active connections",
		},
	)
)

// Outcome returns the label value for a validation outcome
func Outcome(valid bool) string {
	if valid {
		return "valid"
	}
	return "invalid"
}

// RecordValidation increments the validation counter for kind
func RecordValidation(kind string, valid bool) {
	ValidationResults.WithLabelValues(kind, Outcome(valid)).Inc()
}
