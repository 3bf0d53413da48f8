package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics holds all the Prometheus metrics for our service
type Metrics struct {
	// Request counters
	HTTPRequestsTotal    *prometheus.CounterVec
	HTTPRequestDuration  *prometheus.HistogramVec
	HTTPRequestsInFlight *prometheus.GaugeVec

	// Business logic metrics
	RemoteCalls       *prometheus.CounterVec
	RemoteCallErrors  *prometheus.CounterVec
	DonationsRecorded *prometheus.CounterVec
	CampaignsCreated  prometheus.Counter
	SeedFallbacks     prometheus.Counter
}

// NewPrometheusMetrics creates and registers all Prometheus metrics
func NewPrometheusMetrics() *Metrics {
	metrics := &Metrics{
		// HTTP request metrics
		HTTPRequestsTotal: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "donatetracker_http_requests_total",
				Help: "Total number of HTTP requests",
			},
			[]string{"method", "endpoint", "status_code"},
		),

		HTTPRequestDuration: promauto.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "donatetracker_http_request_duration_seconds",
				Help:    "HTTP request duration in seconds",
				Buckets: prometheus.DefBuckets,
			},
			[]string{"method", "endpoint"},
		),

		HTTPRequestsInFlight: promauto.NewGaugeVec(
			prometheus.GaugeOpts{
				Name: "donatetracker_http_requests_in_flight",
				Help: "Current number of HTTP requests being processed",
			},
			[]string{"method", "endpoint"},
		),

		// Business metrics
		RemoteCalls: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "donatetracker_remote_calls_total",
				Help: "Total number of calls to the hosted campaign service",
			},
			[]string{"operation"},
		),

		RemoteCallErrors: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "donatetracker_remote_call_errors_total",
				Help: "Total number of failed calls to the hosted campaign service",
			},
			[]string{"operation"},
		),

		DonationsRecorded: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "donatetracker_donations_recorded_total",
				Help: "Total number of donations confirmed by the campaign service",
			},
			[]string{"category"},
		),

		CampaignsCreated: promauto.NewCounter(
			prometheus.CounterOpts{
				Name: "donatetracker_campaigns_created_total",
				Help: "Total number of campaigns created",
			},
		),

		SeedFallbacks: promauto.NewCounter(
			prometheus.CounterOpts{
				Name: "donatetracker_seed_fallbacks_total",
				Help: "Total number of loads that fell back to the seed collection",
			},
		),
	}

	return metrics
}

// RecordHTTPRequest records an HTTP request with its duration and status
func (m *Metrics) RecordHTTPRequest(method, endpoint, statusCode string, duration float64) {
	m.HTTPRequestsTotal.WithLabelValues(method, endpoint, statusCode).Inc()
	m.HTTPRequestDuration.WithLabelValues(method, endpoint).Observe(duration)
}

// RecordRemoteCall records one call to the hosted campaign service
func (m *Metrics) RecordRemoteCall(operation string, failed bool) {
	m.RemoteCalls.WithLabelValues(operation).Inc()
	if failed {
		m.RemoteCallErrors.WithLabelValues(operation).Inc()
	}
}

// RecordDonation records a confirmed donation
func (m *Metrics) RecordDonation(category string) {
	m.DonationsRecorded.WithLabelValues(category).Inc()
}

// RecordCampaignCreated records a successful campaign creation
func (m *Metrics) RecordCampaignCreated() {
	m.CampaignsCreated.Inc()
}

// RecordSeedFallback records a load that degraded to the seed collection
func (m *Metrics) RecordSeedFallback() {
	m.SeedFallbacks.Inc()
}

// IncRequestsInFlight increments the in-flight requests counter
func (m *Metrics) IncRequestsInFlight(method, endpoint string) {
	m.HTTPRequestsInFlight.WithLabelValues(method, endpoint).Inc()
}

// DecRequestsInFlight decrements the in-flight requests counter
func (m *Metrics) DecRequestsInFlight(method, endpoint string) {
	m.HTTPRequestsInFlight.WithLabelValues(method, endpoint).Dec()
}
