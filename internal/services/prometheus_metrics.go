package services

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const (
	MetricAuthEvent       = "authentication_event"
	MetricDomainWrite     = "domain_write"
	MetricMailDispatched  = "mail_dispatched"
	MetricDashboard       = "dashboard_summary"
	MetricFamilyMembers   = "family_members"
	MetricCatalogCacheHit = "catalog_cache"
)

type PrometheusMetrics struct {
	authenticationEventsTotal *prometheus.CounterVec
	domainWritesTotal         *prometheus.CounterVec
	mailDispatchedTotal       *prometheus.CounterVec
	catalogCacheTotal         *prometheus.CounterVec
	dashboardDuration         prometheus.Histogram
	familyMembers             *prometheus.GaugeVec
}

// NewPrometheusMetrics registers the collectors with registerer. Tests pass a fresh
// prometheus.NewRegistry() so repeated construction does not collide.
func NewPrometheusMetrics(registerer prometheus.Registerer) MetricsRecorderInterface {
	factory := promauto.With(registerer)

	return &PrometheusMetrics{
		authenticationEventsTotal: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "authentication_events_total",
				Help: "Total number of authentication events",
			},
			[]string{"event_type"},
		),
		domainWritesTotal: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "domain_writes_total",
				Help: "Total number of accounts, categories, transactions and members written",
			},
			[]string{"entity", "operation"},
		),
		mailDispatchedTotal: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "mail_dispatched_total",
				Help: "Total number of outbound mails handed to the transport",
			},
			[]string{"kind", "status"},
		),
		catalogCacheTotal: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "catalog_cache_lookups_total",
				Help: "Icon and color lookups by cache result",
			},
			[]string{"result"},
		),
		dashboardDuration: factory.NewHistogram(
			prometheus.HistogramOpts{
				Name:    "dashboard_summary_duration_milliseconds",
				Help:    "Dashboard summary computation time in milliseconds",
				Buckets: prometheus.ExponentialBuckets(1, 2, 12),
			},
		),
		familyMembers: factory.NewGaugeVec(
			prometheus.GaugeOpts{
				Name: "family_members",
				Help: "Members of a family as of its last listing",
			},
			[]string{"family_id"},
		),
	}
}

func (m *PrometheusMetrics) IncrementCounter(name string, tags map[string]string) {
	switch name {
	case MetricAuthEvent:
		if eventType := tags["event_type"]; eventType != "" {
			m.authenticationEventsTotal.WithLabelValues(eventType).Inc()
		}
	case MetricDomainWrite:
		m.domainWritesTotal.WithLabelValues(tags["entity"], tags["operation"]).Inc()
	case MetricMailDispatched:
		m.mailDispatchedTotal.WithLabelValues(tags["kind"], tags["status"]).Inc()
	case MetricCatalogCacheHit:
		m.catalogCacheTotal.WithLabelValues(tags["result"]).Inc()
	}
}

func (m *PrometheusMetrics) RecordProcessingTime(name string, duration time.Duration) {
	switch name {
	case MetricDashboard:
		m.dashboardDuration.Observe(float64(duration.Milliseconds()))
	}
}

func (m *PrometheusMetrics) RecordGauge(name string, value float64, tags map[string]string) {
	switch name {
	case MetricFamilyMembers:
		if familyID := tags["family_id"]; familyID != "" {
			m.familyMembers.WithLabelValues(familyID).Set(value)
		}
	}
}

// NoopMetrics discards every measurement
type NoopMetrics struct{}

func (NoopMetrics) IncrementCounter(string, map[string]string) {}
func (NoopMetrics) RecordProcessingTime(string, time.Duration) {}
func (NoopMetrics) RecordGauge(string, float64, map[string]string) {}
