package infrastructure

import (
	"context"
	"strconv"
	"sync"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

type lookupCollector struct {
	Lookups          *prometheus.CounterVec
	LookupLatency    *prometheus.HistogramVec
	ProviderCalls    *prometheus.CounterVec
	ProviderDuration *prometheus.HistogramVec
	Suggestions      *prometheus.CounterVec
}

var (
	globalLookupCollector *lookupCollector
	lookupCollectorOnce   sync.Once
)

// promauto registers on the default registry, which panics on duplicates,
// so the collectors are created once per process.
func getLookupCollector() *lookupCollector {
	lookupCollectorOnce.Do(func() {
		globalLookupCollector = &lookupCollector{
			Lookups: promauto.NewCounterVec(
				prometheus.CounterOpts{
					Name: "weather_lookups_total",
					Help: "The total number of weather lookups by request kind and outcome",
				},
				[]string{"kind", "outcome"},
			),
			LookupLatency: promauto.NewHistogramVec(
				prometheus.HistogramOpts{
					Name:    "weather_lookup_duration_seconds",
					Help:    "Weather lookup duration in seconds, including the provider call",
					Buckets: prometheus.DefBuckets,
				},
				[]string{"kind"},
			),
			ProviderCalls: promauto.NewCounterVec(
				prometheus.CounterOpts{
					Name: "weather_provider_requests_total",
					Help: "The total number of forecast provider requests",
				},
				[]string{"provider", "success"},
			),
			ProviderDuration: promauto.NewHistogramVec(
				prometheus.HistogramOpts{
					Name:    "weather_provider_request_duration_seconds",
					Help:    "Forecast provider request duration in seconds",
					Buckets: prometheus.DefBuckets,
				},
				[]string{"provider"},
			),
			Suggestions: promauto.NewCounterVec(
				prometheus.CounterOpts{
					Name: "weather_activity_suggestions_total",
					Help: "The total number of activity suggestions served, by matched rule",
				},
				[]string{"rule"},
			),
		}
	})
	return globalLookupCollector
}

// MetricsCollectorAdapter records lookups to Prometheus and keeps in-process
// totals for the JSON metrics endpoint.
type MetricsCollectorAdapter struct {
	collector *lookupCollector

	mu            sync.RWMutex
	lookups       map[string]int64
	suggestions   map[string]int64
	providerCalls int64
	providerFails int64
	startedAt     time.Time
}

// NewMetricsCollectorAdapter creates a new metrics collector adapter
func NewMetricsCollectorAdapter() *MetricsCollectorAdapter {
	return &MetricsCollectorAdapter{
		collector:   getLookupCollector(),
		lookups:     make(map[string]int64),
		suggestions: make(map[string]int64),
		startedAt:   time.Now(),
	}
}

// RecordLookup implements ports.LookupMetrics
func (m *MetricsCollectorAdapter) RecordLookup(kind, outcome string, duration time.Duration) {
	m.collector.Lookups.WithLabelValues(kind, outcome).Inc()
	m.collector.LookupLatency.WithLabelValues(kind).Observe(duration.Seconds())

	m.mu.Lock()
	defer m.mu.Unlock()
	m.lookups[outcome]++
}

// RecordProviderCall implements ports.LookupMetrics
func (m *MetricsCollectorAdapter) RecordProviderCall(provider string, success bool, duration time.Duration) {
	m.collector.ProviderCalls.WithLabelValues(provider, strconv.FormatBool(success)).Inc()
	m.collector.ProviderDuration.WithLabelValues(provider).Observe(duration.Seconds())

	m.mu.Lock()
	defer m.mu.Unlock()
	m.providerCalls++
	if !success {
		m.providerFails++
	}
}

// RecordSuggestion counts a served activity suggestion under its rule name
func (m *MetricsCollectorAdapter) RecordSuggestion(rule string) {
	m.collector.Suggestions.WithLabelValues(rule).Inc()

	m.mu.Lock()
	defer m.mu.Unlock()
	m.suggestions[rule]++
}

// GetMetrics returns the in-process totals since startup
func (m *MetricsCollectorAdapter) GetMetrics(ctx context.Context) (map[string]interface{}, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	lookups := make(map[string]int64, len(m.lookups))
	var total int64
	for outcome, count := range m.lookups {
		lookups[outcome] = count
		total += count
	}
	suggestions := make(map[string]int64, len(m.suggestions))
	for rule, count := range m.suggestions {
		suggestions[rule] = count
	}

	return map[string]interface{}{
		"lookups": map[string]interface{}{
			"total":      total,
			"by_outcome": lookups,
		},
		"suggestions": suggestions,
		"provider": map[string]interface{}{
			"requests": m.providerCalls,
			"failures": m.providerFails,
		},
		"uptime_seconds": int64(time.Since(m.startedAt).Seconds()),
	}, nil
}
