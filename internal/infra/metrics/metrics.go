// Package metrics exposes Prometheus collectors for the relay and the alert worker.
package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Outcome label values
const (
	OutcomeSuccess  = "success"
	OutcomeDegraded = "degraded"
	OutcomeError    = "error"
	OutcomeEmpty    = "empty"
)

var (
	// NearestUserQueries counts nearest-user lookups.
	// Labels:
	//   - outcome: "success", "empty" (store unavailable or nobody nearby)
	NearestUserQueries = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "lifeline_nearest_user_queries_total",
			Help: "Total nearest-user lookups grouped by outcome.",
		},
		[]string{"outcome"},
	)

	// SosBroadcasts counts SOS requests.
	// Labels:
	//   - outcome: "success", "degraded" (no recipients)
	SosBroadcasts = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "lifeline_sos_broadcasts_total",
			Help: "Total SOS broadcasts grouped by outcome.",
		},
		[]string{"outcome"},
	)

	SosRecipients = promauto.NewHistogram(prometheus.HistogramOpts{
		Name:    "lifeline_sos_recipients",
		Help:    "Number of recipients selected per SOS broadcast.",
		Buckets: []float64{0, 1, 2, 3, 4, 8},
	})

	// AssistantRequests counts generative-AI requests.
	// Labels:
	//   - provider: "gemini", "fallback"
	//   - mode: "sync", "stream"
	//   - outcome: "success", "error"
	AssistantRequests = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "lifeline_assistant_requests_total",
			Help: "Total assistant requests grouped by provider, mode and outcome.",
		},
		[]string{"provider", "mode", "outcome"},
	)

	AssistantDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "lifeline_assistant_duration_seconds",
		Help:    "Time spent waiting for the assistant provider.",
		Buckets: []float64{0.25, 0.5, 1, 2.5, 5, 10, 30, 60},
	}, []string{"provider", "mode"})

	// CircuitBreakerState is 0 when closed, 1 when half-open and 2 when open.
	CircuitBreakerState = promauto.NewGaugeVec(prometheus.GaugeOpts{
		Name: "lifeline_circuit_breaker_state",
		Help: "Current circuit breaker state (0=closed, 1=half-open, 2=open).",
	}, []string{"name"})

	CircuitBreakerTransitions = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "lifeline_circuit_breaker_transitions_total",
			Help: "Total circuit breaker state transitions.",
		},
		[]string{"name", "from", "to"},
	)

	// SosEventsPublished counts SOS events handed to the event bus.
	// Labels:
	//   - provider: "local", "google"
	//   - outcome: "success", "error"
	SosEventsPublished = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "lifeline_sos_events_published_total",
			Help: "Total SOS events published grouped by provider and outcome.",
		},
		[]string{"provider", "outcome"},
	)

	// PushDeliveries counts push notifications by result.
	// Labels:
	//   - result: "sent", "failed", "invalid_token"
	PushDeliveries = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "lifeline_push_deliveries_total",
			Help: "Total push notifications grouped by result.",
		},
		[]string{"result"},
	)
)

// RecordNearestUsers records a nearest-user lookup.
func RecordNearestUsers(outcome string) {
	NearestUserQueries.WithLabelValues(outcome).Inc()
}

// RecordSosBroadcast records an SOS broadcast and its recipient count.
func RecordSosBroadcast(recipients int) {
	outcome := OutcomeSuccess
	if recipients == 0 {
		outcome = OutcomeDegraded
	}

	SosBroadcasts.WithLabelValues(outcome).Inc()
	SosRecipients.Observe(float64(recipients))
}

// RecordAssistantRequest records one assistant call.
func RecordAssistantRequest(provider, mode, outcome string, duration time.Duration) {
	AssistantRequests.WithLabelValues(provider, mode, outcome).Inc()
	AssistantDuration.WithLabelValues(provider, mode).Observe(duration.Seconds())
}

// RecordSosEventPublished records one publish attempt.
func RecordSosEventPublished(provider string, err error) {
	outcome := OutcomeSuccess
	if err != nil {
		outcome = OutcomeError
	}

	SosEventsPublished.WithLabelValues(provider, outcome).Inc()
}

// RecordPushDeliveries records the outcome of a multicast batch.
func RecordPushDeliveries(sent, failed, invalid int) {
	PushDeliveries.WithLabelValues("sent").Add(float64(sent))
	PushDeliveries.WithLabelValues("failed").Add(float64(failed))
	PushDeliveries.WithLabelValues("invalid_token").Add(float64(invalid))
}

// RecordBreakerTransition records a circuit breaker state change.
func RecordBreakerTransition(name, from, to string, toValue float64) {
	CircuitBreakerState.WithLabelValues(name).Set(toValue)
	CircuitBreakerTransitions.WithLabelValues(name, from, to).Inc()
}
