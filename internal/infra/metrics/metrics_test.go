package metrics

import (
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
)

// Collectors are global, so tests compare before/after values.

func TestRecordSosBroadcast(t *testing.T) {
	beforeSuccess := testutil.ToFloat64(SosBroadcasts.WithLabelValues(OutcomeSuccess))
	beforeDegraded := testutil.ToFloat64(SosBroadcasts.WithLabelValues(OutcomeDegraded))

	RecordSosBroadcast(3)
	RecordSosBroadcast(0)

	assert.InDelta(t, beforeSuccess+1, testutil.ToFloat64(SosBroadcasts.WithLabelValues(OutcomeSuccess)), 1e-9)
	assert.InDelta(t, beforeDegraded+1, testutil.ToFloat64(SosBroadcasts.WithLabelValues(OutcomeDegraded)), 1e-9)
}

func TestRecordAssistantRequest(t *testing.T) {
	before := testutil.ToFloat64(AssistantRequests.WithLabelValues("gemini", "sync", OutcomeError))

	RecordAssistantRequest("gemini", "sync", OutcomeError, 120*time.Millisecond)

	assert.InDelta(t, before+1, testutil.ToFloat64(AssistantRequests.WithLabelValues("gemini", "sync", OutcomeError)), 1e-9)
}

func TestRecordPushDeliveries(t *testing.T) {
	beforeSent := testutil.ToFloat64(PushDeliveries.WithLabelValues("sent"))
	beforeInvalid := testutil.ToFloat64(PushDeliveries.WithLabelValues("invalid_token"))

	RecordPushDeliveries(4, 1, 1)

	assert.InDelta(t, beforeSent+4, testutil.ToFloat64(PushDeliveries.WithLabelValues("sent")), 1e-9)
	assert.InDelta(t, beforeInvalid+1, testutil.ToFloat64(PushDeliveries.WithLabelValues("invalid_token")), 1e-9)
}

func TestRecordBreakerTransition(t *testing.T) {
	before := testutil.ToFloat64(CircuitBreakerTransitions.WithLabelValues("test-breaker", "closed", "open"))

	RecordBreakerTransition("test-breaker", "closed", "open", 2)

	assert.InDelta(t, 2, testutil.ToFloat64(CircuitBreakerState.WithLabelValues("test-breaker")), 1e-9)
	assert.InDelta(t, before+1, testutil.ToFloat64(CircuitBreakerTransitions.WithLabelValues("test-breaker", "closed", "open")), 1e-9)
}
