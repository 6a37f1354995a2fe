package assistant

import (
	"context"
	"iter"
	"log/slog"

	"lifeline/config"
	"lifeline/internal/domain/service"
	"lifeline/internal/infra/metrics"

	"github.com/pkg/errors"
	gobreaker "github.com/sony/gobreaker/v2"
)

const defaultFailureThreshold = 5

// breakerProvider stops calling a failing provider until it recovers. A rejected
// call fails like a provider error, so callers still get the explanatory answer.
type breakerProvider struct {
	next service.AssistantProvider
	cb   *gobreaker.TwoStepCircuitBreaker[string]
}

// WithCircuitBreaker wraps provider with a circuit breaker configured from cfg
func WithCircuitBreaker(provider service.AssistantProvider, cfg config.BreakerConfig, logger *slog.Logger) service.AssistantProvider {
	name := provider.Name() + "-assistant"
	threshold := valueOr(cfg.FailureThreshold, defaultFailureThreshold)

	metrics.CircuitBreakerState.WithLabelValues(name).Set(0)

	cb := gobreaker.NewTwoStepCircuitBreaker[string](gobreaker.Settings{
		Name:        name,
		MaxRequests: cfg.MaxRequests,
		Interval:    cfg.Interval,
		Timeout:     cfg.Timeout,
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			return counts.ConsecutiveFailures >= threshold
		},
		IsExcluded: isCallerCancellation,
		OnStateChange: func(name string, from, to gobreaker.State) {
			logger.Warn("Circuit breaker state changed",
				slog.String("name", name),
				slog.String("from", from.String()),
				slog.String("to", to.String()),
			)
			metrics.RecordBreakerTransition(name, from.String(), to.String(), stateValue(to))
		},
	})

	return &breakerProvider{next: provider, cb: cb}
}

func (p *breakerProvider) Name() string {
	return p.next.Name()
}

func (p *breakerProvider) Generate(ctx context.Context, prompt string) (string, error) {
	done, err := p.cb.Allow()
	if err != nil {
		return "", rejected(err)
	}

	answer, err := p.next.Generate(ctx, prompt)
	done(err)

	return answer, err
}

func (p *breakerProvider) GenerateStream(ctx context.Context, prompt string) iter.Seq2[string, error] {
	return func(yield func(string, error) bool) {
		done, err := p.cb.Allow()
		if err != nil {
			yield("", rejected(err))

			return
		}

		var streamErr error
		defer func() { done(streamErr) }()

		for chunk, err := range p.next.GenerateStream(ctx, prompt) {
			if err != nil {
				streamErr = err
				yield("", err)

				return
			}
			if !yield(chunk, nil) {
				return
			}
		}
	}
}

func rejected(err error) error {
	return errors.Wrap(err, "assistant provider paused after repeated failures")
}

// isCallerCancellation leaves calls abandoned by the client out of the counts.
func isCallerCancellation(err error) bool {
	return errors.Is(err, context.Canceled)
}

func stateValue(state gobreaker.State) float64 {
	switch state {
	case gobreaker.StateHalfOpen:
		return 1
	case gobreaker.StateOpen:
		return 2
	default:
		return 0
	}
}
