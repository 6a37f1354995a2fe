package impl

import (
	"context"
	"iter"
	"log/slog"
	"strings"
	"time"

	deliverycontext "lifeline/internal/delivery/context"
	domainerrors "lifeline/internal/domain/errors"
	"lifeline/internal/domain/service"
	"lifeline/internal/infra/metrics"
	"lifeline/internal/usecase"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

const healthExpertPrompt = `
You are a highly skilled health and emergency response expert. Your primary goal is to provide clear, accurate, and actionable advice for medical and safety emergencies.

When asked about your identity or capabilities, respond with: "I am a health expert AI, here to provide guidance in emergency situations."

For any emergency-related query, you must:
1.  Provide critical and helpful information to ensure the user's safety.
2.  Offer step-by-step instructions when appropriate.
3.  Always include a disclaimer to contact professional emergency services (e.g., "call 911" or your local equivalent) as your advice is not a substitute for professional medical help.
`

const (
	invalidAPIKeyAnswer = "Invalid or expired API key. Please check your Gemini API key."
	providerErrorPrefix = "I encountered an error when processing your question: "

	modeSync   = "sync"
	modeStream = "stream"
)

// AssistantServiceParams holds dependencies for the assistant service, injected by Fx.
type AssistantServiceParams struct {
	fx.In

	Provider service.AssistantProvider
	Logger   *slog.Logger
}

type assistantService struct {
	provider service.AssistantProvider
	logger   *slog.Logger
}

// NewAssistantService creates a new assistant relay service
func NewAssistantService(params AssistantServiceParams) usecase.AssistantUsecase {
	return &assistantService{
		provider: params.Provider,
		logger:   params.Logger,
	}
}

// Ask returns the provider's answer to question
func (s *assistantService) Ask(ctx context.Context, question string) (string, error) {
	if strings.TrimSpace(question) == "" {
		return "", domainerrors.ErrInvalidInput.WithDetails("No question provided")
	}

	logger := deliverycontext.GetLoggerOrDefault(ctx, s.logger)
	start := time.Now()

	answer, err := s.provider.Generate(ctx, buildPrompt(question))
	if err != nil {
		metrics.RecordAssistantRequest(s.provider.Name(), modeSync, metrics.OutcomeError, time.Since(start))

		if errors.Is(err, domainerrors.ErrAssistantUnavailable) {
			return "", err
		}

		logger.Error("Assistant provider failed",
			slog.String("provider", s.provider.Name()),
			slog.Any("error", err),
		)

		return explainProviderError(err), nil
	}

	metrics.RecordAssistantRequest(s.provider.Name(), modeSync, metrics.OutcomeSuccess, time.Since(start))

	return answer, nil
}

// AskStream returns the provider's answer as a sequence of chunks
func (s *assistantService) AskStream(ctx context.Context, question string) (iter.Seq[string], error) {
	if strings.TrimSpace(question) == "" {
		return nil, domainerrors.ErrInvalidInput.WithDetails("No question provided")
	}

	logger := deliverycontext.GetLoggerOrDefault(ctx, s.logger)
	prompt := buildPrompt(question)

	return func(yield func(string) bool) {
		start := time.Now()
		outcome := metrics.OutcomeSuccess
		defer func() {
			metrics.RecordAssistantRequest(s.provider.Name(), modeStream, outcome, time.Since(start))
		}()

		for chunk, err := range s.provider.GenerateStream(ctx, prompt) {
			if err != nil {
				outcome = metrics.OutcomeError

				if errors.Is(err, domainerrors.ErrAssistantUnavailable) {
					yield(domainerrors.ErrAssistantUnavailable.Message())

					return
				}

				logger.Error("Assistant stream failed",
					slog.String("provider", s.provider.Name()),
					slog.Any("error", err),
				)
				yield(explainProviderError(err))

				return
			}

			if chunk == "" {
				continue
			}
			if !yield(chunk) {
				return
			}
		}
	}, nil
}

func buildPrompt(question string) string {
	return healthExpertPrompt + "\n\nUser Question: " + question
}

// explainProviderError turns a provider failure into an answer the user can read.
func explainProviderError(err error) string {
	details := err.Error()
	if strings.Contains(strings.ToLower(details), "api key") {
		return invalidAPIKeyAnswer
	}

	return providerErrorPrefix + details
}
