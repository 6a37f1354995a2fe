package assistant

import (
	"context"
	"iter"

	"lifeline/internal/domain/constants"
	domainerrors "lifeline/internal/domain/errors"
	"lifeline/internal/domain/service"

	"github.com/pkg/errors"
)

// fallbackProvider answers every request with ErrAssistantUnavailable; it is
// selected when no API key is configured.
type fallbackProvider struct{}

// NewFallbackProvider creates an AssistantProvider that is always unavailable
func NewFallbackProvider() service.AssistantProvider {
	return fallbackProvider{}
}

func (fallbackProvider) Name() string {
	return constants.AssistantProviderFallback
}

func (fallbackProvider) Generate(context.Context, string) (string, error) {
	return "", errors.WithStack(domainerrors.ErrAssistantUnavailable)
}

func (fallbackProvider) GenerateStream(context.Context, string) iter.Seq2[string, error] {
	return func(yield func(string, error) bool) {
		yield("", errors.WithStack(domainerrors.ErrAssistantUnavailable))
	}
}
