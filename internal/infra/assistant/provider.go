// Package assistant provides the generative-AI providers behind the health assistant.
package assistant

import (
	"context"
	"log/slog"

	"lifeline/config"
	"lifeline/internal/domain/constants"
	"lifeline/internal/domain/service"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// Params holds dependencies for AssistantProvider, injected by Fx
type Params struct {
	fx.In

	Ctx    context.Context
	Config *config.Config
	Logger *slog.Logger
}

// NewAssistantProvider creates an AssistantProvider based on configuration.
// A missing API key selects the fallback provider instead of failing startup.
func NewAssistantProvider(params Params) (service.AssistantProvider, error) {
	cfg := params.Config.Assistant
	if cfg == nil {
		cfg = &config.AssistantConfig{}
	}
	logger := params.Logger

	provider := cfg.Provider
	if provider == "" {
		provider = constants.AssistantProviderGemini
	}

	switch provider {
	case constants.AssistantProviderGemini:
		if cfg.APIKey == "" {
			logger.Warn("Gemini API key not configured, assistant requests will be answered as unavailable")

			return NewFallbackProvider(), nil
		}

		gemini, err := NewGeminiProvider(params.Ctx, cfg)
		if err != nil {
			return nil, err
		}
		logger.Info("Using Gemini assistant provider", slog.String("model", valueOr(cfg.Model, defaultModel)))

		return WithCircuitBreaker(gemini, cfg.Breaker, logger), nil

	case constants.AssistantProviderFallback:
		logger.Info("Using fallback assistant provider")

		return NewFallbackProvider(), nil

	default:
		return nil, errors.Errorf("unknown assistant provider: %s", provider)
	}
}

// Module provides the assistant FX module
//
//nolint:gochecknoglobals
var Module = fx.Options(
	fx.Provide(NewAssistantProvider),
)
