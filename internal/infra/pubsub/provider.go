// Package pubsub publishes SOS events for asynchronous delivery by the alert worker.
package pubsub

import (
	"context"
	"log/slog"
	"time"

	"lifeline/config"
	"lifeline/internal/domain/constants"
	"lifeline/internal/domain/service"
	"lifeline/internal/infra/metrics"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

const defaultPublishTimeout = 10 * time.Second

// noopPublisher drops events when no bus is configured
type noopPublisher struct {
	logger *slog.Logger
}

func (p *noopPublisher) PublishSosEvent(_ context.Context, event *service.SosEvent) error {
	p.logger.Debug("SOS event dropped, no event bus configured",
		slog.String("alert_id", event.AlertID),
		slog.Int("recipient_count", len(event.RecipientIDs)),
	)

	return nil
}

func (p *noopPublisher) Close() error {
	return nil
}

// instrumentedPublisher bounds each publish and records its outcome
type instrumentedPublisher struct {
	next     service.EventPublisher
	provider string
	timeout  time.Duration
}

func newInstrumentedPublisher(next service.EventPublisher, provider string, timeout time.Duration) *instrumentedPublisher {
	if timeout <= 0 {
		timeout = defaultPublishTimeout
	}

	return &instrumentedPublisher{next: next, provider: provider, timeout: timeout}
}

func (p *instrumentedPublisher) PublishSosEvent(ctx context.Context, event *service.SosEvent) error {
	ctx, cancel := context.WithTimeout(ctx, p.timeout)
	defer cancel()

	err := p.next.PublishSosEvent(ctx, event)
	metrics.RecordSosEventPublished(p.provider, err)

	return errors.Wrapf(err, "publish SOS event %s via %s", event.AlertID, p.provider)
}

func (p *instrumentedPublisher) Close() error {
	return p.next.Close()
}

// eventAttributes are copied onto every message for filtering and tracing
func eventAttributes(event *service.SosEvent) map[string]string {
	attributes := map[string]string{
		"alert_id":       event.AlertID,
		"requester_id":   event.RequesterID,
		"emergency_type": event.EmergencyType,
	}
	if event.RequestID != "" {
		attributes["request_id"] = event.RequestID
	}

	return attributes
}

// PublisherParams holds dependencies for EventPublisher, injected by Fx
type PublisherParams struct {
	fx.In

	Lc     fx.Lifecycle
	Ctx    context.Context
	Config *config.Config
	Logger *slog.Logger
}

// NewEventPublisher creates an EventPublisher based on configuration
func NewEventPublisher(params PublisherParams) (service.EventPublisher, error) {
	cfg := params.Config.PubSub
	logger := params.Logger

	if cfg == nil || cfg.Provider == "" {
		logger.Warn("PubSub not configured, SOS events will not be delivered")

		return &noopPublisher{logger: logger}, nil
	}

	publisher, err := newProviderPublisher(params.Ctx, cfg, params.Config.Firebase, logger)
	if err != nil {
		return nil, err
	}
	instrumented := newInstrumentedPublisher(publisher, cfg.Provider, cfg.PublishTimeout)

	params.Lc.Append(fx.Hook{
		OnStop: func(context.Context) error {
			logger.Info("Closing EventPublisher", slog.String("provider", cfg.Provider))

			return instrumented.Close()
		},
	})

	return instrumented, nil
}

func newProviderPublisher(ctx context.Context, cfg *config.PubSubConfig, firebaseCfg *config.FirebaseConfig, logger *slog.Logger) (service.EventPublisher, error) {
	switch cfg.Provider {
	case constants.PubSubProviderLocal:
		if cfg.LocalEndpoint == "" {
			return nil, errors.New("local endpoint is required for local provider")
		}
		logger.Info("Using local HTTP publisher for SOS events",
			slog.String("endpoint", cfg.LocalEndpoint),
		)

		return NewLocalHTTPPublisher(cfg.LocalEndpoint, logger), nil

	case constants.PubSubProviderGoogle:
		projectID := cfg.ProjectID
		if projectID == "" && firebaseCfg != nil {
			projectID = firebaseCfg.ProjectID
		}
		if projectID == "" {
			return nil, errors.New("project ID is required for google provider")
		}
		if cfg.TopicID == "" {
			return nil, errors.New("topic ID is required for google provider")
		}

		return NewGooglePubSubPublisher(ctx, projectID, cfg.TopicID, logger)

	default:
		return nil, errors.Errorf("unknown pubsub provider: %s", cfg.Provider)
	}
}

// Module provides the Pub/Sub FX module
//
//nolint:gochecknoglobals
var Module = fx.Options(
	fx.Provide(NewEventPublisher),
)
