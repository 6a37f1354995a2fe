package pubsub

import (
	"bytes"
	"context"
	"encoding/base64"
	"log/slog"
	"net/http"
	"time"

	"lifeline/internal/domain/service"

	"github.com/goccy/go-json"
	"github.com/pkg/errors"
)

const (
	localSubscription = "projects/local/subscriptions/sos-alerts-push"

	localMaxAttempts = 3
	localRetryDelay  = 200 * time.Millisecond
)

// localHTTPPublisher posts push envelopes straight to the alert worker. Like a
// Pub/Sub push subscription it redelivers when the worker answers 5xx.
type localHTTPPublisher struct {
	endpoint   string
	httpClient *http.Client
	retryDelay time.Duration
	logger     *slog.Logger
}

// PushMessage is the envelope Pub/Sub uses when pushing to HTTP endpoints
type PushMessage struct {
	Message struct {
		Data        string            `json:"data"`
		Attributes  map[string]string `json:"attributes,omitempty"`
		MessageID   string            `json:"messageId"`
		PublishTime string            `json:"publishTime"`
	} `json:"message"`
	Subscription string `json:"subscription"`
}

// NewLocalHTTPPublisher creates an EventPublisher for development without Pub/Sub
func NewLocalHTTPPublisher(endpoint string, logger *slog.Logger) service.EventPublisher {
	return &localHTTPPublisher{
		endpoint:   endpoint,
		httpClient: &http.Client{},
		retryDelay: localRetryDelay,
		logger:     logger,
	}
}

func newPushEnvelope(event *service.SosEvent, publishedAt time.Time) ([]byte, error) {
	data, err := json.Marshal(event)
	if err != nil {
		return nil, errors.WithStack(err)
	}

	envelope := PushMessage{Subscription: localSubscription}
	envelope.Message.Data = base64.StdEncoding.EncodeToString(data)
	envelope.Message.MessageID = event.AlertID
	envelope.Message.PublishTime = publishedAt.UTC().Format(time.RFC3339)
	envelope.Message.Attributes = eventAttributes(event)

	body, err := json.Marshal(envelope)

	return body, errors.WithStack(err)
}

// PublishSosEvent pushes the event to the worker, retrying while it reports a retryable failure
func (p *localHTTPPublisher) PublishSosEvent(ctx context.Context, event *service.SosEvent) error {
	body, err := newPushEnvelope(event, time.Now())
	if err != nil {
		return err
	}

	var lastErr error
	for attempt := 1; attempt <= localMaxAttempts; attempt++ {
		retry, err := p.push(ctx, body, event.RequestID)
		if err == nil {
			p.logger.Info("SOS event pushed to local worker",
				slog.String("alert_id", event.AlertID),
				slog.Int("recipient_count", len(event.RecipientIDs)),
				slog.Int("attempt", attempt),
			)

			return nil
		}
		if !retry {
			return err
		}
		lastErr = err

		p.logger.Warn("Local worker asked for redelivery",
			slog.String("alert_id", event.AlertID),
			slog.Int("attempt", attempt),
			slog.Any("error", err),
		)

		select {
		case <-ctx.Done():
			return errors.WithStack(ctx.Err())
		case <-time.After(p.retryDelay * time.Duration(attempt)):
		}
	}

	return errors.Wrapf(lastErr, "gave up after %d attempts", localMaxAttempts)
}

// push posts one envelope and reports whether a failure is worth redelivering
func (p *localHTTPPublisher) push(ctx context.Context, body []byte, requestID string) (bool, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, p.endpoint, bytes.NewReader(body))
	if err != nil {
		return false, errors.WithStack(err)
	}
	req.Header.Set("Content-Type", "application/json")
	if requestID != "" {
		req.Header.Set("X-Request-Id", requestID)
	}

	resp, err := p.httpClient.Do(req)
	if err != nil {
		return ctx.Err() == nil, errors.WithStack(err)
	}
	defer resp.Body.Close()

	switch {
	case resp.StatusCode >= 200 && resp.StatusCode < 300:
		return false, nil
	case resp.StatusCode >= 500:
		return true, errors.Errorf("worker returned %d", resp.StatusCode)
	default:
		return false, errors.Errorf("worker rejected event with %d", resp.StatusCode)
	}
}

func (p *localHTTPPublisher) Close() error {
	p.httpClient.CloseIdleConnections()

	return nil
}
