package pubsub

import (
	"bytes"
	"context"
	"encoding/base64"
	"encoding/json"
	"log/slog"
	"net/http"
	"time"

	deliverycontext "openshop/internal/delivery/context"
	"openshop/internal/domain/service"

	"github.com/pkg/errors"
)

const (
	localPublishTimeout = 10 * time.Second
	localSubscription   = "projects/local/subscriptions/openshop-events"
)

// pushEnvelope is the body Cloud Pub/Sub sends to push subscribers, so a
// consumer written for push delivery can be run against a local instance.
type pushEnvelope struct {
	Message      pushMessage `json:"message"`
	Subscription string      `json:"subscription"`
}

type pushMessage struct {
	Data        string            `json:"data"`
	Attributes  map[string]string `json:"attributes,omitempty"`
	MessageID   string            `json:"messageId"`
	PublishTime string            `json:"publishTime"`
}

// localHTTPPublisher POSTs each event to a development endpoint.
type localHTTPPublisher struct {
	endpoint string
	client   *http.Client
	logger   *slog.Logger
}

// NewLocalHTTPPublisher returns a publisher that pushes events to endpoint.
func NewLocalHTTPPublisher(endpoint string, logger *slog.Logger) service.EventPublisher {
	return &localHTTPPublisher{
		endpoint: endpoint,
		client:   &http.Client{Timeout: localPublishTimeout},
		logger:   logger,
	}
}

func newPushEnvelope(event *service.DomainEvent, encoded encodedEvent) pushEnvelope {
	return pushEnvelope{
		Message: pushMessage{
			Data:        base64.StdEncoding.EncodeToString(encoded.body),
			Attributes:  encoded.attributes,
			MessageID:   event.Type + ":" + event.AggregateID,
			PublishTime: event.OccurredAt.UTC().Format(time.RFC3339),
		},
		Subscription: localSubscription,
	}
}

// Publish fails on any non-2xx answer.
func (p *localHTTPPublisher) Publish(ctx context.Context, event *service.DomainEvent) error {
	encoded, err := encodeEvent(event)
	if err != nil {
		return err
	}

	body, err := json.Marshal(newPushEnvelope(event, encoded))
	if err != nil {
		return errors.WithStack(err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, p.endpoint, bytes.NewReader(body))
	if err != nil {
		return errors.WithStack(err)
	}
	req.Header.Set("Content-Type", "application/json")
	if event.RequestID != "" {
		req.Header.Set(deliverycontext.HeaderXRequestID, event.RequestID)
	}

	resp, err := p.client.Do(req)
	if err != nil {
		return errors.Wrapf(err, "push %s to %s", event.Type, p.endpoint)
	}
	defer resp.Body.Close()

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		return errors.Errorf("push %s to %s: status %d", event.Type, p.endpoint, resp.StatusCode)
	}

	p.logger.Debug("Event published",
		slog.String("broker", ProviderLocal),
		slog.String("event_type", event.Type),
	)

	return nil
}

func (p *localHTTPPublisher) Close() error {
	p.client.CloseIdleConnections()

	return nil
}
