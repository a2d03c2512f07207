// Package pubsub publishes domain events to the configured broker.
package pubsub

import (
	"context"
	"encoding/json"
	"log/slog"

	"openshop/config"
	"openshop/internal/domain/service"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// Supported values of events.provider.
const (
	ProviderAMQP   = "amqp"
	ProviderGoogle = "google"
	ProviderLocal  = "local"
)

// noopPublisher is used when no broker is configured
type noopPublisher struct {
	logger *slog.Logger
}

// NewNoopPublisher returns a publisher that only logs.
func NewNoopPublisher(logger *slog.Logger) service.EventPublisher {
	return &noopPublisher{logger: logger}
}

func (p *noopPublisher) Publish(_ context.Context, event *service.DomainEvent) error {
	p.logger.Debug("[NoopPubSub] Event publishing disabled, skipping",
		slog.String("event_type", event.Type),
		slog.String("aggregate_id", event.AggregateID),
	)

	return nil
}

func (p *noopPublisher) Close() error {
	return nil
}

// encodedEvent is the broker-neutral form of a DomainEvent: a JSON body plus
// the attributes every broker exposes for routing and tracing.
type encodedEvent struct {
	body       []byte
	attributes map[string]string
}

func encodeEvent(event *service.DomainEvent) (encodedEvent, error) {
	body, err := json.Marshal(event)
	if err != nil {
		return encodedEvent{}, errors.Wrapf(err, "encode %s event", event.Type)
	}

	attributes := map[string]string{
		"event_type":   event.Type,
		"aggregate_id": event.AggregateID,
	}
	if event.RequestID != "" {
		attributes["request_id"] = event.RequestID
	}

	return encodedEvent{body: body, attributes: attributes}, nil
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
	cfg := params.Config.Events
	logger := params.Logger

	if cfg == nil || cfg.Provider == "" {
		logger.Info("Event broker not configured, using no-op publisher")

		return NewNoopPublisher(logger), nil
	}

	var publisher service.EventPublisher
	var err error

	switch cfg.Provider {
	case ProviderAMQP:
		if cfg.AMQPURL == "" || cfg.Exchange == "" {
			return nil, errors.New("amqp url and exchange are required for amqp provider")
		}

		publisher, err = NewAMQPPublisher(cfg.AMQPURL, cfg.Exchange, logger)
		if err != nil {
			return nil, err
		}

	case ProviderGoogle:
		if cfg.ProjectID == "" {
			return nil, errors.New("project ID is required for google provider")
		}
		if cfg.TopicID == "" {
			return nil, errors.New("topic ID is required for google provider")
		}

		publisher, err = NewGooglePubSubPublisher(params.Ctx, cfg.ProjectID, cfg.TopicID, logger)
		if err != nil {
			return nil, err
		}

	case ProviderLocal:
		if cfg.LocalEndpoint == "" {
			return nil, errors.New("local endpoint is required for local provider")
		}
		logger.Info("Using local HTTP publisher for events", slog.String("endpoint", cfg.LocalEndpoint))

		publisher = NewLocalHTTPPublisher(cfg.LocalEndpoint, logger)

	default:
		return nil, errors.Errorf("unknown events provider: %s", cfg.Provider)
	}

	// Register lifecycle hook to close publisher on shutdown
	params.Lc.Append(fx.Hook{
		OnStop: func(ctx context.Context) error {
			logger.Info("Closing EventPublisher")

			return publisher.Close()
		},
	})

	return publisher, nil
}
