package pubsub

import (
	"context"
	"log/slog"

	"openshop/internal/domain/service"

	"cloud.google.com/go/pubsub/v2"
	pubsubpb "cloud.google.com/go/pubsub/v2/apiv1/pubsubpb"
	"github.com/pkg/errors"
)

// googlePublisher publishes events to a single Cloud Pub/Sub topic.
type googlePublisher struct {
	client *pubsub.Client
	topic  *pubsub.Publisher
	name   string
	logger *slog.Logger
}

// NewGooglePubSubPublisher connects to projectID and verifies topicID exists.
func NewGooglePubSubPublisher(ctx context.Context, projectID, topicID string, logger *slog.Logger) (service.EventPublisher, error) {
	client, err := pubsub.NewClient(ctx, projectID)
	if err != nil {
		return nil, errors.Wrapf(err, "pubsub client for project %s", projectID)
	}

	name := "projects/" + projectID + "/topics/" + topicID
	if _, err := client.TopicAdminClient.GetTopic(ctx, &pubsubpb.GetTopicRequest{Topic: name}); err != nil {
		_ = client.Close()

		return nil, errors.Wrapf(err, "topic %s is not provisioned", name)
	}

	logger.Info("Google Pub/Sub publisher initialized", slog.String("topic", name))

	return &googlePublisher{
		client: client,
		topic:  client.Publisher(topicID),
		name:   name,
		logger: logger,
	}, nil
}

// Publish blocks until Pub/Sub acknowledges the message.
func (p *googlePublisher) Publish(ctx context.Context, event *service.DomainEvent) error {
	encoded, err := encodeEvent(event)
	if err != nil {
		return err
	}

	messageID, err := p.topic.Publish(ctx, &pubsub.Message{
		Data:       encoded.body,
		Attributes: encoded.attributes,
	}).Get(ctx)
	if err != nil {
		return errors.Wrapf(err, "publish %s to %s", event.Type, p.name)
	}

	p.logger.Debug("Event published",
		slog.String("broker", ProviderGoogle),
		slog.String("event_type", event.Type),
		slog.String("message_id", messageID),
	)

	return nil
}

// Close flushes pending messages and closes the client.
func (p *googlePublisher) Close() error {
	p.topic.Stop()

	return errors.WithStack(p.client.Close())
}
