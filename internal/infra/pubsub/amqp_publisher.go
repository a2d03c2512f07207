package pubsub

import (
	"context"
	"log/slog"

	"openshop/internal/domain/service"

	"github.com/pkg/errors"
	amqp "github.com/rabbitmq/amqp091-go"
)

// amqpChannel is the subset of *amqp.Channel the publisher uses.
type amqpChannel interface {
	PublishWithContext(ctx context.Context, exchange, key string, mandatory, immediate bool, msg amqp.Publishing) error
	Close() error
}

// amqpPublisher implements EventPublisher on a RabbitMQ topic exchange.
// The routing key is the event type.
type amqpPublisher struct {
	conn     *amqp.Connection
	ch       amqpChannel
	exchange string
	logger   *slog.Logger
}

// NewAMQPPublisher dials the broker and declares a durable topic exchange.
func NewAMQPPublisher(url, exchange string, logger *slog.Logger) (service.EventPublisher, error) {
	conn, err := amqp.Dial(url)
	if err != nil {
		return nil, errors.Wrap(err, "dial rabbitmq")
	}

	ch, err := conn.Channel()
	if err != nil {
		_ = conn.Close()

		return nil, errors.Wrap(err, "open channel")
	}

	if err := ch.ExchangeDeclare(exchange, amqp.ExchangeTopic, true, false, false, false, nil); err != nil {
		_ = ch.Close()
		_ = conn.Close()

		return nil, errors.Wrapf(err, "declare exchange %s", exchange)
	}

	logger.Info("AMQP publisher initialized", slog.String("exchange", exchange))

	return &amqpPublisher{conn: conn, ch: ch, exchange: exchange, logger: logger}, nil
}

// Publish sends the event as a persistent JSON message.
func (p *amqpPublisher) Publish(ctx context.Context, event *service.DomainEvent) error {
	encoded, err := encodeEvent(event)
	if err != nil {
		return err
	}

	headers := amqp.Table{}
	for k, v := range encoded.attributes {
		headers[k] = v
	}

	msg := amqp.Publishing{
		ContentType:   "application/json",
		DeliveryMode:  amqp.Persistent,
		MessageId:     event.AggregateID,
		CorrelationId: event.RequestID,
		Timestamp:     event.OccurredAt,
		Type:          event.Type,
		Headers:       headers,
		Body:          encoded.body,
	}

	if err := p.ch.PublishWithContext(ctx, p.exchange, event.Type, false, false, msg); err != nil {
		return errors.Wrapf(err, "publish %s", event.Type)
	}

	p.logger.Debug("Event published",
		slog.String("broker", ProviderAMQP),
		slog.String("event_type", event.Type),
		slog.String("aggregate_id", event.AggregateID),
	)

	return nil
}

// Close closes the channel and then the connection.
func (p *amqpPublisher) Close() error {
	if p.ch != nil {
		_ = p.ch.Close()
	}
	if p.conn != nil {
		return errors.WithStack(p.conn.Close())
	}

	return nil
}
