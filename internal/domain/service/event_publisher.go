package service

import (
	"context"
	"time"
)

// Event types emitted by the use cases.
const (
	EventUserRegistered = "user.registered"
	EventCartItemAdded  = "cart.item_added"
	EventCartCleared    = "cart.cleared"
)

// DomainEvent is a fact about a state change, published after the owning transaction commits.
type DomainEvent struct {
	Type        string         `json:"type"`
	AggregateID string         `json:"aggregate_id"`
	RequestID   string         `json:"request_id,omitempty"` // For distributed tracing
	OccurredAt  time.Time      `json:"occurred_at"`
	Payload     map[string]any `json:"payload,omitempty"`
}

// EventPublisher defines the interface for publishing events to a message broker
type EventPublisher interface {
	// Publish sends a single event
	Publish(ctx context.Context, event *DomainEvent) error

	// Close releases any resources held by the publisher
	Close() error
}
