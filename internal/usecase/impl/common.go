// Package impl contains the implementation of the application's business logic.
package impl

import (
	"context"
	"log/slog"
	"time"

	deliverycontext "openshop/internal/delivery/context"
	"openshop/internal/domain/entity"
	domainerrors "openshop/internal/domain/errors"
	"openshop/internal/domain/repository"
	"openshop/internal/domain/service"

	"github.com/pkg/errors"
)

// requirePrincipal rejects calls made without a resolved caller.
func requirePrincipal(principal *entity.Principal) error {
	if principal == nil {
		return domainerrors.ErrIllegalState
	}

	return nil
}

// resolveCurrentUser loads the user the principal names. The principal's email
// is the lookup key.
func resolveCurrentUser(ctx context.Context, userRepo repository.UserRepository, principal *entity.Principal) (*entity.User, error) {
	if err := requirePrincipal(principal); err != nil {
		return nil, err
	}

	user, err := userRepo.FindByEmail(ctx, principal.Email)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return nil, domainerrors.ErrUserNotFound
		}

		return nil, errors.Wrap(err, "failed to find current user")
	}

	return user, nil
}

// publishEvent sends a domain event after the owning transaction has committed.
// Failures are logged and never returned to the caller.
func publishEvent(ctx context.Context, publisher service.EventPublisher, logger *slog.Logger, eventType, aggregateID string, payload map[string]any) {
	if publisher == nil {
		return
	}

	event := &service.DomainEvent{
		Type:        eventType,
		AggregateID: aggregateID,
		RequestID:   deliverycontext.GetRequestIDFromContext(ctx),
		OccurredAt:  time.Now().UTC(),
		Payload:     payload,
	}
	if err := publisher.Publish(ctx, event); err != nil {
		logger.Warn("Failed to publish domain event",
			slog.String("event_type", eventType),
			slog.String("aggregate_id", aggregateID),
			slog.Any("error", err),
		)
	}
}
