// Package context carries request-scoped values (request ID, caller, logger)
// from the HTTP middleware down to the services.
package context

import (
	"context"
	"log/slog"

	"github.com/labstack/echo/v4"
)

// HeaderXRequestID is the HTTP header carrying the request ID in both directions.
const HeaderXRequestID = "X-Request-Id"

// echoRequestIDKey names the request ID on echo.Context.
const echoRequestIDKey = "request_id"

type scopeKey struct{}

// scope is stored by value; every With* call stores a modified copy.
type scope struct {
	requestID string
	userID    string
	logger    *slog.Logger
}

func current(ctx context.Context) scope {
	s, _ := ctx.Value(scopeKey{}).(scope)

	return s
}

func store(ctx context.Context, s scope) context.Context {
	return context.WithValue(ctx, scopeKey{}, s)
}

// SetRequestID exposes the request ID to handlers through echo.Context.
func SetRequestID(c echo.Context, requestID string) {
	c.Set(echoRequestIDKey, requestID)
}

// RequestID returns the request ID stored by SetRequestID, or "".
func RequestID(c echo.Context) string {
	id, _ := c.Get(echoRequestIDKey).(string)

	return id
}

// WithRequestID returns a new context with the request ID.
func WithRequestID(ctx context.Context, requestID string) context.Context {
	s := current(ctx)
	s.requestID = requestID

	return store(ctx, s)
}

// GetRequestIDFromContext returns the request ID, or "" outside a request.
func GetRequestIDFromContext(ctx context.Context) string {
	return current(ctx).requestID
}

// WithUserID records the authenticated caller. A logger already in the
// context is re-derived so later log lines carry user_id.
func WithUserID(ctx context.Context, userID string) context.Context {
	s := current(ctx)
	s.userID = userID
	if s.logger != nil {
		s.logger = s.logger.With(slog.String("user_id", userID))
	}

	return store(ctx, s)
}

// GetUserIDFromContext returns the authenticated caller's ID, or "".
func GetUserIDFromContext(ctx context.Context) string {
	return current(ctx).userID
}

// WithLogger returns a new context with the request-scoped logger.
func WithLogger(ctx context.Context, logger *slog.Logger) context.Context {
	s := current(ctx)
	s.logger = logger

	return store(ctx, s)
}

// GetLogger returns the request-scoped logger, or nil.
func GetLogger(ctx context.Context) *slog.Logger {
	return current(ctx).logger
}

// GetLoggerOrDefault returns the request-scoped logger, falling back to fallback.
func GetLoggerOrDefault(ctx context.Context, fallback *slog.Logger) *slog.Logger {
	if logger := GetLogger(ctx); logger != nil {
		return logger
	}

	return fallback
}
