package context

import (
	"bytes"
	"context"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
)

func TestScope_Empty(t *testing.T) {
	ctx := context.Background()

	assert.Empty(t, GetRequestIDFromContext(ctx))
	assert.Empty(t, GetUserIDFromContext(ctx))
	assert.Nil(t, GetLogger(ctx))

	fallback := slog.Default()
	assert.Same(t, fallback, GetLoggerOrDefault(ctx, fallback))
}

func TestScope_ValuesAccumulate(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&buf, nil))

	ctx := WithRequestID(context.Background(), "req-1")
	ctx = WithLogger(ctx, logger)
	ctx = WithUserID(ctx, "user-1")

	assert.Equal(t, "req-1", GetRequestIDFromContext(ctx))
	assert.Equal(t, "user-1", GetUserIDFromContext(ctx))

	GetLoggerOrDefault(ctx, slog.Default()).Info("hello")
	assert.Contains(t, buf.String(), "user_id=user-1")
}

func TestScope_ParentUnchanged(t *testing.T) {
	parent := WithRequestID(context.Background(), "req-1")
	child := WithUserID(parent, "user-1")

	assert.Empty(t, GetUserIDFromContext(parent))
	assert.Equal(t, "req-1", GetRequestIDFromContext(child))
}

func TestRequestID_EchoContext(t *testing.T) {
	e := echo.New()
	c := e.NewContext(httptest.NewRequest(http.MethodGet, "/", nil), httptest.NewRecorder())

	assert.Empty(t, RequestID(c))
	SetRequestID(c, "req-2")
	assert.Equal(t, "req-2", RequestID(c))
}
