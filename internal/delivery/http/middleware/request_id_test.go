package middleware

import (
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	deliverycontext "openshop/internal/delivery/context"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func runRequestID(t *testing.T, incoming string) (string, string) {
	t.Helper()

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	if incoming != "" {
		req.Header.Set(deliverycontext.HeaderXRequestID, incoming)
	}
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	var fromCtx string
	m := NewRequestIDMiddleware(slog.New(slog.NewTextHandler(io.Discard, nil)))
	err := m.Process(func(c echo.Context) error {
		fromCtx = deliverycontext.GetRequestIDFromContext(c.Request().Context())
		assert.NotNil(t, deliverycontext.GetLogger(c.Request().Context()))
		return nil
	})(c)
	require.NoError(t, err)

	return rec.Header().Get(deliverycontext.HeaderXRequestID), fromCtx
}

func TestRequestID_ReusesClientHeader(t *testing.T) {
	header, fromCtx := runRequestID(t, "req-123")

	assert.Equal(t, "req-123", header)
	assert.Equal(t, "req-123", fromCtx)
}

func TestRequestID_GeneratesWhenMissing(t *testing.T) {
	header, fromCtx := runRequestID(t, "")

	assert.NotEmpty(t, header)
	assert.Equal(t, header, fromCtx)
}

func TestRequestID_ReplacesOversizedHeader(t *testing.T) {
	oversized := strings.Repeat("x", maxRequestIDLength+1)

	header, _ := runRequestID(t, oversized)

	assert.NotEqual(t, oversized, header)
}
