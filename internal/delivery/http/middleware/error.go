package middleware

import (
	"log/slog"
	"net/http"

	deliverycontext "openshop/internal/delivery/context"
	"openshop/internal/delivery/http/response"
	domainerrors "openshop/internal/domain/errors"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

const codeHTTPError = "HTTP_ERROR"

// ErrorMiddleware renders every handler error as the unified envelope.
type ErrorMiddleware struct {
	logger *slog.Logger
}

// NewErrorMiddleware creates a new error handling middleware
func NewErrorMiddleware(logger *slog.Logger) *ErrorMiddleware {
	return &ErrorMiddleware{
		logger: logger,
	}
}

// renderedError is the client-facing view of an error.
type renderedError struct {
	status  int
	code    string
	message string
	details string
}

// classify maps err onto the envelope. Application errors keep their own code,
// echo errors (404 route, 405, body limit) keep their status, the rest are 500.
func classify(err error) renderedError {
	var appErr domainerrors.AppError
	if errors.As(err, &appErr) {
		return renderedError{
			status:  appErr.HTTPCode(),
			code:    appErr.ErrorCode(),
			message: appErr.Message(),
			details: appErr.Details(),
		}
	}

	var httpErr *echo.HTTPError
	if errors.As(err, &httpErr) {
		message := http.StatusText(httpErr.Code)
		if msg, ok := httpErr.Message.(string); ok {
			message = msg
		}

		return renderedError{status: httpErr.Code, code: codeHTTPError, message: message}
	}

	return renderedError{
		status:  domainerrors.ErrInternalError.HTTPCode(),
		code:    domainerrors.ErrInternalError.ErrorCode(),
		message: domainerrors.ErrInternalError.Message(),
	}
}

// HandleHTTPError is installed as echo's HTTPErrorHandler.
func (m *ErrorMiddleware) HandleHTTPError(err error, c echo.Context) {
	if c.Response().Committed {
		return
	}

	rendered := classify(err)
	if rendered.status >= http.StatusInternalServerError {
		deliverycontext.GetLoggerOrDefault(c.Request().Context(), m.logger).Error("Request failed",
			slog.Any("error", err),
			slog.String("code", rendered.code),
			slog.String("method", c.Request().Method),
			slog.String("path", c.Request().URL.Path),
		)
	}

	_ = response.Error(c, rendered.status, rendered.code, rendered.message, rendered.details)
}
