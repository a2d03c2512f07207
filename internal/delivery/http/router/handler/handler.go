// Package handler contains the HTTP handlers for the application.
package handler

import (
	"net/http"

	"openshop/internal/delivery/http/response"
	domainerrors "openshop/internal/domain/errors"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

// HealthCheck reports that the process is serving.
func HealthCheck(c echo.Context) error {
	return response.Success(c, http.StatusOK, map[string]string{"status": "ok"}, "")
}

// bindAndValidate decodes the JSON body into req and runs its validation tags.
func bindAndValidate(c echo.Context, req any) error {
	if err := c.Bind(req); err != nil {
		return domainerrors.ErrValidationFailed.WithDetails("malformed request body")
	}

	return c.Validate(req)
}

func uuidParam(c echo.Context, name string) (uuid.UUID, error) {
	id, err := uuid.Parse(c.Param(name))
	if err != nil {
		return uuid.Nil, uuidQueryError(name)
	}

	return id, nil
}

func uuidQueryError(name string) error {
	return domainerrors.ErrValidationFailed.WithDetails(name + " must be a valid UUID")
}
