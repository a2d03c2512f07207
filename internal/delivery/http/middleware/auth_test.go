package middleware

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	deliverycontext "openshop/internal/delivery/context"
	"openshop/internal/delivery/http/response"
	"openshop/internal/domain/entity"
	domainerrors "openshop/internal/domain/errors"
	"openshop/internal/domain/service"
	mockSvc "openshop/internal/mocks/service"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newAuthContext(header string) (echo.Context, *httptest.ResponseRecorder) {
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/users/me", nil)
	if header != "" {
		req.Header.Set(echo.HeaderAuthorization, header)
	}
	rec := httptest.NewRecorder()

	return e.NewContext(req, rec), rec
}

func okHandler(c echo.Context) error {
	return c.NoContent(http.StatusNoContent)
}

func TestAuthenticate_MissingHeader(t *testing.T) {
	m := NewAuthMiddleware(mockSvc.NewMockTokenService(t))
	c, rec := newAuthContext("")

	require.NoError(t, m.Authenticate(okHandler)(c))

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Contains(t, rec.Body.String(), "Authorization header is missing")
}

func TestAuthenticate_NotBearer(t *testing.T) {
	m := NewAuthMiddleware(mockSvc.NewMockTokenService(t))
	c, rec := newAuthContext("Basic abc")

	require.NoError(t, m.Authenticate(okHandler)(c))

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestAuthenticate_InvalidToken(t *testing.T) {
	tokens := mockSvc.NewMockTokenService(t)
	tokens.EXPECT().ValidateToken("expired").Return(nil, errors.New("token is expired"))
	m := NewAuthMiddleware(tokens)
	c, rec := newAuthContext("Bearer expired")

	require.NoError(t, m.Authenticate(okHandler)(c))

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Contains(t, rec.Body.String(), "INVALID_TOKEN")
}

func TestAuthenticate_StoresPrincipal(t *testing.T) {
	userID := uuid.New()
	tokens := mockSvc.NewMockTokenService(t)
	tokens.EXPECT().ValidateToken("good").Return(&service.Claims{
		UserID: userID,
		Email:  "jane@example.com",
		Roles:  []string{entity.RoleUser},
	}, nil)
	m := NewAuthMiddleware(tokens)
	c, rec := newAuthContext("Bearer good")

	var seen *entity.Principal
	var ctxUserID string
	err := m.Authenticate(func(c echo.Context) error {
		seen = GetPrincipal(c)
		ctxUserID = deliverycontext.GetUserIDFromContext(c.Request().Context())
		return okHandler(c)
	})(c)

	require.NoError(t, err)
	assert.Equal(t, http.StatusNoContent, rec.Code)
	require.NotNil(t, seen)
	assert.Equal(t, userID, seen.UserID)
	assert.Equal(t, "jane@example.com", seen.Email)
	assert.True(t, seen.Roles.Contains(entity.RoleUser))
	assert.Equal(t, userID.String(), ctxUserID)
}

func TestRequireRole(t *testing.T) {
	m := NewAuthMiddleware(mockSvc.NewMockTokenService(t))

	cases := []struct {
		name      string
		principal *entity.Principal
		want      int
		wantCode  string
	}{
		{"no principal", nil, http.StatusUnauthorized, domainerrors.ErrUnauthorized.ErrorCode()},
		{"missing role", &entity.Principal{Roles: entity.Roles{entity.RoleUser}}, http.StatusForbidden, domainerrors.ErrForbidden.ErrorCode()},
		{"has role", &entity.Principal{Roles: entity.Roles{entity.RoleUser, entity.RoleAdmin}}, http.StatusNoContent, ""},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			c, rec := newAuthContext("")
			if tc.principal != nil {
				SetPrincipal(c, tc.principal)
			}

			require.NoError(t, m.RequireRole(entity.RoleAdmin)(okHandler)(c))
			assert.Equal(t, tc.want, rec.Code)
			if tc.wantCode != "" {
				assert.Equal(t, tc.wantCode, decodeBody(t, rec).Error.Code)
			}
		})
	}
}

func decodeBody(t *testing.T, rec *httptest.ResponseRecorder) response.Response {
	t.Helper()

	var body response.Response
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))

	return body
}

func TestAuthenticate_RendersDomainErrors(t *testing.T) {
	tokens := mockSvc.NewMockTokenService(t)
	tokens.EXPECT().ValidateToken("stale").Return(nil, errors.New("token is expired"))
	m := NewAuthMiddleware(tokens)

	cases := []struct {
		name   string
		header string
		want   *domainerrors.BaseError
	}{
		{"missing header", "", domainerrors.ErrUnauthorized},
		{"not bearer", "Token abc", domainerrors.ErrUnauthorized},
		{"rejected token", "Bearer stale", domainerrors.ErrInvalidToken},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			c, rec := newAuthContext(tc.header)

			require.NoError(t, m.Authenticate(okHandler)(c))

			body := decodeBody(t, rec)
			assert.Equal(t, tc.want.HTTPCode(), rec.Code)
			assert.Equal(t, tc.want.ErrorCode(), body.Error.Code)
			assert.Equal(t, tc.want.Message(), body.Message)
		})
	}
}
