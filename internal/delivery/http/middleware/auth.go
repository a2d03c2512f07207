package middleware

import (
	"strings"

	deliverycontext "openshop/internal/delivery/context"
	"openshop/internal/delivery/http/response"
	"openshop/internal/domain/entity"
	domainerrors "openshop/internal/domain/errors"
	"openshop/internal/domain/service"

	"github.com/labstack/echo/v4"
)

const principalKey = "principal"

// AuthMiddleware provides middleware for JWT authentication and authorization.
type AuthMiddleware struct {
	tokenSvc service.TokenService
}

// NewAuthMiddleware is the constructor for AuthMiddleware.
func NewAuthMiddleware(tokenSvc service.TokenService) *AuthMiddleware {
	return &AuthMiddleware{tokenSvc: tokenSvc}
}

// Authenticate validates the bearer access token and stores the caller's principal.
func (m *AuthMiddleware) Authenticate(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		authHeader := c.Request().Header.Get(echo.HeaderAuthorization)
		if authHeader == "" {
			return response.AppError(c, domainerrors.ErrUnauthorized.WithDetails("Authorization header is missing"))
		}

		tokenString := strings.TrimPrefix(authHeader, "Bearer ")
		if tokenString == authHeader || tokenString == "" {
			return response.AppError(c, domainerrors.ErrUnauthorized.WithDetails("Invalid token format, must be Bearer token"))
		}

		claims, err := m.tokenSvc.ValidateToken(tokenString)
		if err != nil {
			return response.AppError(c, domainerrors.ErrInvalidToken)
		}

		c.Set(principalKey, &entity.Principal{
			UserID: claims.UserID,
			Email:  claims.Email,
			Roles:  entity.Roles(claims.Roles),
		})

		ctx := deliverycontext.WithUserID(c.Request().Context(), claims.UserID.String())
		c.SetRequest(c.Request().WithContext(ctx))

		return next(c)
	}
}

// RequireRole checks the authenticated principal holds role.
// It must be used AFTER the Authenticate middleware.
func (m *AuthMiddleware) RequireRole(role string) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			principal := GetPrincipal(c)
			if principal == nil {
				return response.AppError(c, domainerrors.ErrUnauthorized)
			}

			if !principal.Roles.Contains(role) {
				return response.AppError(c, domainerrors.ErrForbidden.WithDetails("Role "+role+" required"))
			}

			return next(c)
		}
	}
}

// GetPrincipal returns the principal stored by Authenticate, or nil.
func GetPrincipal(c echo.Context) *entity.Principal {
	principal, _ := c.Get(principalKey).(*entity.Principal)

	return principal
}

// SetPrincipal stores a principal on the context.
func SetPrincipal(c echo.Context, principal *entity.Principal) {
	c.Set(principalKey, principal)
}
