package http

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"openshop/config"
	"openshop/internal/delivery/http/middleware"
	"openshop/internal/delivery/http/response"
	"openshop/internal/delivery/http/router"
	"openshop/internal/delivery/http/router/handler"
	"openshop/internal/domain/entity"
	domainerrors "openshop/internal/domain/errors"
	"openshop/internal/domain/service"
	"openshop/internal/dto"
	mockSvc "openshop/internal/mocks/service"
	mockUsecase "openshop/internal/mocks/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

const (
	userToken  = "user-token"
	adminToken = "admin-token"
)

// serverFixtures wires the full echo pipeline against mocked use cases.
type serverFixtures struct {
	echo     *echo.Echo
	auth     *mockUsecase.MockAuthUsecase
	user     *mockUsecase.MockUserUsecase
	cart     *mockUsecase.MockCartUsecase
	catalog  *mockUsecase.MockCatalogUsecase
	exporter *mockSvc.MockProductExporter
	userID   uuid.UUID
}

func createTestServer(t *testing.T) serverFixtures {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	cfg := &config.Config{}
	cfg.HTTP.MaxRequestBodySize = "100KB"

	fx := serverFixtures{
		auth:     mockUsecase.NewMockAuthUsecase(t),
		user:     mockUsecase.NewMockUserUsecase(t),
		cart:     mockUsecase.NewMockCartUsecase(t),
		catalog:  mockUsecase.NewMockCatalogUsecase(t),
		exporter: mockSvc.NewMockProductExporter(t),
		userID:   uuid.New(),
	}

	tokens := mockSvc.NewMockTokenService(t)
	tokens.EXPECT().ValidateToken(userToken).Return(&service.Claims{
		UserID: fx.userID,
		Email:  "jane@example.com",
		Roles:  []string{entity.RoleUser},
	}, nil).Maybe()
	tokens.EXPECT().ValidateToken(adminToken).Return(&service.Claims{
		UserID: uuid.New(),
		Email:  "admin@example.com",
		Roles:  []string{entity.RoleUser, entity.RoleAdmin},
	}, nil).Maybe()

	fx.echo = newEcho(ServerParams{
		Cfg:    cfg,
		Logger: logger,
		RouterParams: router.RouterParams{
			AuthHandler:    handler.NewAuthHandler(fx.auth, logger),
			UserHandler:    handler.NewUserHandler(fx.user),
			CartHandler:    handler.NewCartHandler(fx.cart),
			CatalogHandler: handler.NewCatalogHandler(fx.catalog, fx.exporter),
			AuthMiddleware: middleware.NewAuthMiddleware(tokens),
		},
	})

	return fx
}

func (fx serverFixtures) do(method, target, token, body string) *httptest.ResponseRecorder {
	var reader io.Reader
	if body != "" {
		reader = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, target, reader)
	if body != "" {
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}
	if token != "" {
		req.Header.Set(echo.HeaderAuthorization, "Bearer "+token)
	}
	rec := httptest.NewRecorder()
	fx.echo.ServeHTTP(rec, req)

	return rec
}

func decode(t *testing.T, rec *httptest.ResponseRecorder) response.Response {
	t.Helper()

	var body response.Response
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))

	return body
}

func TestServer_Health(t *testing.T) {
	fx := createTestServer(t)

	rec := fx.do(http.MethodGet, "/health", "", "")

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.NotEmpty(t, rec.Header().Get("X-Request-Id"))
}

func TestServer_Register_Created(t *testing.T) {
	fx := createTestServer(t)
	userID := uuid.New()

	fx.auth.EXPECT().
		RegisterUser(mock.Anything, &dto.UserRegisterRequest{Email: "new@example.com", Username: "newbie", Password: "Password123!"}).
		Return(&entity.User{ID: userID, Email: "new@example.com", Name: "newbie", Roles: []*entity.Role{{Name: entity.RoleUser}}}, nil)

	rec := fx.do(http.MethodPost, "/auth/register", "", `{"email":"new@example.com","username":"newbie","password":"Password123!"}`)

	assert.Equal(t, http.StatusCreated, rec.Code)
	body := decode(t, rec)
	assert.True(t, body.Success)
	data := body.Data.(map[string]any)
	assert.Equal(t, userID.String(), data["userId"])
	assert.Equal(t, "newbie", data["username"])
	assert.NotContains(t, rec.Body.String(), "password")
}

func TestServer_Register_ValidationFailure(t *testing.T) {
	fx := createTestServer(t)

	rec := fx.do(http.MethodPost, "/auth/register", "", `{"email":"nope","username":"","password":"x"}`)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	body := decode(t, rec)
	assert.Equal(t, "VALIDATION_FAILED", body.Error.Code)
	assert.Contains(t, body.Error.Details, "email")
}

func TestServer_Register_DuplicateEmail(t *testing.T) {
	fx := createTestServer(t)

	fx.auth.EXPECT().RegisterUser(mock.Anything, mock.Anything).Return(nil, domainerrors.ErrEmailAlreadyExists)

	rec := fx.do(http.MethodPost, "/auth/register", "", `{"email":"dup@example.com","username":"dup","password":"Password123!"}`)

	assert.Equal(t, http.StatusConflict, rec.Code)
	assert.Equal(t, "EMAIL_ALREADY_EXISTS", decode(t, rec).Error.Code)
}

func TestServer_UsersMe_RequiresToken(t *testing.T) {
	fx := createTestServer(t)

	rec := fx.do(http.MethodGet, "/users/me", "", "")

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestServer_UsersMe_PassesPrincipal(t *testing.T) {
	fx := createTestServer(t)

	fx.user.EXPECT().
		GetCurrentUser(mock.Anything, mock.MatchedBy(func(p *entity.Principal) bool {
			return p.UserID == fx.userID && p.Email == "jane@example.com"
		})).
		Return(&dto.UserResponse{UserID: fx.userID, Username: "jane", Email: "jane@example.com"}, nil)

	rec := fx.do(http.MethodGet, "/users/me", userToken, "")

	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestServer_AddAddress_RequiresFullAddress(t *testing.T) {
	fx := createTestServer(t)

	rec := fx.do(http.MethodPost, "/users/me/addresses", userToken, `{"city":"Taipei"}`)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestServer_AddAddress_Created(t *testing.T) {
	fx := createTestServer(t)
	addressID := uuid.New()
	want := &dto.AddressRequest{
		AddressLine: "1 Main St",
		City:        "Taipei",
		PostalCode:  "100",
		Country:     "TW",
	}

	fx.user.EXPECT().
		AddAddress(mock.Anything, mock.MatchedBy(func(p *entity.Principal) bool { return p.UserID == fx.userID }), want).
		Return(&dto.AddressResponse{ID: addressID, City: "Taipei"}, nil).
		Once()

	rec := fx.do(http.MethodPost, "/users/me/addresses", userToken,
		`{"addressLine":"1 Main St","city":"Taipei","postalCode":"100","country":"TW"}`)

	assert.Equal(t, http.StatusCreated, rec.Code)
	body := decode(t, rec)
	assert.True(t, body.Success)
	data, ok := body.Data.(map[string]any)
	require.True(t, ok)
	assert.Equal(t, addressID.String(), data["id"])
}

func TestServer_DeleteAddress_BadID(t *testing.T) {
	fx := createTestServer(t)

	rec := fx.do(http.MethodDelete, "/users/me/addresses/not-a-uuid", userToken, "")

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "VALIDATION_FAILED", decode(t, rec).Error.Code)
}

func TestServer_CartAddItem(t *testing.T) {
	fx := createTestServer(t)
	variantID := uuid.New()

	fx.cart.EXPECT().
		AddItem(mock.Anything, mock.Anything, &dto.CartItemRequest{VariantID: variantID, Quantity: 2}).
		Return(&dto.CartResponse{CartItems: []*dto.CartItemResponse{}}, nil)

	rec := fx.do(http.MethodPost, "/cart/items", userToken, `{"variantId":"`+variantID.String()+`","quantity":2}`)

	assert.Equal(t, http.StatusCreated, rec.Code)
}

func TestServer_CatalogReadIsPublic(t *testing.T) {
	fx := createTestServer(t)

	fx.catalog.EXPECT().ListCategories(mock.Anything).Return([]*dto.CategoryResponse{}, nil)

	rec := fx.do(http.MethodGet, "/categories", "", "")

	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestServer_CatalogWriteNeedsAdmin(t *testing.T) {
	fx := createTestServer(t)
	body := `{"name":"Shirts"}`

	assert.Equal(t, http.StatusUnauthorized, fx.do(http.MethodPost, "/categories", "", body).Code)
	assert.Equal(t, http.StatusForbidden, fx.do(http.MethodPost, "/categories", userToken, body).Code)

	fx.catalog.EXPECT().
		CreateCategory(mock.Anything, &dto.CategoryRequest{Name: "Shirts"}).
		Return(&dto.CategoryResponse{ID: uuid.New(), Name: "Shirts"}, nil)

	assert.Equal(t, http.StatusCreated, fx.do(http.MethodPost, "/categories", adminToken, body).Code)
}

func TestServer_ListProducts_CategoryFilter(t *testing.T) {
	fx := createTestServer(t)
	categoryID := uuid.New()

	fx.catalog.EXPECT().ListProducts(mock.Anything, &categoryID).Return([]*dto.ProductResponse{}, nil)

	assert.Equal(t, http.StatusOK, fx.do(http.MethodGet, "/products?categoryId="+categoryID.String(), "", "").Code)
	assert.Equal(t, http.StatusBadRequest, fx.do(http.MethodGet, "/products?categoryId=oops", "", "").Code)
}

func TestServer_ExportProducts(t *testing.T) {
	fx := createTestServer(t)

	fx.catalog.EXPECT().
		ExportProducts(mock.Anything, mock.Anything).
		RunAndReturn(func(_ context.Context, w io.Writer) error {
			_, err := w.Write([]byte("PK"))
			return err
		})
	fx.exporter.EXPECT().FileName().Return("products.xlsx")
	fx.exporter.EXPECT().ContentType().Return("application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")

	rec := fx.do(http.MethodGet, "/products/export", adminToken, "")

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet", rec.Header().Get(echo.HeaderContentType))
	assert.Contains(t, rec.Header().Get(echo.HeaderContentDisposition), "products.xlsx")
	assert.Equal(t, "PK", rec.Body.String())
}
