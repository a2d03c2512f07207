// Package router contains routing and server setup for the HTTP delivery.
package router

import (
	"openshop/internal/delivery/http/middleware"
	"openshop/internal/delivery/http/router/handler"
	"openshop/internal/domain/entity"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

type RouterParams struct {
	fx.In

	AuthHandler    *handler.AuthHandler
	UserHandler    *handler.UserHandler
	CartHandler    *handler.CartHandler
	CatalogHandler *handler.CatalogHandler
	AuthMiddleware *middleware.AuthMiddleware
}

// router holds all the handlers that need to be registered.
type router struct {
	authHandler    *handler.AuthHandler
	userHandler    *handler.UserHandler
	cartHandler    *handler.CartHandler
	catalogHandler *handler.CatalogHandler
	authMiddleware *middleware.AuthMiddleware
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{
		authHandler:    params.AuthHandler,
		userHandler:    params.UserHandler,
		cartHandler:    params.CartHandler,
		catalogHandler: params.CatalogHandler,
		authMiddleware: params.AuthMiddleware,
	}
}

// RegisterRoutes sets up all the API routes for the application.
func (r *router) RegisterRoutes(e *echo.Echo) {
	e.GET("/health", handler.HealthCheck)

	authGroup := e.Group("/auth")
	{
		authGroup.POST("/register", r.authHandler.RegisterUser)
		authGroup.POST("/login", r.authHandler.Login)
	}

	userGroup := e.Group("/users/me", r.authMiddleware.Authenticate)
	{
		userGroup.GET("", r.userHandler.GetCurrentUser)
		userGroup.PUT("", r.userHandler.UpdateCurrentUser)
		userGroup.GET("/addresses", r.userHandler.GetAddresses)
		userGroup.POST("/addresses", r.userHandler.AddAddress)
		userGroup.PUT("/addresses/:id", r.userHandler.UpdateUserAddress)
		userGroup.DELETE("/addresses/:id", r.userHandler.DeleteUserAddress)
	}

	cartGroup := e.Group("/cart", r.authMiddleware.Authenticate)
	{
		cartGroup.GET("", r.cartHandler.GetCart)
		cartGroup.DELETE("", r.cartHandler.ClearCart)
		cartGroup.POST("/items", r.cartHandler.AddItem)
		cartGroup.PUT("/items/:id", r.cartHandler.UpdateItemQuantity)
		cartGroup.DELETE("/items/:id", r.cartHandler.RemoveItem)
	}

	// Catalog reads are public, writes need the admin role.
	adminOnly := []echo.MiddlewareFunc{r.authMiddleware.Authenticate, r.authMiddleware.RequireRole(entity.RoleAdmin)}

	categoryGroup := e.Group("/categories")
	{
		categoryGroup.GET("", r.catalogHandler.ListCategories)
		categoryGroup.GET("/:id", r.catalogHandler.GetCategory)
		categoryGroup.POST("", r.catalogHandler.CreateCategory, adminOnly...)
		categoryGroup.PUT("/:id", r.catalogHandler.UpdateCategory, adminOnly...)
		categoryGroup.DELETE("/:id", r.catalogHandler.DeleteCategory, adminOnly...)
	}

	productGroup := e.Group("/products")
	{
		productGroup.GET("", r.catalogHandler.ListProducts)
		productGroup.GET("/export", r.catalogHandler.ExportProducts, adminOnly...)
		productGroup.GET("/:id", r.catalogHandler.GetProduct)
		productGroup.POST("", r.catalogHandler.CreateProduct, adminOnly...)
		productGroup.PUT("/:id", r.catalogHandler.UpdateProduct, adminOnly...)
		productGroup.DELETE("/:id", r.catalogHandler.DeleteProduct, adminOnly...)
		productGroup.POST("/:id/variants", r.catalogHandler.AddVariant, adminOnly...)
		productGroup.PUT("/:id/variants/:variantId", r.catalogHandler.UpdateVariant, adminOnly...)
		productGroup.DELETE("/:id/variants/:variantId", r.catalogHandler.DeleteVariant, adminOnly...)
	}
}
