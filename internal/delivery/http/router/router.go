// Package router contains routing and server setup for the HTTP delivery.
package router

import (
	"bid4service/internal/delivery/http/middleware"
	"bid4service/internal/delivery/http/router/handler"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

type RouterParams struct {
	fx.In

	UserHandler    *handler.UserHandler
	OAuthHandler   *handler.OAuthHandler
	AuthMiddleware *middleware.AuthMiddleware
}

// router holds all the handlers that need to be registered.
type router struct {
	userHandler    *handler.UserHandler
	oauthHandler   *handler.OAuthHandler
	authMiddleware *middleware.AuthMiddleware
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{
		userHandler:    params.UserHandler,
		oauthHandler:   params.OAuthHandler,
		authMiddleware: params.AuthMiddleware,
	}
}

// RegisterRoutes sets up all the API routes for the application.
func (r *router) RegisterRoutes(e *echo.Echo) {
	// Health check endpoint
	e.GET("/health", handler.HealthCheck)

	// Local credential routes
	authGroup := e.Group("/auth")
	{
		authGroup.POST("/register", r.userHandler.Register)
		authGroup.POST("/login", r.userHandler.Login)
		authGroup.POST("/refresh", r.userHandler.RefreshToken)
		authGroup.POST("/logout", r.userHandler.Logout)

		// Provider round-trip routes
		authGroup.GET("/providers", r.oauthHandler.Providers)
		authGroup.GET("/:provider", r.oauthHandler.Authorize)
		authGroup.GET("/:provider/callback", r.oauthHandler.Callback)
		// Identity-token providers post the result back instead.
		authGroup.POST("/:provider/callback", r.oauthHandler.Callback)
	}

	// Linked-account management requires an authenticated session
	linkGroup := e.Group("/auth/link", r.authMiddleware.Authenticate)
	{
		linkGroup.POST("/:provider", r.oauthHandler.Link)
		linkGroup.DELETE("/:provider", r.oauthHandler.Unlink)
	}

	accountGroup := e.Group("/auth/linked-accounts", r.authMiddleware.Authenticate)
	{
		accountGroup.GET("", r.oauthHandler.LinkedAccounts)
	}
}
