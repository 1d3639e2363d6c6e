// Package router contains routing and server setup for the HTTP delivery.
package router

import (
	"provenance/internal/delivery/api/middleware"
	"provenance/internal/delivery/api/router/handler"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

type RouterParams struct {
	fx.In

	ImageHandler    *handler.ImageHandler
	RecordHandler   *handler.RecordHandler
	SessionHandler  *handler.SessionHandler
	RealtimeHandler *handler.RealtimeHandler
	AuthMiddleware  *middleware.AuthMiddleware
}

// router holds all the handlers that need to be registered.
type router struct {
	imageHandler    *handler.ImageHandler
	recordHandler   *handler.RecordHandler
	sessionHandler  *handler.SessionHandler
	realtimeHandler *handler.RealtimeHandler
	authMiddleware  *middleware.AuthMiddleware
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{
		imageHandler:    params.ImageHandler,
		recordHandler:   params.RecordHandler,
		sessionHandler:  params.SessionHandler,
		realtimeHandler: params.RealtimeHandler,
		authMiddleware:  params.AuthMiddleware,
	}
}

// RegisterRoutes sets up all the API routes for the application.
func (r *router) RegisterRoutes(e *echo.Echo) {
	e.GET("/health", handler.HealthCheck)

	// Realtime lifecycle events, scoped to the caller's session
	e.GET("/ws", r.realtimeHandler.Stream, r.authMiddleware.AuthenticateQuery)

	// Events relayed by the lifecycle worker; guarded by a service token, not a session
	internalGroup := e.Group("/internal")
	{
		internalGroup.POST("/events", r.realtimeHandler.RelayEvent)
	}

	// Wallet login
	authGroup := e.Group("/auth")
	{
		authGroup.POST("/nonce", r.sessionHandler.RequestNonce)
		authGroup.POST("/login", r.sessionHandler.Login)
		authGroup.POST("/logout", r.sessionHandler.Logout, r.authMiddleware.Authenticate)
	}

	apiV1 := e.Group("/api/v1")

	// Public reads and verification; a token, when sent, identifies the caller
	optional := r.authMiddleware.Optional
	apiV1.POST("/verify", r.imageHandler.Verify, optional)
	apiV1.GET("/records", r.recordHandler.ListRecords, optional)
	apiV1.GET("/records/:id", r.recordHandler.GetRecord, optional)
	apiV1.GET("/records/:id/qr", r.recordHandler.GetCertificateQR, optional)

	// Owner actions
	authenticated := r.authMiddleware.Authenticate
	apiV1.POST("/images", r.imageHandler.Submit, authenticated)

	apiV1.POST("/records/:id/mint", r.recordHandler.RequestMint, authenticated)
	apiV1.POST("/records/:id/soft-list", r.recordHandler.RequestSoftList, authenticated)
	apiV1.POST("/records/:id/confirm", r.recordHandler.Confirm, authenticated)
	apiV1.POST("/records/:id/redrive", r.recordHandler.Redrive, authenticated)

	apiV1.GET("/profile", r.sessionHandler.GetProfile, authenticated)
	apiV1.PUT("/profile", r.sessionHandler.UpdateProfile, authenticated)
}
