// Package router contains routing and server setup for the HTTP delivery.
package router

import (
	"perk/internal/delivery/http/middleware"
	"perk/internal/delivery/http/router/handler"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

type RouterParams struct {
	fx.In

	AuthHandler         *handler.AuthHandler
	EnrollmentHandler   *handler.EnrollmentHandler
	PointsHandler       *handler.PointsHandler
	QRHandler           *handler.QRHandler
	NotificationHandler *handler.NotificationHandler
	AuthMiddleware      *middleware.AuthMiddleware
}

// router holds all the handlers that need to be registered.
type router struct {
	authHandler         *handler.AuthHandler
	enrollmentHandler   *handler.EnrollmentHandler
	pointsHandler       *handler.PointsHandler
	qrHandler           *handler.QRHandler
	notificationHandler *handler.NotificationHandler
	authMiddleware      *middleware.AuthMiddleware
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{
		authHandler:         params.AuthHandler,
		enrollmentHandler:   params.EnrollmentHandler,
		pointsHandler:       params.PointsHandler,
		qrHandler:           params.QRHandler,
		notificationHandler: params.NotificationHandler,
		authMiddleware:      params.AuthMiddleware,
	}
}

// RegisterRoutes sets up all the API routes for the application.
func (r *router) RegisterRoutes(e *echo.Echo) {
	// Health check endpoint
	e.GET("/health", handler.HealthCheck)

	// Auth routes
	authGroup := e.Group("/auth")
	{
		authGroup.POST("/login", r.authHandler.Login)
		authGroup.POST("/refresh", r.authHandler.Refresh)
	}

	// Business routes: inviting customers and awarding points.
	businessGroup := e.Group("/business")
	businessGroup.Use(r.authMiddleware.Authenticate)
	businessGroup.Use(r.authMiddleware.RequireRole(middleware.RoleBusiness))
	{
		businessGroup.POST("/enrollments/request", r.enrollmentHandler.RequestEnrollment)
		businessGroup.POST("/points/award", r.pointsHandler.AwardPoints)
		businessGroup.POST("/points/scan", r.pointsHandler.Scan)
		businessGroup.POST("/qr/validate", r.qrHandler.ValidateToken)
	}

	// Customer routes: answering invitations and showing the wallet card.
	customerGroup := e.Group("/customer")
	customerGroup.Use(r.authMiddleware.Authenticate)
	customerGroup.Use(r.authMiddleware.RequireRole(middleware.RoleCustomer))
	{
		customerGroup.POST("/approvals/:id/respond", r.enrollmentHandler.RespondApproval)
		customerGroup.GET("/cards/:id/qr", r.qrHandler.GetCardQR)
		customerGroup.GET("/cards/:id/ledger", r.pointsHandler.ListCardLedger)
	}

	// Notification routes are shared by both roles.
	notificationGroup := e.Group("/notifications")
	notificationGroup.Use(r.authMiddleware.Authenticate)
	{
		notificationGroup.GET("", r.notificationHandler.ListNotifications)
		notificationGroup.POST("/:id/read", r.notificationHandler.MarkRead)
		notificationGroup.DELETE("/:id", r.notificationHandler.DeleteNotification)
	}
}
