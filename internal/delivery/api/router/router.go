// Package router contains routing and server setup for the HTTP delivery.
package router

import (
	"dabeli/config"
	"dabeli/internal/delivery/api/middleware"
	"dabeli/internal/delivery/api/router/handler"
	"dabeli/internal/delivery/realtime"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

type RouterParams struct {
	fx.In

	AdminHandler    *handler.AdminHandler
	CustomerHandler *handler.CustomerHandler
	OrderHandler    *handler.OrderHandler
	CateringHandler *handler.CateringHandler
	MenuHandler     *handler.MenuHandler
	FeedbackHandler *handler.FeedbackHandler
	ReportHandler   *handler.ReportHandler
	DeviceHandler   *handler.DeviceHandler
	TestHandler     *handler.TestHandler
	SocketHandler   *realtime.Handler
	AuthMiddleware  *middleware.AuthMiddleware
	Config          *config.Config
}

// router holds all the handlers that need to be registered.
type router struct {
	RouterParams
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{RouterParams: params}
}

// RegisterRoutes sets up all the API routes for the application.
func (r *router) RegisterRoutes(e *echo.Echo) {
	customer := r.AuthMiddleware.RequireCustomer
	admin := r.AuthMiddleware.RequireAdmin

	e.GET("/health", handler.HealthCheck)

	// Stored menu images
	e.GET("/images/*", r.MenuHandler.ServeImage)

	// Real-time sockets
	e.GET("/ws", r.SocketHandler.ServeCustomer)
	e.GET("/ws/admin", r.SocketHandler.ServeAdmin)

	api := e.Group("/api")

	api.POST("/admin/login", r.AdminHandler.Login)

	customersGroup := api.Group("/customers")
	{
		customersGroup.POST("/register", r.CustomerHandler.Register)
		customersGroup.POST("/login", r.CustomerHandler.Login)
		customersGroup.POST("/forgot-password", r.CustomerHandler.ForgotPassword)
		customersGroup.POST("/reset-password", r.CustomerHandler.ResetPassword)

		customersGroup.GET("/profile", r.CustomerHandler.GetProfile, customer)
		customersGroup.PUT("/profile", r.CustomerHandler.UpdateProfile, customer)
		customersGroup.PUT("/password", r.CustomerHandler.ChangePassword, customer)
		customersGroup.POST("/addresses", r.CustomerHandler.AddAddress, customer)
		customersGroup.PUT("/addresses/:id", r.CustomerHandler.UpdateAddress, customer)
		customersGroup.DELETE("/addresses/:id", r.CustomerHandler.DeleteAddress, customer)
	}

	ordersGroup := api.Group("/orders")
	{
		ordersGroup.POST("", r.OrderHandler.PlaceOrder, customer)
		ordersGroup.GET("/track/:phone", r.OrderHandler.TrackByPhone)
		ordersGroup.GET("/myorders", r.OrderHandler.MyOrders, customer)
		ordersGroup.GET("/:id/qr", r.OrderHandler.TrackingQRCode, customer)

		ordersGroup.GET("", r.OrderHandler.ListOrders, admin)
		ordersGroup.GET("/:id", r.OrderHandler.GetOrder, admin)
		ordersGroup.PATCH("/update/:id", r.OrderHandler.UpdateStatus, admin)
	}

	cateringGroup := api.Group("/catering")
	{
		cateringGroup.POST("/submit", r.CateringHandler.Submit, customer)
		cateringGroup.GET("/my-requests", r.CateringHandler.MyRequests, customer)

		cateringGroup.GET("/all", r.CateringHandler.ListAll, admin)
		cateringGroup.GET("/:id", r.CateringHandler.GetRequest, admin)
		cateringGroup.PATCH("/update-status/:id", r.CateringHandler.UpdateStatus, admin)
	}

	menuGroup := api.Group("/menu")
	{
		menuGroup.GET("", r.MenuHandler.ListMenu)
		menuGroup.GET("/:id", r.MenuHandler.GetMenuItem)

		menuGroup.POST("", r.MenuHandler.CreateMenuItem, admin)
		menuGroup.POST("/upload", r.MenuHandler.UploadImage, admin)
		menuGroup.PUT("/:id", r.MenuHandler.UpdateMenuItem, admin)
		menuGroup.DELETE("/:id", r.MenuHandler.DeleteMenuItem, admin)
		menuGroup.PATCH("/:id/stock", r.MenuHandler.SetInStock, admin)
		menuGroup.PATCH("/:id/featured", r.MenuHandler.SetFeatured, admin)
	}

	feedbackGroup := api.Group("/feedback")
	{
		feedbackGroup.POST("", r.FeedbackHandler.Submit)
		feedbackGroup.GET("/public", r.FeedbackHandler.ListPublic)

		feedbackGroup.GET("", r.FeedbackHandler.ListAll, admin)
		feedbackGroup.PATCH("/:id/read", r.FeedbackHandler.MarkRead, admin)
		feedbackGroup.PATCH("/:id/visibility", r.FeedbackHandler.SetVisibility, admin)
		feedbackGroup.DELETE("/:id", r.FeedbackHandler.Delete, admin)
	}

	api.GET("/reports/sales", r.ReportHandler.SalesReport, admin)

	devicesGroup := api.Group("/devices", customer)
	{
		devicesGroup.POST("", r.DeviceHandler.RegisterDevice)
		devicesGroup.GET("", r.DeviceHandler.GetCustomerDevices)
		devicesGroup.PUT("/:id/token", r.DeviceHandler.UpdateFCMToken)
		devicesGroup.DELETE("/:id", r.DeviceHandler.DeactivateDevice)
	}
}

func (r *router) RegisterTestRoutes(e *echo.Echo) {
	// Test routes - only enabled when configured
	if r.Config.TestRoutes != nil && r.Config.TestRoutes.Enabled {
		testGroup := e.Group("/test")
		testGroup.GET("/public", r.TestHandler.TestPublicEndpoint)
		testGroup.GET("/auth", r.TestHandler.TestAuthMiddleware, r.AuthMiddleware.Authenticate)
	}
}
