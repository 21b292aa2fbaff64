// Package router contains routing and server setup for the HTTP delivery.
package router

import (
	"pushcart/internal/delivery/http/middleware"
	"pushcart/internal/delivery/http/router/handler"
	"pushcart/internal/domain/entity"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

type RouterParams struct {
	fx.In

	AuthHandler     *handler.AuthHandler
	VendorHandler   *handler.VendorHandler
	LocationHandler *handler.LocationHandler
	ProductHandler  *handler.ProductHandler
	AdminHandler    *handler.AdminHandler
	FeedbackHandler *handler.FeedbackHandler
	StreamHandler   *handler.StreamHandler
	AuthMiddleware  *middleware.AuthMiddleware
}

// router holds all the handlers that need to be registered.
type router struct {
	params RouterParams
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{params: params}
}

// RegisterRoutes sets up all the API routes for the application.
func (r *router) RegisterRoutes(e *echo.Echo) {
	p := r.params

	// Health check endpoint
	e.GET("/health", handler.HealthCheck)

	// Auth routes
	authGroup := e.Group("/auth")
	{
		authGroup.POST("/register/customer", p.AuthHandler.RegisterCustomer)
		authGroup.POST("/register/vendor", p.VendorHandler.Register)
		authGroup.POST("/login/customer", p.AuthHandler.LoginCustomer)
		authGroup.POST("/login/vendor", p.AuthHandler.LoginVendor)
		authGroup.POST("/login/admin", p.AuthHandler.LoginAdmin)
	}

	// Public directory and feedback routes
	apiGroup := e.Group("/api")
	{
		apiGroup.GET("/vendors", p.VendorHandler.ListApproved)
		apiGroup.GET("/vendors/nearby", p.VendorHandler.ListNearby)
		apiGroup.GET("/vendors/:id", p.VendorHandler.GetProfile)
		apiGroup.GET("/vendors/:id/qr", p.VendorHandler.GetProfileQR)
		apiGroup.GET("/vendors/:id/products", p.ProductHandler.ListVendorProducts)
		apiGroup.POST("/feedback", p.FeedbackHandler.SubmitFeedback)
	}

	// Live ranked vendor stream
	e.GET("/ws/vendors", p.StreamHandler.StreamVendors)

	// Vendor routes that require authentication and the "vendor" role
	vendorGroup := e.Group("/api/vendor")
	vendorGroup.Use(p.AuthMiddleware.Authenticate)
	vendorGroup.Use(p.AuthMiddleware.RequireRole(entity.RoleVendor))
	{
		vendorGroup.PUT("/location", p.LocationHandler.PublishLocation)
		vendorGroup.POST("/location/offline", p.LocationHandler.GoOffline)
		vendorGroup.GET("/location", p.LocationHandler.GetLocation)
		vendorGroup.PATCH("/profile", p.VendorHandler.UpdateProfile)
		vendorGroup.POST("/photo", p.VendorHandler.UploadPhoto)
		vendorGroup.POST("/arrival", p.VendorHandler.AnnounceArrival)
		vendorGroup.GET("/products", p.ProductHandler.ListOwnProducts)
		vendorGroup.POST("/products", p.ProductHandler.AddProduct)
		vendorGroup.PATCH("/products/:id", p.ProductHandler.UpdateProduct)
		vendorGroup.DELETE("/products/:id", p.ProductHandler.DeleteProduct)
	}

	// Admin routes that require authentication and the "admin" role
	adminGroup := e.Group("/api/admin")
	adminGroup.Use(p.AuthMiddleware.Authenticate)
	adminGroup.Use(p.AuthMiddleware.RequireRole(entity.RoleAdmin))
	{
		adminGroup.GET("/vendors/pending", p.AdminHandler.ListPendingVendors)
		adminGroup.POST("/vendors/:id/approve", p.AdminHandler.ApproveVendor)
		adminGroup.DELETE("/vendors/:id", p.AdminHandler.RemoveVendor)
		adminGroup.GET("/feedback", p.AdminHandler.ListFeedback)
	}
}
