package api

import (
	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/christian-constantin/commandit/internal/api/handler"
	"github.com/christian-constantin/commandit/internal/api/middleware"
	"github.com/christian-constantin/commandit/internal/core/ports"
)

// Dependencies carries everything the router needs. Mongo and Redis are
// optional: they are only used by the readiness probe and may be nil when
// running on the memory store.
type Dependencies struct {
	Auth     ports.AuthService
	Orders   ports.OrderService
	Users    ports.UserService
	Settings ports.SettingsService

	Mongo *mongo.Database
	Redis *redis.Client
	Log   zerolog.Logger
}

// NewRouter builds and returns the Echo instance with all routes registered.
func NewRouter(deps Dependencies) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.Validator = handler.NewValidator()
	e.HTTPErrorHandler = NewHTTPErrorHandler(deps.Log)

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(echomiddleware.Logger())
	e.Use(echoprometheus.NewMiddleware("commandit"))

	auth := middleware.Auth(deps.Auth)
	adminOnly := middleware.AdminOnly()

	// --- Auth ---
	authHandler := handler.NewAuthHandler(deps.Auth)
	e.POST("/auth/login", authHandler.Login)

	// --- Order submission (any authenticated employee) ---
	orderHandler := handler.NewOrderHandler(deps.Orders)
	e.POST("/orders", orderHandler.Submit, auth)

	// --- Admin routes ---
	adminOrders := handler.NewAdminOrderHandler(deps.Orders)
	adminUsers := handler.NewAdminUserHandler(deps.Users)
	settings := handler.NewSettingsHandler(deps.Settings)

	admin := e.Group("/admin", auth, adminOnly)
	admin.GET("/orders", adminOrders.List)
	admin.PUT("/orders/:id/status", adminOrders.UpdateStatus)
	admin.GET("/users", adminUsers.List)
	admin.POST("/users", adminUsers.Create)
	admin.PUT("/users/:id", adminUsers.Update)
	admin.DELETE("/users/:id", adminUsers.Delete)
	admin.GET("/settings", settings.Get)
	admin.PUT("/settings", settings.Update)
	admin.POST("/test-email", settings.TestEmail)

	// --- Health probes and metrics (no auth required) ---
	healthHandler := handler.NewHealthHandler()
	readinessHandler := handler.NewReadinessHandler(deps.Mongo, deps.Redis)

	e.GET("/health", healthHandler.Liveness)
	e.GET("/health/ready", readinessHandler.Readiness)
	e.GET("/metrics", echoprometheus.NewHandler())

	return e
}
