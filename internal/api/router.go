package api

import (
	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/rs/zerolog"
	echoSwagger "github.com/swaggo/echo-swagger"

	"github.com/shoplabs/shop-api/internal/api/handler"
	"github.com/shoplabs/shop-api/internal/api/middleware"
	"github.com/shoplabs/shop-api/internal/core/domain"
	"github.com/shoplabs/shop-api/internal/core/ports"
)

// RouterConfig carries everything the router needs; nothing is reached
// through globals.
type RouterConfig struct {
	Logger      zerolog.Logger
	JWTSecret   string
	Categories  ports.CategoryService
	Products    ports.ProductService
	Users       ports.UserService
	ReadyChecks []handler.DependencyCheck

	// Registry for HTTP metrics. Defaults to the process-wide registry;
	// tests inject a fresh one so routers can be built repeatedly.
	Registry *prometheus.Registry
}

// NewRouter builds and returns the Echo instance with all routes registered.
func NewRouter(cfg RouterConfig) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.Validator = handler.NewValidator()
	e.HTTPErrorHandler = NewHTTPErrorHandler(cfg.Logger)

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(echomiddleware.Logger())
	registerer := prometheus.Registerer(prometheus.DefaultRegisterer)
	gatherer := prometheus.Gatherer(prometheus.DefaultGatherer)
	if cfg.Registry != nil {
		registerer = cfg.Registry
		gatherer = cfg.Registry
	}
	e.Use(echoprometheus.NewMiddlewareWithConfig(echoprometheus.MiddlewareConfig{
		Subsystem:  "shop",
		Registerer: registerer,
	}))

	// --- Handlers ---
	categoryHandler := handler.NewCategoryHandler(cfg.Categories)
	productHandler := handler.NewProductHandler(cfg.Products)
	userHandler := handler.NewUserHandler(cfg.Users)

	auth := middleware.Auth(cfg.JWTSecret)
	employee := middleware.RBAC(domain.RoleEmployee)
	manager := middleware.RBAC(domain.RoleManager)

	// --- Versioned API ---
	v1 := e.Group("/v1")

	v1.GET("/categories", categoryHandler.List)
	v1.GET("/categories/:id", categoryHandler.Get)
	v1.POST("/categories", categoryHandler.Create, auth, employee)
	v1.PUT("/categories/:id", categoryHandler.Update, auth, employee)
	v1.DELETE("/categories/:id", categoryHandler.Delete, auth, employee)

	v1.GET("/products", productHandler.List)
	v1.GET("/products/:id", productHandler.Get)
	v1.GET("/products/categories/:id", productHandler.ListByCategory)
	v1.POST("/products", productHandler.Create, auth, employee)

	v1.GET("/users", userHandler.List, auth, manager)
	v1.PUT("/users/:id", userHandler.Update, auth, manager)
	v1.POST("/users", userHandler.Register)
	v1.POST("/users/login", userHandler.Login)

	// --- Operational endpoints (no auth required) ---
	healthHandler := handler.NewHealthHandler()
	readinessHandler := handler.NewReadinessHandler(cfg.ReadyChecks...)

	e.GET("/health", healthHandler.Liveness)
	e.GET("/health/ready", readinessHandler.Readiness)
	e.GET("/metrics", echoprometheus.NewHandlerWithConfig(echoprometheus.HandlerConfig{Gatherer: gatherer}))
	e.GET("/swagger/*", echoSwagger.WrapHandler)

	return e
}
