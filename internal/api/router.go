package api

import (
	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/yolp/account-service/internal/api/handler"
	"github.com/yolp/account-service/internal/api/middleware"
	"github.com/yolp/account-service/internal/core/domain"
	"github.com/yolp/account-service/internal/core/ports"
)

// RouterDeps carries the collaborators the router wires into handlers.
// Services are built in the composition root so they own their lifecycle;
// the raw db handles are only used by the readiness probe.
type RouterDeps struct {
	Accounts ports.AccountService
	Tokens   ports.TokenService
	Mongo    *mongo.Database
	Redis    *redis.Client
	Log      zerolog.Logger
}

// NewRouter builds and returns the Echo instance with all routes registered.
func NewRouter(deps RouterDeps) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.Validator = handler.NewValidator()
	e.HTTPErrorHandler = NewHTTPErrorHandler(deps.Log)

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(echomiddleware.Logger())
	e.Use(echoprometheus.NewMiddleware("accounts"))

	// --- Dependencies ---
	authHandler := handler.NewAuthHandler(deps.Accounts, deps.Tokens)
	userHandler := handler.NewUserHandler(deps.Accounts)
	adminOnly := middleware.Guard(deps.Tokens, domain.RoleAdmin)

	// --- Account routes ---
	e.POST("/users", userHandler.Signup)
	e.POST("/auth/login", authHandler.Login)

	// --- Role-gated reads ---
	e.GET("/users", userHandler.GetAllUsers, adminOnly)
	e.GET("/users/search", userHandler.SearchUsers, adminOnly)

	// --- Health probes and metrics (no auth required) ---
	healthHandler := handler.NewHealthHandler()
	healthDepsHandler := handler.NewHealthDependenciesHandler(deps.Mongo, deps.Redis)

	e.GET("/health", healthHandler.Liveness)            // liveness  – is the process alive?
	e.GET("/health/ready", healthDepsHandler.Readiness) // readiness – are dependencies up?
	e.GET("/metrics", echoprometheus.NewHandler())

	return e
}
