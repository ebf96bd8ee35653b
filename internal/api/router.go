package api

import (
	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	echoswagger "github.com/swaggo/echo-swagger"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/fittrack/goaltracker/internal/api/handler"
	"github.com/fittrack/goaltracker/internal/api/middleware"
	"github.com/fittrack/goaltracker/internal/core/ports"
	"github.com/fittrack/goaltracker/internal/core/service"
	mongodb "github.com/fittrack/goaltracker/internal/infrastructure/db/mongo"
	redisdb "github.com/fittrack/goaltracker/internal/infrastructure/db/redis"
)

// Deps carries the externally-constructed dependencies the router wires into
// handlers. Tokens and Recorder are built in main so the signing secret and
// the dispatcher lifecycle stay out of the HTTP layer.
type Deps struct {
	DB       *mongo.Database
	Redis    *redis.Client
	Tokens   ports.TokenService
	Recorder ports.ActivityRecorder
	Logger   zerolog.Logger
}

// NewRouter builds and returns the Echo instance with all routes registered.
func NewRouter(deps Deps) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.Validator = handler.NewValidator()
	e.HTTPErrorHandler = NewHTTPErrorHandler(deps.Logger)

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(echomiddleware.Logger())
	e.Use(echoprometheus.NewMiddleware("goaltracker"))

	// --- Dependencies ---
	userRepo := mongodb.NewUserRepository(deps.DB)
	goalRepo := mongodb.NewGoalRepository(deps.DB)
	activityRepo := mongodb.NewActivityRepository(deps.DB)

	hasher := service.NewBcryptHasher()
	authService := service.NewAuthService(userRepo, hasher, deps.Tokens, deps.Logger)
	goalService := service.NewGoalService(goalRepo, deps.Recorder, deps.Logger)

	authHandler := handler.NewAuthHandler(authService)
	goalHandler := handler.NewGoalHandler(goalService)
	activityHandler := handler.NewActivityHandler(activityRepo)

	authGate := middleware.Auth(deps.Tokens, deps.Logger)
	loginLimiter := redisdb.NewLoginLimiter(deps.Redis, 0, 0)

	// --- Auth routes ---
	e.POST("/auth/register", authHandler.Register)
	e.POST("/auth/login", authHandler.Login, middleware.LoginRateLimit(loginLimiter, deps.Logger))

	// --- Goal routes (authenticated) ---
	goals := e.Group("/goals", authGate)
	goals.GET("", goalHandler.List)
	goals.POST("", goalHandler.Create)
	goals.PUT("/:id", goalHandler.Update)
	goals.DELETE("/:id", goalHandler.Delete)

	// --- Activity feed (authenticated) ---
	e.GET("/activity", activityHandler.List, authGate)

	// --- Health probes (no auth required) ---
	healthHandler := handler.NewHealthHandler()
	readinessHandler := handler.NewReadinessHandler(deps.DB, deps.Redis)

	e.GET("/health", healthHandler.Liveness)
	e.GET("/health/ready", readinessHandler.Readiness)

	// --- Observability & docs ---
	e.GET("/metrics", echoprometheus.NewHandler())
	e.GET("/swagger/*", echoswagger.WrapHandler)

	return e
}
