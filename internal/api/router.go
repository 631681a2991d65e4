package api

import (
	"net/http"

	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/husen20ab/School/internal/api/handler"
	"github.com/husen20ab/School/internal/api/metrics"
	"github.com/husen20ab/School/internal/api/middleware"
	"github.com/husen20ab/School/internal/core/domain"
	"github.com/husen20ab/School/internal/core/service"
	"github.com/husen20ab/School/internal/core/session"
	mongodb "github.com/husen20ab/School/internal/infrastructure/db/mongo"
	redisdb "github.com/husen20ab/School/internal/infrastructure/db/redis"
	healthhandlers "github.com/husen20ab/School/internal/infrastructure/http/handlers"
)

// Options carries the router's external collaborators and settings.
type Options struct {
	DB          *mongo.Database
	Redis       *redis.Client
	Sessions    *session.Registry
	CORSOrigins []string
	Logger      zerolog.Logger
}

// NewRouter builds and returns the Echo instance with all routes registered.
func NewRouter(opts Options) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.Validator = handler.NewValidator()
	e.HTTPErrorHandler = NewHTTPErrorHandler(opts.Logger)

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(echomiddleware.Logger())
	e.Use(echoprometheus.NewMiddleware("school"))
	if len(opts.CORSOrigins) > 0 {
		e.Use(echomiddleware.CORSWithConfig(echomiddleware.CORSConfig{
			AllowOrigins:     opts.CORSOrigins,
			AllowMethods:     []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodDelete, http.MethodOptions},
			AllowHeaders:     []string{echo.HeaderContentType, echo.HeaderAuthorization},
			AllowCredentials: true,
		}))
	}

	// --- Dependencies ---
	userRepo := mongodb.NewUserRepository(opts.DB)
	studentRepo := mongodb.NewStudentRepository(opts.DB)
	limiter := redisdb.NewLoginLimiter(opts.Redis)

	authService := service.NewAuthService(userRepo, opts.Sessions, limiter, opts.Logger)
	studentService := service.NewStudentService(studentRepo, userRepo, opts.Logger)
	userService := service.NewUserService(userRepo, opts.Logger)

	authHandler := handler.NewAuthHandler(authService)
	studentHandler := handler.NewStudentHandler(studentService)
	userHandler := handler.NewUserHandler(userService)

	authRequired := middleware.Auth(opts.Sessions)
	anyRole := middleware.RequireRoles(domain.RoleAdmin, domain.RoleUser)
	adminOnly := middleware.RequireRoles(domain.RoleAdmin)

	// --- Public routes ---
	e.POST("/api/login", authHandler.Login)
	e.POST("/api/signup", authHandler.Signup)

	// --- Student records (user or admin, ownership-scoped) ---
	students := e.Group("/api/students", authRequired, anyRole)
	students.GET("", studentHandler.List)
	students.POST("", studentHandler.Create)
	students.GET("/:id", studentHandler.Get)
	students.PUT("/:id", studentHandler.Update)
	students.DELETE("/:id", studentHandler.Delete)

	// --- Account management (admin only) ---
	users := e.Group("/api/users", authRequired, adminOnly)
	users.GET("", userHandler.List)
	users.POST("", userHandler.Create)
	users.PUT("/:id", userHandler.Update)
	users.DELETE("/:id", userHandler.Delete)

	// --- Health probes ---
	healthHandler := healthhandlers.NewHealthHandler()
	healthDepsHandler := healthhandlers.NewHealthDependenciesHandler(opts.DB, opts.Redis)

	e.GET("/health/live", healthHandler.Liveness)
	e.GET("/health", healthDepsHandler.Readiness, authRequired, adminOnly)

	// --- Metrics ---
	metrics.RegisterSessionsGauge(opts.Sessions.Count)
	e.GET("/metrics", echoprometheus.NewHandler())

	return e
}
