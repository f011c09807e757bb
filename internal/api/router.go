package api

import (
	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/rs/zerolog"
	"gorm.io/gorm"

	"github.com/lendvault/lending-api/internal/api/handler"
	"github.com/lendvault/lending-api/internal/api/middleware"
	"github.com/lendvault/lending-api/internal/core/service"
	"github.com/lendvault/lending-api/internal/infrastructure/config"
	"github.com/lendvault/lending-api/internal/infrastructure/db/sqlite"
)

// NewRouter builds and returns the Echo instance with all routes registered.
func NewRouter(db *gorm.DB, cfg *config.Config, log zerolog.Logger) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.Validator = handler.NewValidator()
	e.HTTPErrorHandler = NewHTTPErrorHandler(log)

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(echomiddleware.Logger())
	e.Use(echoprometheus.NewMiddleware("lending"))

	// --- Dependencies ---
	userRepo := sqlite.NewUserRepository(db)
	taskRepo := sqlite.NewTaskRepository(db)
	loanRepo := sqlite.NewLoanRepository(db)
	paymentRepo := sqlite.NewPaymentRepository(db)

	userService := service.NewUserService(userRepo, cfg.BcryptCost, log)
	authService := service.NewAuthService(userRepo, cfg.JWTSecret, cfg.TokenTTL, log)
	taskService := service.NewTaskService(taskRepo, userRepo, log)
	loanService := service.NewLoanService(loanRepo, log)
	paymentService := service.NewPaymentService(paymentRepo, log)

	userHandler := handler.NewUserHandler(userService)
	authHandler := handler.NewAuthHandler(authService)
	taskHandler := handler.NewTaskHandler(taskService)
	loanHandler := handler.NewLoanHandler(loanService)
	paymentHandler := handler.NewPaymentHandler(paymentService)
	healthHandler := handler.NewHealthHandler()
	readinessHandler := handler.NewReadinessHandler(db)

	// --- Probes and metrics (never behind auth) ---
	e.GET("/health", healthHandler.Liveness)
	e.GET("/health/ready", readinessHandler.Readiness)
	e.GET("/metrics", echoprometheus.NewHandler())

	// --- API routes ---
	// login, federated sign-in and the acknowledgment probe stay reachable
	// without a token even when REQUIRE_AUTH is on
	pub := e.Group("/api")
	pub.GET("/test", healthHandler.Ping)
	pub.POST("/login", authHandler.Login)
	pub.POST("/auth/google", authHandler.GoogleAuth)
	// registration must stay open, a new user has no token yet
	pub.POST("/users", userHandler.Create)

	g := e.Group("/api")
	if cfg.RequireAuth {
		// token validity only; there is no per-resource authorization
		g.Use(middleware.Auth(cfg.JWTSecret))
	}

	g.GET("/users", userHandler.List)
	g.GET("/users/:id", userHandler.Get)

	g.GET("/tasks", taskHandler.List)
	g.GET("/tasks/user/:userId", taskHandler.ListByUser)
	g.GET("/tasks/:id", taskHandler.Get)
	g.POST("/tasks", taskHandler.Create)
	g.DELETE("/tasks/:id", taskHandler.Delete)
	g.PATCH("/tasks/:id/complete", taskHandler.Complete)

	g.GET("/loans", loanHandler.List)
	g.GET("/loans/:id", loanHandler.Get)
	g.POST("/loans", loanHandler.Create)
	g.GET("/loans/:id/payments", paymentHandler.ListByLoan)
	g.POST("/payments", paymentHandler.Create)

	return e
}
