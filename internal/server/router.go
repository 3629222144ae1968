package server

import (
	"net/http"

	"ledger-agent/internal/config"
	"ledger-agent/internal/handlers"
	"ledger-agent/internal/middleware"
	"ledger-agent/internal/repositories"
	"ledger-agent/internal/services"

	"github.com/labstack/echo/v4"
	echomw "github.com/labstack/echo/v4/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const maxBodySize = "64K"

// Dependencies are the wired components the HTTP surface needs
type Dependencies struct {
	Config       *config.Config
	QueryService services.QueryServiceInterface
	Resolver     services.WindowResolverInterface
	Store        handlers.HealthCheckerInterface
	Transactions repositories.TransactionRepositoryInterface
	Generator    services.TransactionGeneratorInterface
	// Metrics defaults to the process-wide Prometheus handler
	Metrics http.Handler
}

// NewRouter builds the echo instance: middleware chain, error handler and routes.
// Debug routes are only mounted outside production.
func NewRouter(deps Dependencies) *echo.Echo {
	cfg := deps.Config

	e := echo.New()
	e.HideBanner = true
	e.HidePort = true
	e.Validator = handlers.NewValidator()
	e.HTTPErrorHandler = middleware.CustomHTTPErrorHandler

	e.Use(middleware.RequestID())
	e.Use(middleware.PanicRecovery())
	e.Use(middleware.SecurityHeaders())

	metricsHandler := deps.Metrics
	if metricsHandler == nil {
		metricsHandler = promhttp.Handler()
	}

	healthHandler := handlers.NewHealthCheckHandler(deps.Store)
	queryHandler := handlers.NewQueryHandler(deps.QueryService, deps.Resolver)

	e.GET("/health", healthHandler.HealthCheck)
	e.GET("/metrics", echo.WrapHandler(metricsHandler))

	// one limiter instance so /ask and /summary share each client's bucket
	api := []echo.MiddlewareFunc{
		middleware.RateLimiter(cfg.Security.RateLimitPerSecond, cfg.Security.RateLimitBurst),
		echomw.BodyLimit(maxBodySize),
	}
	if cfg.AuthEnabled() {
		api = append(api, middleware.RequireAPIToken(cfg.Security.JWTSecret, cfg.Security.JWTIssuer))
	}
	e.POST("/ask", queryHandler.Ask, api...)
	e.GET("/summary", queryHandler.Summary, api...)

	if !cfg.IsProduction() {
		debug := e.Group("/debug")
		debug.GET("/current-month", queryHandler.CurrentMonth)

		if deps.Transactions != nil && deps.Generator != nil {
			devHandler := handlers.NewDevHandler(deps.Transactions, deps.Generator)
			debug.POST("/generate-transactions", devHandler.GenerateTestData)
		}
	}

	return e
}
