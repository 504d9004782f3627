package http

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/jsamuelsen/quote-reactor/internal/adapters/http/dto"
	"github.com/jsamuelsen/quote-reactor/internal/adapters/http/handlers"
	"github.com/jsamuelsen/quote-reactor/internal/adapters/http/middleware"
	"github.com/jsamuelsen/quote-reactor/internal/platform/config"
	"github.com/jsamuelsen/quote-reactor/internal/platform/telemetry"
)

// DefaultRequestTimeout is the default timeout for API requests.
const DefaultRequestTimeout = 30 * time.Second

// RouterConfig contains configuration for setting up the router.
type RouterConfig struct {
	// Logger is the structured logger for request logging.
	Logger *slog.Logger

	// AppConfig contains application configuration.
	AppConfig *config.AppConfig

	// HealthHandler handles health check endpoints.
	HealthHandler *handlers.HealthHandler

	// QuoteHandler handles the direct quote endpoints.
	QuoteHandler *handlers.QuoteHandler

	// InputHandler accepts input events for the reactor engine.
	InputHandler *handlers.InputHandler

	// EventHandler streams reactor output events.
	EventHandler *handlers.EventHandler

	// Timeout is the default request timeout. It does not apply to the
	// event stream, which stays open until the client disconnects.
	Timeout time.Duration
}

// SetupRouter configures all routes and middleware on the Gin engine.
// Middleware is applied in the following order (first to last):
//  1. Recovery - catch panics first
//  2. Request ID - generate/extract request ID
//  3. Correlation ID - handle distributed tracing correlation
//  4. OpenTelemetry - tracing and metrics
//  5. Logging - request logging (skips health endpoints)
//  6. Timeout - request deadline (applied per-group)
//
// Route groups:
//   - /-/ (internal): Health endpoints
//   - /api/v1/ (public API): Input intake, event stream, direct quote fetch
func SetupRouter(engine *gin.Engine, cfg RouterConfig) {
	// Apply global middleware in order
	engine.Use(
		middleware.Recovery(cfg.Logger),
		middleware.RequestID(),
		middleware.CorrelationID(),
		telemetry.Middleware(cfg.AppConfig.Name),
		middleware.Logging(cfg.Logger),
	)

	engine.NoRoute(func(c *gin.Context) {
		c.JSON(http.StatusNotFound, dto.NewErrorResponse(
			dto.ErrorCodeNotFound,
			"route not found",
		).WithTraceID(dto.GetTraceID(c)))
	})

	// Register health endpoints (no timeout for probes)
	if cfg.HealthHandler != nil {
		cfg.HealthHandler.RegisterHealthRoutesOnEngine(engine)
	}

	apiV1 := engine.Group("/api/v1")

	// The event stream is long-lived and must outlive the request timeout.
	if cfg.EventHandler != nil {
		cfg.EventHandler.RegisterEventRoutes(apiV1)
	}

	timed := apiV1.Group("")
	if cfg.Timeout > 0 {
		timed.Use(middleware.SimpleTimeout(cfg.Timeout))
	}

	if cfg.InputHandler != nil {
		cfg.InputHandler.RegisterInputRoutes(timed)
	}

	if cfg.QuoteHandler != nil {
		cfg.QuoteHandler.RegisterQuoteRoutes(timed)
	}
}

// SetupMinimalRouter sets up a minimal router with just health endpoints.
// Useful for testing or lightweight deployments.
func SetupMinimalRouter(engine *gin.Engine, logger *slog.Logger, healthHandler *handlers.HealthHandler) {
	engine.Use(
		middleware.Recovery(logger),
		middleware.RequestID(),
	)

	if healthHandler != nil {
		healthHandler.RegisterHealthRoutesOnEngine(engine)
	}
}

// NewDefaultRouterConfig creates a RouterConfig with sensible defaults.
func NewDefaultRouterConfig(
	logger *slog.Logger,
	appCfg *config.AppConfig,
	healthHandler *handlers.HealthHandler,
) RouterConfig {
	return RouterConfig{
		Logger:        logger,
		AppConfig:     appCfg,
		HealthHandler: healthHandler,
		Timeout:       DefaultRequestTimeout,
	}
}
