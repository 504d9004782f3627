// Package main is the entry point for the quote reactor service.
package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/prometheus/client_golang/prometheus"
	"golang.org/x/sync/errgroup"

	"github.com/jsamuelsen/quote-reactor/internal/adapters/clients"
	"github.com/jsamuelsen/quote-reactor/internal/adapters/clients/acl"
	"github.com/jsamuelsen/quote-reactor/internal/adapters/http"
	"github.com/jsamuelsen/quote-reactor/internal/adapters/http/handlers"
	"github.com/jsamuelsen/quote-reactor/internal/app"
	"github.com/jsamuelsen/quote-reactor/internal/domain"
	"github.com/jsamuelsen/quote-reactor/internal/platform/config"
	"github.com/jsamuelsen/quote-reactor/internal/platform/logging"
	"github.com/jsamuelsen/quote-reactor/internal/platform/telemetry"
	"github.com/jsamuelsen/quote-reactor/internal/ports"
	"github.com/jsamuelsen/quote-reactor/internal/reactor"
)

// Build-time variables, injected via ldflags.
// Example: go build -ldflags "-X main.Version=1.0.0 -X main.Commit=$(git rev-parse HEAD) -X main.BuildTime=$(date -u +%Y-%m-%dT%H:%M:%SZ)"
var (
	// Version is the semantic version of the service.
	Version = "dev"

	// Commit is the git commit SHA.
	Commit = "unknown"

	// BuildTime is the timestamp when the binary was built.
	BuildTime = "unknown"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	// 1. Determine profile from environment
	profile := os.Getenv("APP_ENVIRONMENT")
	if profile == "" {
		profile = "local"
	}

	// 2. Load and validate configuration (fail fast)
	cfg, err := config.Load(profile)
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("invalid config: %w", err)
	}

	// 3. Initialize logging
	logger := logging.New(&logging.Config{
		Level:   cfg.Log.Level,
		Format:  cfg.Log.Format,
		Service: cfg.App.Name,
		Version: cfg.App.Version,
		File: logging.FileConfig{
			Enabled:    cfg.Log.File.Enabled,
			Path:       cfg.Log.File.Path,
			MaxSizeMB:  cfg.Log.File.MaxSizeMB,
			MaxBackups: cfg.Log.File.MaxBackups,
			MaxAgeDays: cfg.Log.File.MaxAgeDays,
			Compress:   cfg.Log.File.Compress,
		},
	})
	slog.SetDefault(logger)

	logger.Info("starting service",
		slog.String("version", Version),
		slog.String("commit", Commit),
		slog.String("environment", cfg.App.Environment),
	)

	// 4. Initialize telemetry (noop if disabled)
	telProvider, err := telemetry.New(ctx, &telemetry.Config{
		Enabled:      cfg.Telemetry.Enabled,
		Endpoint:     cfg.Telemetry.Endpoint,
		ServiceName:  cfg.Telemetry.ServiceName,
		Version:      cfg.App.Version,
		Environment:  cfg.App.Environment,
		SamplingRate: cfg.Telemetry.SamplingRate,
	})
	if err != nil {
		return fmt.Errorf("initializing telemetry: %w", err)
	}

	defer func() {
		if shutdownErr := telProvider.Shutdown(context.Background()); shutdownErr != nil {
			logger.Error("telemetry shutdown error", slog.Any("error", shutdownErr))
		}
	}()

	// 5. Create health registry
	healthRegistry := ports.NewHealthRegistry()

	// 6. Create HTTP client for the upstream quote API
	httpClient, err := clients.New(&clients.Config{
		BaseURL:     cfg.Services.Quote.BaseURL,
		ServiceName: cfg.Services.Quote.Name,
		Timeout:     cfg.Client.Timeout,
		Retry:       cfg.Client.Retry,
		Circuit:     cfg.Client.CircuitBreaker,
		Logger:      logger,
	})
	if err != nil {
		return fmt.Errorf("creating HTTP client: %w", err)
	}

	// 7. Create the quote fetcher adapter (ACL pattern)
	fetcher := acl.NewQuoteFetcher(acl.QuoteFetcherConfig{
		Client: httpClient,
		Logger: logger,
	})

	// Register the fetcher as a health checker
	if err := healthRegistry.Register(fetcher); err != nil {
		return fmt.Errorf("registering quote fetcher health check: %w", err)
	}

	// 8. Create quote service (application layer)
	quoteService := app.NewQuoteService(app.QuoteServiceConfig{
		Fetcher: fetcher,
		Logger:  logger,
	})

	// 9. Assemble the reactor: inputs -> engine -> broadcaster
	metrics := reactor.NewMetrics(prometheus.DefaultRegisterer)
	engine := reactor.NewEngine(reactor.Config{
		Fetcher:      fetcher,
		Logger:       logger,
		Metrics:      metrics,
		OutputBuffer: cfg.Engine.OutputBuffer,
	})

	inputs := make(chan domain.Input, cfg.Engine.InputBuffer)
	outputs := engine.Run(context.Background(), inputs)

	broadcaster := reactor.NewBroadcaster(cfg.Engine.SubscriberBuffer, logger)

	// 10. Create handlers
	buildInfo := handlers.NewBuildInfo(Version, Commit, BuildTime)
	healthHandler := handlers.NewHealthHandler(healthRegistry, buildInfo)
	quoteHandler := handlers.NewQuoteHandler(quoteService)
	inputHandler := handlers.NewInputHandler(inputs)
	eventHandler := handlers.NewEventHandler(broadcaster)

	// 11. Create HTTP server and router
	server := http.New(&cfg.Server, logger)

	routerCfg := http.RouterConfig{
		Logger:        logger,
		AppConfig:     &cfg.App,
		HealthHandler: healthHandler,
		QuoteHandler:  quoteHandler,
		InputHandler:  inputHandler,
		EventHandler:  eventHandler,
		Timeout:       http.DefaultRequestTimeout,
	}
	http.SetupRouter(server.Engine(), routerCfg)

	// 12. Run everything under one group
	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		broadcaster.Run(outputs)
		return nil
	})

	serverErr := server.Start()

	g.Go(func() error {
		select {
		case err := <-serverErr:
			if err != nil {
				return fmt.Errorf("server error: %w", err)
			}
			return nil
		case <-gctx.Done():
			return nil
		}
	})

	g.Go(func() error {
		<-gctx.Done()
		logger.Info("initiating graceful shutdown",
			slog.Duration("timeout", cfg.Server.ShutdownTimeout),
		)

		shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
		defer cancel()

		// Drain in-flight requests first so no handler writes to the
		// intake channel after it closes.
		shutdownErr := server.Shutdown(shutdownCtx)
		close(inputs)

		return shutdownErr
	})

	if err := g.Wait(); err != nil {
		return err
	}

	logger.Info("shutdown complete")

	return nil
}
