// Package app contains application services that orchestrate use cases.
package app

import (
	"context"
	"log/slog"

	"github.com/jsamuelsen/quote-reactor/internal/domain"
	"github.com/jsamuelsen/quote-reactor/internal/ports"
)

// QuoteService orchestrates quote-related use cases.
// It depends on the QuoteFetcher port, not a concrete implementation,
// following the Dependency Inversion Principle.
type QuoteService struct {
	fetcher ports.QuoteFetcher
	logger  *slog.Logger
}

// QuoteServiceConfig contains configuration for the quote service.
type QuoteServiceConfig struct {
	Fetcher ports.QuoteFetcher
	Logger  *slog.Logger
}

// NewQuoteService creates a new quote service with the provided dependencies.
// Panics if Fetcher is nil. Defaults logger to slog.Default() if nil.
func NewQuoteService(cfg QuoteServiceConfig) *QuoteService {
	if cfg.Fetcher == nil {
		panic("QuoteService: Fetcher is required")
	}

	logger := cfg.Logger
	if logger == nil {
		logger = slog.Default()
	}

	return &QuoteService{
		fetcher: cfg.Fetcher,
		logger:  logger,
	}
}

// GetRandomQuote retrieves a random quote from the external service.
// This is the direct, engine-less path: one fetch per call, errors
// returned as domain errors.
func (s *QuoteService) GetRandomQuote(ctx context.Context) (*domain.Quote, error) {
	s.logger.DebugContext(ctx, "fetching random quote")

	quote, err := s.fetcher.FetchRandomQuote(ctx)
	if err != nil {
		s.logger.ErrorContext(ctx, "failed to fetch random quote",
			slog.Any("error", err),
		)
		return nil, err
	}

	s.logger.InfoContext(ctx, "fetched random quote",
		slog.String("author", quote.Author),
	)

	return quote, nil
}
