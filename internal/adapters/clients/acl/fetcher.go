// Package acl implements the Anti-Corruption Layer pattern for external services.
// ACL adapters translate between external API models and domain models,
// protecting the domain from external system changes.
package acl

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"

	"github.com/jsamuelsen/quote-reactor/internal/adapters/clients"
	"github.com/jsamuelsen/quote-reactor/internal/domain"
)

// randomQuotePath is the fixed resource the fetcher reads from.
const randomQuotePath = "/random"

// QuoteFetcherConfig contains configuration for the quote fetcher.
type QuoteFetcherConfig struct {
	// Client is the HTTP client to use for requests.
	// The client's BaseURL should be set to the quote API endpoint.
	Client *clients.Client

	// Logger is the structured logger.
	Logger *slog.Logger
}

// QuoteFetcher implements ports.QuoteFetcher against the quotable.io API.
// It demonstrates the ACL pattern by translating the external payload
// to the domain Quote and every failure mode to a domain FetchError.
type QuoteFetcher struct {
	client *clients.Client
	logger *slog.Logger
}

// NewQuoteFetcher creates a new quote fetcher adapter.
// Panics if Client is nil. Defaults logger to slog.Default() if nil.
func NewQuoteFetcher(cfg QuoteFetcherConfig) *QuoteFetcher {
	if cfg.Client == nil {
		panic("QuoteFetcher: Client is required")
	}

	logger := cfg.Logger
	if logger == nil {
		logger = slog.Default()
	}

	return &QuoteFetcher{
		client: cfg.Client,
		logger: logger,
	}
}

// quotableResponse is the external DTO from the quotable.io API.
// Only content and author are consumed; additional fields are ignored.
// This is an internal type - never exposed outside the ACL.
type quotableResponse struct {
	Content string `json:"content"`
	Author  string `json:"author"`
}

// FetchRandomQuote performs a single fetch of a random quote.
// Implements ports.QuoteFetcher. Transport failure, a non-2xx status, and
// a malformed payload all surface as the same domain error category.
func (f *QuoteFetcher) FetchRandomQuote(ctx context.Context) (*domain.Quote, error) {
	f.logger.DebugContext(ctx, "fetching random quote", slog.String("path", randomQuotePath))

	resp, err := f.client.Get(ctx, randomQuotePath)
	if err != nil {
		return nil, domain.NewFetchError("transport failure", err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		body, _ := io.ReadAll(resp.Body)
		f.logger.WarnContext(ctx, "quote API error",
			slog.Int("status_code", resp.StatusCode),
			slog.String("body", string(body)),
		)

		return nil, domain.NewFetchError(fmt.Sprintf("unexpected HTTP %d", resp.StatusCode), nil)
	}

	return f.parseQuoteResponse(ctx, resp.Body)
}

// parseQuoteResponse reads and translates the external DTO to a domain Quote.
// This is the core ACL translation function.
func (f *QuoteFetcher) parseQuoteResponse(ctx context.Context, body io.Reader) (*domain.Quote, error) {
	var external quotableResponse

	err := json.NewDecoder(body).Decode(&external)
	if err != nil {
		return nil, domain.NewFetchError("decoding quote response", err)
	}

	quote := &domain.Quote{
		Content: external.Content,
		Author:  external.Author,
	}

	f.logger.DebugContext(ctx, "translated external DTO to domain",
		slog.String("author", quote.Author),
	)

	return quote, nil
}

// Name returns the health check name for this client.
// Implements ports.HealthChecker.
func (f *QuoteFetcher) Name() string {
	return "quote-service"
}

// Check performs a health check by calling the quote endpoint.
// Implements ports.HealthChecker.
func (f *QuoteFetcher) Check(ctx context.Context) error {
	resp, err := f.client.Get(ctx, randomQuotePath)
	if err != nil {
		return err
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("quote API returned status %d", resp.StatusCode)
	}

	return nil
}
