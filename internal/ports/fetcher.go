// Package ports defines interfaces for external dependencies.
// Ports are contracts that adapters implement, allowing the application layer
// to depend on abstractions rather than concrete implementations.
//
// Port Design Principles:
//   - Context as first parameter (always) for cancellation and deadlines
//   - Return domain types, never external DTOs or infrastructure types
//   - Error returns use domain error types (ErrFetch, ErrUnavailable, etc.)
//   - Keep interfaces small and focused (Interface Segregation Principle)
package ports

import (
	"context"

	"github.com/jsamuelsen/quote-reactor/internal/domain"
)

// QuoteFetcher is the capability the reactor engine depends on to obtain
// quotes. Expressing the fetch as a port allows deterministic substitution
// in tests: the engine never knows whether it is talking to the real
// remote endpoint or a stub.
type QuoteFetcher interface {
	// FetchRandomQuote performs a single fetch of a random quote.
	// One outbound call per invocation, no caching, no retries beyond
	// whatever the transport is configured with.
	// Returns a domain.FetchError on transport or decode failure.
	FetchRandomQuote(ctx context.Context) (*domain.Quote, error)
}
