// Package reactor implements the unidirectional Input -> Output transform.
// The engine consumes a stream of presentation-surface intents, drives the
// quote fetcher, and produces a stream of state-change events. It is the
// only stateful logic in the system.
package reactor

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"github.com/jsamuelsen/quote-reactor/internal/domain"
	"github.com/jsamuelsen/quote-reactor/internal/ports"
)

// DefaultOutputBuffer is the default capacity of the output channel.
const DefaultOutputBuffer = 16

// Engine converts Input events into Output events.
// It depends on the QuoteFetcher port, not a concrete client,
// so tests can substitute a deterministic stub.
type Engine struct {
	fetcher ports.QuoteFetcher
	logger  *slog.Logger
	metrics *Metrics
	outBuf  int
}

// Config contains configuration for the engine.
type Config struct {
	// Fetcher performs the outbound quote fetch. Required.
	Fetcher ports.QuoteFetcher

	// Logger is the structured logger. Defaults to slog.Default() if nil.
	Logger *slog.Logger

	// Metrics records per-attempt counters. Optional.
	Metrics *Metrics

	// OutputBuffer is the capacity of the returned output channel.
	// Defaults to DefaultOutputBuffer when zero or negative.
	OutputBuffer int
}

// NewEngine creates an engine with the provided dependencies.
// Panics if Fetcher is nil.
func NewEngine(cfg Config) *Engine {
	if cfg.Fetcher == nil {
		panic("reactor: Fetcher is required")
	}

	logger := cfg.Logger
	if logger == nil {
		logger = slog.Default()
	}

	outBuf := cfg.OutputBuffer
	if outBuf <= 0 {
		outBuf = DefaultOutputBuffer
	}

	return &Engine{
		fetcher: cfg.Fetcher,
		logger:  logger.With(slog.String("component", "reactor.Engine")),
		metrics: cfg.Metrics,
		outBuf:  outBuf,
	}
}

// Run consumes inputs and returns the lazily produced output stream.
// Inputs are processed in arrival order; both ViewAppeared and
// RefreshRequested trigger an identical fetch attempt.
//
// Each attempt emits exactly one RefreshEnabled(false) before the fetch
// starts, and on resolution exactly one terminal event (FetchSucceeded or
// FetchFailed) followed by exactly one RefreshEnabled(true). Overlapping
// attempts are not serialized: a second input arriving mid-fetch starts an
// independent attempt, and the outputs of concurrent attempts may
// interleave arbitrarily.
//
// The output channel is closed after the input channel is closed and all
// in-flight attempts have resolved. Cancelling ctx releases the input
// subscription and drops any outputs still pending from in-flight
// attempts; the fetches themselves run to completion.
func (e *Engine) Run(ctx context.Context, inputs <-chan domain.Input) <-chan domain.Output {
	out := make(chan domain.Output, e.outBuf)

	go func() {
		var wg sync.WaitGroup

		defer func() {
			wg.Wait()
			close(out)
		}()

		for {
			select {
			case <-ctx.Done():
				e.logger.Debug("engine torn down", slog.Any("cause", ctx.Err()))
				return

			case in, ok := <-inputs:
				if !ok {
					e.logger.Debug("input stream closed")
					return
				}

				switch in.(type) {
				case domain.ViewAppeared, domain.RefreshRequested:
					e.handleFetch(ctx, out, &wg)
				}
			}
		}
	}()

	return out
}

// handleFetch runs one attempt: the disable-fetch-enable bracket.
// RefreshEnabled(false) is emitted synchronously before the fetch is
// issued; the fetch itself runs on its own goroutine so a slow remote
// never blocks input consumption.
func (e *Engine) handleFetch(ctx context.Context, out chan<- domain.Output, wg *sync.WaitGroup) {
	e.emit(ctx, out, domain.RefreshEnabled{Enabled: false})

	e.metrics.attemptStarted()

	wg.Add(1)

	go func() {
		defer wg.Done()

		start := time.Now()

		// No cancellation: once started, a fetch runs to completion even if
		// the engine is torn down mid-flight. Tearing down only stops the
		// delivery of its outputs.
		quote, err := e.fetcher.FetchRandomQuote(context.WithoutCancel(ctx))

		e.metrics.attemptResolved(err == nil, time.Since(start))

		if err != nil {
			e.logger.Warn("fetch attempt failed",
				slog.Duration("duration", time.Since(start)),
				slog.Any("error", err),
			)
			e.emit(ctx, out, domain.FetchFailed{Err: err})
		} else {
			e.logger.Debug("fetch attempt succeeded",
				slog.Duration("duration", time.Since(start)),
				slog.String("author", quote.Author),
			)
			e.emit(ctx, out, domain.FetchSucceeded{Quote: *quote})
		}

		e.emit(ctx, out, domain.RefreshEnabled{Enabled: true})
	}()
}

// emit delivers an output event, dropping it if the engine has been torn
// down. A send never panics: out is closed only after every emitter has
// returned.
func (e *Engine) emit(ctx context.Context, out chan<- domain.Output, ev domain.Output) {
	select {
	case out <- ev:
	case <-ctx.Done():
	}
}
