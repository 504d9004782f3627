package benchmark

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"testing"

	"github.com/jsamuelsen/quote-reactor/internal/domain"
	"github.com/jsamuelsen/quote-reactor/internal/reactor"
)

// stubFetcher resolves every fetch immediately with a fixed quote.
type stubFetcher struct {
	quote domain.Quote
}

func (s *stubFetcher) FetchRandomQuote(_ context.Context) (*domain.Quote, error) {
	q := s.quote
	return &q, nil
}

// BenchmarkEngine_Attempt measures the cost of one full attempt bracket:
// RefreshEnabled(false), the fetch, the terminal event, RefreshEnabled(true).
func BenchmarkEngine_Attempt(b *testing.B) {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	engine := reactor.NewEngine(reactor.Config{
		Fetcher: &stubFetcher{quote: domain.Quote{Content: "bench", Author: "bench"}},
		Logger:  logger,
	})

	inputs := make(chan domain.Input)
	outputs := engine.Run(context.Background(), inputs)

	b.ResetTimer()
	b.ReportAllocs()

	for i := 0; i < b.N; i++ {
		inputs <- domain.RefreshRequested{}
		for j := 0; j < 3; j++ {
			<-outputs
		}
	}

	b.StopTimer()
	close(inputs)
	for range outputs {
	}
}

// BenchmarkBroadcaster_Publish measures fan-out to a fixed subscriber set.
func BenchmarkBroadcaster_Publish(b *testing.B) {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	for _, subs := range []int{1, 8, 64} {
		b.Run(fmt.Sprintf("%d subscribers", subs), func(b *testing.B) {
			broadcaster := reactor.NewBroadcaster(b.N+1, logger)

			events := make(chan domain.Output)
			done := make(chan struct{})
			go func() {
				broadcaster.Run(events)
				close(done)
			}()

			cancels := make([]func(), 0, subs)
			for i := 0; i < subs; i++ {
				_, cancel := broadcaster.Subscribe()
				cancels = append(cancels, cancel)
			}

			b.ResetTimer()
			b.ReportAllocs()

			for i := 0; i < b.N; i++ {
				events <- domain.RefreshEnabled{Enabled: true}
			}

			b.StopTimer()
			for _, cancel := range cancels {
				cancel()
			}
			close(events)
			<-done
		})
	}
}
