package reactor

import (
	"log/slog"
	"sync"

	"github.com/jsamuelsen/quote-reactor/internal/domain"
)

// DefaultSubscriberBuffer is the default capacity of each subscriber channel.
const DefaultSubscriberBuffer = 16

// Broadcaster fans the engine's single output stream out to any number of
// subscribers. The presentation surface attaches through a subscription;
// detaching releases it without affecting the engine.
//
// Delivery to a subscriber is non-blocking: a subscriber that stops reading
// has events dropped rather than stalling the stream for everyone else.
type Broadcaster struct {
	logger *slog.Logger
	buf    int

	mu     sync.Mutex
	subs   map[int]chan domain.Output
	nextID int
	closed bool
}

// NewBroadcaster creates a broadcaster with the given per-subscriber buffer.
// A buffer of zero or less uses DefaultSubscriberBuffer.
func NewBroadcaster(buffer int, logger *slog.Logger) *Broadcaster {
	if buffer <= 0 {
		buffer = DefaultSubscriberBuffer
	}

	if logger == nil {
		logger = slog.Default()
	}

	return &Broadcaster{
		logger: logger.With(slog.String("component", "reactor.Broadcaster")),
		buf:    buffer,
		subs:   make(map[int]chan domain.Output),
	}
}

// Run consumes the engine's output stream until it is closed, delivering
// each event to all current subscribers. When the stream ends, every
// subscriber channel is closed.
func (b *Broadcaster) Run(events <-chan domain.Output) {
	for ev := range events {
		b.publish(ev)
	}

	b.mu.Lock()
	b.closed = true

	for id, ch := range b.subs {
		close(ch)
		delete(b.subs, id)
	}
	b.mu.Unlock()
}

// Subscribe registers a new subscriber and returns its event channel
// together with a cancel function. Cancel is idempotent and must be called
// when the subscriber detaches.
func (b *Broadcaster) Subscribe() (<-chan domain.Output, func()) {
	b.mu.Lock()
	defer b.mu.Unlock()

	ch := make(chan domain.Output, b.buf)

	if b.closed {
		close(ch)
		return ch, func() {}
	}

	id := b.nextID
	b.nextID++
	b.subs[id] = ch

	var once sync.Once

	cancel := func() {
		once.Do(func() {
			b.mu.Lock()
			defer b.mu.Unlock()

			if _, ok := b.subs[id]; ok {
				delete(b.subs, id)
				close(ch)
			}
		})
	}

	return ch, cancel
}

// publish delivers one event to all subscribers without blocking.
func (b *Broadcaster) publish(ev domain.Output) {
	b.mu.Lock()
	defer b.mu.Unlock()

	for id, ch := range b.subs {
		select {
		case ch <- ev:
		default:
			b.logger.Warn("dropping event for slow subscriber", slog.Int("subscriber", id))
		}
	}
}
