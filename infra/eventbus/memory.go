package eventbus

import (
	"context"
	"log/slog"
	"sync"

	"github.com/amirasaad/ledger/pkg/domain/events"
	"github.com/amirasaad/ledger/pkg/eventbus"
)

// MemoryEventBus dispatches events synchronously to in-process handlers.
type MemoryEventBus struct {
	handlers  map[events.EventType][]eventbus.HandlerFunc
	mu        sync.RWMutex
	logger    *slog.Logger
	record    bool
	published []events.Event
}

// MemoryOption configures a MemoryEventBus.
type MemoryOption func(*MemoryEventBus)

// WithRecording keeps every emitted event for Published. Recording is unbounded and
// meant for tests; the bus keeps nothing without it.
func WithRecording() MemoryOption {
	return func(b *MemoryEventBus) { b.record = true }
}

// NewWithMemory creates a new in-memory event bus.
func NewWithMemory(logger *slog.Logger, opts ...MemoryOption) *MemoryEventBus {
	if logger == nil {
		logger = slog.Default()
	}
	b := &MemoryEventBus{
		handlers: make(map[events.EventType][]eventbus.HandlerFunc),
		logger:   logger.With("bus", "memory"),
	}
	for _, opt := range opts {
		opt(b)
	}
	return b
}

// Register registers a handler for a specific event type.
func (b *MemoryEventBus) Register(eventType events.EventType, handler eventbus.HandlerFunc) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.handlers[eventType] = append(b.handlers[eventType], handler)
}

// Emit calls every handler registered for the event's type, recording the event
// first when the bus was built WithRecording. Handler errors and panics are logged;
// they never fail the emit.
func (b *MemoryEventBus) Emit(ctx context.Context, event events.Event) error {
	eventType := events.EventType(event.Type())

	b.mu.Lock()
	if b.record {
		b.published = append(b.published, event)
	}
	handlers := append([]eventbus.HandlerFunc(nil), b.handlers[eventType]...)
	b.mu.Unlock()

	for _, handler := range handlers {
		func() {
			defer func() {
				if r := recover(); r != nil {
					b.logger.Error("panic recovered in event handler", "type", eventType, "panic", r)
				}
			}()
			if err := handler(ctx, event); err != nil {
				b.logger.Error("failed to process event", "type", eventType, "error", err)
			}
		}()
	}
	return nil
}

// Published returns a copy of every event recorded so far. It is always empty on a
// bus built without WithRecording.
func (b *MemoryEventBus) Published() []events.Event {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return append([]events.Event(nil), b.published...)
}

// ClearPublished forgets recorded events.
func (b *MemoryEventBus) ClearPublished() {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.published = nil
}

var _ eventbus.Bus = (*MemoryEventBus)(nil)
