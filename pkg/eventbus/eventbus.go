package eventbus

import (
	"context"

	"github.com/amirasaad/ledger/pkg/domain/events"
)

// HandlerFunc handles one event.
type HandlerFunc func(ctx context.Context, event events.Event) error

// Bus defines the contract for publishing and subscribing to ledger events.
type Bus interface {
	Emit(ctx context.Context, event events.Event) error
	Register(eventType events.EventType, handler HandlerFunc)
}
