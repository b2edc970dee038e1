// Package notify is the publish/subscribe seam between the skill service and
// whatever reacts to progress changes. It wraps the rpg-toolkit event bus
// and only accepts subscriptions until Freeze, after which the subscriber
// set is fixed and publishing may happen from any goroutine.
package notify

import (
	"context"
	"sync"

	"github.com/KirkDiggler/rpg-toolkit/core"
	"github.com/KirkDiggler/rpg-toolkit/events"

	"github.com/lamali292/one-piece-api/internal/errors"
)

// Event types published by the skill service.
const (
	EventNodeUpdated       = "one_piece_api.node.updated"
	EventNodeReset         = "one_piece_api.node.reset"
	EventCategoryDisposed  = "one_piece_api.category.disposed"
	EventExperienceAwarded = "one_piece_api.experience.awarded"
	EventBehaviorFailed    = "one_piece_api.behavior.failed"
)

// Context keys set on published events.
const (
	KeyCategory = "category"
	KeyNode     = "node"
	KeyCount    = "count"
	KeyAmount   = "amount"
	KeySource   = "source"
	KeyError    = "error"
)

// Handler reacts to a published event.
type Handler func(ctx context.Context, e events.Event) error

// Config configures a Bus.
type Config struct {
	// EventBus is the underlying bus. A new rpg-toolkit bus is used when nil.
	EventBus events.EventBus
}

// Bus is a setup-only subscription registry over an events.EventBus.
type Bus struct {
	mu     sync.Mutex
	bus    events.EventBus
	frozen bool
	subs   []string
}

// New creates a Bus.
func New(cfg *Config) *Bus {
	bus := events.EventBus(events.NewBus())
	if cfg != nil && cfg.EventBus != nil {
		bus = cfg.EventBus
	}
	return &Bus{bus: bus}
}

// Subscribe registers fn for eventType and returns the subscription id.
func (b *Bus) Subscribe(eventType string, fn Handler) (string, error) {
	if fn == nil {
		return "", errors.InvalidArgument("handler cannot be nil")
	}

	b.mu.Lock()
	defer b.mu.Unlock()
	if b.frozen {
		return "", errors.FailedPreconditionf("cannot subscribe to %s after setup", eventType)
	}

	id := b.bus.SubscribeFunc(eventType, 0, events.HandlerFunc(fn))
	b.subs = append(b.subs, id)
	return id, nil
}

// Freeze ends the subscription phase.
func (b *Bus) Freeze() {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.frozen = true
}

// Frozen reports whether Freeze was called.
func (b *Bus) Frozen() bool {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.frozen
}

// Subscriptions returns the number of registered handlers.
func (b *Bus) Subscriptions() int {
	b.mu.Lock()
	defer b.mu.Unlock()
	return len(b.subs)
}

// Publish delivers e to every handler subscribed to its type.
func (b *Bus) Publish(ctx context.Context, e events.Event) error {
	if err := b.bus.Publish(ctx, e); err != nil {
		return errors.Wrapf(err, "failed to publish %s", e.Type())
	}
	return nil
}

// NewEvent builds an event for player with the given context values.
func NewEvent(eventType string, player core.Entity, values map[string]any) events.Event {
	e := events.NewGameEvent(eventType, player, nil)
	for k, v := range values {
		e.Context().Set(k, v)
	}
	return e
}

// Value reads a typed context value from e.
func Value[T any](e events.Event, key string) (T, bool) {
	var zero T
	raw, ok := e.Context().Get(key)
	if !ok {
		return zero, false
	}
	v, ok := raw.(T)
	return v, ok
}
