package ability

import (
	"context"

	"github.com/KirkDiggler/rpg-toolkit/core"
)

// Subject is a player the handler can tick.
type Subject interface {
	core.Entity
	Abilities() *PlayerAbilities
}

// Handler ticks the passive abilities of every online player. It owns the
// server tick counter abilities use for their intervals.
type Handler struct {
	tick int64
}

// NewHandler creates a handler at tick zero.
func NewHandler() *Handler {
	return &Handler{}
}

// Tick advances the counter and ticks every subject.
func (h *Handler) Tick(ctx context.Context, subjects []Subject) {
	h.tick++
	for _, s := range subjects {
		s.Abilities().Tick(ctx, s, h.tick)
	}
}

// Current returns the last tick processed.
func (h *Handler) Current() int64 {
	return h.tick
}
