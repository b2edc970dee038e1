package ability

import (
	"context"
	"log/slog"
	"sort"

	"github.com/KirkDiggler/rpg-toolkit/core"

	"github.com/lamali292/one-piece-api/internal/errors"
	"github.com/lamali292/one-piece-api/internal/identifier"
)

// PlayerAbilities tracks which passive abilities one player has active.
type PlayerAbilities struct {
	registry *Registry
	active   map[identifier.Identifier]struct{}
}

// NewPlayerAbilities creates an empty set resolving abilities in reg.
func NewPlayerAbilities(reg *Registry) *PlayerAbilities {
	return &PlayerAbilities{
		registry: reg,
		active:   make(map[identifier.Identifier]struct{}),
	}
}

// Activate marks an ability active. The ability must be registered.
func (p *PlayerAbilities) Activate(id identifier.Identifier) error {
	if p.registry != nil && !p.registry.IsRegistered(id) {
		return errors.NotFoundf("passive ability %s not found", id).WithMeta("ability", id.String())
	}
	p.active[id] = struct{}{}
	return nil
}

// Deactivate marks an ability inactive.
func (p *PlayerAbilities) Deactivate(id identifier.Identifier) {
	delete(p.active, id)
}

// IsActive reports whether an ability is active.
func (p *PlayerAbilities) IsActive(id identifier.Identifier) bool {
	_, ok := p.active[id]
	return ok
}

// Active returns the active ability ids sorted by their string form.
func (p *PlayerAbilities) Active() []identifier.Identifier {
	out := make([]identifier.Identifier, 0, len(p.active))
	for id := range p.active {
		out = append(out, id)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].String() < out[j].String() })
	return out
}

// Tick runs every active ability for player. One ability failing does not
// stop the others.
func (p *PlayerAbilities) Tick(ctx context.Context, player core.Entity, tick int64) {
	if p.registry == nil {
		return
	}
	for _, id := range p.Active() {
		a, ok := p.registry.Get(id)
		if !ok {
			continue
		}
		if err := a.Tick(ctx, player, tick); err != nil {
			slog.WarnContext(ctx, "passive ability failed",
				"ability", id.String(),
				"player_id", player.GetID(),
				"error", err)
		}
	}
}
