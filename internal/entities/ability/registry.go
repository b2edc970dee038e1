package ability

import (
	"github.com/lamali292/one-piece-api/internal/identifier"
	"github.com/lamali292/one-piece-api/internal/registry"
)

// Registry holds every known passive ability.
type Registry struct {
	entries *registry.Registry[*PassiveAbility]
}

// NewRegistry creates an empty registry.
func NewRegistry() *Registry {
	return &Registry{entries: registry.New[*PassiveAbility]("passive_ability")}
}

// Register adds an ability under its own id. It panics on duplicates.
func (r *Registry) Register(a *PassiveAbility) {
	r.entries.Register(a.ID(), a)
}

// Get looks up an ability.
func (r *Registry) Get(id identifier.Identifier) (*PassiveAbility, bool) {
	return r.entries.Get(id)
}

// IsRegistered reports whether id is known.
func (r *Registry) IsRegistered(id identifier.Identifier) bool {
	return r.entries.Contains(id)
}

// All returns every ability in registration order.
func (r *Registry) All() []*PassiveAbility {
	entries := r.entries.Entries()
	out := make([]*PassiveAbility, len(entries))
	for i, e := range entries {
		out[i] = e.Value
	}
	return out
}

// Freeze ends registration.
func (r *Registry) Freeze() {
	r.entries.Freeze()
}
