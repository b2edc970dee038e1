package experience

import (
	"github.com/lamali292/one-piece-api/internal/identifier"
	"github.com/lamali292/one-piece-api/internal/jsonvalue"
	"github.com/lamali292/one-piece-api/internal/problem"
	"github.com/lamali292/one-piece-api/internal/registry"
	"github.com/lamali292/one-piece-api/internal/result"
)

// Definition is a parsed {type, data} source entry.
type Definition struct {
	Type   identifier.Identifier
	Source Source
}

// Registry maps experience source type ids to factories.
type Registry struct {
	factories *registry.Registry[Factory]
}

// NewRegistry creates an empty registry.
func NewRegistry() *Registry {
	return &Registry{factories: registry.New[Factory]("experience_source")}
}

// Register adds a factory. It panics on a duplicate id or after Freeze.
func (r *Registry) Register(id identifier.Identifier, f Factory) {
	r.factories.Register(id, f)
}

// Get returns the factory for id.
func (r *Registry) Get(id identifier.Identifier) (Factory, bool) {
	return r.factories.Get(id)
}

// Types returns the registered ids in registration order.
func (r *Registry) Types() []identifier.Identifier {
	return r.factories.Keys()
}

// Freeze ends registration.
func (r *Registry) Freeze() {
	r.factories.Freeze()
}

// Parse reads a {"type": id, "data": {...}} entry.
func (r *Registry) Parse(e jsonvalue.Element, warnings *jsonvalue.Warnings) result.Result[Definition] {
	return result.AndThen(e.AsObject(), func(obj jsonvalue.Object) result.Result[Definition] {
		return jsonvalue.NoUnused(obj, func(o jsonvalue.Object) result.Result[Definition] {
			var c problem.Collector

			typeID, ok := result.Track(result.AndThen(o.Get("type"), jsonvalue.Element.AsIdentifier), &c)
			var factory Factory
			if ok {
				if factory, ok = r.factories.Get(typeID); !ok {
					c.Add(problem.Atf(o.Path(), "Expected a valid experience source type but found `%s`", typeID))
				}
			}

			data := o.Get("data")
			result.Track(data, &c)

			if p, failed := c.Problem(); failed {
				return result.Failure[Definition](p)
			}

			return result.Map(factory(jsonvalue.NewContext(data, warnings)), func(s Source) Definition {
				return Definition{Type: typeID, Source: s}
			})
		})
	})
}
