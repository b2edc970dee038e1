// Package calculation is a small typed expression language for data-pack
// formulas. A Prototype declares the operations a formula may call on its
// context data; Variables bind named sub-expressions; a Calculation is a
// parsed, type-checked tree evaluated against context data.
package calculation

import (
	"strings"

	"github.com/lamali292/one-piece-api/internal/identifier"
	"github.com/lamali292/one-piece-api/internal/registry"
)

// Kind is the type-erased view of a prototype the parser works with.
// Only prototypes implement it.
type Kind interface {
	ID() identifier.Identifier
	Operations() []identifier.Identifier
	resolve(name string) (*operation, string)
}

type operation struct {
	id     identifier.Identifier
	result Kind
	apply  func(any) any
}

// Prototype is a closed set of operations over values of type D.
type Prototype[D any] struct {
	id         identifier.Identifier
	operations *registry.Registry[*operation]
}

var _ Kind = (*Prototype[any])(nil)

// NewPrototype creates a prototype with no operations.
func NewPrototype[D any](id identifier.Identifier) *Prototype[D] {
	return &Prototype[D]{
		id:         id,
		operations: registry.New[*operation](id.String()),
	}
}

// RegisterOperation adds an operation projecting D to V, where result is
// the prototype describing V. It panics on a duplicate id or when p is
// sealed.
func RegisterOperation[D, V any](p *Prototype[D], id identifier.Identifier, result *Prototype[V], fn func(D) V) {
	p.operations.Register(id, &operation{
		id:     id,
		result: result,
		apply: func(v any) any {
			// a nil interface value arrives as a nil any
			d, _ := v.(D)
			return fn(d)
		},
	})
}

// ID returns the prototype identifier.
func (p *Prototype[D]) ID() identifier.Identifier {
	return p.id
}

// Seal ends operation registration.
func (p *Prototype[D]) Seal() {
	p.operations.Freeze()
}

// Sealed reports whether Seal was called.
func (p *Prototype[D]) Sealed() bool {
	return p.operations.Frozen()
}

// Operations lists operation ids in registration order.
func (p *Prototype[D]) Operations() []identifier.Identifier {
	return p.operations.Keys()
}

// resolve finds an operation by exact namespaced id, or by path when only
// one operation has that path.
func (p *Prototype[D]) resolve(name string) (*operation, string) {
	if strings.Contains(name, ":") {
		id, err := identifier.Parse(name)
		if err != nil {
			return nil, "Invalid operation identifier `" + name + "`"
		}
		if op, ok := p.operations.Get(id); ok {
			return op, ""
		}
		return nil, "Unknown operation `" + name + "` on " + p.id.String()
	}

	var match *operation
	matches := 0
	for _, entry := range p.operations.Entries() {
		if entry.ID.Path() == name {
			match = entry.Value
			matches++
		}
	}
	switch matches {
	case 0:
		return nil, "Unknown operation `" + name + "` on " + p.id.String()
	case 1:
		return match, ""
	default:
		return nil, "Ambiguous operation `" + name + "` on " + p.id.String() + ", use a namespaced id"
	}
}
