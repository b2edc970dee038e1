// Package registry provides an ordered, identifier-keyed table that is
// populated once during setup and read thereafter.
package registry

import (
	"github.com/lamali292/one-piece-api/internal/errors"
	"github.com/lamali292/one-piece-api/internal/identifier"
)

// Entry is a registered value together with its key.
type Entry[T any] struct {
	ID    identifier.Identifier
	Value T
}

// Registry maps identifiers to values preserving insertion order.
// Writes are only allowed before Freeze and are not synchronized.
type Registry[T any] struct {
	name    string
	index   map[identifier.Identifier]int
	entries []Entry[T]
	frozen  bool
}

// New creates an empty registry. The name only appears in fault messages.
func New[T any](name string) *Registry[T] {
	return &Registry[T]{
		name:  name,
		index: make(map[identifier.Identifier]int),
	}
}

// Register adds value under id. Registering an id twice, or registering
// after Freeze, is a setup bug and panics with an *errors.Error; the
// existing entry is left untouched.
func (r *Registry[T]) Register(id identifier.Identifier, value T) Entry[T] {
	if r.frozen {
		panic(errors.FailedPreconditionf("registry %s is frozen, cannot register %s", r.name, id).
			WithMeta("registry", r.name))
	}
	if id.IsZero() {
		panic(errors.InvalidArgumentf("registry %s: identifier cannot be empty", r.name))
	}
	if _, ok := r.index[id]; ok {
		panic(errors.AlreadyExistsf("registry %s already contains %s", r.name, id).
			WithMeta("registry", r.name).
			WithMeta("id", id.String()))
	}

	entry := Entry[T]{ID: id, Value: value}
	r.index[id] = len(r.entries)
	r.entries = append(r.entries, entry)
	return entry
}

// Get looks up the value registered under id.
func (r *Registry[T]) Get(id identifier.Identifier) (T, bool) {
	i, ok := r.index[id]
	if !ok {
		var zero T
		return zero, false
	}
	return r.entries[i].Value, true
}

// Contains reports whether id is registered.
func (r *Registry[T]) Contains(id identifier.Identifier) bool {
	_, ok := r.index[id]
	return ok
}

// Len returns the number of entries.
func (r *Registry[T]) Len() int {
	return len(r.entries)
}

// Entries returns a copy of every entry in insertion order.
func (r *Registry[T]) Entries() []Entry[T] {
	out := make([]Entry[T], len(r.entries))
	copy(out, r.entries)
	return out
}

// Keys returns every identifier in insertion order.
func (r *Registry[T]) Keys() []identifier.Identifier {
	out := make([]identifier.Identifier, len(r.entries))
	for i, e := range r.entries {
		out[i] = e.ID
	}
	return out
}

// Freeze ends the setup phase.
func (r *Registry[T]) Freeze() {
	r.frozen = true
}

// Frozen reports whether Freeze was called.
func (r *Registry[T]) Frozen() bool {
	return r.frozen
}

// Name returns the registry name.
func (r *Registry[T]) Name() string {
	return r.name
}
