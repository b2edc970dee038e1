// Package spell holds the spell containers a player has been granted.
package spell

import (
	"sort"
)

// Container is a group of spells granted together.
type Container struct {
	Content       string   `json:"content,omitempty"`
	Proxy         bool     `json:"is_proxy,omitempty"`
	Pool          string   `json:"pool,omitempty"`
	Slot          string   `json:"slot,omitempty"`
	MaxSpellCount int      `json:"max_spell_count,omitempty"`
	SpellIDs      []string `json:"spell_ids"`
}

// Equal reports whether two containers hold the same data.
func (c Container) Equal(other Container) bool {
	if c.Content != other.Content || c.Proxy != other.Proxy || c.Pool != other.Pool ||
		c.Slot != other.Slot || c.MaxSpellCount != other.MaxSpellCount ||
		len(c.SpellIDs) != len(other.SpellIDs) {
		return false
	}
	for i := range c.SpellIDs {
		if c.SpellIDs[i] != other.SpellIDs[i] {
			return false
		}
	}
	return true
}

// Host is the keyed set of containers a player owns. The dirty flag tells
// the sync layer the set changed.
type Host struct {
	containers map[string]Container
	dirty      bool
}

// NewHost creates an empty host.
func NewHost() *Host {
	return &Host{containers: make(map[string]Container)}
}

// Put stores a container under key, replacing any previous one.
func (h *Host) Put(key string, c Container) {
	h.containers[key] = c
}

// Remove deletes the container under key.
func (h *Host) Remove(key string) {
	delete(h.containers, key)
}

// Get returns the container under key.
func (h *Host) Get(key string) (Container, bool) {
	c, ok := h.containers[key]
	return c, ok
}

// Keys returns the container keys in sorted order.
func (h *Host) Keys() []string {
	out := make([]string, 0, len(h.containers))
	for k := range h.containers {
		out = append(out, k)
	}
	sort.Strings(out)
	return out
}

// Len returns the number of containers.
func (h *Host) Len() int {
	return len(h.containers)
}

// MarkDirty flags the set as changed.
func (h *Host) MarkDirty() {
	h.dirty = true
}

// Dirty reports whether the set changed since the last ClearDirty.
func (h *Host) Dirty() bool {
	return h.dirty
}

// ClearDirty resets the dirty flag once a sync went out.
func (h *Host) ClearDirty() {
	h.dirty = false
}
