// Package skill loads skill categories from data packs and applies their
// rewards and experience sources to players.
package skill

import (
	"github.com/lamali292/one-piece-api/internal/experience"
	"github.com/lamali292/one-piece-api/internal/identifier"
	"github.com/lamali292/one-piece-api/internal/reward"
)

// Node is one unlockable entry of a category.
type Node struct {
	ID      identifier.Identifier
	Rewards []reward.Definition
}

// Category is a parsed skill category.
type Category struct {
	ID      identifier.Identifier
	nodes   []*Node
	byID    map[identifier.Identifier]*Node
	sources []experience.Definition
}

// NewCategory builds a category from already parsed parts. Node order is
// kept as given.
func NewCategory(id identifier.Identifier, nodes []*Node, sources []experience.Definition) *Category {
	c := &Category{
		ID:      id,
		nodes:   nodes,
		byID:    make(map[identifier.Identifier]*Node, len(nodes)),
		sources: sources,
	}
	for _, n := range nodes {
		c.byID[n.ID] = n
	}
	return c
}

// Nodes returns the nodes in declaration order.
func (c *Category) Nodes() []*Node {
	return c.nodes
}

// Node looks up a node.
func (c *Category) Node(id identifier.Identifier) (*Node, bool) {
	n, ok := c.byID[id]
	return n, ok
}

// Sources returns every experience source.
func (c *Category) Sources() []experience.Definition {
	return c.sources
}

// ItemSources returns the item experience sources.
func (c *Category) ItemSources() []*experience.ItemSource {
	var out []*experience.ItemSource
	for _, d := range c.sources {
		if s, ok := d.Source.(*experience.ItemSource); ok {
			out = append(out, s)
		}
	}
	return out
}

// TimeSources returns the time experience sources.
func (c *Category) TimeSources() []*experience.TimeSource {
	var out []*experience.TimeSource
	for _, d := range c.sources {
		if s, ok := d.Source.(*experience.TimeSource); ok {
			out = append(out, s)
		}
	}
	return out
}

// RewardCount returns the number of rewards across all nodes.
func (c *Category) RewardCount() int {
	n := 0
	for _, node := range c.nodes {
		n += len(node.Rewards)
	}
	return n
}
