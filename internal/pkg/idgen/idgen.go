// Package idgen generates modifier and entity identifiers.
package idgen

import (
	"fmt"
	"sync/atomic"

	"github.com/google/uuid"
)

// Generator yields a fresh identifier on every call.
type Generator interface {
	Generate() string
}

// SequentialGenerator yields prefix_1, prefix_2, ... and is safe for
// concurrent use. Tests use it for predictable modifier ids.
type SequentialGenerator struct {
	prefix  string
	counter uint64
}

// NewSequential returns a generator whose ids carry prefix. An empty prefix
// yields bare numbers.
func NewSequential(prefix string) *SequentialGenerator {
	return &SequentialGenerator{prefix: prefix}
}

func (g *SequentialGenerator) Generate() string {
	n := atomic.AddUint64(&g.counter, 1)
	if g.prefix != "" {
		return fmt.Sprintf("%s_%d", g.prefix, n)
	}
	return fmt.Sprintf("%d", n)
}

// NameBasedGenerator derives version 5 UUIDs from a name and a counter.
// Two generators with the same name yield the same sequence, so ids stay
// stable across restarts as long as definitions load in the same order.
type NameBasedGenerator struct {
	space   uuid.UUID
	name    string
	counter uint64
}

// NewNameBased creates a generator for the given name.
func NewNameBased(name string) *NameBasedGenerator {
	return &NameBasedGenerator{
		space: uuid.NewSHA1(uuid.NameSpaceURL, []byte("one_piece_api")),
		name:  name,
	}
}

// Generate returns the next UUID in the sequence.
func (g *NameBasedGenerator) Generate() string {
	n := atomic.AddUint64(&g.counter, 1)
	return uuid.NewSHA1(g.space, []byte(fmt.Sprintf("%s/%d", g.name, n))).String()
}
