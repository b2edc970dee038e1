// Package experience is the extension point for rules that turn game
// activity into skill experience. Sources are registered as factories keyed
// by identifier. A Source only computes amounts; applying them to a player
// is the caller's job.
package experience

import (
	"math"

	"github.com/KirkDiggler/rpg-toolkit/core"

	"github.com/lamali292/one-piece-api/internal/calculation"
	"github.com/lamali292/one-piece-api/internal/jsonvalue"
	"github.com/lamali292/one-piece-api/internal/result"
)

// DisposeContext is passed to Source.Dispose.
type DisposeContext struct {
	Player core.Entity
}

// Source is a parsed experience source. Typed variants add a Value method
// over the data they are evaluated with.
type Source interface {
	Dispose(ctx DisposeContext) error
}

// Encoder is implemented by sources that can be written back as JSON data.
type Encoder interface {
	ToJSON() ([]byte, error)
}

// Factory parses the data of one source entry.
type Factory func(ctx jsonvalue.ConfigContext) result.Result[Source]

// Round converts a calculated amount to whole experience, rounding half up.
// NaN and infinities yield 0, finite amounts beyond the int range saturate.
func Round(x float64) int {
	if math.IsNaN(x) || math.IsInf(x, 0) {
		return 0
	}
	r := calculation.RoundHalfUp(x)
	switch {
	case r >= math.MaxInt:
		return math.MaxInt
	case r <= math.MinInt:
		return math.MinInt
	}
	return int(r)
}

// Add sums two amounts, saturating at the int range instead of wrapping.
func Add(a, b int) int {
	switch {
	case b > 0 && a > math.MaxInt-b:
		return math.MaxInt
	case b < 0 && a < math.MinInt-b:
		return math.MinInt
	}
	return a + b
}
