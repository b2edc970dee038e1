package experience

import (
	"github.com/KirkDiggler/rpg-toolkit/core"

	"github.com/lamali292/one-piece-api/internal/calculation"
	"github.com/lamali292/one-piece-api/internal/identifier"
	"github.com/lamali292/one-piece-api/internal/jsonvalue"
	"github.com/lamali292/one-piece-api/internal/result"
)

// TimeID is the type id of TimeSource.
var TimeID = identifier.Mod("time")

// TimeData is what a time formula is evaluated with.
type TimeData struct {
	Player core.Entity
	Ticks  int
	// BaseXP is the configured amount per interval.
	BaseXP int
}

// NewTimePrototype builds the sealed context kind for time formulas.
func NewTimePrototype(b *calculation.Builtins) *calculation.Prototype[TimeData] {
	p := calculation.NewPrototype[TimeData](TimeID)
	calculation.RegisterOperation(p, identifier.Mod("get_player"), b.Player, func(d TimeData) core.Entity {
		return d.Player
	})
	calculation.RegisterOperation(p, identifier.Mod("get_ticks"), b.Number, func(d TimeData) float64 {
		return float64(d.Ticks)
	})
	calculation.RegisterOperation(p, identifier.Mod("get_base_xp"), b.Number, func(d TimeData) float64 {
		return float64(d.BaseXP)
	})
	p.Seal()
	return p
}

// TimeSource awards experience for time spent online.
type TimeSource struct {
	formula formula[TimeData]
}

var (
	_ Source  = (*TimeSource)(nil)
	_ Encoder = (*TimeSource)(nil)
)

// TimeFactory returns the factory for TimeSource bound to p.
func TimeFactory(p *calculation.Prototype[TimeData]) Factory {
	return func(ctx jsonvalue.ConfigContext) result.Result[Source] {
		return result.Map(parseFormula(ctx, p), func(f formula[TimeData]) Source {
			return &TimeSource{formula: f}
		})
	}
}

// Value computes the experience for ticks of elapsed play time.
func (s *TimeSource) Value(player core.Entity, ticks, baseXP int) int {
	return s.formula.evaluate(TimeData{Player: player, Ticks: ticks, BaseXP: baseXP})
}

// Dispose holds no resources.
func (s *TimeSource) Dispose(DisposeContext) error {
	return nil
}

// ToJSON implements Encoder.
func (s *TimeSource) ToJSON() ([]byte, error) {
	return s.formula.toJSON()
}
