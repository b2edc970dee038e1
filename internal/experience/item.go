package experience

import (
	"github.com/KirkDiggler/rpg-toolkit/core"

	"github.com/lamali292/one-piece-api/internal/calculation"
	"github.com/lamali292/one-piece-api/internal/entities/item"
	"github.com/lamali292/one-piece-api/internal/identifier"
	"github.com/lamali292/one-piece-api/internal/jsonvalue"
	"github.com/lamali292/one-piece-api/internal/result"
)

// ItemID is the type id of ItemSource.
var ItemID = identifier.Mod("item")

// ItemData is what an item formula is evaluated with.
type ItemData struct {
	Player core.Entity
	Stack  *item.Stack
}

// NewItemPrototype builds the sealed context kind for item formulas.
func NewItemPrototype(b *calculation.Builtins) *calculation.Prototype[ItemData] {
	p := calculation.NewPrototype[ItemData](ItemID)
	calculation.RegisterOperation(p, identifier.Mod("get_player"), b.Player, func(d ItemData) core.Entity {
		return d.Player
	})
	calculation.RegisterOperation(p, identifier.Mod("get_item_stack"), b.ItemStack, func(d ItemData) *item.Stack {
		return d.Stack
	})
	calculation.RegisterOperation(p, identifier.Mod("get_count"), b.Number, func(d ItemData) float64 {
		return calculation.StackCount(d.Stack)
	})
	calculation.RegisterOperation(p, identifier.Mod("get_xp"), b.Number, func(d ItemData) float64 {
		return calculation.StackXP(d.Stack)
	})
	p.Seal()
	return p
}

// ItemSource awards experience for items carrying an XP component.
type ItemSource struct {
	formula formula[ItemData]
}

var (
	_ Source  = (*ItemSource)(nil)
	_ Encoder = (*ItemSource)(nil)
)

// ItemFactory returns the factory for ItemSource bound to p.
func ItemFactory(p *calculation.Prototype[ItemData]) Factory {
	return func(ctx jsonvalue.ConfigContext) result.Result[Source] {
		return result.Map(parseFormula(ctx, p), func(f formula[ItemData]) Source {
			return &ItemSource{formula: f}
		})
	}
}

// Value computes the experience for a player receiving stack.
func (s *ItemSource) Value(player core.Entity, stack *item.Stack) int {
	return s.formula.evaluate(ItemData{Player: player, Stack: stack})
}

// Dispose holds no resources.
func (s *ItemSource) Dispose(DisposeContext) error {
	return nil
}

// ToJSON implements Encoder.
func (s *ItemSource) ToJSON() ([]byte, error) {
	return s.formula.toJSON()
}
