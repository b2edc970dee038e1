package calculation

import (
	"github.com/KirkDiggler/rpg-toolkit/core"

	"github.com/lamali292/one-piece-api/internal/entities/item"
	"github.com/lamali292/one-piece-api/internal/identifier"
)

// Number is the kind of every arithmetic value. It has no operations.
var Number = newNumber()

func newNumber() *Prototype[float64] {
	p := NewPrototype[float64](identifier.Mod("number"))
	p.Seal()
	return p
}

// Leveled is implemented by players that expose an experience level.
type Leveled interface {
	Level() int
}

// Builtins holds the kinds shared by every context prototype. It is built
// once at startup and passed to whatever registers context prototypes.
type Builtins struct {
	Number    *Prototype[float64]
	Player    *Prototype[core.Entity]
	ItemStack *Prototype[*item.Stack]
}

// NewBuiltins creates and seals the built-in kinds.
func NewBuiltins() *Builtins {
	player := NewPrototype[core.Entity](identifier.Mod("player"))
	RegisterOperation(player, identifier.Mod("get_level"), Number, func(p core.Entity) float64 {
		if l, ok := p.(Leveled); ok {
			return float64(l.Level())
		}
		return 0
	})
	player.Seal()

	stack := NewPrototype[*item.Stack](identifier.Mod("item_stack"))
	RegisterOperation(stack, identifier.Mod("get_count"), Number, StackCount)
	RegisterOperation(stack, identifier.Mod("get_xp"), Number, StackXP)
	stack.Seal()

	return &Builtins{
		Number:    Number,
		Player:    player,
		ItemStack: stack,
	}
}

// StackCount projects a stack to its count.
func StackCount(s *item.Stack) float64 {
	if s == nil {
		return 0
	}
	return float64(s.Count)
}

// StackXP projects a stack to its XP component, zero when absent.
func StackXP(s *item.Stack) float64 {
	xp, _ := s.ExperienceComponent()
	return float64(xp)
}
