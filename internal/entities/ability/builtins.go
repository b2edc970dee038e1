package ability

import (
	"github.com/lamali292/one-piece-api/internal/identifier"
)

// Built-in ability ids.
var (
	EnhancedSwimming = identifier.Mod("enhanced_swimming")
	AquaticMastery   = identifier.Mod("aquatic_mastery")
	Regeneration     = identifier.Mod("regeneration")
)

var (
	dolphinsGrace  = identifier.MustParse("minecraft:dolphins_grace")
	waterBreathing = identifier.MustParse("minecraft:water_breathing")
	regenerationFX = identifier.MustParse("minecraft:regeneration")
)

// RegisterBuiltins adds the abilities shipped with the mod.
func RegisterBuiltins(reg *Registry) error {
	builders := []*Builder{
		NewBuilder(EnhancedSwimming).
			Name("Enhanced Swimming").
			Description("Swim faster").
			StatusEffect(dolphinsGrace, 220, 0).
			CheckInterval(200),
		NewBuilder(AquaticMastery).
			Name("Aquatic Mastery").
			Description("Swim faster and breathe under water").
			StatusEffect(dolphinsGrace, 220, 1).
			StatusEffect(waterBreathing, 220, 0).
			CheckInterval(200),
		NewBuilder(Regeneration).
			Name("Regeneration").
			Description("Slowly regain health").
			StatusEffect(regenerationFX, 100, 0).
			CheckInterval(80),
	}

	for _, b := range builders {
		a, err := b.Build()
		if err != nil {
			return err
		}
		reg.Register(a)
	}
	return nil
}
