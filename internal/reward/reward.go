// Package reward is the extension point for effects a skill node grants as
// its unlocked tier changes. Reward types are registered as factories keyed
// by identifier; each factory parses its data into a Reward.
//
// A Reward's Update recomputes the whole effect from the count it is given,
// so calling it twice with the same count is the same as calling it once
// and a lower count retracts whatever belonged to higher tiers.
package reward

import (
	"github.com/KirkDiggler/rpg-toolkit/core"

	"github.com/lamali292/one-piece-api/internal/entities/attribute"
	"github.com/lamali292/one-piece-api/internal/entities/spell"
	"github.com/lamali292/one-piece-api/internal/identifier"
	"github.com/lamali292/one-piece-api/internal/jsonvalue"
	"github.com/lamali292/one-piece-api/internal/result"
)

//go:generate mockgen -destination=mock/mock_reward.go -package=rewardmock github.com/lamali292/one-piece-api/internal/reward Reward

// UpdateContext is passed to Reward.Update.
type UpdateContext struct {
	Player core.Entity
	// Count is the unlocked tier of the owning node. Zero or less means
	// nothing is unlocked.
	Count int
}

// DisposeContext is passed to Reward.Dispose.
type DisposeContext struct {
	Player core.Entity
}

// Reward is a parsed, active reward instance.
type Reward interface {
	Update(ctx UpdateContext) error
	// Dispose releases what the reward holds on the player. It must be
	// safe on a reward that was never updated.
	Dispose(ctx DisposeContext) error
}

// Encoder is implemented by rewards that can write their data back out.
type Encoder interface {
	ToJSON() ([]byte, error)
}

// Factory parses the data of one reward type.
type Factory func(ctx jsonvalue.ConfigContext) result.Result[Reward]

// AttributeOwner is a player with attribute modifiers.
type AttributeOwner interface {
	AddModifier(attr identifier.Identifier, m attribute.Modifier) error
	RemoveModifier(attr identifier.Identifier, modifierID string) error
}

// AbilityOwner is a player with passive abilities.
type AbilityOwner interface {
	ActivateAbility(id identifier.Identifier) error
	DeactivateAbility(id identifier.Identifier)
}

// SpellContainerOwner is a player with spell containers.
type SpellContainerOwner interface {
	PutSpellContainer(key string, c spell.Container)
	RemoveSpellContainer(key string)
	MarkSpellsDirty()
}

// TierIndex maps an unlock count onto one of n tiers. It reports false when
// nothing should be active.
func TierIndex(count, n int) (int, bool) {
	if count <= 0 || n <= 0 {
		return 0, false
	}
	return min(count-1, n-1), true
}
