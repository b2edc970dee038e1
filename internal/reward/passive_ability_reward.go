package reward

import (
	"github.com/lamali292/one-piece-api/internal/identifier"
	"github.com/lamali292/one-piece-api/internal/jsonvalue"
	"github.com/lamali292/one-piece-api/internal/problem"
	"github.com/lamali292/one-piece-api/internal/result"
)

// PassiveAbilityID is the type id of PassiveAbilityReward.
var PassiveAbilityID = identifier.Mod("passive_ability")

const errNoAbilities = "Passive ability reward must have at least one ability"

// PassiveAbilityReward activates one ability per tier. Only the ability of
// the current tier is active at a time.
type PassiveAbilityReward struct {
	Abilities []identifier.Identifier
}

var (
	_ Reward  = (*PassiveAbilityReward)(nil)
	_ Encoder = (*PassiveAbilityReward)(nil)
)

// PassiveAbilityFactory is the factory for PassiveAbilityReward.
func PassiveAbilityFactory(ctx jsonvalue.ConfigContext) result.Result[Reward] {
	return result.AndThen(ctx.Data(), func(e jsonvalue.Element) result.Result[Reward] {
		return result.Map(parsePassiveAbility(e), func(r *PassiveAbilityReward) Reward { return r })
	})
}

func parsePassiveAbility(e jsonvalue.Element) result.Result[*PassiveAbilityReward] {
	return result.AndThen(e.AsObject(), func(obj jsonvalue.Object) result.Result[*PassiveAbilityReward] {
		return jsonvalue.NoUnused(obj, func(o jsonvalue.Object) result.Result[*PassiveAbilityReward] {
			abilities := result.AndThen(result.AndThen(o.Get("abilities"), jsonvalue.Element.AsArray),
				func(arr jsonvalue.Array) result.Result[[]identifier.Identifier] {
					if arr.Len() == 0 {
						return result.Failure[[]identifier.Identifier](problem.At(arr.Path(), errNoAbilities))
					}
					return jsonvalue.ParseEach(arr, jsonvalue.Element.AsIdentifier)
				})
			return result.Map(abilities, func(ids []identifier.Identifier) *PassiveAbilityReward {
				return &PassiveAbilityReward{Abilities: ids}
			})
		})
	})
}

// Update deactivates every managed ability and activates the one for the
// current tier.
func (r *PassiveAbilityReward) Update(ctx UpdateContext) error {
	owner, ok := ctx.Player.(AbilityOwner)
	if !ok {
		return missingCapability(ctx.Player, "passive abilities")
	}
	for _, id := range r.Abilities {
		owner.DeactivateAbility(id)
	}
	if i, ok := TierIndex(ctx.Count, len(r.Abilities)); ok {
		return owner.ActivateAbility(r.Abilities[i])
	}
	return nil
}

// Dispose deactivates every managed ability.
func (r *PassiveAbilityReward) Dispose(ctx DisposeContext) error {
	owner, ok := ctx.Player.(AbilityOwner)
	if !ok {
		return missingCapability(ctx.Player, "passive abilities")
	}
	for _, id := range r.Abilities {
		owner.DeactivateAbility(id)
	}
	return nil
}

// ToJSON implements Encoder.
func (r *PassiveAbilityReward) ToJSON() ([]byte, error) {
	ids := make([]string, len(r.Abilities))
	for i, id := range r.Abilities {
		ids[i] = id.String()
	}
	return jsonvalue.NewBuilder().Set("abilities", ids).Bytes()
}
