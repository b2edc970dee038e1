package reward

import (
	"github.com/lamali292/one-piece-api/internal/entities/spell"
	"github.com/lamali292/one-piece-api/internal/identifier"
	"github.com/lamali292/one-piece-api/internal/jsonvalue"
	"github.com/lamali292/one-piece-api/internal/problem"
	"github.com/lamali292/one-piece-api/internal/result"
)

// SpellContainerID is the type id of SpellContainerReward.
var SpellContainerID = identifier.Mod("spell")

const errSpellContainer = "Failed to parse spell container reward"

// SpellContainerReward grants one spell container per tier. The container
// is stored under the id of the first spell of the first tier.
type SpellContainerReward struct {
	Key        string
	Containers []spell.Container
}

var (
	_ Reward  = (*SpellContainerReward)(nil)
	_ Encoder = (*SpellContainerReward)(nil)
)

// SpellContainerFactory is the factory for SpellContainerReward.
func SpellContainerFactory(ctx jsonvalue.ConfigContext) result.Result[Reward] {
	return result.AndThen(ctx.Data(), func(e jsonvalue.Element) result.Result[Reward] {
		return result.Map(parseSpellContainerReward(e), func(r *SpellContainerReward) Reward { return r })
	})
}

func parseSpellContainerReward(e jsonvalue.Element) result.Result[*SpellContainerReward] {
	return result.AndThen(e.AsObject(), func(obj jsonvalue.Object) result.Result[*SpellContainerReward] {
		return jsonvalue.NoUnused(obj, func(o jsonvalue.Object) result.Result[*SpellContainerReward] {
			containers := result.AndThen(result.AndThen(o.Get("containers"), jsonvalue.Element.AsArray),
				func(arr jsonvalue.Array) result.Result[[]spell.Container] {
					if arr.Len() == 0 {
						return result.Failure[[]spell.Container](problem.At(arr.Path(), errSpellContainer+": no containers"))
					}
					return jsonvalue.ParseEach(arr, parseSpellContainer)
				})

			return result.AndThen(containers, func(cs []spell.Container) result.Result[*SpellContainerReward] {
				if len(cs[0].SpellIDs) == 0 {
					return result.Failure[*SpellContainerReward](problem.At(o.Path(), errSpellContainer+": first container has no spells"))
				}
				return result.Success(&SpellContainerReward{
					Key:        cs[0].SpellIDs[0],
					Containers: cs,
				})
			})
		})
	})
}

func parseSpellContainer(e jsonvalue.Element) result.Result[spell.Container] {
	return result.AndThen(e.AsObject(), func(obj jsonvalue.Object) result.Result[spell.Container] {
		return jsonvalue.NoUnused(obj, func(o jsonvalue.Object) result.Result[spell.Container] {
			var c problem.Collector
			var container spell.Container

			if v, ok := o.Optional("content"); ok {
				container.Content, _ = result.Track(v.AsString(), &c)
			}
			if v, ok := o.Optional("is_proxy"); ok {
				container.Proxy, _ = result.Track(v.AsBool(), &c)
			}
			if v, ok := o.Optional("pool"); ok {
				container.Pool, _ = result.Track(v.AsString(), &c)
			}
			if v, ok := o.Optional("slot"); ok {
				container.Slot, _ = result.Track(v.AsString(), &c)
			}
			if v, ok := o.Optional("max_spell_count"); ok {
				container.MaxSpellCount, _ = result.Track(v.AsInt(), &c)
			}

			ids, ok := result.Track(result.AndThen(result.AndThen(o.Get("spell_ids"), jsonvalue.Element.AsArray),
				func(arr jsonvalue.Array) result.Result[[]identifier.Identifier] {
					return jsonvalue.ParseEach(arr, jsonvalue.Element.AsIdentifier)
				}), &c)
			if ok {
				container.SpellIDs = make([]string, len(ids))
				for i, id := range ids {
					container.SpellIDs[i] = id.String()
				}
			}

			if p, failed := c.Problem(); failed {
				return result.Failure[spell.Container](p)
			}
			return result.Success(container)
		})
	})
}

// Update removes the container and puts back the one for the current tier.
func (r *SpellContainerReward) Update(ctx UpdateContext) error {
	owner, ok := ctx.Player.(SpellContainerOwner)
	if !ok {
		return missingCapability(ctx.Player, "spell containers")
	}
	owner.RemoveSpellContainer(r.Key)
	if i, ok := TierIndex(ctx.Count, len(r.Containers)); ok {
		owner.PutSpellContainer(r.Key, r.Containers[i])
	}
	owner.MarkSpellsDirty()
	return nil
}

// Dispose removes the container.
func (r *SpellContainerReward) Dispose(ctx DisposeContext) error {
	owner, ok := ctx.Player.(SpellContainerOwner)
	if !ok {
		return missingCapability(ctx.Player, "spell containers")
	}
	owner.RemoveSpellContainer(r.Key)
	owner.MarkSpellsDirty()
	return nil
}

// ToJSON implements Encoder.
func (r *SpellContainerReward) ToJSON() ([]byte, error) {
	return jsonvalue.NewBuilder().Set("containers", r.Containers).Bytes()
}
