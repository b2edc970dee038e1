package reward

import (
	"strings"

	"github.com/lamali292/one-piece-api/internal/entities/attribute"
	"github.com/lamali292/one-piece-api/internal/errors"
	"github.com/lamali292/one-piece-api/internal/identifier"
	"github.com/lamali292/one-piece-api/internal/jsonvalue"
	"github.com/lamali292/one-piece-api/internal/pkg/idgen"
	"github.com/lamali292/one-piece-api/internal/problem"
	"github.com/lamali292/one-piece-api/internal/result"
)

// AttributeID is the type id of AttributeReward.
var AttributeID = identifier.Mod("attribute")

// AttributeReward adds value*count to an attribute through one modifier.
type AttributeReward struct {
	Attribute  identifier.Identifier
	Value      float64
	Operation  attribute.Operation
	ModifierID string
}

var (
	_ Reward  = (*AttributeReward)(nil)
	_ Encoder = (*AttributeReward)(nil)
)

// AttributeFactory returns the factory for AttributeReward. Every parsed
// reward gets its own modifier id from ids.
func AttributeFactory(ids idgen.Generator) Factory {
	return func(ctx jsonvalue.ConfigContext) result.Result[Reward] {
		return result.AndThen(ctx.Data(), func(e jsonvalue.Element) result.Result[Reward] {
			return result.Map(parseAttribute(e, ids), func(r *AttributeReward) Reward { return r })
		})
	}
}

func parseAttribute(e jsonvalue.Element, ids idgen.Generator) result.Result[*AttributeReward] {
	return result.AndThen(e.AsObject(), func(obj jsonvalue.Object) result.Result[*AttributeReward] {
		return jsonvalue.NoUnused(obj, func(o jsonvalue.Object) result.Result[*AttributeReward] {
			var c problem.Collector

			attr, _ := result.Track(result.AndThen(o.Get("attribute"), jsonvalue.Element.AsIdentifier), &c)
			value, _ := result.Track(result.AndThen(o.Get("value"), jsonvalue.Element.AsNumber), &c)
			op, _ := result.Track(result.AndThen(o.Get("operation"), parseOperation), &c)

			if p, failed := c.Problem(); failed {
				return result.Failure[*AttributeReward](p)
			}
			return result.Success(&AttributeReward{
				Attribute:  attr,
				Value:      value,
				Operation:  op,
				ModifierID: ids.Generate(),
			})
		})
	})
}

func parseOperation(e jsonvalue.Element) result.Result[attribute.Operation] {
	return result.AndThen(e.AsString(), func(s string) result.Result[attribute.Operation] {
		if op, ok := attribute.ParseOperation(s); ok {
			return result.Success(op)
		}
		names := make([]string, len(attribute.Operations))
		for i, op := range attribute.Operations {
			names[i] = string(op)
		}
		return result.Failure[attribute.Operation](problem.Atf(e.Path(),
			"Expected a valid operation (%s) but found `%s`", strings.Join(names, ", "), s))
	})
}

// Update replaces the modifier with one scaled by the count, or removes it
// when nothing is unlocked.
func (r *AttributeReward) Update(ctx UpdateContext) error {
	owner, ok := ctx.Player.(AttributeOwner)
	if !ok {
		return missingCapability(ctx.Player, "attribute modifiers")
	}
	if ctx.Count <= 0 {
		return r.remove(owner)
	}
	return owner.AddModifier(r.Attribute, attribute.Modifier{
		ID:        r.ModifierID,
		Amount:    r.Value * float64(ctx.Count),
		Operation: r.Operation,
	})
}

// Dispose removes the modifier.
func (r *AttributeReward) Dispose(ctx DisposeContext) error {
	owner, ok := ctx.Player.(AttributeOwner)
	if !ok {
		return missingCapability(ctx.Player, "attribute modifiers")
	}
	return r.remove(owner)
}

// remove drops the modifier. An attribute the player does not have holds
// no modifier, so there is nothing to undo.
func (r *AttributeReward) remove(owner AttributeOwner) error {
	if err := owner.RemoveModifier(r.Attribute, r.ModifierID); err != nil && !errors.IsNotFound(err) {
		return err
	}
	return nil
}

// ToJSON implements Encoder.
func (r *AttributeReward) ToJSON() ([]byte, error) {
	return jsonvalue.NewBuilder().
		Set("attribute", r.Attribute.String()).
		Set("value", r.Value).
		Set("operation", string(r.Operation)).
		Bytes()
}
