// Package attribute is the in-memory attribute table of a player. Totals
// follow the host game's modifier math:
//
//	total = (base + sum(add)) * (1 + sum(multiply_base)) * product(1 + multiply_total)
package attribute

import (
	"sort"

	"github.com/lamali292/one-piece-api/internal/errors"
	"github.com/lamali292/one-piece-api/internal/identifier"
)

// Operation is how a modifier combines with the base value.
type Operation string

// Modifier operations, named as they appear in data packs
const (
	OperationAddValue           Operation = "addition"
	OperationAddMultipliedBase  Operation = "multiply_base"
	OperationAddMultipliedTotal Operation = "multiply_total"
)

// Operations lists every valid operation.
var Operations = []Operation{OperationAddValue, OperationAddMultipliedBase, OperationAddMultipliedTotal}

// ParseOperation maps a data-pack string to an operation.
func ParseOperation(s string) (Operation, bool) {
	for _, op := range Operations {
		if string(op) == s {
			return op, true
		}
	}
	return "", false
}

// Well-known attributes.
var (
	MaxHealth      = identifier.MustParse("minecraft:generic.max_health")
	AttackDamage   = identifier.MustParse("minecraft:generic.attack_damage")
	AttackSpeed    = identifier.MustParse("minecraft:generic.attack_speed")
	MovementSpeed  = identifier.MustParse("minecraft:generic.movement_speed")
	Armor          = identifier.MustParse("minecraft:generic.armor")
	ArmorToughness = identifier.MustParse("minecraft:generic.armor_toughness")
	Luck           = identifier.MustParse("minecraft:generic.luck")
)

// Defaults returns the base values a fresh player starts with.
func Defaults() map[identifier.Identifier]float64 {
	return map[identifier.Identifier]float64{
		MaxHealth:      20,
		AttackDamage:   1,
		AttackSpeed:    4,
		MovementSpeed:  0.1,
		Armor:          0,
		ArmorToughness: 0,
		Luck:           0,
	}
}

// Modifier is one contribution to an attribute. Modifiers are keyed by ID
// so re-adding one replaces it.
type Modifier struct {
	ID        string    `json:"id"`
	Amount    float64   `json:"amount"`
	Operation Operation `json:"operation"`
}

type instance struct {
	base      float64
	modifiers map[string]Modifier
}

// Container holds the attributes of one player.
type Container struct {
	attributes map[identifier.Identifier]*instance
}

// NewContainer creates a container with the given base values.
func NewContainer(bases map[identifier.Identifier]float64) *Container {
	c := &Container{attributes: make(map[identifier.Identifier]*instance, len(bases))}
	for id, base := range bases {
		c.attributes[id] = &instance{base: base, modifiers: make(map[string]Modifier)}
	}
	return c
}

func (c *Container) get(id identifier.Identifier) (*instance, error) {
	inst, ok := c.attributes[id]
	if !ok {
		return nil, errors.NotFoundf("attribute %s not found", id).WithMeta("attribute", id.String())
	}
	return inst, nil
}

// Has reports whether the attribute exists.
func (c *Container) Has(id identifier.Identifier) bool {
	_, ok := c.attributes[id]
	return ok
}

// AddModifier adds or replaces a modifier on an attribute.
func (c *Container) AddModifier(id identifier.Identifier, m Modifier) error {
	if m.ID == "" {
		return errors.InvalidArgument("modifier ID cannot be empty")
	}
	if _, ok := ParseOperation(string(m.Operation)); !ok {
		return errors.InvalidArgumentf("unknown modifier operation %q", m.Operation)
	}
	inst, err := c.get(id)
	if err != nil {
		return err
	}
	inst.modifiers[m.ID] = m
	return nil
}

// RemoveModifier removes a modifier. Removing an absent modifier is a no-op.
func (c *Container) RemoveModifier(id identifier.Identifier, modifierID string) error {
	inst, err := c.get(id)
	if err != nil {
		return err
	}
	delete(inst.modifiers, modifierID)
	return nil
}

// Modifiers returns the modifiers of an attribute ordered by ID.
func (c *Container) Modifiers(id identifier.Identifier) []Modifier {
	inst, ok := c.attributes[id]
	if !ok {
		return nil
	}
	out := make([]Modifier, 0, len(inst.modifiers))
	for _, m := range inst.modifiers {
		out = append(out, m)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out
}

// Base returns the base value of an attribute.
func (c *Container) Base(id identifier.Identifier) (float64, error) {
	inst, err := c.get(id)
	if err != nil {
		return 0, err
	}
	return inst.base, nil
}

// Value returns the total of an attribute.
func (c *Container) Value(id identifier.Identifier) (float64, error) {
	inst, err := c.get(id)
	if err != nil {
		return 0, err
	}

	add, mulBase, mulTotal := 0.0, 0.0, 1.0
	for _, m := range inst.modifiers {
		switch m.Operation {
		case OperationAddValue:
			add += m.Amount
		case OperationAddMultipliedBase:
			mulBase += m.Amount
		case OperationAddMultipliedTotal:
			mulTotal *= 1 + m.Amount
		}
	}
	return (inst.base + add) * (1 + mulBase) * mulTotal, nil
}

// Snapshot returns every attribute total keyed by its string id.
func (c *Container) Snapshot() map[string]float64 {
	out := make(map[string]float64, len(c.attributes))
	for id := range c.attributes {
		v, _ := c.Value(id)
		out[id.String()] = v
	}
	return out
}
