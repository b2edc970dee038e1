// Package ability implements passive abilities: lightweight effects that
// are checked on an interval while a player has them active.
package ability

import (
	"context"

	"github.com/KirkDiggler/rpg-toolkit/core"

	"github.com/lamali292/one-piece-api/internal/errors"
	"github.com/lamali292/one-piece-api/internal/identifier"
)

// Condition decides whether an ability fires for a player.
type Condition func(player core.Entity) bool

// Effect is applied to a player when an ability fires.
type Effect interface {
	Apply(ctx context.Context, player core.Entity) error
}

// EffectFunc adapts a function to Effect.
type EffectFunc func(ctx context.Context, player core.Entity) error

// Apply calls f.
func (f EffectFunc) Apply(ctx context.Context, player core.Entity) error {
	return f(ctx, player)
}

// StatusHolder is implemented by players that can carry status effects.
type StatusHolder interface {
	AddStatusEffect(effect StatusEffect)
}

// StatusEffect grants a timed status effect.
type StatusEffect struct {
	Effect        identifier.Identifier `json:"effect"`
	Duration      int                   `json:"duration"`
	Amplifier     int                   `json:"amplifier"`
	Ambient       bool                  `json:"ambient,omitempty"`
	ShowParticles bool                  `json:"show_particles,omitempty"`
	ShowIcon      bool                  `json:"show_icon,omitempty"`
}

// Apply adds the status effect to the player.
func (e StatusEffect) Apply(_ context.Context, player core.Entity) error {
	holder, ok := player.(StatusHolder)
	if !ok {
		return errors.FailedPreconditionf("player %s cannot hold status effects", player.GetID())
	}
	holder.AddStatusEffect(e)
	return nil
}

// PassiveAbility is an immutable ability definition. Build it with Builder.
type PassiveAbility struct {
	id            identifier.Identifier
	name          string
	description   string
	condition     Condition
	effects       []Effect
	checkInterval int
}

// ID returns the ability id.
func (a *PassiveAbility) ID() identifier.Identifier { return a.id }

// Name returns the display name.
func (a *PassiveAbility) Name() string { return a.name }

// Description returns the display description.
func (a *PassiveAbility) Description() string { return a.description }

// CheckInterval returns how often, in ticks, the condition is checked.
func (a *PassiveAbility) CheckInterval() int { return a.checkInterval }

// ShouldActivate evaluates the condition.
func (a *PassiveAbility) ShouldActivate(player core.Entity) bool {
	return a.condition(player)
}

// ApplyEffects applies every effect and returns the first failure.
func (a *PassiveAbility) ApplyEffects(ctx context.Context, player core.Entity) error {
	var first error
	for _, effect := range a.effects {
		if err := effect.Apply(ctx, player); err != nil && first == nil {
			first = errors.Wrapf(err, "ability %s effect failed", a.id)
		}
	}
	return first
}

// Tick fires the ability when tick falls on its interval and the condition
// holds.
func (a *PassiveAbility) Tick(ctx context.Context, player core.Entity, tick int64) error {
	if tick%int64(a.checkInterval) != 0 {
		return nil
	}
	if !a.ShouldActivate(player) {
		return nil
	}
	return a.ApplyEffects(ctx, player)
}

// Builder assembles a PassiveAbility.
type Builder struct {
	id            identifier.Identifier
	name          string
	description   string
	condition     Condition
	effects       []Effect
	checkInterval int
}

// NewBuilder starts an ability that always fires, checks every tick and is
// named after its id path.
func NewBuilder(id identifier.Identifier) *Builder {
	return &Builder{
		id:            id,
		name:          id.Path(),
		condition:     func(core.Entity) bool { return true },
		checkInterval: 1,
	}
}

// Name sets the display name.
func (b *Builder) Name(name string) *Builder {
	b.name = name
	return b
}

// Description sets the display description.
func (b *Builder) Description(description string) *Builder {
	b.description = description
	return b
}

// Condition sets the activation condition.
func (b *Builder) Condition(condition Condition) *Builder {
	b.condition = condition
	return b
}

// StatusEffect adds a status effect shown with an icon and no particles.
func (b *Builder) StatusEffect(effect identifier.Identifier, durationTicks, amplifier int) *Builder {
	return b.Effect(StatusEffect{Effect: effect, Duration: durationTicks, Amplifier: amplifier, ShowIcon: true})
}

// CustomEffect adds an arbitrary action.
func (b *Builder) CustomEffect(fn func(ctx context.Context, player core.Entity) error) *Builder {
	return b.Effect(EffectFunc(fn))
}

// Effect adds an effect.
func (b *Builder) Effect(effect Effect) *Builder {
	b.effects = append(b.effects, effect)
	return b
}

// CheckInterval sets how often, in ticks, the condition is checked.
func (b *Builder) CheckInterval(ticks int) *Builder {
	b.checkInterval = ticks
	return b
}

// Build validates and returns the ability.
func (b *Builder) Build() (*PassiveAbility, error) {
	if len(b.effects) == 0 {
		return nil, errors.FailedPreconditionf("passive ability %s must have at least one effect", b.id)
	}
	if b.checkInterval < 1 {
		return nil, errors.InvalidArgumentf("passive ability %s check interval must be at least 1", b.id)
	}
	if b.condition == nil {
		return nil, errors.InvalidArgumentf("passive ability %s condition cannot be nil", b.id)
	}

	effects := make([]Effect, len(b.effects))
	copy(effects, b.effects)
	return &PassiveAbility{
		id:            b.id,
		name:          b.name,
		description:   b.description,
		condition:     b.condition,
		effects:       effects,
		checkInterval: b.checkInterval,
	}, nil
}
