package entities

import (
	"github.com/lamali292/one-piece-api/internal/entities/ability"
	"github.com/lamali292/one-piece-api/internal/entities/attribute"
	"github.com/lamali292/one-piece-api/internal/entities/spell"
	"github.com/lamali292/one-piece-api/internal/errors"
	"github.com/lamali292/one-piece-api/internal/identifier"
)

// PlayerType is the entity type reported by every Player.
const PlayerType = "player"

// Player is the in-memory player collaborator. It owns the attribute table,
// the active passive abilities and the spell containers rewards act on.
type Player struct {
	id    string
	name  string
	level int

	attributes    *attribute.Container
	abilities     *ability.PlayerAbilities
	spells        *spell.Host
	statusEffects []ability.StatusEffect
}

// PlayerConfig contains the values needed to create a Player.
type PlayerConfig struct {
	ID    string
	Name  string
	Level int
	// Abilities resolves passive ability ids on activation.
	Abilities *ability.Registry
	// Attributes overrides attribute.Defaults when set.
	Attributes map[identifier.Identifier]float64
}

// Validate validates the PlayerConfig.
func (cfg *PlayerConfig) Validate() error {
	vb := errors.NewValidationBuilder()
	errors.ValidateRequired("id", cfg.ID, vb)
	errors.ValidateMin("level", cfg.Level, 0, vb)
	if cfg.Abilities == nil {
		vb.RequiredField("abilities")
	}
	return vb.Build()
}

// NewPlayer creates a player.
func NewPlayer(cfg *PlayerConfig) (*Player, error) {
	if cfg == nil {
		return nil, errors.InvalidArgument("config cannot be nil")
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	bases := cfg.Attributes
	if bases == nil {
		bases = attribute.Defaults()
	}
	name := cfg.Name
	if name == "" {
		name = cfg.ID
	}

	return &Player{
		id:         cfg.ID,
		name:       name,
		level:      cfg.Level,
		attributes: attribute.NewContainer(bases),
		abilities:  ability.NewPlayerAbilities(cfg.Abilities),
		spells:     spell.NewHost(),
	}, nil
}

// GetID implements core.Entity.
func (p *Player) GetID() string { return p.id }

// GetType implements core.Entity.
func (p *Player) GetType() string { return PlayerType }

// Name returns the display name.
func (p *Player) Name() string { return p.name }

// Level returns the experience level.
func (p *Player) Level() int { return p.level }

// SetLevel changes the experience level.
func (p *Player) SetLevel(level int) { p.level = level }

// Attributes returns the attribute table.
func (p *Player) Attributes() *attribute.Container { return p.attributes }

// Abilities returns the active passive abilities.
func (p *Player) Abilities() *ability.PlayerAbilities { return p.abilities }

// Spells returns the spell containers.
func (p *Player) Spells() *spell.Host { return p.spells }

// AddModifier adds or replaces an attribute modifier.
func (p *Player) AddModifier(attr identifier.Identifier, m attribute.Modifier) error {
	return p.attributes.AddModifier(attr, m)
}

// RemoveModifier removes an attribute modifier.
func (p *Player) RemoveModifier(attr identifier.Identifier, modifierID string) error {
	return p.attributes.RemoveModifier(attr, modifierID)
}

// ActivateAbility activates a registered passive ability.
func (p *Player) ActivateAbility(id identifier.Identifier) error {
	return p.abilities.Activate(id)
}

// DeactivateAbility deactivates a passive ability.
func (p *Player) DeactivateAbility(id identifier.Identifier) {
	p.abilities.Deactivate(id)
}

// PutSpellContainer stores a spell container.
func (p *Player) PutSpellContainer(key string, c spell.Container) {
	p.spells.Put(key, c)
}

// RemoveSpellContainer removes a spell container.
func (p *Player) RemoveSpellContainer(key string) {
	p.spells.Remove(key)
}

// MarkSpellsDirty flags the spell containers for sync.
func (p *Player) MarkSpellsDirty() {
	p.spells.MarkDirty()
}

// AddStatusEffect implements ability.StatusHolder.
func (p *Player) AddStatusEffect(e ability.StatusEffect) {
	p.statusEffects = append(p.statusEffects, e)
}

// StatusEffects returns the status effects received so far.
func (p *Player) StatusEffects() []ability.StatusEffect {
	out := make([]ability.StatusEffect, len(p.statusEffects))
	copy(out, p.statusEffects)
	return out
}

// PlayerSnapshot is a JSON view of a player.
type PlayerSnapshot struct {
	ID              string                          `json:"id"`
	Name            string                          `json:"name"`
	Level           int                             `json:"level"`
	Attributes      map[string]float64              `json:"attributes"`
	Modifiers       map[string][]attribute.Modifier `json:"modifiers,omitempty"`
	ActiveAbilities []string                        `json:"active_abilities"`
	SpellContainers map[string]spell.Container      `json:"spell_containers"`
	StatusEffects   []ability.StatusEffect          `json:"status_effects,omitempty"`
}

// Snapshot captures the current state.
func (p *Player) Snapshot() PlayerSnapshot {
	snapshot := PlayerSnapshot{
		ID:              p.id,
		Name:            p.name,
		Level:           p.level,
		Attributes:      p.attributes.Snapshot(),
		Modifiers:       make(map[string][]attribute.Modifier),
		ActiveAbilities: []string{},
		SpellContainers: make(map[string]spell.Container),
		StatusEffects:   p.StatusEffects(),
	}
	for key := range snapshot.Attributes {
		id := identifier.MustParse(key)
		if mods := p.attributes.Modifiers(id); len(mods) > 0 {
			snapshot.Modifiers[key] = mods
		}
	}
	for _, id := range p.abilities.Active() {
		snapshot.ActiveAbilities = append(snapshot.ActiveAbilities, id.String())
	}
	for _, key := range p.spells.Keys() {
		c, _ := p.spells.Get(key)
		snapshot.SpellContainers[key] = c
	}
	return snapshot
}
