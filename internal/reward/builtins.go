package reward

import (
	"github.com/lamali292/one-piece-api/internal/errors"
	"github.com/lamali292/one-piece-api/internal/pkg/idgen"
)

// BuiltinsConfig configures the built-in reward types.
type BuiltinsConfig struct {
	// ModifierIDs generates attribute modifier ids.
	ModifierIDs idgen.Generator
}

// Validate validates the BuiltinsConfig.
func (cfg *BuiltinsConfig) Validate() error {
	if cfg == nil {
		return errors.InvalidArgument("config cannot be nil")
	}
	if cfg.ModifierIDs == nil {
		return errors.InvalidArgument("modifier id generator is required")
	}
	return nil
}

// RegisterBuiltins registers the reward types shipped with the mod.
func RegisterBuiltins(reg *Registry, cfg *BuiltinsConfig) error {
	if err := cfg.Validate(); err != nil {
		return err
	}
	reg.Register(AttributeID, AttributeFactory(cfg.ModifierIDs))
	reg.Register(PassiveAbilityID, PassiveAbilityFactory)
	reg.Register(SpellContainerID, SpellContainerFactory)
	return nil
}
