package skill

import (
	"github.com/lamali292/one-piece-api/internal/calculation"
	"github.com/lamali292/one-piece-api/internal/entities/ability"
	"github.com/lamali292/one-piece-api/internal/experience"
	"github.com/lamali292/one-piece-api/internal/pkg/idgen"
	"github.com/lamali292/one-piece-api/internal/reward"
)

// Registries is the process-wide set of registries. It is built once at
// startup with every built-in registered and then frozen.
type Registries struct {
	Builtins   *calculation.Builtins
	Abilities  *ability.Registry
	Rewards    *reward.Registry
	Experience *experience.Registry
}

// RegistriesConfig configures NewRegistries.
type RegistriesConfig struct {
	// ModifierIDs generates attribute modifier ids. Defaults to a name
	// based generator so ids are stable between runs.
	ModifierIDs idgen.Generator
}

// NewRegistries registers every built-in and freezes the registries.
func NewRegistries(cfg *RegistriesConfig) (*Registries, error) {
	ids := idgen.Generator(idgen.NewNameBased("attribute_reward"))
	if cfg != nil && cfg.ModifierIDs != nil {
		ids = cfg.ModifierIDs
	}

	r := &Registries{
		Builtins:   calculation.NewBuiltins(),
		Abilities:  ability.NewRegistry(),
		Rewards:    reward.NewRegistry(),
		Experience: experience.NewRegistry(),
	}

	if err := ability.RegisterBuiltins(r.Abilities); err != nil {
		return nil, err
	}
	if err := reward.RegisterBuiltins(r.Rewards, &reward.BuiltinsConfig{ModifierIDs: ids}); err != nil {
		return nil, err
	}
	if err := experience.RegisterBuiltins(r.Experience, r.Builtins); err != nil {
		return nil, err
	}

	r.Abilities.Freeze()
	r.Rewards.Freeze()
	r.Experience.Freeze()
	return r, nil
}
