package ability_test

import (
	"context"
	"testing"

	"github.com/KirkDiggler/rpg-toolkit/core"
	"github.com/stretchr/testify/suite"

	"github.com/lamali292/one-piece-api/internal/entities/ability"
	"github.com/lamali292/one-piece-api/internal/errors"
	"github.com/lamali292/one-piece-api/internal/identifier"
)

type testPlayer struct {
	id        string
	effects   []ability.StatusEffect
	abilities *ability.PlayerAbilities
	swimming  bool
}

func (p *testPlayer) GetID() string                          { return p.id }
func (p *testPlayer) GetType() string                        { return "player" }
func (p *testPlayer) Abilities() *ability.PlayerAbilities    { return p.abilities }
func (p *testPlayer) AddStatusEffect(e ability.StatusEffect) { p.effects = append(p.effects, e) }

type plainEntity struct{}

func (plainEntity) GetID() string   { return "npc" }
func (plainEntity) GetType() string { return "npc" }

type AbilityTestSuite struct {
	suite.Suite
	ctx      context.Context
	registry *ability.Registry
	player   *testPlayer
}

func TestAbilitySuite(t *testing.T) {
	suite.Run(t, new(AbilityTestSuite))
}

func (s *AbilityTestSuite) SetupTest() {
	s.ctx = context.Background()
	s.registry = ability.NewRegistry()
	s.Require().NoError(ability.RegisterBuiltins(s.registry))
	s.player = &testPlayer{id: "p1", abilities: ability.NewPlayerAbilities(s.registry)}
}

func (s *AbilityTestSuite) TestBuilderDefaults() {
	a, err := ability.NewBuilder(identifier.Mod("haki")).
		CustomEffect(func(context.Context, core.Entity) error { return nil }).
		Build()
	s.Require().NoError(err)

	s.Assert().Equal("haki", a.Name())
	s.Assert().Equal("", a.Description())
	s.Assert().Equal(1, a.CheckInterval())
	s.Assert().True(a.ShouldActivate(s.player))
}

func (s *AbilityTestSuite) TestBuilderRequiresEffect() {
	_, err := ability.NewBuilder(identifier.Mod("empty")).Build()
	s.Require().Error(err)
	s.Assert().True(errors.IsFailedPrecondition(err))
	s.Assert().Contains(err.Error(), "must have at least one effect")

	_, err = ability.NewBuilder(identifier.Mod("never")).
		StatusEffect(identifier.MustParse("speed"), 20, 0).
		CheckInterval(0).
		Build()
	s.Assert().True(errors.IsInvalidArgument(err))
}

func (s *AbilityTestSuite) TestTickHonoursIntervalAndCondition() {
	a, err := ability.NewBuilder(identifier.Mod("swim")).
		Condition(func(p core.Entity) bool { return p.(*testPlayer).swimming }).
		StatusEffect(identifier.MustParse("dolphins_grace"), 20, 0).
		CheckInterval(10).
		Build()
	s.Require().NoError(err)

	s.Require().NoError(a.Tick(s.ctx, s.player, 10))
	s.Assert().Empty(s.player.effects, "condition false")

	s.player.swimming = true
	s.Require().NoError(a.Tick(s.ctx, s.player, 11))
	s.Assert().Empty(s.player.effects, "off interval")

	s.Require().NoError(a.Tick(s.ctx, s.player, 20))
	s.Require().Len(s.player.effects, 1)
	s.Assert().Equal("minecraft:dolphins_grace", s.player.effects[0].Effect.String())
	s.Assert().True(s.player.effects[0].ShowIcon)
}

func (s *AbilityTestSuite) TestStatusEffectNeedsHolder() {
	a, err := ability.NewBuilder(identifier.Mod("x")).StatusEffect(identifier.MustParse("speed"), 1, 0).Build()
	s.Require().NoError(err)

	err = a.ApplyEffects(s.ctx, plainEntity{})
	s.Assert().True(errors.IsFailedPrecondition(err))
}

func (s *AbilityTestSuite) TestRegistry() {
	s.Assert().True(s.registry.IsRegistered(ability.EnhancedSwimming))
	s.Assert().Len(s.registry.All(), 3)

	a, ok := s.registry.Get(ability.AquaticMastery)
	s.Require().True(ok)
	s.Assert().Equal("Aquatic Mastery", a.Name())

	s.Assert().Panics(func() {
		_ = ability.RegisterBuiltins(s.registry)
	})
}

func (s *AbilityTestSuite) TestPlayerAbilities() {
	abilities := s.player.abilities

	s.Require().NoError(abilities.Activate(ability.Regeneration))
	s.Require().NoError(abilities.Activate(ability.EnhancedSwimming))
	s.Assert().True(abilities.IsActive(ability.Regeneration))
	s.Assert().Equal([]identifier.Identifier{ability.EnhancedSwimming, ability.Regeneration}, abilities.Active())

	err := abilities.Activate(identifier.Mod("unknown"))
	s.Assert().True(errors.IsNotFound(err))

	abilities.Deactivate(ability.Regeneration)
	abilities.Deactivate(ability.Regeneration)
	s.Assert().False(abilities.IsActive(ability.Regeneration))
}

func (s *AbilityTestSuite) TestHandlerTicksActiveAbilities() {
	s.Require().NoError(s.player.abilities.Activate(ability.Regeneration))
	handler := ability.NewHandler()

	for i := 0; i < 160; i++ {
		handler.Tick(s.ctx, []ability.Subject{s.player})
	}

	s.Assert().Equal(int64(160), handler.Current())
	s.Assert().Len(s.player.effects, 2)
}
