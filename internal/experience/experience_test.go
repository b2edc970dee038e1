package experience_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/suite"

	"github.com/lamali292/one-piece-api/internal/calculation"
	"github.com/lamali292/one-piece-api/internal/entities/item"
	"github.com/lamali292/one-piece-api/internal/errors"
	"github.com/lamali292/one-piece-api/internal/experience"
	"github.com/lamali292/one-piece-api/internal/identifier"
	"github.com/lamali292/one-piece-api/internal/jsonvalue"
	"github.com/lamali292/one-piece-api/internal/result"
)

type leveledPlayer struct {
	level int
}

func (p *leveledPlayer) GetID() string   { return "player-1" }
func (p *leveledPlayer) GetType() string { return "player" }
func (p *leveledPlayer) Level() int      { return p.level }

type ExperienceTestSuite struct {
	suite.Suite
	registry *experience.Registry
	warnings *jsonvalue.Warnings
	player   *leveledPlayer
}

func TestExperienceSuite(t *testing.T) {
	suite.Run(t, new(ExperienceTestSuite))
}

func (s *ExperienceTestSuite) SetupTest() {
	s.registry = experience.NewRegistry()
	s.Require().NoError(experience.RegisterBuiltins(s.registry, calculation.NewBuiltins()))
	s.registry.Freeze()
	s.warnings = &jsonvalue.Warnings{}
	s.player = &leveledPlayer{level: 4}
}

func (s *ExperienceTestSuite) element(raw string) jsonvalue.Element {
	e, ok := jsonvalue.Parse([]byte(raw)).Get()
	s.Require().True(ok, "invalid json %s", raw)
	return e
}

func (s *ExperienceTestSuite) parse(typeID identifier.Identifier, data string) result.Result[experience.Source] {
	factory, ok := s.registry.Get(typeID)
	s.Require().True(ok)
	return factory(jsonvalue.ForElement(s.element(data), s.warnings))
}

func (s *ExperienceTestSuite) itemSource(data string) *experience.ItemSource {
	src, err := s.parse(experience.ItemID, data).Unwrap()
	s.Require().NoError(err)
	item, ok := src.(*experience.ItemSource)
	s.Require().True(ok)
	return item
}

func (s *ExperienceTestSuite) timeSource(data string) *experience.TimeSource {
	src, err := s.parse(experience.TimeID, data).Unwrap()
	s.Require().NoError(err)
	ts, ok := src.(*experience.TimeSource)
	s.Require().True(ok)
	return ts
}

func (s *ExperienceTestSuite) stack(count, xp int) *item.Stack {
	return item.NewStack(identifier.Mod("devil_fruit"), count).WithXP(xp)
}

func (s *ExperienceTestSuite) TestItemScenario() {
	src := s.itemSource(`{"experience":"get_xp() * get_count()"}`)
	s.Assert().Equal(15, src.Value(s.player, s.stack(3, 5)))
}

func (s *ExperienceTestSuite) TestItemFormulas() {
	testCases := []struct {
		name     string
		data     string
		expected int
	}{
		{name: "constant", data: `{"experience":12}`, expected: 12},
		{name: "rounds half up", data: `{"experience":"get_xp() / 2"}`, expected: 3},
		{name: "rounds down below half", data: `{"experience":"get_xp() / 3"}`, expected: 2},
		{name: "chained stack", data: `{"experience":"get_item_stack().get_count() + 1"}`, expected: 4},
		{name: "chained player", data: `{"experience":"get_player().get_level() * 10"}`, expected: 40},
		{
			name:     "variables",
			data:     `{"variables":{"base":"get_xp() * get_count()","bonus":"base * 0.1"},"experience":"base + bonus"}`,
			expected: 17,
		},
		{name: "namespaced operation", data: `{"experience":"one_piece_api:get_count()"}`, expected: 3},
	}

	for _, tc := range testCases {
		s.Run(tc.name, func() {
			src := s.itemSource(tc.data)
			s.Assert().Equal(tc.expected, src.Value(s.player, s.stack(3, 5)))
		})
	}
}

func (s *ExperienceTestSuite) TestItemWithoutComponent() {
	src := s.itemSource(`{"experience":"get_xp() * get_count()"}`)
	s.Assert().Equal(0, src.Value(s.player, item.NewStack(identifier.Mod("apple"), 3)))
	s.Assert().Equal(0, src.Value(s.player, nil))
}

func (s *ExperienceTestSuite) TestUnusedVariableWarns() {
	s.itemSource(`{"variables":{"unused":"get_count()"},"experience":"get_xp()"}`)

	s.Require().Len(s.warnings.List(), 1)
	s.Assert().Contains(s.warnings.List()[0], "Unused variable `unused`")
}

func (s *ExperienceTestSuite) TestParseAggregatesProblems() {
	testCases := []struct {
		name     string
		data     string
		contains []string
	}{
		{
			name:     "missing experience",
			data:     `{}`,
			contains: []string{"Missing field `experience`"},
		},
		{
			name:     "bad variable and bad experience",
			data:     `{"variables":{"a":"get_mana()"},"experience":"get_xp() +"}`,
			contains: []string{"Unknown operation `get_mana`", "Unexpected end of expression"},
		},
		{
			name:     "unused field",
			data:     `{"experience":1,"multiplier":2}`,
			contains: []string{"Unused field `multiplier`"},
		},
		{
			name:     "not an object",
			data:     `[1]`,
			contains: []string{"Expected object but found array"},
		},
		{
			name:     "time operations only",
			data:     `{"experience":"get_ticks()"}`,
			contains: []string{"Unknown operation `get_ticks`"},
		},
	}

	for _, tc := range testCases {
		s.Run(tc.name, func() {
			p, failed := s.parse(experience.ItemID, tc.data).Problem()
			s.Require().True(failed)
			for _, want := range tc.contains {
				s.Assert().True(p.Contains(want), "missing %q in %v", want, p.Messages())
			}
		})
	}
}

func (s *ExperienceTestSuite) TestTimeSource() {
	src := s.timeSource(`{"variables":{"hours":"get_ticks() / 72000"},"experience":"hours * get_base_xp()"}`)

	s.Assert().Equal(50, src.Value(s.player, 72000, 50))
	s.Assert().Equal(25, src.Value(s.player, 36000, 50))
	s.Assert().Equal(0, src.Value(s.player, 0, 50))
}

func (s *ExperienceTestSuite) TestDispose() {
	item := s.itemSource(`{"experience":1}`)
	ts := s.timeSource(`{"experience":1}`)
	s.Assert().NoError(item.Dispose(experience.DisposeContext{Player: s.player}))
	s.Assert().NoError(ts.Dispose(experience.DisposeContext{}))
}

func (s *ExperienceTestSuite) TestRegistryParse() {
	def, err := s.registry.Parse(s.element(`{"type":"one_piece_api:time","data":{"experience":"get_base_xp()"}}`), s.warnings).Unwrap()
	s.Require().NoError(err)
	s.Assert().Equal(experience.TimeID, def.Type)

	p, failed := s.registry.Parse(s.element(`{"type":"one_piece_api:kill"}`), s.warnings).Problem()
	s.Require().True(failed)
	s.Assert().True(p.Contains("Expected a valid experience source type but found `one_piece_api:kill`"))
	s.Assert().True(p.Contains("Missing field `data`"))
}

func (s *ExperienceTestSuite) TestEnvelopeRoundTrip() {
	testCases := []struct {
		typeID identifier.Identifier
		data   string
	}{
		{experience.ItemID, `{"variables":{"base":"get_xp() * get_count()"},"experience":"base * 2"}`},
		{experience.ItemID, `{"experience":7}`},
		{experience.TimeID, `{"experience":"get_ticks() / 1200 + get_base_xp()"}`},
	}

	for _, tc := range testCases {
		s.Run(tc.typeID.String(), func() {
			original, err := s.parse(tc.typeID, tc.data).Unwrap()
			s.Require().NoError(err)

			envelope, err := experience.Envelope(tc.typeID, original)
			s.Require().NoError(err)

			def, err := s.registry.Parse(s.element(string(envelope)), s.warnings).Unwrap()
			s.Require().NoError(err)
			s.Assert().Equal(tc.typeID, def.Type)

			switch want := original.(type) {
			case *experience.ItemSource:
				got := def.Source.(*experience.ItemSource)
				stack := s.stack(3, 5)
				s.Assert().Equal(want.Value(s.player, stack), got.Value(s.player, stack))
			case *experience.TimeSource:
				got := def.Source.(*experience.TimeSource)
				s.Assert().Equal(want.Value(s.player, 2400, 50), got.Value(s.player, 2400, 50))
			}
		})
	}
}

func (s *ExperienceTestSuite) TestRegisterBuiltinsRequiresKinds() {
	err := experience.RegisterBuiltins(experience.NewRegistry(), nil)
	s.Assert().True(errors.IsInvalidArgument(err))
}

func (s *ExperienceTestSuite) TestRound() {
	s.Assert().Equal(3, experience.Round(2.5))
	s.Assert().Equal(2, experience.Round(2.49))
	s.Assert().Equal(-2, experience.Round(-2.5))
	s.Assert().Equal(0, experience.Round(0))

	s.Assert().Equal(0, experience.Round(math.NaN()))
	s.Assert().Equal(0, experience.Round(math.Inf(1)))
	s.Assert().Equal(0, experience.Round(math.Inf(-1)))
	s.Assert().Equal(math.MaxInt, experience.Round(1e20))
	s.Assert().Equal(math.MinInt, experience.Round(-1e20))
}

func (s *ExperienceTestSuite) TestAddSaturates() {
	s.Assert().Equal(7, experience.Add(3, 4))
	s.Assert().Equal(math.MaxInt, experience.Add(math.MaxInt, 1))
	s.Assert().Equal(math.MinInt, experience.Add(math.MinInt, -1))
}

func (s *ExperienceTestSuite) TestItemSourceNonFiniteIsZero() {
	src := s.itemSource(`{"experience":"get_xp() / (get_count() - 1)"}`)
	s.Assert().Equal(0, src.Value(s.player, s.stack(1, 5)), "division by zero")
	s.Assert().Equal(0, src.Value(s.player, s.stack(1, 0)), "zero over zero")
	s.Assert().Equal(5, src.Value(s.player, s.stack(2, 5)))
}

func (s *ExperienceTestSuite) TestTimeConfig() {
	cfg := experience.DefaultTimeConfig()
	s.Require().NoError(cfg.Validate())
	s.Assert().Equal(int64(72000), cfg.IntervalTicks())
	s.Assert().Equal("50 XP every 60 minutes", cfg.String())

	bad := experience.TimeConfig{XPAmount: -1, IntervalMinutes: 0}
	err := bad.Validate()
	s.Require().Error(err)
	s.Assert().True(errors.IsInvalidArgument(err))
	s.Assert().Contains(err.Error(), "xp_amount")
	s.Assert().Contains(err.Error(), "interval_minutes")
}
