package attribute_test

import (
	"testing"

	"github.com/stretchr/testify/suite"

	"github.com/lamali292/one-piece-api/internal/entities/attribute"
	"github.com/lamali292/one-piece-api/internal/errors"
	"github.com/lamali292/one-piece-api/internal/identifier"
)

type AttributeTestSuite struct {
	suite.Suite
	container *attribute.Container
}

func TestAttributeSuite(t *testing.T) {
	suite.Run(t, new(AttributeTestSuite))
}

func (s *AttributeTestSuite) SetupTest() {
	s.container = attribute.NewContainer(attribute.Defaults())
}

func (s *AttributeTestSuite) value(id identifier.Identifier) float64 {
	v, err := s.container.Value(id)
	s.Require().NoError(err)
	return v
}

func (s *AttributeTestSuite) TestParseOperation() {
	for _, raw := range []string{"addition", "multiply_base", "multiply_total"} {
		op, ok := attribute.ParseOperation(raw)
		s.Assert().True(ok, raw)
		s.Assert().Equal(raw, string(op))
	}
	_, ok := attribute.ParseOperation("add_value")
	s.Assert().False(ok)
}

func (s *AttributeTestSuite) TestModifierMath() {
	s.Require().NoError(s.container.AddModifier(attribute.MaxHealth, attribute.Modifier{
		ID: "a", Amount: 4, Operation: attribute.OperationAddValue,
	}))
	s.Assert().Equal(24.0, s.value(attribute.MaxHealth))

	s.Require().NoError(s.container.AddModifier(attribute.MaxHealth, attribute.Modifier{
		ID: "b", Amount: 0.5, Operation: attribute.OperationAddMultipliedBase,
	}))
	s.Assert().Equal(36.0, s.value(attribute.MaxHealth))

	s.Require().NoError(s.container.AddModifier(attribute.MaxHealth, attribute.Modifier{
		ID: "c", Amount: 1, Operation: attribute.OperationAddMultipliedTotal,
	}))
	s.Assert().Equal(72.0, s.value(attribute.MaxHealth))
}

func (s *AttributeTestSuite) TestReplaceAndRemove() {
	mod := attribute.Modifier{ID: "skill", Amount: 2, Operation: attribute.OperationAddValue}
	s.Require().NoError(s.container.AddModifier(attribute.Armor, mod))
	s.Require().NoError(s.container.AddModifier(attribute.Armor, mod))
	s.Assert().Equal(2.0, s.value(attribute.Armor))
	s.Assert().Len(s.container.Modifiers(attribute.Armor), 1)

	mod.Amount = 6
	s.Require().NoError(s.container.AddModifier(attribute.Armor, mod))
	s.Assert().Equal(6.0, s.value(attribute.Armor))

	s.Require().NoError(s.container.RemoveModifier(attribute.Armor, "skill"))
	s.Require().NoError(s.container.RemoveModifier(attribute.Armor, "skill"))
	s.Assert().Equal(0.0, s.value(attribute.Armor))
}

func (s *AttributeTestSuite) TestUnknownAttribute() {
	unknown := identifier.MustParse("one_piece_api:devil_fruit_power")

	err := s.container.AddModifier(unknown, attribute.Modifier{ID: "x", Amount: 1, Operation: attribute.OperationAddValue})
	s.Assert().True(errors.IsNotFound(err))

	_, err = s.container.Value(unknown)
	s.Assert().True(errors.IsNotFound(err))
	s.Assert().False(s.container.Has(unknown))
}

func (s *AttributeTestSuite) TestInvalidModifier() {
	err := s.container.AddModifier(attribute.Luck, attribute.Modifier{Amount: 1, Operation: attribute.OperationAddValue})
	s.Assert().True(errors.IsInvalidArgument(err))

	err = s.container.AddModifier(attribute.Luck, attribute.Modifier{ID: "x", Amount: 1, Operation: "bogus"})
	s.Assert().True(errors.IsInvalidArgument(err))
}

func (s *AttributeTestSuite) TestSnapshot() {
	snapshot := s.container.Snapshot()
	s.Assert().Equal(20.0, snapshot["minecraft:generic.max_health"])
	s.Assert().Len(snapshot, len(attribute.Defaults()))
}
