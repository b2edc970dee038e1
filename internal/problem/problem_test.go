package problem_test

import (
	"testing"

	"github.com/stretchr/testify/suite"

	"github.com/lamali292/one-piece-api/internal/errors"
	"github.com/lamali292/one-piece-api/internal/problem"
)

type ProblemTestSuite struct {
	suite.Suite
}

func TestProblemSuite(t *testing.T) {
	suite.Run(t, new(ProblemTestSuite))
}

func (s *ProblemTestSuite) TestAtomic() {
	p := problem.At("data.value", "Expected number")
	s.Assert().False(p.IsComposite())
	s.Assert().Equal("Expected number at `data.value`", p.Error())

	p2 := problem.New("Passive ability reward must have at least one ability")
	s.Assert().Equal("Passive ability reward must have at least one ability", p2.Error())
}

func (s *ProblemTestSuite) TestCombineFlattens() {
	a := problem.New("a")
	b := problem.New("b")
	c := problem.New("c")

	nested := problem.Combine(problem.Combine(a), problem.Combine(b, c))
	flat := problem.Combine(a, b, c)

	s.Assert().Equal(flat.Leaves(), nested.Leaves())
	s.Assert().Equal([]string{"a", "b", "c"}, nested.Messages())
	s.Assert().True(nested.IsComposite())
}

func (s *ProblemTestSuite) TestCombineIsAssociative() {
	p1 := problem.Combine(problem.At("x", "one"), problem.At("y", "two"))
	p2 := problem.Combine(problem.At("z", "three"))
	p3 := problem.New("four")

	left := problem.Combine(problem.Combine(p1, p2), p3)
	right := problem.Combine(p1, problem.Combine(p2, p3))

	s.Assert().Equal(left.Messages(), right.Messages())
	s.Assert().Len(left.Leaves(), 4)
}

func (s *ProblemTestSuite) TestContains() {
	p := problem.Combine(problem.New("Missing field `attribute`"), problem.New("Unknown operation"))
	s.Assert().True(p.Contains("attribute"))
	s.Assert().False(p.Contains("spell"))
}

func (s *ProblemTestSuite) TestToError() {
	p := problem.Combine(problem.At("a", "first"), problem.At("b", "second"))
	err := p.ToError()

	s.Assert().True(errors.IsInvalidArgument(err))
	s.Assert().Equal([]string{"first at `a`", "second at `b`"}, err.Meta["problems"])
	s.Assert().Equal("INVALID_ARGUMENT: first at `a`; second at `b`", err.Error())
}

func (s *ProblemTestSuite) TestCollector() {
	var c problem.Collector
	_, ok := c.Problem()
	s.Assert().False(ok)

	c.Add(problem.New("one"))
	c.Add(problem.Problem{})
	c.Add(problem.Combine(problem.New("two"), problem.New("three")))

	s.Assert().Equal(2, c.Len())
	p, ok := c.Problem()
	s.Require().True(ok)
	s.Assert().Equal([]string{"one", "two", "three"}, p.Messages())
}
