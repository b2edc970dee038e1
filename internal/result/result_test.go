package result_test

import (
	"strconv"
	"testing"

	"github.com/stretchr/testify/suite"

	"github.com/lamali292/one-piece-api/internal/problem"
	"github.com/lamali292/one-piece-api/internal/result"
)

type ResultTestSuite struct {
	suite.Suite
}

func TestResultSuite(t *testing.T) {
	suite.Run(t, new(ResultTestSuite))
}

func (s *ResultTestSuite) TestSuccess() {
	r := result.Success(4)

	v, ok := r.Get()
	s.Assert().True(ok)
	s.Assert().Equal(4, v)
	s.Assert().True(r.IsSuccess())
	s.Assert().Equal(4, r.OrDefault(7))

	_, failed := r.Problem()
	s.Assert().False(failed)

	v, err := r.Unwrap()
	s.Assert().NoError(err)
	s.Assert().Equal(4, v)
}

func (s *ResultTestSuite) TestFailure() {
	r := result.Failure[int](problem.New("nope"))

	s.Assert().False(r.IsSuccess())
	s.Assert().Equal(7, r.OrDefault(7))
	s.Assert().Equal(3, r.OrElse(func(p problem.Problem) int { return len(p.Error()) - 1 }))

	p, failed := r.Problem()
	s.Assert().True(failed)
	s.Assert().Equal("nope", p.Error())

	_, err := r.Unwrap()
	s.Assert().EqualError(err, "nope")
}

func (s *ResultTestSuite) TestCallbacks() {
	var seen []string
	result.Success("ok").
		IfSuccess(func(v string) { seen = append(seen, "success:"+v) }).
		IfFailure(func(problem.Problem) { seen = append(seen, "unexpected") })
	result.Failure[string](problem.New("bad")).
		IfSuccess(func(string) { seen = append(seen, "unexpected") }).
		IfFailure(func(p problem.Problem) { seen = append(seen, "failure:"+p.Error()) })

	s.Assert().Equal([]string{"success:ok", "failure:bad"}, seen)
}

func (s *ResultTestSuite) TestMapAndThen() {
	parse := func(v string) result.Result[int] {
		n, err := strconv.Atoi(v)
		if err != nil {
			return result.Failure[int](problem.Newf("not a number: %s", v))
		}
		return result.Success(n)
	}

	doubled := result.Map(parse("21"), func(n int) int { return n * 2 })
	s.Assert().Equal(42, doubled.OrDefault(0))

	chained := result.AndThen(result.Success("x"), parse)
	p, failed := chained.Problem()
	s.Require().True(failed)
	s.Assert().Equal("not a number: x", p.Error())

	short := result.AndThen(result.Failure[string](problem.New("earlier")), parse)
	p, _ = short.Problem()
	s.Assert().Equal("earlier", p.Error())
}

func (s *ResultTestSuite) TestTrackAttemptsEveryField() {
	var c problem.Collector

	a, okA := result.Track(result.Failure[int](problem.At("a", "bad a")), &c)
	b, okB := result.Track(result.Success(2), &c)
	_, okC := result.Track(result.Failure[int](problem.At("c", "bad c")), &c)

	s.Assert().False(okA)
	s.Assert().Equal(0, a)
	s.Assert().True(okB)
	s.Assert().Equal(2, b)
	s.Assert().False(okC)

	p, failed := c.Problem()
	s.Require().True(failed)
	s.Assert().Equal([]string{"bad a at `a`", "bad c at `c`"}, p.Messages())
}

func (s *ResultTestSuite) TestCollect() {
	ok := result.Collect([]result.Result[int]{result.Success(1), result.Success(2)})
	s.Assert().Equal([]int{1, 2}, ok.OrDefault(nil))

	bad := result.Collect([]result.Result[int]{
		result.Failure[int](problem.New("one")),
		result.Success(2),
		result.Failure[int](problem.New("three")),
	})
	p, failed := bad.Problem()
	s.Require().True(failed)
	s.Assert().Equal([]string{"one", "three"}, p.Messages())

	empty := result.Collect[int](nil)
	s.Assert().True(empty.IsSuccess())
}
