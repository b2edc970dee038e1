package errors_test

import (
	"context"
	"fmt"
	"testing"

	"github.com/stretchr/testify/suite"

	"github.com/lamali292/one-piece-api/internal/errors"
)

type ErrorsTestSuite struct {
	suite.Suite
}

func TestErrorsSuite(t *testing.T) {
	suite.Run(t, new(ErrorsTestSuite))
}

func (s *ErrorsTestSuite) TestNewError() {
	testCases := []struct {
		name     string
		code     errors.Code
		message  string
		expected string
	}{
		{
			name:     "not found error",
			code:     errors.CodeNotFound,
			message:  "category not found",
			expected: "NOT_FOUND: category not found",
		},
		{
			name:     "invalid argument error",
			code:     errors.CodeInvalidArgument,
			message:  "invalid reward",
			expected: "INVALID_ARGUMENT: invalid reward",
		},
	}

	for _, tc := range testCases {
		s.Run(tc.name, func() {
			err := errors.New(tc.code, tc.message)
			s.Assert().Equal(tc.expected, err.Error())
			s.Assert().Equal(tc.code, err.Code)
			s.Assert().Equal(tc.message, err.Message)
		})
	}
}

func (s *ErrorsTestSuite) TestErrorWithMeta() {
	err := errors.NotFound("node not found").
		WithMeta("category", "one_piece_api:swordsmanship").
		WithMeta("node", "one_piece_api:slash")

	s.Assert().Equal("one_piece_api:swordsmanship", err.Meta["category"])
	s.Assert().Equal("one_piece_api:slash", err.Meta["node"])
}

func (s *ErrorsTestSuite) TestWrapCopiesMeta() {
	base := errors.NotFound("progress missing").WithMeta("player_id", "player-1")
	wrapped := errors.Wrap(base, "refresh failed").WithMeta("store", "redis")

	s.Assert().Equal("player-1", wrapped.Meta["player_id"])
	s.Assert().Equal("redis", wrapped.Meta["store"])
	s.Assert().NotContains(base.Meta, "store")
}

func (s *ErrorsTestSuite) TestWrap() {
	baseErr := fmt.Errorf("bucket missing")
	wrapped := errors.Wrap(baseErr, "failed to load progress")

	s.Assert().Equal(errors.CodeInternal, wrapped.Code)
	s.Assert().Equal("failed to load progress", wrapped.Message)
	s.Assert().Equal(baseErr, wrapped.Unwrap())
}

func (s *ErrorsTestSuite) TestWrapPreservesCode() {
	baseErr := errors.NotFound("record not found")
	wrapped := errors.Wrap(baseErr, "progress not found")

	s.Assert().Equal(errors.CodeNotFound, wrapped.Code)
	s.Assert().Equal("progress not found", wrapped.Message)
	s.Assert().Equal(baseErr, wrapped.Unwrap())
}

func (s *ErrorsTestSuite) TestWrapWithCode() {
	baseErr := fmt.Errorf("connection refused")
	wrapped := errors.WrapWithCode(baseErr, errors.CodeUnavailable, "store unavailable")

	s.Assert().Equal(errors.CodeUnavailable, wrapped.Code)
	s.Assert().Equal("store unavailable", wrapped.Message)
	s.Assert().Equal(baseErr, wrapped.Unwrap())
}

func (s *ErrorsTestSuite) TestWrapNil() {
	s.Assert().Nil(errors.Wrap(nil, "should be nil"))
	s.Assert().Nil(errors.WrapWithCode(nil, errors.CodeNotFound, "should be nil"))
}

func (s *ErrorsTestSuite) TestRecovered() {
	s.Run("error value keeps its chain", func() {
		cause := errors.NotFound("ability missing")
		err := errors.Recovered(cause)

		s.Assert().Equal(errors.CodeInternal, err.Code)
		s.Assert().Equal("recovered from panic", err.Message)
		s.Assert().ErrorIs(err.Unwrap(), cause)
	})

	s.Run("non error value is formatted", func() {
		err := errors.Recovered("boom")

		s.Assert().Equal(errors.CodeInternal, err.Code)
		s.Assert().Equal("recovered from panic: boom", err.Message)
		s.Assert().Nil(err.Unwrap())
	})
}

func (s *ErrorsTestSuite) TestConstructorFunctions() {
	testCases := []struct {
		name        string
		constructor func() *errors.Error
		code        errors.Code
	}{
		{"NotFound", func() *errors.Error { return errors.NotFound("test") }, errors.CodeNotFound},
		{"InvalidArgument", func() *errors.Error { return errors.InvalidArgument("test") }, errors.CodeInvalidArgument},
		{"AlreadyExistsf", func() *errors.Error { return errors.AlreadyExistsf("%s", "test") }, errors.CodeAlreadyExists},
		{"Internal", func() *errors.Error { return errors.Internal("test") }, errors.CodeInternal},
		{"Unavailable", func() *errors.Error { return errors.Unavailable("test") }, errors.CodeUnavailable},
		{"FailedPrecondition", func() *errors.Error { return errors.FailedPrecondition("test") }, errors.CodeFailedPrecondition},
		{"Unimplementedf", func() *errors.Error { return errors.Unimplementedf("%s", "test") }, errors.CodeUnimplemented},
	}

	for _, tc := range testCases {
		s.Run(tc.name, func() {
			err := tc.constructor()
			s.Assert().Equal(tc.code, err.Code)
			s.Assert().Equal("test", err.Message)
		})
	}
}

func (s *ErrorsTestSuite) TestFormattedConstructors() {
	err := errors.NotFoundf("category %s not found", "one_piece_api:haki")
	s.Assert().Equal(errors.CodeNotFound, err.Code)
	s.Assert().Equal("category one_piece_api:haki not found", err.Message)

	err2 := errors.InvalidArgumentf("invalid count: %d", -1)
	s.Assert().Equal(errors.CodeInvalidArgument, err2.Code)
	s.Assert().Equal("invalid count: -1", err2.Message)
}

func (s *ErrorsTestSuite) TestErrorIs() {
	err1 := errors.NotFound("test")
	err2 := errors.NotFound("test")
	err3 := errors.InvalidArgument("test")

	s.Assert().True(err1.Is(err2))
	s.Assert().False(err1.Is(err3))
}

func (s *ErrorsTestSuite) TestHelperFunctions() {
	notFoundErr := errors.NotFound("test")
	invalidErr := errors.InvalidArgument("test")
	wrappedErr := errors.Wrap(notFoundErr, "wrapped")

	s.Assert().True(errors.IsNotFound(notFoundErr))
	s.Assert().True(errors.IsNotFound(wrappedErr))
	s.Assert().False(errors.IsNotFound(invalidErr))

	s.Assert().True(errors.IsInvalidArgument(invalidErr))
	s.Assert().False(errors.IsInvalidArgument(notFoundErr))

	s.Assert().True(errors.IsFailedPrecondition(errors.FailedPrecondition("disposed")))
	s.Assert().True(errors.IsAlreadyExists(errors.AlreadyExistsf("duplicate %s", "id")))
}

func (s *ErrorsTestSuite) TestGetCode() {
	err := errors.NotFound("test")
	wrapped := errors.Wrap(err, "wrapped")

	s.Assert().Equal(errors.CodeNotFound, errors.GetCode(err))
	s.Assert().Equal(errors.CodeNotFound, errors.GetCode(wrapped))
	s.Assert().Equal(errors.CodeInternal, errors.GetCode(fmt.Errorf("standard error")))
	s.Assert().Equal(errors.CodeOK, errors.GetCode(nil))
}

func (s *ErrorsTestSuite) TestGetMeta() {
	err := errors.NotFound("test").WithMeta("key", "value")
	wrapped := errors.Wrap(err, "wrapped")

	s.Assert().Equal("value", errors.GetMeta(err)["key"])
	s.Assert().Equal("value", errors.GetMeta(wrapped)["key"])
	s.Assert().Nil(errors.GetMeta(fmt.Errorf("standard error")))
}

func (s *ErrorsTestSuite) TestGetCodeOfContextErrors() {
	s.Assert().Equal(errors.CodeCanceled, errors.GetCode(context.Canceled))
	s.Assert().Equal(errors.CodeCanceled, errors.GetCode(fmt.Errorf("walk: %w", context.Canceled)))
	s.Assert().Equal(errors.CodeUnavailable, errors.GetCode(context.DeadlineExceeded))
	s.Assert().True(errors.IsCanceled(context.Canceled))
}

func (s *ErrorsTestSuite) TestExitCode() {
	testCases := []struct {
		code     errors.Code
		expected int
	}{
		{errors.CodeOK, 0},
		{errors.CodeInvalidArgument, 2},
		{errors.CodeNotFound, 3},
		{errors.CodeAlreadyExists, 4},
		{errors.CodeFailedPrecondition, 4},
		{errors.CodeInternal, 1},
		{errors.CodeUnavailable, 69},
		{errors.CodeDataLoss, 74},
		{errors.CodeCanceled, 130},
	}

	for _, tc := range testCases {
		s.Run(string(tc.code), func() {
			s.Assert().Equal(tc.expected, tc.code.ExitCode())
		})
	}
}

func (s *ErrorsTestSuite) TestExitCodeOf() {
	s.Assert().Equal(0, errors.ExitCodeOf(nil))
	s.Assert().Equal(2, errors.ExitCodeOf(errors.Wrap(errors.InvalidArgument("bad pack"), "load failed")))
	s.Assert().Equal(1, errors.ExitCodeOf(fmt.Errorf("plain")))
}
