package errors_test

import (
	"testing"

	"github.com/stretchr/testify/suite"

	"github.com/lamali292/one-piece-api/internal/errors"
)

type ValidationTestSuite struct {
	suite.Suite
}

func TestValidationSuite(t *testing.T) {
	suite.Run(t, new(ValidationTestSuite))
}

func (s *ValidationTestSuite) TestValidationErrorKeepsOrder() {
	vb := errors.NewValidationBuilder()
	vb.RequiredField("store").
		Field("data_dir", "is required").
		Fieldf("interval_minutes", "must be at least %d", 1)

	err := vb.Build()
	s.Require().Error(err)
	s.Assert().Equal(
		"INVALID_ARGUMENT: validation failed: store: is required; data_dir: is required; interval_minutes: must be at least 1",
		err.Error(),
	)
}

func (s *ValidationTestSuite) TestValidationBuilder() {
	vb := errors.NewValidationBuilder()
	vb.Field("data_dir", "is required").
		Fieldf("count", "must be between %d and %d", 0, 64).
		RequiredField("category").
		InvalidField("store", "not a known backend")

	err := vb.Build()
	s.Require().NotNil(err)
	s.Assert().True(errors.IsInvalidArgument(err))
}

func (s *ValidationTestSuite) TestValidationBuilderNoErrors() {
	vb := errors.NewValidationBuilder()
	s.Assert().Nil(vb.Build())
}

func (s *ValidationTestSuite) TestValidateRequired() {
	testCases := []struct {
		name      string
		value     string
		shouldErr bool
	}{
		{"valid value", "data", false},
		{"empty string", "", true},
		{"whitespace only", "   ", true},
		{"valid with spaces", "  data  ", false},
	}

	for _, tc := range testCases {
		s.Run(tc.name, func() {
			vb := errors.NewValidationBuilder()
			errors.ValidateRequired("field", tc.value, vb)
			err := vb.Build()
			if tc.shouldErr {
				s.Assert().NotNil(err)
			} else {
				s.Assert().Nil(err)
			}
		})
	}
}

func (s *ValidationTestSuite) TestValidateMin() {
	vb := errors.NewValidationBuilder()
	errors.ValidateMin("interval_minutes", 0, 1, vb)
	errors.ValidateMin("xp_amount", 50, 0, vb)
	errors.ValidateMin("interval_minutes", -1, 1, vb)

	err := vb.Build()
	s.Require().NotNil(err)
	validationErrors := errors.GetMeta(err)["validation_errors"].(map[string][]string)
	s.Assert().Contains(validationErrors["interval_minutes"][0], "must be at least 1")
	s.Assert().Len(validationErrors["interval_minutes"], 2)
	s.Assert().NotContains(validationErrors, "xp_amount")
}

func (s *ValidationTestSuite) TestValidateEnum() {
	stores := []string{"memory", "redis", "bolt"}

	vb := errors.NewValidationBuilder()
	errors.ValidateEnum("store", "postgres", stores, vb)
	errors.ValidateEnum("fallback_store", "memory", stores, vb)

	err := vb.Build()
	s.Require().NotNil(err)
	validationErrors := errors.GetMeta(err)["validation_errors"].(map[string][]string)
	s.Assert().Contains(validationErrors["store"][0], "must be one of: memory, redis, bolt")
	s.Assert().NotContains(validationErrors, "fallback_store")
}
