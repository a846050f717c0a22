package errors_test

import (
	"testing"

	"github.com/stretchr/testify/suite"

	"github.com/KirkDiggler/godbound-api/internal/errors"
)

type ValidationTestSuite struct {
	suite.Suite
}

func TestValidationSuite(t *testing.T) {
	suite.Run(t, new(ValidationTestSuite))
}

func (s *ValidationTestSuite) TestValidationErrorOrdersFields() {
	ve := errors.NewValidationError()
	ve.AddFieldError("subject_id", "is required")
	ve.AddFieldError("attribute", "is required")

	s.Assert().True(ve.HasErrors())
	s.Assert().Equal("validation failed: attribute: is required; subject_id: is required", ve.Error())

	err := ve.ToError()
	s.Assert().Equal(errors.CodeInvalidArgument, err.Code)
	s.Assert().NotNil(err.Meta["validation_errors"])
}

func (s *ValidationTestSuite) TestValidationBuilder() {
	vb := errors.NewValidationBuilder()
	vb.Field("name", "is required").
		Fieldf("level", "must be between %d and %d", 1, 10).
		RequiredField("owner_id").
		InvalidField("category", "not an effort category")

	err := vb.Build()
	s.Require().Error(err)
	s.Assert().True(errors.IsInvalidArgument(err))
}

func (s *ValidationTestSuite) TestValidationBuilderNoErrors() {
	s.Assert().NoError(errors.NewValidationBuilder().Build())
}

func (s *ValidationTestSuite) TestValidateRequired() {
	testCases := []struct {
		name      string
		value     string
		shouldErr bool
	}{
		{"valid value", "strength", false},
		{"empty string", "", true},
		{"whitespace only", "   ", true},
	}

	for _, tc := range testCases {
		s.Run(tc.name, func() {
			vb := errors.NewValidationBuilder()
			errors.ValidateRequired("field", tc.value, vb)
			if tc.shouldErr {
				s.Assert().Error(vb.Build())
			} else {
				s.Assert().NoError(vb.Build())
			}
		})
	}
}

func (s *ValidationTestSuite) TestValidateRange() {
	vb := errors.NewValidationBuilder()
	errors.ValidateRange("level", 11, 1, 10, vb)
	s.Assert().ErrorContains(vb.Build(), "level: must be between 1 and 10")

	vb = errors.NewValidationBuilder()
	errors.ValidateRange("level", 10, 1, 10, vb)
	s.Assert().NoError(vb.Build())
}

func (s *ValidationTestSuite) TestValidateEnum() {
	allowed := []string{"scene", "day", "atWill"}

	vb := errors.NewValidationBuilder()
	errors.ValidateEnum("category", "day", allowed, vb)
	s.Assert().NoError(vb.Build())

	vb = errors.NewValidationBuilder()
	errors.ValidateEnum("category", "week", allowed, vb)
	s.Assert().ErrorContains(vb.Build(), "must be one of: scene, day, atWill")
}
