package errors_test

import (
	"context"
	"fmt"
	"testing"

	"github.com/stretchr/testify/suite"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/KirkDiggler/godbound-api/internal/errors"
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
			message:  "subject not found",
			expected: "NOT_FOUND: subject not found",
		},
		{
			name:     "unknown category error",
			code:     errors.CodeUnknownCategory,
			message:  "attribute \"luck\" is not on this sheet",
			expected: "UNKNOWN_CATEGORY: attribute \"luck\" is not on this sheet",
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

func (s *ErrorsTestSuite) TestWrap() {
	baseErr := fmt.Errorf("connection refused")
	wrapped := errors.Wrap(baseErr, "failed to load subject")

	s.Assert().Equal(errors.CodeInternal, wrapped.Code)
	s.Assert().Equal("failed to load subject", wrapped.Message)
	s.Assert().Equal(baseErr, wrapped.Unwrap())
}

func (s *ErrorsTestSuite) TestWrapPreservesCodeAndMeta() {
	baseErr := errors.UnknownCategory("no such save").WithMeta("save", "luck")
	wrapped := errors.Wrap(baseErr, "saving throw failed")

	s.Assert().Equal(errors.CodeUnknownCategory, wrapped.Code)
	s.Assert().Equal("luck", errors.GetMeta(wrapped)["save"])
	s.Assert().True(errors.IsUnknownCategory(wrapped))
}

func (s *ErrorsTestSuite) TestWrapWithCode() {
	wrapped := errors.WrapWithCode(fmt.Errorf("timeout"), errors.CodeUnavailable, "redis unavailable")

	s.Assert().Equal(errors.CodeUnavailable, wrapped.Code)
	s.Assert().Equal("redis unavailable", wrapped.Message)
}

func (s *ErrorsTestSuite) TestWrapNil() {
	s.Assert().Nil(errors.Wrap(nil, "should be nil"))
	s.Assert().Nil(errors.WrapWithCode(nil, errors.CodeNotFound, "should be nil"))
}

func (s *ErrorsTestSuite) TestErrorIs() {
	s.Assert().True(errors.Is(errors.Wrap(errors.InvalidModifier("a"), "b"), errors.InvalidModifier("c")))
	s.Assert().False(errors.Is(errors.NotFound("a"), errors.UnknownCategory("a")))
}

func (s *ErrorsTestSuite) TestFromContext() {
	s.Assert().Equal(errors.CodeCanceled, errors.GetCode(errors.FromContext(context.Canceled)))
	s.Assert().Equal(errors.CodeDeadlineExceeded, errors.GetCode(errors.FromContext(context.DeadlineExceeded)))

	other := errors.NotFound("x")
	s.Assert().Equal(other, errors.FromContext(other))
}

func (s *ErrorsTestSuite) TestGetters() {
	err := errors.NotFound("user friendly message").WithMeta("key", "value")
	wrapped := errors.Wrap(err, "wrapped message")
	stdErr := fmt.Errorf("standard error")

	s.Assert().Equal(errors.CodeNotFound, errors.GetCode(wrapped))
	s.Assert().Equal(errors.CodeInternal, errors.GetCode(stdErr))
	s.Assert().Equal(errors.CodeOK, errors.GetCode(nil))
	s.Assert().Equal("wrapped message", errors.GetMessage(wrapped))
	s.Assert().Equal("standard error", errors.GetMessage(stdErr))
	s.Assert().Nil(errors.GetMeta(stdErr))
}

func (s *ErrorsTestSuite) TestIsUserFacing() {
	s.Assert().True(errors.IsUserFacing(errors.InvalidModifier("bad")))
	s.Assert().True(errors.IsUserFacing(errors.UnknownCategory("bad")))
	s.Assert().False(errors.IsUserFacing(errors.Internal("boom")))
	s.Assert().False(errors.IsUserFacing(fmt.Errorf("boom")))
}

func (s *ErrorsTestSuite) TestHTTPStatus() {
	testCases := []struct {
		code     errors.Code
		expected int
	}{
		{errors.CodeOK, 200},
		{errors.CodeNotFound, 404},
		{errors.CodeUnknownCategory, 404},
		{errors.CodeInvalidArgument, 400},
		{errors.CodeInvalidModifier, 400},
		{errors.CodeFailedPrecondition, 412},
		{errors.CodeInternal, 500},
	}

	for _, tc := range testCases {
		s.Run(string(tc.code), func() {
			s.Assert().Equal(tc.expected, tc.code.HTTPStatus())
		})
	}
}

func (s *ErrorsTestSuite) TestGRPCConversion() {
	grpcErr := errors.ToGRPCError(errors.UnknownCategoryf("save %q not found", "luck"))
	st, ok := status.FromError(grpcErr)
	s.Require().True(ok)
	s.Assert().Equal(codes.NotFound, st.Code())
	s.Assert().Equal("save \"luck\" not found", st.Message())

	grpcErr = errors.ToGRPCError(errors.InvalidModifier("HP Adjustment Value must be a positive number"))
	st, ok = status.FromError(grpcErr)
	s.Require().True(ok)
	s.Assert().Equal(codes.InvalidArgument, st.Code())

	back := errors.FromGRPCError(status.Error(codes.FailedPrecondition, "not enough effort"))
	s.Assert().Equal(errors.CodeFailedPrecondition, errors.GetCode(back))
	s.Assert().Equal("not enough effort", errors.GetMessage(back))

	s.Assert().Nil(errors.ToGRPCError(nil))
	st, _ = status.FromError(errors.ToGRPCError(fmt.Errorf("raw")))
	s.Assert().Equal(codes.Internal, st.Code())
}
