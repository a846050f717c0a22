package resources_test

import (
	"testing"

	"github.com/stretchr/testify/suite"

	"github.com/KirkDiggler/godbound-api/internal/engine/resources"
	"github.com/KirkDiggler/godbound-api/internal/entities/godbound"
	"github.com/KirkDiggler/godbound-api/internal/errors"
)

type ResourcesTestSuite struct {
	suite.Suite
}

func TestResourcesSuite(t *testing.T) {
	suite.Run(t, new(ResourcesTestSuite))
}

func (s *ResourcesTestSuite) TestParseAdjustment() {
	testCases := []struct {
		name    string
		raw     string
		floor   int
		want    int
		wantErr bool
	}{
		{name: "zero", raw: "0", want: 0},
		{name: "positive", raw: "7", want: 7},
		{name: "surrounding space", raw: " 4 ", want: 4},
		{name: "negative allowed by floor", raw: "-1", floor: -1, want: -1},
		{name: "negative below floor", raw: "-1", wantErr: true},
		{name: "leading plus", raw: "+3", wantErr: true},
		{name: "leading zero", raw: "03", wantErr: true},
		{name: "decimal", raw: "3.0", wantErr: true},
		{name: "text", raw: "three", wantErr: true},
		{name: "empty", raw: "", wantErr: true},
	}

	for _, tc := range testCases {
		s.Run(tc.name, func() {
			got, err := resources.ParseAdjustment(tc.raw, tc.floor)
			if tc.wantErr {
				s.Require().Error(err)
				s.Assert().True(errors.IsInvalidModifier(err))
				return
			}
			s.Require().NoError(err)
			s.Assert().Equal(tc.want, got)
		})
	}
}

func (s *ResourcesTestSuite) TestCanSpendEffort() {
	effort := godbound.Effort{Total: 4, Scene: 1, Day: 1}

	s.Assert().True(resources.CanSpendEffort(effort, 2))
	s.Assert().False(resources.CanSpendEffort(effort, 3))
}

func (s *ResourcesTestSuite) TestCanReclaimEffort() {
	effort := godbound.Effort{Total: 4, Day: 2}

	s.Assert().True(resources.CanReclaimEffort(effort, godbound.EffortDay, -2))
	s.Assert().False(resources.CanReclaimEffort(effort, godbound.EffortDay, -3))
	s.Assert().False(resources.CanReclaimEffort(effort, godbound.EffortScene, -1))
	s.Assert().False(resources.CanReclaimEffort(effort, "week", 0))
}

func (s *ResourcesTestSuite) TestChangeEffort_Commit() {
	effort := godbound.Effort{Total: 3}

	updated, err := resources.ChangeEffort(effort, godbound.EffortScene, 2)
	s.Require().NoError(err)
	s.Assert().Equal(2, updated.Scene)
	s.Assert().Equal(1, updated.Available())
	s.Assert().Equal(0, effort.Scene)
}

func (s *ResourcesTestSuite) TestChangeEffort_Reclaim() {
	effort := godbound.Effort{Total: 3, AtWill: 2}

	updated, err := resources.ChangeEffort(effort, godbound.EffortAtWill, -2)
	s.Require().NoError(err)
	s.Assert().Equal(0, updated.AtWill)
}

func (s *ResourcesTestSuite) TestChangeEffort_Refusals() {
	effort := godbound.Effort{Total: 2, Day: 2}

	_, err := resources.ChangeEffort(effort, godbound.EffortScene, 1)
	s.Assert().True(errors.IsFailedPrecondition(err))

	_, err = resources.ChangeEffort(effort, godbound.EffortScene, -1)
	s.Assert().True(errors.IsFailedPrecondition(err))

	_, err = resources.ChangeEffort(effort, godbound.EffortDay, 0)
	s.Assert().True(errors.IsInvalidModifier(err))

	_, err = resources.ChangeEffort(effort, "week", 1)
	s.Assert().True(errors.IsInvalidModifier(err))
}

func (s *ResourcesTestSuite) TestApplyDamage() {
	pool := godbound.Pool{Value: 10, Max: 12}

	s.Assert().Equal(7, resources.ApplyDamage(pool, 3).Value)
	s.Assert().Equal(0, resources.ApplyDamage(pool, 15).Value)
	s.Assert().Equal(12, resources.ApplyDamage(pool, -5).Value)
	s.Assert().Equal(10, resources.ApplyDamage(pool, 0).Value)
}
