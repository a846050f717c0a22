package check_test

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"

	"github.com/KirkDiggler/godbound-api/internal/engine/check"
	"github.com/KirkDiggler/godbound-api/internal/entities/godbound"
	"github.com/KirkDiggler/godbound-api/internal/errors"
	"github.com/KirkDiggler/godbound-api/internal/testutils"
)

type ResolverTestSuite struct {
	suite.Suite
	subject *godbound.Subject
}

func TestResolverSuite(t *testing.T) {
	suite.Run(t, new(ResolverTestSuite))
}

func (s *ResolverTestSuite) SetupTest() {
	s.subject = &godbound.Subject{
		ID: "subject_1",
		Attributes: map[string]godbound.Attribute{
			godbound.AttributeStrength: {Score: 14},
			godbound.AttributeWisdom:   {Score: 9},
		},
		Saves: map[string]godbound.Save{
			godbound.SaveHardiness: {Target: 15},
		},
		Morale: 8,
	}
}

func (s *ResolverTestSuite) resolver(values ...int) (*check.Resolver, *testutils.FixedRoller) {
	roller := testutils.NewFixedRoller(values...)
	r, err := check.NewResolver(&check.Config{Roller: roller})
	s.Require().NoError(err)
	return r, roller
}

func (s *ResolverTestSuite) TestNewResolver_RequiresRoller() {
	r, err := check.NewResolver(&check.Config{})
	s.Assert().Nil(r)
	s.Assert().True(errors.IsInvalidArgument(err))

	r, err = check.NewResolver(nil)
	s.Assert().Nil(r)
	s.Assert().Error(err)
}

func (s *ResolverTestSuite) TestAttributeCheck_ExactTargetSucceeds() {
	r, _ := s.resolver(7)

	result, err := r.ResolveAttributeCheck(s.subject, godbound.AttributeStrength, 0, 0)
	s.Require().NoError(err)

	s.Assert().Equal(check.KindAttributeCheck, result.Kind)
	s.Assert().Equal(7, result.Target)
	s.Assert().Equal(7, result.Total)
	s.Assert().True(result.Succeeded)
	s.Assert().False(result.Failed())
	s.Assert().Equal(check.LabelNormal, result.DifficultyLabel)
	s.Assert().Equal("1d20+0+0", result.Formula)
}

func (s *ResolverTestSuite) TestAttributeCheck_OneBelowTargetFails() {
	r, _ := s.resolver(6)

	result, err := r.ResolveAttributeCheck(s.subject, godbound.AttributeStrength, 0, 0)
	s.Require().NoError(err)
	s.Assert().Equal(6, result.Total)
	s.Assert().False(result.Succeeded)
	s.Assert().True(result.Failed())
}

func (s *ResolverTestSuite) TestAttributeCheck_ModifiersAddToTotal() {
	r, _ := s.resolver(10)

	result, err := r.ResolveAttributeCheck(s.subject, godbound.AttributeWisdom, check.DifficultyVeryHard, 3)
	s.Require().NoError(err)

	s.Assert().Equal(10, result.Natural)
	s.Assert().Equal(5, result.Total)
	s.Assert().Equal(12, result.Target)
	s.Assert().False(result.Succeeded)
	s.Assert().Equal(check.LabelVeryHard, result.DifficultyLabel)
	s.Assert().Equal("1d20-8+3", result.Formula)
}

func (s *ResolverTestSuite) TestAttributeCheck_UnknownAttributeDrawsNothing() {
	r, roller := s.resolver(20)

	result, err := r.ResolveAttributeCheck(s.subject, "luck", 0, 0)
	s.Assert().Nil(result)
	s.Require().Error(err)
	s.Assert().True(errors.IsUnknownCategory(err))
	s.Assert().Equal("luck", errors.GetMeta(err)["attribute"])
	s.Assert().Equal(0, roller.Used())
}

func (s *ResolverTestSuite) TestSavingThrow_HardFails() {
	r, _ := s.resolver(10)

	result, err := r.ResolveSavingThrow(s.subject, godbound.SaveHardiness, check.DifficultyHard)
	s.Require().NoError(err)

	s.Assert().Equal(check.KindSavingThrow, result.Kind)
	s.Assert().Equal(6, result.Total)
	s.Assert().Equal(15, result.Target)
	s.Assert().False(result.Succeeded)
	s.Assert().Equal(check.LabelHard, result.DifficultyLabel)
	s.Assert().Equal(0, result.AuxiliaryModifier)
}

func (s *ResolverTestSuite) TestSavingThrow_ExactTargetSucceeds() {
	r, _ := s.resolver(11)

	result, err := r.ResolveSavingThrow(s.subject, godbound.SaveHardiness, 4)
	s.Require().NoError(err)
	s.Assert().Equal(15, result.Total)
	s.Assert().True(result.Succeeded)
	s.Assert().Equal(check.LabelEasy, result.DifficultyLabel)
}

func (s *ResolverTestSuite) TestSavingThrow_UnknownSaveDrawsNothing() {
	r, roller := s.resolver(20)

	_, err := r.ResolveSavingThrow(s.subject, godbound.SaveSpirit, 0)
	s.Require().Error(err)
	s.Assert().True(errors.IsUnknownCategory(err))
	s.Assert().Equal(0, roller.Used())
}

func (s *ResolverTestSuite) TestRollerFailures() {
	r, _ := s.resolver()
	_, err := r.ResolveAttributeCheck(s.subject, godbound.AttributeStrength, 0, 0)
	s.Assert().True(errors.IsInternal(err))

	r, _ = s.resolver(21)
	_, err = r.ResolveSavingThrow(s.subject, godbound.SaveHardiness, 0)
	s.Assert().True(errors.IsInternal(err))
}

func (s *ResolverTestSuite) TestMorale() {
	testCases := []struct {
		name  string
		dice  []int
		holds bool
	}{
		{"total equal to morale holds", []int{3, 5}, true},
		{"total below morale holds", []int{1, 1}, true},
		{"total above morale breaks", []int{4, 5}, false},
	}

	for _, tc := range testCases {
		s.Run(tc.name, func() {
			r, _ := s.resolver(tc.dice...)
			result, err := r.ResolveMorale(s.subject)
			s.Require().NoError(err)
			s.Assert().Equal(tc.dice, result.Dice)
			s.Assert().Equal(tc.dice[0]+tc.dice[1], result.Total)
			s.Assert().Equal(tc.holds, result.Holds)
		})
	}
}

func (s *ResolverTestSuite) TestMorale_NoScore() {
	r, roller := s.resolver(1, 1)
	s.subject.Morale = 0

	_, err := r.ResolveMorale(s.subject)
	s.Assert().True(errors.IsInvalidModifier(err))
	s.Assert().Equal(0, roller.Used())
}

func TestAttributeCheck_TargetAndOutcomeForAllScores(t *testing.T) {
	for score := 1; score <= 20; score++ {
		for _, difficulty := range []int{-8, -4, -1, 0, 2, 4} {
			for _, aux := range []int{-2, 0, 3} {
				for natural := 1; natural <= 20; natural++ {
					subject := &godbound.Subject{
						Attributes: map[string]godbound.Attribute{godbound.AttributeCharisma: {Score: score}},
					}
					r, err := check.NewResolver(&check.Config{Roller: testutils.NewFixedRoller(natural)})
					require.NoError(t, err)

					result, err := r.ResolveAttributeCheck(subject, godbound.AttributeCharisma, difficulty, aux)
					require.NoError(t, err)

					name := fmt.Sprintf("score=%d d=%d aux=%d roll=%d", score, difficulty, aux, natural)
					assert.Equal(t, 21-score, result.Target, name)
					assert.Equal(t, natural+difficulty+aux, result.Total, name)
					assert.Equal(t, result.Total >= result.Target, result.Succeeded, name)
				}
			}
		}
	}
}

func TestDifficultyLabels(t *testing.T) {
	testCases := []struct {
		modifier  int
		attribute string
		save      string
	}{
		{-8, check.LabelVeryHard, check.LabelHard},
		{-12, check.LabelHard, check.LabelHard},
		{-4, check.LabelHard, check.LabelHard},
		{-3, check.LabelHard, check.LabelHard},
		{0, check.LabelNormal, check.LabelNormal},
		{4, check.LabelEasy, check.LabelEasy},
		{5, check.LabelEasy, check.LabelEasy},
	}

	for _, tc := range testCases {
		assert.Equal(t, tc.attribute, check.AttributeDifficultyLabel(tc.modifier), "attribute %d", tc.modifier)
		assert.Equal(t, tc.save, check.SaveDifficultyLabel(tc.modifier), "save %d", tc.modifier)
	}

	for d := -100; d <= 100; d++ {
		assert.NotEqual(t, check.LabelVeryHard, check.SaveDifficultyLabel(d))
	}
}
