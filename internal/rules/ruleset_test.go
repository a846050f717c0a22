package rules_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/KirkDiggler/godbound-api/internal/entities/godbound"
	"github.com/KirkDiggler/godbound-api/internal/errors"
	"github.com/KirkDiggler/godbound-api/internal/rules"
)

func TestDefault(t *testing.T) {
	rs := rules.Default()

	assert.Len(t, rs.Attributes, 6)
	assert.True(t, rs.HasAttribute(godbound.AttributeWisdom))
	assert.Contains(t, rs.Saves, godbound.SaveHardiness)

	name, ok := rs.DefaultItemName(godbound.ItemTypeTactic)
	assert.True(t, ok)
	assert.Equal(t, "New Tactic", name)
}

func TestModifier(t *testing.T) {
	rs := rules.Default()

	testCases := []struct {
		score int
		want  int
	}{
		{3, -3},
		{5, -2},
		{8, -1},
		{10, 0},
		{14, 1},
		{17, 2},
		{18, 3},
		{19, 4},
		{1, -3},
		{25, 4},
	}

	for _, tc := range testCases {
		assert.Equal(t, tc.want, rs.Modifier(tc.score), "score %d", tc.score)
	}
}

func TestComputeSaves(t *testing.T) {
	rs := rules.Default()

	attrs := map[string]godbound.Attribute{
		godbound.AttributeStrength:     {Score: 18},
		godbound.AttributeConstitution: {Score: 10},
		godbound.AttributeDexterity:    {Score: 7},
		godbound.AttributeIntelligence: {Score: 8},
	}

	saves := rs.ComputeSaves(attrs, 1)

	assert.Equal(t, 12, saves[godbound.SaveHardiness].Target) // 16 - 1 - 3
	assert.Equal(t, 16, saves[godbound.SaveEvasion].Target)   // 16 - 1 - (-1)
	_, ok := saves[godbound.SaveSpirit]
	assert.False(t, ok, "spirit has no source attributes on this sheet")
}

func TestLoad_Invalid(t *testing.T) {
	testCases := []struct {
		name string
		yaml string
	}{
		{
			name: "unknown attribute in save",
			yaml: `
attributes: [strength]
save_base: 16
saves: {hardiness: [constitution]}
max_level: 10
modifier_bands: [{min: 3, max: 18, modifier: 0}]
`,
		},
		{
			name: "inverted band",
			yaml: `
attributes: [strength]
save_base: 16
saves: {hardiness: [strength]}
max_level: 10
modifier_bands: [{min: 18, max: 3, modifier: 0}]
`,
		},
		{
			name: "unknown field",
			yaml: `
attributes: [strength]
luck: 7
`,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			rs, err := rules.Load(strings.NewReader(tc.yaml))
			require.Error(t, err)
			assert.Nil(t, rs)
			assert.True(t, errors.IsInvalidArgument(err))
		})
	}
}

func TestLoadFile_EmptyPathIsDefault(t *testing.T) {
	rs, err := rules.LoadFile("")
	require.NoError(t, err)
	assert.Equal(t, rules.Default(), rs)
}

func TestScoreBounds(t *testing.T) {
	lowest, highest := rules.Default().ScoreBounds()
	assert.Equal(t, 3, lowest)
	assert.Equal(t, 19, highest)
}
