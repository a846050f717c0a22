package godbound_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/KirkDiggler/godbound-api/internal/entities/godbound"
)

func TestEffort_Available(t *testing.T) {
	e := godbound.Effort{Total: 4, Scene: 1, Day: 1, AtWill: 0}
	assert.Equal(t, 2, e.Committed())
	assert.Equal(t, 2, e.Available())
}

func TestEffort_GetSet(t *testing.T) {
	var e godbound.Effort

	assert.True(t, e.Set(godbound.EffortAtWill, 2))
	v, ok := e.Get(godbound.EffortAtWill)
	assert.True(t, ok)
	assert.Equal(t, 2, v)

	assert.False(t, e.Set("week", 1))
	_, ok = e.Get("week")
	assert.False(t, ok)
}

func TestSubject_Items(t *testing.T) {
	s := &godbound.Subject{
		Items: []godbound.Item{
			{ID: "i1", Name: "Sword of Dawn", Type: godbound.ItemTypeWeapon},
			{ID: "i2", Name: "Hold the Line", Type: godbound.ItemTypeTactic},
			{ID: "i3", Name: "Flank", Type: godbound.ItemTypeTactic},
		},
	}

	item, ok := s.FindItem("i2")
	assert.True(t, ok)
	assert.Equal(t, "Hold the Line", item.Name)

	assert.Len(t, s.ItemsOfType(godbound.ItemTypeTactic), 2)

	assert.True(t, s.RemoveItem("i2"))
	assert.False(t, s.RemoveItem("i2"))
	assert.Len(t, s.ItemsOfType(godbound.ItemTypeTactic), 1)
}

func TestSubject_Lookups(t *testing.T) {
	s := &godbound.Subject{
		Attributes: map[string]godbound.Attribute{godbound.AttributeStrength: {Score: 14}},
		Saves:      map[string]godbound.Save{godbound.SaveHardiness: {Target: 15}},
	}

	score, ok := s.AttributeScore(godbound.AttributeStrength)
	assert.True(t, ok)
	assert.Equal(t, 14, score)

	_, ok = s.AttributeScore("luck")
	assert.False(t, ok)

	target, ok := s.SaveTarget(godbound.SaveHardiness)
	assert.True(t, ok)
	assert.Equal(t, 15, target)
}

func TestItemType_IsPower(t *testing.T) {
	assert.True(t, godbound.ItemTypeGift.IsPower())
	assert.True(t, godbound.ItemTypeMiracle.IsPower())
	assert.False(t, godbound.ItemTypeTactic.IsPower())
}
