package testutils

import (
	"github.com/KirkDiggler/godbound-api/internal/entities/godbound"
)

// SampleSubject returns a level 1 character with every attribute at 10 and
// the saves that follow from them
func SampleSubject(id, ownerID string) *godbound.Subject {
	return &godbound.Subject{
		ID:      id,
		OwnerID: ownerID,
		Name:    "Ashen Judge",
		Type:    godbound.SubjectTypeCharacter,
		Level:   1,
		Attributes: map[string]godbound.Attribute{
			godbound.AttributeStrength:     {Score: 10},
			godbound.AttributeDexterity:    {Score: 10},
			godbound.AttributeConstitution: {Score: 10},
			godbound.AttributeWisdom:       {Score: 10},
			godbound.AttributeIntelligence: {Score: 10},
			godbound.AttributeCharisma:     {Score: 10},
		},
		Saves: map[string]godbound.Save{
			godbound.SaveHardiness: {Target: 15},
			godbound.SaveEvasion:   {Target: 15},
			godbound.SaveSpirit:    {Target: 15},
		},
		Effort:  godbound.Effort{Total: 2},
		HP:      godbound.Pool{Value: 8, Max: 8},
		HitDice: godbound.Pool{Value: 1, Max: 1},
		Morale:  8,
	}
}
