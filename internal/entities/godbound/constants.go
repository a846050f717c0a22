package godbound

// Attribute names
const (
	AttributeStrength     = "strength"
	AttributeDexterity    = "dexterity"
	AttributeConstitution = "constitution"
	AttributeWisdom       = "wisdom"
	AttributeIntelligence = "intelligence"
	AttributeCharisma     = "charisma"
)

// Save names
const (
	SaveHardiness = "hardiness"
	SaveEvasion   = "evasion"
	SaveSpirit    = "spirit"
)

// SubjectType distinguishes the sheet layouts
type SubjectType string

// Subject types
const (
	SubjectTypeCharacter SubjectType = "character"
	SubjectTypeNPC       SubjectType = "npc"
)

// EffortCategory names how long committed effort stays committed
type EffortCategory string

// Effort categories
const (
	EffortScene  EffortCategory = "scene"
	EffortDay    EffortCategory = "day"
	EffortAtWill EffortCategory = "atWill"
)

// EffortCategories lists every category in display order
var EffortCategories = []EffortCategory{EffortAtWill, EffortScene, EffortDay}

// ItemType names the kind of embedded item on a sheet
type ItemType string

// Item types
const (
	ItemTypeWord    ItemType = "word"
	ItemTypeGift    ItemType = "gift"
	ItemTypeMiracle ItemType = "miracle"
	ItemTypeFact    ItemType = "fact"
	ItemTypeItem    ItemType = "item"
	ItemTypeWeapon  ItemType = "weapon"
	ItemTypeArmor   ItemType = "armor"
	ItemTypeTactic  ItemType = "tactic"
)

// IsPower reports whether items of this type can have effort committed to them
func (t ItemType) IsPower() bool {
	return t == ItemTypeGift || t == ItemTypeMiracle || t == ItemTypeWord
}
