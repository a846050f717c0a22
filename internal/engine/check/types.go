package check

// Kind identifies the type of roll and the template its chat record uses
type Kind string

// Roll kinds
const (
	KindAttributeCheck Kind = "attribute-check"
	KindSavingThrow    Kind = "saving-throw"
	KindMorale         Kind = "morale-check"
)

// Difficulty labels
const (
	LabelVeryHard = "very hard"
	LabelHard     = "hard"
	LabelNormal   = "normal"
	LabelEasy     = "easy"
)

// Difficulty modifiers offered by the roll dialogs. The resolver accepts any
// integer; these are the usual choices.
const (
	DifficultyVeryHard = -8
	DifficultyHard     = -4
	DifficultyNormal   = 0
	DifficultyEasy     = 4
)

// Subject is the read-only view of a sheet a check is resolved against
type Subject interface {
	AttributeScore(name string) (int, bool)
	SaveTarget(name string) (int, bool)
}

// MoraleSubject is anything with a morale score
type MoraleSubject interface {
	MoraleScore() int
}

// Result is the outcome of an attribute check or saving throw.
// Succeeded is always Total >= Target.
type Result struct {
	Kind     Kind   `json:"kind"`
	Category string `json:"category"`
	Formula  string `json:"formula"`

	// Natural is the face shown on the d20
	Natural            int `json:"natural"`
	DifficultyModifier int `json:"difficulty_modifier"`
	AuxiliaryModifier  int `json:"auxiliary_modifier"`

	Total           int    `json:"total"`
	Target          int    `json:"target"`
	Succeeded       bool   `json:"succeeded"`
	DifficultyLabel string `json:"difficulty_label"`
}

// Failed is the complement of Succeeded
func (r *Result) Failed() bool {
	return !r.Succeeded
}

// MoraleResult is the outcome of a morale check. The subject holds when the
// 2d6 total does not exceed its morale.
type MoraleResult struct {
	Formula string `json:"formula"`
	Dice    []int  `json:"dice"`
	Total   int    `json:"total"`
	Morale  int    `json:"morale"`
	Holds   bool   `json:"holds"`
}
