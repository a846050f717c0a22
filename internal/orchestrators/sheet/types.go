package sheet

import (
	"github.com/KirkDiggler/godbound-api/internal/engine/check"
	"github.com/KirkDiggler/godbound-api/internal/entities/godbound"
	chatlog "github.com/KirkDiggler/godbound-api/internal/repositories/chat_log"
)

// CreateSubjectInput contains the fields for a new sheet. Attributes left out
// start at 10.
type CreateSubjectInput struct {
	UserID     string
	Name       string
	Type       godbound.SubjectType
	Level      int
	Attributes map[string]int
	Effort     int
	HP         int
	HitDice    int
	Morale     int
	TokenID    string
	Image      string
}

// CreateSubjectOutput contains the created subject
type CreateSubjectOutput struct {
	Subject *godbound.Subject
}

// GetSubjectInput identifies a subject
type GetSubjectInput struct {
	SubjectID string
}

// GetSubjectOutput contains the subject
type GetSubjectOutput struct {
	Subject *godbound.Subject
}

// UpdateAttributesInput changes attribute scores and optionally level. Saves
// are recomputed.
type UpdateAttributesInput struct {
	UserID     string
	SubjectID  string
	Attributes map[string]int

	// Level is left unchanged when zero
	Level int
}

// UpdateAttributesOutput contains the updated subject
type UpdateAttributesOutput struct {
	Subject *godbound.Subject
}

// RollAttributeCheckInput requests an attribute check
type RollAttributeCheckInput struct {
	UserID     string
	SubjectID  string
	Attribute  string
	Difficulty int
	Auxiliary  int
}

// RollSavingThrowInput requests a saving throw
type RollSavingThrowInput struct {
	UserID     string
	SubjectID  string
	Save       string
	Difficulty int
}

// RollCheckOutput is the result of an attribute check or saving throw
type RollCheckOutput struct {
	Result  *check.Result
	Message *chatlog.Message
}

// RollMoraleInput requests a morale check
type RollMoraleInput struct {
	UserID    string
	SubjectID string
}

// RollMoraleOutput is the result of a morale check
type RollMoraleOutput struct {
	Result  *check.MoraleResult
	Message *chatlog.Message
}

// SpendEffortInput commits (positive) or reclaims (negative) effort
type SpendEffortInput struct {
	UserID    string
	SubjectID string
	Category  godbound.EffortCategory
	Change    int
}

// SpendEffortOutput contains the effort after the change
type SpendEffortOutput struct {
	Effort godbound.Effort
}

// CommitEffortInput commits effort for a power item
type CommitEffortInput struct {
	UserID    string
	SubjectID string
	ItemID    string
	Category  godbound.EffortCategory
}

// CommitEffortOutput contains the effort after the commit
type CommitEffortOutput struct {
	Effort godbound.Effort
	Item   *godbound.Item
}

// ApplyDamageInput subtracts from a pool
type ApplyDamageInput struct {
	UserID    string
	SubjectID string
	Amount    int
}

// ApplyDamageOutput contains the pool after damage
type ApplyDamageOutput struct {
	Pool godbound.Pool
}

// AddItemInput adds an item. Name defaults to the ruleset's placeholder for
// the type.
type AddItemInput struct {
	UserID      string
	SubjectID   string
	Type        godbound.ItemType
	Name        string
	Description string
	EffortCost  int
}

// AddItemOutput contains the new item
type AddItemOutput struct {
	Item *godbound.Item
}

// DeleteItemInput removes an item
type DeleteItemInput struct {
	UserID    string
	SubjectID string
	ItemID    string
}

// DeleteItemOutput is empty on success
type DeleteItemOutput struct{}

// DemonstratePowerInput posts an item to the chat log
type DemonstratePowerInput struct {
	UserID    string
	SubjectID string
	ItemID    string
}

// DemonstratePowerOutput contains the posted message
type DemonstratePowerOutput struct {
	Item    *godbound.Item
	Message *chatlog.Message
}

// ChooseTacticInput picks one of the subject's tactics at random
type ChooseTacticInput struct {
	UserID    string
	SubjectID string
}

// ChooseTacticOutput contains the chosen tactic
type ChooseTacticOutput struct {
	Item    *godbound.Item
	Message *chatlog.Message
}

// ListMessagesInput reads a subject's chat log
type ListMessagesInput struct {
	SubjectID string
	Limit     int
}

// ListMessagesOutput contains messages oldest first
type ListMessagesOutput struct {
	Messages []*chatlog.Message
}

// ClearMessagesInput clears a subject's chat log
type ClearMessagesInput struct {
	UserID    string
	SubjectID string
}

// ClearMessagesOutput reports how many messages were removed
type ClearMessagesOutput struct {
	Deleted int
}

// RenderInput asks for the view of a subject's sheet
type RenderInput struct {
	UserID    string
	SubjectID string
}

// RenderOutput contains the sheet view
type RenderOutput struct {
	View *View
}
