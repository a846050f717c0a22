package v1alpha1

import (
	"github.com/KirkDiggler/godbound-api/internal/engine/check"
	"github.com/KirkDiggler/godbound-api/internal/entities/godbound"
	"github.com/KirkDiggler/godbound-api/internal/orchestrators/sheet"
	chatlog "github.com/KirkDiggler/godbound-api/internal/repositories/chat_log"
)

// DispatchRequest carries a UI intent
type DispatchRequest struct {
	Intent    string            `json:"intent"`
	UserID    string            `json:"user_id"`
	SubjectID string            `json:"subject_id"`
	Params    map[string]string `json:"params,omitempty"`
}

// DispatchResponse carries whatever the intent produced
type DispatchResponse struct {
	Result *sheet.Response `json:"result"`
}

// ResolveAttributeCheckRequest asks for an attribute check
type ResolveAttributeCheckRequest struct {
	UserID             string `json:"user_id"`
	SubjectID          string `json:"subject_id"`
	Attribute          string `json:"attribute"`
	DifficultyModifier int    `json:"difficulty_modifier"`
	AuxiliaryModifier  int    `json:"auxiliary_modifier"`
}

// ResolveSavingThrowRequest asks for a saving throw
type ResolveSavingThrowRequest struct {
	UserID             string `json:"user_id"`
	SubjectID          string `json:"subject_id"`
	Save               string `json:"save"`
	DifficultyModifier int    `json:"difficulty_modifier"`
}

// ResolveCheckResponse is the result of either roll
type ResolveCheckResponse struct {
	Result  *check.Result    `json:"result"`
	Message *chatlog.Message `json:"message"`
}

// CreateSubjectRequest creates a sheet
type CreateSubjectRequest struct {
	UserID     string         `json:"user_id"`
	Name       string         `json:"name"`
	Type       string         `json:"type,omitempty"`
	Level      int            `json:"level,omitempty"`
	Attributes map[string]int `json:"attributes,omitempty"`
	Effort     int            `json:"effort,omitempty"`
	HP         int            `json:"hp,omitempty"`
	HitDice    int            `json:"hit_dice,omitempty"`
	Morale     int            `json:"morale,omitempty"`
	TokenID    string         `json:"token_id,omitempty"`
	Image      string         `json:"image,omitempty"`
}

// GetSubjectRequest identifies a sheet
type GetSubjectRequest struct {
	SubjectID string `json:"subject_id"`
}

// SubjectResponse carries a sheet
type SubjectResponse struct {
	Subject *godbound.Subject `json:"subject"`
}

// RenderSheetRequest asks for the sheet view
type RenderSheetRequest struct {
	UserID    string `json:"user_id"`
	SubjectID string `json:"subject_id"`
}

// RenderSheetResponse carries the sheet view
type RenderSheetResponse struct {
	View *sheet.View `json:"view"`
}

// ListMessagesRequest reads a chat log. Limit of zero returns everything.
type ListMessagesRequest struct {
	SubjectID string `json:"subject_id"`
	Limit     int    `json:"limit,omitempty"`
}

// ListMessagesResponse lists messages oldest first
type ListMessagesResponse struct {
	Messages []*chatlog.Message `json:"messages"`
}

// ClearMessagesRequest clears a chat log
type ClearMessagesRequest struct {
	UserID    string `json:"user_id"`
	SubjectID string `json:"subject_id"`
}

// ClearMessagesResponse reports the number of removed messages
type ClearMessagesResponse struct {
	Deleted int `json:"deleted"`
}
