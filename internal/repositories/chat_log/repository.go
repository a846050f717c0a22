// Package chatlog provides repository interface and types for a subject's
// chat log: the rendered records produced by sheet actions
package chatlog

import (
	"context"
	"time"
)

//go:generate mockgen -destination=mock/mock_repository.go -package=chatlogmock github.com/KirkDiggler/godbound-api/internal/repositories/chat_log Repository

// Kind names what produced a message
type Kind string

// Message kinds
const (
	KindAttributeCheck Kind = "attribute-check"
	KindSavingThrow    Kind = "saving-throw"
	KindMoraleCheck    Kind = "morale-check"
	KindPower          Kind = "power"
	KindTactic         Kind = "tactic"
)

// Message is a single chat record
type Message struct {
	ID        string `json:"id"`
	SubjectID string `json:"subject_id"`
	UserID    string `json:"user_id"`

	// Speaker is the display name of the subject
	Speaker string `json:"speaker"`
	Kind    Kind   `json:"kind"`

	// Content is rendered HTML
	Content string `json:"content"`

	// Roll details, empty for non-roll messages
	Formula string `json:"formula,omitempty"`
	Dice    []int  `json:"dice,omitempty"`
	Total   int    `json:"total,omitempty"`

	// Sound to play when the record is shown
	Sound string `json:"sound,omitempty"`

	CreatedAt time.Time `json:"created_at"`
}

// AppendInput contains parameters for appending a message
type AppendInput struct {
	Message *Message
}

// AppendOutput contains the stored message
type AppendOutput struct {
	Message *Message
}

// ListInput contains parameters for listing a subject's messages
type ListInput struct {
	SubjectID string

	// Limit returns only the most recent messages when positive
	Limit int
}

// ListOutput contains messages oldest first
type ListOutput struct {
	Messages []*Message
}

// DeleteInput contains parameters for clearing a subject's log
type DeleteInput struct {
	SubjectID string
}

// DeleteOutput contains the result of clearing a log
type DeleteOutput struct {
	MessagesDeleted int
}

// Repository defines the interface for chat log storage operations
type Repository interface {
	// Append adds a message to the end of the subject's log and refreshes its TTL
	Append(ctx context.Context, input AppendInput) (*AppendOutput, error)

	// List returns the subject's messages oldest first
	List(ctx context.Context, input ListInput) (*ListOutput, error)

	// Delete clears the subject's log
	Delete(ctx context.Context, input DeleteInput) (*DeleteOutput, error)
}
