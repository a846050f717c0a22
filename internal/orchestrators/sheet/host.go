package sheet

//go:generate mockgen -destination=mock/mock_host.go -package=sheetmock github.com/KirkDiggler/godbound-api/internal/orchestrators/sheet Notifier,DiceAnimator

import (
	"context"
	"log/slog"
)

// Notifier shows a user-facing message to the user who made a request
type Notifier interface {
	Error(ctx context.Context, userID, message string)
}

// AnimateInput describes a roll to animate for a user
type AnimateInput struct {
	UserID    string
	SubjectID string
	Formula   string
	Dice      []int
}

// DiceAnimator plays a dice animation. Optional: when absent roll records
// carry the configured dice sound instead.
type DiceAnimator interface {
	Animate(ctx context.Context, input *AnimateInput) error
}

// HostContext is what the sheet needs from whatever is hosting it
type HostContext struct {
	Notifier     Notifier
	DiceAnimator DiceAnimator
}

// SlogNotifier writes notifications to the structured log
type SlogNotifier struct{}

// Error logs the message at warn level
func (SlogNotifier) Error(ctx context.Context, userID, message string) {
	slog.WarnContext(ctx, "user notification", "user_id", userID, "message", message)
}
