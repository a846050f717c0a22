package sheet

import (
	"context"
	"slices"
	"sync"

	"github.com/KirkDiggler/godbound-api/internal/engine/check"
	"github.com/KirkDiggler/godbound-api/internal/entities/godbound"
	"github.com/KirkDiggler/godbound-api/internal/errors"
	chatlog "github.com/KirkDiggler/godbound-api/internal/repositories/chat_log"
)

// Intent names a UI action on the sheet
type Intent string

// Sheet intents
const (
	IntentAttributeCheck   Intent = "attribute-check"
	IntentSavingThrow      Intent = "saving-throw"
	IntentMoraleCheck      Intent = "morale-check"
	IntentSpendEffort      Intent = "spend-effort"
	IntentCommitEffort     Intent = "commit-effort"
	IntentApplyDamage      Intent = "apply-damage"
	IntentApplyHDDamage    Intent = "apply-hd-damage"
	IntentAddItem          Intent = "add-item"
	IntentDeleteItem       Intent = "delete-item"
	IntentDemonstratePower Intent = "demonstrate-power"
	IntentChooseTactic     Intent = "choose-tactic"
)

// Request is an intent raised by a user against a subject. Params carry the
// raw values the UI collected (attribute name, typed adjustments, item ids).
type Request struct {
	Intent    Intent            `json:"intent"`
	UserID    string            `json:"user_id"`
	SubjectID string            `json:"subject_id"`
	Params    map[string]string `json:"params,omitempty"`
}

// Param returns a parameter or the empty string
func (r *Request) Param(name string) string {
	if r.Params == nil {
		return ""
	}
	return r.Params[name]
}

// Response is what a handled intent produced. Only the fields relevant to the
// intent are set.
type Response struct {
	Intent  Intent              `json:"intent"`
	Check   *check.Result       `json:"check,omitempty"`
	Morale  *check.MoraleResult `json:"morale,omitempty"`
	Message *chatlog.Message    `json:"message,omitempty"`
	Effort  *godbound.Effort    `json:"effort,omitempty"`
	Pool    *godbound.Pool      `json:"pool,omitempty"`
	Item    *godbound.Item      `json:"item,omitempty"`
}

// HandlerFunc handles one intent
type HandlerFunc func(ctx context.Context, req *Request) (*Response, error)

// Dispatcher routes intents to their handlers
type Dispatcher struct {
	mu       sync.RWMutex
	handlers map[Intent]HandlerFunc
}

// NewDispatcher creates an empty dispatch table
func NewDispatcher() *Dispatcher {
	return &Dispatcher{handlers: make(map[Intent]HandlerFunc)}
}

// Register binds a handler to an intent. Each intent binds once.
func (d *Dispatcher) Register(intent Intent, handler HandlerFunc) error {
	if intent == "" {
		return errors.InvalidArgument("intent is required")
	}
	if handler == nil {
		return errors.InvalidArgumentf("handler for %s is required", intent)
	}

	d.mu.Lock()
	defer d.mu.Unlock()

	if _, exists := d.handlers[intent]; exists {
		return errors.AlreadyExistsf("intent %s is already bound", intent)
	}
	d.handlers[intent] = handler
	return nil
}

// Dispatch validates the request envelope and runs the bound handler
func (d *Dispatcher) Dispatch(ctx context.Context, req *Request) (*Response, error) {
	if req == nil {
		return nil, errors.InvalidArgument("request is required")
	}

	vb := errors.NewValidationBuilder()
	errors.ValidateRequired("intent", string(req.Intent), vb)
	errors.ValidateRequired("user_id", req.UserID, vb)
	errors.ValidateRequired("subject_id", req.SubjectID, vb)
	if err := vb.Build(); err != nil {
		return nil, err
	}

	d.mu.RLock()
	handler, ok := d.handlers[req.Intent]
	d.mu.RUnlock()
	if !ok {
		return nil, errors.InvalidArgumentf("unknown intent %q", req.Intent).
			WithMeta("intent", string(req.Intent))
	}

	resp, err := handler(ctx, req)
	if err != nil {
		return nil, err
	}
	resp.Intent = req.Intent
	return resp, nil
}

// Intents lists the bound intents in sorted order
func (d *Dispatcher) Intents() []Intent {
	d.mu.RLock()
	defer d.mu.RUnlock()

	out := make([]Intent, 0, len(d.handlers))
	for intent := range d.handlers {
		out = append(out, intent)
	}
	slices.Sort(out)
	return out
}
