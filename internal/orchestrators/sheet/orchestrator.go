// Package sheet implements the character sheet controller: typed operations
// on a subject, the intent dispatch table the UI drives them through, and the
// sheet view.
package sheet

//go:generate mockgen -destination=mock/mock_service.go -package=sheetmock github.com/KirkDiggler/godbound-api/internal/orchestrators/sheet Service

import (
	"context"
	"log/slog"

	"github.com/KirkDiggler/rpg-toolkit/dice"
	"github.com/KirkDiggler/rpg-toolkit/events"

	"github.com/KirkDiggler/godbound-api/internal/engine/check"
	"github.com/KirkDiggler/godbound-api/internal/errors"
	"github.com/KirkDiggler/godbound-api/internal/metrics"
	"github.com/KirkDiggler/godbound-api/internal/pkg/idgen"
	"github.com/KirkDiggler/godbound-api/internal/render"
	chatlog "github.com/KirkDiggler/godbound-api/internal/repositories/chat_log"
	"github.com/KirkDiggler/godbound-api/internal/repositories/subject"
	"github.com/KirkDiggler/godbound-api/internal/rules"
)

// Sheet is the controller surface a host drives: render the sheet and bind
// its intents to a dispatch table
type Sheet interface {
	Render(ctx context.Context, input *RenderInput) (*RenderOutput, error)
	BindEvents(d *Dispatcher) error
}

// Service defines the sheet operations
type Service interface {
	Sheet

	// Dispatch routes a UI intent through the bound dispatch table
	Dispatch(ctx context.Context, req *Request) (*Response, error)

	CreateSubject(ctx context.Context, input *CreateSubjectInput) (*CreateSubjectOutput, error)
	GetSubject(ctx context.Context, input *GetSubjectInput) (*GetSubjectOutput, error)
	UpdateAttributes(ctx context.Context, input *UpdateAttributesInput) (*UpdateAttributesOutput, error)

	RollAttributeCheck(ctx context.Context, input *RollAttributeCheckInput) (*RollCheckOutput, error)
	RollSavingThrow(ctx context.Context, input *RollSavingThrowInput) (*RollCheckOutput, error)
	RollMorale(ctx context.Context, input *RollMoraleInput) (*RollMoraleOutput, error)

	SpendEffort(ctx context.Context, input *SpendEffortInput) (*SpendEffortOutput, error)
	CommitEffort(ctx context.Context, input *CommitEffortInput) (*CommitEffortOutput, error)
	ApplyDamage(ctx context.Context, input *ApplyDamageInput) (*ApplyDamageOutput, error)
	ApplyHitDiceDamage(ctx context.Context, input *ApplyDamageInput) (*ApplyDamageOutput, error)

	AddItem(ctx context.Context, input *AddItemInput) (*AddItemOutput, error)
	DeleteItem(ctx context.Context, input *DeleteItemInput) (*DeleteItemOutput, error)
	DemonstratePower(ctx context.Context, input *DemonstratePowerInput) (*DemonstratePowerOutput, error)
	ChooseTactic(ctx context.Context, input *ChooseTacticInput) (*ChooseTacticOutput, error)

	ListMessages(ctx context.Context, input *ListMessagesInput) (*ListMessagesOutput, error)
	ClearMessages(ctx context.Context, input *ClearMessagesInput) (*ClearMessagesOutput, error)
}

// Config holds the dependencies for the sheet orchestrator
type Config struct {
	SubjectRepo subject.Repository
	ChatLogRepo chatlog.Repository
	Roller      dice.Roller
	EventBus    events.EventBus
	Renderer    *render.Renderer
	IDGenerator idgen.Generator
	Host        HostContext

	// Ruleset defaults to rules.Default()
	Ruleset *rules.Ruleset

	// Metrics is optional
	Metrics *metrics.Metrics

	// DiceSound is attached to roll records when there is no dice animator
	DiceSound string

	// AdjustmentFloor is the smallest typed damage adjustment accepted
	AdjustmentFloor int
}

// Validate ensures all required dependencies are provided
func (c *Config) Validate() error {
	if c == nil {
		return errors.InvalidArgument("config is required")
	}

	vb := errors.NewValidationBuilder()

	if c.SubjectRepo == nil {
		vb.RequiredField("SubjectRepo")
	}
	if c.ChatLogRepo == nil {
		vb.RequiredField("ChatLogRepo")
	}
	if c.Roller == nil {
		vb.RequiredField("Roller")
	}
	if c.EventBus == nil {
		vb.RequiredField("EventBus")
	}
	if c.Renderer == nil {
		vb.RequiredField("Renderer")
	}
	if c.IDGenerator == nil {
		vb.RequiredField("IDGenerator")
	}
	if c.Host.Notifier == nil {
		vb.RequiredField("Host.Notifier")
	}

	return vb.Build()
}

type orchestrator struct {
	subjectRepo subject.Repository
	chatLogRepo chatlog.Repository
	roller      dice.Roller
	resolver    *check.Resolver
	eventBus    events.EventBus
	renderer    *render.Renderer
	ruleset     *rules.Ruleset
	idGen       idgen.Generator
	notifier    Notifier
	animator    DiceAnimator
	metrics     *metrics.Metrics

	diceSound       string
	adjustmentFloor int

	locks      *subjectLocks
	dispatcher *Dispatcher
}

// NewOrchestrator creates a sheet orchestrator with its intents bound
func NewOrchestrator(cfg *Config) (Service, error) {
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid config")
	}

	resolver, err := check.NewResolver(&check.Config{Roller: cfg.Roller})
	if err != nil {
		return nil, errors.Wrap(err, "failed to create resolver")
	}

	ruleset := cfg.Ruleset
	if ruleset == nil {
		ruleset = rules.Default()
	}

	o := &orchestrator{
		subjectRepo:     cfg.SubjectRepo,
		chatLogRepo:     cfg.ChatLogRepo,
		roller:          cfg.Roller,
		resolver:        resolver,
		eventBus:        cfg.EventBus,
		renderer:        cfg.Renderer,
		ruleset:         ruleset,
		idGen:           cfg.IDGenerator,
		notifier:        cfg.Host.Notifier,
		animator:        cfg.Host.DiceAnimator,
		metrics:         cfg.Metrics,
		diceSound:       cfg.DiceSound,
		adjustmentFloor: cfg.AdjustmentFloor,
		locks:           newSubjectLocks(),
		dispatcher:      NewDispatcher(),
	}

	if err := o.BindEvents(o.dispatcher); err != nil {
		return nil, errors.Wrap(err, "failed to bind sheet intents")
	}

	return o, nil
}

// Dispatch routes a UI intent to its handler
func (o *orchestrator) Dispatch(ctx context.Context, req *Request) (*Response, error) {
	resp, err := o.dispatcher.Dispatch(ctx, req)

	if req != nil {
		o.metrics.ObserveIntent(string(req.Intent), err)
		if err != nil {
			slog.InfoContext(ctx, "sheet intent refused",
				"intent", req.Intent,
				"subject_id", req.SubjectID,
				"user_id", req.UserID,
				"error", err.Error())
			return nil, o.notify(ctx, req.UserID, err)
		}
	}

	return resp, err
}

// notify shows user-facing errors to the user and passes err through
func (o *orchestrator) notify(ctx context.Context, userID string, err error) error {
	if err != nil && userID != "" && errors.IsUserFacing(err) {
		o.notifier.Error(ctx, userID, errors.GetMessage(err))
	}
	return err
}

func (o *orchestrator) CreateSubject(ctx context.Context, input *CreateSubjectInput) (*CreateSubjectOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}
	out, err := o.createSubject(ctx, input)
	return out, o.notify(ctx, input.UserID, err)
}

func (o *orchestrator) GetSubject(ctx context.Context, input *GetSubjectInput) (*GetSubjectOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}
	return o.getSubject(ctx, input)
}

func (o *orchestrator) UpdateAttributes(
	ctx context.Context,
	input *UpdateAttributesInput,
) (*UpdateAttributesOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}
	out, err := o.updateAttributes(ctx, input)
	return out, o.notify(ctx, input.UserID, err)
}

func (o *orchestrator) RollAttributeCheck(
	ctx context.Context,
	input *RollAttributeCheckInput,
) (*RollCheckOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}
	out, err := o.rollAttributeCheck(ctx, input)
	return out, o.notify(ctx, input.UserID, err)
}

func (o *orchestrator) RollSavingThrow(ctx context.Context, input *RollSavingThrowInput) (*RollCheckOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}
	out, err := o.rollSavingThrow(ctx, input)
	return out, o.notify(ctx, input.UserID, err)
}

func (o *orchestrator) RollMorale(ctx context.Context, input *RollMoraleInput) (*RollMoraleOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}
	out, err := o.rollMorale(ctx, input)
	return out, o.notify(ctx, input.UserID, err)
}

func (o *orchestrator) SpendEffort(ctx context.Context, input *SpendEffortInput) (*SpendEffortOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}
	out, err := o.spendEffort(ctx, input)
	return out, o.notify(ctx, input.UserID, err)
}

func (o *orchestrator) CommitEffort(ctx context.Context, input *CommitEffortInput) (*CommitEffortOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}
	out, err := o.commitEffort(ctx, input)
	return out, o.notify(ctx, input.UserID, err)
}

func (o *orchestrator) ApplyDamage(ctx context.Context, input *ApplyDamageInput) (*ApplyDamageOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}
	out, err := o.applyDamage(ctx, input, poolHP)
	return out, o.notify(ctx, input.UserID, err)
}

func (o *orchestrator) ApplyHitDiceDamage(ctx context.Context, input *ApplyDamageInput) (*ApplyDamageOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}
	out, err := o.applyDamage(ctx, input, poolHitDice)
	return out, o.notify(ctx, input.UserID, err)
}

func (o *orchestrator) AddItem(ctx context.Context, input *AddItemInput) (*AddItemOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}
	out, err := o.addItem(ctx, input)
	return out, o.notify(ctx, input.UserID, err)
}

func (o *orchestrator) DeleteItem(ctx context.Context, input *DeleteItemInput) (*DeleteItemOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}
	out, err := o.deleteItem(ctx, input)
	return out, o.notify(ctx, input.UserID, err)
}

func (o *orchestrator) DemonstratePower(
	ctx context.Context,
	input *DemonstratePowerInput,
) (*DemonstratePowerOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}
	out, err := o.demonstratePower(ctx, input)
	return out, o.notify(ctx, input.UserID, err)
}

func (o *orchestrator) ChooseTactic(ctx context.Context, input *ChooseTacticInput) (*ChooseTacticOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}
	out, err := o.chooseTactic(ctx, input)
	return out, o.notify(ctx, input.UserID, err)
}

func (o *orchestrator) ListMessages(ctx context.Context, input *ListMessagesInput) (*ListMessagesOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}
	return o.listMessages(ctx, input)
}

func (o *orchestrator) ClearMessages(ctx context.Context, input *ClearMessagesInput) (*ClearMessagesOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}
	out, err := o.clearMessages(ctx, input)
	return out, o.notify(ctx, input.UserID, err)
}

func (o *orchestrator) Render(ctx context.Context, input *RenderInput) (*RenderOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}
	return o.render(ctx, input)
}
