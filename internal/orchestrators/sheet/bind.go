package sheet

import (
	"context"
	"strconv"
	"strings"

	"github.com/KirkDiggler/godbound-api/internal/engine/resources"
	"github.com/KirkDiggler/godbound-api/internal/entities/godbound"
	"github.com/KirkDiggler/godbound-api/internal/errors"
)

// Request parameter names
const (
	ParamAttribute   = "attribute"
	ParamSave        = "save"
	ParamDifficulty  = "difficulty"
	ParamAuxiliary   = "auxiliary"
	ParamCategory    = "category"
	ParamChange      = "change"
	ParamItemID      = "item_id"
	ParamAmount      = "amount"
	ParamItemType    = "item_type"
	ParamName        = "name"
	ParamDescription = "description"
	ParamEffortCost  = "effort_cost"
)

// BindEvents registers a handler for every sheet intent
func (o *orchestrator) BindEvents(d *Dispatcher) error {
	if d == nil {
		return errors.InvalidArgument("dispatcher is required")
	}

	bindings := map[Intent]HandlerFunc{
		IntentAttributeCheck:   o.handleAttributeCheck,
		IntentSavingThrow:      o.handleSavingThrow,
		IntentMoraleCheck:      o.handleMoraleCheck,
		IntentSpendEffort:      o.handleSpendEffort,
		IntentCommitEffort:     o.handleCommitEffort,
		IntentApplyDamage:      o.handleDamage(poolHP),
		IntentApplyHDDamage:    o.handleDamage(poolHitDice),
		IntentAddItem:          o.handleAddItem,
		IntentDeleteItem:       o.handleDeleteItem,
		IntentDemonstratePower: o.handleDemonstratePower,
		IntentChooseTactic:     o.handleChooseTactic,
	}

	for intent, handler := range bindings {
		if err := d.Register(intent, handler); err != nil {
			return err
		}
	}
	return nil
}

// parseModifier reads an optional signed modifier. Empty means zero.
func parseModifier(name, raw string) (int, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return 0, nil
	}
	v, err := strconv.Atoi(raw)
	if err != nil || strconv.Itoa(v) != raw {
		return 0, errors.InvalidModifierf("%s must be a whole number, got %q", name, raw).WithMeta("param", name)
	}
	return v, nil
}

func (o *orchestrator) handleAttributeCheck(ctx context.Context, req *Request) (*Response, error) {
	difficulty, err := parseModifier(ParamDifficulty, req.Param(ParamDifficulty))
	if err != nil {
		return nil, err
	}
	auxiliary, err := parseModifier(ParamAuxiliary, req.Param(ParamAuxiliary))
	if err != nil {
		return nil, err
	}

	out, err := o.rollAttributeCheck(ctx, &RollAttributeCheckInput{
		UserID:     req.UserID,
		SubjectID:  req.SubjectID,
		Attribute:  req.Param(ParamAttribute),
		Difficulty: difficulty,
		Auxiliary:  auxiliary,
	})
	if err != nil {
		return nil, err
	}
	return &Response{Check: out.Result, Message: out.Message}, nil
}

func (o *orchestrator) handleSavingThrow(ctx context.Context, req *Request) (*Response, error) {
	difficulty, err := parseModifier(ParamDifficulty, req.Param(ParamDifficulty))
	if err != nil {
		return nil, err
	}

	out, err := o.rollSavingThrow(ctx, &RollSavingThrowInput{
		UserID:     req.UserID,
		SubjectID:  req.SubjectID,
		Save:       req.Param(ParamSave),
		Difficulty: difficulty,
	})
	if err != nil {
		return nil, err
	}
	return &Response{Check: out.Result, Message: out.Message}, nil
}

func (o *orchestrator) handleMoraleCheck(ctx context.Context, req *Request) (*Response, error) {
	out, err := o.rollMorale(ctx, &RollMoraleInput{UserID: req.UserID, SubjectID: req.SubjectID})
	if err != nil {
		return nil, err
	}
	return &Response{Morale: out.Result, Message: out.Message}, nil
}

func (o *orchestrator) handleSpendEffort(ctx context.Context, req *Request) (*Response, error) {
	raw := req.Param(ParamChange)
	if strings.TrimSpace(raw) == "" {
		return nil, errors.InvalidModifier("change is required")
	}
	change, err := parseModifier(ParamChange, raw)
	if err != nil {
		return nil, err
	}

	out, err := o.spendEffort(ctx, &SpendEffortInput{
		UserID:    req.UserID,
		SubjectID: req.SubjectID,
		Category:  godbound.EffortCategory(req.Param(ParamCategory)),
		Change:    change,
	})
	if err != nil {
		return nil, err
	}
	return &Response{Effort: &out.Effort}, nil
}

func (o *orchestrator) handleCommitEffort(ctx context.Context, req *Request) (*Response, error) {
	out, err := o.commitEffort(ctx, &CommitEffortInput{
		UserID:    req.UserID,
		SubjectID: req.SubjectID,
		ItemID:    req.Param(ParamItemID),
		Category:  godbound.EffortCategory(req.Param(ParamCategory)),
	})
	if err != nil {
		return nil, err
	}
	return &Response{Effort: &out.Effort, Item: out.Item}, nil
}

func (o *orchestrator) handleDamage(pool poolName) HandlerFunc {
	return func(ctx context.Context, req *Request) (*Response, error) {
		amount, err := resources.ParseAdjustment(req.Param(ParamAmount), o.adjustmentFloor)
		if err != nil {
			return nil, err
		}

		out, err := o.applyDamage(ctx, &ApplyDamageInput{
			UserID:    req.UserID,
			SubjectID: req.SubjectID,
			Amount:    amount,
		}, pool)
		if err != nil {
			return nil, err
		}
		return &Response{Pool: &out.Pool}, nil
	}
}

func (o *orchestrator) handleAddItem(ctx context.Context, req *Request) (*Response, error) {
	cost := 0
	if raw := req.Param(ParamEffortCost); raw != "" {
		v, err := resources.ParseAdjustment(raw, 0)
		if err != nil {
			return nil, err
		}
		cost = v
	}

	out, err := o.addItem(ctx, &AddItemInput{
		UserID:      req.UserID,
		SubjectID:   req.SubjectID,
		Type:        godbound.ItemType(req.Param(ParamItemType)),
		Name:        req.Param(ParamName),
		Description: req.Param(ParamDescription),
		EffortCost:  cost,
	})
	if err != nil {
		return nil, err
	}
	return &Response{Item: out.Item}, nil
}

func (o *orchestrator) handleDeleteItem(ctx context.Context, req *Request) (*Response, error) {
	if _, err := o.deleteItem(ctx, &DeleteItemInput{
		UserID:    req.UserID,
		SubjectID: req.SubjectID,
		ItemID:    req.Param(ParamItemID),
	}); err != nil {
		return nil, err
	}
	return &Response{}, nil
}

func (o *orchestrator) handleDemonstratePower(ctx context.Context, req *Request) (*Response, error) {
	out, err := o.demonstratePower(ctx, &DemonstratePowerInput{
		UserID:    req.UserID,
		SubjectID: req.SubjectID,
		ItemID:    req.Param(ParamItemID),
	})
	if err != nil {
		return nil, err
	}
	return &Response{Item: out.Item, Message: out.Message}, nil
}

func (o *orchestrator) handleChooseTactic(ctx context.Context, req *Request) (*Response, error) {
	out, err := o.chooseTactic(ctx, &ChooseTacticInput{UserID: req.UserID, SubjectID: req.SubjectID})
	if err != nil {
		return nil, err
	}
	return &Response{Item: out.Item, Message: out.Message}, nil
}
