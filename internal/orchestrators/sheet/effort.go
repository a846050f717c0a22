package sheet

import (
	"context"
	"log/slog"
	"slices"

	"github.com/KirkDiggler/godbound-api/internal/engine/resources"
	"github.com/KirkDiggler/godbound-api/internal/entities/godbound"
	"github.com/KirkDiggler/godbound-api/internal/errors"
)

const defaultPowerEffortCost = 1

func validateEffortCategory(category godbound.EffortCategory) error {
	if !slices.Contains(godbound.EffortCategories, category) {
		return errors.InvalidModifierf("unknown effort category %q", category).
			WithMeta("category", string(category))
	}
	return nil
}

func (o *orchestrator) spendEffort(ctx context.Context, input *SpendEffortInput) (*SpendEffortOutput, error) {
	vb := errors.NewValidationBuilder()
	errors.ValidateRequired("user_id", input.UserID, vb)
	errors.ValidateRequired("subject_id", input.SubjectID, vb)
	if err := vb.Build(); err != nil {
		return nil, err
	}
	if err := validateEffortCategory(input.Category); err != nil {
		return nil, err
	}
	if input.Change == 0 {
		return nil, errors.InvalidModifier("effort change cannot be zero")
	}

	var output *SpendEffortOutput
	err := o.withSubject(ctx, input.UserID, input.SubjectID, func(subj *godbound.Subject) error {
		effort, err := o.changeEffort(ctx, input.UserID, subj, input.Category, input.Change, "")
		if err != nil {
			return err
		}
		output = &SpendEffortOutput{Effort: effort}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return output, nil
}

func (o *orchestrator) commitEffort(ctx context.Context, input *CommitEffortInput) (*CommitEffortOutput, error) {
	vb := errors.NewValidationBuilder()
	errors.ValidateRequired("user_id", input.UserID, vb)
	errors.ValidateRequired("subject_id", input.SubjectID, vb)
	errors.ValidateRequired("item_id", input.ItemID, vb)
	if err := vb.Build(); err != nil {
		return nil, err
	}
	if err := validateEffortCategory(input.Category); err != nil {
		return nil, err
	}

	var output *CommitEffortOutput
	err := o.withSubject(ctx, input.UserID, input.SubjectID, func(subj *godbound.Subject) error {
		item, ok := subj.FindItem(input.ItemID)
		if !ok {
			return errors.NotFoundf("item %s not found", input.ItemID)
		}
		if !item.Type.IsPower() {
			return errors.FailedPreconditionf("%s is a %s and cannot take effort", item.Name, item.Type)
		}

		cost := item.EffortCost
		if cost <= 0 {
			cost = defaultPowerEffortCost
		}

		effort, err := o.changeEffort(ctx, input.UserID, subj, input.Category, cost, item.ID)
		if err != nil {
			return err
		}

		committed := *item
		output = &CommitEffortOutput{Effort: effort, Item: &committed}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return output, nil
}

// changeEffort applies the change to the loaded subject and stores it
func (o *orchestrator) changeEffort(
	ctx context.Context,
	userID string,
	subj *godbound.Subject,
	category godbound.EffortCategory,
	change int,
	itemID string,
) (godbound.Effort, error) {
	effort, err := resources.ChangeEffort(subj.Effort, category, change)
	if err != nil {
		return subj.Effort, err
	}

	subj.Effort = effort
	if err := o.save(ctx, subj); err != nil {
		return effort, err
	}

	data := map[string]any{
		"user_id":   userID,
		"category":  string(category),
		"change":    change,
		"available": effort.Available(),
	}
	if itemID != "" {
		data["item_id"] = itemID
	}
	o.publish(ctx, EventEffortChanged, subj, data)
	o.metrics.ObserveEffort(string(category), change)

	slog.InfoContext(ctx, "effort changed",
		"subject_id", subj.ID,
		"category", category,
		"change", change,
		"available", effort.Available())

	return effort, nil
}

type poolName string

const (
	poolHP      poolName = "hp"
	poolHitDice poolName = "hit_dice"
)

func (p poolName) of(subj *godbound.Subject) *godbound.Pool {
	if p == poolHitDice {
		return &subj.HitDice
	}
	return &subj.HP
}

func (o *orchestrator) applyDamage(ctx context.Context, input *ApplyDamageInput, pool poolName) (*ApplyDamageOutput, error) {
	vb := errors.NewValidationBuilder()
	errors.ValidateRequired("user_id", input.UserID, vb)
	errors.ValidateRequired("subject_id", input.SubjectID, vb)
	if err := vb.Build(); err != nil {
		return nil, err
	}
	if input.Amount < o.adjustmentFloor {
		return nil, errors.InvalidModifierf("adjustment %d is below the minimum of %d", input.Amount, o.adjustmentFloor)
	}

	var output *ApplyDamageOutput
	err := o.withSubject(ctx, input.UserID, input.SubjectID, func(subj *godbound.Subject) error {
		target := pool.of(subj)
		before := target.Value
		*target = resources.ApplyDamage(*target, input.Amount)

		if err := o.save(ctx, subj); err != nil {
			return err
		}

		o.publish(ctx, EventDamageApplied, subj, map[string]any{
			"user_id": input.UserID,
			"pool":    string(pool),
			"amount":  input.Amount,
			"before":  before,
			"after":   target.Value,
		})
		o.metrics.AddDamage(string(pool), before-target.Value)

		slog.InfoContext(ctx, "damage applied",
			"subject_id", subj.ID,
			"pool", pool,
			"amount", input.Amount,
			"value", target.Value)

		output = &ApplyDamageOutput{Pool: *target}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return output, nil
}
