package sheet

import (
	"context"
	"log/slog"

	"github.com/KirkDiggler/godbound-api/internal/entities/godbound"
	"github.com/KirkDiggler/godbound-api/internal/errors"
	chatlog "github.com/KirkDiggler/godbound-api/internal/repositories/chat_log"
)

func (o *orchestrator) addItem(ctx context.Context, input *AddItemInput) (*AddItemOutput, error) {
	vb := errors.NewValidationBuilder()
	errors.ValidateRequired("user_id", input.UserID, vb)
	errors.ValidateRequired("subject_id", input.SubjectID, vb)
	defaultName, known := o.ruleset.DefaultItemName(input.Type)
	if !known {
		vb.InvalidField("type", "unknown item type")
	}
	if input.EffortCost < 0 {
		vb.InvalidField("effort_cost", "cannot be negative")
	}
	if err := vb.Build(); err != nil {
		return nil, err
	}

	name := input.Name
	if name == "" {
		name = defaultName
	}

	item := godbound.Item{
		ID:          o.idGen.Generate(),
		Name:        name,
		Type:        input.Type,
		Description: input.Description,
		EffortCost:  input.EffortCost,
	}

	err := o.withSubject(ctx, input.UserID, input.SubjectID, func(subj *godbound.Subject) error {
		subj.Items = append(subj.Items, item)
		return o.save(ctx, subj)
	})
	if err != nil {
		return nil, err
	}

	slog.InfoContext(ctx, "item added",
		"subject_id", input.SubjectID,
		"item_id", item.ID,
		"type", item.Type)

	return &AddItemOutput{Item: &item}, nil
}

func (o *orchestrator) deleteItem(ctx context.Context, input *DeleteItemInput) (*DeleteItemOutput, error) {
	vb := errors.NewValidationBuilder()
	errors.ValidateRequired("user_id", input.UserID, vb)
	errors.ValidateRequired("subject_id", input.SubjectID, vb)
	errors.ValidateRequired("item_id", input.ItemID, vb)
	if err := vb.Build(); err != nil {
		return nil, err
	}

	err := o.withSubject(ctx, input.UserID, input.SubjectID, func(subj *godbound.Subject) error {
		if !subj.RemoveItem(input.ItemID) {
			return errors.NotFoundf("item %s not found", input.ItemID)
		}
		return o.save(ctx, subj)
	})
	if err != nil {
		return nil, err
	}

	return &DeleteItemOutput{}, nil
}

func (o *orchestrator) demonstratePower(
	ctx context.Context,
	input *DemonstratePowerInput,
) (*DemonstratePowerOutput, error) {
	vb := errors.NewValidationBuilder()
	errors.ValidateRequired("user_id", input.UserID, vb)
	errors.ValidateRequired("subject_id", input.SubjectID, vb)
	errors.ValidateRequired("item_id", input.ItemID, vb)
	if err := vb.Build(); err != nil {
		return nil, err
	}

	var output *DemonstratePowerOutput
	err := o.withSubject(ctx, input.UserID, input.SubjectID, func(subj *godbound.Subject) error {
		found, ok := subj.FindItem(input.ItemID)
		if !ok {
			return errors.NotFoundf("item %s not found", input.ItemID)
		}
		item := *found

		msg, err := o.postItem(ctx, input.UserID, subj, &item, chatlog.KindPower)
		if err != nil {
			return err
		}

		output = &DemonstratePowerOutput{Item: &item, Message: msg}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return output, nil
}

func (o *orchestrator) chooseTactic(ctx context.Context, input *ChooseTacticInput) (*ChooseTacticOutput, error) {
	vb := errors.NewValidationBuilder()
	errors.ValidateRequired("user_id", input.UserID, vb)
	errors.ValidateRequired("subject_id", input.SubjectID, vb)
	if err := vb.Build(); err != nil {
		return nil, err
	}

	var output *ChooseTacticOutput
	err := o.withSubject(ctx, input.UserID, input.SubjectID, func(subj *godbound.Subject) error {
		tactics := subj.ItemsOfType(godbound.ItemTypeTactic)
		if len(tactics) == 0 {
			return errors.FailedPrecondition("this sheet has no tactics to choose from")
		}

		pick, err := o.roller.Roll(len(tactics))
		if err != nil {
			return errors.Wrap(err, "failed to roll for tactic")
		}
		if pick < 1 || pick > len(tactics) {
			return errors.Internalf("roller returned %d for a d%d", pick, len(tactics))
		}
		item := tactics[pick-1]

		msg, err := o.postItem(ctx, input.UserID, subj, &item, chatlog.KindTactic)
		if err != nil {
			return err
		}

		output = &ChooseTacticOutput{Item: &item, Message: msg}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return output, nil
}

func (o *orchestrator) postItem(
	ctx context.Context,
	userID string,
	subj *godbound.Subject,
	item *godbound.Item,
	kind chatlog.Kind,
) (*chatlog.Message, error) {
	content, err := o.renderer.RenderItem(item)
	if err != nil {
		return nil, err
	}

	msg, err := o.postMessage(ctx, subj, post{
		userID:  userID,
		kind:    kind,
		content: content,
	})
	if err != nil {
		return nil, err
	}

	o.publish(ctx, EventPowerDemonstrated, subj, map[string]any{
		"user_id":    userID,
		"item_id":    item.ID,
		"item_type":  string(item.Type),
		"message_id": msg.ID,
	})

	slog.InfoContext(ctx, "item posted to chat",
		"subject_id", subj.ID,
		"item_id", item.ID,
		"kind", kind)

	return msg, nil
}
