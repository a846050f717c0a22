package sheet

import (
	"context"
	"log/slog"

	"github.com/KirkDiggler/godbound-api/internal/engine/check"
	"github.com/KirkDiggler/godbound-api/internal/entities/godbound"
	"github.com/KirkDiggler/godbound-api/internal/errors"
	chatlog "github.com/KirkDiggler/godbound-api/internal/repositories/chat_log"
)

func (o *orchestrator) rollAttributeCheck(ctx context.Context, input *RollAttributeCheckInput) (*RollCheckOutput, error) {
	vb := errors.NewValidationBuilder()
	errors.ValidateRequired("user_id", input.UserID, vb)
	errors.ValidateRequired("subject_id", input.SubjectID, vb)
	errors.ValidateRequired("attribute", input.Attribute, vb)
	if err := vb.Build(); err != nil {
		return nil, err
	}

	var output *RollCheckOutput
	err := o.withSubject(ctx, input.UserID, input.SubjectID, func(subj *godbound.Subject) error {
		result, err := o.resolver.ResolveAttributeCheck(subj, input.Attribute, input.Difficulty, input.Auxiliary)
		if err != nil {
			return err
		}

		msg, err := o.postCheck(ctx, input.UserID, subj, result, chatlog.KindAttributeCheck)
		if err != nil {
			return err
		}

		output = &RollCheckOutput{Result: result, Message: msg}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return output, nil
}

func (o *orchestrator) rollSavingThrow(ctx context.Context, input *RollSavingThrowInput) (*RollCheckOutput, error) {
	vb := errors.NewValidationBuilder()
	errors.ValidateRequired("user_id", input.UserID, vb)
	errors.ValidateRequired("subject_id", input.SubjectID, vb)
	errors.ValidateRequired("save", input.Save, vb)
	if err := vb.Build(); err != nil {
		return nil, err
	}

	var output *RollCheckOutput
	err := o.withSubject(ctx, input.UserID, input.SubjectID, func(subj *godbound.Subject) error {
		result, err := o.resolver.ResolveSavingThrow(subj, input.Save, input.Difficulty)
		if err != nil {
			return err
		}

		msg, err := o.postCheck(ctx, input.UserID, subj, result, chatlog.KindSavingThrow)
		if err != nil {
			return err
		}

		output = &RollCheckOutput{Result: result, Message: msg}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return output, nil
}

// postCheck renders, stores and announces a resolved check
func (o *orchestrator) postCheck(
	ctx context.Context,
	userID string,
	subj *godbound.Subject,
	result *check.Result,
	kind chatlog.Kind,
) (*chatlog.Message, error) {
	content, err := o.renderer.RenderCheck(result)
	if err != nil {
		return nil, err
	}

	msg, err := o.postMessage(ctx, subj, post{
		userID:  userID,
		kind:    kind,
		content: content,
		formula: result.Formula,
		dice:    []int{result.Natural},
		total:   result.Total,
		roll:    true,
	})
	if err != nil {
		return nil, err
	}

	o.publish(ctx, EventCheckResolved, subj, map[string]any{
		"user_id":          userID,
		"kind":             string(result.Kind),
		"category":         result.Category,
		"total":            result.Total,
		"target":           result.Target,
		"succeeded":        result.Succeeded,
		"difficulty_label": result.DifficultyLabel,
		"message_id":       msg.ID,
	})
	o.metrics.ObserveCheck(string(result.Kind), result.Succeeded)

	slog.InfoContext(ctx, "check resolved",
		"subject_id", subj.ID,
		"user_id", userID,
		"kind", result.Kind,
		"category", result.Category,
		"formula", result.Formula,
		"total", result.Total,
		"target", result.Target,
		"succeeded", result.Succeeded)

	return msg, nil
}

func (o *orchestrator) rollMorale(ctx context.Context, input *RollMoraleInput) (*RollMoraleOutput, error) {
	vb := errors.NewValidationBuilder()
	errors.ValidateRequired("user_id", input.UserID, vb)
	errors.ValidateRequired("subject_id", input.SubjectID, vb)
	if err := vb.Build(); err != nil {
		return nil, err
	}

	var output *RollMoraleOutput
	err := o.withSubject(ctx, input.UserID, input.SubjectID, func(subj *godbound.Subject) error {
		result, err := o.resolver.ResolveMorale(subj)
		if err != nil {
			return err
		}

		content, err := o.renderer.RenderMorale(result)
		if err != nil {
			return err
		}

		msg, err := o.postMessage(ctx, subj, post{
			userID:  input.UserID,
			kind:    chatlog.KindMoraleCheck,
			content: content,
			formula: result.Formula,
			dice:    result.Dice,
			total:   result.Total,
			roll:    true,
		})
		if err != nil {
			return err
		}

		o.publish(ctx, EventCheckResolved, subj, map[string]any{
			"user_id":    input.UserID,
			"kind":       string(check.KindMorale),
			"total":      result.Total,
			"target":     result.Morale,
			"succeeded":  result.Holds,
			"message_id": msg.ID,
		})
		o.metrics.ObserveCheck(string(check.KindMorale), result.Holds)

		slog.InfoContext(ctx, "morale checked",
			"subject_id", subj.ID,
			"total", result.Total,
			"morale", result.Morale,
			"holds", result.Holds)

		output = &RollMoraleOutput{Result: result, Message: msg}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return output, nil
}
