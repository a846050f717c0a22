package sheet

import (
	"context"
	"log/slog"

	"github.com/KirkDiggler/godbound-api/internal/entities/godbound"
	"github.com/KirkDiggler/godbound-api/internal/errors"
	chatlog "github.com/KirkDiggler/godbound-api/internal/repositories/chat_log"
	"github.com/KirkDiggler/godbound-api/internal/repositories/subject"
)

const (
	defaultAttributeScore = 10
	maxMorale             = 12
)

func (o *orchestrator) validateAttributes(attrs map[string]int, vb *errors.ValidationBuilder) {
	lowest, highest := o.ruleset.ScoreBounds()
	for name, score := range attrs {
		if !o.ruleset.HasAttribute(name) {
			vb.Field("attributes."+name, "unknown attribute")
			continue
		}
		errors.ValidateRange("attributes."+name, score, lowest, highest, vb)
	}
}

func (o *orchestrator) createSubject(ctx context.Context, input *CreateSubjectInput) (*CreateSubjectOutput, error) {
	subjectType := input.Type
	if subjectType == "" {
		subjectType = godbound.SubjectTypeCharacter
	}
	level := input.Level
	if level == 0 {
		level = 1
	}

	vb := errors.NewValidationBuilder()
	errors.ValidateRequired("user_id", input.UserID, vb)
	errors.ValidateRequired("name", input.Name, vb)
	errors.ValidateEnum("type", string(subjectType),
		[]string{string(godbound.SubjectTypeCharacter), string(godbound.SubjectTypeNPC)}, vb)
	errors.ValidateRange("level", level, 1, o.ruleset.MaxLevel, vb)
	errors.ValidateRange("morale", input.Morale, 0, maxMorale, vb)
	if input.Effort < 0 {
		vb.InvalidField("effort", "cannot be negative")
	}
	if input.HP < 0 {
		vb.InvalidField("hp", "cannot be negative")
	}
	if input.HitDice < 0 {
		vb.InvalidField("hit_dice", "cannot be negative")
	}
	o.validateAttributes(input.Attributes, vb)
	if err := vb.Build(); err != nil {
		return nil, err
	}

	attrs := make(map[string]godbound.Attribute, len(o.ruleset.Attributes))
	for _, name := range o.ruleset.Attributes {
		attrs[name] = godbound.Attribute{Score: defaultAttributeScore}
	}
	for name, score := range input.Attributes {
		attrs[name] = godbound.Attribute{Score: score}
	}

	subj := &godbound.Subject{
		ID:         o.idGen.Generate(),
		OwnerID:    input.UserID,
		Name:       input.Name,
		Type:       subjectType,
		Level:      level,
		TokenID:    input.TokenID,
		Image:      input.Image,
		Attributes: attrs,
		Saves:      o.ruleset.ComputeSaves(attrs, level),
		Effort:     godbound.Effort{Total: input.Effort},
		HP:         godbound.Pool{Value: input.HP, Max: input.HP},
		HitDice:    godbound.Pool{Value: input.HitDice, Max: input.HitDice},
		Morale:     input.Morale,
	}

	out, err := o.subjectRepo.Create(ctx, subject.CreateInput{Subject: subj})
	if err != nil {
		return nil, errors.Wrap(err, "failed to create subject")
	}

	slog.InfoContext(ctx, "subject created",
		"subject_id", subj.ID,
		"owner_id", subj.OwnerID,
		"type", subj.Type)

	return &CreateSubjectOutput{Subject: out.Subject}, nil
}

func (o *orchestrator) getSubject(ctx context.Context, input *GetSubjectInput) (*GetSubjectOutput, error) {
	if input.SubjectID == "" {
		return nil, errors.InvalidArgument("subject_id is required")
	}

	out, err := o.subjectRepo.Get(ctx, subject.GetInput{ID: input.SubjectID})
	if err != nil {
		return nil, err
	}

	return &GetSubjectOutput{Subject: out.Subject}, nil
}

func (o *orchestrator) updateAttributes(
	ctx context.Context,
	input *UpdateAttributesInput,
) (*UpdateAttributesOutput, error) {
	vb := errors.NewValidationBuilder()
	errors.ValidateRequired("user_id", input.UserID, vb)
	errors.ValidateRequired("subject_id", input.SubjectID, vb)
	if input.Level != 0 {
		errors.ValidateRange("level", input.Level, 1, o.ruleset.MaxLevel, vb)
	}
	o.validateAttributes(input.Attributes, vb)
	if err := vb.Build(); err != nil {
		return nil, err
	}

	var output *UpdateAttributesOutput
	err := o.withSubject(ctx, input.UserID, input.SubjectID, func(subj *godbound.Subject) error {
		if subj.Attributes == nil {
			subj.Attributes = make(map[string]godbound.Attribute)
		}
		for name, score := range input.Attributes {
			subj.Attributes[name] = godbound.Attribute{Score: score}
		}
		if input.Level != 0 {
			subj.Level = input.Level
		}
		subj.Saves = o.ruleset.ComputeSaves(subj.Attributes, subj.Level)

		if err := o.save(ctx, subj); err != nil {
			return err
		}

		output = &UpdateAttributesOutput{Subject: subj}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return output, nil
}

func (o *orchestrator) listMessages(ctx context.Context, input *ListMessagesInput) (*ListMessagesOutput, error) {
	if input.SubjectID == "" {
		return nil, errors.InvalidArgument("subject_id is required")
	}

	out, err := o.chatLogRepo.List(ctx, chatlog.ListInput{SubjectID: input.SubjectID, Limit: input.Limit})
	if err != nil {
		return nil, err
	}

	return &ListMessagesOutput{Messages: out.Messages}, nil
}

func (o *orchestrator) clearMessages(ctx context.Context, input *ClearMessagesInput) (*ClearMessagesOutput, error) {
	vb := errors.NewValidationBuilder()
	errors.ValidateRequired("user_id", input.UserID, vb)
	errors.ValidateRequired("subject_id", input.SubjectID, vb)
	if err := vb.Build(); err != nil {
		return nil, err
	}

	var deleted int
	err := o.withSubject(ctx, input.UserID, input.SubjectID, func(subj *godbound.Subject) error {
		out, err := o.chatLogRepo.Delete(ctx, chatlog.DeleteInput{SubjectID: subj.ID})
		if err != nil {
			return err
		}
		deleted = out.MessagesDeleted
		return nil
	})
	if err != nil {
		return nil, err
	}

	return &ClearMessagesOutput{Deleted: deleted}, nil
}
