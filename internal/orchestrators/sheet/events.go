package sheet

import (
	"context"
	"log/slog"

	"github.com/KirkDiggler/rpg-toolkit/events"

	"github.com/KirkDiggler/godbound-api/internal/entities/godbound"
	"github.com/KirkDiggler/godbound-api/internal/errors"
	chatlog "github.com/KirkDiggler/godbound-api/internal/repositories/chat_log"
	"github.com/KirkDiggler/godbound-api/internal/repositories/subject"
)

// Events published on the bus after a sheet action is stored
const (
	EventCheckResolved     = "godbound.check.resolved"
	EventEffortChanged     = "godbound.effort.changed"
	EventDamageApplied     = "godbound.damage.applied"
	EventPowerDemonstrated = "godbound.power.demonstrated"
)

// publish emits an event sourced from the subject. The action it reports is
// already stored, so a failing subscriber is logged rather than returned.
func (o *orchestrator) publish(ctx context.Context, eventType string, subj *godbound.Subject, data map[string]any) {
	event := events.NewGameEvent(eventType, wrapSubject(subj), nil)
	for k, v := range data {
		event.Context().Set(k, v)
	}

	if err := o.eventBus.Publish(ctx, event); err != nil {
		slog.ErrorContext(ctx, "failed to publish sheet event",
			"event", eventType,
			"subject_id", subj.ID,
			"error", err.Error())
	}
}

// withSubject serializes fn against every other action on the subject and
// hands it the freshly loaded, owner-checked subject
func (o *orchestrator) withSubject(
	ctx context.Context,
	userID, subjectID string,
	fn func(subj *godbound.Subject) error,
) error {
	release, err := o.locks.acquire(ctx, subjectID)
	if err != nil {
		return err
	}
	defer release()

	out, err := o.subjectRepo.Get(ctx, subject.GetInput{ID: subjectID})
	if err != nil {
		return err
	}

	if out.Subject.OwnerID != userID {
		return errors.PermissionDenied("only the sheet owner can change this sheet")
	}

	return fn(out.Subject)
}

func (o *orchestrator) save(ctx context.Context, subj *godbound.Subject) error {
	if _, err := o.subjectRepo.Update(ctx, subject.UpdateInput{Subject: subj}); err != nil {
		return errors.Wrap(err, "failed to save subject")
	}
	return nil
}

type post struct {
	userID  string
	kind    chatlog.Kind
	content string
	formula string
	dice    []int
	total   int
	roll    bool
}

// postMessage stores a chat record. Rolls are animated when the host has a
// dice animator and otherwise carry the dice sound.
func (o *orchestrator) postMessage(ctx context.Context, subj *godbound.Subject, p post) (*chatlog.Message, error) {
	msg := &chatlog.Message{
		ID:        o.idGen.Generate(),
		SubjectID: subj.ID,
		UserID:    p.userID,
		Speaker:   subj.Name,
		Kind:      p.kind,
		Content:   p.content,
		Formula:   p.formula,
		Dice:      p.dice,
		Total:     p.total,
	}

	if p.roll {
		msg.Sound = o.diceSound
		if o.animator != nil {
			err := o.animator.Animate(ctx, &AnimateInput{
				UserID:    p.userID,
				SubjectID: subj.ID,
				Formula:   p.formula,
				Dice:      p.dice,
			})
			if err == nil {
				msg.Sound = ""
			} else {
				slog.WarnContext(ctx, "dice animation failed, falling back to sound",
					"subject_id", subj.ID,
					"error", err.Error())
			}
		}
	}

	out, err := o.chatLogRepo.Append(ctx, chatlog.AppendInput{Message: msg})
	if err != nil {
		return nil, errors.Wrap(err, "failed to post message")
	}
	return out.Message, nil
}
