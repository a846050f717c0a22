package sheet

import (
	"github.com/KirkDiggler/rpg-toolkit/core"

	"github.com/KirkDiggler/godbound-api/internal/entities/godbound"
)

// subjectEntity wraps a subject to implement core.Entity for the event bus
type subjectEntity struct {
	*godbound.Subject
}

var _ core.Entity = (*subjectEntity)(nil)

// GetID returns the subject's ID
func (e *subjectEntity) GetID() string {
	return e.ID
}

// GetType returns the subject type, character or npc
func (e *subjectEntity) GetType() string {
	if e.Type == "" {
		return string(godbound.SubjectTypeCharacter)
	}
	return string(e.Type)
}

func wrapSubject(subject *godbound.Subject) *subjectEntity {
	return &subjectEntity{Subject: subject}
}
