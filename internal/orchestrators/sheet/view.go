package sheet

import (
	"context"
	"fmt"
	"slices"

	"github.com/KirkDiggler/godbound-api/internal/engine/check"
	"github.com/KirkDiggler/godbound-api/internal/entities/godbound"
	"github.com/KirkDiggler/godbound-api/internal/errors"
	"github.com/KirkDiggler/godbound-api/internal/render"
	"github.com/KirkDiggler/godbound-api/internal/repositories/subject"
)

// DataTypes are the field types a sheet can declare
var DataTypes = []string{"String", "Number", "Boolean"}

// View is everything a host needs to draw a subject's sheet
type View struct {
	// Template is "<type>-sheet"
	Template string            `json:"template"`
	Editable bool              `json:"editable"`
	Subject  *godbound.Subject `json:"subject"`

	Attributes []AttributeView `json:"attributes"`
	Saves      []SaveView      `json:"saves"`
	Effort     EffortView      `json:"effort"`
	HP         godbound.Pool   `json:"hp"`
	HitDice    godbound.Pool   `json:"hit_dice"`

	Items     map[godbound.ItemType][]godbound.Item `json:"items"`
	DataTypes []string                              `json:"data_types"`
}

// AttributeView is one attribute row
type AttributeView struct {
	Name     string `json:"name"`
	Label    string `json:"label"`
	Score    int    `json:"score"`
	Modifier int    `json:"modifier"`
	Target   int    `json:"target"`
}

// SaveView is one save row
type SaveView struct {
	Name   string `json:"name"`
	Label  string `json:"label"`
	Target int    `json:"target"`
}

// EffortView is the effort block
type EffortView struct {
	Total      int                             `json:"total"`
	Available  int                             `json:"available"`
	Committed  int                             `json:"committed"`
	ByCategory map[godbound.EffortCategory]int `json:"by_category"`
}

func (o *orchestrator) render(ctx context.Context, input *RenderInput) (*RenderOutput, error) {
	if input.SubjectID == "" {
		return nil, errors.InvalidArgument("subject_id is required")
	}

	out, err := o.subjectRepo.Get(ctx, subject.GetInput{ID: input.SubjectID})
	if err != nil {
		return nil, err
	}

	return &RenderOutput{View: o.buildView(out.Subject, input.UserID)}, nil
}

func (o *orchestrator) buildView(subj *godbound.Subject, userID string) *View {
	subjectType := subj.Type
	if subjectType == "" {
		subjectType = godbound.SubjectTypeCharacter
	}

	view := &View{
		Template:  fmt.Sprintf("%s-sheet", subjectType),
		Editable:  userID != "" && userID == subj.OwnerID,
		Subject:   subj,
		HP:        subj.HP,
		HitDice:   subj.HitDice,
		Items:     make(map[godbound.ItemType][]godbound.Item),
		DataTypes: DataTypes,
		Effort: EffortView{
			Total:      subj.Effort.Total,
			Available:  subj.Effort.Available(),
			Committed:  subj.Effort.Committed(),
			ByCategory: make(map[godbound.EffortCategory]int, len(godbound.EffortCategories)),
		},
	}

	for _, category := range godbound.EffortCategories {
		v, _ := subj.Effort.Get(category)
		view.Effort.ByCategory[category] = v
	}

	// ruleset order first, then anything else the sheet carries
	names := make([]string, 0, len(subj.Attributes))
	for _, name := range o.ruleset.Attributes {
		if _, ok := subj.Attributes[name]; ok {
			names = append(names, name)
		}
	}
	var extra []string
	for name := range subj.Attributes {
		if !o.ruleset.HasAttribute(name) {
			extra = append(extra, name)
		}
	}
	slices.Sort(extra)
	names = append(names, extra...)

	for _, name := range names {
		score := subj.Attributes[name].Score
		view.Attributes = append(view.Attributes, AttributeView{
			Name:     name,
			Label:    render.Capitalize(name),
			Score:    score,
			Modifier: o.ruleset.Modifier(score),
			Target:   check.AttributeTarget(score),
		})
	}

	saveNames := make([]string, 0, len(subj.Saves))
	for name := range subj.Saves {
		saveNames = append(saveNames, name)
	}
	slices.Sort(saveNames)
	for _, name := range saveNames {
		view.Saves = append(view.Saves, SaveView{
			Name:   name,
			Label:  render.Capitalize(name),
			Target: subj.Saves[name].Target,
		})
	}

	for _, item := range subj.Items {
		view.Items[item.Type] = append(view.Items[item.Type], item)
	}

	return view
}
