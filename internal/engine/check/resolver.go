// Package check resolves attribute checks, saving throws and morale checks.
//
// Every resolution validates its inputs before touching the roller, so a
// given valid request always consumes exactly one draw sequence and an
// invalid one consumes none.
package check

import (
	"fmt"

	"github.com/KirkDiggler/rpg-toolkit/dice"

	"github.com/KirkDiggler/godbound-api/internal/errors"
)

const (
	attributeCheckBase = 21
	checkDie           = 20
	moraleDice         = 2
	moraleDie          = 6
)

// Config holds the dependencies for the resolver
type Config struct {
	Roller dice.Roller
}

// Validate ensures all required dependencies are provided
func (c *Config) Validate() error {
	if c == nil {
		return errors.InvalidArgument("config is required")
	}
	if c.Roller == nil {
		return errors.InvalidArgument("roller is required")
	}
	return nil
}

// Resolver turns roll requests into results. It holds no state besides the
// roller and is safe for concurrent use when the roller is.
type Resolver struct {
	roller dice.Roller
}

// NewResolver creates a resolver
func NewResolver(cfg *Config) (*Resolver, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &Resolver{roller: cfg.Roller}, nil
}

// ResolveAttributeCheck rolls 1d20 + difficulty + auxiliary against 21 minus
// the attribute score.
func (r *Resolver) ResolveAttributeCheck(subject Subject, attribute string, difficulty, auxiliary int) (*Result, error) {
	if subject == nil {
		return nil, errors.InvalidArgument("subject is required")
	}

	score, ok := subject.AttributeScore(attribute)
	if !ok {
		return nil, errors.UnknownCategoryf("attribute %q is not on this sheet", attribute).
			WithMeta("attribute", attribute)
	}

	natural, err := r.rollD20()
	if err != nil {
		return nil, err
	}

	total := natural + difficulty + auxiliary
	target := AttributeTarget(score)

	return &Result{
		Kind:               KindAttributeCheck,
		Category:           attribute,
		Formula:            fmt.Sprintf("1d20%+d%+d", difficulty, auxiliary),
		Natural:            natural,
		DifficultyModifier: difficulty,
		AuxiliaryModifier:  auxiliary,
		Total:              total,
		Target:             target,
		Succeeded:          total >= target,
		DifficultyLabel:    AttributeDifficultyLabel(difficulty),
	}, nil
}

// ResolveSavingThrow rolls 1d20 + difficulty against the subject's computed
// save target.
func (r *Resolver) ResolveSavingThrow(subject Subject, save string, difficulty int) (*Result, error) {
	if subject == nil {
		return nil, errors.InvalidArgument("subject is required")
	}

	target, ok := subject.SaveTarget(save)
	if !ok {
		return nil, errors.UnknownCategoryf("save %q is not on this sheet", save).
			WithMeta("save", save)
	}

	natural, err := r.rollD20()
	if err != nil {
		return nil, err
	}

	total := natural + difficulty

	return &Result{
		Kind:               KindSavingThrow,
		Category:           save,
		Formula:            fmt.Sprintf("1d20%+d", difficulty),
		Natural:            natural,
		DifficultyModifier: difficulty,
		Total:              total,
		Target:             target,
		Succeeded:          total >= target,
		DifficultyLabel:    SaveDifficultyLabel(difficulty),
	}, nil
}

// ResolveMorale rolls 2d6 against the subject's morale
func (r *Resolver) ResolveMorale(subject MoraleSubject) (*MoraleResult, error) {
	if subject == nil {
		return nil, errors.InvalidArgument("subject is required")
	}

	morale := subject.MoraleScore()
	if morale <= 0 {
		return nil, errors.InvalidModifierf("morale must be positive, got %d", morale)
	}

	rolls, err := r.roller.RollN(moraleDice, moraleDie)
	if err != nil {
		return nil, errors.Wrap(err, "failed to roll morale")
	}

	total := 0
	for _, v := range rolls {
		if v < 1 || v > moraleDie {
			return nil, errors.Internalf("roller returned %d for a d%d", v, moraleDie)
		}
		total += v
	}

	return &MoraleResult{
		Formula: "2d6",
		Dice:    rolls,
		Total:   total,
		Morale:  morale,
		Holds:   total <= morale,
	}, nil
}

func (r *Resolver) rollD20() (int, error) {
	v, err := r.roller.Roll(checkDie)
	if err != nil {
		return 0, errors.Wrap(err, "failed to roll d20")
	}
	if v < 1 || v > checkDie {
		return 0, errors.Internalf("roller returned %d for a d%d", v, checkDie)
	}
	return v, nil
}

// AttributeTarget is the d20 total an attribute check must reach
func AttributeTarget(score int) int {
	return attributeCheckBase - score
}

// AttributeDifficultyLabel names the difficulty tier of an attribute check.
// -8 is its own tier, not a point on a scale.
func AttributeDifficultyLabel(modifier int) string {
	if modifier == DifficultyVeryHard {
		return LabelVeryHard
	}
	return SaveDifficultyLabel(modifier)
}

// SaveDifficultyLabel names the difficulty tier of a saving throw. Saves
// have no very hard tier.
func SaveDifficultyLabel(modifier int) string {
	switch {
	case modifier < 0:
		return LabelHard
	case modifier > 0:
		return LabelEasy
	default:
		return LabelNormal
	}
}
