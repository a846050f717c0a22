// Package resources holds the rules for changing a subject's effort and
// depletable pools.
package resources

import (
	"strconv"
	"strings"

	"github.com/KirkDiggler/godbound-api/internal/entities/godbound"
	"github.com/KirkDiggler/godbound-api/internal/errors"
)

// ParseAdjustment reads a user-typed adjustment. The text must be the plain
// decimal form of an integer ("3", "-1"; not "+3", "03" or "3.0") and the
// value must be at least floor.
func ParseAdjustment(raw string, floor int) (int, error) {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		return 0, errors.InvalidModifier("adjustment is required")
	}

	v, err := strconv.Atoi(trimmed)
	if err != nil || strconv.Itoa(v) != trimmed {
		return 0, errors.InvalidModifierf("%q is not a whole number", raw).WithMeta("value", raw)
	}

	if v < floor {
		return 0, errors.InvalidModifierf("adjustment %d is below the minimum of %d", v, floor).
			WithMeta("value", raw)
	}

	return v, nil
}

// CanSpendEffort reports whether n more effort can be committed
func CanSpendEffort(effort godbound.Effort, n int) bool {
	return effort.Available() >= n
}

// CanReclaimEffort reports whether change (usually negative) can be applied
// to the category without going below zero
func CanReclaimEffort(effort godbound.Effort, category godbound.EffortCategory, change int) bool {
	committed, ok := effort.Get(category)
	if !ok {
		return false
	}
	return committed+change >= 0
}

// ChangeEffort commits (change > 0) or reclaims (change < 0) effort in a
// category and returns the updated effort. The input is left untouched.
func ChangeEffort(effort godbound.Effort, category godbound.EffortCategory, change int) (godbound.Effort, error) {
	committed, ok := effort.Get(category)
	if !ok {
		return effort, errors.InvalidModifierf("unknown effort category %q", category).
			WithMeta("category", string(category))
	}

	switch {
	case change == 0:
		return effort, errors.InvalidModifier("effort change cannot be zero")
	case change > 0 && !CanSpendEffort(effort, change):
		return effort, errors.FailedPreconditionf("not enough effort: %d available, %d requested",
			effort.Available(), change)
	case change < 0 && !CanReclaimEffort(effort, category, change):
		return effort, errors.FailedPreconditionf("cannot reclaim %d effort from %s: only %d committed",
			-change, category, committed)
	}

	effort.Set(category, committed+change)
	return effort, nil
}

// ApplyDamage subtracts amount from the pool, keeping the value in [0, Max].
// Negative amounts heal.
func ApplyDamage(pool godbound.Pool, amount int) godbound.Pool {
	pool.Value -= amount
	if pool.Value < 0 {
		pool.Value = 0
	}
	if pool.Max > 0 && pool.Value > pool.Max {
		pool.Value = pool.Max
	}
	return pool
}
