package testutils

import (
	"fmt"
	"sync"

	"github.com/KirkDiggler/rpg-toolkit/dice"
)

// FixedRoller implements dice.Roller with predetermined results
type FixedRoller struct {
	mu     sync.Mutex
	values []int
	next   int
}

var _ dice.Roller = (*FixedRoller)(nil)

// NewFixedRoller returns a roller that yields values in order
func NewFixedRoller(values ...int) *FixedRoller {
	return &FixedRoller{values: values}
}

// Roll returns the next predetermined value
func (r *FixedRoller) Roll(size int) (int, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.next >= len(r.values) {
		return 0, fmt.Errorf("no more predetermined rolls available (used %d of %d)", r.next, len(r.values))
	}
	v := r.values[r.next]
	r.next++
	return v, nil
}

// RollN returns the next count predetermined values
func (r *FixedRoller) RollN(count, size int) ([]int, error) {
	out := make([]int, 0, count)
	for i := 0; i < count; i++ {
		v, err := r.Roll(size)
		if err != nil {
			return nil, err
		}
		out = append(out, v)
	}
	return out, nil
}

// Used returns how many values have been drawn
func (r *FixedRoller) Used() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.next
}
