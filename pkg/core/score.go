package core

import "fmt"

// Score is the fitness of a knapsack solution under cliff scoring. It has
// two variants: Overloaded, for any selection whose total weight exceeds the
// capacity, and Feasible(v), carrying the total value of a selection that
// fits. Every Overloaded score compares strictly worse than every Feasible
// one, and Overloaded scores compare equal to each other regardless of how
// far over capacity the selection was.
//
// Values are uint64 because instance capacities and summed values reach the
// tens of billions.
type Score struct {
	feasible bool
	value    uint64
}

// Overloaded returns the score of a selection that exceeds capacity.
func Overloaded() Score {
	return Score{}
}

// Feasible returns the score of a selection that fits, carrying its total
// value.
func Feasible(value uint64) Score {
	return Score{feasible: true, value: value}
}

// IsFeasible reports whether the score is the Feasible variant.
func (s Score) IsFeasible() bool {
	return s.feasible
}

// Value returns the total value and true when the score is Feasible, or
// 0 and false when it is Overloaded.
func (s Score) Value() (uint64, bool) {
	return s.value, s.feasible
}

// Cmp returns -1, 0, or +1 as s orders below, equal to, or above other.
func (s Score) Cmp(other Score) int {
	switch {
	case s.feasible && !other.feasible:
		return 1
	case !s.feasible && other.feasible:
		return -1
	case !s.feasible:
		return 0
	case s.value < other.value:
		return -1
	case s.value > other.value:
		return 1
	default:
		return 0
	}
}

// Better reports whether s orders strictly above other.
func (s Score) Better(other Score) bool {
	return s.Cmp(other) > 0
}

// String renders the score, always distinguishing the two variants.
func (s Score) String() string {
	if !s.feasible {
		return "Overloaded"
	}
	return fmt.Sprintf("Feasible(%d)", s.value)
}
