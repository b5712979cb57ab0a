package ds

import (
	"golang.org/x/exp/constraints"
)

// MakeRange lists start, start+step, ... up to but excluding end. A
// non-positive step gives an empty range.
func MakeRange[T constraints.Integer](start, end, step T) []T {
	if step <= 0 || end <= start {
		return []T{}
	}
	sequence := make([]T, 0, int((end-start+step-1)/step))
	for i := start; i < end; i += step {
		sequence = append(sequence, i)
	}
	return sequence
}
