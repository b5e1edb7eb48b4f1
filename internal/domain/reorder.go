package domain

import (
	"fmt"

	"github.com/google/uuid"
)

// MoveID returns a copy of ids with the element at from removed and
// re-inserted at to, preserving the relative order of everything else.
// The result is always a permutation of the input.
func MoveID(ids []uuid.UUID, from, to int) ([]uuid.UUID, error) {
	n := len(ids)
	if from < 0 || from >= n {
		return nil, fmt.Errorf("move: index %d out of range [0,%d): %w", from, n, ErrValidation)
	}
	if to < 0 || to >= n {
		return nil, fmt.Errorf("move: index %d out of range [0,%d): %w", to, n, ErrValidation)
	}

	out := make([]uuid.UUID, 0, n)
	out = append(out, ids[:from]...)
	out = append(out, ids[from+1:]...)

	moved := ids[from]
	out = append(out[:to], append([]uuid.UUID{moved}, out[to:]...)...)
	return out, nil
}
