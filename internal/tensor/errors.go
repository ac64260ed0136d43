package tensor

import (
	"fmt"

	"github.com/pkg/errors"
)

// ErrRank is returned, wrapped, when an operand has more axes than the
// shape it is broadcast into.
var ErrRank = errors.New("operand rank exceeds target rank")

// ErrIncompatible is returned, wrapped, when two extents on the same axis
// differ and neither is 1.
var ErrIncompatible = errors.New("incompatible extents")

// BroadcastError reports an operand shape that cannot be broadcast into a
// target shape.
type BroadcastError struct {
	Axis    int // Axis of the target where the extents disagree, -1 for a rank mismatch.
	Target  Shape
	Operand Shape
}

func (e *BroadcastError) Error() string {
	if e.Axis < 0 {
		return fmt.Sprintf("cannot broadcast shape %v into %v: %v", e.Operand, e.Target, ErrRank)
	}
	off := len(e.Target) - len(e.Operand)
	return fmt.Sprintf("cannot broadcast shape %v into %v: %v on axis %d (%d vs %d)",
		e.Operand, e.Target, ErrIncompatible, e.Axis, e.Operand[e.Axis-off], e.Target[e.Axis])
}

// Unwrap returns the sentinel describing the kind of failure.
func (e *BroadcastError) Unwrap() error {
	if e.Axis < 0 {
		return ErrRank
	}
	return ErrIncompatible
}

// checkRank panics when fewer indices than axes are supplied. Supplying more
// is allowed: the leading excess is dropped by the caller.
func checkRank(op string, dim, n int) {
	if n < dim {
		panic(fmt.Sprintf("%s: expected at least %d indices, got %d", op, dim, n))
	}
}
