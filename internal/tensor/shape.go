package tensor

import (
	"github.com/pkg/errors"
	"go.uber.org/multierr"
)

// Shape represents the extents of an expression, one entry per axis.
type Shape []int

// Strides holds the number of elements to skip in memory to move one step
// along each axis. Axes of length 1 carry a stride of 0 so that cursors do
// not move when they are broadcast.
type Strides []int

// NumElements returns the total number of elements described by the shape.
func (s Shape) NumElements() int {
	if len(s) == 0 {
		return 1 // Scalar has 1 element
	}
	n := 1
	for _, dim := range s {
		n *= dim
	}
	return n
}

// Validate checks that no extent is negative. Zero-length axes are valid and
// describe an empty expression.
func (s Shape) Validate() error {
	var err error
	for i, dim := range s {
		if dim < 0 {
			err = multierr.Append(err, errors.Errorf("invalid extent at axis %d: %d (must be >= 0)", i, dim))
		}
	}
	return err
}

// Equal checks if two shapes are equal.
func (s Shape) Equal(other Shape) bool {
	if len(s) != len(other) {
		return false
	}
	for i := range s {
		if s[i] != other[i] {
			return false
		}
	}
	return true
}

// Clone returns a copy of the shape.
func (s Shape) Clone() Shape {
	clone := make(Shape, len(s))
	copy(clone, s)
	return clone
}

// unitShape returns a shape of the given rank with every extent set to 1.
// It is the neutral starting point of a broadcast.
func unitShape(rank int) Shape {
	s := make(Shape, rank)
	for i := range s {
		s[i] = 1
	}
	return s
}

// Equal checks if two stride sequences are equal.
func (st Strides) Equal(other Strides) bool {
	if len(st) != len(other) {
		return false
	}
	for i := range st {
		if st[i] != other[i] {
			return false
		}
	}
	return true
}

// ComputeStrides calculates the strides of the shape for the given layout,
// along with the backstrides (stride * (extent - 1)) used to rewind a cursor
// to the start of an axis. The dynamic layout falls back to row-major.
//
// Examples:
//
//	Shape{3, 4}.ComputeStrides(RowMajor)    → [4 1]
//	Shape{3, 4}.ComputeStrides(ColumnMajor) → [1 3]
//	Shape{3, 1}.ComputeStrides(RowMajor)    → [1 0]
func (s Shape) ComputeStrides(layout Layout) (Strides, Strides) {
	strides := make(Strides, len(s))
	backstrides := make(Strides, len(s))
	if len(s) == 0 {
		return strides, backstrides
	}

	acc := 1
	set := func(i int) {
		if s[i] == 1 {
			strides[i] = 0
		} else {
			strides[i] = acc
		}
		if s[i] > 0 {
			backstrides[i] = strides[i] * (s[i] - 1)
		}
		acc *= s[i]
	}

	if layout == ColumnMajor {
		for i := 0; i < len(s); i++ {
			set(i)
		}
	} else {
		for i := len(s) - 1; i >= 0; i-- {
			set(i)
		}
	}
	return strides, backstrides
}

// BroadcastShapes implements NumPy-style broadcasting rules.
//
// Rules:
// 1. Compare shapes element-wise from right to left
// 2. Dimensions are compatible if:
//   - They are equal, OR
//   - One of them is 1
//
// 3. Missing dimensions are treated as 1
//
// Returns the broadcasted shape, a flag indicating if broadcasting is needed, and an error if incompatible.
//
// Examples:
//
//	(3, 1) + (3, 5) → (3, 5), true, nil
//	(4,)   + (3, 4) → (3, 4), true, nil
//	(3, 5) + (3, 5) → (3, 5), false, nil
//	(3, 4) + (3, 5) → nil, false, Error
func BroadcastShapes(a, b Shape) (Shape, bool, error) {
	result := unitShape(max(len(a), len(b)))
	for _, s := range []Shape{a, b} {
		if _, err := broadcastInto(result, s); err != nil {
			return nil, false, errors.Wrapf(err, "shapes not compatible for broadcasting: %v vs %v", a, b)
		}
	}
	return result, !a.Equal(b), nil
}

// broadcastInto merges the shape of an operand into target in place.
// Missing leading axes of the operand are treated as 1; trailing axes are
// never padded. The returned flag is true when the operand needs no index
// remapping to be read at the target shape.
func broadcastInto(target, operand Shape) (bool, error) {
	if len(operand) > len(target) {
		return false, &BroadcastError{Axis: -1, Target: target.Clone(), Operand: operand.Clone()}
	}

	trivial := len(operand) == len(target)
	offset := len(target) - len(operand)
	for i, dim := range operand {
		axis := offset + i
		switch {
		case target[axis] == 1:
			target[axis] = dim
		case dim == 1:
			trivial = false
		case dim != target[axis]:
			return false, &BroadcastError{Axis: axis, Target: target.Clone(), Operand: operand.Clone()}
		}
	}
	return trivial, nil
}
