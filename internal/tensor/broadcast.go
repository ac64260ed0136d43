package tensor

import "github.com/pkg/errors"

// Verify that Broadcast is an expression.
var (
	_ Expression[float64] = (*Broadcast[float64])(nil)
	_ Cloner[float64]     = (*Broadcast[float64])(nil)
)

// Broadcast presents an expression at a larger shape without copying it.
// Leading unit axes of the expression beyond the target rank are dropped,
// so a (1, 4) operand reads as a (4,) one.
type Broadcast[T any] struct {
	e     Expression[T]
	shape Shape
	pad   int // dropped leading unit axes of e
}

// NewBroadcast wraps e so that it reads as an expression of the given
// shape. The shape of e must broadcast into shape without changing it.
func NewBroadcast[T any](e Expression[T], shape Shape) (*Broadcast[T], error) {
	pad := e.Dimension() - len(shape)
	if pad <= 0 {
		target := shape.Clone()
		if _, err := e.BroadcastShape(target); err != nil {
			return nil, errors.Wrapf(err, "broadcast to %v", shape)
		}
		if !target.Equal(shape) {
			return nil, errors.Errorf("broadcast to %v: operand requires shape %v", shape, target)
		}
		return &Broadcast[T]{e: e, shape: shape.Clone()}, nil
	}

	eShape, err := shapeOf(e)
	if err != nil {
		return nil, errors.Wrapf(err, "broadcast to %v", shape)
	}
	for _, dim := range eShape[:pad] {
		if dim != 1 {
			return nil, errors.Wrapf(&BroadcastError{Axis: -1, Target: shape.Clone(), Operand: eShape.Clone()},
				"broadcast to %v", shape)
		}
	}
	target := shape.Clone()
	if _, err := broadcastInto(target, eShape[pad:]); err != nil {
		return nil, errors.Wrapf(err, "broadcast to %v", shape)
	}
	if !target.Equal(shape) {
		return nil, errors.Errorf("broadcast to %v: operand requires shape %v", shape, target)
	}
	return &Broadcast[T]{e: e, shape: shape.Clone(), pad: pad}, nil
}

// shapeOf returns the shape of e, reporting a broadcast failure of a
// function node as an error instead of a panic.
func shapeOf(e Shaped) (Shape, error) {
	if c, ok := e.(interface{ ComputeShape() (Shape, error) }); ok {
		return c.ComputeShape()
	}
	return e.Shape(), nil
}

// Shape returns the target shape.
func (b *Broadcast[T]) Shape() Shape { return b.shape }

// Dimension returns the rank of the target shape.
func (b *Broadcast[T]) Dimension() int { return len(b.shape) }

// Size returns the number of elements of the target shape.
func (b *Broadcast[T]) Size() int { return b.shape.NumElements() }

// Layout returns the layout of the wrapped expression.
func (b *Broadcast[T]) Layout() Layout { return b.e.Layout() }

// Contiguous reports whether the wrapped expression is contiguous.
func (b *Broadcast[T]) Contiguous() bool { return b.e.Contiguous() }

// DType returns the element type.
func (b *Broadcast[T]) DType() DataType { return b.e.DType() }

// BroadcastShape merges the target shape into shape.
func (b *Broadcast[T]) BroadcastShape(shape Shape) (bool, error) {
	return broadcastInto(shape, b.shape)
}

// IsTrivialBroadcast delegates to the wrapped expression.
func (b *Broadcast[T]) IsTrivialBroadcast(strides Strides) bool {
	return b.e.IsTrivialBroadcast(strides)
}

// Clone returns a broadcast of a copy of the wrapped expression.
func (b *Broadcast[T]) Clone() Expression[T] {
	return &Broadcast[T]{e: cloneExpr(b.e), shape: b.shape.Clone(), pad: b.pad}
}

// At returns the wrapped element read at indices.
func (b *Broadcast[T]) At(indices ...int) T {
	checkRank("At", len(b.shape), len(indices))
	return b.e.Element(b.padded(indices))
}

// Index is the single-index form of At.
func (b *Broadcast[T]) Index(i int) T { return b.At(i) }

// Element returns the wrapped element read at index.
func (b *Broadcast[T]) Element(index []int) T {
	checkRank("Element", len(b.shape), len(index))
	return b.e.Element(b.padded(index))
}

// padded prefixes index with zeros for the dropped leading axes.
func (b *Broadcast[T]) padded(index []int) []int {
	if b.pad == 0 {
		return index
	}
	full := make([]int, b.pad+len(index))
	copy(full[b.pad:], index)
	return full
}

// Begin traverses the target shape in row-major order.
func (b *Broadcast[T]) Begin() Iterator[T] { return XBeginShape(b.e, b.shape) }

// End returns the end of the row-major traversal.
func (b *Broadcast[T]) End() Iterator[T] { return XEndShape(b.e, b.shape) }

// StepperBegin delegates to the wrapped expression. Cursors over an
// expression of higher rank than shape never move on its leading axes.
func (b *Broadcast[T]) StepperBegin(shape Shape) Stepper[T] { return b.e.StepperBegin(shape) }

// StepperEnd delegates to the wrapped expression.
func (b *Broadcast[T]) StepperEnd(shape Shape) Stepper[T] { return b.e.StepperEnd(shape) }
