package tensor

import "iter"

// BroadcastIterator traverses an expression at a target shape in row-major
// index order, driving a stepper one axis at a time. The end position has
// the index equal to the shape and the stepper moved to its end.
type BroadcastIterator[T any] struct {
	stepper Stepper[T]
	shape   Shape
	index   []int
}

// NewBroadcastIterator returns an iterator positioned on the first element
// of shape. An empty shape starts at the end position.
func NewBroadcastIterator[T any](s Stepper[T], shape Shape) *BroadcastIterator[T] {
	it := &BroadcastIterator[T]{stepper: s, shape: shape, index: make([]int, len(shape))}
	if shape.NumElements() == 0 {
		copy(it.index, shape)
		it.stepper.ToEnd()
	}
	return it
}

func newBroadcastEnd[T any](s Stepper[T], shape Shape) *BroadcastIterator[T] {
	index := make([]int, len(shape))
	copy(index, shape)
	return &BroadcastIterator[T]{stepper: s, shape: shape, index: index}
}

// XBegin returns a broadcast iterator on the first element of e.
func XBegin[T any](e Expression[T]) *BroadcastIterator[T] {
	return XBeginShape(e, e.Shape())
}

// XEnd returns a broadcast iterator past the last element of e.
func XEnd[T any](e Expression[T]) *BroadcastIterator[T] {
	return XEndShape(e, e.Shape())
}

// XBeginShape returns an iterator on the first element of e broadcast to
// shape. Used to iterate an operand nested inside a larger expression.
func XBeginShape[T any](e Expression[T], shape Shape) *BroadcastIterator[T] {
	return NewBroadcastIterator(e.StepperBegin(shape), shape)
}

// XEndShape returns an iterator past the last element of e broadcast to
// shape.
func XEndShape[T any](e Expression[T], shape Shape) *BroadcastIterator[T] {
	return newBroadcastEnd(e.StepperEnd(shape), shape)
}

// Next advances to the next position. The innermost axis moves first;
// exhausted axes are reset and the carry moves outward.
func (it *BroadcastIterator[T]) Next() {
	for i := len(it.index) - 1; i >= 0; i-- {
		if it.index[i] != it.shape[i]-1 {
			it.index[i]++
			it.stepper.Step(i, 1)
			return
		}
		it.index[i] = 0
		if i != 0 {
			it.stepper.Reset(i)
		}
	}
	copy(it.index, it.shape)
	it.stepper.ToEnd()
}

// Value returns the element at the current position.
func (it *BroadcastIterator[T]) Value() T {
	return it.stepper.Value()
}

// Ref returns a pointer to the element at the current position.
// Panics if the traversed expression is not writable.
func (it *BroadcastIterator[T]) Ref() *T {
	rs, ok := it.stepper.(RefStepper[T])
	if !ok {
		panic("Ref: expression is not writable")
	}
	return rs.Ref()
}

// Index returns the current multi-index. The slice is owned by the iterator.
func (it *BroadcastIterator[T]) Index() []int {
	return it.index
}

// Shape returns the traversal shape.
func (it *BroadcastIterator[T]) Shape() Shape {
	return it.shape
}

// Equal reports whether both iterators sit on the same position of the
// same expression.
func (it *BroadcastIterator[T]) Equal(other Iterator[T]) bool {
	o, ok := other.(*BroadcastIterator[T])
	if !ok || len(it.index) != len(o.index) {
		return false
	}
	for i := range it.index {
		if it.index[i] != o.index[i] {
			return false
		}
	}
	return it.stepper.Equal(o.stepper)
}

// Values yields every element of e in broadcast order.
//
// Example:
//
//	for v := range tensor.Values(tensor.Add(a, b)) {
//	    total += v
//	}
func Values[T any](e Expression[T]) iter.Seq[T] {
	return func(yield func(T) bool) {
		shape := e.Shape()
		it, end := XBeginShape(e, shape), XEndShape(e, shape)
		for ; !it.Equal(end); it.Next() {
			if !yield(it.Value()) {
				return
			}
		}
	}
}

// All yields the multi-index and value of every element of e in broadcast
// order. The index slice is reused between iterations.
func All[T any](e Expression[T]) iter.Seq2[[]int, T] {
	return func(yield func([]int, T) bool) {
		shape := e.Shape()
		it, end := XBeginShape(e, shape), XEndShape(e, shape)
		for ; !it.Equal(end); it.Next() {
			if !yield(it.Index(), it.Value()) {
				return
			}
		}
	}
}
