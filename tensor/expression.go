// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

package tensor

import (
	"iter"

	"github.com/born-ml/lazytensor/internal/tensor"
)

// Shaped is the element-type independent part of every expression.
type Shaped = tensor.Shaped

// Expression is a readable, possibly lazy, N-dimensional expression.
type Expression[T any] = tensor.Expression[T]

// Lvalue is an expression whose elements can be written.
type Lvalue[T any] = tensor.Lvalue[T]

// Cursor moves a stepper along the axes of a traversal shape.
type Cursor = tensor.Cursor

// Stepper is a cursor that reads the element under it.
type Stepper[T any] = tensor.Stepper[T]

// RefStepper is a stepper over writable elements.
type RefStepper[T any] = tensor.RefStepper[T]

// Iterator walks an expression in storage order.
type Iterator[T any] = tensor.Iterator[T]

// RefIterator is an iterator over writable elements.
type RefIterator[T any] = tensor.RefIterator[T]

// RandomAccessIterator is an iterator that can jump and measure distance.
type RandomAccessIterator[T any] = tensor.RandomAccessIterator[T]

// BroadcastIterator walks an expression at a broadcast shape in row-major
// index order.
type BroadcastIterator[T any] = tensor.BroadcastIterator[T]

// Function nodes

// Function1 is a lazy unary function node.
type Function1[A, R any] = tensor.Function1[A, R]

// Function2 is a lazy binary function node with broadcasting.
type Function2[A, B, R any] = tensor.Function2[A, B, R]

// Function3 is a lazy ternary function node with broadcasting.
type Function3[A, B, C, R any] = tensor.Function3[A, B, C, R]

// FunctionN is a lazy function node over any number of operands of one type.
type FunctionN[T, R any] = tensor.FunctionN[T, R]

// Broadcast presents an expression at a larger shape.
type Broadcast[T any] = tensor.Broadcast[T]

// Closure records whether a node owns an operand or observes it.
type Closure[T any] = tensor.Closure[T]

// Cloner is implemented by expressions that can copy themselves.
type Cloner[T any] = tensor.Cloner[T]

// Ownership is the tag carried by a Closure.
type Ownership = tensor.Ownership

// Ownership constants.
const (
	Owned    Ownership = tensor.Owned
	Observed Ownership = tensor.Observed
)

// NewFunction1 builds a lazy node applying f to every element of a.
func NewFunction1[A, R any](f func(A) R, a Expression[A]) *Function1[A, R] {
	return tensor.NewFunction1(f, a)
}

// NewFunction2 builds a lazy node applying f to the broadcast elements of a and b.
//
// Example:
//
//	hypot := tensor.NewFunction2(func(x, y float64) float64 { return math.Hypot(x, y) }, a, b)
func NewFunction2[A, B, R any](f func(A, B) R, a Expression[A], b Expression[B]) *Function2[A, B, R] {
	return tensor.NewFunction2(f, a, b)
}

// NewFunction3 builds a lazy node applying f to the broadcast elements of a, b and c.
func NewFunction3[A, B, C, R any](f func(A, B, C) R, a Expression[A], b Expression[B], c Expression[C]) *Function3[A, B, C, R] {
	return tensor.NewFunction3(f, a, b, c)
}

// NewFunctionN builds a lazy node over any number of operands.
func NewFunctionN[T, R any](f func(...T) R, es ...Expression[T]) *FunctionN[T, R] {
	return tensor.NewFunctionN(f, es...)
}

// NewBroadcast wraps e so that it reads at the given shape.
func NewBroadcast[T any](e Expression[T], shape Shape) (*Broadcast[T], error) {
	return tensor.NewBroadcast(e, shape)
}

// Own gives the node a private copy of e: later writes to e are not visible
// through it. Observed closures nested in e are shared, not copied.
func Own[T any](e Expression[T]) Closure[T] {
	return tensor.Own(e)
}

// Observe holds e by reference: later writes to e are visible through the
// node. The closure is writable when e is, so it can back a functor view.
func Observe[T any](e Expression[T]) Closure[T] {
	return tensor.Observe(e)
}

// Traversal

// XBegin returns a broadcast iterator on the first element of e.
func XBegin[T any](e Expression[T]) *BroadcastIterator[T] {
	return tensor.XBegin(e)
}

// XEnd returns a broadcast iterator past the last element of e.
func XEnd[T any](e Expression[T]) *BroadcastIterator[T] {
	return tensor.XEnd(e)
}

// XBeginShape returns a broadcast iterator on the first element of e at shape.
func XBeginShape[T any](e Expression[T], shape Shape) *BroadcastIterator[T] {
	return tensor.XBeginShape(e, shape)
}

// XEndShape returns a broadcast iterator past the last element of e at shape.
func XEndShape[T any](e Expression[T], shape Shape) *BroadcastIterator[T] {
	return tensor.XEndShape(e, shape)
}

// Values yields every element of e in broadcast order.
func Values[T any](e Expression[T]) iter.Seq[T] {
	return tensor.Values(e)
}

// All yields the multi-index and value of every element of e.
func All[T any](e Expression[T]) iter.Seq2[[]int, T] {
	return tensor.All(e)
}

// Evaluation

// Eval materializes e into a new array with the given layout.
func Eval[T any](e Expression[T], layout Layout) (*Array[T], error) {
	return tensor.Eval(e, layout)
}

// Assign copies src into dst, broadcasting src when the shapes differ.
func Assign[T any](dst Lvalue[T], src Expression[T]) error {
	return tensor.Assign(dst, src)
}

// Fill writes value into every element of dst.
func Fill[T any](dst Lvalue[T], value T) {
	tensor.Fill(dst, value)
}
