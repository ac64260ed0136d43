// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

package tensor

import (
	"github.com/born-ml/lazytensor/internal/tensor"
	"golang.org/x/exp/constraints"
)

// Type aliases for public API

// Numeric is a constraint for element types supporting arithmetic.
type Numeric = tensor.Numeric

// Real is a constraint for ordered numeric element types.
type Real = tensor.Real

// DataType identifies the element kind of an expression.
type DataType = tensor.DataType

// Data type constants, in promotion order.
const (
	Unknown    DataType = tensor.Unknown
	Bool       DataType = tensor.Bool
	Uint8      DataType = tensor.Uint8
	Int32      DataType = tensor.Int32
	Int64      DataType = tensor.Int64
	Float32    DataType = tensor.Float32
	Float64    DataType = tensor.Float64
	Complex64  DataType = tensor.Complex64
	Complex128 DataType = tensor.Complex128
)

// Layout is the memory order of an expression.
type Layout = tensor.Layout

// Layout constants.
const (
	Dynamic     Layout = tensor.Dynamic
	RowMajor    Layout = tensor.RowMajor
	ColumnMajor Layout = tensor.ColumnMajor
)

// Shape represents the extents of an expression.
// Example: Shape{2, 3, 4} represents a 3D expression with extents 2×3×4.
type Shape = tensor.Shape

// Strides holds the element distance between neighbours along each axis.
type Strides = tensor.Strides

// Array is a dense, strided, writable container.
//
// Example:
//
//	a := tensor.Zeros[float32](tensor.Shape{2, 3}, tensor.RowMajor)
//	a.Set(1.5, 0, 2)
type Array[T any] = tensor.Array[T]

// BroadcastError reports two extents that cannot be broadcast together.
type BroadcastError = tensor.BroadcastError

// Broadcast errors. Use errors.Is to match them.
var (
	ErrRank         = tensor.ErrRank
	ErrIncompatible = tensor.ErrIncompatible
)

// Creation functions

// NewArray allocates a zero-filled array with the given shape and layout.
func NewArray[T any](shape Shape, layout Layout) (*Array[T], error) {
	return tensor.NewArray[T](shape, layout)
}

// NewArrayStrided wraps a copy of data with caller-supplied strides.
func NewArrayStrided[T any](data []T, shape Shape, strides Strides) (*Array[T], error) {
	return tensor.NewArrayStrided(data, shape, strides)
}

// FromSlice creates an array from a Go slice laid out in the given order.
//
// Example:
//
//	data := []float32{1, 2, 3, 4, 5, 6}
//	a, err := tensor.FromSlice(data, tensor.Shape{2, 3}, tensor.RowMajor)
func FromSlice[T any](data []T, shape Shape, layout Layout) (*Array[T], error) {
	return tensor.FromSlice(data, shape, layout)
}

// Zeros creates an array filled with zeros.
func Zeros[T any](shape Shape, layout Layout) *Array[T] {
	return tensor.Zeros[T](shape, layout)
}

// Ones creates an array filled with ones.
func Ones[T Numeric](shape Shape, layout Layout) *Array[T] {
	return tensor.Ones[T](shape, layout)
}

// Full creates an array filled with a specific value.
func Full[T any](shape Shape, value T, layout Layout) *Array[T] {
	return tensor.Full(shape, value, layout)
}

// Scalar creates a rank-0 array that broadcasts against any shape.
func Scalar[T any](v T) *Array[T] {
	return tensor.Scalar(v)
}

// Arange creates a 1D array with values from start to end (exclusive).
//
// Example:
//
//	a := tensor.Arange[int32](0, 10) // [0, 1, 2, ..., 9]
func Arange[T Real](start, end T) *Array[T] {
	return tensor.Arange(start, end)
}

// Eye creates an n x n identity matrix.
func Eye[T Numeric](n int, layout Layout) *Array[T] {
	return tensor.Eye[T](n, layout)
}

// Rand creates an array with values uniformly distributed in [0, 1).
//
// Example:
//
//	a := tensor.Rand[float32](tensor.Shape{2, 3}, tensor.RowMajor)
func Rand[T constraints.Float](shape Shape, layout Layout) *Array[T] {
	return tensor.Rand[T](shape, layout)
}

// Randn creates an array with values from the standard normal distribution N(0, 1).
func Randn[T constraints.Float](shape Shape, layout Layout) *Array[T] {
	return tensor.Randn[T](shape, layout)
}

// Utility functions

// BroadcastShapes computes the broadcast shape for two shapes following NumPy broadcasting rules.
// The flag reports whether the shapes differ.
//
// Example:
//
//	resultShape, broadcast, err := tensor.BroadcastShapes(
//	    tensor.Shape{3, 1},
//	    tensor.Shape{3, 4},
//	)
//	// resultShape = [3, 4], broadcast = true
func BroadcastShapes(a, b Shape) (Shape, bool, error) {
	return tensor.BroadcastShapes(a, b)
}

// ComputeLayout returns the layout shared by all arguments, or Dynamic.
func ComputeLayout(layouts ...Layout) Layout {
	return tensor.ComputeLayout(layouts...)
}

// CommonDataType returns the element kind all arguments promote to.
func CommonDataType(types ...DataType) DataType {
	return tensor.CommonDataType(types...)
}
