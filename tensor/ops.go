// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

package tensor

import (
	"github.com/born-ml/lazytensor/internal/tensor"
)

// Map lazily applies f to every element of a.
func Map[A, R any](f func(A) R, a Expression[A]) *Function1[A, R] {
	return tensor.Map(f, a)
}

// Add performs lazy element-wise addition with broadcasting.
//
// Example:
//
//	a := tensor.Zeros[float32](tensor.Shape{3, 1}, tensor.RowMajor)
//	b := tensor.Zeros[float32](tensor.Shape{3, 5}, tensor.RowMajor)
//	c := tensor.Add[float32](a, b) // Shape: [3, 5] (broadcasted)
func Add[T Numeric](a, b Expression[T]) *Function2[T, T, T] {
	return tensor.Add(a, b)
}

// Sub performs lazy element-wise subtraction with broadcasting.
func Sub[T Numeric](a, b Expression[T]) *Function2[T, T, T] {
	return tensor.Sub(a, b)
}

// Mul performs lazy element-wise multiplication with broadcasting.
func Mul[T Numeric](a, b Expression[T]) *Function2[T, T, T] {
	return tensor.Mul(a, b)
}

// Div performs lazy element-wise division with broadcasting.
func Div[T Numeric](a, b Expression[T]) *Function2[T, T, T] {
	return tensor.Div(a, b)
}

// Neg lazily negates every element.
func Neg[T Numeric](a Expression[T]) *Function1[T, T] {
	return tensor.Neg(a)
}

// Maximum returns the lazy element-wise maximum of its operands.
func Maximum[T Real](es ...Expression[T]) *FunctionN[T, T] {
	return tensor.Maximum(es...)
}

// Minimum returns the lazy element-wise minimum of its operands.
func Minimum[T Real](es ...Expression[T]) *FunctionN[T, T] {
	return tensor.Minimum(es...)
}

// Where selects elements from x or y based on condition.
//
// Example:
//
//	cond := tensor.Full(tensor.Shape{3}, true, tensor.RowMajor)
//	x := tensor.Full(tensor.Shape{3}, float32(1), tensor.RowMajor)
//	result := tensor.Where[float32](cond, x, tensor.Scalar[float32](0)) // [1, 1, 1]
func Where[T any](cond Expression[bool], x, y Expression[T]) *Function3[bool, T, T, T] {
	return tensor.Where(cond, x, y)
}

// Greater returns a lazy boolean mask of a > b.
func Greater[T Real](a, b Expression[T]) *Function2[T, T, bool] {
	return tensor.Greater(a, b)
}

// Cast lazily converts every element to type R.
func Cast[R, T Real](a Expression[T]) *Function1[T, R] {
	return tensor.Cast[R](a)
}
