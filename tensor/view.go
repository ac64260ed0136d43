// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

package tensor

import (
	"github.com/born-ml/lazytensor/internal/tensor"
)

// Functor maps a pointer to an element to a pointer to one of its parts.
type Functor[T, U any] = tensor.Functor[T, U]

// FunctorFunc adapts a plain function to the Functor interface.
type FunctorFunc[T, U any] = tensor.FunctorFunc[T, U]

// Identity is the functor returning the element itself.
type Identity[T any] = tensor.Identity[T]

// Built-in functors over complex elements.
type (
	RealFunctor   = tensor.RealFunctor
	ImagFunctor   = tensor.ImagFunctor
	Real64Functor = tensor.Real64Functor
	Imag64Functor = tensor.Imag64Functor
)

// FunctorView is a writable view of a writable expression through a functor.
type FunctorView[T, U any, F Functor[T, U]] = tensor.FunctorView[T, U, F]

// NewFunctorView builds a view using the zero value of F as the functor.
//
// Example:
//
//	im := tensor.NewFunctorView[complex64, float32, tensor.Imag64Functor](c)
func NewFunctorView[T, U any, F Functor[T, U]](e Lvalue[T]) *FunctorView[T, U, F] {
	return tensor.NewFunctorView[T, U, F](e)
}

// NewFunctorViewWith builds a view using the functor f.
func NewFunctorViewWith[T, U any, F Functor[T, U]](f F, e Lvalue[T]) *FunctorView[T, U, F] {
	return tensor.NewFunctorViewWith[T, U](f, e)
}

// Real returns a writable view of the real parts of a complex128 expression.
func Real(e Lvalue[complex128]) *FunctorView[complex128, float64, RealFunctor] {
	return tensor.Real(e)
}

// Imag returns a writable view of the imaginary parts of a complex128 expression.
func Imag(e Lvalue[complex128]) *FunctorView[complex128, float64, ImagFunctor] {
	return tensor.Imag(e)
}
