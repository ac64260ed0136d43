// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package tensor provides lazy, broadcasting array expressions.
//
// # Overview
//
// An expression is anything that has a shape and can be read element by
// element: a dense Array, a lazy function node combining other expressions,
// or a writable view that re-interprets the elements of another expression.
// Nothing is computed when an expression is built. Elements are produced on
// demand by At, by iterators, or by materialising the expression with Eval.
//
// # Basic Usage
//
//	import "github.com/born-ml/lazytensor/tensor"
//
//	func main() {
//	    a, _ := tensor.FromSlice([]float64{1, 2, 3, 4, 5, 6}, tensor.Shape{2, 3}, tensor.RowMajor)
//	    b, _ := tensor.FromSlice([]float64{10, 20, 30}, tensor.Shape{3}, tensor.RowMajor)
//
//	    sum := tensor.Add[float64](a, b) // nothing evaluated yet
//	    fmt.Println(sum.Shape())         // [2 3]
//	    fmt.Println(sum.At(1, 2))        // 36
//
//	    out, err := tensor.Eval[float64](sum, tensor.RowMajor)
//	}
//
// # Broadcasting
//
// Operands follow NumPy broadcasting rules. Shapes are aligned on their
// trailing axes; an axis of extent 1 stretches to match the other operand:
//
//	a := tensor.Zeros[float32](tensor.Shape{3, 1}, tensor.RowMajor) // (3, 1)
//	b := tensor.Zeros[float32](tensor.Shape{4}, tensor.RowMajor)    // (4,)
//	c := tensor.Add[float32](a, b)                                   // (3, 4)
//
// A function node computes its broadcast shape once, on first use, and
// caches it. Shape panics when the operands cannot be broadcast together;
// ComputeShape, Eval and Assign return the error instead.
//
// # Iteration
//
// Expressions expose two traversals. Begin/End walk the storage order and
// are only meaningful when no broadcasting happens. XBegin/XEnd walk the
// broadcast shape in row-major order regardless of operand layouts:
//
//	for v := range tensor.Values[float64](sum) {
//	    total += v
//	}
//
// # Views
//
// A FunctorView exposes a part of every element of a writable expression,
// for example the real parts of a complex array. Writes through the view
// land in the underlying storage:
//
//	c := tensor.Zeros[complex128](tensor.Shape{2, 2}, tensor.RowMajor)
//	tensor.Real(c).Fill(1)
//	tensor.Imag(c).Set(2, 0, 1) // c.At(0, 1) == 1+2i
package tensor
