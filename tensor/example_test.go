// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

package tensor_test

import (
	"fmt"

	"github.com/born-ml/lazytensor/tensor"
)

func ExampleAdd() {
	a, _ := tensor.FromSlice([]float64{1, 2, 3, 4, 5, 6}, tensor.Shape{2, 3}, tensor.RowMajor)
	b, _ := tensor.FromSlice([]float64{10, 20, 30}, tensor.Shape{3}, tensor.RowMajor)

	sum := tensor.Add[float64](a, b)
	fmt.Println(sum.Shape())
	fmt.Println(sum.At(1, 2))
	// Output:
	// [2 3]
	// 36
}

func ExampleReal() {
	c := tensor.Zeros[complex128](tensor.Shape{2}, tensor.RowMajor)
	tensor.Real(c).Fill(1)
	tensor.Imag(c).Set(2, 1)
	fmt.Println(c.Data())
	// Output:
	// [(1+0i) (1+2i)]
}

func ExampleMaximum() {
	a := tensor.Arange[float64](0, 4)
	b := tensor.Scalar(1.5)
	clipped := tensor.Maximum[float64](a, b)

	for v := range tensor.Values[float64](clipped) {
		fmt.Print(v, " ")
	}
	fmt.Println()
	// Output:
	// 1.5 1.5 2 3
}
