package tensor

import (
	"math"
	"math/rand"

	"golang.org/x/exp/constraints"
)

// Zeros creates an array filled with the zero value of T.
// Panics if the shape is invalid.
//
// Example:
//
//	a := tensor.Zeros[float32](Shape{3, 4}, RowMajor)
func Zeros[T any](shape Shape, layout Layout) *Array[T] {
	a, err := NewArray[T](shape, layout)
	if err != nil {
		panic(err) // Shape validation is the only failure
	}
	return a
}

// Ones creates an array filled with ones.
func Ones[T Numeric](shape Shape, layout Layout) *Array[T] {
	return Full[T](shape, 1, layout)
}

// Full creates an array filled with value.
//
// Example:
//
//	a := tensor.Full[float32](Shape{3, 3}, 3.14, RowMajor)
func Full[T any](shape Shape, value T, layout Layout) *Array[T] {
	a := Zeros[T](shape, layout)
	for i := range a.data {
		a.data[i] = value
	}
	return a
}

// Arange creates a 1D array with values from start to end (exclusive) in
// unit steps.
//
// Example:
//
//	a := tensor.Arange[int32](0, 10) // [0, 1, 2, ..., 9]
func Arange[T Real](start, end T) *Array[T] {
	n := int(math.Ceil(float64(end) - float64(start)))
	if n <= 0 {
		panic("Arange: end must be greater than start")
	}
	a := Zeros[T](Shape{n}, RowMajor)
	for i := range a.data {
		a.data[i] = start + T(i)
	}
	return a
}

// Eye creates an n x n identity matrix.
func Eye[T Numeric](n int, layout Layout) *Array[T] {
	a := Zeros[T](Shape{n, n}, layout)
	for i := 0; i < n; i++ {
		a.Set(1, i, i)
	}
	return a
}

// Rand creates an array with values uniformly distributed in [0, 1).
//
// Example:
//
//	a := tensor.Rand[float32](Shape{10, 10}, RowMajor)
func Rand[T constraints.Float](shape Shape, layout Layout) *Array[T] {
	a := Zeros[T](shape, layout)
	for i := range a.data {
		a.data[i] = T(rand.Float64()) //nolint:gosec // G404: statistical use, not security
	}
	return a
}

// Randn creates an array with values drawn from the standard normal
// distribution using the Box-Muller transform.
func Randn[T constraints.Float](shape Shape, layout Layout) *Array[T] {
	a := Zeros[T](shape, layout)
	data := a.data
	for i := 0; i < len(data); i += 2 {
		u1 := 1 - rand.Float64() //nolint:gosec // G404: statistical use, not security
		u2 := rand.Float64()     //nolint:gosec // G404: statistical use, not security
		r := math.Sqrt(-2.0 * math.Log(u1))
		data[i] = T(r * math.Cos(2.0*math.Pi*u2))
		if i+1 < len(data) {
			data[i+1] = T(r * math.Sin(2.0*math.Pi*u2))
		}
	}
	return a
}
