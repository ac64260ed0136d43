// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

package tensor_test

import (
	"errors"
	"testing"

	"github.com/born-ml/lazytensor/tensor"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestExpressionInterfaces verifies that every node type satisfies the
// public expression interfaces.
func TestExpressionInterfaces(_ *testing.T) {
	var _ tensor.Lvalue[float64] = (*tensor.Array[float64])(nil)
	var _ tensor.Lvalue[float64] = (*tensor.FunctorView[complex128, float64, tensor.RealFunctor])(nil)
	var _ tensor.Expression[float64] = (*tensor.Function1[int32, float64])(nil)
	var _ tensor.Expression[bool] = (*tensor.Function2[float64, float64, bool])(nil)
	var _ tensor.Expression[float64] = (*tensor.Function3[bool, float64, float64, float64])(nil)
	var _ tensor.Expression[float64] = (*tensor.FunctionN[float64, float64])(nil)
	var _ tensor.Expression[float64] = (*tensor.Broadcast[float64])(nil)
	var _ tensor.Expression[float64] = tensor.Closure[float64]{}
}

// TestCreationFunctions verifies the array creation API.
func TestCreationFunctions(t *testing.T) {
	tests := []struct {
		name  string
		fn    func() (*tensor.Array[float32], error)
		shape tensor.Shape
	}{
		{
			name: "NewArray",
			fn: func() (*tensor.Array[float32], error) {
				return tensor.NewArray[float32](tensor.Shape{2, 3}, tensor.ColumnMajor)
			},
			shape: tensor.Shape{2, 3},
		},
		{
			name: "Zeros",
			fn: func() (*tensor.Array[float32], error) {
				return tensor.Zeros[float32](tensor.Shape{2, 3}, tensor.RowMajor), nil
			},
			shape: tensor.Shape{2, 3},
		},
		{
			name: "Ones",
			fn: func() (*tensor.Array[float32], error) {
				return tensor.Ones[float32](tensor.Shape{2, 3}, tensor.RowMajor), nil
			},
			shape: tensor.Shape{2, 3},
		},
		{
			name: "Full",
			fn: func() (*tensor.Array[float32], error) {
				return tensor.Full[float32](tensor.Shape{2, 3}, 3.14, tensor.RowMajor), nil
			},
			shape: tensor.Shape{2, 3},
		},
		{
			name: "Rand",
			fn: func() (*tensor.Array[float32], error) {
				return tensor.Rand[float32](tensor.Shape{2, 3}, tensor.RowMajor), nil
			},
			shape: tensor.Shape{2, 3},
		},
		{
			name: "Randn",
			fn: func() (*tensor.Array[float32], error) {
				return tensor.Randn[float32](tensor.Shape{2, 3}, tensor.RowMajor), nil
			},
			shape: tensor.Shape{2, 3},
		},
		{
			name: "Arange",
			fn: func() (*tensor.Array[float32], error) {
				return tensor.Arange[float32](0, 10), nil
			},
			shape: tensor.Shape{10},
		},
		{
			name: "Eye",
			fn: func() (*tensor.Array[float32], error) {
				return tensor.Eye[float32](3, tensor.RowMajor), nil
			},
			shape: tensor.Shape{3, 3},
		},
		{
			name: "FromSlice",
			fn: func() (*tensor.Array[float32], error) {
				return tensor.FromSlice([]float32{1, 2, 3, 4, 5, 6}, tensor.Shape{2, 3}, tensor.RowMajor)
			},
			shape: tensor.Shape{2, 3},
		},
		{
			name: "NewArrayStrided",
			fn: func() (*tensor.Array[float32], error) {
				return tensor.NewArrayStrided([]float32{1, 2, 3, 4, 5, 6}, tensor.Shape{2, 3}, tensor.Strides{1, 2})
			},
			shape: tensor.Shape{2, 3},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			a, err := tt.fn()
			if err != nil {
				t.Fatalf("%s() returned error: %v", tt.name, err)
			}
			if !a.Shape().Equal(tt.shape) {
				t.Errorf("%s().Shape() = %v, want %v", tt.name, a.Shape(), tt.shape)
			}
			if a.DType() != tensor.Float32 {
				t.Errorf("%s().DType() = %v, want float32", tt.name, a.DType())
			}
		})
	}
}

// TestDataTypeConstants verifies all data type constants are accessible.
func TestDataTypeConstants(t *testing.T) {
	types := []struct {
		name  string
		dtype tensor.DataType
		size  int
	}{
		{"bool", tensor.Bool, 1},
		{"uint8", tensor.Uint8, 1},
		{"int32", tensor.Int32, 4},
		{"int64", tensor.Int64, 8},
		{"float32", tensor.Float32, 4},
		{"float64", tensor.Float64, 8},
		{"complex64", tensor.Complex64, 8},
		{"complex128", tensor.Complex128, 16},
	}

	for _, d := range types {
		t.Run(d.name, func(t *testing.T) {
			if got := d.dtype.String(); got != d.name {
				t.Errorf("DataType.String() = %q, want %q", got, d.name)
			}
			if got := d.dtype.Size(); got != d.size {
				t.Errorf("DataType.Size() = %d, want %d", got, d.size)
			}
		})
	}
}

func TestBroadcastSumScenario(t *testing.T) {
	a := tensor.Arange[float64](1, 13)
	m, err := tensor.FromSlice(a.Data(), tensor.Shape{3, 4}, tensor.RowMajor)
	require.NoError(t, err)
	b := tensor.Arange[float64](1, 5)

	sum := tensor.Add[float64](m, b)
	assert.Equal(t, tensor.Shape{3, 4}, sum.Shape())
	assert.Equal(t, tensor.RowMajor, sum.Layout())
	assert.Equal(t, 10.0, sum.At(1, 2))

	out, err := tensor.Eval[float64](sum, tensor.RowMajor)
	require.NoError(t, err)
	assert.Equal(t, []float64{2, 4, 6, 8, 6, 8, 10, 12, 10, 12, 14, 16}, out.Data())
}

func TestBroadcastErrorsAreExported(t *testing.T) {
	_, _, err := tensor.BroadcastShapes(tensor.Shape{3, 4}, tensor.Shape{3, 5})
	require.Error(t, err)
	assert.True(t, errors.Is(err, tensor.ErrIncompatible))

	var be *tensor.BroadcastError
	require.True(t, errors.As(err, &be))
	assert.Equal(t, 1, be.Axis)

	bad := tensor.Add[float64](tensor.Zeros[float64](tensor.Shape{2}, tensor.RowMajor),
		tensor.Zeros[float64](tensor.Shape{3}, tensor.RowMajor))
	_, err = bad.ComputeShape()
	assert.ErrorIs(t, err, tensor.ErrIncompatible)
	assert.Panics(t, func() { bad.Shape() })
}

func TestComplexViews(t *testing.T) {
	c := tensor.Zeros[complex128](tensor.Shape{2, 2}, tensor.RowMajor)
	tensor.Real(c).Fill(1)
	tensor.Imag(c).Set(2, 0, 1)
	assert.Equal(t, []complex128{1, 1 + 2i, 1, 1}, c.Data())

	id := tensor.NewFunctorView[complex128, complex128, tensor.Identity[complex128]](c)
	require.NoError(t, tensor.Assign[complex128](id, tensor.Scalar(3i)))
	assert.Equal(t, 3i, c.At(1, 1))
}

func TestTraversalHelpers(t *testing.T) {
	a := tensor.Arange[int64](0, 6)
	m, err := tensor.FromSlice(a.Data(), tensor.Shape{2, 3}, tensor.ColumnMajor)
	require.NoError(t, err)

	var got []int64
	for v := range tensor.Values[int64](m) {
		got = append(got, v)
	}
	// Column-major storage is still traversed in row-major index order.
	assert.Equal(t, []int64{0, 2, 4, 1, 3, 5}, got)

	n := 0
	for idx, v := range tensor.All[int64](m) {
		assert.Equal(t, m.Element(idx), v)
		n++
	}
	assert.Equal(t, 6, n)
}
