package tensor

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type point struct {
	x, y float64
}

func TestFunctorViewIdentityRoundTrip(t *testing.T) {
	a := arange(t, Shape{4})
	v := NewFunctorView[float64, float64, Identity[float64]](a)

	v.Set(7, 1)
	assert.Equal(t, 7.0, a.At(1))

	*v.Ref(2) = 9
	assert.Equal(t, 9.0, a.At(2))
	assert.Equal(t, 9.0, v.Index(2))
	assert.Same(t, a, v.Operand())
}

func TestFunctorViewComplexParts(t *testing.T) {
	c, err := FromSlice([]complex128{1 + 2i, 3 + 4i, 5 + 6i, 7 + 8i}, Shape{2, 2}, RowMajor)
	require.NoError(t, err)

	re, im := Real(c), Imag(c)
	assert.Equal(t, Float64, re.DType())
	assert.Equal(t, Shape{2, 2}, re.Shape())
	assert.Equal(t, RowMajor, im.Layout())
	assert.Equal(t, 3.0, re.At(1, 0))
	assert.Equal(t, 8.0, im.Element([]int{1, 1}))

	re.Set(10, 0, 1)
	*im.Ref(0, 1) = -1
	assert.Equal(t, 10-1i, c.At(0, 1))
	assert.Equal(t, 1+2i, c.At(0, 0), "neighbouring elements are untouched")
}

func TestFunctorViewComplex64(t *testing.T) {
	c := Zeros[complex64](Shape{3}, RowMajor)
	im := NewFunctorView[complex64, float32, Imag64Functor](c)
	re := NewFunctorView[complex64, float32, Real64Functor](c)

	im.Fill(2)
	re.Set(1, 2)
	assert.Equal(t, []complex64{2i, 2i, 1 + 2i}, c.Data())
	assert.Equal(t, Float32, re.DType())
}

func TestFunctorViewAssignBroadcasts(t *testing.T) {
	c := Zeros[complex128](Shape{2, 3}, RowMajor)
	re, im := Real(c), Imag(c)

	require.NoError(t, re.Assign(arange(t, Shape{3})))
	im.Fill(2)
	assert.Equal(t, []complex128{1 + 2i, 2 + 2i, 3 + 2i, 1 + 2i, 2 + 2i, 3 + 2i}, c.Data())

	// The source may read the view it is assigned to.
	require.NoError(t, re.Assign(Mul[float64](re, Scalar(2.0))))
	assert.Equal(t, 6+2i, c.At(1, 2))

	err := re.Assign(arange(t, Shape{4}))
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrIncompatible)
}

func TestFunctorViewInExpression(t *testing.T) {
	c, err := FromSlice([]complex128{3 + 4i, 6 + 8i}, Shape{2}, RowMajor)
	require.NoError(t, err)

	re, im := Real(c), Imag(c)
	norm2 := Add[float64](Mul[float64](re, re), Mul[float64](im, im))
	assert.Equal(t, []float64{25, 100}, collect[float64](norm2))
}

func TestFunctorViewIterators(t *testing.T) {
	c := Zeros[complex128](Shape{2, 3}, RowMajor)
	re := Real(c)
	require.NoError(t, re.Assign(arange(t, Shape{2, 3})))

	it := re.Begin()
	it.(RandomAccessIterator[float64]).Advance(2)
	assert.Equal(t, 3.0, it.Value())
	assert.Equal(t, 4, re.End().(RandomAccessIterator[float64]).Distance(it))

	*it.(RefIterator[float64]).Ref() = 30
	assert.Equal(t, 30+0i, c.At(0, 2))

	s := re.StepperBegin(Shape{2, 3})
	s.Step(0, 1)
	s.Step(1, 1)
	assert.Equal(t, 5.0, s.Value())
	s.ToEnd()
	assert.True(t, s.Equal(re.StepperEnd(Shape{2, 3})))

	var got []float64
	for _, v := range All[float64](re) {
		got = append(got, v)
	}
	assert.Equal(t, []float64{1, 2, 30, 4, 5, 6}, got)
}

func TestFunctorViewIteratorEqualityIgnoresFunctor(t *testing.T) {
	pts, err := FromSlice([]point{{1, 2}, {3, 4}}, Shape{2}, RowMajor)
	require.NoError(t, err)

	xs := NewFunctorViewWith[point, float64](FunctorFunc[point, float64](func(p *point) *float64 { return &p.x }), pts)
	ys := NewFunctorViewWith[point, float64](FunctorFunc[point, float64](func(p *point) *float64 { return &p.y }), pts)

	assert.True(t, xs.Begin().Equal(ys.Begin()))
	assert.False(t, xs.Begin().Equal(ys.End()))
	assert.Equal(t, []float64{1, 3}, collect[float64](xs))
	assert.Equal(t, []float64{2, 4}, collect[float64](ys))
	assert.Equal(t, Unknown, pts.DType())

	ys.Fill(0)
	assert.Equal(t, []point{{1, 0}, {3, 0}}, pts.Data())
}

func TestFunctorViewEmpty(t *testing.T) {
	c := Zeros[complex128](Shape{0, 2}, RowMajor)
	re := Real(c)

	assert.Equal(t, 0, re.Size())
	assert.True(t, re.Begin().Equal(re.End()))
	assert.True(t, re.XBegin().Equal(re.XEnd()))
	assert.Empty(t, collect[float64](re))
	require.NoError(t, re.Assign(Scalar(1.0)))
}

func TestFunctorViewIsNeverContiguous(t *testing.T) {
	c := Zeros[complex128](Shape{2, 2}, RowMajor)
	require.True(t, c.Contiguous())

	re := Real(c)
	assert.False(t, re.Contiguous())
	assert.False(t, NewFunctorView[complex128, complex128, Identity[complex128]](c).Contiguous())
	assert.False(t, Add[float64](re, arange(t, Shape{2, 2})).Contiguous())

	re.Fill(3)
	assert.Equal(t, []complex128{3, 3, 3, 3}, c.Data())
}

func TestFunctorViewOverClosure(t *testing.T) {
	c, err := FromSlice([]complex128{1 + 1i, 2 + 2i}, Shape{2}, RowMajor)
	require.NoError(t, err)

	observed := Real(Observe[complex128](c))
	observed.Set(5, 0)
	assert.Equal(t, 5+1i, c.At(0))

	owned := Real(Own[complex128](c))
	owned.Set(7, 1)
	assert.Equal(t, 2+2i, c.At(1), "the owned copy is written, not c")
	assert.Equal(t, 7.0, owned.At(1))
	assert.Equal(t, 5.0, owned.At(0))

	observed.Fill(0)
	assert.Equal(t, []complex128{1i, 2i}, c.Data())
	assert.Equal(t, []float64{5, 7}, collect[float64](owned))
}

func TestFunctorViewClone(t *testing.T) {
	c := Zeros[complex128](Shape{2}, RowMajor)
	re := Real(c)
	clone := re.Clone()

	re.Set(4, 0)
	assert.Equal(t, 0.0, clone.At(0))
	assert.Equal(t, 4.0, re.At(0))
}
