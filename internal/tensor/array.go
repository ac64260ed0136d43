package tensor

import (
	"fmt"

	"github.com/pkg/errors"
)

// Verify that Array is a writable expression.
var (
	_ Lvalue[float64] = (*Array[float64])(nil)
	_ Cloner[float64] = (*Array[float64])(nil)
)

// Array is a dense N-dimensional container owning its buffer.
//
// Element access follows broadcasting rules: leading excess indices are
// dropped and any index on an axis of length 1 reads element 0 of that
// axis, so an Array can be used directly as the operand of a node whose
// shape is larger than its own.
//
// The flat traversal (Begin, End) covers the storage span: every buffer
// position from the first element to the last one, gaps between strided
// elements included. Only arrays built with NewArrayStrided can have gaps.
type Array[T any] struct {
	data        []T
	span        int // buffer positions reachable by the flat traversal
	shape       Shape
	strides     Strides
	backstrides Strides
	layout      Layout
}

// NewArray allocates a zero-filled array. A Dynamic layout stores the data
// row-major but reports Dynamic as its layout.
func NewArray[T any](shape Shape, layout Layout) (*Array[T], error) {
	if err := shape.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid shape")
	}
	strides, backstrides := shape.ComputeStrides(layout)
	n := shape.NumElements()
	return &Array[T]{
		data:        make([]T, n),
		span:        n,
		shape:       shape.Clone(),
		strides:     strides,
		backstrides: backstrides,
		layout:      layout,
	}, nil
}

// NewArrayStrided creates a Dynamic-layout array over a copy of data using
// caller-supplied strides. Strides of length-1 axes are forced to 0.
func NewArrayStrided[T any](data []T, shape Shape, strides Strides) (*Array[T], error) {
	if err := shape.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid shape")
	}
	if len(strides) != len(shape) {
		return nil, errors.Errorf("strides %v do not match shape %v", strides, shape)
	}

	st := make(Strides, len(shape))
	back := make(Strides, len(shape))
	span := 1
	for i, dim := range shape {
		if strides[i] < 0 {
			return nil, errors.Errorf("negative stride %d at axis %d", strides[i], i)
		}
		if dim != 1 {
			st[i] = strides[i]
		}
		if dim > 0 {
			back[i] = st[i] * (dim - 1)
			span += back[i]
		}
	}
	if shape.NumElements() == 0 {
		span = 0
	}
	if len(data) < span {
		return nil, errors.Errorf("shape %v with strides %v requires %d elements, but got %d", shape, strides, span, len(data))
	}

	buf := make([]T, len(data))
	copy(buf, data)
	return &Array[T]{
		data:        buf,
		span:        span,
		shape:       shape.Clone(),
		strides:     st,
		backstrides: back,
		layout:      Dynamic,
	}, nil
}

// FromSlice creates an array from a Go slice laid out in the given order.
// The slice is copied into the array's memory.
//
// Example:
//
//	a, err := tensor.FromSlice([]float64{1, 2, 3, 4, 5, 6}, Shape{2, 3}, RowMajor)
func FromSlice[T any](data []T, shape Shape, layout Layout) (*Array[T], error) {
	if shape.NumElements() != len(data) {
		return nil, errors.Errorf("shape %v requires %d elements, but got %d", shape, shape.NumElements(), len(data))
	}
	a, err := NewArray[T](shape, layout)
	if err != nil {
		return nil, err
	}
	copy(a.data, data)
	return a, nil
}

// Shape returns the array's shape.
func (a *Array[T]) Shape() Shape {
	return a.shape
}

// Dimension returns the number of axes.
func (a *Array[T]) Dimension() int {
	return len(a.shape)
}

// Size returns the number of elements.
func (a *Array[T]) Size() int {
	return a.shape.NumElements()
}

// Layout returns the storage order of the array.
func (a *Array[T]) Layout() Layout {
	return a.layout
}

// Contiguous is true for arrays with a static layout.
func (a *Array[T]) Contiguous() bool {
	return a.layout != Dynamic
}

// DType returns the element type.
func (a *Array[T]) DType() DataType {
	return DataTypeOf[T]()
}

// Strides returns the memory strides.
func (a *Array[T]) Strides() Strides {
	return a.strides
}

// Backstrides returns, per axis, the distance from the last to the first
// element of that axis.
func (a *Array[T]) Backstrides() Strides {
	return a.backstrides
}

// Span returns the number of buffer positions between the first and the
// last element, both included.
func (a *Array[T]) Span() int {
	return a.span
}

// Data returns the underlying buffer.
//
// WARNING: Modifications to the returned slice will modify the array.
func (a *Array[T]) Data() []T {
	return a.data
}

// At returns the element at the given indices.
// Panics if fewer indices than axes are given or an index is out of bounds.
//
// Example:
//
//	a := tensor.Zeros[float64](Shape{3, 4}, RowMajor)
//	value := a.At(1, 2) // Row 1, column 2
func (a *Array[T]) At(indices ...int) T {
	return a.data[a.offset("At", indices)]
}

// Index is the single-index form of At.
func (a *Array[T]) Index(i int) T {
	return a.At(i)
}

// Element returns the element at the position held in index.
func (a *Array[T]) Element(index []int) T {
	return a.data[a.offset("Element", index)]
}

// Ref returns a pointer to the element at the given indices.
func (a *Array[T]) Ref(indices ...int) *T {
	return &a.data[a.offset("Ref", indices)]
}

// RefIndex is the single-index form of Ref.
func (a *Array[T]) RefIndex(i int) *T {
	return a.Ref(i)
}

// RefElement returns a pointer to the element at the position held in index.
func (a *Array[T]) RefElement(index []int) *T {
	return &a.data[a.offset("RefElement", index)]
}

// Set sets the element at the given indices.
// Panics if indices are out of bounds.
func (a *Array[T]) Set(value T, indices ...int) {
	a.data[a.offset("Set", indices)] = value
}

// offset computes the buffer position of a multi-index.
func (a *Array[T]) offset(op string, indices []int) int {
	checkRank(op, len(a.shape), len(indices))
	indices = indices[len(indices)-len(a.shape):]

	off := 0
	for i, idx := range indices {
		if idx < 0 || (idx >= a.shape[i] && a.shape[i] != 1) {
			panic(fmt.Sprintf("%s: index %d out of bounds for axis %d (size %d)", op, idx, i, a.shape[i]))
		}
		off += idx * a.strides[i]
	}
	return off
}

// BroadcastShape merges the array's shape into shape.
func (a *Array[T]) BroadcastShape(shape Shape) (bool, error) {
	return broadcastInto(shape, a.shape)
}

// IsTrivialBroadcast reports whether strides are the array's own strides.
func (a *Array[T]) IsTrivialBroadcast(strides Strides) bool {
	return a.strides.Equal(strides)
}

// Assign copies src into the array, broadcasting it to the array's shape.
func (a *Array[T]) Assign(src Expression[T]) error {
	return Assign[T](a, src)
}

// Fill sets every element to value. Buffer positions that belong to no
// element are left untouched.
func (a *Array[T]) Fill(value T) {
	if !a.Contiguous() {
		Fill[T](a, value)
		return
	}
	for i := range a.data[:a.span] {
		a.data[i] = value
	}
}

// Copy returns an array with the same shape, strides and layout over a
// private copy of the buffer.
func (a *Array[T]) Copy() *Array[T] {
	buf := make([]T, len(a.data))
	copy(buf, a.data)
	return &Array[T]{
		data:        buf,
		span:        a.span,
		shape:       a.shape.Clone(),
		strides:     append(Strides(nil), a.strides...),
		backstrides: append(Strides(nil), a.backstrides...),
		layout:      a.layout,
	}
}

// Clone returns Copy as an expression.
func (a *Array[T]) Clone() Expression[T] {
	return a.Copy()
}

// Begin returns an iterator to the first element of the buffer.
func (a *Array[T]) Begin() Iterator[T] {
	return &arrayIterator[T]{a: a}
}

// End returns an iterator past the storage span.
func (a *Array[T]) End() Iterator[T] {
	return &arrayIterator[T]{a: a, pos: a.span}
}

// StepperBegin returns a stepper on the first element, broadcast to shape.
func (a *Array[T]) StepperBegin(shape Shape) Stepper[T] {
	return &arrayStepper[T]{a: a, offset: len(shape) - len(a.shape)}
}

// StepperEnd returns a stepper past the last element, broadcast to shape.
func (a *Array[T]) StepperEnd(shape Shape) Stepper[T] {
	s := &arrayStepper[T]{a: a, offset: len(shape) - len(a.shape)}
	s.ToEnd()
	return s
}

// XBegin returns a broadcast iterator on the first element.
func (a *Array[T]) XBegin() *BroadcastIterator[T] {
	return XBegin[T](a)
}

// XEnd returns a broadcast iterator past the last element.
func (a *Array[T]) XEnd() *BroadcastIterator[T] {
	return XEnd[T](a)
}

// String returns a human-readable description of the array.
func (a *Array[T]) String() string {
	return fmt.Sprintf("Array[%s]%v %s", a.DType(), a.shape, a.layout)
}

// arrayStepper walks the buffer of an array with its strides. Moves on the
// leading axes the array does not have are ignored. A negative offset means
// the traversal shape has fewer axes than the array: its axis dim is then
// the array's axis dim-offset.
type arrayStepper[T any] struct {
	a      *Array[T]
	pos    int
	offset int // len(traversal shape) - len(array shape)
}

func (s *arrayStepper[T]) Step(dim, n int) {
	if dim >= s.offset {
		s.pos += n * s.a.strides[dim-s.offset]
	}
}

func (s *arrayStepper[T]) StepBack(dim, n int) {
	if dim >= s.offset {
		s.pos -= n * s.a.strides[dim-s.offset]
	}
}

func (s *arrayStepper[T]) Reset(dim int) {
	if dim >= s.offset {
		s.pos -= s.a.backstrides[dim-s.offset]
	}
}

func (s *arrayStepper[T]) ToEnd() {
	s.pos = s.a.span
}

func (s *arrayStepper[T]) Value() T {
	return s.a.data[s.pos]
}

func (s *arrayStepper[T]) Ref() *T {
	return &s.a.data[s.pos]
}

func (s *arrayStepper[T]) Equal(other Stepper[T]) bool {
	o, ok := other.(*arrayStepper[T])
	return ok && s.a == o.a && s.pos == o.pos
}

// arrayIterator walks the buffer in storage order.
type arrayIterator[T any] struct {
	a   *Array[T]
	pos int
}

func (it *arrayIterator[T]) Next() {
	it.pos++
}

func (it *arrayIterator[T]) Value() T {
	return it.a.data[it.pos]
}

func (it *arrayIterator[T]) Ref() *T {
	return &it.a.data[it.pos]
}

func (it *arrayIterator[T]) Equal(other Iterator[T]) bool {
	o, ok := other.(*arrayIterator[T])
	return ok && it.a == o.a && it.pos == o.pos
}

func (it *arrayIterator[T]) Advance(n int) {
	it.pos += n
}

func (it *arrayIterator[T]) Distance(other Iterator[T]) int {
	o, ok := other.(*arrayIterator[T])
	if !ok || o.a != it.a {
		panic("Distance: iterators belong to different arrays")
	}
	return it.pos - o.pos
}
