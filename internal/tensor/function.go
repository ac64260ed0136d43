package tensor

import "go.uber.org/multierr"

// funcBase carries the element-type independent state of a function node:
// the operand list and the memoized broadcast shape. Every FunctionK type
// embeds it and inherits its shape, layout and broadcast methods.
//
// Nodes are immutable once built, so the shape is computed at most once and
// never invalidated. The first call to Shape is not safe for concurrent use;
// later calls are read-only.
type funcBase struct {
	operands      []Shaped
	shape         Shape
	shapeErr      error
	shapeComputed bool
}

// Shape returns the broadcast of the operand shapes.
// Panics with a *BroadcastError if the operands are incompatible; use
// ComputeShape to get the error instead.
func (b *funcBase) Shape() Shape {
	shape, err := b.ComputeShape()
	if err != nil {
		panic(err)
	}
	return shape
}

// ComputeShape returns the broadcast of the operand shapes, computing and
// caching it on first use.
func (b *funcBase) ComputeShape() (Shape, error) {
	if !b.shapeComputed {
		shape := unitShape(b.computeDimension())
		_, err := b.BroadcastShape(shape)
		b.shape, b.shapeErr = shape, err
		b.shapeComputed = true
	}
	return b.shape, b.shapeErr
}

// Dimension returns the rank of the node without materializing the shape
// when it has not been computed yet.
func (b *funcBase) Dimension() int {
	if b.shapeComputed {
		return len(b.shape)
	}
	return b.computeDimension()
}

func (b *funcBase) computeDimension() int {
	if len(b.operands) == 0 {
		return 1
	}
	dim := 0
	for _, e := range b.operands {
		dim = max(dim, e.Dimension())
	}
	return dim
}

// Size returns the number of elements of the broadcast shape.
func (b *funcBase) Size() int {
	return b.Shape().NumElements()
}

// Layout returns the merge of the operand layouts.
func (b *funcBase) Layout() Layout {
	layouts := make([]Layout, len(b.operands))
	for i, e := range b.operands {
		layouts[i] = e.Layout()
	}
	return ComputeLayout(layouts...)
}

// Contiguous is true when every operand is contiguous.
func (b *funcBase) Contiguous() bool {
	for _, e := range b.operands {
		if !e.Contiguous() {
			return false
		}
	}
	return true
}

// BroadcastShape merges every operand's shape into shape. All operands are
// visited even after one has reported a non-trivial broadcast or an error:
// nested nodes validate their own operands as a side effect of the visit.
// Errors from several operands are combined.
//
// An operand that was trivial when visited stops being so if a later operand
// widens one of its unit axes, so the result is only trivial when shape no
// longer changes after the first trivial operand.
func (b *funcBase) BroadcastShape(shape Shape) (bool, error) {
	trivial := true
	var settled Shape
	var err error
	for _, e := range b.operands {
		t, opErr := e.BroadcastShape(shape)
		if t && settled == nil {
			settled = shape.Clone()
		}
		trivial = t && trivial
		err = multierr.Append(err, opErr)
	}
	if trivial && settled != nil && !settled.Equal(shape) {
		trivial = false
	}
	return trivial, err
}

// OperandDType returns the common element type of the operands, the type a
// value-preserving evaluation of the node would promote them to.
func (b *funcBase) OperandDType() DataType {
	dtypes := make([]DataType, len(b.operands))
	for i, e := range b.operands {
		dtypes[i] = e.DType()
	}
	return CommonDataType(dtypes...)
}

// IsTrivialBroadcast reports whether every operand is trivially readable
// with strides. Every operand is asked.
func (b *funcBase) IsTrivialBroadcast(strides Strides) bool {
	trivial := true
	for _, e := range b.operands {
		trivial = e.IsTrivialBroadcast(strides) && trivial
	}
	return trivial
}

// Function1 lazily applies a unary function to an expression.
type Function1[A, R any] struct {
	funcBase
	f func(A) R
	a Expression[A]
}

// NewFunction1 builds a unary function node. Nothing is evaluated.
func NewFunction1[A, R any](f func(A) R, a Expression[A]) *Function1[A, R] {
	return &Function1[A, R]{funcBase: funcBase{operands: []Shaped{a}}, f: f, a: a}
}

// DType returns the element type of the result.
func (fn *Function1[A, R]) DType() DataType { return DataTypeOf[R]() }

// Clone returns a node applying the same function to a copy of the operand.
func (fn *Function1[A, R]) Clone() Expression[R] {
	return NewFunction1(fn.f, cloneExpr(fn.a))
}

// At applies the function to the operand element at indices.
func (fn *Function1[A, R]) At(indices ...int) R {
	return fn.f(fn.a.At(indices...))
}

// Index is the single-index form of At.
func (fn *Function1[A, R]) Index(i int) R { return fn.At(i) }

// Element applies the function to the operand element at index.
func (fn *Function1[A, R]) Element(index []int) R {
	return fn.f(fn.a.Element(index))
}

// Begin returns a flat iterator over the operand's storage.
func (fn *Function1[A, R]) Begin() Iterator[R] {
	return &function1Iterator[A, R]{fn: fn, a: fn.a.Begin()}
}

// End returns the flat end iterator.
func (fn *Function1[A, R]) End() Iterator[R] {
	return &function1Iterator[A, R]{fn: fn, a: fn.a.End()}
}

// StepperBegin returns a stepper at the first element of shape.
func (fn *Function1[A, R]) StepperBegin(shape Shape) Stepper[R] {
	return &function1Stepper[A, R]{fn: fn, a: fn.a.StepperBegin(shape)}
}

// StepperEnd returns a stepper past the last element of shape.
func (fn *Function1[A, R]) StepperEnd(shape Shape) Stepper[R] {
	return &function1Stepper[A, R]{fn: fn, a: fn.a.StepperEnd(shape)}
}

// XBegin returns a broadcast iterator on the first element.
func (fn *Function1[A, R]) XBegin() *BroadcastIterator[R] { return XBegin[R](fn) }

// XEnd returns a broadcast iterator past the last element.
func (fn *Function1[A, R]) XEnd() *BroadcastIterator[R] { return XEnd[R](fn) }

type function1Iterator[A, R any] struct {
	fn *Function1[A, R]
	a  Iterator[A]
}

func (it *function1Iterator[A, R]) Next()    { it.a.Next() }
func (it *function1Iterator[A, R]) Value() R { return it.fn.f(it.a.Value()) }

func (it *function1Iterator[A, R]) Equal(other Iterator[R]) bool {
	o, ok := other.(*function1Iterator[A, R])
	return ok && it.fn == o.fn && it.a.Equal(o.a)
}

type function1Stepper[A, R any] struct {
	fn *Function1[A, R]
	a  Stepper[A]
}

func (s *function1Stepper[A, R]) Step(dim, n int)     { s.a.Step(dim, n) }
func (s *function1Stepper[A, R]) StepBack(dim, n int) { s.a.StepBack(dim, n) }
func (s *function1Stepper[A, R]) Reset(dim int)       { s.a.Reset(dim) }
func (s *function1Stepper[A, R]) ToEnd()              { s.a.ToEnd() }
func (s *function1Stepper[A, R]) Value() R            { return s.fn.f(s.a.Value()) }

func (s *function1Stepper[A, R]) Equal(other Stepper[R]) bool {
	o, ok := other.(*function1Stepper[A, R])
	return ok && s.fn == o.fn && s.a.Equal(o.a)
}

// Function2 lazily applies a binary function to two expressions whose
// element types may differ. Its shape is the broadcast of both operands.
//
// Example:
//
//	a, _ := tensor.FromSlice([]float64{1, 2, 3, 4, 5, 6}, Shape{2, 3}, RowMajor)
//	b, _ := tensor.FromSlice([]float64{10, 20, 30}, Shape{3}, RowMajor)
//	sum := tensor.NewFunction2(func(x, y float64) float64 { return x + y }, a, b)
//	sum.At(1, 2) // 36
type Function2[A, B, R any] struct {
	funcBase
	f func(A, B) R
	a Expression[A]
	b Expression[B]
}

// NewFunction2 builds a binary function node. Nothing is evaluated.
func NewFunction2[A, B, R any](f func(A, B) R, a Expression[A], b Expression[B]) *Function2[A, B, R] {
	return &Function2[A, B, R]{funcBase: funcBase{operands: []Shaped{a, b}}, f: f, a: a, b: b}
}

// DType returns the element type of the result.
func (fn *Function2[A, B, R]) DType() DataType { return DataTypeOf[R]() }

// Clone returns a node applying the same function to copies of the operands.
func (fn *Function2[A, B, R]) Clone() Expression[R] {
	return NewFunction2(fn.f, cloneExpr(fn.a), cloneExpr(fn.b))
}

// At applies the function to the operand elements at indices. Each operand
// receives the same indices and drops the leading ones it does not have.
func (fn *Function2[A, B, R]) At(indices ...int) R {
	return fn.f(fn.a.At(indices...), fn.b.At(indices...))
}

// Index is the single-index form of At.
func (fn *Function2[A, B, R]) Index(i int) R { return fn.At(i) }

// Element applies the function to the operand elements at index.
func (fn *Function2[A, B, R]) Element(index []int) R {
	return fn.f(fn.a.Element(index), fn.b.Element(index))
}

// Begin returns a flat iterator over the operands' storage. Only
// meaningful when the broadcast is trivial.
func (fn *Function2[A, B, R]) Begin() Iterator[R] {
	return &function2Iterator[A, B, R]{fn: fn, a: fn.a.Begin(), b: fn.b.Begin()}
}

// End returns the flat end iterator.
func (fn *Function2[A, B, R]) End() Iterator[R] {
	return &function2Iterator[A, B, R]{fn: fn, a: fn.a.End(), b: fn.b.End()}
}

// StepperBegin returns a stepper at the first element of shape.
func (fn *Function2[A, B, R]) StepperBegin(shape Shape) Stepper[R] {
	return &function2Stepper[A, B, R]{fn: fn, a: fn.a.StepperBegin(shape), b: fn.b.StepperBegin(shape)}
}

// StepperEnd returns a stepper past the last element of shape.
func (fn *Function2[A, B, R]) StepperEnd(shape Shape) Stepper[R] {
	return &function2Stepper[A, B, R]{fn: fn, a: fn.a.StepperEnd(shape), b: fn.b.StepperEnd(shape)}
}

// XBegin returns a broadcast iterator on the first element.
func (fn *Function2[A, B, R]) XBegin() *BroadcastIterator[R] { return XBegin[R](fn) }

// XEnd returns a broadcast iterator past the last element.
func (fn *Function2[A, B, R]) XEnd() *BroadcastIterator[R] { return XEnd[R](fn) }

type function2Iterator[A, B, R any] struct {
	fn *Function2[A, B, R]
	a  Iterator[A]
	b  Iterator[B]
}

func (it *function2Iterator[A, B, R]) Next() {
	it.a.Next()
	it.b.Next()
}

func (it *function2Iterator[A, B, R]) Value() R {
	return it.fn.f(it.a.Value(), it.b.Value())
}

func (it *function2Iterator[A, B, R]) Equal(other Iterator[R]) bool {
	o, ok := other.(*function2Iterator[A, B, R])
	return ok && it.fn == o.fn && it.a.Equal(o.a) && it.b.Equal(o.b)
}

type function2Stepper[A, B, R any] struct {
	fn *Function2[A, B, R]
	a  Stepper[A]
	b  Stepper[B]
}

func (s *function2Stepper[A, B, R]) Step(dim, n int) {
	s.a.Step(dim, n)
	s.b.Step(dim, n)
}

func (s *function2Stepper[A, B, R]) StepBack(dim, n int) {
	s.a.StepBack(dim, n)
	s.b.StepBack(dim, n)
}

func (s *function2Stepper[A, B, R]) Reset(dim int) {
	s.a.Reset(dim)
	s.b.Reset(dim)
}

func (s *function2Stepper[A, B, R]) ToEnd() {
	s.a.ToEnd()
	s.b.ToEnd()
}

func (s *function2Stepper[A, B, R]) Value() R {
	return s.fn.f(s.a.Value(), s.b.Value())
}

func (s *function2Stepper[A, B, R]) Equal(other Stepper[R]) bool {
	o, ok := other.(*function2Stepper[A, B, R])
	return ok && s.fn == o.fn && s.a.Equal(o.a) && s.b.Equal(o.b)
}

// Function3 lazily applies a ternary function to three expressions.
type Function3[A, B, C, R any] struct {
	funcBase
	f func(A, B, C) R
	a Expression[A]
	b Expression[B]
	c Expression[C]
}

// NewFunction3 builds a ternary function node. Nothing is evaluated.
func NewFunction3[A, B, C, R any](f func(A, B, C) R, a Expression[A], b Expression[B], c Expression[C]) *Function3[A, B, C, R] {
	return &Function3[A, B, C, R]{funcBase: funcBase{operands: []Shaped{a, b, c}}, f: f, a: a, b: b, c: c}
}

// DType returns the element type of the result.
func (fn *Function3[A, B, C, R]) DType() DataType { return DataTypeOf[R]() }

// Clone returns a node applying the same function to copies of the operands.
func (fn *Function3[A, B, C, R]) Clone() Expression[R] {
	return NewFunction3(fn.f, cloneExpr(fn.a), cloneExpr(fn.b), cloneExpr(fn.c))
}

// At applies the function to the operand elements at indices.
func (fn *Function3[A, B, C, R]) At(indices ...int) R {
	return fn.f(fn.a.At(indices...), fn.b.At(indices...), fn.c.At(indices...))
}

// Index is the single-index form of At.
func (fn *Function3[A, B, C, R]) Index(i int) R { return fn.At(i) }

// Element applies the function to the operand elements at index.
func (fn *Function3[A, B, C, R]) Element(index []int) R {
	return fn.f(fn.a.Element(index), fn.b.Element(index), fn.c.Element(index))
}

// Begin returns a flat iterator over the operands' storage.
func (fn *Function3[A, B, C, R]) Begin() Iterator[R] {
	return &function3Iterator[A, B, C, R]{fn: fn, a: fn.a.Begin(), b: fn.b.Begin(), c: fn.c.Begin()}
}

// End returns the flat end iterator.
func (fn *Function3[A, B, C, R]) End() Iterator[R] {
	return &function3Iterator[A, B, C, R]{fn: fn, a: fn.a.End(), b: fn.b.End(), c: fn.c.End()}
}

// StepperBegin returns a stepper at the first element of shape.
func (fn *Function3[A, B, C, R]) StepperBegin(shape Shape) Stepper[R] {
	return &function3Stepper[A, B, C, R]{
		fn: fn,
		a:  fn.a.StepperBegin(shape),
		b:  fn.b.StepperBegin(shape),
		c:  fn.c.StepperBegin(shape),
	}
}

// StepperEnd returns a stepper past the last element of shape.
func (fn *Function3[A, B, C, R]) StepperEnd(shape Shape) Stepper[R] {
	return &function3Stepper[A, B, C, R]{
		fn: fn,
		a:  fn.a.StepperEnd(shape),
		b:  fn.b.StepperEnd(shape),
		c:  fn.c.StepperEnd(shape),
	}
}

// XBegin returns a broadcast iterator on the first element.
func (fn *Function3[A, B, C, R]) XBegin() *BroadcastIterator[R] { return XBegin[R](fn) }

// XEnd returns a broadcast iterator past the last element.
func (fn *Function3[A, B, C, R]) XEnd() *BroadcastIterator[R] { return XEnd[R](fn) }

type function3Iterator[A, B, C, R any] struct {
	fn *Function3[A, B, C, R]
	a  Iterator[A]
	b  Iterator[B]
	c  Iterator[C]
}

func (it *function3Iterator[A, B, C, R]) Next() {
	it.a.Next()
	it.b.Next()
	it.c.Next()
}

func (it *function3Iterator[A, B, C, R]) Value() R {
	return it.fn.f(it.a.Value(), it.b.Value(), it.c.Value())
}

func (it *function3Iterator[A, B, C, R]) Equal(other Iterator[R]) bool {
	o, ok := other.(*function3Iterator[A, B, C, R])
	return ok && it.fn == o.fn && it.a.Equal(o.a) && it.b.Equal(o.b) && it.c.Equal(o.c)
}

type function3Stepper[A, B, C, R any] struct {
	fn *Function3[A, B, C, R]
	a  Stepper[A]
	b  Stepper[B]
	c  Stepper[C]
}

func (s *function3Stepper[A, B, C, R]) Step(dim, n int) {
	s.a.Step(dim, n)
	s.b.Step(dim, n)
	s.c.Step(dim, n)
}

func (s *function3Stepper[A, B, C, R]) StepBack(dim, n int) {
	s.a.StepBack(dim, n)
	s.b.StepBack(dim, n)
	s.c.StepBack(dim, n)
}

func (s *function3Stepper[A, B, C, R]) Reset(dim int) {
	s.a.Reset(dim)
	s.b.Reset(dim)
	s.c.Reset(dim)
}

func (s *function3Stepper[A, B, C, R]) ToEnd() {
	s.a.ToEnd()
	s.b.ToEnd()
	s.c.ToEnd()
}

func (s *function3Stepper[A, B, C, R]) Value() R {
	return s.fn.f(s.a.Value(), s.b.Value(), s.c.Value())
}

func (s *function3Stepper[A, B, C, R]) Equal(other Stepper[R]) bool {
	o, ok := other.(*function3Stepper[A, B, C, R])
	return ok && s.fn == o.fn && s.a.Equal(o.a) && s.b.Equal(o.b) && s.c.Equal(o.c)
}
