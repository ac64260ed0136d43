package tensor

import "unsafe"

// Functor maps a pointer to an element of type T to a pointer to a value of
// type U, usually a part of the same element. Implementations are expected
// to be stateless or cheap to copy.
type Functor[T, U any] interface {
	Apply(p *T) *U
}

// FunctorFunc adapts a plain function to the Functor interface. Its zero
// value is nil, so it must be passed with NewFunctorViewWith.
type FunctorFunc[T, U any] func(*T) *U

// Apply calls f(p).
func (f FunctorFunc[T, U]) Apply(p *T) *U { return f(p) }

// Identity returns the element itself.
type Identity[T any] struct{}

// Apply returns p.
func (Identity[T]) Apply(p *T) *T { return p }

// RealFunctor addresses the real part of a complex128.
type RealFunctor struct{}

// Apply returns a pointer to the real part of *p.
func (RealFunctor) Apply(p *complex128) *float64 {
	return &(*[2]float64)(unsafe.Pointer(p))[0] //nolint:gosec // complex128 is laid out as [2]float64
}

// ImagFunctor addresses the imaginary part of a complex128.
type ImagFunctor struct{}

// Apply returns a pointer to the imaginary part of *p.
func (ImagFunctor) Apply(p *complex128) *float64 {
	return &(*[2]float64)(unsafe.Pointer(p))[1] //nolint:gosec // complex128 is laid out as [2]float64
}

// Real64Functor addresses the real part of a complex64.
type Real64Functor struct{}

// Apply returns a pointer to the real part of *p.
func (Real64Functor) Apply(p *complex64) *float32 {
	return &(*[2]float32)(unsafe.Pointer(p))[0] //nolint:gosec // complex64 is laid out as [2]float32
}

// Imag64Functor addresses the imaginary part of a complex64.
type Imag64Functor struct{}

// Apply returns a pointer to the imaginary part of *p.
func (Imag64Functor) Apply(p *complex64) *float32 {
	return &(*[2]float32)(unsafe.Pointer(p))[1] //nolint:gosec // complex64 is laid out as [2]float32
}

// Verify that FunctorView is a writable expression.
var (
	_ Lvalue[float64] = (*FunctorView[complex128, float64, RealFunctor])(nil)
	_ Cloner[float64] = (*FunctorView[complex128, float64, RealFunctor])(nil)
)

// FunctorView re-interprets the elements of a writable expression through
// a functor. It has the shape, layout and size of its operand and never
// broadcasts on its own. Writes through the view land in the operand's
// storage.
//
// Example:
//
//	c := tensor.Zeros[complex128](Shape{2, 2}, RowMajor)
//	re := tensor.Real(c)
//	*re.Ref(0, 1) = 3 // c.At(0, 1) == 3+0i
type FunctorView[T, U any, F Functor[T, U]] struct {
	e Lvalue[T]
	f F
}

// NewFunctorView builds a view using the zero value of F as the functor.
func NewFunctorView[T, U any, F Functor[T, U]](e Lvalue[T]) *FunctorView[T, U, F] {
	return &FunctorView[T, U, F]{e: e}
}

// NewFunctorViewWith builds a view using the functor f.
func NewFunctorViewWith[T, U any, F Functor[T, U]](f F, e Lvalue[T]) *FunctorView[T, U, F] {
	return &FunctorView[T, U, F]{e: e, f: f}
}

// Real returns a writable view of the real parts of a complex128 expression.
func Real(e Lvalue[complex128]) *FunctorView[complex128, float64, RealFunctor] {
	return NewFunctorView[complex128, float64, RealFunctor](e)
}

// Imag returns a writable view of the imaginary parts of a complex128
// expression.
func Imag(e Lvalue[complex128]) *FunctorView[complex128, float64, ImagFunctor] {
	return NewFunctorView[complex128, float64, ImagFunctor](e)
}

// Operand returns the wrapped expression.
func (v *FunctorView[T, U, F]) Operand() Lvalue[T] { return v.e }

// Clone returns a view with the same functor over a copy of the operand.
func (v *FunctorView[T, U, F]) Clone() Expression[U] {
	return &FunctorView[T, U, F]{e: cloneLvalue(v.e), f: v.f}
}

// Shape returns the operand's shape.
func (v *FunctorView[T, U, F]) Shape() Shape { return v.e.Shape() }

// Dimension returns the operand's rank.
func (v *FunctorView[T, U, F]) Dimension() int { return v.e.Dimension() }

// Size returns the operand's size.
func (v *FunctorView[T, U, F]) Size() int { return v.e.Size() }

// Layout returns the operand's layout.
func (v *FunctorView[T, U, F]) Layout() Layout { return v.e.Layout() }

// Contiguous is always false: consecutive values seen through the functor
// are a whole operand element apart in memory.
func (v *FunctorView[T, U, F]) Contiguous() bool { return false }

// DType returns the element type seen through the functor.
func (v *FunctorView[T, U, F]) DType() DataType { return DataTypeOf[U]() }

// BroadcastShape delegates to the operand.
func (v *FunctorView[T, U, F]) BroadcastShape(shape Shape) (bool, error) {
	return v.e.BroadcastShape(shape)
}

// IsTrivialBroadcast delegates to the operand.
func (v *FunctorView[T, U, F]) IsTrivialBroadcast(strides Strides) bool {
	return v.e.IsTrivialBroadcast(strides)
}

// At returns the functor's view of the operand element at indices.
func (v *FunctorView[T, U, F]) At(indices ...int) U { return *v.Ref(indices...) }

// Index is the single-index form of At.
func (v *FunctorView[T, U, F]) Index(i int) U { return *v.RefIndex(i) }

// Element returns the functor's view of the operand element at index.
func (v *FunctorView[T, U, F]) Element(index []int) U { return *v.RefElement(index) }

// Ref returns a pointer into the operand element at indices.
func (v *FunctorView[T, U, F]) Ref(indices ...int) *U {
	return v.f.Apply(v.e.Ref(indices...))
}

// RefIndex is the single-index form of Ref.
func (v *FunctorView[T, U, F]) RefIndex(i int) *U {
	return v.f.Apply(v.e.RefIndex(i))
}

// RefElement returns a pointer into the operand element at index.
func (v *FunctorView[T, U, F]) RefElement(index []int) *U {
	return v.f.Apply(v.e.RefElement(index))
}

// Set writes value through the view at indices.
func (v *FunctorView[T, U, F]) Set(value U, indices ...int) {
	*v.Ref(indices...) = value
}

// Assign copies src into the view. When the shapes differ src is broadcast
// to the view's shape first.
func (v *FunctorView[T, U, F]) Assign(src Expression[U]) error {
	return Assign[U](v, src)
}

// Fill writes value into every element of the view.
func (v *FunctorView[T, U, F]) Fill(value U) {
	Fill[U](v, value)
}

// Begin wraps the operand's flat iterator.
func (v *FunctorView[T, U, F]) Begin() Iterator[U] {
	return newFunctorIterator[T, U](v.e.Begin(), &v.f)
}

// End wraps the operand's flat end iterator.
func (v *FunctorView[T, U, F]) End() Iterator[U] {
	return newFunctorIterator[T, U](v.e.End(), &v.f)
}

// StepperBegin wraps the operand's stepper.
func (v *FunctorView[T, U, F]) StepperBegin(shape Shape) Stepper[U] {
	return newFunctorStepper[T, U](v.e.StepperBegin(shape), &v.f)
}

// StepperEnd wraps the operand's end stepper.
func (v *FunctorView[T, U, F]) StepperEnd(shape Shape) Stepper[U] {
	return newFunctorStepper[T, U](v.e.StepperEnd(shape), &v.f)
}

// XBegin returns a broadcast iterator on the first element.
func (v *FunctorView[T, U, F]) XBegin() *BroadcastIterator[U] { return XBegin[U](v) }

// XEnd returns a broadcast iterator past the last element.
func (v *FunctorView[T, U, F]) XEnd() *BroadcastIterator[U] { return XEnd[U](v) }

// functorIterator pairs an operand iterator with the view's functor.
// Equality ignores the functor.
type functorIterator[T, U any, F Functor[T, U]] struct {
	it RefIterator[T]
	f  *F
}

func newFunctorIterator[T, U any, F Functor[T, U]](it Iterator[T], f *F) *functorIterator[T, U, F] {
	ri, ok := it.(RefIterator[T])
	if !ok {
		panic("FunctorView: operand iterator is not writable")
	}
	return &functorIterator[T, U, F]{it: ri, f: f}
}

func (it *functorIterator[T, U, F]) Next()    { it.it.Next() }
func (it *functorIterator[T, U, F]) Value() U { return *it.Ref() }
func (it *functorIterator[T, U, F]) Ref() *U  { return (*it.f).Apply(it.it.Ref()) }

func (it *functorIterator[T, U, F]) Equal(other Iterator[U]) bool {
	o, ok := other.(*functorIterator[T, U, F])
	return ok && it.it.Equal(o.it)
}

// Advance moves the iterator by n positions. Panics if the operand's
// iterator is not random access.
func (it *functorIterator[T, U, F]) Advance(n int) {
	it.randomAccess().Advance(n)
}

// Distance returns the number of positions from other to it.
func (it *functorIterator[T, U, F]) Distance(other Iterator[U]) int {
	o, ok := other.(*functorIterator[T, U, F])
	if !ok {
		panic("Distance: iterators belong to different views")
	}
	return it.randomAccess().Distance(o.it)
}

func (it *functorIterator[T, U, F]) randomAccess() RandomAccessIterator[T] {
	ra, ok := it.it.(RandomAccessIterator[T])
	if !ok {
		panic("FunctorView: operand iterator is not random access")
	}
	return ra
}

// functorStepper pairs an operand stepper with the view's functor.
type functorStepper[T, U any, F Functor[T, U]] struct {
	st RefStepper[T]
	f  *F
}

func newFunctorStepper[T, U any, F Functor[T, U]](st Stepper[T], f *F) *functorStepper[T, U, F] {
	rs, ok := st.(RefStepper[T])
	if !ok {
		panic("FunctorView: operand stepper is not writable")
	}
	return &functorStepper[T, U, F]{st: rs, f: f}
}

func (s *functorStepper[T, U, F]) Step(dim, n int)     { s.st.Step(dim, n) }
func (s *functorStepper[T, U, F]) StepBack(dim, n int) { s.st.StepBack(dim, n) }
func (s *functorStepper[T, U, F]) Reset(dim int)       { s.st.Reset(dim) }
func (s *functorStepper[T, U, F]) ToEnd()              { s.st.ToEnd() }
func (s *functorStepper[T, U, F]) Value() U            { return *s.Ref() }
func (s *functorStepper[T, U, F]) Ref() *U             { return (*s.f).Apply(s.st.Ref()) }

func (s *functorStepper[T, U, F]) Equal(other Stepper[U]) bool {
	o, ok := other.(*functorStepper[T, U, F])
	return ok && s.st.Equal(o.st)
}
