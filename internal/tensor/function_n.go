package tensor

// Verify that every function node is an expression.
var (
	_ Expression[float64] = (*Function1[float64, float64])(nil)
	_ Expression[float64] = (*Function2[float64, int64, float64])(nil)
	_ Expression[float64] = (*Function3[bool, float64, float64, float64])(nil)
	_ Expression[float64] = (*FunctionN[float64, float64])(nil)

	_ Cloner[float64] = (*Function1[float64, float64])(nil)
	_ Cloner[float64] = (*Function2[float64, int64, float64])(nil)
	_ Cloner[float64] = (*Function3[bool, float64, float64, float64])(nil)
	_ Cloner[float64] = (*FunctionN[float64, float64])(nil)
)

// FunctionN lazily applies a variadic function to any number of operands
// sharing one element type. With no operands the node has shape [1] and its
// single element is f().
type FunctionN[T, R any] struct {
	funcBase
	f  func(...T) R
	es []Expression[T]
}

// NewFunctionN builds a function node over es. Nothing is evaluated.
func NewFunctionN[T, R any](f func(...T) R, es ...Expression[T]) *FunctionN[T, R] {
	operands := make([]Shaped, len(es))
	for i, e := range es {
		operands[i] = e
	}
	return &FunctionN[T, R]{funcBase: funcBase{operands: operands}, f: f, es: es}
}

// Arity returns the number of operands.
func (fn *FunctionN[T, R]) Arity() int {
	return len(fn.es)
}

// DType returns the element type of the result.
func (fn *FunctionN[T, R]) DType() DataType { return DataTypeOf[R]() }

// At applies the function to the operand elements at indices.
func (fn *FunctionN[T, R]) At(indices ...int) R {
	args := make([]T, len(fn.es))
	for i, e := range fn.es {
		args[i] = e.At(indices...)
	}
	return fn.f(args...)
}

// Clone returns a node applying the same function to copies of the operands.
func (fn *FunctionN[T, R]) Clone() Expression[R] {
	es := make([]Expression[T], len(fn.es))
	for i, e := range fn.es {
		es[i] = cloneExpr(e)
	}
	return NewFunctionN(fn.f, es...)
}

// Index is the single-index form of At.
func (fn *FunctionN[T, R]) Index(i int) R { return fn.At(i) }

// Element applies the function to the operand elements at index.
func (fn *FunctionN[T, R]) Element(index []int) R {
	args := make([]T, len(fn.es))
	for i, e := range fn.es {
		args[i] = e.Element(index)
	}
	return fn.f(args...)
}

// Begin returns a flat iterator over the operands' storage.
func (fn *FunctionN[T, R]) Begin() Iterator[R] {
	return fn.buildIterator(func(e Expression[T]) Iterator[T] { return e.Begin() })
}

// End returns the flat end iterator.
func (fn *FunctionN[T, R]) End() Iterator[R] {
	return fn.buildIterator(func(e Expression[T]) Iterator[T] { return e.End() })
}

// StepperBegin returns a stepper at the first element of shape.
func (fn *FunctionN[T, R]) StepperBegin(shape Shape) Stepper[R] {
	return fn.buildStepper(func(e Expression[T]) Stepper[T] { return e.StepperBegin(shape) })
}

// StepperEnd returns a stepper past the last element of shape.
func (fn *FunctionN[T, R]) StepperEnd(shape Shape) Stepper[R] {
	s := fn.buildStepper(func(e Expression[T]) Stepper[T] { return e.StepperEnd(shape) })
	s.atEnd = true
	return s
}

// XBegin returns a broadcast iterator on the first element.
func (fn *FunctionN[T, R]) XBegin() *BroadcastIterator[R] { return XBegin[R](fn) }

// XEnd returns a broadcast iterator past the last element.
func (fn *FunctionN[T, R]) XEnd() *BroadcastIterator[R] { return XEnd[R](fn) }

func (fn *FunctionN[T, R]) buildIterator(sub func(Expression[T]) Iterator[T]) *functionNIterator[T, R] {
	its := make([]Iterator[T], len(fn.es))
	for i, e := range fn.es {
		its[i] = sub(e)
	}
	return &functionNIterator[T, R]{fn: fn, its: its, args: make([]T, len(its))}
}

func (fn *FunctionN[T, R]) buildStepper(sub func(Expression[T]) Stepper[T]) *functionNStepper[T, R] {
	sts := make([]Stepper[T], len(fn.es))
	for i, e := range fn.es {
		sts[i] = sub(e)
	}
	return &functionNStepper[T, R]{fn: fn, sts: sts, args: make([]T, len(sts))}
}

type functionNIterator[T, R any] struct {
	fn   *FunctionN[T, R]
	its  []Iterator[T]
	args []T // scratch for dereference
}

func (it *functionNIterator[T, R]) Next() {
	for _, c := range it.its {
		c.Next()
	}
}

func (it *functionNIterator[T, R]) Value() R {
	for i, c := range it.its {
		it.args[i] = c.Value()
	}
	return it.fn.f(it.args...)
}

func (it *functionNIterator[T, R]) Equal(other Iterator[R]) bool {
	o, ok := other.(*functionNIterator[T, R])
	if !ok || it.fn != o.fn {
		return false
	}
	for i := range it.its {
		if !it.its[i].Equal(o.its[i]) {
			return false
		}
	}
	return true
}

// functionNStepper also tracks whether it has been moved to the end, so
// that a node without operands still has distinct begin and end steppers.
type functionNStepper[T, R any] struct {
	fn    *FunctionN[T, R]
	sts   []Stepper[T]
	args  []T // scratch for dereference
	atEnd bool
}

func (s *functionNStepper[T, R]) Step(dim, n int) {
	for _, c := range s.sts {
		c.Step(dim, n)
	}
}

func (s *functionNStepper[T, R]) StepBack(dim, n int) {
	for _, c := range s.sts {
		c.StepBack(dim, n)
	}
	s.atEnd = false
}

func (s *functionNStepper[T, R]) Reset(dim int) {
	for _, c := range s.sts {
		c.Reset(dim)
	}
}

func (s *functionNStepper[T, R]) ToEnd() {
	for _, c := range s.sts {
		c.ToEnd()
	}
	s.atEnd = true
}

func (s *functionNStepper[T, R]) Value() R {
	for i, c := range s.sts {
		s.args[i] = c.Value()
	}
	return s.fn.f(s.args...)
}

func (s *functionNStepper[T, R]) Equal(other Stepper[R]) bool {
	o, ok := other.(*functionNStepper[T, R])
	if !ok || s.fn != o.fn || s.atEnd != o.atEnd {
		return false
	}
	for i := range s.sts {
		if !s.sts[i].Equal(o.sts[i]) {
			return false
		}
	}
	return true
}
