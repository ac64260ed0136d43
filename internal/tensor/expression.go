package tensor

// Shaped is the element-type independent part of the expression contract.
// Composite nodes hold their operands through it for everything that does
// not touch element values.
type Shaped interface {
	// Shape returns the extents of the expression.
	Shape() Shape
	// Dimension returns the number of axes.
	Dimension() int
	// Size returns the number of elements.
	Size() int
	// Layout returns the storage order tag.
	Layout() Layout
	// Contiguous reports whether elements are stored densely in Layout order.
	Contiguous() bool
	// DType returns the runtime element type.
	DType() DataType

	// BroadcastShape merges the expression's shape requirement into shape in
	// place and reports whether the broadcast is trivial.
	BroadcastShape(shape Shape) (bool, error)
	// IsTrivialBroadcast reports whether the expression can be read with the
	// given strides without index remapping.
	IsTrivialBroadcast(strides Strides) bool
}

// Expression is the capability set every node satisfies: dense arrays,
// function nodes, functor views and broadcasts. Composite nodes accept
// any Expression as an operand, so compositions nest arbitrarily.
type Expression[T any] interface {
	Shaped

	// At returns the element at the given position. At least Dimension()
	// indices are required; leading excess indices are ignored.
	At(indices ...int) T
	// Index is the single-index form of At.
	Index(i int) T
	// Element is At with the indices held in a slice.
	Element(index []int) T

	// Begin and End delimit the flat, storage-order traversal.
	Begin() Iterator[T]
	End() Iterator[T]

	// StepperBegin and StepperEnd return cursors over the expression
	// broadcast to shape.
	StepperBegin(shape Shape) Stepper[T]
	StepperEnd(shape Shape) Stepper[T]
}

// Lvalue is an expression whose elements live in storage and can be
// written through. Its iterators and steppers implement RefIterator and
// RefStepper.
type Lvalue[T any] interface {
	Expression[T]

	Ref(indices ...int) *T
	RefIndex(i int) *T
	RefElement(index []int) *T
}

// Cursor is the movement half of the stepper protocol.
//
// Axis numbers refer to the traversal shape, not to the expression's own
// shape: a cursor over an expression of lower rank ignores moves on the
// leading axes it does not have.
type Cursor interface {
	Step(dim, n int)
	StepBack(dim, n int)
	Reset(dim int)
	ToEnd()
}

// Stepper is a per-traversal cursor over an expression.
type Stepper[T any] interface {
	Cursor
	Value() T
	Equal(other Stepper[T]) bool
}

// RefStepper is a stepper over an Lvalue.
type RefStepper[T any] interface {
	Stepper[T]
	Ref() *T
}

// Iterator is a flat, storage-order cursor.
type Iterator[T any] interface {
	Next()
	Value() T
	Equal(other Iterator[T]) bool
}

// RefIterator is a flat iterator over an Lvalue.
type RefIterator[T any] interface {
	Iterator[T]
	Ref() *T
}

// RandomAccessIterator supports jumping by an offset and measuring the
// distance between two positions.
type RandomAccessIterator[T any] interface {
	Iterator[T]
	Advance(n int)
	Distance(other Iterator[T]) int
}

// Cloner is implemented by expressions that can produce a private copy of
// themselves. Nodes clone their operands recursively; arrays copy their
// buffer; observed closures are shared, not copied.
type Cloner[T any] interface {
	Clone() Expression[T]
}

// cloneExpr returns a private copy of e when e supports it, e otherwise.
func cloneExpr[T any](e Expression[T]) Expression[T] {
	if c, ok := e.(Cloner[T]); ok {
		return c.Clone()
	}
	return e
}

// cloneLvalue is cloneExpr for writable operands. A clone that is no longer
// writable is discarded in favour of e.
func cloneLvalue[T any](e Lvalue[T]) Lvalue[T] {
	if c, ok := e.(Cloner[T]); ok {
		if l, ok := c.Clone().(Lvalue[T]); ok {
			return l
		}
	}
	return e
}

// Ownership tells how a composite node holds an operand.
type Ownership int

// Ownership kinds.
const (
	// Owned operands are private copies taken when the closure is built.
	Owned Ownership = iota
	// Observed operands are longer-lived expressions held by reference.
	// Keeping them alive is the caller's job.
	Observed
)

// String returns a human-readable name for the ownership kind.
func (o Ownership) String() string {
	if o == Observed {
		return "observed"
	}
	return "owned"
}

// Verify that a closure can stand wherever a writable operand is expected.
var _ Lvalue[float64] = Closure[float64]{}

// Closure wraps an operand together with the way it is held. It is itself
// an expression, so it can be passed to any node constructor, and it is
// writable whenever the wrapped operand is: Ref and friends panic otherwise.
//
// Example:
//
//	sum := tensor.Add[float64](tensor.Observe[float64](a), tensor.Own[float64](b))
//	a.Set(1, 0) // visible through sum
//	b.Set(1, 0) // not visible: sum holds its own copy of b
type Closure[T any] struct {
	Expression[T]
	ownership Ownership
}

// Own holds a private copy of e, taken now. Later writes to e are not
// visible through the closure. Observed closures nested inside e stay
// shared, so wrapping large arrays in Observe avoids copying their buffers.
func Own[T any](e Expression[T]) Closure[T] {
	return Closure[T]{Expression: cloneExpr(e), ownership: Owned}
}

// Observe holds e by reference. The closure never copies e nor extends its
// lifetime beyond what the caller guarantees.
func Observe[T any](e Expression[T]) Closure[T] {
	return Closure[T]{Expression: e, ownership: Observed}
}

// Ownership returns how the operand is held.
func (c Closure[T]) Ownership() Ownership {
	return c.ownership
}

// Operand returns the wrapped expression.
func (c Closure[T]) Operand() Expression[T] {
	return c.Expression
}

// Clone copies an owned closure together with its operand. An observed
// closure is returned as is.
func (c Closure[T]) Clone() Expression[T] {
	if c.ownership == Observed {
		return c
	}
	return Closure[T]{Expression: cloneExpr(c.Expression), ownership: Owned}
}

// Writable reports whether the wrapped operand is an Lvalue.
func (c Closure[T]) Writable() bool {
	_, ok := c.Expression.(Lvalue[T])
	return ok
}

// Ref returns a pointer into the wrapped operand.
func (c Closure[T]) Ref(indices ...int) *T {
	return c.lvalue("Ref").Ref(indices...)
}

// RefIndex is the single-index form of Ref.
func (c Closure[T]) RefIndex(i int) *T {
	return c.lvalue("RefIndex").RefIndex(i)
}

// RefElement returns a pointer into the wrapped operand at index.
func (c Closure[T]) RefElement(index []int) *T {
	return c.lvalue("RefElement").RefElement(index)
}

func (c Closure[T]) lvalue(op string) Lvalue[T] {
	l, ok := c.Expression.(Lvalue[T])
	if !ok {
		panic(op + ": closure operand is not writable")
	}
	return l
}
