// Package tensor provides the lazy expression engine of lazytensor: dense
// arrays, element-wise function nodes, functor views and the stepper
// protocol that drives broadcast traversal.
package tensor

import "golang.org/x/exp/constraints"

// Numeric is a constraint for element types supporting arithmetic.
type Numeric interface {
	constraints.Integer | constraints.Float | constraints.Complex
}

// Real is a constraint for ordered numeric element types.
type Real interface {
	constraints.Integer | constraints.Float
}

// DataType represents runtime type information for expression elements.
type DataType int

// Supported data types, ordered by promotion rank.
const (
	Unknown DataType = iota
	Bool
	Uint8
	Int32
	Int64
	Float32
	Float64
	Complex64
	Complex128
)

// Size returns the byte size of the data type.
func (dt DataType) Size() int {
	switch dt {
	case Uint8, Bool:
		return 1
	case Float32, Int32:
		return 4
	case Float64, Int64, Complex64:
		return 8
	case Complex128:
		return 16
	default:
		return 0
	}
}

// String returns a human-readable name for the data type.
func (dt DataType) String() string {
	switch dt {
	case Bool:
		return "bool"
	case Uint8:
		return "uint8"
	case Int32:
		return "int32"
	case Int64:
		return "int64"
	case Float32:
		return "float32"
	case Float64:
		return "float64"
	case Complex64:
		return "complex64"
	case Complex128:
		return "complex128"
	default:
		return "unknown"
	}
}

// DataTypeOf infers the DataType of the element type T.
// Types outside the supported set report Unknown.
func DataTypeOf[T any]() DataType {
	var dummy T
	switch any(dummy).(type) {
	case bool:
		return Bool
	case uint8:
		return Uint8
	case int32:
		return Int32
	case int64, int:
		return Int64
	case float32:
		return Float32
	case float64:
		return Float64
	case complex64:
		return Complex64
	case complex128:
		return Complex128
	default:
		return Unknown
	}
}

// CommonDataType returns the type every operand promotes to when combined
// element-wise. Integers meeting float32 promote to float64 and complex64
// meeting a 64-bit operand promotes to complex128. Unknown is absorbing.
// Function nodes report it for their operands through OperandDType.
func CommonDataType(types ...DataType) DataType {
	if len(types) == 0 {
		return Unknown
	}
	result := types[0]
	for _, t := range types[1:] {
		result = promote(result, t)
	}
	return result
}

func promote(a, b DataType) DataType {
	if a == Unknown || b == Unknown {
		return Unknown
	}
	if a > b {
		a, b = b, a
	}
	switch {
	case a == b:
		return a
	case b == Float32 && (a == Int32 || a == Int64):
		return Float64
	case b == Complex64 && (a == Int32 || a == Int64 || a == Float64):
		return Complex128
	default:
		return b
	}
}
