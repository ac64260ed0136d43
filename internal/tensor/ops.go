package tensor

// Scalar returns a rank-0 array holding v. It broadcasts against any shape.
func Scalar[T any](v T) *Array[T] {
	a := Zeros[T](Shape{}, RowMajor)
	a.data[0] = v
	return a
}

// Map lazily applies f to every element of a.
//
// Example:
//
//	squares := tensor.Map(func(x float64) float64 { return x * x }, a)
func Map[A, R any](f func(A) R, a Expression[A]) *Function1[A, R] {
	return NewFunction1(f, a)
}

// Add performs lazy element-wise addition with broadcasting.
//
// Example:
//
//	a := tensor.Zeros[float64](Shape{3, 1}, RowMajor)
//	b := tensor.Zeros[float64](Shape{3, 5}, RowMajor)
//	c := tensor.Add[float64](a, b) // Shape: [3, 5] (broadcasted)
func Add[T Numeric](a, b Expression[T]) *Function2[T, T, T] {
	return NewFunction2(func(x, y T) T { return x + y }, a, b)
}

// Sub performs lazy element-wise subtraction with broadcasting.
func Sub[T Numeric](a, b Expression[T]) *Function2[T, T, T] {
	return NewFunction2(func(x, y T) T { return x - y }, a, b)
}

// Mul performs lazy element-wise multiplication with broadcasting.
func Mul[T Numeric](a, b Expression[T]) *Function2[T, T, T] {
	return NewFunction2(func(x, y T) T { return x * y }, a, b)
}

// Div performs lazy element-wise division with broadcasting.
// Integer division by zero panics when the element is evaluated.
func Div[T Numeric](a, b Expression[T]) *Function2[T, T, T] {
	return NewFunction2(func(x, y T) T { return x / y }, a, b)
}

// Neg lazily negates every element.
func Neg[T Numeric](a Expression[T]) *Function1[T, T] {
	return NewFunction1(func(x T) T { return -x }, a)
}

// Maximum returns the lazy element-wise maximum of its operands.
func Maximum[T Real](es ...Expression[T]) *FunctionN[T, T] {
	return NewFunctionN(func(xs ...T) T {
		var m T
		for i, x := range xs {
			if i == 0 || x > m {
				m = x
			}
		}
		return m
	}, es...)
}

// Minimum returns the lazy element-wise minimum of its operands.
func Minimum[T Real](es ...Expression[T]) *FunctionN[T, T] {
	return NewFunctionN(func(xs ...T) T {
		var m T
		for i, x := range xs {
			if i == 0 || x < m {
				m = x
			}
		}
		return m
	}, es...)
}

// Where selects x where cond is true and y elsewhere.
func Where[T any](cond Expression[bool], x, y Expression[T]) *Function3[bool, T, T, T] {
	return NewFunction3(func(c bool, a, b T) T {
		if c {
			return a
		}
		return b
	}, cond, x, y)
}

// Greater returns a lazy boolean mask of a > b.
func Greater[T Real](a, b Expression[T]) *Function2[T, T, bool] {
	return NewFunction2(func(x, y T) bool { return x > y }, a, b)
}

// Cast lazily converts every element to type R.
func Cast[R, T Real](a Expression[T]) *Function1[T, R] {
	return NewFunction1(func(x T) R { return R(x) }, a)
}
