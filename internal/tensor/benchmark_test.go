package tensor

import (
	"fmt"
	"testing"
)

func BenchmarkShapeOperations(b *testing.B) {
	shape1 := Shape{100, 100}
	shape2 := Shape{100, 1}

	b.Run("NumElements", func(b *testing.B) {
		for i := 0; i < b.N; i++ {
			_ = shape1.NumElements()
		}
	})

	b.Run("ComputeStrides", func(b *testing.B) {
		for i := 0; i < b.N; i++ {
			_, _ = shape1.ComputeStrides(RowMajor)
		}
	})

	b.Run("BroadcastShapes", func(b *testing.B) {
		for i := 0; i < b.N; i++ {
			_, _, _ = BroadcastShapes(shape1, shape2)
		}
	})
}

func BenchmarkFunctionEval(b *testing.B) {
	sizes := []int{100, 1000, 10000}

	for _, size := range sizes {
		a := Randn[float64](Shape{size}, RowMajor)
		c := Randn[float64](Shape{size}, RowMajor)

		b.Run(fmt.Sprintf("Add-%d", size), func(b *testing.B) {
			for i := 0; i < b.N; i++ {
				_, _ = Eval[float64](Add[float64](a, c), RowMajor)
			}
		})

		b.Run(fmt.Sprintf("Maximum3-%d", size), func(b *testing.B) {
			for i := 0; i < b.N; i++ {
				_, _ = Eval[float64](Maximum[float64](a, c, Scalar(0.0)), RowMajor)
			}
		})
	}
}

func BenchmarkBroadcastTraversal(b *testing.B) {
	col := Randn[float64](Shape{100, 1}, RowMajor)
	row := Randn[float64](Shape{100}, RowMajor)
	fn := Mul[float64](col, row)

	b.Run("XIterator", func(b *testing.B) {
		for i := 0; i < b.N; i++ {
			sum := 0.0
			for v := range Values[float64](fn) {
				sum += v
			}
			_ = sum
		}
	})

	b.Run("At", func(b *testing.B) {
		for i := 0; i < b.N; i++ {
			_ = fn.At(50, 50)
		}
	})
}

func BenchmarkFunctorView(b *testing.B) {
	c := Zeros[complex128](Shape{100, 100}, RowMajor)
	re := Real(c)
	src := Randn[float64](Shape{100}, RowMajor)

	b.Run("Assign", func(b *testing.B) {
		for i := 0; i < b.N; i++ {
			_ = re.Assign(src)
		}
	})

	b.Run("Fill", func(b *testing.B) {
		for i := 0; i < b.N; i++ {
			re.Fill(1)
		}
	})
}
