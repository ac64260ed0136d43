// Package main provides the lazytensor CLI.
package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/born-ml/lazytensor/tensor"
	"github.com/pkg/errors"
)

const version = "v0.1.0-dev"

func main() {
	if len(os.Args) > 1 {
		switch os.Args[1] {
		case "version":
			fmt.Printf("lazytensor %s\n", version)
			return
		case "demo":
			if err := demo(os.Args[2:]); err != nil {
				fmt.Fprintf(os.Stderr, "demo: %v\n", err)
				os.Exit(1)
			}
			return
		}
	}

	fmt.Println("lazytensor - lazy broadcasting array expressions for Go")
	fmt.Printf("Version: %s\n\n", version)
	fmt.Println("Commands:")
	fmt.Println("  version    Show version")
	fmt.Println("  demo       Evaluate a broadcast sum of a (3, 4) and a (4,) array")
}

func demo(args []string) error {
	fs := flag.NewFlagSet("demo", flag.ContinueOnError)
	layoutName := fs.String("layout", "row_major", "Layout of the materialized result (row_major or column_major)")
	if err := fs.Parse(args); err != nil {
		return err
	}

	layout := tensor.RowMajor
	switch *layoutName {
	case "row_major":
	case "column_major":
		layout = tensor.ColumnMajor
	default:
		return errors.Errorf("unknown layout %q", *layoutName)
	}

	a, err := tensor.FromSlice(tensor.Arange[float64](1, 13).Data(), tensor.Shape{3, 4}, tensor.RowMajor)
	if err != nil {
		return errors.Wrap(err, "build operand")
	}
	b := tensor.Arange[float64](1, 5)

	sum := tensor.Add[float64](a, b)
	fmt.Printf("a:   %v\n", a)
	fmt.Printf("b:   %v\n", b)
	fmt.Printf("sum: shape=%v layout=%v size=%d dtype=%v\n", sum.Shape(), sum.Layout(), sum.Size(), sum.DType())

	scaled := tensor.NewFunction2(func(x float64, n int32) float64 { return x * float64(n) }, a, tensor.Scalar[int32](2))
	fmt.Printf("scaled: dtype=%v operands promote to %v\n", scaled.DType(), scaled.OperandDType())
	fmt.Printf("sum.At(1, 2) = %v\n", sum.At(1, 2))

	out, err := tensor.Eval[float64](sum, layout)
	if err != nil {
		return errors.Wrap(err, "evaluate sum")
	}
	fmt.Printf("eval: %v\n", out)
	for i := 0; i < out.Shape()[0]; i++ {
		row := make([]float64, out.Shape()[1])
		for j := range row {
			row[j] = out.At(i, j)
		}
		fmt.Printf("  %v\n", row)
	}
	return nil
}
