package tensor

// Layout is the linear-memory traversal order of an expression.
type Layout int

// Supported layouts.
const (
	// Dynamic means the order is not fixed: strides are supplied at runtime
	// or the operands of a composite node disagree.
	Dynamic Layout = iota
	RowMajor
	ColumnMajor
)

// String returns a human-readable name for the layout.
func (l Layout) String() string {
	switch l {
	case RowMajor:
		return "row_major"
	case ColumnMajor:
		return "column_major"
	case Dynamic:
		return "dynamic"
	default:
		return "unknown"
	}
}

// ComputeLayout merges operand layouts pairwise. Two identical static
// layouts merge to that layout; any mismatch, or any dynamic operand,
// degrades the result to Dynamic. With no operands the result is RowMajor,
// which is how a scalar is stored.
func ComputeLayout(layouts ...Layout) Layout {
	if len(layouts) == 0 {
		return RowMajor
	}
	result := layouts[0]
	for _, l := range layouts[1:] {
		result = mergeLayout(result, l)
	}
	return result
}

func mergeLayout(a, b Layout) Layout {
	if a == b {
		return a
	}
	return Dynamic
}
