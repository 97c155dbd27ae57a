package primitives

// Sum accumulates x left to right starting from zero. No compensated
// summation is performed for floating-point element types.
func Sum[T Numeric](x []T) T {
	var s T
	for _, v := range x {
		s += v
	}
	return s
}

// Mean returns Sum(x) divided by len(x) in the element type, so integer
// element types truncate. Undefined for empty x.
func Mean[T Numeric](x []T) T {
	return Sum(x) / T(len(x))
}

// MaxElement returns the index of the first occurrence of the maximum
// value of x, or len(x) when x is empty.
func MaxElement[T Numeric](x []T) int {
	if len(x) == 0 {
		return 0
	}
	best := 0
	for i := 1; i < len(x); i++ {
		if x[i] > x[best] {
			best = i
		}
	}
	return best
}

// Max returns the maximum value of x. Undefined for empty x.
func Max[T Numeric](x []T) T {
	return x[MaxElement(x)]
}
