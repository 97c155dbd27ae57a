package primitives

// UnaryTransform writes dst[i] = f(x[i]) for every position of x.
// dst and x may be the same slice; f must not depend on positions other
// than the one it is applied to.
func UnaryTransform[T, U Numeric](dst []U, x []T, f func(T) U) {
	for i, v := range x {
		dst[i] = f(v)
	}
}

// BinaryTransform writes dst[i] = f(a[i], b[i]) for every position of a.
// dst may alias a or b under the same per-position restriction as
// UnaryTransform.
func BinaryTransform[T, U Numeric](dst []U, a, b []T, f func(T, T) U) {
	for i, v := range a {
		dst[i] = f(v, b[i])
	}
}

// Fill sets every element of x to a.
func Fill[T Numeric](x []T, a T) {
	for i := range x {
		x[i] = a
	}
}

// Copy copies len(x) elements from x into dst. The slices must either be
// identical or not overlap.
func Copy[T Numeric](dst, x []T) {
	copy(dst, x)
}
