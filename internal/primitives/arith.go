package primitives

// AddScalar adds a to every element of y in place.
func AddScalar[T Numeric](y []T, a T) {
	UnaryTransform(y, y, func(v T) T { return v + a })
}

// AddInplace accumulates x into y element-wise: y[i] += x[i].
func AddInplace[T Numeric](y, x []T) {
	BinaryTransform(y, x, y, func(v1, v2 T) T { return v1 + v2 })
}

// Add writes dst[i] = a[i] + b[i].
func Add[T Numeric](dst, a, b []T) {
	BinaryTransform(dst, a, b, func(v1, v2 T) T { return v1 + v2 })
}

// SubScalar subtracts a from every element of y in place, implemented as
// adding the negation. This is why the element type must be signed.
func SubScalar[T Signed](y []T, a T) {
	AddScalar(y, -a)
}

// SubInplace subtracts x from y element-wise: y[i] -= x[i].
func SubInplace[T Numeric](y, x []T) {
	BinaryTransform(y, y, x, func(v1, v2 T) T { return v1 - v2 })
}

// Sub writes dst[i] = a[i] - b[i].
func Sub[T Numeric](dst, a, b []T) {
	BinaryTransform(dst, a, b, func(v1, v2 T) T { return v1 - v2 })
}

// MulScalar multiplies every element of y by a in place.
func MulScalar[T Numeric](y []T, a T) {
	UnaryTransform(y, y, func(v T) T { return v * a })
}

// MulInplace multiplies y by x element-wise: y[i] *= x[i].
func MulInplace[T Numeric](y, x []T) {
	BinaryTransform(y, x, y, func(v1, v2 T) T { return v1 * v2 })
}

// Mul writes dst[i] = a[i] * b[i].
func Mul[T Numeric](dst, a, b []T) {
	BinaryTransform(dst, a, b, func(v1, v2 T) T { return v1 * v2 })
}

// Inv writes the element-wise reciprocal dst[i] = 1 / x[i]. Division by
// zero follows the element type's semantics: Inf or NaN for floats, a
// runtime panic for integers.
func Inv[T Numeric](dst, x []T) {
	UnaryTransform(dst, x, func(v T) T { return 1 / v })
}
