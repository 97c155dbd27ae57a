package primitives

import "math"

// ReLU writes dst[i] = max(x[i], 0).
func ReLU[T Numeric](dst, x []T) {
	UnaryTransform(dst, x, func(v T) T {
		if v > 0 {
			return v
		}
		return 0
	})
}

// ReLUInplace applies ReLU to x in place.
func ReLUInplace[T Numeric](x []T) {
	ReLU(x, x)
}

// Exp writes the element-wise exponential dst[i] = exp(x[i]).
func Exp[T Float](dst, x []T) {
	UnaryTransform(dst, x, func(v T) T {
		return T(math.Exp(float64(v)))
	})
}

// Sin writes the element-wise sine dst[i] = sin(x[i]).
func Sin[T Float](dst, x []T) {
	UnaryTransform(dst, x, func(v T) T {
		return T(math.Sin(float64(v)))
	})
}

// Cos writes the element-wise cosine dst[i] = cos(x[i]).
func Cos[T Float](dst, x []T) {
	UnaryTransform(dst, x, func(v T) T {
		return T(math.Cos(float64(v)))
	})
}

// Tanh writes the element-wise hyperbolic tangent dst[i] = tanh(x[i]).
func Tanh[T Float](dst, x []T) {
	UnaryTransform(dst, x, func(v T) T {
		return T(math.Tanh(float64(v)))
	})
}

// Pow writes dst[i] = x[i]**power, computed through single-precision
// intermediates for every element type. The float32 rounding of inputs
// and result is intentional observable behavior; callers needing
// full-precision exponentiation must not use this kernel.
func Pow[T Float](dst, x []T, power T) {
	p := float32(power)
	UnaryTransform(dst, x, func(v T) T {
		return T(float32(math.Pow(float64(float32(v)), float64(p))))
	})
}
