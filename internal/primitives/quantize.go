package primitives

// Quantize maps x into the output representation through the affine map
// dst[i] = Out(x[i]*scale + shift). The final conversion follows Go's
// numeric conversion rules, so float to integer truncates toward zero;
// callers that need round-to-nearest must pre-round.
func Quantize[In, Out Numeric](dst []Out, x []In, scale, shift In) {
	UnaryTransform(dst, x, func(v In) Out {
		return Out(v*scale + shift)
	})
}

// Unquantize applies the inverse affine map dst[i] = (Out(x[i]) - shift) / scale.
// scale and shift are expressed in the output type. Undefined for
// scale == 0.
func Unquantize[In, Out Numeric](dst []Out, x []In, scale, shift Out) {
	UnaryTransform(dst, x, func(v In) Out {
		return (Out(v) - shift) / scale
	})
}
