package primitives

import "github.com/x448/float16"

// Half-precision storage conversions. Model weights are stored as IEEE
// 754 binary16 bit patterns and widened to float32 before compute; no
// arithmetic is performed in half precision.

// HalfToFloat widens the binary16 bit patterns in src into float32.
func HalfToFloat(dst []float32, src []uint16) {
	for i, v := range src {
		dst[i] = float16.Frombits(v).Float32()
	}
}

// FloatToHalf narrows src into binary16 bit patterns, rounding to
// nearest even and saturating overflow to infinity.
func FloatToHalf(dst []uint16, src []float32) {
	for i, v := range src {
		dst[i] = float16.Fromfloat32(v).Bits()
	}
}
