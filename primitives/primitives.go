// Copyright 2026 The CTranslate2 Authors. All rights reserved.
// Use of this source code is governed by an MIT
// license that can be found in the LICENSE file.

// Package primitives provides the public API for the generic CPU compute kernels.
package primitives

import (
	"github.com/natsegal/CTranslate2/internal/primitives"
)

// Type constraints for the kernel element types.

// Numeric covers the element types the buffer kernels operate on.
type Numeric = primitives.Numeric

// Signed covers the element types that support unary negation.
type Signed = primitives.Signed

// Float covers the native floating-point element types.
type Float = primitives.Float

// Index covers the integer types usable as position buffers.
type Index = primitives.Index

// GemmFunc is the contract a general matrix multiply provider satisfies:
// c = alpha * op(a) @ op(b) + beta * c over row-major buffers. See the
// gemm package for the available providers.
type GemmFunc[In, Out Numeric] = primitives.GemmFunc[In, Out]

// Elementwise transform engine

// UnaryTransform writes dst[i] = f(x[i]); dst may alias x.
func UnaryTransform[T, U Numeric](dst []U, x []T, f func(T) U) {
	primitives.UnaryTransform(dst, x, f)
}

// BinaryTransform writes dst[i] = f(a[i], b[i]); dst may alias a or b.
func BinaryTransform[T, U Numeric](dst []U, a, b []T, f func(T, T) U) {
	primitives.BinaryTransform(dst, a, b, f)
}

// Fill / copy

// Fill sets every element of x to a.
func Fill[T Numeric](x []T, a T) {
	primitives.Fill(x, a)
}

// Copy copies len(x) elements from x into dst. The slices must either
// be identical or not overlap.
func Copy[T Numeric](dst, x []T) {
	primitives.Copy(dst, x)
}

// Reductions

// Sum accumulates x left to right starting from zero.
func Sum[T Numeric](x []T) T {
	return primitives.Sum(x)
}

// Mean returns Sum(x) / len(x) in the element type. Undefined for
// empty x.
func Mean[T Numeric](x []T) T {
	return primitives.Mean(x)
}

// MaxElement returns the index of the first occurrence of the maximum
// value of x.
func MaxElement[T Numeric](x []T) int {
	return primitives.MaxElement(x)
}

// Max returns the maximum value of x. Undefined for empty x.
func Max[T Numeric](x []T) T {
	return primitives.Max(x)
}

// Top-K selection

// TopK fills indices with 0..len(indices)-1 and partially reorders it
// so the first k entries index the k largest values of x in descending
// value order. len(indices) must equal the extent of x, and k must not
// exceed it.
//
// Example:
//
//	x := []float32{0.1, 0.9, 0.4, 0.7}
//	indices := make([]int32, len(x))
//	primitives.TopK(indices, x, 2)
//	// indices[0] == 1, indices[1] == 3
func TopK[I Index, T Numeric](indices []I, x []T, k int) {
	primitives.TopK(indices, x, k)
}

// Arithmetic

// AddScalar adds a to every element of y in place.
func AddScalar[T Numeric](y []T, a T) {
	primitives.AddScalar(y, a)
}

// AddInplace accumulates x into y element-wise: y[i] += x[i].
func AddInplace[T Numeric](y, x []T) {
	primitives.AddInplace(y, x)
}

// Add writes dst[i] = a[i] + b[i].
func Add[T Numeric](dst, a, b []T) {
	primitives.Add(dst, a, b)
}

// SubScalar subtracts a from every element of y in place. The element
// type must be signed.
func SubScalar[T Signed](y []T, a T) {
	primitives.SubScalar(y, a)
}

// SubInplace subtracts x from y element-wise: y[i] -= x[i].
func SubInplace[T Numeric](y, x []T) {
	primitives.SubInplace(y, x)
}

// Sub writes dst[i] = a[i] - b[i].
func Sub[T Numeric](dst, a, b []T) {
	primitives.Sub(dst, a, b)
}

// MulScalar multiplies every element of y by a in place.
func MulScalar[T Numeric](y []T, a T) {
	primitives.MulScalar(y, a)
}

// MulInplace multiplies y by x element-wise: y[i] *= x[i].
func MulInplace[T Numeric](y, x []T) {
	primitives.MulInplace(y, x)
}

// Mul writes dst[i] = a[i] * b[i].
func Mul[T Numeric](dst, a, b []T) {
	primitives.Mul(dst, a, b)
}

// Inv writes the element-wise reciprocal dst[i] = 1 / x[i].
func Inv[T Numeric](dst, x []T) {
	primitives.Inv(dst, x)
}

// Quantization

// Quantize maps x through the affine map dst[i] = Out(x[i]*scale + shift).
// Float-to-integer conversion truncates toward zero; callers that need
// round-to-nearest must pre-round.
//
// Example:
//
//	weights := []float32{0.5, -0.25, 1.0}
//	quantized := make([]int8, len(weights))
//	primitives.Quantize(quantized, weights, 100, 0)
//	// quantized == [50, -25, 100]
func Quantize[In, Out Numeric](dst []Out, x []In, scale, shift In) {
	primitives.Quantize(dst, x, scale, shift)
}

// Unquantize applies the inverse affine map
// dst[i] = (Out(x[i]) - shift) / scale. Undefined for scale == 0.
func Unquantize[In, Out Numeric](dst []Out, x []In, scale, shift Out) {
	primitives.Unquantize(dst, x, scale, shift)
}

// Activations and transcendentals

// ReLU writes dst[i] = max(x[i], 0).
func ReLU[T Numeric](dst, x []T) {
	primitives.ReLU(dst, x)
}

// ReLUInplace applies ReLU to x in place.
func ReLUInplace[T Numeric](x []T) {
	primitives.ReLUInplace(x)
}

// Exp writes the element-wise exponential.
func Exp[T Float](dst, x []T) {
	primitives.Exp(dst, x)
}

// Sin writes the element-wise sine.
func Sin[T Float](dst, x []T) {
	primitives.Sin(dst, x)
}

// Cos writes the element-wise cosine.
func Cos[T Float](dst, x []T) {
	primitives.Cos(dst, x)
}

// Tanh writes the element-wise hyperbolic tangent.
func Tanh[T Float](dst, x []T) {
	primitives.Tanh(dst, x)
}

// Pow writes dst[i] = x[i]**power. The computation runs through
// single-precision intermediates for every element type, so float64
// results carry float32 rounding.
func Pow[T Float](dst, x []T, power T) {
	primitives.Pow(dst, x, power)
}

// Permutation

// Transpose2D writes the transpose of the row-major dims[0] x dims[1]
// matrix src into dst.
func Transpose2D[T Numeric](dst, src []T, dims []int) {
	primitives.Transpose2D(dst, src, dims)
}

// Transpose3D permutes the axes of the row-major tensor src with shape
// dims so that output axis j takes source axis perm[j]. perm must be a
// bijection over {0, 1, 2}.
//
// Example:
//
//	// [batch, time, depth] -> [time, batch, depth]
//	primitives.Transpose3D(dst, src, []int{2, 3, 4}, []int{1, 0, 2})
func Transpose3D[T Numeric](dst, src []T, dims, perm []int) {
	primitives.Transpose3D(dst, src, dims, perm)
}

// Transpose4D is Transpose3D for rank-4 tensors.
func Transpose4D[T Numeric](dst, src []T, dims, perm []int) {
	primitives.Transpose4D(dst, src, dims, perm)
}

// GEMM

// GemmBatch applies g independently to batch slices of a, b and c.
// Slice i begins at offset i*m*k in a, i*k*n in b and i*m*n in c.
//
// Example:
//
//	g := gemm.For[float32, float32]()
//	primitives.GemmBatch(g, c, a, b, false, false, batch, m, n, k, 1, 0)
func GemmBatch[In, Out Numeric](g GemmFunc[In, Out], c []Out, a, b []In, transA, transB bool, batch, m, n, k int, alpha In, beta Out) {
	primitives.GemmBatch(g, c, a, b, transA, transB, batch, m, n, k, alpha, beta)
}

// Half-precision storage

// HalfToFloat widens IEEE 754 binary16 bit patterns into float32.
func HalfToFloat(dst []float32, src []uint16) {
	primitives.HalfToFloat(dst, src)
}

// FloatToHalf narrows float32 values into binary16 bit patterns,
// rounding to nearest even.
func FloatToHalf(dst []uint16, src []float32) {
	primitives.FloatToHalf(dst, src)
}
