// Copyright 2026 The CTranslate2 Authors. All rights reserved.
// Use of this source code is governed by an MIT
// license that can be found in the LICENSE file.

// Package primitives provides generic CPU compute kernels over flat buffers.
//
// # Overview
//
// Every kernel operates on flat, contiguous, caller-owned slices in
// row-major order. The package provides:
//   - Element-wise transforms and arithmetic (Add, Sub, Mul, Inv, ...)
//   - Reductions (Sum, Mean, Max, MaxElement) and top-k selection
//   - Affine quantization between element types (Quantize, Unquantize)
//   - Activations and transcendentals (ReLU, Exp, Sin, Cos, Tanh, Pow)
//   - Fixed-rank transposition (Transpose2D, Transpose3D, Transpose4D)
//   - The batched GEMM driver (GemmBatch) over the GemmFunc contract
//   - Half-precision storage conversion (HalfToFloat, FloatToHalf)
//
// # Basic Usage
//
//	import (
//	    "github.com/natsegal/CTranslate2/gemm"
//	    "github.com/natsegal/CTranslate2/primitives"
//	)
//
//	func main() {
//	    logits := make([]float32, batch*vocab)
//	    g := gemm.For[float32, float32]()
//	    g(logits, hidden, proj, false, true, batch, vocab, dim, 1, 0)
//
//	    primitives.AddInplace(logits, bias)
//	    indices := make([]int32, vocab)
//	    primitives.TopK(indices, logits[:vocab], beamSize)
//	}
//
// # Contract Model
//
// Kernels never allocate, and they do not validate their inputs.
// Matching buffer lengths, bijective permutations and non-zero divisors
// are the caller's obligation; an out-of-contract call produces garbage
// values or an out-of-bounds panic, not a reported error. Every kernel
// compiles down to a plain loop over the buffers.
//
// # Element Types
//
// Kernels are generic over type-set constraints:
//   - Numeric: the ten fixed-width integer and float types
//   - Signed: types with unary negation (SubScalar)
//   - Float: float32 and float64 (transcendentals)
//   - Index: int, int32, int64 (position buffers for TopK)
//
// Transforms and quantization take separate input and output element
// types, so widening pipelines such as int8 accumulation into int32 or
// float32 need no intermediate copies.
//
// # Concurrency
//
// Kernels hold no state. Concurrent calls are safe as long as their
// output buffers do not overlap.
package primitives
