// Copyright 2026 The CTranslate2 Authors. All rights reserved.
// Use of this source code is governed by an MIT
// license that can be found in the LICENSE file.

// Package gemm provides concrete general matrix multiply providers for
// the primitives.GemmFunc contract.
//
// # Overview
//
// The kernel library ships no GEMM algorithm of its own; callers pick
// a provider once, at configuration time, and pass it to the routines
// that need one:
//   - For selects the best available provider for an element pair
//     (BLAS-backed for float32 and float64, reference otherwise).
//   - Reference always returns the portable triple-loop kernel.
//
// # Basic Usage
//
//	g := gemm.For[float32, float32]()
//
//	// c = a @ b with a 2x3, b 3x2, all row-major
//	g(c, a, b, false, false, 2, 2, 3, 1, 0)
//
//	// batched: slice i of a, b, c at offsets i*m*k, i*k*n, i*m*n
//	primitives.GemmBatch(g, c, a, b, false, false, batch, m, n, k, 1, 0)
//
// # Element Pairs
//
// Any Numeric input/output pair instantiates the reference provider,
// including the quantized inference pair (int8 inputs accumulated into
// int32). The BLAS-backed providers cover exactly float32 and float64.
package gemm
