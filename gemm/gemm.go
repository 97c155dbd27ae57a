// Copyright 2026 The CTranslate2 Authors. All rights reserved.
// Use of this source code is governed by an MIT
// license that can be found in the LICENSE file.

package gemm

import (
	internalgemm "github.com/natsegal/CTranslate2/internal/gemm"
	"github.com/natsegal/CTranslate2/primitives"
)

// For returns the provider selected for the element pair: BLAS-backed
// for float32 and float64, the reference kernel otherwise.
//
// Example:
//
//	g := gemm.For[float32, float32]()
//	g(c, a, b, false, false, m, n, k, 1, 0)
func For[In, Out primitives.Numeric]() primitives.GemmFunc[In, Out] {
	return internalgemm.For[In, Out]()
}

// Reference returns the portable triple-loop provider for any element
// pair. It is the correctness baseline the optimized providers are
// tested against.
func Reference[In, Out primitives.Numeric]() primitives.GemmFunc[In, Out] {
	return internalgemm.Reference[In, Out]()
}
