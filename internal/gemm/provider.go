// Package gemm supplies concrete providers for the primitives.GemmFunc
// contract: a portable reference kernel for every numeric element pair
// and BLAS-backed kernels for float32 and float64.
package gemm

import (
	"github.com/natsegal/CTranslate2/internal/primitives"
)

// For returns the provider selected for the element pair: the BLAS
// kernel when both types are float32 or both are float64, the reference
// kernel otherwise. Selection happens once, at configuration time; the
// returned function is then a plain kernel with no dispatch cost.
func For[In, Out primitives.Numeric]() primitives.GemmFunc[In, Out] {
	var in In
	var out Out
	switch any(in).(type) {
	case float32:
		if _, ok := any(out).(float32); ok {
			return any(primitives.GemmFunc[float32, float32](blasGemm32)).(primitives.GemmFunc[In, Out])
		}
	case float64:
		if _, ok := any(out).(float64); ok {
			return any(primitives.GemmFunc[float64, float64](blasGemm64)).(primitives.GemmFunc[In, Out])
		}
	}
	return referenceGemm[In, Out]
}

// Reference returns the portable triple-loop provider regardless of the
// element pair. It is the baseline the optimized providers are checked
// against.
func Reference[In, Out primitives.Numeric]() primitives.GemmFunc[In, Out] {
	return referenceGemm[In, Out]
}
