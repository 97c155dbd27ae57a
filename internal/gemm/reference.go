package gemm

import (
	"github.com/natsegal/CTranslate2/internal/primitives"
)

// referenceGemm computes c = alpha*op(a)@op(b) + beta*c with a plain
// triple loop. Operands are converted to the accumulator type before
// multiplication, so narrow integer inputs accumulate without overflow
// (int8 inputs with an int32 accumulator, the quantized inference pair).
func referenceGemm[In, Out primitives.Numeric](c []Out, a, b []In, transA, transB bool, m, n, k int, alpha In, beta Out) {
	// Row and column strides of op(a) and op(b) in their stored layouts.
	arow, acol := k, 1
	if transA {
		arow, acol = 1, m
	}
	brow, bcol := n, 1
	if transB {
		brow, bcol = 1, k
	}

	alphaOut := Out(alpha)
	for i := 0; i < m; i++ {
		for j := 0; j < n; j++ {
			var sum Out
			for l := 0; l < k; l++ {
				sum += Out(a[i*arow+l*acol]) * Out(b[l*brow+j*bcol])
			}
			if beta == 0 {
				c[i*n+j] = alphaOut * sum
			} else {
				c[i*n+j] = alphaOut*sum + beta*c[i*n+j]
			}
		}
	}
}
