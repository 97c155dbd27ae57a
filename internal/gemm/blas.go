package gemm

import (
	"gonum.org/v1/gonum/blas"
	"gonum.org/v1/gonum/blas/blas32"
	"gonum.org/v1/gonum/blas/blas64"

	"github.com/natsegal/CTranslate2/internal/primitives"
)

// The BLAS-backed providers wrap the caller's row-major slices in
// General headers describing the stored layout and let the transpose
// flags do the rest. Strides stay at least one so empty matrices pass
// the BLAS stride checks; k == 0 is resolved before the call, since
// gonum's slice length checks reject the naturally empty a and b.

// scaleByBeta finishes a product whose accumulation term is an empty
// sum, leaving c = beta * c. beta == 0 overwrites, so c may hold
// garbage.
func scaleByBeta[T primitives.Float](c []T, beta T) {
	if beta == 1 {
		return
	}
	if beta == 0 {
		for i := range c {
			c[i] = 0
		}
		return
	}
	for i := range c {
		c[i] *= beta
	}
}

func blasGemm32(c []float32, a, b []float32, transA, transB bool, m, n, k int, alpha float32, beta float32) {
	if k == 0 {
		scaleByBeta(c[:m*n], beta)
		return
	}
	ta := blas.NoTrans
	am := blas32.General{Rows: m, Cols: k, Stride: max(1, k), Data: a}
	if transA {
		ta = blas.Trans
		am = blas32.General{Rows: k, Cols: m, Stride: max(1, m), Data: a}
	}
	tb := blas.NoTrans
	bm := blas32.General{Rows: k, Cols: n, Stride: max(1, n), Data: b}
	if transB {
		tb = blas.Trans
		bm = blas32.General{Rows: n, Cols: k, Stride: max(1, k), Data: b}
	}
	cm := blas32.General{Rows: m, Cols: n, Stride: max(1, n), Data: c}
	blas32.Gemm(ta, tb, alpha, am, bm, beta, cm)
}

func blasGemm64(c []float64, a, b []float64, transA, transB bool, m, n, k int, alpha float64, beta float64) {
	if k == 0 {
		scaleByBeta(c[:m*n], beta)
		return
	}
	ta := blas.NoTrans
	am := blas64.General{Rows: m, Cols: k, Stride: max(1, k), Data: a}
	if transA {
		ta = blas.Trans
		am = blas64.General{Rows: k, Cols: m, Stride: max(1, m), Data: a}
	}
	tb := blas.NoTrans
	bm := blas64.General{Rows: k, Cols: n, Stride: max(1, n), Data: b}
	if transB {
		tb = blas.Trans
		bm = blas64.General{Rows: n, Cols: k, Stride: max(1, k), Data: b}
	}
	cm := blas64.General{Rows: m, Cols: n, Stride: max(1, n), Data: c}
	blas64.Gemm(ta, tb, alpha, am, bm, beta, cm)
}
