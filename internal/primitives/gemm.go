package primitives

// GemmFunc is the contract a general matrix multiply provider satisfies:
//
//	c = alpha * op(a) @ op(b) + beta * c
//
// where op transposes its operand when the corresponding flag is set.
// op(a) is m x k, op(b) is k x n and c is m x n, all row-major and
// contiguous (a is stored k x m when transA is set, b is stored n x k
// when transB is set). Providers must not read c when beta is zero, so a
// freshly allocated output never leaks its previous contents into the
// result.
//
// No provider is implemented in this package; see the gemm package for
// the reference and BLAS-backed ones.
type GemmFunc[In, Out Numeric] func(c []Out, a, b []In, transA, transB bool, m, n, k int, alpha In, beta Out)

// GemmBatch applies g independently to batch slices of a, b and c.
// Slice i begins at offset i*m*k in a, i*k*n in b and i*m*n in c; every
// batch element is contiguous, and no state crosses batch boundaries.
func GemmBatch[In, Out Numeric](g GemmFunc[In, Out], c []Out, a, b []In, transA, transB bool, batch, m, n, k int, alpha In, beta Out) {
	for i := 0; i < batch; i++ {
		ai := a[i*m*k : (i+1)*m*k]
		bi := b[i*k*n : (i+1)*k*n]
		ci := c[i*m*n : (i+1)*m*n]
		g(ci, ai, bi, transA, transB, m, n, k, alpha, beta)
	}
}
