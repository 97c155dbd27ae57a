// Package primitives implements the portable generic CPU kernels of the
// runtime: element-wise transforms and arithmetic, reductions, top-k
// selection, affine quantization, activations, fixed-rank transposition,
// half-precision storage conversion, and the batched GEMM driver.
//
// Every kernel operates on flat, contiguous, caller-owned slices in
// row-major order. Kernels never allocate or retain state, and they do
// not validate their inputs: matching lengths, bijective permutations,
// k <= len(indices) and non-zero divisors are caller obligations.
// Violating a contract produces garbage values or an out-of-bounds panic
// from the runtime, not a reported error. Validation belongs to the layer
// above, which knows tensor shapes are well formed before dispatch.
//
// All kernels are synchronous and single-threaded. Calling them
// concurrently is safe as long as no two calls share an output slice.
package primitives
