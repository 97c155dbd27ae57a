package primitives

// Transpose2D writes the transpose of the row-major dims[0] x dims[1]
// matrix src into dst, which receives it as dims[1] x dims[0].
func Transpose2D[T Numeric](dst, src []T, dims []int) {
	for i0 := 0; i0 < dims[0]; i0++ {
		for i1 := 0; i1 < dims[1]; i1++ {
			dst[i1*dims[0]+i0] = src[i0*dims[1]+i1]
		}
	}
}

// Transpose3D permutes the axes of the row-major tensor src with shape
// dims so that output axis j takes source axis perm[j], writing the
// result into dst. perm must be a bijection over {0, 1, 2}.
//
// The loop walks source indices and scatters into dst: permStride maps
// each source axis to its stride contribution in the destination, via
// the inverse permutation.
func Transpose3D[T Numeric](dst, src []T, dims, perm []int) {
	var permInd [3]int
	for i := 0; i < 3; i++ {
		permInd[perm[i]] = i
	}
	srcStride := [3]int{dims[1] * dims[2], dims[2], 1}
	dstStride := [3]int{dims[perm[1]] * dims[perm[2]], dims[perm[2]], 1}
	permStride := [3]int{dstStride[permInd[0]], dstStride[permInd[1]], dstStride[permInd[2]]}

	for i0 := 0; i0 < dims[0]; i0++ {
		for i1 := 0; i1 < dims[1]; i1++ {
			for i2 := 0; i2 < dims[2]; i2++ {
				srcIdx := i0*srcStride[0] + i1*srcStride[1] + i2*srcStride[2]
				dstIdx := i0*permStride[0] + i1*permStride[1] + i2*permStride[2]
				dst[dstIdx] = src[srcIdx]
			}
		}
	}
}

// Transpose4D is Transpose3D for rank-4 tensors. perm must be a
// bijection over {0, 1, 2, 3}.
func Transpose4D[T Numeric](dst, src []T, dims, perm []int) {
	var permInd [4]int
	for i := 0; i < 4; i++ {
		permInd[perm[i]] = i
	}
	srcStride := [4]int{dims[1] * dims[2] * dims[3], dims[2] * dims[3], dims[3], 1}
	dstStride := [4]int{
		dims[perm[1]] * dims[perm[2]] * dims[perm[3]],
		dims[perm[2]] * dims[perm[3]],
		dims[perm[3]],
		1,
	}
	permStride := [4]int{
		dstStride[permInd[0]], dstStride[permInd[1]],
		dstStride[permInd[2]], dstStride[permInd[3]],
	}

	for i0 := 0; i0 < dims[0]; i0++ {
		for i1 := 0; i1 < dims[1]; i1++ {
			for i2 := 0; i2 < dims[2]; i2++ {
				for i3 := 0; i3 < dims[3]; i3++ {
					srcIdx := i0*srcStride[0] + i1*srcStride[1] + i2*srcStride[2] + i3*srcStride[3]
					dstIdx := i0*permStride[0] + i1*permStride[1] + i2*permStride[2] + i3*permStride[3]
					dst[dstIdx] = src[srcIdx]
				}
			}
		}
	}
}
