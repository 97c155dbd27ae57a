package primitives

// TopK fills indices with 0..len(indices)-1 and partially reorders it so
// that the first k entries index the k largest values of x, sorted
// descending by value. The remaining entries hold the other positions in
// unspecified order. Requires k <= len(indices), and len(indices) must
// equal the extent of x.
func TopK[I Index, T Numeric](indices []I, x []T, k int) {
	for i := range indices {
		indices[i] = I(i)
	}
	// Partial selection sort over the first k positions.
	for i := 0; i < k; i++ {
		best := i
		for j := i + 1; j < len(indices); j++ {
			if x[indices[j]] > x[indices[best]] {
				best = j
			}
		}
		indices[i], indices[best] = indices[best], indices[i]
	}
}
