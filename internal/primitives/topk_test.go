package primitives

import (
	"testing"
)

// isPermutation reports whether indices holds each of 0..len-1 exactly once.
func isPermutation(indices []int32) bool {
	seen := make([]bool, len(indices))
	for _, idx := range indices {
		if idx < 0 || int(idx) >= len(indices) || seen[idx] {
			return false
		}
		seen[idx] = true
	}
	return true
}

func TestTopK(t *testing.T) {
	tests := []struct {
		name string
		x    []float32
		k    int
		want []int32 // expected indices[0..k)
	}{
		{
			name: "k smaller than size",
			x:    []float32{0.1, 0.9, 0.4, 0.7, 0.2},
			k:    3,
			want: []int32{1, 3, 2},
		},
		{
			name: "k equals size",
			x:    []float32{3, 1, 2},
			k:    3,
			want: []int32{0, 2, 1},
		},
		{
			name: "k of one",
			x:    []float32{-5, -1, -3},
			k:    1,
			want: []int32{1},
		},
		{
			name: "k of zero leaves iota",
			x:    []float32{2, 1},
			k:    0,
			want: []int32{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			indices := make([]int32, len(tt.x))
			TopK(indices, tt.x, tt.k)

			for i := 0; i < tt.k; i++ {
				if indices[i] != tt.want[i] {
					t.Errorf("indices[%d] = %d, expected %d (full: %v)", i, indices[i], tt.want[i], indices)
				}
			}
			if !isPermutation(indices) {
				t.Errorf("indices %v is not a permutation of 0..%d", indices, len(tt.x)-1)
			}
		})
	}
}

// The first k values must come out descending, and everything after them
// must be no larger than the k-th value.
func TestTopK_PartitionProperty(t *testing.T) {
	x := []float32{4, 9, 1, 7, 3, 8, 2, 6, 0, 5}
	k := 4
	indices := make([]int64, len(x))
	TopK(indices, x, k)

	for i := 1; i < k; i++ {
		if x[indices[i]] > x[indices[i-1]] {
			t.Errorf("values not descending at %d: %f > %f", i, x[indices[i]], x[indices[i-1]])
		}
	}
	kth := x[indices[k-1]]
	for i := k; i < len(indices); i++ {
		if x[indices[i]] > kth {
			t.Errorf("remainder value %f exceeds k-th value %f", x[indices[i]], kth)
		}
	}
}

func TestTopK_Ties(t *testing.T) {
	x := []float32{5, 5, 5, 1}
	indices := make([]int32, len(x))
	TopK(indices, x, 3)

	for i := 0; i < 3; i++ {
		if x[indices[i]] != 5 {
			t.Errorf("indices[%d] = %d points at %f, expected a 5", i, indices[i], x[indices[i]])
		}
	}
	if !isPermutation(indices) {
		t.Errorf("indices %v is not a permutation", indices)
	}
}

func TestTopK_IntValues(t *testing.T) {
	x := []int32{10, -20, 30, 0}
	indices := make([]int, len(x))
	TopK(indices, x, 2)

	if indices[0] != 2 || indices[1] != 0 {
		t.Errorf("indices[0..2) = %v, expected [2 0]", indices[:2])
	}
}
