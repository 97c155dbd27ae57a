package gemm

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/natsegal/CTranslate2/internal/primitives"
)

func TestFor_Float32(t *testing.T) {
	g := For[float32, float32]()
	require.NotNil(t, g)

	a := []float32{1, 2, 3, 4, 5, 6}
	b := []float32{1, 2, 3, 4, 5, 6}
	got := make([]float32, 4)
	want := make([]float32, 4)

	g(got, a, b, false, true, 2, 2, 3, 1, 0)
	referenceGemm(want, a, b, false, true, 2, 2, 3, 1, 0)

	for i := range want {
		assert.InDelta(t, want[i], got[i], 1e-5)
	}
}

func TestFor_Float64(t *testing.T) {
	g := For[float64, float64]()
	require.NotNil(t, g)

	a := []float64{1, 2, 3, 4}
	b := []float64{5, 6, 7, 8}
	got := make([]float64, 4)
	want := make([]float64, 4)

	g(got, a, b, false, false, 2, 2, 2, 1, 0)
	referenceGemm(want, a, b, false, false, 2, 2, 2, 1, 0)

	for i := range want {
		assert.InDelta(t, want[i], got[i], 1e-12)
	}
}

// The quantized inference pair has no BLAS kernel and must fall back to
// the reference provider.
func TestFor_QuantizedPair(t *testing.T) {
	g := For[int8, int32]()
	require.NotNil(t, g)

	a := []int8{1, -2, 3, 4, 5, -6}
	b := []int8{7, 8, 9, 10, 11, 12}
	got := make([]int32, 4)

	g(got, a, b, false, false, 2, 2, 3, 1, 0)

	want := []int32{
		1*7 - 2*9 + 3*11, 1*8 - 2*10 + 3*12,
		4*7 + 5*9 - 6*11, 4*8 + 5*10 - 6*12,
	}
	assert.Equal(t, want, got)
}

// Derived float types are not the BLAS types and must also fall back.
func TestFor_DerivedFloat(t *testing.T) {
	type celsius float32

	g := For[celsius, celsius]()
	require.NotNil(t, g)

	a := []celsius{1, 2}
	b := []celsius{3, 4}
	got := make([]celsius, 1)

	g(got, a, b, false, false, 1, 1, 2, 1, 0)
	assert.Equal(t, celsius(11), got[0])
}

func TestFor_WorksWithBatchDriver(t *testing.T) {
	g := For[float32, float32]()

	m, n, k := 2, 2, 2
	batch := 2
	a := []float32{1, 2, 3, 4 /* batch 1 */, 5, 6, 7, 8}
	b := []float32{1, 0, 0, 1 /* identity */, 1, 0, 0, 1}
	c := make([]float32, batch*m*n)

	primitives.GemmBatch(g, c, a, b, false, false, batch, m, n, k, 1, 0)

	assert.Equal(t, []float32{1, 2, 3, 4, 5, 6, 7, 8}, c)
}

func TestReference_AllPairs(t *testing.T) {
	g := Reference[float32, float32]()
	require.NotNil(t, g)

	a := []float32{2, 0, 0, 2}
	b := []float32{1, 2, 3, 4}
	got := make([]float32, 4)
	g(got, a, b, false, false, 2, 2, 2, 1, 0)

	assert.Equal(t, []float32{2, 4, 6, 8}, got)
}
