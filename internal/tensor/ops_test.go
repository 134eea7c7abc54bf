package tensor

import (
	"testing"

	"github.com/neurox-ml/neurox/internal/errs"
	"github.com/neurox-ml/neurox/internal/parallel"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/mat"
)

func toDense(t *Tensor) *mat.Dense {
	data := make([]float64, t.Len())
	for i, v := range t.Data() {
		data[i] = float64(v)
	}
	return mat.NewDense(t.Rows(), t.Cols(), data)
}

func TestMatMul_Basic(t *testing.T) {
	a := MustFromSlice([]float32{1, 2, 3, 4}, 2, 2)
	b := MustFromSlice([]float32{5, 6, 7, 8}, 2, 2)

	c, err := a.MatMul(b)
	require.NoError(t, err)

	assert.Equal(t, MustFromSlice([]float32{19, 22, 43, 50}, 2, 2).Data(), c.Data())
}

func TestMatMul_ShapeMismatch(t *testing.T) {
	a := New(2, 3)
	b := New(2, 3)

	_, err := a.MatMul(b)
	assert.ErrorIs(t, err, errs.ErrShapeMismatch)
}

func TestMatMul_MatchesGonum(t *testing.T) {
	rng := NewRand(3)
	a := Random(7, 5, rng)
	b := Random(5, 4, rng)

	got, err := a.MatMul(b)
	require.NoError(t, err)

	var want mat.Dense
	want.Mul(toDense(a), toDense(b))

	rows, cols := want.Dims()
	require.Equal(t, rows, got.Rows())
	require.Equal(t, cols, got.Cols())
	for i := 0; i < rows; i++ {
		for j := 0; j < cols; j++ {
			assert.InDelta(t, want.At(i, j), float64(got.At(i, j)), 1e-5)
		}
	}
}

func TestMatMul_ParallelMatchesSequential(t *testing.T) {
	prev := ParallelConfig()
	t.Cleanup(func() { SetParallelConfig(prev) })

	rng := NewRand(11)
	a := Random(257, 9, rng)
	b := Random(9, 6, rng)

	SetParallelConfig(parallel.Sequential())
	seq, err := a.MatMul(b)
	require.NoError(t, err)

	SetParallelConfig(parallel.Config{Enabled: true, NumWorkers: 4, MinChunkSize: 16})
	par, err := a.MatMul(b)
	require.NoError(t, err)

	assert.True(t, seq.Equal(par), "row-parallel matmul must be bit-identical")
}

func TestTranspose(t *testing.T) {
	a := MustFromSlice([]float32{1, 2, 3, 4, 5, 6}, 2, 3)
	at := a.Transpose()

	rows, cols := at.Shape()
	assert.Equal(t, 3, rows)
	assert.Equal(t, 2, cols)
	assert.Equal(t, []float32{1, 4, 2, 5, 3, 6}, at.Data())
}

func TestTranspose_Involution(t *testing.T) {
	rng := NewRand(5)
	for _, dims := range [][2]int{{1, 1}, {1, 5}, {5, 1}, {3, 4}, {8, 2}, {0, 3}} {
		a := Random(dims[0], dims[1], rng)
		assert.True(t, a.Transpose().Transpose().Equal(a), "dims %v", dims)
	}
}

func TestMap_Pure(t *testing.T) {
	a := MustFromSlice([]float32{1, -2, 3}, 1, 3)
	b := a.Map(func(v float32) float32 { return v * 10 })

	assert.Equal(t, []float32{10, -20, 30}, b.Data())
	assert.Equal(t, []float32{1, -2, 3}, a.Data())
}

func TestAddRowBroadcast(t *testing.T) {
	x := MustFromSlice([]float32{1, 2, 3, 4, 5, 6}, 3, 2)
	bias := MustFromSlice([]float32{10, 20}, 1, 2)

	out, err := x.AddRowBroadcast(bias)
	require.NoError(t, err)
	assert.Equal(t, []float32{11, 22, 13, 24, 15, 26}, out.Data())
	assert.Equal(t, []float32{1, 2, 3, 4, 5, 6}, x.Data())
}

func TestAddRowBroadcast_ShapeMismatch(t *testing.T) {
	x := New(3, 2)

	_, err := x.AddRowBroadcast(New(1, 3))
	assert.ErrorIs(t, err, errs.ErrShapeMismatch, "wrong width")

	_, err = x.AddRowBroadcast(New(2, 2))
	assert.ErrorIs(t, err, errs.ErrShapeMismatch, "more than one row")
}

func TestElementwise(t *testing.T) {
	a := MustFromSlice([]float32{1, 2, 3, 4}, 2, 2)
	b := MustFromSlice([]float32{5, 6, 7, 8}, 2, 2)

	sum, err := a.Add(b)
	require.NoError(t, err)
	assert.Equal(t, []float32{6, 8, 10, 12}, sum.Data())

	diff, err := b.Sub(a)
	require.NoError(t, err)
	assert.Equal(t, []float32{4, 4, 4, 4}, diff.Data())

	prod, err := a.Mul(b)
	require.NoError(t, err)
	assert.Equal(t, []float32{5, 12, 21, 32}, prod.Data())
}

func TestElementwise_ShapeMismatch(t *testing.T) {
	a := New(2, 2)
	b := New(1, 4)

	_, err := a.Add(b)
	assert.ErrorIs(t, err, errs.ErrShapeMismatch)
	_, err = a.Sub(b)
	assert.ErrorIs(t, err, errs.ErrShapeMismatch)
	_, err = a.Mul(b)
	assert.ErrorIs(t, err, errs.ErrShapeMismatch)
}

func TestSumRows(t *testing.T) {
	a := MustFromSlice([]float32{1, 2, 3, 4, 5, 6}, 3, 2)
	s := a.SumRows()

	assert.Equal(t, 1, s.Rows())
	assert.Equal(t, []float32{9, 12}, s.Data())
}

func TestSliceRows(t *testing.T) {
	a := MustFromSlice([]float32{1, 2, 3, 4, 5, 6}, 3, 2)

	s, err := a.SliceRows(1, 3)
	require.NoError(t, err)
	assert.Equal(t, []float32{3, 4, 5, 6}, s.Data())

	_, err = a.SliceRows(2, 4)
	assert.ErrorIs(t, err, errs.ErrInvalidArgument)
	_, err = a.SliceRows(2, 1)
	assert.ErrorIs(t, err, errs.ErrInvalidArgument)
}

func TestArgMaxRows(t *testing.T) {
	a := MustFromSlice([]float32{0.1, 0.9, 0.7, 0.3, 0.5, 0.5}, 3, 2)
	assert.Equal(t, []int{1, 0, 0}, a.ArgMaxRows())
}

func TestScaleAndAllClose(t *testing.T) {
	a := MustFromSlice([]float32{1, 2}, 1, 2)
	b := a.Scale(0.5)

	assert.True(t, b.AllClose(MustFromSlice([]float32{0.5, 1.0001}, 1, 2), 1e-3))
	assert.False(t, b.AllClose(MustFromSlice([]float32{0.5, 1.1}, 1, 2), 1e-3))
	assert.False(t, b.AllClose(New(2, 1), 1))
}

func BenchmarkMatMul(b *testing.B) {
	rng := NewRand(1)
	x := Random(128, 256, rng)
	w := Random(256, 64, rng)

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = x.MatMul(w)
	}
}
