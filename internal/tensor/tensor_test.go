package tensor

import (
	"testing"

	"github.com/neurox-ml/neurox/internal/errs"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew_ZeroFilled(t *testing.T) {
	tt := New(2, 3)

	rows, cols := tt.Shape()
	assert.Equal(t, 2, rows)
	assert.Equal(t, 3, cols)
	assert.Equal(t, 6, tt.Len())
	for _, v := range tt.Data() {
		assert.Zero(t, v)
	}
}

func TestNew_NegativeDimensionsPanic(t *testing.T) {
	assert.Panics(t, func() { New(-1, 2) })
	assert.Panics(t, func() { Zeros(2, -1) })
}

func TestFromSlice(t *testing.T) {
	src := []float32{1, 2, 3, 4, 5, 6}
	tt, err := FromSlice(src, 2, 3)
	require.NoError(t, err)

	assert.Equal(t, float32(1), tt.At(0, 0))
	assert.Equal(t, float32(3), tt.At(0, 2))
	assert.Equal(t, float32(4), tt.At(1, 0))
	assert.Equal(t, float32(6), tt.At(1, 2))

	// The slice is copied.
	src[0] = 100
	assert.Equal(t, float32(1), tt.At(0, 0))
}

func TestFromSlice_LengthMismatch(t *testing.T) {
	_, err := FromSlice([]float32{1, 2, 3}, 2, 2)
	require.ErrorIs(t, err, errs.ErrShapeMismatch)

	assert.Panics(t, func() { MustFromSlice([]float32{1, 2, 3}, 2, 2) })
}

func TestAtSet_OutOfRangePanics(t *testing.T) {
	tt := New(2, 2)

	assert.Panics(t, func() { tt.At(2, 0) })
	assert.Panics(t, func() { tt.At(0, 2) })
	assert.Panics(t, func() { tt.At(-1, 0) })
	assert.Panics(t, func() { tt.Set(0, 5, 1) })
}

func TestSet_WritesInPlace(t *testing.T) {
	tt := New(2, 2)
	tt.Set(1, 0, 7.5)

	assert.Equal(t, float32(7.5), tt.At(1, 0))
	assert.Equal(t, float32(7.5), tt.Data()[2])
}

func TestClone_NoAliasing(t *testing.T) {
	a := MustFromSlice([]float32{1, 2}, 1, 2)
	b := a.Clone()
	b.Set(0, 0, 9)

	assert.Equal(t, float32(1), a.At(0, 0))
	assert.True(t, a.SameShape(b))
}

func TestRow(t *testing.T) {
	tt := MustFromSlice([]float32{1, 2, 3, 4, 5, 6}, 3, 2)

	assert.Equal(t, []float32{3, 4}, tt.Row(1))
	assert.Panics(t, func() { tt.Row(3) })
}

func TestRandom_RangeAndDeterminism(t *testing.T) {
	a := Random(20, 30, NewRand(7))
	b := Random(20, 30, NewRand(7))
	c := Random(20, 30, NewRand(8))

	for _, v := range a.Data() {
		assert.GreaterOrEqual(t, v, float32(-1))
		assert.Less(t, v, float32(1))
	}
	assert.True(t, a.Equal(b), "same seed must give the same tensor")
	assert.False(t, a.Equal(c), "different seeds should differ")
}

func TestRandom_NilSource(t *testing.T) {
	tt := Random(4, 4, nil)
	assert.Equal(t, 16, tt.Len())
}

func TestFull(t *testing.T) {
	tt := Full(2, 2, 0.5)
	for _, v := range tt.Data() {
		assert.Equal(t, float32(0.5), v)
	}
}

func TestString_Truncates(t *testing.T) {
	small := MustFromSlice([]float32{0, 1, 1, 0}, 2, 2)
	assert.Equal(t, "Tensor(2, 2) [[0.0000, 1.0000], [1.0000, 0.0000]]", small.String())

	big := New(4, 7)
	s := big.String()
	assert.Contains(t, s, "Tensor(4, 7)")
	assert.Contains(t, s, ", ...]")
}
