package model_test

import (
	"errors"
	"testing"

	"github.com/neurox-ml/neurox/internal/errs"
	"github.com/neurox-ml/neurox/internal/model"
	"github.com/neurox-ml/neurox/internal/nn"
	"github.com/neurox-ml/neurox/internal/tensor"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew_InvalidArguments(t *testing.T) {
	tests := []struct {
		name   string
		widths []int
		act    nn.Activation
	}{
		{"no widths", nil, nn.ReLU},
		{"single width", []int{4}, nn.ReLU},
		{"zero width", []int{3, 0, 2}, nn.ReLU},
		{"negative width", []int{3, -4}, nn.ReLU},
		{"unknown activation", []int{3, 4}, nn.Activation(42)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m, err := model.New(tt.widths, tt.act)
			assert.ErrorIs(t, err, errs.ErrInvalidArgument)
			assert.Nil(t, m)
		})
	}
}

func TestModel_ForwardShape(t *testing.T) {
	m, err := model.New([]int{3, 4, 2}, nn.ReLU, model.WithSeed(1))
	require.NoError(t, err)

	out, err := m.Forward(tensor.MustFromSlice([]float32{0.5, -1, 2}, 1, 3))
	require.NoError(t, err)

	rows, cols := out.Shape()
	assert.Equal(t, 1, rows)
	assert.Equal(t, 2, cols)
}

func TestModel_ForwardShapeMismatch(t *testing.T) {
	m, err := model.New([]int{3, 4, 2}, nn.ReLU, model.WithSeed(1))
	require.NoError(t, err)

	_, err = m.Forward(tensor.New(2, 5))
	assert.ErrorIs(t, err, errs.ErrShapeMismatch)
}

func TestModel_Introspection(t *testing.T) {
	m, err := model.New([]int{2, 6, 2}, nn.Tanh, model.WithSeed(1))
	require.NoError(t, err)

	assert.Equal(t, 2, m.NumLayers())
	assert.Len(t, m.Layers(), 2)
	assert.Equal(t, 2, m.InputWidth())
	assert.Equal(t, 2, m.OutputWidth())
	assert.Equal(t, 32, m.NumParams())
	assert.Equal(t, []model.LayerShape{
		{In: 2, Out: 6, Activation: nn.Tanh, Params: 18},
		{In: 6, Out: 2, Activation: nn.Tanh, Params: 14},
	}, m.LayerShapes())

	for _, l := range m.Layers() {
		assert.Equal(t, nn.Tanh, l.Activation(), "every layer shares the activation")
	}
}

func TestModel_Summary(t *testing.T) {
	m, err := model.New([]int{2, 6, 2}, nn.ReLU, model.WithSeed(1))
	require.NoError(t, err)

	want := "Model Summary:\n" +
		" Layer 0: Dense 2 -> 6 (params 18)\n" +
		" Layer 1: Dense 6 -> 2 (params 14)\n" +
		"Total params: 32\n"
	assert.Equal(t, want, m.Summary())
}

type failingWriter struct{}

func (failingWriter) Write([]byte) (int, error) { return 0, errors.New("disk full") }

func TestModel_WriteSummaryError(t *testing.T) {
	m, err := model.New([]int{2, 2}, nn.Identity, model.WithSeed(1))
	require.NoError(t, err)

	assert.ErrorIs(t, m.WriteSummary(failingWriter{}), errs.ErrIO)
}

func TestModel_SeededConstructionIsDeterministic(t *testing.T) {
	a, err := model.New([]int{4, 8, 3}, nn.Sigmoid, model.WithSeed(99))
	require.NoError(t, err)
	b, err := model.New([]int{4, 8, 3}, nn.Sigmoid, model.WithRand(tensor.NewRand(99)))
	require.NoError(t, err)

	for i := range a.Layers() {
		assert.True(t, a.Layers()[i].Weights().Equal(b.Layers()[i].Weights()), "layer %d weights", i)
		assert.True(t, a.Layers()[i].Bias().Equal(b.Layers()[i].Bias()), "layer %d bias", i)
	}

	c, err := model.New([]int{4, 8, 3}, nn.Sigmoid, model.WithSeed(100))
	require.NoError(t, err)
	assert.False(t, a.Layers()[0].Weights().Equal(c.Layers()[0].Weights()))
}
