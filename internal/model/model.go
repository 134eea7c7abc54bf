// Package model assembles Dense layers into a sequential feed-forward network
// and trains it with softmax cross-entropy.
package model

import (
	"log/slog"
	"time"

	"github.com/neurox-ml/neurox/internal/errs"
	"github.com/neurox-ml/neurox/internal/nn"
	"github.com/neurox-ml/neurox/internal/tensor"
)

// Model is an ordered stack of Dense layers where layer i's output width
// equals layer i+1's input width.
type Model struct {
	layers []*nn.Dense
	logger *slog.Logger
}

// LayerShape describes one layer for introspection.
type LayerShape struct {
	In         int
	Out        int
	Activation nn.Activation
	Params     int
}

// New builds a model from a width sequence such as [784, 128, 10].
//
// Every layer, the output layer included, uses act. At least two widths are
// required and all must be positive.
func New(widths []int, act nn.Activation, opts ...Option) (*Model, error) {
	if len(widths) < 2 {
		return nil, errs.InvalidArgument("model.New: need at least 2 widths, got %d", len(widths))
	}
	for i, w := range widths {
		if w <= 0 {
			return nil, errs.InvalidArgument("model.New: width %d is %d, must be positive", i, w)
		}
	}
	if !act.Valid() {
		return nil, errs.InvalidArgument("model.New: unknown activation %d", int(act))
	}

	o := gatherOptions(opts)
	rng := o.rng
	if rng == nil {
		rng = tensor.NewRand(uint64(time.Now().UnixNano())) //nolint:gosec // G115: sign is irrelevant for a seed
	}

	layers := make([]*nn.Dense, 0, len(widths)-1)
	for i := 0; i+1 < len(widths); i++ {
		layers = append(layers, nn.NewDense(widths[i], widths[i+1], act, rng))
	}

	return &Model{layers: layers, logger: o.logger}, nil
}

// Forward runs x through every layer and returns the last layer's activated
// output. Softmax is not applied.
func (m *Model) Forward(x *tensor.Tensor) (*tensor.Tensor, error) {
	out := x
	for i, l := range m.layers {
		var err error
		out, err = l.Forward(out)
		if err != nil {
			return nil, errs.Wrap(err, "model.Forward: layer %d", i)
		}
	}
	return out, nil
}

// backward propagates grad through the layers in reverse order.
func (m *Model) backward(grad *tensor.Tensor) error {
	for i := len(m.layers) - 1; i >= 0; i-- {
		var err error
		grad, err = m.layers[i].Backward(grad)
		if err != nil {
			return errs.Wrap(err, "model.backward: layer %d", i)
		}
	}
	return nil
}

// NumLayers returns the number of Dense layers.
func (m *Model) NumLayers() int {
	return len(m.layers)
}

// Layers returns the layer stack. The slice is shared with the model.
func (m *Model) Layers() []*nn.Dense {
	return m.layers
}

// InputWidth is the feature count the first layer expects.
func (m *Model) InputWidth() int {
	return m.layers[0].InFeatures()
}

// OutputWidth is the width of the last layer.
func (m *Model) OutputWidth() int {
	return m.layers[len(m.layers)-1].OutFeatures()
}

// LayerShapes returns one entry per layer in order.
func (m *Model) LayerShapes() []LayerShape {
	shapes := make([]LayerShape, len(m.layers))
	for i, l := range m.layers {
		shapes[i] = LayerShape{
			In:         l.InFeatures(),
			Out:        l.OutFeatures(),
			Activation: l.Activation(),
			Params:     l.NumParams(),
		}
	}
	return shapes
}

// NumParams returns the total number of trainable parameters.
func (m *Model) NumParams() int {
	total := 0
	for _, l := range m.layers {
		total += l.NumParams()
	}
	return total
}
