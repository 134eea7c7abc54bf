// Package optim implements parameter update rules for stacks of Dense layers.
//
// This package provides:
//   - Optimizer interface: Base interface for all optimizers
//   - SGD: plain gradient descent, with optional momentum
//   - Adam: Adaptive Moment Estimation
//
// Optimizers consume the gradients a layer produced in its last Backward call.
// Layers without pending gradients are skipped for that step.
//
// Example usage:
//
//	opt := optim.NewAdam(layers, optim.AdamConfig{LR: 0.01})
//
//	for epoch := range epochs {
//	    out, _ := forward(layers, x)
//	    _, grad, _ := nn.CrossEntropyLoss(nn.Softmax(out), y)
//	    backward(layers, grad)
//
//	    if err := opt.Step(layers); err != nil {
//	        return err
//	    }
//	}
package optim

import (
	"github.com/neurox-ml/neurox/internal/errs"
	"github.com/neurox-ml/neurox/internal/nn"
	"github.com/neurox-ml/neurox/internal/tensor"
)

// Optimizer is the base interface for all optimization algorithms.
type Optimizer interface {
	// Step applies one update to every layer that holds gradients and
	// consumes those gradients.
	//
	// Stateful optimizers validate the layer sequence against the
	// architecture they were built for and fail with errs.ErrStateMismatch
	// before touching any parameter.
	Step(layers []*nn.Dense) error

	// GetLR returns the current learning rate.
	GetLR() float32

	// SetLR updates the learning rate, e.g. for scheduling.
	SetLR(lr float32)
}

// Config is the base configuration for all optimizers.
type Config struct {
	LR float32 // Learning rate
}

// paramState holds one buffer per parameter kind, shaped like the parameter.
type paramState struct {
	weight *tensor.Tensor
	bias   *tensor.Tensor
}

// newParamStates allocates zeroed per-layer buffers, indexed by layer position.
func newParamStates(layers []*nn.Dense) []paramState {
	states := make([]paramState, len(layers))
	for i, l := range layers {
		states[i] = paramState{
			weight: tensor.New(l.Weights().Shape()),
			bias:   tensor.New(l.Bias().Shape()),
		}
	}
	return states
}

// checkArchitecture verifies that layers still match the buffers allocated
// for them: same count, and the same weight and bias shapes per position.
func checkArchitecture(name string, layers []*nn.Dense, states []paramState) error {
	if len(layers) != len(states) {
		return errs.StateMismatch("%s: built for %d layers, got %d", name, len(states), len(layers))
	}
	for i, l := range layers {
		if l == nil {
			return errs.StateMismatch("%s: layer %d is nil", name, i)
		}
		if !l.Weights().SameShape(states[i].weight) || !l.Bias().SameShape(states[i].bias) {
			wr, wc := states[i].weight.Shape()
			return errs.StateMismatch("%s: layer %d is %dx%d, state is %dx%d",
				name, i, l.InFeatures(), l.OutFeatures(), wr, wc)
		}
	}
	return nil
}
