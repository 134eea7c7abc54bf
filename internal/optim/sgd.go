package optim

import (
	"github.com/neurox-ml/neurox/internal/errs"
	"github.com/neurox-ml/neurox/internal/nn"
)

// SGD implements Stochastic Gradient Descent with optional momentum.
//
// Update rule without momentum (stateless):
//
//	param = param - lr * gradient
//
// Update rule with momentum:
//
//	velocity = momentum * velocity + gradient
//	param = param - lr * velocity
//
// Example:
//
//	opt := optim.NewSGD(optim.SGDConfig{LR: 0.1})
//	err := opt.Step(model.Layers())
type SGD struct {
	lr         float32
	momentum   float32
	velocities []paramState // per layer position, allocated on first step
}

// SGDConfig holds configuration for SGD optimizer.
type SGDConfig struct {
	LR       float32 // Learning rate (default: 0.01)
	Momentum float32 // Momentum factor (default: 0.0, range: [0, 1))
}

// NewSGD creates a new SGD optimizer.
//
// Zero-valued fields take their defaults.
func NewSGD(config SGDConfig) *SGD {
	if config.LR == 0 {
		config.LR = 0.01
	}

	return &SGD{
		lr:       config.LR,
		momentum: config.Momentum,
	}
}

// Step performs a single optimization step.
//
// Without momentum each layer with gradients applies param -= lr * grad
// itself. Layers without gradients are skipped.
func (s *SGD) Step(layers []*nn.Dense) error {
	if s.momentum == 0 {
		for i, l := range layers {
			if l == nil {
				return errs.InvalidArgument("sgd: layer %d is nil", i)
			}
			if !l.HasGradients() {
				continue
			}
			if err := l.ApplyGradients(s.lr); err != nil {
				return err
			}
		}
		return nil
	}

	return s.stepWithMomentum(layers)
}

// stepWithMomentum performs SGD update with momentum.
func (s *SGD) stepWithMomentum(layers []*nn.Dense) error {
	if s.velocities == nil {
		s.velocities = newParamStates(layers)
	}
	if err := checkArchitecture("sgd", layers, s.velocities); err != nil {
		return err
	}

	for i, l := range layers {
		if !l.HasGradients() {
			continue
		}
		gw, gb, err := l.ConsumeGradients()
		if err != nil {
			return err
		}
		s.updateWithMomentum(l.Weights().Data(), gw.Data(), s.velocities[i].weight.Data())
		s.updateWithMomentum(l.Bias().Data(), gb.Data(), s.velocities[i].bias.Data())
	}
	return nil
}

func (s *SGD) updateWithMomentum(param, grad, velocity []float32) {
	for i, g := range grad {
		velocity[i] = s.momentum*velocity[i] + g
		param[i] -= s.lr * velocity[i]
	}
}

// GetLR returns the current learning rate.
func (s *SGD) GetLR() float32 {
	return s.lr
}

// SetLR updates the learning rate.
func (s *SGD) SetLR(lr float32) {
	s.lr = lr
}

// Momentum returns the momentum factor.
func (s *SGD) Momentum() float32 {
	return s.momentum
}
