// Copyright 2025 Neurox ML Authors. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

package nn

import (
	"math/rand/v2"

	"github.com/neurox-ml/neurox/internal/nn"
	"github.com/neurox-ml/neurox/internal/tensor"
)

// Activations

// Activation selects a layer's non-linearity.
type Activation = nn.Activation

// Activation kinds.
const (
	Identity = nn.Identity
	ReLU     = nn.ReLU
	Sigmoid  = nn.Sigmoid
	Tanh     = nn.Tanh
)

// ParseActivation converts a name such as "relu" or "tanh" to an Activation.
func ParseActivation(name string) (Activation, error) {
	return nn.ParseActivation(name)
}

// Softmax normalizes every row into a probability distribution.
func Softmax(x *tensor.Tensor) *tensor.Tensor {
	return nn.Softmax(x)
}

// ReLUTensor applies max(0, x) element-wise.
func ReLUTensor(x *tensor.Tensor) *tensor.Tensor {
	return nn.ReLUTensor(x)
}

// ReLUGrad returns 1 where x > 0 and 0 elsewhere.
func ReLUGrad(x *tensor.Tensor) *tensor.Tensor {
	return nn.ReLUGrad(x)
}

// SigmoidTensor applies the logistic function element-wise.
func SigmoidTensor(x *tensor.Tensor) *tensor.Tensor {
	return nn.SigmoidTensor(x)
}

// SigmoidGradFromOut returns s * (1 - s) for sigmoid outputs s.
func SigmoidGradFromOut(s *tensor.Tensor) *tensor.Tensor {
	return nn.SigmoidGradFromOut(s)
}

// TanhTensor applies tanh element-wise.
func TanhTensor(x *tensor.Tensor) *tensor.Tensor {
	return nn.TanhTensor(x)
}

// TanhGradFromOut returns 1 - t² for tanh outputs t.
func TanhGradFromOut(t *tensor.Tensor) *tensor.Tensor {
	return nn.TanhGradFromOut(t)
}

// Layers

// Dense is a fully connected layer computing act(x @ W + b).
type Dense = nn.Dense

// ForwardState reports whether a layer holds a forward cache.
type ForwardState = nn.ForwardState

// GradState reports whether a layer holds unconsumed gradients.
type GradState = nn.GradState

// Layer states.
const (
	AwaitingForward = nn.AwaitingForward
	ForwardDone     = nn.ForwardDone
	NoGradients     = nn.NoGradients
	GradientsReady  = nn.GradientsReady
)

// NewDense creates a layer with parameters uniform in [-1, 1) drawn from rng.
//
// Example:
//
//	layer := nn.NewDense(784, 128, nn.ReLU, tensor.NewRand(1))
func NewDense(inFeatures, outFeatures int, act Activation, rng *rand.Rand) *Dense {
	return nn.NewDense(inFeatures, outFeatures, act, rng)
}

// Loss functions

// MSELoss returns the mean squared error over batch rows and its gradient.
func MSELoss(pred, target *tensor.Tensor) (float32, *tensor.Tensor, error) {
	return nn.MSELoss(pred, target)
}

// CrossEntropyLoss returns the batch-summed cross-entropy of softmax
// probabilities against one-hot targets, and the gradient (p - t) / rows
// with respect to the softmax input.
func CrossEntropyLoss(prob, target *tensor.Tensor) (float32, *tensor.Tensor, error) {
	return nn.CrossEntropyLoss(prob, target)
}
