package nn

import (
	"math/rand/v2"

	"github.com/neurox-ml/neurox/internal/errs"
	"github.com/neurox-ml/neurox/internal/tensor"
)

// ForwardState tracks whether a Dense layer holds a forward cache.
type ForwardState int

const (
	// AwaitingForward means no cache is held; Backward is illegal.
	AwaitingForward ForwardState = iota
	// ForwardDone means the input and pre-activation of the last Forward are cached.
	ForwardDone
)

// String implements fmt.Stringer.
func (s ForwardState) String() string {
	if s == ForwardDone {
		return "ForwardDone"
	}
	return "AwaitingForward"
}

// GradState tracks whether a Dense layer holds unconsumed gradients.
type GradState int

const (
	// NoGradients means there is nothing to apply.
	NoGradients GradState = iota
	// GradientsReady means Backward produced gradients that were not applied yet.
	GradientsReady
)

// String implements fmt.Stringer.
func (s GradState) String() string {
	if s == GradientsReady {
		return "GradientsReady"
	}
	return "NoGradients"
}

// Dense implements a fully connected layer followed by an activation.
//
// Performs the transformation: y = act(x @ W + b)
// where:
//   - x is the input tensor with shape [batch_size, in_features]
//   - W is the weight matrix with shape [in_features, out_features]
//   - b is the bias row with shape [1, out_features]
//   - y is the output tensor with shape [batch_size, out_features]
//
// Lifecycle:
//
//	NewDense -> Forward -> Backward -> ApplyGradients (or an optimizer step)
//
// Only one forward/backward round may be in flight. A second Forward before
// Backward replaces the cache; Backward without a cache, or ApplyGradients
// without gradients, returns an error matching errs.ErrIllegalState.
type Dense struct {
	inFeatures  int
	outFeatures int
	activation  Activation

	weight *tensor.Tensor // [in_features, out_features]
	bias   *tensor.Tensor // [1, out_features]

	inputCache  *tensor.Tensor
	preactCache *tensor.Tensor
	forward     ForwardState

	gradWeight *tensor.Tensor
	gradBias   *tensor.Tensor
	grads      GradState
}

// NewDense creates a layer with weights and biases drawn uniformly from
// [-1, 1) using rng. A nil rng uses a time-seeded source.
//
// Panics if act is not a defined Activation or a dimension is not positive.
func NewDense(inFeatures, outFeatures int, act Activation, rng *rand.Rand) *Dense {
	if inFeatures <= 0 || outFeatures <= 0 {
		panic("nn.NewDense: features must be positive")
	}
	if !act.Valid() {
		panic("nn.NewDense: unknown activation " + act.String())
	}

	return &Dense{
		inFeatures:  inFeatures,
		outFeatures: outFeatures,
		activation:  act,
		weight:      tensor.Random(inFeatures, outFeatures, rng),
		bias:        tensor.Random(1, outFeatures, rng),
	}
}

// Forward computes act(input @ W + b) and caches input and pre-activation.
//
// Input shape: [batch_size, in_features]
// Output shape: [batch_size, out_features]
func (d *Dense) Forward(input *tensor.Tensor) (*tensor.Tensor, error) {
	z, err := input.MatMul(d.weight)
	if err != nil {
		return nil, err
	}
	z, err = z.AddRowBroadcast(d.bias)
	if err != nil {
		return nil, err
	}

	d.inputCache = input.Clone()
	d.preactCache = z
	d.forward = ForwardDone

	return d.activation.Apply(z), nil
}

// Backward propagates gradOut (dL/dOutput) through the layer.
//
// It stores dL/dW = xᵀ·dZ and dL/dB = column sums of dZ, and returns
// dL/dInput = dZ·Wᵀ for the previous layer. The forward cache is consumed.
func (d *Dense) Backward(gradOut *tensor.Tensor) (*tensor.Tensor, error) {
	if d.forward != ForwardDone {
		return nil, errs.IllegalState("Dense.Backward called in state %s; call Forward first", d.forward)
	}
	if gradOut.Rows() != d.preactCache.Rows() || gradOut.Cols() != d.outFeatures {
		return nil, errs.ShapeMismatch("Dense.Backward: gradient %dx%d, output %dx%d",
			gradOut.Rows(), gradOut.Cols(), d.preactCache.Rows(), d.outFeatures)
	}

	dz := gradOut
	if d.activation != Identity {
		var err error
		dz, err = gradOut.Mul(d.activation.Derivative(d.preactCache))
		if err != nil {
			return nil, err
		}
	}

	gradWeight, err := d.inputCache.Transpose().MatMul(dz)
	if err != nil {
		return nil, err
	}
	gradInput, err := dz.MatMul(d.weight.Transpose())
	if err != nil {
		return nil, err
	}

	d.gradWeight = gradWeight
	d.gradBias = dz.SumRows()
	d.grads = GradientsReady

	d.inputCache = nil
	d.preactCache = nil
	d.forward = AwaitingForward

	return gradInput, nil
}

// ApplyGradients performs one plain gradient descent update:
// param -= lr * grad, for weights and biases. The gradients are consumed.
func (d *Dense) ApplyGradients(lr float32) error {
	gw, gb, err := d.ConsumeGradients()
	if err != nil {
		return err
	}

	w := d.weight.Data()
	for i, g := range gw.Data() {
		w[i] -= lr * g
	}
	b := d.bias.Data()
	for i, g := range gb.Data() {
		b[i] -= lr * g
	}
	return nil
}

// ConsumeGradients hands the pending gradients to an optimizer with its own
// update rule and moves the layer to NoGradients.
func (d *Dense) ConsumeGradients() (gradWeight, gradBias *tensor.Tensor, err error) {
	if d.grads != GradientsReady {
		return nil, nil, errs.IllegalState("Dense: no gradients to apply; call Backward first")
	}
	gradWeight, gradBias = d.gradWeight, d.gradBias
	d.gradWeight, d.gradBias = nil, nil
	d.grads = NoGradients
	return gradWeight, gradBias, nil
}

// HasGradients reports whether Backward produced gradients not yet applied.
func (d *Dense) HasGradients() bool {
	return d.grads == GradientsReady
}

// GradWeights returns the pending weight gradient, or nil.
func (d *Dense) GradWeights() *tensor.Tensor {
	return d.gradWeight
}

// GradBias returns the pending bias gradient, or nil.
func (d *Dense) GradBias() *tensor.Tensor {
	return d.gradBias
}

// Weights returns the weight tensor. Optimizers update it in place.
func (d *Dense) Weights() *tensor.Tensor {
	return d.weight
}

// Bias returns the bias tensor. Optimizers update it in place.
func (d *Dense) Bias() *tensor.Tensor {
	return d.bias
}

// InFeatures returns the number of input features.
func (d *Dense) InFeatures() int {
	return d.inFeatures
}

// OutFeatures returns the number of output features.
func (d *Dense) OutFeatures() int {
	return d.outFeatures
}

// Activation returns the layer's activation kind.
func (d *Dense) Activation() Activation {
	return d.activation
}

// ForwardState returns the cache state.
func (d *Dense) ForwardState() ForwardState {
	return d.forward
}

// GradState returns the gradient state.
func (d *Dense) GradState() GradState {
	return d.grads
}

// NumParams returns the number of trainable scalars (weights + biases).
func (d *Dense) NumParams() int {
	return d.weight.Len() + d.bias.Len()
}
