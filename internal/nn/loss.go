package nn

import (
	"github.com/chewxy/math32"
	"github.com/neurox-ml/neurox/internal/errs"
	"github.com/neurox-ml/neurox/internal/tensor"
)

// probFloor keeps log(p) finite for zero probabilities.
const probFloor = 1e-7

// MSELoss computes the mean squared error and its gradient.
//
// Loss = sum((pred - target)²) / batch_rows
// Grad = 2 * (pred - target) / batch_rows
//
// The sum runs over every element but is divided by the number of rows, not
// the number of elements.
func MSELoss(pred, target *tensor.Tensor) (float32, *tensor.Tensor, error) {
	if !pred.SameShape(target) {
		return 0, nil, errs.ShapeMismatch("mse: predictions %dx%d, targets %dx%d",
			pred.Rows(), pred.Cols(), target.Rows(), target.Cols())
	}

	rows := float32(pred.Rows())
	grad := tensor.New(pred.Shape())
	g, p, t := grad.Data(), pred.Data(), target.Data()

	var sum float32
	for i := range p {
		diff := p[i] - t[i]
		sum += diff * diff
		g[i] = 2 * diff / rows
	}

	return sum / rows, grad, nil
}

// CrossEntropyLoss computes cross-entropy for probabilities that already went
// through Softmax, and the gradient with respect to the softmax input.
//
// Each probability is floored at 1e-7 before its logarithm is taken.
//
//	Loss = -sum(target * log(p))           summed over every element, not averaged
//	Grad = (p - target) / batch_rows        averaged over the batch
//
// The loss scalar is a batch sum while the gradient is a batch mean. Both
// normalizations are kept exactly as the training loop has always used them;
// callers that want a per-sample loss divide by the batch size themselves.
func CrossEntropyLoss(prob, target *tensor.Tensor) (float32, *tensor.Tensor, error) {
	if !prob.SameShape(target) {
		return 0, nil, errs.ShapeMismatch("cross-entropy: probabilities %dx%d, targets %dx%d",
			prob.Rows(), prob.Cols(), target.Rows(), target.Cols())
	}

	rows := float32(prob.Rows())
	grad := tensor.New(prob.Shape())
	g, p, t := grad.Data(), prob.Data(), target.Data()

	var loss float32
	for i := range p {
		pi := math32.Max(p[i], probFloor)
		loss -= t[i] * math32.Log(pi)
		g[i] = (pi - t[i]) / rows
	}

	return loss, grad, nil
}
