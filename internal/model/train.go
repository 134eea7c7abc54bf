package model

import (
	"github.com/neurox-ml/neurox/internal/errs"
	"github.com/neurox-ml/neurox/internal/nn"
	"github.com/neurox-ml/neurox/internal/optim"
	"github.com/neurox-ml/neurox/internal/tensor"
)

// FitConfig controls the training loop.
type FitConfig struct {
	Epochs    int // Full passes over the data (0 trains nothing)
	BatchSize int // Rows per batch; the final batch may be shorter
}

// Fit trains the model on x (inputs) and y (one-hot targets) with opt.
//
// Each epoch walks the rows in order, without shuffling, in contiguous
// batches. Per batch the raw output goes through softmax and cross-entropy,
// the gradient is propagated through every layer in reverse, and opt takes
// one step.
//
// Softmax is applied on top of whatever the output layer produced, even when
// its activation is not Identity. The returned slice holds the mean batch
// loss of every epoch.
func (m *Model) Fit(x, y *tensor.Tensor, opt optim.Optimizer, cfg FitConfig) ([]float32, error) {
	if err := m.validateFit(x, y, opt, cfg); err != nil {
		return nil, err
	}

	history := make([]float32, 0, cfg.Epochs)
	for epoch := range cfg.Epochs {
		var total float32
		batches := 0
		for start := 0; start < x.Rows(); start += cfg.BatchSize {
			end := min(start+cfg.BatchSize, x.Rows())

			loss, err := m.trainBatch(x, y, start, end, opt)
			if err != nil {
				return history, errs.Wrap(err, "model.Fit: epoch %d, rows [%d, %d)", epoch, start, end)
			}
			total += loss
			batches++
		}

		mean := total / float32(batches)
		history = append(history, mean)
		m.logger.Debug("epoch complete",
			"epoch", epoch+1,
			"epochs", cfg.Epochs,
			"loss", mean,
			"lr", opt.GetLR(),
		)
	}
	return history, nil
}

func (m *Model) validateFit(x, y *tensor.Tensor, opt optim.Optimizer, cfg FitConfig) error {
	switch {
	case opt == nil:
		return errs.InvalidArgument("model.Fit: nil optimizer")
	case cfg.BatchSize <= 0:
		return errs.InvalidArgument("model.Fit: batch size %d, must be positive", cfg.BatchSize)
	case cfg.Epochs < 0:
		return errs.InvalidArgument("model.Fit: epochs %d, must not be negative", cfg.Epochs)
	case x == nil || y == nil:
		return errs.InvalidArgument("model.Fit: nil inputs or targets")
	case x.Rows() == 0:
		return errs.InvalidArgument("model.Fit: empty dataset")
	case x.Rows() != y.Rows():
		return errs.InvalidArgument("model.Fit: %d input rows but %d target rows", x.Rows(), y.Rows())
	case x.Cols() != m.InputWidth():
		return errs.ShapeMismatch("model.Fit: inputs have %d columns, model expects %d", x.Cols(), m.InputWidth())
	case y.Cols() != m.OutputWidth():
		return errs.ShapeMismatch("model.Fit: targets have %d columns, model outputs %d", y.Cols(), m.OutputWidth())
	}
	return nil
}

func (m *Model) trainBatch(x, y *tensor.Tensor, start, end int, opt optim.Optimizer) (float32, error) {
	bx, err := x.SliceRows(start, end)
	if err != nil {
		return 0, err
	}
	by, err := y.SliceRows(start, end)
	if err != nil {
		return 0, err
	}

	out, err := m.Forward(bx)
	if err != nil {
		return 0, err
	}
	loss, grad, err := nn.CrossEntropyLoss(nn.Softmax(out), by)
	if err != nil {
		return 0, err
	}
	if err := m.backward(grad); err != nil {
		return 0, err
	}
	if err := opt.Step(m.layers); err != nil {
		return 0, err
	}
	return loss, nil
}

// TrainSGD runs Fit with plain gradient descent at learning rate lr.
func (m *Model) TrainSGD(x, y *tensor.Tensor, epochs, batchSize int, lr float32) error {
	_, err := m.Fit(x, y, optim.NewSGD(optim.SGDConfig{LR: lr}), FitConfig{Epochs: epochs, BatchSize: batchSize})
	return err
}

// TrainAdam runs Fit with a fresh Adam optimizer at learning rate lr and
// default betas and epsilon.
func (m *Model) TrainAdam(x, y *tensor.Tensor, epochs, batchSize int, lr float32) error {
	opt := optim.NewAdam(m.layers, optim.AdamConfig{LR: lr})
	_, err := m.Fit(x, y, opt, FitConfig{Epochs: epochs, BatchSize: batchSize})
	return err
}

// Probabilities returns softmax(Forward(x)).
func (m *Model) Probabilities(x *tensor.Tensor) (*tensor.Tensor, error) {
	out, err := m.Forward(x)
	if err != nil {
		return nil, err
	}
	return nn.Softmax(out), nil
}

// Predict returns the most probable class for every row of x.
func (m *Model) Predict(x *tensor.Tensor) ([]int, error) {
	probs, err := m.Probabilities(x)
	if err != nil {
		return nil, err
	}
	return probs.ArgMaxRows(), nil
}

// Evaluate returns the cross-entropy loss (summed over rows, as in training)
// and the fraction of rows whose predicted class matches the target's argmax.
func (m *Model) Evaluate(x, y *tensor.Tensor) (loss, accuracy float32, err error) {
	probs, err := m.Probabilities(x)
	if err != nil {
		return 0, 0, err
	}
	loss, _, err = nn.CrossEntropyLoss(probs, y)
	if err != nil {
		return 0, 0, errs.Wrap(err, "model.Evaluate")
	}
	if x.Rows() == 0 {
		return loss, 0, nil
	}

	correct := 0
	want := y.ArgMaxRows()
	for i, got := range probs.ArgMaxRows() {
		if got == want[i] {
			correct++
		}
	}
	return loss, float32(correct) / float32(x.Rows()), nil
}
