package data

import (
	"github.com/chewxy/math32"
	"github.com/neurox-ml/neurox/internal/errs"
	"github.com/neurox-ml/neurox/internal/tensor"
)

// TrainTestSplit splits t's rows sequentially: the first round(rows*ratio)
// rows go to train and the rest to test. No shuffling is done.
//
// ratio must lie strictly between 0 and 1.
func TrainTestSplit(t *tensor.Tensor, ratio float32) (train, test *tensor.Tensor, err error) {
	if !(ratio > 0 && ratio < 1) {
		return nil, nil, errs.InvalidArgument("split ratio %v must be in (0, 1)", ratio)
	}

	n := t.Rows()
	trainN := int(math32.Round(float32(n) * ratio))

	if train, err = t.SliceRows(0, trainN); err != nil {
		return nil, nil, err
	}
	if test, err = t.SliceRows(trainN, n); err != nil {
		return nil, nil, err
	}
	return train, test, nil
}

// SplitFeaturesLabels separates the trailing labelCols columns of t from the
// leading feature columns.
func SplitFeaturesLabels(t *tensor.Tensor, labelCols int) (features, labels *tensor.Tensor, err error) {
	rows, cols := t.Shape()
	if labelCols <= 0 || labelCols >= cols {
		return nil, nil, errs.InvalidArgument("label columns %d must be in [1, %d)", labelCols, cols)
	}

	featCols := cols - labelCols
	features = tensor.New(rows, featCols)
	labels = tensor.New(rows, labelCols)
	src, fd, ld := t.Data(), features.Data(), labels.Data()
	for r := range rows {
		row := src[r*cols : (r+1)*cols]
		copy(fd[r*featCols:], row[:featCols])
		copy(ld[r*labelCols:], row[featCols:])
	}
	return features, labels, nil
}

// OneHot encodes class indices as rows with a single 1 at the class column.
func OneHot(labels []int, classes int) (*tensor.Tensor, error) {
	if classes <= 0 {
		return nil, errs.InvalidArgument("class count %d must be positive", classes)
	}

	out := tensor.New(len(labels), classes)
	for i, c := range labels {
		if c < 0 || c >= classes {
			return nil, errs.InvalidArgument("label %d at row %d out of range [0, %d)", c, i, classes)
		}
		out.Set(i, c, 1)
	}
	return out, nil
}

// LabelsToOneHot reads a single column of class indices, as loaded from CSV,
// and encodes it with OneHot. Values are truncated toward zero.
func LabelsToOneHot(column *tensor.Tensor, classes int) (*tensor.Tensor, error) {
	if column.Cols() != 1 {
		return nil, errs.ShapeMismatch("label column must be Nx1, got %dx%d", column.Rows(), column.Cols())
	}

	labels := make([]int, column.Rows())
	for i, v := range column.Data() {
		labels[i] = int(v)
	}
	return OneHot(labels, classes)
}

// XOR returns the four XOR samples and their one-hot targets.
// Class 0 is "inputs equal", class 1 is "inputs differ".
func XOR() (inputs, targets *tensor.Tensor) {
	inputs = tensor.MustFromSlice([]float32{
		0, 0,
		0, 1,
		1, 0,
		1, 1,
	}, 4, 2)
	targets = tensor.MustFromSlice([]float32{
		1, 0,
		0, 1,
		0, 1,
		1, 0,
	}, 4, 2)
	return inputs, targets
}
