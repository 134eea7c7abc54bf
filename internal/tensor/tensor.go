// Package tensor implements the dense 2-D float32 container used by every
// neurox layer, loss and optimizer.
//
// Tensors are values: all algebra returns a new tensor and never writes into
// an operand. The only in-place mutation goes through Set and the slice
// returned by Data, which layers and optimizers use on buffers they own.
//
// Shape errors on algebra are recoverable and match errs.ErrShapeMismatch.
// Indexing outside the tensor and negative dimensions are caller bugs and panic.
package tensor

import (
	"fmt"

	"github.com/neurox-ml/neurox/internal/errs"
)

// Tensor is a row-major matrix of float32 values.
//
// Invariant: len(data) == rows*cols.
type Tensor struct {
	data []float32
	rows int
	cols int
}

// New creates a zero-filled tensor with the given dimensions.
//
// Panics if rows or cols is negative.
func New(rows, cols int) *Tensor {
	if rows < 0 || cols < 0 {
		panic(fmt.Sprintf("tensor.New: invalid dimensions %dx%d", rows, cols))
	}
	return &Tensor{
		data: make([]float32, rows*cols),
		rows: rows,
		cols: cols,
	}
}

// Zeros is an alias for New.
func Zeros(rows, cols int) *Tensor {
	return New(rows, cols)
}

// FromSlice creates a tensor from row-major values.
// The slice is copied into the tensor's memory.
func FromSlice(data []float32, rows, cols int) (*Tensor, error) {
	if rows < 0 || cols < 0 {
		return nil, errs.InvalidArgument("tensor dimensions %dx%d", rows, cols)
	}
	if len(data) != rows*cols {
		return nil, errs.ShapeMismatch("%dx%d tensor requires %d elements, got %d", rows, cols, rows*cols, len(data))
	}

	t := New(rows, cols)
	copy(t.data, data)
	return t, nil
}

// MustFromSlice is like FromSlice but panics on error.
//
// Intended for literals in tests and examples.
func MustFromSlice(data []float32, rows, cols int) *Tensor {
	t, err := FromSlice(data, rows, cols)
	if err != nil {
		panic(fmt.Sprintf("tensor.MustFromSlice: %v", err))
	}
	return t
}

// Rows returns the number of rows.
func (t *Tensor) Rows() int {
	return t.rows
}

// Cols returns the number of columns.
func (t *Tensor) Cols() int {
	return t.cols
}

// Shape returns (rows, cols).
func (t *Tensor) Shape() (int, int) {
	return t.rows, t.cols
}

// Len returns the total number of elements.
func (t *Tensor) Len() int {
	return len(t.data)
}

// SameShape reports whether t and other have identical dimensions.
func (t *Tensor) SameShape(other *Tensor) bool {
	return t.rows == other.rows && t.cols == other.cols
}

// Data returns the backing slice in row-major order.
//
// Writes through the slice mutate the tensor. Only the owner of a buffer
// (a layer for its parameters, an optimizer for its moments) should do that.
func (t *Tensor) Data() []float32 {
	return t.data
}

// Clone returns a deep copy.
func (t *Tensor) Clone() *Tensor {
	out := New(t.rows, t.cols)
	copy(out.data, t.data)
	return out
}

// At returns the element at (r, c).
//
// Panics if the index is out of range.
func (t *Tensor) At(r, c int) float32 {
	return t.data[t.index("At", r, c)]
}

// Set writes v at (r, c).
//
// Panics if the index is out of range.
func (t *Tensor) Set(r, c int, v float32) {
	t.data[t.index("Set", r, c)] = v
}

func (t *Tensor) index(op string, r, c int) int {
	if r < 0 || r >= t.rows || c < 0 || c >= t.cols {
		panic(fmt.Sprintf("Tensor.%s: index (%d, %d) out of range for %dx%d tensor", op, r, c, t.rows, t.cols))
	}
	return r*t.cols + c
}

// Row returns a copy of row r.
func (t *Tensor) Row(r int) []float32 {
	start := t.index("Row", r, 0)
	out := make([]float32, t.cols)
	copy(out, t.data[start:start+t.cols])
	return out
}
