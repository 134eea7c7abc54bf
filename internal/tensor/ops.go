package tensor

import (
	"sync"

	"github.com/chewxy/math32"
	"github.com/neurox-ml/neurox/internal/errs"
	"github.com/neurox-ml/neurox/internal/parallel"
)

var (
	parallelMu  sync.RWMutex
	parallelCfg = parallel.DefaultConfig()
)

// SetParallelConfig replaces the configuration MatMul uses to split output
// rows across goroutines. Results do not depend on the configuration.
func SetParallelConfig(cfg parallel.Config) {
	parallelMu.Lock()
	defer parallelMu.Unlock()
	parallelCfg = cfg
}

// ParallelConfig returns the configuration currently used by MatMul.
func ParallelConfig() parallel.Config {
	parallelMu.RLock()
	defer parallelMu.RUnlock()
	return parallelCfg
}

// Map applies f to every element and returns the result as a new tensor.
func (t *Tensor) Map(f func(float32) float32) *Tensor {
	out := New(t.rows, t.cols)
	for i, v := range t.data {
		out.data[i] = f(v)
	}
	return out
}

// AddRowBroadcast adds a 1xC bias row to every row of an RxC tensor.
func (t *Tensor) AddRowBroadcast(bias *Tensor) (*Tensor, error) {
	if bias.rows != 1 || bias.cols != t.cols {
		return nil, errs.ShapeMismatch("bias must be 1x%d, got %dx%d", t.cols, bias.rows, bias.cols)
	}

	out := t.Clone()
	for i := 0; i < t.rows; i++ {
		row := out.data[i*t.cols : (i+1)*t.cols]
		for j, b := range bias.data {
			row[j] += b
		}
	}
	return out, nil
}

// MatMul returns the matrix product t x other.
//
// Requirements:
//   - (M, K) x (K, N) -> (M, N)
//
// Example:
//
//	a := tensor.MustFromSlice([]float32{1, 2, 3, 4}, 2, 2)
//	b := tensor.MustFromSlice([]float32{5, 6, 7, 8}, 2, 2)
//	c, _ := a.MatMul(b) // [[19, 22], [43, 50]]
func (t *Tensor) MatMul(other *Tensor) (*Tensor, error) {
	if t.cols != other.rows {
		return nil, errs.ShapeMismatch("matmul %dx%d by %dx%d: a.cols must equal b.rows", t.rows, t.cols, other.rows, other.cols)
	}

	m, k, n := t.rows, t.cols, other.cols
	out := New(m, n)
	a, b, c := t.data, other.data, out.data

	// Output rows are independent; each keeps the sequential k-order sum.
	parallel.ForRange(m, func(start, end int) {
		for i := start; i < end; i++ {
			for j := 0; j < n; j++ {
				var sum float32
				for p := 0; p < k; p++ {
					sum += a[i*k+p] * b[p*n+j]
				}
				c[i*n+j] = sum
			}
		}
	}, ParallelConfig())

	return out, nil
}

// Transpose returns a new tensor with rows and columns swapped.
func (t *Tensor) Transpose() *Tensor {
	out := New(t.cols, t.rows)
	for i := 0; i < t.rows; i++ {
		for j := 0; j < t.cols; j++ {
			out.data[j*t.rows+i] = t.data[i*t.cols+j]
		}
	}
	return out
}

// Add performs element-wise addition. Shapes must be identical.
func (t *Tensor) Add(other *Tensor) (*Tensor, error) {
	return t.zip("add", other, func(a, b float32) float32 { return a + b })
}

// Sub performs element-wise subtraction. Shapes must be identical.
func (t *Tensor) Sub(other *Tensor) (*Tensor, error) {
	return t.zip("sub", other, func(a, b float32) float32 { return a - b })
}

// Mul performs element-wise multiplication. Shapes must be identical.
func (t *Tensor) Mul(other *Tensor) (*Tensor, error) {
	return t.zip("mul", other, func(a, b float32) float32 { return a * b })
}

func (t *Tensor) zip(op string, other *Tensor, f func(a, b float32) float32) (*Tensor, error) {
	if !t.SameShape(other) {
		return nil, errs.ShapeMismatch("element-wise %s of %dx%d and %dx%d", op, t.rows, t.cols, other.rows, other.cols)
	}

	out := New(t.rows, t.cols)
	for i := range t.data {
		out.data[i] = f(t.data[i], other.data[i])
	}
	return out, nil
}

// Scale multiplies every element by s.
func (t *Tensor) Scale(s float32) *Tensor {
	return t.Map(func(v float32) float32 { return v * s })
}

// SumRows sums over the row (batch) dimension and returns a 1xC tensor.
func (t *Tensor) SumRows() *Tensor {
	out := New(1, t.cols)
	for i := 0; i < t.rows; i++ {
		for j := 0; j < t.cols; j++ {
			out.data[j] += t.data[i*t.cols+j]
		}
	}
	return out
}

// SliceRows returns a copy of rows [start, end).
func (t *Tensor) SliceRows(start, end int) (*Tensor, error) {
	if start < 0 || start > end || end > t.rows {
		return nil, errs.InvalidArgument("row range [%d, %d) outside %d rows", start, end, t.rows)
	}

	out := New(end-start, t.cols)
	copy(out.data, t.data[start*t.cols:end*t.cols])
	return out, nil
}

// ArgMaxRows returns, for every row, the column index of its largest value.
// Ties resolve to the lowest index.
func (t *Tensor) ArgMaxRows() []int {
	out := make([]int, t.rows)
	for i := 0; i < t.rows; i++ {
		best := math32.Inf(-1)
		for j := 0; j < t.cols; j++ {
			if v := t.data[i*t.cols+j]; v > best {
				best = v
				out[i] = j
			}
		}
	}
	return out
}

// Equal reports whether both tensors have the same shape and identical elements.
func (t *Tensor) Equal(other *Tensor) bool {
	return t.AllClose(other, 0)
}

// AllClose reports whether both tensors have the same shape and every pair
// of elements differs by at most tol.
func (t *Tensor) AllClose(other *Tensor, tol float32) bool {
	if !t.SameShape(other) {
		return false
	}
	for i, v := range t.data {
		if math32.Abs(v-other.data[i]) > tol {
			return false
		}
	}
	return true
}
