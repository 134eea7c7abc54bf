package nn

import (
	"fmt"
	"strings"

	"github.com/chewxy/math32"
	"github.com/neurox-ml/neurox/internal/errs"
	"github.com/neurox-ml/neurox/internal/tensor"
)

// Activation selects the element-wise nonlinearity of a Dense layer.
//
// The set is closed. Adding a kind means one constant here and one entry in
// activationTable; Dense dispatches only through the table.
type Activation int

const (
	// Identity passes values through unchanged.
	Identity Activation = iota
	// ReLU applies max(0, x).
	ReLU
	// Sigmoid applies 1 / (1 + exp(-x)).
	Sigmoid
	// Tanh applies the hyperbolic tangent.
	Tanh
)

// activationFuncs pairs a forward function with its derivative.
//
// When fromOutput is true the derivative expects the activated value
// (s = f(z)) rather than the pre-activation z.
type activationFuncs struct {
	name       string
	forward    func(float32) float32
	derivative func(float32) float32
	fromOutput bool
}

var activationTable = map[Activation]activationFuncs{
	Identity: {
		name:       "identity",
		forward:    func(x float32) float32 { return x },
		derivative: func(float32) float32 { return 1 },
	},
	ReLU: {
		name:       "relu",
		forward:    relu,
		derivative: reluGrad,
	},
	Sigmoid: {
		name:       "sigmoid",
		forward:    sigmoid,
		derivative: func(s float32) float32 { return s * (1 - s) },
		fromOutput: true,
	},
	Tanh: {
		name:       "tanh",
		forward:    math32.Tanh,
		derivative: func(t float32) float32 { return 1 - t*t },
		fromOutput: true,
	},
}

func relu(x float32) float32 {
	if x > 0 {
		return x
	}
	return 0
}

func reluGrad(x float32) float32 {
	if x > 0 {
		return 1
	}
	return 0
}

func sigmoid(x float32) float32 {
	return 1 / (1 + math32.Exp(-x))
}

func (a Activation) funcs() activationFuncs {
	f, ok := activationTable[a]
	if !ok {
		panic(fmt.Sprintf("nn: unknown activation %d", int(a)))
	}
	return f
}

// String returns the lower-case activation name.
func (a Activation) String() string {
	if f, ok := activationTable[a]; ok {
		return f.name
	}
	return fmt.Sprintf("Activation(%d)", int(a))
}

// Valid reports whether a is one of the defined kinds.
func (a Activation) Valid() bool {
	_, ok := activationTable[a]
	return ok
}

// ParseActivation converts a name such as "relu" into an Activation.
// "none" and "linear" are accepted for Identity.
func ParseActivation(name string) (Activation, error) {
	n := strings.ToLower(strings.TrimSpace(name))
	switch n {
	case "none", "linear":
		return Identity, nil
	}
	for kind, f := range activationTable {
		if f.name == n {
			return kind, nil
		}
	}
	return Identity, errs.InvalidArgument("unknown activation %q", name)
}

// Apply runs the activation over every element of z.
func (a Activation) Apply(z *tensor.Tensor) *tensor.Tensor {
	return z.Map(a.funcs().forward)
}

// Derivative returns f'(z) element-wise for the pre-activation z.
//
// Output-based kinds recompute f(z) first and evaluate the derivative on it.
func (a Activation) Derivative(z *tensor.Tensor) *tensor.Tensor {
	f := a.funcs()
	if f.fromOutput {
		return z.Map(func(v float32) float32 { return f.derivative(f.forward(v)) })
	}
	return z.Map(f.derivative)
}

// ReLUTensor applies ReLU element-wise.
func ReLUTensor(x *tensor.Tensor) *tensor.Tensor {
	return x.Map(relu)
}

// ReLUGrad returns 1 where x > 0 and 0 elsewhere.
func ReLUGrad(x *tensor.Tensor) *tensor.Tensor {
	return x.Map(reluGrad)
}

// SigmoidTensor applies the logistic function element-wise.
func SigmoidTensor(x *tensor.Tensor) *tensor.Tensor {
	return x.Map(sigmoid)
}

// SigmoidGradFromOut computes s*(1-s) from sigmoid outputs s.
func SigmoidGradFromOut(s *tensor.Tensor) *tensor.Tensor {
	return s.Map(activationTable[Sigmoid].derivative)
}

// TanhTensor applies tanh element-wise.
func TanhTensor(x *tensor.Tensor) *tensor.Tensor {
	return x.Map(math32.Tanh)
}

// TanhGradFromOut computes 1-t² from tanh outputs t.
func TanhGradFromOut(t *tensor.Tensor) *tensor.Tensor {
	return t.Map(activationTable[Tanh].derivative)
}

// Softmax normalizes every row into a probability distribution.
//
// The row maximum is subtracted before exponentiation, so large inputs do
// not overflow. Each output row sums to 1 within float32 rounding.
func Softmax(x *tensor.Tensor) *tensor.Tensor {
	rows, cols := x.Shape()
	out := x.Clone()
	data := out.Data()

	for i := 0; i < rows; i++ {
		row := data[i*cols : (i+1)*cols]

		maxVal := math32.Inf(-1)
		for _, v := range row {
			maxVal = math32.Max(maxVal, v)
		}

		var sum float32
		for j, v := range row {
			e := math32.Exp(v - maxVal)
			row[j] = e
			sum += e
		}

		for j := range row {
			row[j] /= sum
		}
	}

	return out
}
