package optim

import (
	"github.com/chewxy/math32"
	"github.com/neurox-ml/neurox/internal/nn"
)

// Adam implements the Adam (Adaptive Moment Estimation) optimizer.
//
// Update rule:
//
//	m_t = beta1 * m_{t-1} + (1-beta1) * gradient       // First moment
//	v_t = beta2 * v_{t-1} + (1-beta2) * gradient²      // Second moment
//	m_hat = m_t / (1 - beta1^t)                        // Bias correction
//	v_hat = v_t / (1 - beta2^t)                        // Bias correction
//	param = param - lr * m_hat / (sqrt(v_hat) + eps)  // Parameter update
//
// Moments are kept per layer position and per parameter kind (weight, bias).
// The step counter t is shared by every parameter. The optimizer is bound to
// the architecture it was built for: Step fails with errs.ErrStateMismatch if
// the layer count or any parameter shape changes.
//
// Reference: "Adam: A Method for Stochastic Optimization" (Kingma & Ba, 2014)
type Adam struct {
	lr    float32
	beta1 float32
	beta2 float32
	eps   float32
	t     int          // Timestep for bias correction
	m     []paramState // First moment estimates
	v     []paramState // Second moment estimates
}

// AdamConfig holds configuration for Adam optimizer.
type AdamConfig struct {
	LR    float32    // Learning rate (default: 0.001)
	Betas [2]float32 // Coefficients for computing running averages (default: [0.9, 0.999])
	Eps   float32    // Term for numerical stability (default: 1e-8)
}

// NewAdam creates an Adam optimizer sized for layers.
//
// Default hyperparameters:
//   - LR: 0.001
//   - Beta1: 0.9
//   - Beta2: 0.999
//   - Eps: 1e-8
func NewAdam(layers []*nn.Dense, config AdamConfig) *Adam {
	if config.LR == 0 {
		config.LR = 0.001
	}
	if config.Betas[0] == 0 {
		config.Betas[0] = 0.9
	}
	if config.Betas[1] == 0 {
		config.Betas[1] = 0.999
	}
	if config.Eps == 0 {
		config.Eps = 1e-8
	}

	return &Adam{
		lr:    config.LR,
		beta1: config.Betas[0],
		beta2: config.Betas[1],
		eps:   config.Eps,
		m:     newParamStates(layers),
		v:     newParamStates(layers),
	}
}

// Step performs a single optimization step using Adam algorithm.
//
// The architecture check runs before the timestep advances, so a rejected
// step leaves both parameters and optimizer state untouched.
func (a *Adam) Step(layers []*nn.Dense) error {
	if err := checkArchitecture("adam", layers, a.m); err != nil {
		return err
	}

	a.t++
	biasCorrection1 := 1 - math32.Pow(a.beta1, float32(a.t))
	biasCorrection2 := 1 - math32.Pow(a.beta2, float32(a.t))

	for i, l := range layers {
		if !l.HasGradients() {
			continue
		}
		gw, gb, err := l.ConsumeGradients()
		if err != nil {
			return err
		}

		a.updateParameter(l.Weights().Data(), gw.Data(), a.m[i].weight.Data(), a.v[i].weight.Data(), biasCorrection1, biasCorrection2)
		a.updateParameter(l.Bias().Data(), gb.Data(), a.m[i].bias.Data(), a.v[i].bias.Data(), biasCorrection1, biasCorrection2)
	}
	return nil
}

// updateParameter performs the element-wise Adam update for one buffer.
func (a *Adam) updateParameter(param, grad, m, v []float32, biasCorrection1, biasCorrection2 float32) {
	for i, g := range grad {
		m[i] = a.beta1*m[i] + (1-a.beta1)*g
		v[i] = a.beta2*v[i] + (1-a.beta2)*g*g

		mHat := m[i] / biasCorrection1
		vHat := v[i] / biasCorrection2

		param[i] -= a.lr * mHat / (math32.Sqrt(vHat) + a.eps)
	}
}

// GetLR returns the current learning rate.
func (a *Adam) GetLR() float32 {
	return a.lr
}

// SetLR updates the learning rate.
func (a *Adam) SetLR(lr float32) {
	a.lr = lr
}

// GetTimestep returns the number of steps taken.
func (a *Adam) GetTimestep() int {
	return a.t
}

// Betas returns (beta1, beta2).
func (a *Adam) Betas() (float32, float32) {
	return a.beta1, a.beta2
}

// Eps returns the numerical stability term.
func (a *Adam) Eps() float32 {
	return a.eps
}
