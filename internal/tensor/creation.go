package tensor

import (
	"math/rand/v2"
	"time"
)

// Random creates a tensor whose entries are drawn independently and
// uniformly from [-1, 1).
//
// The source is the caller's generator so that seeded models are
// reproducible. A nil rng uses a fresh time-seeded generator.
//
// Example:
//
//	rng := rand.New(rand.NewPCG(42, 42))
//	w := tensor.Random(784, 128, rng)
func Random(rows, cols int, rng *rand.Rand) *Tensor {
	if rng == nil {
		rng = NewRand(uint64(time.Now().UnixNano()))
	}

	t := New(rows, cols)
	for i := range t.data {
		t.data[i] = rng.Float32()*2 - 1
	}
	return t
}

// Full creates a tensor with every element set to value.
func Full(rows, cols int, value float32) *Tensor {
	t := New(rows, cols)
	for i := range t.data {
		t.data[i] = value
	}
	return t
}

// NewRand returns a deterministic generator for seed.
//
// The same seed always yields the same parameter initialization.
func NewRand(seed uint64) *rand.Rand {
	//nolint:gosec // G404: weight initialization is not security-sensitive
	return rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))
}
