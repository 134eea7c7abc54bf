// Copyright 2025 Neurox ML Authors. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package tensor provides the public API for dense float32 matrices.
//
// A Tensor stores rows x cols values in row-major order. Every operation
// returns a new tensor; shape errors are returned, index errors panic.
//
// Example:
//
//	a := tensor.MustFromSlice([]float32{1, 2, 3, 4}, 2, 2)
//	b := tensor.MustFromSlice([]float32{5, 6, 7, 8}, 2, 2)
//	c, err := a.MatMul(b) // [[19, 22], [43, 50]]
package tensor

import (
	"math/rand/v2"

	"github.com/neurox-ml/neurox/internal/parallel"
	"github.com/neurox-ml/neurox/internal/tensor"
)

// Tensor is a 2-D float32 matrix.
type Tensor = tensor.Tensor

// ParallelConfig controls how MatMul distributes output rows across goroutines.
type ParallelConfig = parallel.Config

// New creates a zero-filled rows x cols tensor.
func New(rows, cols int) *Tensor {
	return tensor.New(rows, cols)
}

// Zeros is an alias of New.
func Zeros(rows, cols int) *Tensor {
	return tensor.Zeros(rows, cols)
}

// FromSlice copies data into a rows x cols tensor.
// It fails with neurox.ErrShapeMismatch if len(data) != rows*cols.
func FromSlice(data []float32, rows, cols int) (*Tensor, error) {
	return tensor.FromSlice(data, rows, cols)
}

// MustFromSlice is like FromSlice but panics on error.
func MustFromSlice(data []float32, rows, cols int) *Tensor {
	return tensor.MustFromSlice(data, rows, cols)
}

// Full creates a tensor with every element set to value.
func Full(rows, cols int, value float32) *Tensor {
	return tensor.Full(rows, cols, value)
}

// Random creates a tensor with entries uniform in [-1, 1) drawn from rng.
// A nil rng uses a time-seeded source.
func Random(rows, cols int, rng *rand.Rand) *Tensor {
	return tensor.Random(rows, cols, rng)
}

// NewRand returns a deterministic generator for seed.
func NewRand(seed uint64) *rand.Rand {
	return tensor.NewRand(seed)
}

// DefaultParallelConfig returns the configuration MatMul starts with.
func DefaultParallelConfig() ParallelConfig {
	return parallel.DefaultConfig()
}

// SetParallelConfig replaces the MatMul parallelism settings.
// Results are identical with any setting.
func SetParallelConfig(cfg ParallelConfig) {
	tensor.SetParallelConfig(cfg)
}
