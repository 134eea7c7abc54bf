// Copyright 2025 Neurox ML Authors. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package optim provides optimization algorithms for Dense layer stacks.
//
// # Overview
//
// This package contains:
//   - SGD: gradient descent, optionally with momentum
//   - Adam: Adaptive Moment Estimation with bias correction
//   - Optimizer interface for custom optimizers
//
// An optimizer step consumes the gradients each layer stored during its last
// Backward call. Layers without gradients are left untouched.
//
// # Basic Usage
//
//	m, _ := model.New([]int{2, 6, 2}, nn.ReLU, model.WithSeed(1))
//	opt := optim.NewAdam(m.Layers(), optim.AdamConfig{LR: 0.01})
//
//	history, err := m.Fit(x, y, opt, model.FitConfig{Epochs: 100, BatchSize: 4})
//
// # Adam and architecture
//
// Adam sizes its moment buffers for the layers it was created with. Stepping
// a different layer stack fails with neurox.ErrStateMismatch and changes
// nothing.
package optim
