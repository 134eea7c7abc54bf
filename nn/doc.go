// Copyright 2025 Neurox ML Authors. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package nn provides the Dense layer, activations and loss functions.
//
// # Overview
//
// This package contains:
//   - Dense: fully connected layer with explicit forward/backward lifecycle
//   - Activations: Identity, ReLU, Sigmoid, Tanh, plus Softmax
//   - Loss functions: MSELoss, CrossEntropyLoss
//
// # Layer lifecycle
//
// Forward caches its input and pre-activation. Backward consumes that cache,
// stores weight and bias gradients and returns the gradient for the previous
// layer. Calling Backward without a pending Forward returns an error matching
// neurox.ErrIllegalState. ApplyGradients (or an optimizer step) consumes the
// stored gradients.
//
//	layer := nn.NewDense(2, 3, nn.ReLU, tensor.NewRand(42))
//
//	out, err := layer.Forward(x)
//	if err != nil {
//	    return err
//	}
//	_, grad, _ := nn.MSELoss(out, y)
//	if _, err := layer.Backward(grad); err != nil {
//	    return err
//	}
//	err = layer.ApplyGradients(0.1)
//
// # Losses
//
// MSELoss averages over batch rows. CrossEntropyLoss expects softmax
// probabilities, sums the loss over the batch and averages the gradient over
// rows; this pairing is what the training loop relies on.
package nn
