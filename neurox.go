// Copyright 2025 Neurox ML Authors. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package neurox is a minimal feed-forward neural network toolkit.
//
// The functionality lives in the sub-packages:
//   - tensor: dense row-major float32 matrices and their algebra
//   - nn: activations, softmax, losses and the Dense layer
//   - optim: SGD and Adam
//   - model: sequential networks and the training loop
//   - data: CSV loading and train/test splitting
//
// This package exports the error kinds shared by all of them. Match them with
// errors.Is:
//
//	if _, err := m.Forward(x); errors.Is(err, neurox.ErrShapeMismatch) {
//	    // wrong input width
//	}
package neurox

import "github.com/neurox-ml/neurox/internal/errs"

// Error kinds.
var (
	// ErrShapeMismatch reports incompatible operand shapes.
	ErrShapeMismatch = errs.ErrShapeMismatch

	// ErrInvalidArgument reports out-of-domain arguments or malformed data.
	ErrInvalidArgument = errs.ErrInvalidArgument

	// ErrIO wraps reader and file system failures.
	ErrIO = errs.ErrIO

	// ErrIllegalState reports a layer driven out of order, such as Backward
	// without a preceding Forward.
	ErrIllegalState = errs.ErrIllegalState

	// ErrStateMismatch reports optimizer state that no longer fits the model.
	ErrStateMismatch = errs.ErrStateMismatch

	// ErrOther is the catch-all kind.
	ErrOther = errs.ErrOther
)

// Version is the library version.
const Version = "v0.1.0"
