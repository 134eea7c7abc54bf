// Copyright 2025 Neurox ML Authors. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package model builds sequential networks of Dense layers and trains them
// with softmax cross-entropy.
//
// Example:
//
//	m, err := model.New([]int{2, 6, 2}, nn.ReLU, model.WithSeed(42))
//	if err != nil {
//	    return err
//	}
//	if err := m.TrainSGD(x, y, 600, 4, 0.1); err != nil {
//	    return err
//	}
//	classes, err := m.Predict(x)
package model

import (
	"log/slog"
	"math/rand/v2"

	"github.com/neurox-ml/neurox/internal/model"
	"github.com/neurox-ml/neurox/internal/nn"
)

// Model is an ordered stack of Dense layers.
type Model = model.Model

// LayerShape describes one layer of a Model.
type LayerShape = model.LayerShape

// FitConfig controls Model.Fit.
type FitConfig = model.FitConfig

// Option configures New.
type Option = model.Option

// New builds a model from layer widths, e.g. [784, 128, 10]. Every layer,
// including the output layer, uses act.
func New(widths []int, act nn.Activation, opts ...Option) (*Model, error) {
	return model.New(widths, act, opts...)
}

// WithSeed makes parameter initialization reproducible.
func WithSeed(seed uint64) Option {
	return model.WithSeed(seed)
}

// WithRand draws initial parameters from rng.
func WithRand(rng *rand.Rand) Option {
	return model.WithRand(rng)
}

// WithLogger receives per-epoch training progress at debug level.
func WithLogger(logger *slog.Logger) Option {
	return model.WithLogger(logger)
}
