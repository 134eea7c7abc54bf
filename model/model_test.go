// Copyright 2025 Neurox ML Authors. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

package model_test

import (
	"testing"

	"github.com/neurox-ml/neurox/data"
	"github.com/neurox-ml/neurox/model"
	"github.com/neurox-ml/neurox/nn"
	"github.com/neurox-ml/neurox/optim"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestXORWithFacades(t *testing.T) {
	x, y := data.XOR()

	m, err := model.New([]int{2, 6, 2}, nn.Tanh, model.WithSeed(21))
	require.NoError(t, err)

	before, _, err := m.Evaluate(x, y)
	require.NoError(t, err)

	history, err := m.Fit(x, y, optim.NewAdam(m.Layers(), optim.AdamConfig{LR: 0.1}),
		model.FitConfig{Epochs: 200, BatchSize: 4})
	require.NoError(t, err)
	require.Len(t, history, 200)

	after, _, err := m.Evaluate(x, y)
	require.NoError(t, err)
	assert.Less(t, after, before)
}
