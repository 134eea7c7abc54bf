// Copyright 2025 Neurox ML Authors. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package data loads tensors from CSV and prepares training splits.
//
// Example:
//
//	grid, err := data.LoadCSV("iris.csv")
//	if err != nil {
//	    return err
//	}
//	x, labels, err := data.SplitFeaturesLabels(grid, 1)
//	y, err := data.LabelsToOneHot(labels, 3)
//	trainX, testX, err := data.TrainTestSplit(x, 0.8)
package data

import (
	"io"

	"github.com/neurox-ml/neurox/internal/data"
	"github.com/neurox-ml/neurox/internal/tensor"
)

// LoadCSV reads a headerless float grid from path.
func LoadCSV(path string) (*tensor.Tensor, error) {
	return data.LoadCSV(path)
}

// ReadCSV reads a headerless float grid. Blank lines are skipped and
// unparsable fields become 0.
func ReadCSV(r io.Reader) (*tensor.Tensor, error) {
	return data.ReadCSV(r)
}

// TrainTestSplit puts the first round(rows*ratio) rows in train and the rest
// in test. ratio must be in (0, 1).
func TrainTestSplit(t *tensor.Tensor, ratio float32) (train, test *tensor.Tensor, err error) {
	return data.TrainTestSplit(t, ratio)
}

// SplitFeaturesLabels separates the trailing labelCols columns.
func SplitFeaturesLabels(t *tensor.Tensor, labelCols int) (features, labels *tensor.Tensor, err error) {
	return data.SplitFeaturesLabels(t, labelCols)
}

// OneHot encodes class indices.
func OneHot(labels []int, classes int) (*tensor.Tensor, error) {
	return data.OneHot(labels, classes)
}

// LabelsToOneHot encodes an Nx1 column of class indices.
func LabelsToOneHot(column *tensor.Tensor, classes int) (*tensor.Tensor, error) {
	return data.LabelsToOneHot(column, classes)
}

// XOR returns the four-sample XOR dataset with one-hot targets.
func XOR() (inputs, targets *tensor.Tensor) {
	return data.XOR()
}
