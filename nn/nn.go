// Copyright 2026 PedalNet Authors. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

package nn

import (
	"gonum.org/v1/gonum/mat"

	"github.com/pedal-ml/pedalnet/internal/nn"
)

// NeuralNetwork is a two-layer feed-forward network (sigmoid hidden layer,
// linear output) trained with full-batch gradient descent.
type NeuralNetwork = nn.NeuralNetwork

// New creates a new NeuralNetwork with randomly initialized weights.
//
// Example:
//
//	net := nn.New(56, nn.HiddenNodes, nn.OutputNodes, nn.LearningRate)
func New(inputNodes, hiddenNodes, outputNodes int, learningRate float64) *NeuralNetwork {
	return nn.New(inputNodes, hiddenNodes, outputNodes, learningRate)
}

// Initialization functions

// ScaledNormal initializes a fanIn×fanOut weight matrix with values drawn
// from a normal distribution with mean 0 and standard deviation fanIn^-0.5.
//
// Example:
//
//	weights := nn.ScaledNormal(56, 10)
func ScaledNormal(fanIn, fanOut int) *mat.Dense {
	return nn.ScaledNormal(fanIn, fanOut)
}
