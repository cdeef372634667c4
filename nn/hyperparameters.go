// Copyright 2026 PedalNet Authors. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

package nn

// Training hyperparameters tuned for the hourly bike-sharing demand
// dataset. The network does not read these itself; the training loop
// passes them to New and drives Train for Iterations steps. The input
// layer width comes from the dataset's feature count.
const (
	// Iterations is the number of full-batch gradient steps.
	Iterations = 2000

	// LearningRate is the step scale passed to New. Distinct from the
	// NeuralNetwork field of the same name, which holds the live value.
	LearningRate = 1.1

	// HiddenNodes is the hidden layer width.
	HiddenNodes = 10

	// OutputNodes is the output layer width: one predicted demand value.
	OutputNodes = 1
)
