// Copyright 2026 PedalNet Authors. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package nn provides a minimal two-layer neural network for tabular
// regression, built for predicting hourly bike-sharing demand.
//
// # Overview
//
// This package contains:
//   - NeuralNetwork: a sigmoid-hidden, linear-output network trained with
//     full-batch gradient descent
//   - ScaledNormal: fan-in scaled normal weight initialization
//   - Hyperparameters: Iterations, LearningRate, HiddenNodes, OutputNodes
//     tuned for the bike-sharing dataset
//
// # Basic Usage
//
//	import (
//	    "gonum.org/v1/gonum/mat"
//
//	    "github.com/pedal-ml/pedalnet/nn"
//	)
//
//	func main() {
//	    // One row per record, one column per feature.
//	    features := mat.NewDense(nRecords, nFeatures, featureData)
//	    targets := mat.NewDense(nRecords, nn.OutputNodes, demandData)
//
//	    net := nn.New(nFeatures, nn.HiddenNodes, nn.OutputNodes, nn.LearningRate)
//	    for i := 0; i < nn.Iterations; i++ {
//	        net.Train(features, targets)
//	    }
//
//	    predictions := net.Run(features)
//	}
//
// # Training
//
// Train performs one full-batch gradient descent step: it accumulates every
// record's gradient contribution into shared delta matrices and then updates
// both weight matrices once with the batch average. Run is pure inference
// and reuses the same forward pass.
//
// # Shapes
//
// Matrices are gonum mat.Dense values. Feature rows must have one column
// per input node and target rows one column per output node; mismatched
// shapes panic inside the matrix operations.
package nn
