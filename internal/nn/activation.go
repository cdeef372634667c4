package nn

import (
	"math"
)

// sigmoid is the logistic function: f(x) = 1 / (1 + exp(-x)).
//
// It squashes the hidden layer's pre-activations into the range (0, 1).
func sigmoid(x float64) float64 {
	return 1.0 / (1.0 + math.Exp(-x))
}

// sigmoidDerivative computes the sigmoid's derivative from its output:
// given h = sigmoid(x), the derivative at x is h * (1 - h).
//
// Callers must pass the already-activated value, never the raw
// pre-activation. The forward pass keeps only activated hidden outputs,
// and backpropagation feeds those straight in.
func sigmoidDerivative(h float64) float64 {
	return h * (1.0 - h)
}

// applySigmoid adapts sigmoid to mat.Dense.Apply.
func applySigmoid(_, _ int, v float64) float64 {
	return sigmoid(v)
}

// applySigmoidDerivative adapts sigmoidDerivative to mat.Dense.Apply.
func applySigmoidDerivative(_, _ int, v float64) float64 {
	return sigmoidDerivative(v)
}
