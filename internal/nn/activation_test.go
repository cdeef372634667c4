package nn

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

// TestSigmoid tests the logistic function at known points.
func TestSigmoid(t *testing.T) {
	tests := []struct {
		name string
		x    float64
		want float64
	}{
		{name: "zero", x: 0.0, want: 0.5},
		{name: "one", x: 1.0, want: 0.7310585786300049},
		{name: "minus one", x: -1.0, want: 0.2689414213699951},
		{name: "two", x: 2.0, want: 0.8807970779778823},
		{name: "deeply negative saturates at zero", x: -40.0, want: 0.0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.InDelta(t, tt.want, sigmoid(tt.x), 1e-12)
		})
	}
}

// TestSigmoidSymmetry tests sigmoid(-x) = 1 - sigmoid(x).
func TestSigmoidSymmetry(t *testing.T) {
	for _, x := range []float64{0.1, 0.5, 1.0, 2.5, 7.0} {
		assert.InDelta(t, 1.0-sigmoid(x), sigmoid(-x), 1e-12, "x = %v", x)
	}
}

// TestSigmoidDerivative_PostActivation tests the derivative helper's
// contract: fed the activated output sigmoid(x), it matches the numerical
// derivative of sigmoid at x.
func TestSigmoidDerivative_PostActivation(t *testing.T) {
	const epsilon = 1e-6

	for _, x := range []float64{-3.0, -1.0, -0.25, 0.0, 0.5, 1.0, 2.0} {
		numerical := (sigmoid(x+epsilon) - sigmoid(x-epsilon)) / (2 * epsilon)
		assert.InDelta(t, numerical, sigmoidDerivative(sigmoid(x)), 1e-9, "x = %v", x)
	}
}

// TestSigmoidDerivative_PeaksAtHalf tests that the derivative is largest
// for an activated output of 0.5, where the sigmoid is steepest.
func TestSigmoidDerivative_PeaksAtHalf(t *testing.T) {
	assert.InDelta(t, 0.25, sigmoidDerivative(0.5), 1e-15)

	for _, h := range []float64{0.1, 0.3, 0.7, 0.9} {
		assert.Less(t, sigmoidDerivative(h), 0.25, "h = %v", h)
	}
}

// TestApplyAdapters tests that the mat.Dense.Apply adapters ignore the
// element indices and delegate to the scalar functions.
func TestApplyAdapters(t *testing.T) {
	assert.Equal(t, sigmoid(0.3), applySigmoid(4, 7, 0.3))
	assert.Equal(t, sigmoidDerivative(0.3), applySigmoidDerivative(2, 5, 0.3))
}
