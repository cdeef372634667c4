package nn

import (
	"math"

	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/gonum/stat/distuv"
)

// ScaledNormal initialization for weights.
//
// Initializes weights with values drawn from a normal distribution with
// mean 0 and standard deviation fan_in^-0.5.
//
// Scaling the spread down by the incoming connection count keeps the
// hidden pre-activations inside the sigmoid's responsive range at the
// start of training.
//
// Parameters:
//   - fanIn: Number of input units feeding the matrix (the row count)
//   - fanOut: Number of output units (the column count)
//
// Returns a fanIn×fanOut matrix of sampled weights.
func ScaledNormal(fanIn, fanOut int) *mat.Dense {
	dist := distuv.Normal{
		Mu:    0,
		Sigma: math.Pow(float64(fanIn), -0.5),
	}

	data := make([]float64, fanIn*fanOut)
	for i := range data {
		data[i] = dist.Rand()
	}

	return mat.NewDense(fanIn, fanOut, data)
}
