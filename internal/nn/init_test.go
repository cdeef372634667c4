package nn

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/stat"
)

// TestScaledNormal_Shape tests the sampled matrix dimensions.
func TestScaledNormal_Shape(t *testing.T) {
	w := ScaledNormal(3, 7)

	rows, cols := w.Dims()
	assert.Equal(t, 3, rows)
	assert.Equal(t, 7, cols)
}

// TestScaledNormal_Moments tests that a large sample has mean near 0 and
// standard deviation near fanIn^-0.5.
func TestScaledNormal_Moments(t *testing.T) {
	const fanIn = 64
	w := ScaledNormal(fanIn, 1000)

	data := w.RawMatrix().Data
	require.Len(t, data, fanIn*1000)

	mean := stat.Mean(data, nil)
	stddev := stat.StdDev(data, nil)

	assert.InDelta(t, 0.0, mean, 0.005)
	assert.InDelta(t, math.Pow(fanIn, -0.5), stddev, 0.005)
}

// TestScaledNormal_Distinct tests that samples are finite and not constant.
func TestScaledNormal_Distinct(t *testing.T) {
	w := ScaledNormal(10, 10)

	distinct := false
	data := w.RawMatrix().Data
	for i, v := range data {
		require.False(t, math.IsNaN(v) || math.IsInf(v, 0), "sample at index %d is %v", i, v)
		if v != data[0] {
			distinct = true
		}
	}
	assert.True(t, distinct, "samples should not all be equal")
}
