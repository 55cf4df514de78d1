package stats

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConfidenceIntervalRejectsSmallSamples(t *testing.T) {
	_, err := ConfidenceInterval(nil, DefaultAlpha)
	require.ErrorIs(t, err, ErrInsufficientSamples)

	_, err = ConfidenceInterval([]float64{10.45}, DefaultAlpha)
	require.ErrorIs(t, err, ErrInsufficientSamples)
}

func TestConfidenceIntervalRejectsInvalidAlpha(t *testing.T) {
	samples := []float64{1, 2, 3}
	for _, alpha := range []float64{0, 1, -0.1, 1.5, math.NaN()} {
		_, err := ConfidenceInterval(samples, alpha)
		require.Error(t, err, "alpha %v", alpha)
	}
}

func TestConfidenceIntervalIdenticalSamplesCollapse(t *testing.T) {
	interval, err := ConfidenceInterval([]float64{10.45, 10.45}, DefaultAlpha)
	require.NoError(t, err)

	assert.Equal(t, 10.45, interval.Mean)
	assert.Equal(t, interval.Mean, interval.Lower)
	assert.Equal(t, interval.Mean, interval.Upper)
	assert.Zero(t, interval.Width())
}

func TestConfidenceIntervalKnownValues(t *testing.T) {
	// mean 3, sd sqrt(2.5); margin = z_{0.975} * sd / sqrt(5) with the exact
	// quantile 1.9599640.
	interval, err := ConfidenceInterval([]float64{1, 2, 3, 4, 5}, 0.05)
	require.NoError(t, err)

	margin := 1.9599640 * math.Sqrt(2.5) / math.Sqrt(5)
	assert.InDelta(t, 3.0, interval.Mean, 1e-12)
	assert.InDelta(t, 3.0-margin, interval.Lower, 1e-5)
	assert.InDelta(t, 3.0+margin, interval.Upper, 1e-5)
}

func TestConfidenceIntervalOrdering(t *testing.T) {
	samples := []float64{10.41, 10.47, 10.44, 10.52, 10.39, 10.46}
	for _, alpha := range []float64{0.01, 0.05, 0.10, 0.32} {
		interval, err := ConfidenceInterval(samples, alpha)
		require.NoError(t, err)

		assert.LessOrEqual(t, interval.Lower, interval.Mean, "alpha %v", alpha)
		assert.LessOrEqual(t, interval.Mean, interval.Upper, "alpha %v", alpha)
	}
}

func TestConfidenceIntervalTightensWithAlpha(t *testing.T) {
	samples := []float64{9.8, 10.1, 10.6, 10.3, 10.0}

	wide, err := ConfidenceInterval(samples, 0.01)
	require.NoError(t, err)
	narrow, err := ConfidenceInterval(samples, 0.20)
	require.NoError(t, err)

	assert.Less(t, narrow.Width(), wide.Width())
}

func TestVariance(t *testing.T) {
	assert.True(t, math.IsNaN(Variance(nil)))
	assert.True(t, math.IsNaN(Variance([]float64{1})))
	assert.InDelta(t, 2.0, Variance([]float64{1, 3}), 1e-12)
}
