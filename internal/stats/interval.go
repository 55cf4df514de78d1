// Package stats quantifies estimator precision over repeated seeded runs.
package stats

import (
	"errors"
	"fmt"
	"math"

	"gonum.org/v1/gonum/stat"
	"gonum.org/v1/gonum/stat/distuv"
)

// ErrInsufficientSamples is returned when fewer than two samples are supplied;
// the unbiased standard deviation needs at least two points.
var ErrInsufficientSamples = errors.New("stats: at least two samples required")

// DefaultAlpha is the two-sided significance level used when callers have no
// opinion (95% confidence).
const DefaultAlpha = 0.05

var stdNormal = distuv.Normal{Mu: 0, Sigma: 1}

// Interval is a two-sided confidence interval around a sample mean.
// Lower <= Mean <= Upper holds for every valid input.
type Interval struct {
	Mean  float64
	Lower float64
	Upper float64
}

// Width returns the full span of the interval.
func (i Interval) Width() float64 {
	return i.Upper - i.Lower
}

// ConfidenceInterval computes the sample mean and a two-sided interval at
// significance alpha. The standard deviation is the unbiased (n-1) estimate
// and the critical value is the exact normal quantile z = Phi^-1(1-alpha/2),
// not the rounded 1.96 constant, so the interval stays correct for any alpha.
func ConfidenceInterval(samples []float64, alpha float64) (Interval, error) {
	if len(samples) < 2 {
		return Interval{}, fmt.Errorf("%w: got %d", ErrInsufficientSamples, len(samples))
	}
	if !(alpha > 0 && alpha < 1) {
		return Interval{}, fmt.Errorf("stats: alpha must lie in (0,1), got %g", alpha)
	}

	mean := stat.Mean(samples, nil)
	sd := stat.StdDev(samples, nil)

	z := stdNormal.Quantile(1 - alpha/2)
	margin := z * sd / math.Sqrt(float64(len(samples)))

	return Interval{Mean: mean, Lower: mean - margin, Upper: mean + margin}, nil
}

// Variance returns the unbiased sample variance, or NaN for fewer than two
// samples.
func Variance(samples []float64) float64 {
	if len(samples) < 2 {
		return math.NaN()
	}
	return stat.Variance(samples, nil)
}
