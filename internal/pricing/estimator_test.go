package pricing

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/stat"
)

func seeded(s uint64) *uint64 { return &s }

func TestEstimatorsSeededDeterminism(t *testing.T) {
	for _, m := range Methods() {
		req := Request{Contract: atmContract(), Paths: 10000, Seed: seeded(123)}

		first, err := Estimate(m, req)
		require.NoError(t, err)
		second, err := Estimate(m, req)
		require.NoError(t, err)

		assert.Equal(t, first, second, "method %s must be bit-identical for a fixed seed", m)
	}
}

func TestPricePlainConvergesToAnalytic(t *testing.T) {
	analytic, err := AnalyticCallPrice(atmContract())
	require.NoError(t, err)

	estimate, err := PricePlain(Request{Contract: atmContract(), Paths: 400000, Seed: seeded(123)})
	require.NoError(t, err)

	assert.InDelta(t, analytic, estimate, 0.1)
}

func TestPricePlainPut(t *testing.T) {
	analytic, err := AnalyticPutPrice(atmContract())
	require.NoError(t, err)

	estimate, err := PricePlain(Request{Contract: atmContract(), Type: Put, Paths: 400000, Seed: seeded(123)})
	require.NoError(t, err)

	assert.InDelta(t, analytic, estimate, 0.1)
}

func TestPriceAntitheticRejectsOddPaths(t *testing.T) {
	_, err := PriceAntithetic(Request{Contract: atmContract(), Paths: 10001, Seed: seeded(1)})
	require.ErrorIs(t, err, ErrInvalidRequest)
}

func TestPriceAntitheticMirrorsOneHalfDraw(t *testing.T) {
	// With two paths the estimator must use a single draw z and its negation,
	// never a second independent draw.
	c := atmContract()
	seed := uint64(55)

	z, err := StandardNormals(1, &seed)
	require.NoError(t, err)

	st := TerminalPrices(c.Spot, c.Rate, c.Sigma, c.Maturity, []float64{z[0], -z[0]})
	want := Discount((math.Max(st[0]-c.Strike, 0)+math.Max(st[1]-c.Strike, 0))/2, c.Rate, c.Maturity)

	got, err := PriceAntithetic(Request{Contract: c, Paths: 2, Seed: &seed})
	require.NoError(t, err)
	assert.InDelta(t, want, got, 1e-12)
}

func TestVarianceReductionAtEqualBudget(t *testing.T) {
	const (
		runs  = 50
		paths = 20000
	)

	estimates := map[Method][]float64{}
	for _, m := range Methods() {
		samples := make([]float64, runs)
		for i := 0; i < runs; i++ {
			req := Request{Contract: atmContract(), Paths: paths, Seed: seeded(uint64(i))}
			est, err := Estimate(m, req)
			require.NoError(t, err)
			samples[i] = est
		}
		estimates[m] = samples
	}

	plainVar := stat.Variance(estimates[MethodPlain], nil)
	antiVar := stat.Variance(estimates[MethodAntithetic], nil)
	cvVar := stat.Variance(estimates[MethodControlVariate], nil)

	assert.LessOrEqual(t, antiVar, plainVar, "antithetic variates must not increase variance for a monotonic payoff")
	assert.LessOrEqual(t, cvVar, plainVar, "control variate must not increase variance")
}

func TestPriceControlVariateCloseToAnalytic(t *testing.T) {
	analytic, err := AnalyticCallPrice(atmContract())
	require.NoError(t, err)

	estimate, err := PriceControlVariate(Request{Contract: atmContract(), Paths: 200000, Seed: seeded(7)})
	require.NoError(t, err)

	assert.InDelta(t, analytic, estimate, 0.08)
}

func TestPriceControlVariateDegenerateVolatility(t *testing.T) {
	// With near-zero volatility every path lands on the forward and the
	// payoff is exactly linear in the terminal price, so the control removes
	// all variance: the estimate collapses onto S0 - K*exp(-rT).
	c := atmContract()
	c.Sigma = 1e-9

	estimate, err := PriceControlVariate(Request{Contract: c, Paths: 1000, Seed: seeded(3)})
	require.NoError(t, err)
	require.False(t, math.IsNaN(estimate))
	require.False(t, math.IsInf(estimate, 0))

	assert.InDelta(t, c.Spot-c.Strike*math.Exp(-c.Rate*c.Maturity), estimate, 1e-6)
}

func TestPriceControlVariateSinglePathFallsBackToPlain(t *testing.T) {
	// One path cannot support a sample covariance; beta must silently drop
	// to zero instead of dividing by zero.
	seed := seeded(11)

	cv, err := PriceControlVariate(Request{Contract: atmContract(), Paths: 1, Seed: seed})
	require.NoError(t, err)
	plain, err := PricePlain(Request{Contract: atmContract(), Paths: 1, Seed: seed})
	require.NoError(t, err)

	assert.Equal(t, plain, cv)
}

func TestEstimatorsRejectInvalidParameters(t *testing.T) {
	bad := atmContract()
	bad.Maturity = -1

	for _, m := range Methods() {
		_, err := Estimate(m, Request{Contract: bad, Paths: 100, Seed: seeded(1)})
		require.ErrorIs(t, err, ErrInvalidContract, "method %s", m)

		_, err = Estimate(m, Request{Contract: atmContract(), Paths: -4, Seed: seeded(1)})
		require.ErrorIs(t, err, ErrInvalidContract, "method %s", m)
	}
}

func TestEstimateUnknownMethod(t *testing.T) {
	_, err := Estimate(Method(42), Request{Contract: atmContract(), Paths: 100})
	require.ErrorIs(t, err, ErrInvalidRequest)
}
