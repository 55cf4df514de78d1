package pricing

import (
	"math"

	"gonum.org/v1/gonum/stat/distuv"
)

var stdNormal = distuv.Normal{Mu: 0, Sigma: 1}

// AnalyticCallPrice returns the closed-form Black-Scholes call price. It is
// the engine's ground truth for benchmarking estimators and is never fed back
// into estimation.
func AnalyticCallPrice(c Contract) (float64, error) {
	if err := c.Validate(); err != nil {
		return 0, err
	}
	d1, d2 := dValues(c)
	return c.Spot*stdNormal.CDF(d1) - c.Strike*math.Exp(-c.Rate*c.Maturity)*stdNormal.CDF(d2), nil
}

// AnalyticPutPrice returns the closed-form Black-Scholes put price.
func AnalyticPutPrice(c Contract) (float64, error) {
	if err := c.Validate(); err != nil {
		return 0, err
	}
	d1, d2 := dValues(c)
	return c.Strike*math.Exp(-c.Rate*c.Maturity)*stdNormal.CDF(-d2) - c.Spot*stdNormal.CDF(-d1), nil
}

// AnalyticPrice dispatches on the option type.
func AnalyticPrice(t OptionType, c Contract) (float64, error) {
	if t == Put {
		return AnalyticPutPrice(c)
	}
	return AnalyticCallPrice(c)
}

func dValues(c Contract) (d1, d2 float64) {
	volSqrtT := c.Sigma * math.Sqrt(c.Maturity)
	d1 = (math.Log(c.Spot/c.Strike) + (c.Rate+0.5*c.Sigma*c.Sigma)*c.Maturity) / volSqrtT
	return d1, d1 - volSqrtT
}
