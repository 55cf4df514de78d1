package pricing

import "math"

// CallPayoff returns max(st[i]-strike, 0) for every terminal price.
func CallPayoff(st []float64, strike float64) []float64 {
	out := make([]float64, len(st))
	for i, s := range st {
		out[i] = math.Max(s-strike, 0)
	}
	return out
}

// PutPayoff returns max(strike-st[i], 0) for every terminal price.
func PutPayoff(st []float64, strike float64) []float64 {
	out := make([]float64, len(st))
	for i, s := range st {
		out[i] = math.Max(strike-s, 0)
	}
	return out
}

// Discount applies continuous discounting over maturity t at rate r.
func Discount(value, r, t float64) float64 {
	return value * math.Exp(-r*t)
}

func payoff(t OptionType, st []float64, strike float64) []float64 {
	if t == Put {
		return PutPayoff(st, strike)
	}
	return CallPayoff(st, strike)
}
