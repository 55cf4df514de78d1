package pricing

import "math"

// TerminalPrices maps standard-normal draws to terminal asset prices under
// geometric Brownian motion:
//
//	S_T[i] = s0 * exp((drift - 0.5*sigma^2)*t + sigma*sqrt(t)*z[i])
//
// The drift is supplied by the caller (the risk-free rate for risk-neutral
// pricing), keeping the model reusable for physical-measure simulation.
// Pure and elementwise; GBM terminal prices are strictly positive for finite
// inputs, so no clamping is applied.
func TerminalPrices(s0, drift, sigma, t float64, z []float64) []float64 {
	driftTerm := (drift - 0.5*sigma*sigma) * t
	volTerm := sigma * math.Sqrt(t)

	st := make([]float64, len(z))
	for i, v := range z {
		st[i] = s0 * math.Exp(driftTerm+volTerm*v)
	}
	return st
}
