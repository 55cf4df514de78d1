package pricing

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTerminalPricesFormula(t *testing.T) {
	s0, drift, sigma, maturity := 100.0, 0.05, 0.2, 1.0
	z := []float64{-2.5, -1.0, 0.0, 1.0, 2.5}

	st := TerminalPrices(s0, drift, sigma, maturity, z)
	require.Len(t, st, len(z))

	for i, v := range z {
		want := s0 * math.Exp((drift-0.5*sigma*sigma)*maturity+sigma*math.Sqrt(maturity)*v)
		assert.Equal(t, want, st[i])
	}
}

func TestTerminalPricesZeroDraw(t *testing.T) {
	// z = 0 isolates the deterministic drift component.
	st := TerminalPrices(100, 0.05, 0.2, 1.0, []float64{0})
	assert.InDelta(t, 100*math.Exp(0.05-0.5*0.04), st[0], 1e-12)
}

func TestTerminalPricesStrictlyPositive(t *testing.T) {
	// GBM never crosses zero, even for extreme draws.
	st := TerminalPrices(100, 0.0, 0.8, 2.0, []float64{-8, -6, -4, 4, 6, 8})
	for _, s := range st {
		assert.Greater(t, s, 0.0)
	}
}
