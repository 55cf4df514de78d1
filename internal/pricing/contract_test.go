package pricing

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestContractValidate(t *testing.T) {
	cases := []struct {
		name   string
		mutate func(*Contract)
	}{
		{"zero spot", func(c *Contract) { c.Spot = 0 }},
		{"negative spot", func(c *Contract) { c.Spot = -1 }},
		{"zero strike", func(c *Contract) { c.Strike = 0 }},
		{"zero sigma", func(c *Contract) { c.Sigma = 0 }},
		{"negative sigma", func(c *Contract) { c.Sigma = -0.2 }},
		{"zero maturity", func(c *Contract) { c.Maturity = 0 }},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			c := atmContract()
			tc.mutate(&c)
			require.ErrorIs(t, c.Validate(), ErrInvalidContract)
		})
	}
}

func TestContractValidateAcceptsZeroAndNegativeRate(t *testing.T) {
	c := atmContract()
	c.Rate = 0
	require.NoError(t, c.Validate())

	c.Rate = -0.02
	require.NoError(t, c.Validate())
}

func TestRequestValidate(t *testing.T) {
	req := Request{Contract: atmContract(), Paths: 0}
	require.ErrorIs(t, req.Validate(), ErrInvalidContract)

	req.Paths = 1000
	require.NoError(t, req.Validate())
}

func TestParseOptionType(t *testing.T) {
	for label, want := range map[string]OptionType{"call": Call, "Put": Put, " c ": Call, "P": Put} {
		got, err := ParseOptionType(label)
		require.NoError(t, err)
		assert.Equal(t, want, got, "label %q", label)
	}

	_, err := ParseOptionType("straddle")
	require.ErrorIs(t, err, ErrInvalidRequest)
}

func TestParseMethod(t *testing.T) {
	for label, want := range map[string]Method{
		"plain":           MethodPlain,
		"antithetic":      MethodAntithetic,
		"cv":              MethodControlVariate,
		"Control-Variate": MethodControlVariate,
	} {
		got, err := ParseMethod(label)
		require.NoError(t, err)
		assert.Equal(t, want, got, "label %q", label)
	}

	_, err := ParseMethod("quasi")
	require.ErrorIs(t, err, ErrInvalidRequest)
}
