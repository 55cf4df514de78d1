package pricing

import (
	"errors"
	"fmt"
	"strings"
)

var (
	// ErrInvalidContract marks contract or request parameters that violate
	// the model's domain (non-positive spot, strike, volatility, maturity,
	// or path count).
	ErrInvalidContract = errors.New("pricing: invalid contract")

	// ErrInvalidRequest marks structurally invalid requests, such as an odd
	// path count for the antithetic estimator or an unknown method label.
	ErrInvalidRequest = errors.New("pricing: invalid request")
)

// Contract describes a European option under Black-Scholes-Merton.
// Contracts are immutable value types; construct one per pricing request.
type Contract struct {
	Spot     float64 // S0, current price of the underlying
	Strike   float64 // K
	Rate     float64 // r, continuously compounded risk-free rate (may be zero or negative)
	Sigma    float64 // annualised volatility
	Maturity float64 // T, time to expiry in years
}

// Validate reports the first domain violation, naming the offending parameter.
func (c Contract) Validate() error {
	switch {
	case !(c.Spot > 0):
		return fmt.Errorf("%w: spot must be positive, got %g", ErrInvalidContract, c.Spot)
	case !(c.Strike > 0):
		return fmt.Errorf("%w: strike must be positive, got %g", ErrInvalidContract, c.Strike)
	case !(c.Sigma > 0):
		return fmt.Errorf("%w: sigma must be positive, got %g", ErrInvalidContract, c.Sigma)
	case !(c.Maturity > 0):
		return fmt.Errorf("%w: maturity must be positive, got %g", ErrInvalidContract, c.Maturity)
	}
	return nil
}

// OptionType selects the payoff side of a contract.
type OptionType int

const (
	Call OptionType = iota
	Put
)

// String renders the option type label used in config and CLI flags.
func (t OptionType) String() string {
	switch t {
	case Call:
		return "call"
	case Put:
		return "put"
	default:
		return fmt.Sprintf("optiontype(%d)", int(t))
	}
}

// ParseOptionType maps a label to its OptionType.
func ParseOptionType(s string) (OptionType, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "call", "c":
		return Call, nil
	case "put", "p":
		return Put, nil
	}
	return Call, fmt.Errorf("%w: unknown option type %q", ErrInvalidRequest, s)
}

// Request carries everything a single estimator invocation needs. Seed is
// optional; nil means non-reproducible entropy-backed draws.
type Request struct {
	Contract Contract
	Type     OptionType
	Paths    int
	Seed     *uint64
}

// Validate checks the request against estimator preconditions shared by all
// methods. Method-specific constraints (antithetic parity) live with the
// estimator.
func (r Request) Validate() error {
	if err := r.Contract.Validate(); err != nil {
		return err
	}
	if r.Paths <= 0 {
		return fmt.Errorf("%w: paths must be positive, got %d", ErrInvalidContract, r.Paths)
	}
	return nil
}
