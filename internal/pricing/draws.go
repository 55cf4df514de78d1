package pricing

import (
	"fmt"
	"math/rand/v2"
)

// seedStream is mixed into the PCG increment so that neighbouring seeds
// (0, 1, 2, ...) select well-separated streams.
const seedStream = 0x9e3779b97f4a7c15

// StandardNormals draws n independent standard-normal variates.
//
// A non-nil seed selects a dedicated PCG generator owned by this call: the
// same (n, seed) pair always yields the identical sequence, and concurrent
// seeded calls never share state. A nil seed falls back to the process-wide
// rand/v2 source, which is safe for concurrent use and is never reseeded
// here, so unseeded draws cannot perturb seeded ones.
func StandardNormals(n int, seed *uint64) ([]float64, error) {
	if n <= 0 {
		return nil, fmt.Errorf("%w: draw count must be positive, got %d", ErrInvalidContract, n)
	}

	z := make([]float64, n)
	if seed != nil {
		rng := rand.New(rand.NewPCG(*seed, *seed^seedStream))
		for i := range z {
			z[i] = rng.NormFloat64()
		}
		return z, nil
	}

	for i := range z {
		z[i] = rand.NormFloat64()
	}
	return z, nil
}

// mirror returns z followed by its negation, the antithetic pairing [Z, -Z].
func mirror(z []float64) []float64 {
	paired := make([]float64, 2*len(z))
	copy(paired, z)
	for i, v := range z {
		paired[len(z)+i] = -v
	}
	return paired
}
