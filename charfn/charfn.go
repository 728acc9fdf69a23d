package charfn

import "errors"

var (
	// ErrMaturity indicates a non-positive or non-finite maturity.
	ErrMaturity = errors.New("charfn: maturity must be strictly positive")

	// ErrVolatility indicates a non-positive diffusion volatility.
	ErrVolatility = errors.New("charfn: volatility must be strictly positive")

	// ErrJumpIntensity indicates a negative jump intensity.
	ErrJumpIntensity = errors.New("charfn: jump intensity must be non-negative")

	// ErrJumpVolatility indicates a negative jump-size volatility.
	ErrJumpVolatility = errors.New("charfn: jump volatility must be non-negative")

	// ErrVariance indicates a non-positive variance parameter (v0 or theta).
	ErrVariance = errors.New("charfn: variance parameters must be strictly positive")

	// ErrMeanReversion indicates a non-positive mean-reversion speed.
	ErrMeanReversion = errors.New("charfn: mean-reversion speed must be strictly positive")

	// ErrVolOfVol indicates a non-positive volatility of variance.
	ErrVolOfVol = errors.New("charfn: vol-of-vol must be strictly positive")

	// ErrCorrelation indicates a correlation outside [-1, 1].
	ErrCorrelation = errors.New("charfn: correlation must lie in [-1, 1]")
)

// Model is the characteristic function of the log-return at maturity:
// Evaluate(z) = E[exp(i·z·X_T)] under the risk-neutral measure, admitting
// complex z (the pricer shifts the argument by i·alpha for damping).
//
// Implementations are pure value types: Evaluate holds no state and is safe
// for concurrent use.
type Model interface {
	Evaluate(z complex128) complex128
}

// Sample evaluates m along the real frequency axis xi shifted by the damping
// factor: out[k] = m.Evaluate(complex(xi[k], alpha)).
//
// alpha=0 samples the plain characteristic function (used for density
// recovery); a damped payoff with exponent alpha pairs with the same shift
// here, which is what makes the Plancherel pricing identity hold.
//
// Complexity: O(len(xi)) model evaluations; no allocation beyond the result.
func Sample(m Model, xi []float64, alpha float64) []complex128 {
	out := make([]complex128, len(xi))
	for k, f := range xi {
		out[k] = m.Evaluate(complex(f, alpha))
	}
	return out
}
