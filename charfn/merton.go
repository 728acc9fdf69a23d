package charfn

import (
	"fmt"
	"math"
	"math/cmplx"
)

// Merton is the jump-diffusion characteristic function of X_T = log(S_T/S_0):
// a lognormal diffusion plus a compensated compound-Poisson stream of
// lognormal jumps with intensity λ, mean μ_J and volatility σ_J.
//
//	exponent(z) = izμT − ½z²σ²T + λT(exp(izμ_J − ½z²σ_J²) − 1)
//	μ = r − q − ½σ² − λ(exp(μ_J + ½σ_J²) − 1)
//
// The extra drift term compensates the expected jump so the discounted price
// process remains a martingale. With Lambda == 0 the model degenerates to BSM
// exactly.
type Merton struct {
	Rate     float64 // risk-free rate r
	Dividend float64 // continuous dividend yield q
	Sigma    float64 // diffusion volatility σ > 0
	Lambda   float64 // jump intensity λ ≥ 0 (jumps per year)
	JumpMean float64 // mean jump size μ_J (of log S)
	JumpVol  float64 // jump-size volatility σ_J ≥ 0
	Maturity float64 // time to maturity T in years, > 0
}

// NewMerton validates the parameters and returns the model.
func NewMerton(rate, dividend, sigma, lambda, jumpMean, jumpVol, maturity float64) (Merton, error) {
	m := Merton{
		Rate: rate, Dividend: dividend, Sigma: sigma,
		Lambda: lambda, JumpMean: jumpMean, JumpVol: jumpVol,
		Maturity: maturity,
	}
	if !(maturity > 0) || math.IsInf(maturity, 1) {
		return Merton{}, fmt.Errorf("%w: got T=%v", ErrMaturity, maturity)
	}
	if !(sigma > 0) {
		return Merton{}, fmt.Errorf("%w: got sigma=%v", ErrVolatility, sigma)
	}
	if lambda < 0 || math.IsNaN(lambda) {
		return Merton{}, fmt.Errorf("%w: got lambda=%v", ErrJumpIntensity, lambda)
	}
	if jumpVol < 0 || math.IsNaN(jumpVol) {
		return Merton{}, fmt.Errorf("%w: got jumpVol=%v", ErrJumpVolatility, jumpVol)
	}
	return m, nil
}

// JumpCompensator returns κ = E[e^J] − 1 = exp(μ_J + ½σ_J²) − 1, the expected
// relative jump size the drift must pay back.
func (m Merton) JumpCompensator() float64 {
	return math.Exp(m.JumpMean+0.5*m.JumpVol*m.JumpVol) - 1
}

// Drift returns the compensated risk-neutral drift of the log-return.
func (m Merton) Drift() float64 {
	return m.Rate - m.Dividend - 0.5*m.Sigma*m.Sigma - m.Lambda*m.JumpCompensator()
}

// Evaluate returns E[exp(izX_T)].
func (m Merton) Evaluate(z complex128) complex128 {
	t := complex(m.Maturity, 0)
	s2 := complex(m.Sigma*m.Sigma, 0)
	j2 := complex(m.JumpVol*m.JumpVol, 0)

	exponent := 1i*z*complex(m.Drift(), 0)*t - 0.5*z*z*s2*t
	if m.Lambda > 0 {
		jump := cmplx.Exp(1i*z*complex(m.JumpMean, 0)-0.5*z*z*j2) - 1
		exponent += complex(m.Lambda, 0) * t * jump
	}
	return cmplx.Exp(exponent)
}
