package charfn

import (
	"fmt"
	"math"
	"math/cmplx"
)

// BSM is the lognormal-diffusion (Black–Scholes–Merton) characteristic
// function of X_T = log(S_T/S_0):
//
//	E[exp(izX_T)] = exp(izμT − ½z²σ²T),  μ = r − q − ½σ².
//
// The risk-neutral drift μ makes the discounted, dividend-adjusted price
// process a martingale: Evaluate(-i) == exp((r−q)T).
type BSM struct {
	Rate     float64 // continuously compounded risk-free rate r
	Dividend float64 // continuous dividend yield q
	Sigma    float64 // diffusion volatility σ > 0
	Maturity float64 // time to maturity T in years, > 0
}

// NewBSM validates the parameters and returns the model.
func NewBSM(rate, dividend, sigma, maturity float64) (BSM, error) {
	m := BSM{Rate: rate, Dividend: dividend, Sigma: sigma, Maturity: maturity}
	if !(maturity > 0) || math.IsInf(maturity, 1) {
		return BSM{}, fmt.Errorf("%w: got T=%v", ErrMaturity, maturity)
	}
	if !(sigma > 0) {
		return BSM{}, fmt.Errorf("%w: got sigma=%v", ErrVolatility, sigma)
	}
	return m, nil
}

// Drift returns the risk-neutral drift μ = r − q − ½σ² of the log-return.
func (m BSM) Drift() float64 {
	return m.Rate - m.Dividend - 0.5*m.Sigma*m.Sigma
}

// Evaluate returns E[exp(izX_T)].
func (m BSM) Evaluate(z complex128) complex128 {
	t := complex(m.Maturity, 0)
	s2 := complex(m.Sigma*m.Sigma, 0)
	exponent := 1i*z*complex(m.Drift(), 0)*t - 0.5*z*z*s2*t
	return cmplx.Exp(exponent)
}
