package charfn

import (
	"fmt"
	"math"
	"math/cmplx"
)

// Heston is the stochastic-volatility characteristic function of
// X_T = log(S_T/S_0) under square-root variance dynamics
//
//	dv = κ(θ − v)dt + σ_v √v dW_v,   d⟨W_S, W_v⟩ = ρ dt.
//
// Evaluate uses the formulation of Albrecher, Mayer, Schoutens & Tistaert
// ("The little Heston trap"): the branch of the complex square root is chosen
// through g = (ξ_c − d)/(ξ_c + d) with exp(−dT) factors, which keeps the real
// part of the exponent bounded for long maturities. The textbook branch
// (ξ_c + d with exp(+dT)) crosses the square root's branch cut as ξ sweeps the
// grid and blows up — a documented failure mode this formulation avoids.
type Heston struct {
	Rate     float64 // risk-free rate r
	Dividend float64 // continuous dividend yield q
	V0       float64 // initial variance v_0 > 0
	Kappa    float64 // mean-reversion speed κ > 0
	Theta    float64 // long-run variance θ > 0
	VolOfVol float64 // volatility of variance σ_v > 0
	Rho      float64 // spot/variance correlation ρ ∈ [-1, 1]
	Maturity float64 // time to maturity T in years, > 0
}

// NewHeston validates the parameters and returns the model.
//
// A Feller-condition violation is deliberately NOT an error: see
// FellerSatisfied.
func NewHeston(rate, dividend, v0, kappa, theta, volOfVol, rho, maturity float64) (Heston, error) {
	m := Heston{
		Rate: rate, Dividend: dividend,
		V0: v0, Kappa: kappa, Theta: theta, VolOfVol: volOfVol, Rho: rho,
		Maturity: maturity,
	}
	if !(maturity > 0) || math.IsInf(maturity, 1) {
		return Heston{}, fmt.Errorf("%w: got T=%v", ErrMaturity, maturity)
	}
	if !(v0 > 0) || !(theta > 0) {
		return Heston{}, fmt.Errorf("%w: got v0=%v theta=%v", ErrVariance, v0, theta)
	}
	if !(kappa > 0) {
		return Heston{}, fmt.Errorf("%w: got kappa=%v", ErrMeanReversion, kappa)
	}
	if !(volOfVol > 0) {
		return Heston{}, fmt.Errorf("%w: got volOfVol=%v", ErrVolOfVol, volOfVol)
	}
	if math.IsNaN(rho) || rho < -1 || rho > 1 {
		return Heston{}, fmt.Errorf("%w: got rho=%v", ErrCorrelation, rho)
	}
	return m, nil
}

// FellerSatisfied reports whether 2κθ > σ_v². When false the variance process
// can reach zero with positive probability; pricing stays well defined, but
// callers relying on strictly positive variance paths should know.
func (m Heston) FellerSatisfied() bool {
	return 2*m.Kappa*m.Theta > m.VolOfVol*m.VolOfVol
}

// Evaluate returns E[exp(izX_T)].
func (m Heston) Evaluate(z complex128) complex128 {
	if z == 0 {
		return 1 // exponent is identically zero; skip the 0/0 in g
	}

	var (
		t         = complex(m.Maturity, 0)
		sv        = complex(m.VolOfVol, 0)
		sv2       = sv * sv
		kap       = complex(m.Kappa, 0)
		rho       = complex(m.Rho, 0)
		driftTerm = 1i * z * complex(m.Rate-m.Dividend, 0) * t
	)

	xiC := kap - 1i*rho*sv*z
	d := cmplx.Sqrt(xiC*xiC + sv2*(1i*z+z*z))

	// Stable branch: pair (ξ_c − d) with exp(−dT).
	g := (xiC - d) / (xiC + d)
	edt := cmplx.Exp(-d * t)

	c := complex(m.Kappa*m.Theta, 0) / sv2 *
		((xiC-d)*t - 2*cmplx.Log((1-g*edt)/(1-g)))
	dd := (xiC - d) / sv2 * (1 - edt) / (1 - g*edt)

	return cmplx.Exp(driftTerm + c + dd*complex(m.V0, 0))
}
