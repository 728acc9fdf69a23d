package closedform

import (
	"fmt"
	"math"

	"github.com/katalvlaran/fourprice/payoff"
)

// seriesCutoff stops the Poisson series once the remaining weight mass is
// below this threshold; 1e-12 keeps far more precision than any numerical
// pricing path being compared against it.
const seriesCutoff = 1e-12

// maxSeriesTerms bounds the series for extreme intensities.
const maxSeriesTerms = 170

// MertonSeries returns the Merton (1976) jump-diffusion price as the
// Poisson-weighted series of conditioned Black–Scholes prices:
//
//	price = Σ_n e^{−λ'T}(λ'T)^n/n! · BS(σ_n, r_n),   λ' = λ(1+κ),
//	σ_n² = σ² + nσ_J²/T,   r_n = r − λκ + n·log(1+κ)/T,
//
// with κ = exp(μ_J + ½σ_J²) − 1 the expected relative jump size. With λ=0 the
// series degenerates to a single Black–Scholes term.
func MertonSeries(right payoff.Right, spot, strike, maturity, rate, dividend, sigma, lambda, jumpMean, jumpVol float64) (float64, error) {
	if err := check(spot, strike, maturity, sigma); err != nil {
		return 0, err
	}
	if lambda < 0 || jumpVol < 0 || math.IsNaN(lambda) || math.IsNaN(jumpVol) {
		return 0, fmt.Errorf("%w: lambda=%v jumpVol=%v", ErrMarket, lambda, jumpVol)
	}
	if maturity == 0 {
		return intrinsic(right, spot, strike, 0, math.Inf(1)), nil
	}
	if lambda == 0 {
		return BlackScholes(right, spot, strike, maturity, rate, dividend, sigma)
	}

	var (
		kappa    = math.Exp(jumpMean+0.5*jumpVol*jumpVol) - 1
		logOneK  = math.Log1p(kappa)
		lamPrime = lambda * (1 + kappa) * maturity
		weight   = math.Exp(-lamPrime) // Poisson weight for n=0
		total    = 0.0
		acc      = 0.0 // accumulated weight mass
	)
	for n := 0; n < maxSeriesTerms && acc < 1-seriesCutoff; n++ {
		fn := float64(n)
		sigmaN := math.Sqrt(sigma*sigma + fn*jumpVol*jumpVol/maturity)
		rateN := rate - lambda*kappa + fn*logOneK/maturity

		term, err := BlackScholes(right, spot, strike, maturity, rateN, dividend, sigmaN)
		if err != nil {
			return 0, err
		}
		total += weight * term
		acc += weight
		weight *= lamPrime / (fn + 1)
	}
	return total, nil
}
