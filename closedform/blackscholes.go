package closedform

import (
	"errors"
	"fmt"
	"math"

	"gonum.org/v1/gonum/stat/distuv"

	"github.com/katalvlaran/fourprice/payoff"
)

// ErrMarket indicates an invalid market parameter (non-positive spot, strike
// or volatility, or negative maturity/intensity).
var ErrMarket = errors.New("closedform: invalid market parameter")

// stdNormal is the N(0,1) law used for every CDF evaluation; distuv.Normal is
// stateless for CDF calls and safe to share.
var stdNormal = distuv.Normal{Mu: 0, Sigma: 1}

// BlackScholes returns the Black–Scholes price of a European option with
// continuous dividend yield q. Maturity zero returns intrinsic value.
func BlackScholes(right payoff.Right, spot, strike, maturity, rate, dividend, sigma float64) (float64, error) {
	return Windowed(right, spot, strike, maturity, rate, dividend, sigma, 0, math.Inf(1))
}

// Windowed returns the Black–Scholes price of a European option whose payoff
// is knocked out unless the terminal spot lands inside [lower, upper].
// lower=0 and upper=+Inf recovers the plain formula.
//
// With the partial expectations over S_T ∈ [A, B],
//
//	E[S_T·1] = S·e^{(r−q)T}·(N(d1(A)) − N(d1(B)))
//	P(A ≤ S_T ≤ B) = N(d2(A)) − N(d2(B)),
//
// a call integrates over [max(K, lower), upper] and a put over
// [lower, min(K, upper)].
func Windowed(right payoff.Right, spot, strike, maturity, rate, dividend, sigma, lower, upper float64) (float64, error) {
	if err := check(spot, strike, maturity, sigma); err != nil {
		return 0, err
	}
	if lower < 0 || !(upper > lower) {
		return 0, fmt.Errorf("%w: window [%v, %v]", ErrMarket, lower, upper)
	}

	if maturity == 0 {
		return intrinsic(right, spot, strike, lower, upper), nil
	}

	var a, b float64
	if right == payoff.Call {
		a, b = math.Max(strike, lower), upper
	} else {
		a, b = lower, math.Min(strike, upper)
	}
	if a >= b {
		return 0, nil // window leaves no payoff region
	}

	n1a, n2a := dTerms(spot, a, maturity, rate, dividend, sigma)
	n1b, n2b := dTerms(spot, b, maturity, rate, dividend, sigma)

	fwd := spot * math.Exp(-dividend*maturity) * (n1a - n1b)
	ko := strike * math.Exp(-rate*maturity) * (n2a - n2b)
	if right == payoff.Call {
		return fwd - ko, nil
	}
	return ko - fwd, nil
}

// dTerms returns N(d1(bound)) and N(d2(bound)); the limits at bound→0 and
// bound→∞ are 1 and 0 on both.
func dTerms(spot, bound, maturity, rate, dividend, sigma float64) (nd1, nd2 float64) {
	if bound <= 0 {
		return 1, 1
	}
	if math.IsInf(bound, 1) {
		return 0, 0
	}
	volT := sigma * math.Sqrt(maturity)
	d1 := (math.Log(spot/bound) + (rate-dividend+0.5*sigma*sigma)*maturity) / volT
	return stdNormal.CDF(d1), stdNormal.CDF(d1 - volT)
}

func intrinsic(right payoff.Right, spot, strike, lower, upper float64) float64 {
	if spot < lower || spot > upper {
		return 0
	}
	if right == payoff.Call {
		return math.Max(spot-strike, 0)
	}
	return math.Max(strike-spot, 0)
}

func check(spot, strike, maturity, sigma float64) error {
	if !(spot > 0) || !(strike > 0) {
		return fmt.Errorf("%w: spot=%v strike=%v", ErrMarket, spot, strike)
	}
	if maturity < 0 || math.IsNaN(maturity) {
		return fmt.Errorf("%w: maturity=%v", ErrMarket, maturity)
	}
	if !(sigma > 0) {
		return fmt.Errorf("%w: sigma=%v", ErrMarket, sigma)
	}
	return nil
}
