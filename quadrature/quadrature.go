package quadrature

import (
	"errors"
	"fmt"
	"math"
	"math/cmplx"

	"gonum.org/v1/gonum/integrate/quad"

	"github.com/katalvlaran/fourprice/charfn"
	"github.com/katalvlaran/fourprice/payoff"
)

// ErrMarket indicates a non-positive spot, strike or maturity input.
var ErrMarket = errors.New("quadrature: spot, strike and maturity must be strictly positive")

// Default integration window and node count for the Gil-Pelaez integrals.
// The integrand decays with |φ(u)|; for maturities around a year these are
// generous, and Options lets callers widen them.
const (
	defaultUpper = 200.0
	defaultNodes = 1000
)

// Options tunes the truncation and resolution of the frequency integral.
type Options struct {
	Upper float64 // truncation bound of the u-integral (0 ⇒ default)
	Nodes int     // Gauss–Legendre node count (0 ⇒ default)
}

// Price evaluates a European option by Gil-Pelaez inversion of the model's
// characteristic function. rate, dividend and maturity must repeat the values
// the model was built with (the characteristic function has them baked into
// its drift; the discounting here cannot recover them).
func Price(right payoff.Right, spot, strike, rate, dividend, maturity float64, m charfn.Model, opts *Options) (float64, error) {
	if !(spot > 0) || !(strike > 0) || !(maturity > 0) {
		return 0, fmt.Errorf("%w: spot=%v strike=%v maturity=%v", ErrMarket, spot, strike, maturity)
	}
	upper, nodes := defaultUpper, defaultNodes
	if opts != nil {
		if opts.Upper > 0 {
			upper = opts.Upper
		}
		if opts.Nodes > 0 {
			nodes = opts.Nodes
		}
	}

	var (
		k      = math.Log(strike / spot)
		phiNeg = m.Evaluate(complex(0, -1)) // E[S_T]/S_0 normalizer of the tilt
	)

	p1 := inMoneyProb(func(u float64) complex128 {
		return m.Evaluate(complex(u, -1)) / phiNeg
	}, k, upper, nodes)
	p2 := inMoneyProb(func(u float64) complex128 {
		return m.Evaluate(complex(u, 0))
	}, k, upper, nodes)

	call := spot*math.Exp(-dividend*maturity)*p1 - strike*math.Exp(-rate*maturity)*p2
	if right == payoff.Call {
		return call, nil
	}
	// Put by parity.
	return call - spot*math.Exp(-dividend*maturity) + strike*math.Exp(-rate*maturity), nil
}

// inMoneyProb computes 1/2 + (1/π)∫₀^u Re[e^{−iuk}·φ(u)/(iu)]du with one
// fixed Gauss–Legendre rule. The lower limit is nudged off zero; the
// integrand is bounded there, the nudge only avoids the literal 0/0.
func inMoneyProb(phi func(float64) complex128, k, upper float64, nodes int) float64 {
	integral := quad.Fixed(func(u float64) float64 {
		return real(cmplx.Exp(complex(0, -u*k)) * phi(u) / complex(0, u))
	}, 1e-10, upper, nodes, nil, 0)
	return 0.5 + integral/math.Pi
}
