// SPDX-License-Identifier: MIT

package payoff

import (
	"fmt"
	"math"
	"math/cmplx"

	"github.com/katalvlaran/fourprice/grid"
)

// Transform is the damped payoff sampled on the real-space axis together with
// its closed-form Fourier transform sampled on the frequency axis. Both slices
// have the grid's length; the zero-frequency entry is always finite.
//
// Alpha and Scale are carried along so the pricer can undo the damping and
// translate spots into log-moneyness without re-threading the Window.
type Transform struct {
	// Damped is g(x) = exp(αx)·payoff(scale·eˣ)·window(x) on grid.X.
	Damped []float64
	// FT is the analytic Fourier transform of g sampled on grid.Xi.
	FT []complex128

	// Window is the claim the transform was built from.
	Window Window
	// Alpha is the damping exponent (copy of Window.Alpha).
	Alpha float64
	// Scale is the reference spot mapping x to prices via S = Scale·eˣ.
	Scale float64
}

// NewTransform validates the claim and evaluates its damped payoff and
// analytic transform on the given grid.
//
// The integration interval in log space is [max(l,k), u] for a call and
// [l, min(k,u)] for a put, with l = log(Lower/scale), k = log(Strike/scale),
// u = log(Upper/scale), all clamped to the grid range [-b, b]. Clamping is
// what the discrete transform's truncation does implicitly; making it explicit
// keeps every sampled FT value finite for any admissible damping.
//
// Errors: see the package documentation; all are raised before any
// frequency-space work.
func NewTransform(g grid.Grid, w Window, scale float64) (Transform, error) {
	if err := w.validate(scale); err != nil {
		return Transform{}, fmt.Errorf("%w (right=%s strike=%v window=[%v,%v] alpha=%v)",
			err, w.Right, w.Strike, w.Lower, w.Upper, w.Alpha)
	}

	b := g.HalfWidth
	k := math.Log(w.Strike / scale)

	// Log-bounds of the knock-out window, clamped to the grid range.
	lo := -b
	if w.Lower > 0 {
		lo = math.Max(math.Log(w.Lower/scale), -b)
	}
	hi := b
	if !math.IsInf(w.Upper, 1) {
		hi = math.Min(math.Log(w.Upper/scale), b)
	}

	// Interval where the payoff is non-zero and inside the window.
	var a0, a1 float64
	if w.Right == Call {
		a0, a1 = math.Max(lo, k), hi
	} else {
		a0, a1 = lo, math.Min(k, hi)
	}
	if a0 >= a1 {
		return Transform{}, fmt.Errorf("%w: log-interval [%v,%v] is empty on [-%v,%v]",
			ErrGridNarrow, a0, a1, b, b)
	}

	tr := Transform{
		Damped: make([]float64, g.N),
		FT:     make([]complex128, g.N),
		Window: w,
		Alpha:  w.Alpha,
		Scale:  scale,
	}

	// Real-space damped payoff on the grid.
	for i, x := range g.X {
		tr.Damped[i] = w.damped(x, scale)
	}

	// Frequency-space closed form, per frequency point.
	sign := complex(scale, 0)
	if w.Right == Put {
		sign = -sign
	}
	ek := complex(math.Exp(k), 0)
	for i, xi := range g.Xi {
		s1 := complex(1+w.Alpha, xi)
		s2 := complex(w.Alpha, xi)
		tr.FT[i] = sign * (expDiff(s1, a0, a1) - ek*expDiff(s2, a0, a1))
	}
	return tr, nil
}

// damped evaluates the windowed damped payoff at a single log-price x.
func (w Window) damped(x, scale float64) float64 {
	s := scale * math.Exp(x)
	if s < w.Lower || s > w.Upper {
		return 0
	}
	var intrinsic float64
	if w.Right == Call {
		intrinsic = s - w.Strike
	} else {
		intrinsic = w.Strike - s
	}
	if intrinsic <= 0 {
		return 0
	}
	return math.Exp(w.Alpha*x) * intrinsic
}

// expDiff returns (e^{b·s} − e^{a·s})/s, substituting the analytic limit b−a
// at s == 0. The exact zero occurs only at the zero-frequency bin when the
// damping exponent sits on one of the removable-singularity values (0 or −1);
// intercepting it here is what keeps the zero bin finite.
func expDiff(s complex128, a, b float64) complex128 {
	if s == 0 {
		return complex(b-a, 0)
	}
	return (cmplx.Exp(complex(b, 0)*s) - cmplx.Exp(complex(a, 0)*s)) / s
}
