// SPDX-License-Identifier: MIT

package pricer

import (
	"errors"
	"fmt"
	"math"
	"math/cmplx"

	"gonum.org/v1/gonum/dsp/fourier"
	"gonum.org/v1/gonum/integrate"

	"github.com/katalvlaran/fourprice/grid"
	"github.com/katalvlaran/fourprice/payoff"
)

var (
	// ErrLength indicates sample slices whose length differs from the grid's.
	ErrLength = errors.New("pricer: sample length must equal the grid length")

	// ErrDiscount indicates a non-positive discount factor.
	ErrDiscount = errors.New("pricer: discount factor must be strictly positive")

	// ErrSpot indicates a non-positive target spot.
	ErrSpot = errors.New("pricer: spot must be strictly positive")

	// ErrSpotRange indicates a spot whose log-moneyness falls outside the
	// grid's real-space range, so no two neighbours exist to interpolate.
	ErrSpotRange = errors.New("pricer: log(spot/scale) outside the grid range")

	// ErrNumericalInstability indicates characteristic-function samples that
	// fail to decay below their zero-frequency value. Non-fatal: the computed
	// result is still returned and the caller decides whether to trust it.
	ErrNumericalInstability = errors.New("pricer: characteristic-function samples do not decay (result unreliable)")
)

// decayTol is the relative slack allowed over the zero-frequency modulus
// before samples are declared unstable; covers rounding, not blow-ups.
const decayTol = 1e-9

// Price evaluates the discounted expected payoff through the Plancherel
// identity: the centered FFT of FT·conj(φ) over the grid width yields the
// damped price curve across log-moneyness, which is undamped by exp(−αx) and
// linearly interpolated at x* = log(spot/tr.Scale).
//
// phi must be the characteristic function sampled at ξ_k + i·alpha for the
// same alpha the transform was damped with (charfn.Sample does this).
//
// The returned error is ErrNumericalInstability (wrapped) when the samples
// fail the decay check; the price is still computed and returned in that
// case. Any other non-nil error means no price was computed.
//
// Complexity: O(n log n) time, O(n) memory.
func Price(g grid.Grid, phi []complex128, tr payoff.Transform, discount, spot float64) (float64, error) {
	xStar, err := validate(g, phi, tr, discount, spot)
	if err != nil {
		return 0, err
	}

	h := make([]complex128, g.N)
	for k := range h {
		h[k] = tr.FT[k] * cmplx.Conj(phi[k])
	}
	v := centeredDFT(h, g.Width())

	// Undamp and take the real part: v carries the damped curve e^{αx}·V(x).
	curve := make([]float64, g.N)
	for j, x := range g.X {
		curve[j] = discount * math.Exp(-tr.Alpha*x) * real(v[j])
	}

	price := interpolate(g, curve, xStar)
	return price, decayCheck(phi, g.ZeroIndex())
}

// PriceDirect evaluates the same Plancherel integral by trapezoidal
// quadrature over the frequency grid, without a discrete transform:
//
//	price = discount · e^{−αx*} · (1/2π) ∫ e^{−iξx*}·FT(ξ)·conj(φ(ξ+iα)) dξ.
//
// It must agree with Price to within numerical tolerance for identical
// inputs; it exists as an independently re-derivable cross-check, not as a
// faster path. Complexity: O(n).
func PriceDirect(g grid.Grid, phi []complex128, tr payoff.Transform, discount, spot float64) (float64, error) {
	xStar, err := validate(g, phi, tr, discount, spot)
	if err != nil {
		return 0, err
	}

	ys := make([]float64, g.N)
	for k, xi := range g.Xi {
		ys[k] = real(cmplx.Exp(complex(0, -xi*xStar)) * tr.FT[k] * cmplx.Conj(phi[k]))
	}
	integral := integrate.Trapezoidal(g.Xi, ys)

	price := discount * math.Exp(-tr.Alpha*xStar) * integral / (2 * math.Pi)
	return price, decayCheck(phi, g.ZeroIndex())
}

// Density inverts the (undamped) characteristic function into a sampled
// approximation of the terminal log-return density, aligned to grid.X.
//
// The recovered curve integrates to ≈1 over the grid and is non-negative up
// to bounded numerical ringing near the truncation edges. The decay check
// applies as in Price and is likewise non-fatal.
func Density(g grid.Grid, phi []complex128) ([]float64, error) {
	if len(phi) != g.N {
		return nil, fmt.Errorf("%w: got %d samples for n=%d", ErrLength, len(phi), g.N)
	}

	v := centeredDFT(phi, g.Width())
	density := make([]float64, g.N)
	for j := range density {
		density[j] = real(v[j])
	}
	return density, decayCheck(phi, g.ZeroIndex())
}

// validate runs the fail-fast configuration checks shared by both pricing
// forms and returns the target log-moneyness.
func validate(g grid.Grid, phi []complex128, tr payoff.Transform, discount, spot float64) (float64, error) {
	if len(phi) != g.N || len(tr.FT) != g.N || len(tr.Damped) != g.N {
		return 0, fmt.Errorf("%w: phi=%d ft=%d damped=%d for n=%d",
			ErrLength, len(phi), len(tr.FT), len(tr.Damped), g.N)
	}
	if !(discount > 0) || math.IsInf(discount, 1) {
		return 0, fmt.Errorf("%w: got %v", ErrDiscount, discount)
	}
	if !(spot > 0) || math.IsInf(spot, 1) {
		return 0, fmt.Errorf("%w: got %v", ErrSpot, spot)
	}
	xStar := math.Log(spot / tr.Scale)
	if xStar < g.X[0] || xStar > g.X[g.N-1] {
		return 0, fmt.Errorf("%w: x*=%v not in [%v, %v]", ErrSpotRange, xStar, g.X[0], g.X[g.N-1])
	}
	return xStar, nil
}

// centeredDFT applies the forward unnormalized DFT between the zero-centered
// axes: out_j = (1/width)·Σ_k h_k·exp(−i·ξ_k·x_j). Rotating by n/2 on both
// sides maps the centered ordering onto the FFT's natural one; for even n the
// same rotation serves in both directions.
func centeredDFT(h []complex128, width float64) []complex128 {
	n := len(h)
	fft := fourier.NewCmplxFFT(n)

	coeff := fft.Coefficients(nil, halfShift(h))
	out := halfShift(coeff)

	scale := complex(1/width, 0)
	for i := range out {
		out[i] *= scale
	}
	return out
}

// halfShift rotates a sequence by half its (even) length.
func halfShift(a []complex128) []complex128 {
	n := len(a)
	out := make([]complex128, n)
	half := n / 2
	for i := range a {
		out[i] = a[(i+half)%n]
	}
	return out
}

// interpolate reads the curve linearly between the two grid points nearest x.
// The bounds were checked by validate; the top edge falls back to the last
// segment.
func interpolate(g grid.Grid, curve []float64, x float64) float64 {
	idx := int(math.Floor((x - g.X[0]) / g.Dx))
	if idx < 0 {
		idx = 0
	}
	if idx > g.N-2 {
		idx = g.N - 2
	}
	w := (x - g.X[idx]) / g.Dx
	return curve[idx]*(1-w) + curve[idx+1]*w
}

// decayCheck enforces |φ(ξ+iα)| ≤ φ(iα): the zero-frequency modulus bounds
// every other sample for a genuine characteristic function, so any excess (or
// a NaN/±Inf) flags numerically unreliable samples.
func decayCheck(phi []complex128, zeroIdx int) error {
	ref := cmplx.Abs(phi[zeroIdx])
	if math.IsNaN(ref) || math.IsInf(ref, 0) {
		return fmt.Errorf("%w: zero-frequency sample is %v", ErrNumericalInstability, phi[zeroIdx])
	}
	bound := ref * (1 + decayTol)
	for k, p := range phi {
		a := cmplx.Abs(p)
		if math.IsNaN(a) || math.IsInf(a, 0) || a > bound {
			return fmt.Errorf("%w: |phi[%d]|=%v exceeds zero-frequency bound %v",
				ErrNumericalInstability, k, a, ref)
		}
	}
	return nil
}
