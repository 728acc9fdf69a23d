// SPDX-License-Identifier: MIT

package grid

import (
	"errors"
	"fmt"
	"math"
)

var (
	// ErrPowerOfTwo indicates the requested point count is not a power of two.
	ErrPowerOfTwo = errors.New("grid: number of points must be a power of two ≥ 2")

	// ErrHalfWidth indicates a non-positive real-space half-width.
	ErrHalfWidth = errors.New("grid: half-width must be strictly positive")
)

// Grid is a matched pair of zero-centered uniform axes: X spans the real
// (log-price) domain [-HalfWidth, HalfWidth), Xi spans the frequency domain.
// Both have length N and satisfy Dx·Dxi == 2π/N to within one ulp (the two
// steps are rounded independently, so the product can land one ulp off for
// half-widths that are not exactly representable powers of two).
//
// Grid is built once per pricing call and never mutated afterwards; it is safe
// to share between concurrent readers.
type Grid struct {
	// X is the real-space axis: Dx·(-N/2 .. N/2-1).
	X []float64
	// Xi is the frequency axis: Dxi·(-N/2 .. N/2-1).
	Xi []float64

	// Dx is the real-space step 2·HalfWidth/N.
	Dx float64
	// Dxi is the frequency step π/HalfWidth.
	Dxi float64

	// HalfWidth is the real-space half-width b; X covers [-b, b).
	HalfWidth float64
	// N is the number of points on each axis; always a power of two.
	N int
}

// Width returns the full real-space extent 2·HalfWidth. The transform pricer
// divides by it: with the unnormalized DFT, the dξ/2π factor of the inverse
// Fourier integral collapses to exactly 1/Width.
func (g Grid) Width() float64 { return 2 * g.HalfWidth }

// Build constructs the paired axes for a real-space half-width b and n points.
//
// Contract:
//   - n must be a power of two ≥ 2 (ErrPowerOfTwo otherwise);
//   - halfWidth must be > 0 and finite (ErrHalfWidth otherwise).
//
// Pure and deterministic: no state is retained between calls.
func Build(halfWidth float64, n int) (Grid, error) {
	if n < 2 || n&(n-1) != 0 {
		return Grid{}, fmt.Errorf("%w: got n=%d", ErrPowerOfTwo, n)
	}
	if !(halfWidth > 0) || math.IsInf(halfWidth, 1) {
		return Grid{}, fmt.Errorf("%w: got %v", ErrHalfWidth, halfWidth)
	}

	g := Grid{
		X:         make([]float64, n),
		Xi:        make([]float64, n),
		Dx:        2 * halfWidth / float64(n),
		Dxi:       math.Pi / halfWidth,
		HalfWidth: halfWidth,
		N:         n,
	}
	half := n / 2
	for i := 0; i < n; i++ {
		// Index i maps to the signed coordinate i-n/2, so X[n/2]==Xi[n/2]==0.
		g.X[i] = g.Dx * float64(i-half)
		g.Xi[i] = g.Dxi * float64(i-half)
	}
	return g, nil
}

// ZeroIndex returns the index of the zero coordinate on both axes (N/2).
func (g Grid) ZeroIndex() int { return g.N / 2 }
