// SPDX-License-Identifier: MIT

package payoff

import (
	"errors"
	"math"
)

var (
	// ErrDamping indicates a damping exponent outside the admissible
	// integrability range for the option right.
	ErrDamping = errors.New("payoff: damping exponent outside admissible range (call: alpha ≥ 0, put: alpha ≤ -1)")

	// ErrStrike indicates a non-positive strike.
	ErrStrike = errors.New("payoff: strike must be strictly positive")

	// ErrScale indicates a non-positive scale (reference spot).
	ErrScale = errors.New("payoff: scale must be strictly positive")

	// ErrEmptyWindow indicates an empty or inverted knock-out window.
	ErrEmptyWindow = errors.New("payoff: knock-out window is empty (need 0 ≤ Lower < Upper)")

	// ErrWindowStrike indicates a window that forces the payoff to zero
	// everywhere (call with Upper ≤ strike, put with Lower ≥ strike).
	ErrWindowStrike = errors.New("payoff: knock-out window inconsistent with strike placement")

	// ErrGridNarrow indicates a grid whose real-space range misses the
	// non-zero payoff interval entirely.
	ErrGridNarrow = errors.New("payoff: grid half-width too narrow for the strike/window")
)

// Right is the option right.
type Right int

const (
	// Call pays max(S_T − K, 0).
	Call Right = iota
	// Put pays max(K − S_T, 0).
	Put
)

// String implements fmt.Stringer.
func (r Right) String() string {
	if r == Put {
		return "put"
	}
	return "call"
}

// Window describes a (possibly knock-out windowed) European claim plus the
// damping exponent that makes its Fourier transform exist.
//
// Lower=0 together with Upper=+Inf is the plain vanilla payoff; any tighter
// pair [Lower, Upper] knocks the payoff out whenever the terminal spot leaves
// the window.
type Window struct {
	Right  Right   // Call or Put
	Strike float64 // strike K > 0
	Lower  float64 // lower knock-out bound L ≥ 0 (0 ⇒ none)
	Upper  float64 // upper knock-out bound U > L (+Inf ⇒ none)
	Alpha  float64 // damping exponent (call: ≥ 0, put: ≤ -1)
}

// Vanilla returns the unwindowed claim for the given right, strike and
// damping exponent.
func Vanilla(right Right, strike, alpha float64) Window {
	return Window{Right: right, Strike: strike, Lower: 0, Upper: math.Inf(1), Alpha: alpha}
}

// KnockOut returns a claim knocked out whenever S_T leaves [lower, upper].
func KnockOut(right Right, strike, alpha, lower, upper float64) Window {
	return Window{Right: right, Strike: strike, Lower: lower, Upper: upper, Alpha: alpha}
}

// validate performs the fail-fast configuration checks, before any transform
// work begins. Order: scale, strike, window shape, damping range, strike vs
// window placement.
func (w Window) validate(scale float64) error {
	if !(scale > 0) || math.IsInf(scale, 1) {
		return ErrScale
	}
	if !(w.Strike > 0) || math.IsInf(w.Strike, 1) {
		return ErrStrike
	}
	if w.Lower < 0 || math.IsNaN(w.Lower) || !(w.Upper > w.Lower) {
		return ErrEmptyWindow
	}
	switch w.Right {
	case Call:
		if !(w.Alpha >= 0) {
			return ErrDamping
		}
		if w.Upper <= w.Strike {
			return ErrWindowStrike
		}
	case Put:
		if !(w.Alpha <= -1) {
			return ErrDamping
		}
		if w.Lower >= w.Strike {
			return ErrWindowStrike
		}
	}
	return nil
}
