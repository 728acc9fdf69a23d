// SPDX-License-Identifier: MIT

// Package grid builds the paired real-space / frequency-space axes used by
// Fourier-transform option pricing.
//
// What:
//
//   - Build(halfWidth, n) returns a Grid holding two uniform, zero-centered
//     axes of equal length n: X (log-price) with step Dx = 2·halfWidth/n and
//     Xi (frequency) with step Dxi = π/halfWidth.
//   - The two steps obey the sampling (Nyquist) relation Dx·Dxi = 2π/n to
//     within one ulp, so a discrete transform maps samples on X onto samples
//     on Xi without rescaling surprises.
//
// Why:
//
//   - Transform pricing multiplies a payoff transform by a characteristic
//     function on the same frequency axis; any mismatch between the two axes
//     silently corrupts the price. Building both from a single call makes the
//     pairing a construction invariant rather than a caller obligation.
//
// Complexity:
//
//   - Build: O(n) time, O(n) memory.
//
// Errors:
//
//   - ErrPowerOfTwo: n is not a power of two ≥ 2 (the downstream FFT needs one).
//   - ErrHalfWidth: halfWidth is not strictly positive.
//
// A Grid is immutable after Build: callers share it read-only across
// concurrent pricing calls.
package grid
