// SPDX-License-Identifier: MIT

// Package payoff constructs the damped option payoff in real (log-price)
// space together with its closed-form Fourier transform on a frequency grid.
//
// What:
//
//   - Window describes the claim: option right (Call/Put), strike K, optional
//     knock-out bounds [Lower, Upper] (Lower=0, Upper=+Inf ⇒ plain vanilla)
//     and the damping exponent Alpha.
//   - NewTransform evaluates, for every grid frequency ξ, the analytic
//     transform of g(x) = exp(αx)·max(±(scale·eˣ − K), 0)·1[L ≤ scale·eˣ ≤ U],
//     plus the sampled g itself on the real-space axis.
//
// Why:
//
//   - The raw payoff is not absolutely integrable, so its Fourier transform
//     does not exist; the exponential damping factor fixes that, and the
//     matching complex shift of the characteristic function argument undoes it
//     on the distribution side.
//   - Sampling the analytic transform (instead of FFT-ing the sampled payoff)
//     sidesteps the payoff kink: there is no Gibbs error to control.
//
// Closed form, for the non-zero interval [a, b] in log space:
//
//	G(ξ) = scale·[ (e^{b(1+α+iξ)} − e^{a(1+α+iξ)})/(1+α+iξ)
//	             − e^{k}·(e^{b(α+iξ)} − e^{a(α+iξ)})/(α+iξ) ]
//
// with k = log(K/scale); puts carry the opposite sign. The log-bounds are
// clamped to the grid's own range [-HalfWidth, HalfWidth] — the truncation the
// discrete transform imposes anyway — so every sampled value is finite.
//
// Removable singularities: at the zero-frequency bin the general form divides
// by zero when α = 0 (second term) or α = −1 (first term). Both are removable;
// the analytic limit (e^{bs}−e^{as})/s → b−a is substituted in place, so the
// zero bin is always finite and no NaN can propagate.
//
// Errors (all detected before any transform work):
//
//   - ErrDamping: alpha outside the admissible range for the right
//     (call: α ≥ 0, put: α ≤ −1; the boundary values 0 and −1 are admitted as
//     the removable-singularity cases).
//   - ErrStrike, ErrScale: non-positive strike or scale.
//   - ErrEmptyWindow: Lower ≥ Upper, or negative Lower.
//   - ErrWindowStrike: the window leaves the payoff identically zero
//     (call with Upper ≤ K, put with Lower ≥ K).
//   - ErrGridNarrow: the non-zero payoff interval lies entirely outside the
//     grid's real-space range.
//
// Complexity: O(n) for an n-point grid; pure and deterministic.
package payoff
