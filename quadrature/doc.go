// Package quadrature prices European options semi-closed-form by numerical
// integration of a single characteristic function (Gil-Pelaez inversion).
//
// What:
//
//   - Price evaluates call = S·e^{−qT}·P1 − K·e^{−rT}·P2 with the in-money
//     probabilities
//
//     Pj = 1/2 + (1/π)·∫₀^∞ Re[ e^{−iu·k}·φj(u)/(iu) ] du,  k = log(K/S),
//
//     where φ2 is the model's characteristic function and φ1(u) =
//     φ(u−i)/φ(−i) is its share-measure tilt. Puts follow by parity.
//
// Why:
//
//   - One fixed Gauss–Legendre call per probability (gonum integrate/quad) is
//     the whole numerical method; no grids, no transforms. This is the
//     natural companion for the stochastic-volatility model, whose density
//     has no closed form but whose characteristic function does.
//
// The integrand is bounded at u→0 (the 1/(iu) pole is purely imaginary) and
// decays with the characteristic function; the default truncation and node
// count are generous for maturities around a year.
//
// Errors: ErrMarket for non-positive spot, strike or discounting inputs.
package quadrature
