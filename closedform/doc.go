// Package closedform provides the algebraic reference prices the transform
// pricer is tested against: Black–Scholes (plain and terminal-windowed) and
// the Merton jump-diffusion series expansion.
//
// What:
//
//   - BlackScholes: the classic formula with a continuous dividend yield.
//   - Windowed: Black–Scholes for a payoff knocked out unless the terminal
//     spot lands inside [Lower, Upper]; collapses to BlackScholes for
//     Lower=0, Upper=+Inf.
//   - MertonSeries: the Poisson-weighted series of conditioned Black–Scholes
//     prices for lognormal jumps, truncated when the weights vanish.
//
// Why:
//
//   - Every formula here is a pure algebraic evaluation — no grids, no
//     transforms — which makes the package the natural oracle for the
//     numerical pricing paths.
//
// The standard normal CDF comes from gonum's distuv.Normal.
//
// Errors: ErrMarket for non-positive spot/strike/volatility or negative
// maturity/intensity; maturity zero is admitted and returns intrinsic value.
package closedform
