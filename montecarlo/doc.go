// Package montecarlo prices European options by discretized risk-neutral
// path simulation and discounted averaging, for the same model parameter
// sets the characteristic-function package describes.
//
// What:
//
//   - BSM: exponential-Euler stepping of the lognormal diffusion (exact per
//     step for constant coefficients).
//   - Merton: diffusion stepping plus Bernoulli(λ·dt) lognormal jumps.
//   - Heston: full-truncation Euler for the square-root variance paired with
//     log-spot stepping under correlated shocks.
//
// Why:
//
//   - A simulation estimate shares no machinery with the transform pricer or
//     the closed forms, which makes it the bluntest possible cross-check.
//
// Paths are distributed over a worker pool; every worker draws from its own
// golang.org/x/exp/rand source (seeded Seed+worker) through distuv.Normal, so
// a fixed Config.Seed gives a deterministic estimate regardless of
// scheduling. Workers share nothing but their partial-sum slot.
//
// Accuracy is O(1/√Paths) statistical plus O(dt) discretization bias for the
// jump and stochastic-volatility models; tests use seeded runs and loose
// tolerances accordingly.
//
// Errors: ErrConfig for a non-positive path/step count or worker count,
// ErrMarket for non-positive spot or strike.
package montecarlo
