// Package charfn provides characteristic functions of the log-return at
// maturity, X_T = log(S_T/S_0), under risk-neutral dynamics.
//
// What:
//
//   - Model is a single-method capability: Evaluate(z) returns E[exp(i·z·X_T)]
//     for a complex frequency argument z.
//   - BSM — lognormal diffusion (Black–Scholes–Merton).
//   - Merton — diffusion plus compensated compound-Poisson lognormal jumps.
//   - Heston — square-root stochastic variance, evaluated with the stable
//     ("little Heston trap") branch of the complex square root.
//   - Sample(m, xi, alpha) evaluates a model along a real frequency axis
//     shifted into the complex plane by the payoff damping factor:
//     z_k = ξ_k + i·alpha.
//
// Why:
//
//   - The transform pricer never branches on a model name: it consumes Model
//     values, so new dynamics plug in without touching the pricer.
//   - Damping a payoff by exp(alpha·x) is absorbed on the distribution side as
//     a complex shift of the frequency argument; Sample keeps that convention
//     in one place.
//
// Invariants:
//
//   - Evaluate(0) == 1 for every model (normalization of a characteristic
//     function).
//   - |Evaluate(ξ+iα)| ≤ Evaluate(iα) for all real ξ; a sampled violation is a
//     numerical blow-up (wrong branch, overflow), not a property of the model.
//
// Errors:
//
//   - ErrMaturity, ErrVolatility, ErrJumpIntensity, ErrVariance: constructor
//     validation; detected before any evaluation.
//
// A Feller-condition violation (2κθ ≤ σ_v²) for Heston is NOT an error: the
// model stays well defined, but variance can touch zero with positive
// probability. HestonParams.FellerSatisfied reports it so callers can decide.
package charfn
