// Package fourprice prices European and knock-out options by Fourier
// inversion of characteristic functions — from grid construction to FFT
// pricing, with independent cross-checking pricers.
//
// 🚀 What is fourprice?
//
//	A numerical library that brings together:
//		• Nyquist-paired grids: matched log-price and frequency axes
//		• Characteristic functions: Black-Scholes, Merton jumps, Heston
//		• Payoff transforms: damped calls & puts with closed-form FTs
//		• FFT pricing: one transform yields the whole spot curve
//		• Density recovery: invert φ back into the risk-neutral density
//		• Cross-checks: closed forms, Gil-Pelaez quadrature, Monte Carlo
//
// ✨ Why choose fourprice?
//
//   - Beginner-friendly – minimal API, clear, intuitive naming
//   - Verifiable – four independent pricing formulations that must agree
//   - Pure Go – gonum for FFT, quadrature and distributions; no cgo
//   - Extensible – any type with Evaluate(z) plugs in as a model
//
// Under the hood, everything is organized under seven subpackages:
//
//	grid/       — paired log-price/frequency grids (dx·dξ = 2π/n)
//	charfn/     — characteristic function models & damped sampling
//	payoff/     — damped payoff windows and their analytic transforms
//	pricer/     — FFT and direct-quadrature transform pricing, densities
//	closedform/ — Black-Scholes (plain & windowed), Merton series
//	montecarlo/ — path-simulation pricers for the same three models
//	quadrature/ — Gil-Pelaez inversion on gonum Gauss-Legendre rules
//
// Quick sketch of the pipeline:
//
//	    model ──φ(ξ+iα)──┐
//	                     ├──×──FFT──► price curve V(spot)
//	  payoff ───Ĝ(ξ)─────┘
//
// Dive into examples/ for a runnable walkthrough and DESIGN.md for the
// numerical conventions.
//
//	go get github.com/katalvlaran/fourprice
package fourprice
