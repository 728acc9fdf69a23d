package montecarlo_test

import (
	"math"
	"testing"

	"github.com/katalvlaran/fourprice/charfn"
	"github.com/katalvlaran/fourprice/closedform"
	"github.com/katalvlaran/fourprice/montecarlo"
	"github.com/katalvlaran/fourprice/payoff"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// cfg returns a seeded, fixed-worker budget so estimates are reproducible.
func cfg(steps int) montecarlo.Config {
	return montecarlo.Config{Paths: 200_000, Steps: steps, Seed: 7, Workers: 4}
}

// TestBSM_AgainstClosedForm: exponential-Euler stepping of the lognormal
// diffusion is exact per step, so only statistical error remains.
func TestBSM_AgainstClosedForm(t *testing.T) {
	m, err := charfn.NewBSM(0.05, 0.02, 0.4, 1)
	require.NoError(t, err)

	want, err := closedform.BlackScholes(payoff.Call, 1, 1.1, 1, 0.05, 0.02, 0.4)
	require.NoError(t, err)

	got, err := montecarlo.BSM(payoff.Call, 1, 1.1, m, cfg(50))
	require.NoError(t, err)
	assert.InDelta(t, want, got, 5e-3, "call (tolerance ≈ 9 standard errors)")

	wantPut, err := closedform.BlackScholes(payoff.Put, 1, 1.1, 1, 0.05, 0.02, 0.4)
	require.NoError(t, err)
	gotPut, err := montecarlo.BSM(payoff.Put, 1, 1.1, m, cfg(50))
	require.NoError(t, err)
	assert.InDelta(t, wantPut, gotPut, 5e-3, "put")
}

// TestMerton_AgainstSeries: Bernoulli(λ·dt) jump stepping against the series
// closed form; tolerance covers statistics plus O(dt) jump bias.
func TestMerton_AgainstSeries(t *testing.T) {
	m, err := charfn.NewMerton(0.05, 0.02, 0.4, 0.5, -0.1, 0.15, 1)
	require.NoError(t, err)

	want, err := closedform.MertonSeries(payoff.Call, 1, 1.1, 1, 0.05, 0.02, 0.4, 0.5, -0.1, 0.15)
	require.NoError(t, err)

	got, err := montecarlo.Merton(payoff.Call, 1, 1.1, m, cfg(252))
	require.NoError(t, err)
	assert.InDelta(t, want, got, 1e-2)
}

// TestHeston_ParityHolds: the estimator itself must respect put-call parity
// to within statistical noise (same seed prices share path randomness
// structure but not paths; parity is a distributional identity).
func TestHeston_ParityHolds(t *testing.T) {
	m, err := charfn.NewHeston(0.05, 0.02, 0.04, 2, 0.04, 0.3, -0.7, 1)
	require.NoError(t, err)

	call, err := montecarlo.Heston(payoff.Call, 1, 1.1, m, cfg(500))
	require.NoError(t, err)
	put, err := montecarlo.Heston(payoff.Put, 1, 1.1, m, cfg(500))
	require.NoError(t, err)

	want := 1*math.Exp(-0.02) - 1.1*math.Exp(-0.05)
	assert.InDelta(t, want, call-put, 1e-2)
}

// TestDeterminism: identical seeds yield identical estimates.
func TestDeterminism(t *testing.T) {
	m, err := charfn.NewBSM(0.05, 0.02, 0.4, 1)
	require.NoError(t, err)

	a, err := montecarlo.BSM(payoff.Call, 1, 1.1, m, cfg(50))
	require.NoError(t, err)
	b, err := montecarlo.BSM(payoff.Call, 1, 1.1, m, cfg(50))
	require.NoError(t, err)
	assert.Equal(t, a, b)
}

// TestValidation.
func TestValidation(t *testing.T) {
	m, err := charfn.NewBSM(0.05, 0.02, 0.4, 1)
	require.NoError(t, err)

	_, err = montecarlo.BSM(payoff.Call, 1, 1.1, m, montecarlo.Config{Paths: 0, Steps: 10, Workers: 1})
	assert.ErrorIs(t, err, montecarlo.ErrConfig)
	_, err = montecarlo.BSM(payoff.Call, 1, 1.1, m, montecarlo.Config{Paths: 10, Steps: 0, Workers: 1})
	assert.ErrorIs(t, err, montecarlo.ErrConfig)
	_, err = montecarlo.BSM(payoff.Call, 0, 1.1, m, montecarlo.Config{Paths: 10, Steps: 10, Workers: 1})
	assert.ErrorIs(t, err, montecarlo.ErrMarket)
}
