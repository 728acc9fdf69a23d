package closedform_test

import (
	"math"
	"testing"

	"github.com/katalvlaran/fourprice/closedform"
	"github.com/katalvlaran/fourprice/payoff"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestBlackScholes_ReferenceCase pins the classic textbook scenario
// S=100, K=100, r=5%, σ=20%, T=1 to its known values.
func TestBlackScholes_ReferenceCase(t *testing.T) {
	call, err := closedform.BlackScholes(payoff.Call, 100, 100, 1, 0.05, 0, 0.2)
	require.NoError(t, err)
	assert.InDelta(t, 10.450583572185565, call, 1e-9)

	put, err := closedform.BlackScholes(payoff.Put, 100, 100, 1, 0.05, 0, 0.2)
	require.NoError(t, err)
	assert.InDelta(t, 5.573526022256971, put, 1e-9)
}

// TestBlackScholes_PutCallParity with a dividend yield in play.
func TestBlackScholes_PutCallParity(t *testing.T) {
	const S, K, T, r, q, vol = 1.0, 1.1, 1.0, 0.05, 0.02, 0.4

	call, err := closedform.BlackScholes(payoff.Call, S, K, T, r, q, vol)
	require.NoError(t, err)
	put, err := closedform.BlackScholes(payoff.Put, S, K, T, r, q, vol)
	require.NoError(t, err)

	want := S*math.Exp(-q*T) - K*math.Exp(-r*T)
	assert.InDelta(t, want, call-put, 1e-12)
}

// TestBlackScholes_ZeroMaturityIsIntrinsic.
func TestBlackScholes_ZeroMaturityIsIntrinsic(t *testing.T) {
	call, err := closedform.BlackScholes(payoff.Call, 90, 100, 0, 0.05, 0, 0.2)
	require.NoError(t, err)
	assert.Zero(t, call)

	put, err := closedform.BlackScholes(payoff.Put, 90, 100, 0, 0.05, 0, 0.2)
	require.NoError(t, err)
	assert.Equal(t, 10.0, put)
}

// TestWindowed_CollapsesToPlain: Lower=0, Upper=+Inf is the vanilla formula.
func TestWindowed_CollapsesToPlain(t *testing.T) {
	const S, K, T, r, q, vol = 1.0, 1.1, 1.0, 0.05, 0.02, 0.4

	for _, right := range []payoff.Right{payoff.Call, payoff.Put} {
		plain, err := closedform.BlackScholes(right, S, K, T, r, q, vol)
		require.NoError(t, err)
		windowed, err := closedform.Windowed(right, S, K, T, r, q, vol, 0, math.Inf(1))
		require.NoError(t, err)
		assert.Equal(t, plain, windowed, "right=%s", right)
	}
}

// TestWindowed_RegionsAreAdditive: the call value over [K,B] plus the value
// over [B,∞) must rebuild the plain call exactly.
func TestWindowed_RegionsAreAdditive(t *testing.T) {
	const S, K, T, r, q, vol, B = 1.0, 1.1, 1.0, 0.05, 0.02, 0.4, 1.6

	below, err := closedform.Windowed(payoff.Call, S, K, T, r, q, vol, 0, B)
	require.NoError(t, err)
	above, err := closedform.Windowed(payoff.Call, S, K, T, r, q, vol, B, math.Inf(1))
	require.NoError(t, err)
	plain, err := closedform.BlackScholes(payoff.Call, S, K, T, r, q, vol)
	require.NoError(t, err)

	assert.InDelta(t, plain, below+above, 1e-12)
	assert.Greater(t, below, 0.0)
	assert.Greater(t, above, 0.0)
}

// TestWindowed_DeadWindowIsZero: a window that leaves no payoff region
// prices to zero without error.
func TestWindowed_DeadWindowIsZero(t *testing.T) {
	// Call window entirely below the strike after intersection: [K, U] empty.
	v, err := closedform.Windowed(payoff.Call, 1, 2, 1, 0.05, 0, 0.4, 0.5, 1.5)
	require.NoError(t, err)
	assert.InDelta(t, 0, v, 1e-300)
}

// TestMertonSeries_ZeroIntensityIsBlackScholes.
func TestMertonSeries_ZeroIntensityIsBlackScholes(t *testing.T) {
	const S, K, T, r, q, vol = 1.0, 1.1, 1.0, 0.05, 0.02, 0.4

	bs, err := closedform.BlackScholes(payoff.Call, S, K, T, r, q, vol)
	require.NoError(t, err)
	series, err := closedform.MertonSeries(payoff.Call, S, K, T, r, q, vol, 0, -0.1, 0.15)
	require.NoError(t, err)
	assert.Equal(t, bs, series)
}

// TestMertonSeries_ScenarioLevels: the jump scenario sits at its known
// levels and satisfies parity (each series term obeys parity, so the sum
// must as well).
func TestMertonSeries_ScenarioLevels(t *testing.T) {
	const S, K, T, r, q, vol = 1.0, 1.1, 1.0, 0.05, 0.02, 0.4
	const lambda, muJ, sigJ = 0.5, -0.1, 0.15

	call, err := closedform.MertonSeries(payoff.Call, S, K, T, r, q, vol, lambda, muJ, sigJ)
	require.NoError(t, err)
	put, err := closedform.MertonSeries(payoff.Put, S, K, T, r, q, vol, lambda, muJ, sigJ)
	require.NoError(t, err)

	assert.InDelta(t, 0.136, call, 1e-2)
	assert.InDelta(t, 0.202, put, 1e-2)

	parity := S*math.Exp(-q*T) - K*math.Exp(-r*T)
	assert.InDelta(t, parity, call-put, 1e-9)

	// Jumps add convexity value over the plain diffusion.
	bs, err := closedform.BlackScholes(payoff.Call, S, K, T, r, q, vol)
	require.NoError(t, err)
	assert.Greater(t, call, bs)
}

// TestValidation_MarketParameters.
func TestValidation_MarketParameters(t *testing.T) {
	_, err := closedform.BlackScholes(payoff.Call, 0, 100, 1, 0.05, 0, 0.2)
	assert.ErrorIs(t, err, closedform.ErrMarket)
	_, err = closedform.BlackScholes(payoff.Call, 100, 100, -1, 0.05, 0, 0.2)
	assert.ErrorIs(t, err, closedform.ErrMarket)
	_, err = closedform.BlackScholes(payoff.Call, 100, 100, 1, 0.05, 0, 0)
	assert.ErrorIs(t, err, closedform.ErrMarket)
	_, err = closedform.Windowed(payoff.Call, 100, 100, 1, 0.05, 0, 0.2, 2, 1)
	assert.ErrorIs(t, err, closedform.ErrMarket)
	_, err = closedform.MertonSeries(payoff.Call, 100, 100, 1, 0.05, 0, 0.2, -1, 0, 0.1)
	assert.ErrorIs(t, err, closedform.ErrMarket)
}
