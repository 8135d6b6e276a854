package math

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/krazyTry/pump-amm-go/pump_amm/shared"
)

func TestWithdraw(t *testing.T) {
	tests := []struct {
		name                               string
		lpAmount                           int64
		slippage                           float64
		baseReserve, quoteReserve, totalLp int64
		base, quote, minBase, minQuote     int64
	}{
		{"no slippage", 500, 0, 1_000, 2_000, 1_000, 500, 1_000, 500, 1_000},
		{"one percent", 500, 1, 1_000, 2_000, 1_000, 500, 1_000, 495, 990},
		{"slippage zeroes tiny pool", 1, 99.9, 1, 1, 1_000, 0, 0, 0, 0},
		{"full slippage", 500, 100, 1_000, 2_000, 1_000, 500, 1_000, 0, 0},
		{"floors share", 1, 0, 10, 20, 3, 3, 6, 3, 6},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result, err := Withdraw(bi(tt.lpAmount), tt.slippage, bi(tt.baseReserve), bi(tt.quoteReserve), bi(tt.totalLp))
			require.NoError(t, err)
			assert.Equal(t, tt.base, result.Base.Int64())
			assert.Equal(t, tt.quote, result.Quote.Int64())
			assert.Equal(t, tt.minBase, result.MinBase.Int64())
			assert.Equal(t, tt.minQuote, result.MinQuote.Int64())
		})
	}
}

func TestWithdrawZero(t *testing.T) {
	_, err := Withdraw(bi(0), 1, bi(1_000), bi(2_000), bi(1_000))
	require.ErrorIs(t, err, shared.ErrZeroLpAmount)
	assert.EqualError(t, err, "invalid input: LP amount or total LP tokens cannot be zero")

	_, err = Withdraw(bi(500), 1, bi(1_000), bi(2_000), bi(0))
	require.ErrorIs(t, err, shared.ErrZeroLpAmount)
	require.ErrorIs(t, err, shared.ErrInvalidInput)
}

func TestWithdrawMinimaNeverNegative(t *testing.T) {
	for _, s := range []float64{0, 10, 50, 99, 99.9, 100} {
		result, err := Withdraw(bi(7), s, bi(13), bi(29), bi(31))
		require.NoError(t, err)
		assert.GreaterOrEqual(t, result.MinBase.Sign(), 0)
		assert.GreaterOrEqual(t, result.MinQuote.Sign(), 0)
		assert.LessOrEqual(t, result.MinBase.Cmp(result.Base), 0)
		assert.LessOrEqual(t, result.MinQuote.Cmp(result.Quote), 0)
	}
}
