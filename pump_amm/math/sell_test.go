package math

import (
	"math/big"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/krazyTry/pump-amm-go/pump_amm/shared"
)

func TestSellBaseInput(t *testing.T) {
	result, err := SellBaseInput(bi(50_000), 1, bi(1_000_000), bi(2_000_000), bi(30), bi(20))
	require.NoError(t, err)

	assert.Equal(t, int64(95_238), result.InternalQuoteAmountOut.Int64())
	assert.Equal(t, int64(94_761), result.UiQuote.Int64(), "incorrect final quote")
	assert.Equal(t, int64(93_813), result.MinQuote.Int64(), "incorrect min quote")
}

func TestSellBaseInputLargerThanReserve(t *testing.T) {
	// selling more than the pool holds is legal, the curve just flattens out
	result, err := SellBaseInput(bi(3_000_000), 0, bi(1_000_000), bi(2_000_000), bi(0), bi(0))
	require.NoError(t, err)
	assert.Equal(t, int64(1_500_000), result.UiQuote.Int64())
}

func TestSellBaseInputFeesExceedOutput(t *testing.T) {
	result, err := SellBaseInput(bi(1), 1, bi(1), bi(2), bi(9_000), bi(2_000))
	require.Nil(t, result)
	require.ErrorIs(t, err, shared.ErrFeesExceedOutput)
	require.NotErrorIs(t, err, shared.ErrInvalidInput)
	assert.EqualError(t, err, "fees exceed total output; final quote is negative")
}

func TestSellBaseInputErrors(t *testing.T) {
	_, err := SellBaseInput(bi(0), 1, bi(1_000_000), bi(2_000_000), bi(30), bi(20))
	require.ErrorIs(t, err, shared.ErrZeroBaseIn)
	assert.EqualError(t, err, "invalid input: 'base' (base_amount_in) cannot be zero")

	_, err = SellBaseInput(bi(1_000), 1, bi(0), bi(2_000_000), bi(30), bi(20))
	require.ErrorIs(t, err, shared.ErrZeroReserves)

	_, err = SellBaseInput(bi(1_000), 1, bi(1_000_000), bi(0), bi(30), bi(20))
	require.ErrorIs(t, err, shared.ErrZeroReserves)

	_, err = SellBaseInput(bi(10_000), 1, bi(1_000_000), bi(2_000_000), bi(-1), bi(20))
	require.ErrorIs(t, err, shared.ErrNegativeFeeBps)

	_, err = SellBaseInput(bi(10_000), 1, bi(1_000_000), bi(2_000_000), bi(30), bi(-5))
	require.ErrorIs(t, err, shared.ErrNegativeFeeBps)
	assert.EqualError(t, err, "invalid input: fee basis points cannot be negative")
}

func TestSellQuoteInput(t *testing.T) {
	result, err := SellQuoteInput(bi(94_761), 1, bi(1_000_000), bi(2_000_000), bi(30), bi(20))
	require.NoError(t, err)

	assert.Equal(t, int64(95_238), result.InternalRawQuote.Int64())
	assert.Equal(t, int64(50_000), result.Base.Int64())
	assert.Equal(t, int64(93_813), result.MinQuote.Int64())
}

func TestSellQuoteInputErrors(t *testing.T) {
	tests := []struct {
		name     string
		quote    *big.Int
		lpFee    *big.Int
		protoFee *big.Int
		want     error
		message  string
	}{
		{"zero quote", bi(0), bi(30), bi(20), shared.ErrZeroQuote, ""},
		{"quote above reserve", bi(2_000_001), bi(30), bi(20), shared.ErrQuoteExceedsReserve,
			"invalid input: cannot receive more quote tokens than the pool quote reserves"},
		{"quote equals reserve", bi(2_000_000), bi(30), bi(20), shared.ErrQuoteExceedsReserve, ""},
		{"fees take everything", bi(1_000), bi(9_000), bi(1_000), shared.ErrFeesConsumeOutput, ""},
		{"fees above total", bi(1_000), bi(9_000), bi(2_000), shared.ErrFeesConsumeOutput, ""},
		{"gross quote drains reserve", bi(1_990_000), bi(30), bi(20), shared.ErrRawQuoteExceeds,
			"invalid input: desired quote amount exceeds available reserve"},
		{"negative fee", bi(1_000), bi(-30), bi(20), shared.ErrNegativeFeeBps, ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result, err := SellQuoteInput(tt.quote, 1, bi(1_000_000), bi(2_000_000), tt.lpFee, tt.protoFee)
			require.Nil(t, result)
			require.ErrorIs(t, err, tt.want)
			require.ErrorIs(t, err, shared.ErrInvalidInput)
			if tt.message != "" {
				assert.EqualError(t, err, tt.message)
			}
		})
	}
}

func TestSellMinQuoteMonotonic(t *testing.T) {
	prev := bi(1 << 62)
	for _, s := range []float64{0, 0.5, 1, 5, 25, 75} {
		result, err := SellBaseInput(bi(250_000), s, bi(1_000_000), bi(2_000_000), bi(25), bi(5))
		require.NoError(t, err)
		require.Equal(t, -1, result.MinQuote.Cmp(prev), "slippage %v", s)
		prev = result.MinQuote
	}
}

func TestBuyThenSellNeverGrowsTrader(t *testing.T) {
	reserves := []struct{ base, quote int64 }{
		{1_000_000, 2_000_000},
		{7, 1_000_003},
		{1_000_000_000_000, 35_000_000_000},
		{123_456_789, 987_654_321},
	}
	for _, r := range reserves {
		for _, divisor := range []int64{2, 3, 10, 1_000} {
			base := bi(r.base / divisor)
			if base.Sign() == 0 {
				continue
			}
			baseReserve, quoteReserve := bi(r.base), bi(r.quote)
			k := new(big.Int).Mul(baseReserve, quoteReserve)

			buy, err := BuyBaseInput(base, 0, baseReserve, quoteReserve, bi(30), bi(20))
			require.NoError(t, err)

			baseAfterBuy := new(big.Int).Sub(baseReserve, base)
			quoteAfterBuy := new(big.Int).Add(quoteReserve, buy.InternalQuoteAmount)
			kAfterBuy := new(big.Int).Mul(baseAfterBuy, quoteAfterBuy)
			require.GreaterOrEqual(t, kAfterBuy.Cmp(k), 0, "buy shrank k")

			sell, err := SellBaseInput(base, 0, baseAfterBuy, quoteAfterBuy, bi(30), bi(20))
			require.NoError(t, err)

			quoteAfterSell := new(big.Int).Sub(quoteAfterBuy, sell.InternalQuoteAmountOut)
			kAfterSell := new(big.Int).Mul(baseReserve, quoteAfterSell)
			require.GreaterOrEqual(t, kAfterSell.Cmp(kAfterBuy), 0, "sell shrank k")

			require.Equal(t, -1, sell.UiQuote.Cmp(buy.UiQuote), "round trip paid out %s for %s", sell.UiQuote, buy.UiQuote)
		}
	}
}
