package math

import (
	"math/big"

	"github.com/krazyTry/pump-amm-go/pump_amm/shared"
)

// SellBaseInput quotes a sell of an exact amount of base tokens.
//
// The gross output is floored, both fees are taken from it (each rounded up) and
// the net is scaled down by slippage. No upper bound applies to base: larger sells
// just yield less quote per base.
func SellBaseInput(
	base *big.Int,
	slippage float64, // 1 => 1%
	baseReserve *big.Int,
	quoteReserve *big.Int,
	lpFeeBps *big.Int, // 30 => 0.30%
	protocolFeeBps *big.Int,
) (*shared.SellBaseInputResult, error) {
	if base.Sign() == 0 {
		return nil, shared.ErrZeroBaseIn
	}
	if err := validateReserves(baseReserve, quoteReserve); err != nil {
		return nil, err
	}
	if isNegative(base, baseReserve, quoteReserve) {
		return nil, shared.ErrNegativeAmount
	}
	if err := validateFeeBps(lpFeeBps, protocolFeeBps); err != nil {
		return nil, err
	}
	if err := validateSlippage(slippage); err != nil {
		return nil, err
	}

	// quote_amount_out = floor(quoteReserve * base / (baseReserve + base))
	quoteAmountOut, err := MulDiv(quoteReserve, base, new(big.Int).Add(baseReserve, base), shared.RoundingDown)
	if err != nil {
		return nil, err
	}

	finalQuote := new(big.Int).Sub(quoteAmountOut, Fee(quoteAmountOut, lpFeeBps))
	finalQuote.Sub(finalQuote, Fee(quoteAmountOut, protocolFeeBps))
	if finalQuote.Sign() < 0 {
		return nil, shared.ErrNegativeFinalQuote
	}

	minQuote, err := ScaleBySlippage(finalQuote, slippage, shared.SlippageMin)
	if err != nil {
		return nil, err
	}

	return &shared.SellBaseInputResult{
		UiQuote:                finalQuote,
		MinQuote:               minQuote,
		InternalQuoteAmountOut: quoteAmountOut,
	}, nil
}

// grossQuoteAmountOut grosses a net quote up to the pre-fee pool output:
// ⌈quote * 10000 / (10000 - lp - protocol)⌉.
func grossQuoteAmountOut(quote, lpFeeBps, protocolFeeBps *big.Int) (*big.Int, error) {
	denominator := new(big.Int).Sub(shared.BasisPointMaxBig, lpFeeBps)
	denominator.Sub(denominator, protocolFeeBps)
	if denominator.Sign() <= 0 {
		return nil, shared.ErrFeesConsumeOutput
	}
	return MulDiv(quote, shared.BasisPointMaxBig, denominator, shared.RoundingUp)
}

// SellQuoteInput quotes how much base must be sold to receive an exact amount of
// quote tokens after fees.
func SellQuoteInput(
	quote *big.Int,
	slippage float64,
	baseReserve *big.Int,
	quoteReserve *big.Int,
	lpFeeBps *big.Int,
	protocolFeeBps *big.Int,
) (*shared.SellQuoteInputResult, error) {
	if quote.Sign() == 0 {
		return nil, shared.ErrZeroQuote
	}
	if err := validateReserves(baseReserve, quoteReserve); err != nil {
		return nil, err
	}
	if isNegative(quote, baseReserve, quoteReserve) {
		return nil, shared.ErrNegativeAmount
	}
	if quote.Cmp(quoteReserve) >= 0 {
		return nil, shared.ErrQuoteExceedsReserve
	}
	if err := validateFeeBps(lpFeeBps, protocolFeeBps); err != nil {
		return nil, err
	}
	if err := validateSlippage(slippage); err != nil {
		return nil, err
	}

	rawQuote, err := grossQuoteAmountOut(quote, lpFeeBps, protocolFeeBps)
	if err != nil {
		return nil, err
	}
	if rawQuote.Cmp(quoteReserve) >= 0 {
		return nil, shared.ErrRawQuoteExceeds
	}

	// base_amount_in = ceil(baseReserve * rawQuote / (quoteReserve - rawQuote))
	baseAmountIn, err := MulDiv(baseReserve, rawQuote, new(big.Int).Sub(quoteReserve, rawQuote), shared.RoundingUp)
	if err != nil {
		return nil, err
	}

	minQuote, err := ScaleBySlippage(quote, slippage, shared.SlippageMin)
	if err != nil {
		return nil, err
	}

	return &shared.SellQuoteInputResult{
		InternalRawQuote: rawQuote,
		Base:             baseAmountIn,
		MinQuote:         minQuote,
	}, nil
}
