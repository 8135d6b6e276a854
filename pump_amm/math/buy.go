package math

import (
	"math/big"

	"github.com/krazyTry/pump-amm-go/pump_amm/shared"
)

// BuyBaseInput quotes a buy of an exact amount of base tokens.
//
// quoteAmountIn = ⌈quoteReserve * base / (baseReserve - base)⌉, then LP and
// protocol fees are added on top and the total is scaled up by slippage.
func BuyBaseInput(
	base *big.Int,
	slippage float64, // 1 => 1%
	baseReserve *big.Int,
	quoteReserve *big.Int,
	lpFeeBps *big.Int,
	protocolFeeBps *big.Int,
) (*shared.BuyBaseInputResult, error) {
	if base.Sign() == 0 {
		return nil, shared.ErrZeroBase
	}
	if err := validateReserves(baseReserve, quoteReserve); err != nil {
		return nil, err
	}
	if isNegative(base, baseReserve, quoteReserve) {
		return nil, shared.ErrNegativeAmount
	}
	if base.Cmp(baseReserve) > 0 {
		return nil, shared.ErrBaseExceedsReserve
	}
	if err := validateFeeBps(lpFeeBps, protocolFeeBps); err != nil {
		return nil, err
	}
	if err := validateSlippage(slippage); err != nil {
		return nil, err
	}

	denominator := new(big.Int).Sub(baseReserve, base)
	if denominator.Sign() == 0 {
		return nil, shared.ErrPoolDepleted
	}

	quoteAmountIn, err := MulDiv(quoteReserve, base, denominator, shared.RoundingUp)
	if err != nil {
		return nil, err
	}

	lpFee := Fee(quoteAmountIn, lpFeeBps)
	protocolFee := Fee(quoteAmountIn, protocolFeeBps)
	totalQuote := new(big.Int).Add(quoteAmountIn, lpFee)
	totalQuote.Add(totalQuote, protocolFee)

	maxQuote, err := ScaleBySlippage(totalQuote, slippage, shared.SlippageMax)
	if err != nil {
		return nil, err
	}

	return &shared.BuyBaseInputResult{
		InternalQuoteAmount: quoteAmountIn,
		UiQuote:             totalQuote,
		MaxQuote:            maxQuote,
	}, nil
}

// BuyQuoteInput quotes a buy paying an exact amount of quote tokens, fees included.
//
// The fees are stripped first: effectiveQuote = ⌊quote * 10000 / (10000 + lp + protocol)⌋,
// then base = ⌊baseReserve * effectiveQuote / (quoteReserve + effectiveQuote)⌋.
// MaxQuote is scaled from the caller's stated input.
func BuyQuoteInput(
	quote *big.Int,
	slippage float64,
	baseReserve *big.Int,
	quoteReserve *big.Int,
	lpFeeBps *big.Int,
	protocolFeeBps *big.Int,
) (*shared.BuyQuoteInputResult, error) {
	if quote.Sign() == 0 {
		return nil, shared.ErrZeroQuote
	}
	if err := validateReserves(baseReserve, quoteReserve); err != nil {
		return nil, err
	}
	if isNegative(quote, baseReserve, quoteReserve) {
		return nil, shared.ErrNegativeAmount
	}
	if err := validateFeeBps(lpFeeBps, protocolFeeBps); err != nil {
		return nil, err
	}
	if err := validateSlippage(slippage); err != nil {
		return nil, err
	}

	totalFeeBps := new(big.Int).Add(lpFeeBps, protocolFeeBps)
	feeDenominator := totalFeeBps.Add(totalFeeBps, shared.BasisPointMaxBig)

	effectiveQuote, err := MulDiv(quote, shared.BasisPointMaxBig, feeDenominator, shared.RoundingDown)
	if err != nil {
		return nil, err
	}

	baseAmountOut, err := MulDiv(baseReserve, effectiveQuote, new(big.Int).Add(quoteReserve, effectiveQuote), shared.RoundingDown)
	if err != nil {
		return nil, err
	}

	maxQuote, err := ScaleBySlippage(quote, slippage, shared.SlippageMax)
	if err != nil {
		return nil, err
	}

	return &shared.BuyQuoteInputResult{
		Base:                     baseAmountOut,
		InternalQuoteWithoutFees: effectiveQuote,
		MaxQuote:                 maxQuote,
	}, nil
}
