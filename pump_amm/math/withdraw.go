package math

import (
	"math/big"

	"github.com/krazyTry/pump-amm-go/pump_amm/shared"
)

// Withdraw quotes the base and quote redeemed by burning lpAmount. Amounts are
// floored and the minima may legitimately reach zero at high slippage.
func Withdraw(
	lpAmount *big.Int,
	slippage float64,
	baseReserve *big.Int,
	quoteReserve *big.Int,
	totalLpTokens *big.Int,
) (*shared.WithdrawResult, error) {
	if lpAmount.Sign() == 0 || totalLpTokens.Sign() == 0 {
		return nil, shared.ErrZeroLpAmount
	}
	if err := validateSlippage(slippage); err != nil {
		return nil, err
	}
	if isNegative(lpAmount, baseReserve, quoteReserve, totalLpTokens) {
		return nil, shared.ErrNegativeAmount
	}

	base, err := MulDiv(baseReserve, lpAmount, totalLpTokens, shared.RoundingDown)
	if err != nil {
		return nil, err
	}
	quote, err := MulDiv(quoteReserve, lpAmount, totalLpTokens, shared.RoundingDown)
	if err != nil {
		return nil, err
	}

	minBase, err := ScaleBySlippage(base, slippage, shared.SlippageMin)
	if err != nil {
		return nil, err
	}
	minQuote, err := ScaleBySlippage(quote, slippage, shared.SlippageMin)
	if err != nil {
		return nil, err
	}

	return &shared.WithdrawResult{
		Base:     base,
		Quote:    quote,
		MinBase:  minBase,
		MinQuote: minQuote,
	}, nil
}
