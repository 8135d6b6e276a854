package math

import (
	"math/big"

	"github.com/krazyTry/pump-amm-go/pump_amm/shared"
)

// DepositToken0 quotes a single-sided deposit of token0. The paired token1 amount
// and the minted LP tokens are floored; both sides get a slippage ceiling.
func DepositToken0(
	token0 *big.Int,
	slippage float64,
	token0Reserve *big.Int,
	token1Reserve *big.Int,
	totalLpTokens *big.Int,
) (*shared.DepositResult, error) {
	if err := validateSlippage(slippage); err != nil {
		return nil, err
	}
	if isNegative(token0, token0Reserve, token1Reserve, totalLpTokens) {
		return nil, shared.ErrNegativeAmount
	}
	if token0Reserve.Sign() == 0 {
		return nil, shared.ErrZeroToken0Reserve
	}

	token1, err := MulDiv(token0, token1Reserve, token0Reserve, shared.RoundingDown)
	if err != nil {
		return nil, err
	}
	lpToken, err := MulDiv(token0, totalLpTokens, token0Reserve, shared.RoundingDown)
	if err != nil {
		return nil, err
	}

	maxToken0, err := ScaleBySlippage(token0, slippage, shared.SlippageMax)
	if err != nil {
		return nil, err
	}
	maxToken1, err := ScaleBySlippage(token1, slippage, shared.SlippageMax)
	if err != nil {
		return nil, err
	}

	return &shared.DepositResult{
		Token1:    token1,
		LpToken:   lpToken,
		MaxToken0: maxToken0,
		MaxToken1: maxToken1,
	}, nil
}

// DepositLpToken quotes the base and quote needed to mint an exact amount of LP
// tokens. Amounts round up so the pool is never under-collateralised.
func DepositLpToken(
	lpToken *big.Int,
	slippage float64,
	baseReserve *big.Int,
	quoteReserve *big.Int,
	totalLpTokens *big.Int,
) (*shared.DepositLpTokenResult, error) {
	if totalLpTokens.Sign() == 0 {
		return nil, shared.ErrZeroTotalLpTokens
	}
	if err := validateSlippage(slippage); err != nil {
		return nil, err
	}
	if isNegative(lpToken, baseReserve, quoteReserve, totalLpTokens) {
		return nil, shared.ErrNegativeAmount
	}

	baseAmountIn, err := MulDiv(baseReserve, lpToken, totalLpTokens, shared.RoundingUp)
	if err != nil {
		return nil, err
	}
	quoteAmountIn, err := MulDiv(quoteReserve, lpToken, totalLpTokens, shared.RoundingUp)
	if err != nil {
		return nil, err
	}

	maxBase, err := ScaleBySlippage(baseAmountIn, slippage, shared.SlippageMax)
	if err != nil {
		return nil, err
	}
	maxQuote, err := ScaleBySlippage(quoteAmountIn, slippage, shared.SlippageMax)
	if err != nil {
		return nil, err
	}

	return &shared.DepositLpTokenResult{
		MaxBase:  maxBase,
		MaxQuote: maxQuote,
	}, nil
}
