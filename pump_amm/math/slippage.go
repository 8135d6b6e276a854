package math

import (
	gomath "math"
	"math/big"

	"github.com/shopspring/decimal"

	"github.com/krazyTry/pump-amm-go/pump_amm/shared"
)

var hundred = decimal.NewFromInt(100)

// SlippageFactor converts a percent tolerance into a 1e9 fixed-point multiplier:
// ⌊(1 ± slippage/100) * 1e9⌋. The percent is parsed as an exact decimal so the
// factor does not depend on float rounding. A negative factor clamps to zero.
func SlippageFactor(slippage float64, mode shared.SlippageMode) (*big.Int, error) {
	if gomath.IsNaN(slippage) || gomath.IsInf(slippage, 0) {
		return nil, shared.ErrSlippageOutOfRange
	}
	pct := decimal.NewFromFloat(slippage)

	factor := hundred.Add(pct)
	if mode == shared.SlippageMin {
		factor = hundred.Sub(pct)
	}
	// (100 ± s) * 1e7 == (1 ± s/100) * 1e9
	factor = factor.Shift(7).Floor()
	if factor.Sign() < 0 {
		return big.NewInt(0), nil
	}
	return factor.BigInt(), nil
}

// ScaleBySlippage returns ⌊amount * factor / 1e9⌋.
func ScaleBySlippage(amount *big.Int, slippage float64, mode shared.SlippageMode) (*big.Int, error) {
	factor, err := SlippageFactor(slippage, mode)
	if err != nil {
		return nil, err
	}
	out := new(big.Int).Mul(amount, factor)
	return out.Div(out, shared.SlippagePrecisionBig), nil
}

func validateSlippage(slippage float64) error {
	if gomath.IsNaN(slippage) || slippage < 0 || slippage > shared.MaxSlippagePercent {
		return shared.ErrSlippageOutOfRange
	}
	return nil
}
