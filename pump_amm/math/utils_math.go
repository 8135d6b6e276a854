package math

import (
	"math/big"

	"github.com/krazyTry/pump-amm-go/pump_amm/shared"
)

// CeilDiv returns ⌈a/b⌉ for non-negative a and positive b.
func CeilDiv(a, b *big.Int) (*big.Int, error) {
	if b.Sign() == 0 {
		return nil, shared.ErrZeroDivisor
	}
	// (a + b - 1) / b
	num := new(big.Int).Add(a, b)
	num.Sub(num, big.NewInt(1))
	return num.Div(num, b), nil
}

// MulDiv returns x*y/denominator rounded in the requested direction.
func MulDiv(x, y, denominator *big.Int, rounding shared.Rounding) (*big.Int, error) {
	if denominator.Sign() == 0 {
		return nil, shared.ErrZeroDivisor
	}
	prod := new(big.Int).Mul(x, y)
	if rounding == shared.RoundingUp {
		return CeilDiv(prod, denominator)
	}
	return prod.Div(prod, denominator), nil
}

// Fee returns ⌈amount*bps/10000⌉. Fees always round in the protocol's favour.
func Fee(amount, basisPoints *big.Int) *big.Int {
	fee, _ := MulDiv(amount, basisPoints, shared.BasisPointMaxBig, shared.RoundingUp)
	return fee
}

func isNegative(values ...*big.Int) bool {
	for _, v := range values {
		if v.Sign() < 0 {
			return true
		}
	}
	return false
}

func validateFeeBps(lpFeeBps, protocolFeeBps *big.Int) error {
	if lpFeeBps.Sign() < 0 || protocolFeeBps.Sign() < 0 {
		return shared.ErrNegativeFeeBps
	}
	return nil
}

func validateReserves(baseReserve, quoteReserve *big.Int) error {
	if baseReserve.Sign() == 0 || quoteReserve.Sign() == 0 {
		return shared.ErrZeroReserves
	}
	return nil
}
