package shared

import "math/big"

// Rounding direction of an integer division.
type Rounding uint8

const (
	RoundingUp   Rounding = 0
	RoundingDown Rounding = 1
)

const (
	// BasisPointMax is 100% expressed in basis points.
	BasisPointMax = 10_000
	// SlippagePrecision is the fixed-point scale of a slippage factor (1.0 == 1e9).
	SlippagePrecision = 1_000_000_000
	// MaxSlippagePercent is the largest slippage tolerance accepted by the engines.
	MaxSlippagePercent = 100
)

var (
	BasisPointMaxBig     = big.NewInt(BasisPointMax)
	SlippagePrecisionBig = big.NewInt(SlippagePrecision)
)
