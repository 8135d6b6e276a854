package shared

import (
	"errors"
	"fmt"
)

// Error kinds. Every failure returned by the quote engines wraps exactly one of these.
var (
	ErrInvalidInput     = errors.New("invalid input")
	ErrDivisionByZero   = errors.New("division by zero")
	ErrFeesExceedOutput = errors.New("fees exceed total output")
)

// Stable failure messages; callers may match on either the failure or its kind.
var (
	ErrZeroBase             = fmt.Errorf("%w: 'base' cannot be zero", ErrInvalidInput)
	ErrZeroBaseIn           = fmt.Errorf("%w: 'base' (base_amount_in) cannot be zero", ErrInvalidInput)
	ErrZeroQuote            = fmt.Errorf("%w: 'quote' cannot be zero", ErrInvalidInput)
	ErrZeroReserves         = fmt.Errorf("%w: 'baseReserve' or 'quoteReserve' cannot be zero", ErrInvalidInput)
	ErrNegativeAmount       = fmt.Errorf("%w: amounts and reserves cannot be negative", ErrInvalidInput)
	ErrNegativeFeeBps       = fmt.Errorf("%w: fee basis points cannot be negative", ErrInvalidInput)
	ErrBaseExceedsReserve   = fmt.Errorf("%w: cannot buy more base tokens than the pool reserves", ErrInvalidInput)
	ErrPoolDepleted         = fmt.Errorf("%w: pool would be depleted; denominator is zero", ErrInvalidInput)
	ErrQuoteExceedsReserve  = fmt.Errorf("%w: cannot receive more quote tokens than the pool quote reserves", ErrInvalidInput)
	ErrFeesConsumeOutput    = fmt.Errorf("%w: total fee basis points leave nothing to receive", ErrInvalidInput)
	ErrRawQuoteExceeds      = fmt.Errorf("%w: desired quote amount exceeds available reserve", ErrInvalidInput)
	ErrSlippageOutOfRange   = fmt.Errorf("%w: slippage must be between 0 and 100 (0%% to 100%%)", ErrInvalidInput)
	ErrZeroLpAmount         = fmt.Errorf("%w: LP amount or total LP tokens cannot be zero", ErrInvalidInput)
	ErrZeroDivisor          = fmt.Errorf("%w: cannot divide by zero", ErrDivisionByZero)
	ErrZeroTotalLpTokens    = fmt.Errorf("%w: totalLpTokens cannot be zero", ErrDivisionByZero)
	ErrZeroToken0Reserve    = fmt.Errorf("%w: token0Reserve cannot be zero", ErrDivisionByZero)
	ErrNegativeFinalQuote   = fmt.Errorf("%w; final quote is negative", ErrFeesExceedOutput)
	ErrZeroInitialBaseInput = fmt.Errorf("%w: 'initialBase' cannot be zero", ErrInvalidInput)
)
