package shared

import "math/big"

// Direction of a swap relative to the pool's base token.
type Direction uint8

const (
	// DirectionQuoteToBase pays quote tokens and receives base tokens (buy).
	DirectionQuoteToBase Direction = 0
	// DirectionBaseToQuote pays base tokens and receives quote tokens (sell).
	DirectionBaseToQuote Direction = 1
)

func (d Direction) String() string {
	switch d {
	case DirectionQuoteToBase:
		return "quoteToBase"
	case DirectionBaseToQuote:
		return "baseToQuote"
	default:
		return "unknown"
	}
}

// SlippageMode selects which side of a quoted amount the tolerance is applied to.
type SlippageMode uint8

const (
	// SlippageMax scales up: the most a caller is willing to pay (buy, deposit).
	SlippageMax SlippageMode = 0
	// SlippageMin scales down: the least a caller is willing to receive (sell, withdraw).
	SlippageMin SlippageMode = 1
)

// ReservePair is a snapshot of a pool's two token balances.
type ReservePair struct {
	BaseReserve  *big.Int
	QuoteReserve *big.Int
}

// FeeSchedule holds the pool fee rates in basis points.
type FeeSchedule struct {
	LpFeeBps       *big.Int
	ProtocolFeeBps *big.Int
}

type BuyBaseInputResult struct {
	InternalQuoteAmount *big.Int
	// UiQuote is the quote required to buy the requested base, LP and protocol fees included.
	UiQuote *big.Int
	// MaxQuote is the most quote the caller will pay within the slippage tolerance.
	MaxQuote *big.Int
}

type BuyQuoteInputResult struct {
	// Base is the amount of base tokens received after fees.
	Base                     *big.Int
	InternalQuoteWithoutFees *big.Int
	MaxQuote                 *big.Int
}

type SellBaseInputResult struct {
	// UiQuote is the quote the seller receives after LP and protocol fees.
	UiQuote *big.Int
	// MinQuote is the least quote the seller accepts within the slippage tolerance.
	MinQuote               *big.Int
	InternalQuoteAmountOut *big.Int
}

type SellQuoteInputResult struct {
	InternalRawQuote *big.Int
	// Base is the amount of base tokens required to receive the requested quote.
	Base     *big.Int
	MinQuote *big.Int
}

// DepositResult is a single-sided deposit quote. Token0 is the side supplied by
// the caller and Token1 is the paired side.
type DepositResult struct {
	Token1    *big.Int
	LpToken   *big.Int
	MaxToken0 *big.Int
	MaxToken1 *big.Int
}

type DepositLpTokenResult struct {
	MaxBase  *big.Int
	MaxQuote *big.Int
}

type DepositBaseResult struct {
	Quote    *big.Int
	LpToken  *big.Int
	MaxBase  *big.Int
	MaxQuote *big.Int
}

type DepositQuoteResult struct {
	Base     *big.Int
	LpToken  *big.Int
	MaxBase  *big.Int
	MaxQuote *big.Int
}

type DepositQuoteAndLpTokenFromBaseResult struct {
	Quote   *big.Int
	LpToken *big.Int
}

type DepositBaseAndLpTokenFromQuoteResult struct {
	Base    *big.Int
	LpToken *big.Int
}

type WithdrawResult struct {
	Base     *big.Int
	Quote    *big.Int
	MinBase  *big.Int
	MinQuote *big.Int
}

type WithdrawAutocompleteResult struct {
	Base  *big.Int
	Quote *big.Int
}
