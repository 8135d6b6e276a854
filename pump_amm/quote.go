package pumpamm

import (
	"context"
	"math/big"

	"github.com/gagliardetto/solana-go"
	"go.uber.org/zap"

	ammmath "github.com/krazyTry/pump-amm-go/pump_amm/math"
	"github.com/krazyTry/pump-amm-go/pump_amm/shared"
)

// swapState loads the pool reserves and the fee schedule a swap quote needs.
func (p *PumpAmm) swapState(ctx context.Context, pool solana.PublicKey) (*PoolReserves, shared.FeeSchedule, error) {
	reserves, err := p.GetPoolBaseAndQuoteAmounts(ctx, pool)
	if err != nil {
		return nil, shared.FeeSchedule{}, err
	}
	config, err := p.FetchGlobalConfig(ctx)
	if err != nil {
		return nil, shared.FeeSchedule{}, err
	}
	return reserves, config.FeeSchedule(), nil
}

// BuyBaseInputQuote quotes buying exactly base tokens from pool.
func (p *PumpAmm) BuyBaseInputQuote(ctx context.Context, pool solana.PublicKey, base *big.Int, slippage float64) (*shared.BuyBaseInputResult, error) {
	reserves, fees, err := p.swapState(ctx, pool)
	if err != nil {
		return nil, err
	}
	return ammmath.BuyBaseInput(base, slippage, reserves.BaseAmount, reserves.QuoteAmount, fees.LpFeeBps, fees.ProtocolFeeBps)
}

// BuyQuoteInputQuote quotes spending exactly quote tokens on pool.
func (p *PumpAmm) BuyQuoteInputQuote(ctx context.Context, pool solana.PublicKey, quote *big.Int, slippage float64) (*shared.BuyQuoteInputResult, error) {
	reserves, fees, err := p.swapState(ctx, pool)
	if err != nil {
		return nil, err
	}
	return ammmath.BuyQuoteInput(quote, slippage, reserves.BaseAmount, reserves.QuoteAmount, fees.LpFeeBps, fees.ProtocolFeeBps)
}

func (p *PumpAmm) SellBaseInputQuote(ctx context.Context, pool solana.PublicKey, base *big.Int, slippage float64) (*shared.SellBaseInputResult, error) {
	reserves, fees, err := p.swapState(ctx, pool)
	if err != nil {
		return nil, err
	}
	return ammmath.SellBaseInput(base, slippage, reserves.BaseAmount, reserves.QuoteAmount, fees.LpFeeBps, fees.ProtocolFeeBps)
}

func (p *PumpAmm) SellQuoteInputQuote(ctx context.Context, pool solana.PublicKey, quote *big.Int, slippage float64) (*shared.SellQuoteInputResult, error) {
	reserves, fees, err := p.swapState(ctx, pool)
	if err != nil {
		return nil, err
	}
	return ammmath.SellQuoteInput(quote, slippage, reserves.BaseAmount, reserves.QuoteAmount, fees.LpFeeBps, fees.ProtocolFeeBps)
}

func (p *PumpAmm) BuyAutocompleteQuoteFromBase(ctx context.Context, pool solana.PublicKey, base *big.Int, slippage float64) (*big.Int, error) {
	out, err := p.BuyBaseInputQuote(ctx, pool, base, slippage)
	if err != nil {
		return nil, err
	}
	return out.UiQuote, nil
}

func (p *PumpAmm) BuyAutocompleteBaseFromQuote(ctx context.Context, pool solana.PublicKey, quote *big.Int, slippage float64) (*big.Int, error) {
	out, err := p.BuyQuoteInputQuote(ctx, pool, quote, slippage)
	if err != nil {
		return nil, err
	}
	return out.Base, nil
}

func (p *PumpAmm) SellAutocompleteQuoteFromBase(ctx context.Context, pool solana.PublicKey, base *big.Int, slippage float64) (*big.Int, error) {
	out, err := p.SellBaseInputQuote(ctx, pool, base, slippage)
	if err != nil {
		return nil, err
	}
	return out.UiQuote, nil
}

func (p *PumpAmm) SellAutocompleteBaseFromQuote(ctx context.Context, pool solana.PublicKey, quote *big.Int, slippage float64) (*big.Int, error) {
	out, err := p.SellQuoteInputQuote(ctx, pool, quote, slippage)
	if err != nil {
		return nil, err
	}
	return out.Base, nil
}

// SwapAutocompleteQuoteFromBase returns the quote side of a swap of base tokens:
// the quote paid when buying, the quote received when selling.
func (p *PumpAmm) SwapAutocompleteQuoteFromBase(ctx context.Context, pool solana.PublicKey, base *big.Int, slippage float64, direction shared.Direction) (*big.Int, error) {
	p.logger.Debug("swap autocomplete quote", zap.Stringer("pool", pool), zap.String("direction", direction.String()), zap.Stringer("base", base))
	if direction == shared.DirectionQuoteToBase {
		return p.BuyAutocompleteQuoteFromBase(ctx, pool, base, slippage)
	}
	return p.SellAutocompleteQuoteFromBase(ctx, pool, base, slippage)
}

func (p *PumpAmm) SwapAutocompleteBaseFromQuote(ctx context.Context, pool solana.PublicKey, quote *big.Int, slippage float64, direction shared.Direction) (*big.Int, error) {
	p.logger.Debug("swap autocomplete base", zap.Stringer("pool", pool), zap.String("direction", direction.String()), zap.Stringer("quote", quote))
	if direction == shared.DirectionQuoteToBase {
		return p.BuyAutocompleteBaseFromQuote(ctx, pool, quote, slippage)
	}
	return p.SellAutocompleteBaseFromQuote(ctx, pool, quote, slippage)
}

// DepositBaseInput quotes a deposit sized by its base side.
func (p *PumpAmm) DepositBaseInput(ctx context.Context, pool solana.PublicKey, base *big.Int, slippage float64) (*shared.DepositBaseResult, error) {
	reserves, err := p.GetPoolBaseAndQuoteAmounts(ctx, pool)
	if err != nil {
		return nil, err
	}
	out, err := ammmath.DepositToken0(base, slippage, reserves.BaseAmount, reserves.QuoteAmount, reserves.LpSupply())
	if err != nil {
		return nil, err
	}
	return &shared.DepositBaseResult{
		Quote:    out.Token1,
		LpToken:  out.LpToken,
		MaxBase:  out.MaxToken0,
		MaxQuote: out.MaxToken1,
	}, nil
}

// DepositQuoteInput quotes a deposit sized by its quote side. The reserves are
// passed swapped so that quote plays the role of token0.
func (p *PumpAmm) DepositQuoteInput(ctx context.Context, pool solana.PublicKey, quote *big.Int, slippage float64) (*shared.DepositQuoteResult, error) {
	reserves, err := p.GetPoolBaseAndQuoteAmounts(ctx, pool)
	if err != nil {
		return nil, err
	}
	out, err := ammmath.DepositToken0(quote, slippage, reserves.QuoteAmount, reserves.BaseAmount, reserves.LpSupply())
	if err != nil {
		return nil, err
	}
	return &shared.DepositQuoteResult{
		Base:     out.Token1,
		LpToken:  out.LpToken,
		MaxBase:  out.MaxToken1,
		MaxQuote: out.MaxToken0,
	}, nil
}

// DepositLpToken quotes the maximum base and quote spent to mint lpToken.
func (p *PumpAmm) DepositLpToken(ctx context.Context, pool solana.PublicKey, lpToken *big.Int, slippage float64) (*shared.DepositLpTokenResult, error) {
	reserves, err := p.GetPoolBaseAndQuoteAmounts(ctx, pool)
	if err != nil {
		return nil, err
	}
	return ammmath.DepositLpToken(lpToken, slippage, reserves.BaseAmount, reserves.QuoteAmount, reserves.LpSupply())
}

func (p *PumpAmm) DepositAutocompleteQuoteAndLpTokenFromBase(ctx context.Context, pool solana.PublicKey, base *big.Int, slippage float64) (*shared.DepositQuoteAndLpTokenFromBaseResult, error) {
	out, err := p.DepositBaseInput(ctx, pool, base, slippage)
	if err != nil {
		return nil, err
	}
	return &shared.DepositQuoteAndLpTokenFromBaseResult{Quote: out.Quote, LpToken: out.LpToken}, nil
}

func (p *PumpAmm) DepositAutocompleteBaseAndLpTokenFromQuote(ctx context.Context, pool solana.PublicKey, quote *big.Int, slippage float64) (*shared.DepositBaseAndLpTokenFromQuoteResult, error) {
	out, err := p.DepositQuoteInput(ctx, pool, quote, slippage)
	if err != nil {
		return nil, err
	}
	return &shared.DepositBaseAndLpTokenFromQuoteResult{Base: out.Base, LpToken: out.LpToken}, nil
}

// WithdrawInputs quotes burning lpAmount from pool.
func (p *PumpAmm) WithdrawInputs(ctx context.Context, pool solana.PublicKey, lpAmount *big.Int, slippage float64) (*shared.WithdrawResult, error) {
	reserves, err := p.GetPoolBaseAndQuoteAmounts(ctx, pool)
	if err != nil {
		return nil, err
	}
	return ammmath.Withdraw(lpAmount, slippage, reserves.BaseAmount, reserves.QuoteAmount, reserves.LpSupply())
}

func (p *PumpAmm) WithdrawAutocompleteBaseAndQuoteFromLpToken(ctx context.Context, pool solana.PublicKey, lpAmount *big.Int, slippage float64) (*shared.WithdrawAutocompleteResult, error) {
	out, err := p.WithdrawInputs(ctx, pool, lpAmount, slippage)
	if err != nil {
		return nil, err
	}
	return &shared.WithdrawAutocompleteResult{Base: out.Base, Quote: out.Quote}, nil
}

// CreateAutocompleteInitialPoolPrice returns the integer quote-per-base price of a
// pool seeded with initialBase and initialQuote.
func CreateAutocompleteInitialPoolPrice(initialBase, initialQuote *big.Int) (*big.Int, error) {
	if initialBase.Sign() == 0 {
		return nil, shared.ErrZeroInitialBaseInput
	}
	if initialBase.Sign() < 0 || initialQuote.Sign() < 0 {
		return nil, shared.ErrNegativeAmount
	}
	return new(big.Int).Quo(initialQuote, initialBase), nil
}
