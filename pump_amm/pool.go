package pumpamm

import (
	"context"
	"fmt"
	"math/big"

	"github.com/gagliardetto/solana-go"
	"go.uber.org/zap"

	"github.com/krazyTry/pump-amm-go/pump_amm/shared"
	solanago "github.com/krazyTry/pump-amm-go/solana"
)

// PoolReserves is a pool account together with the balances of its two vaults.
type PoolReserves struct {
	Address     solana.PublicKey
	Pool        *Pool
	BaseAmount  *big.Int
	QuoteAmount *big.Int
}

func (r *PoolReserves) ReservePair() shared.ReservePair {
	return shared.ReservePair{BaseReserve: r.BaseAmount, QuoteReserve: r.QuoteAmount}
}

func (r *PoolReserves) LpSupply() *big.Int {
	return new(big.Int).SetUint64(r.Pool.LpSupply)
}

func (p *PumpAmm) FetchGlobalConfig(ctx context.Context) (*GlobalConfig, error) {
	out, err := solanago.GetAccountInfo(ctx, p.rpcClient, p.commitment, p.globalConfig)
	if err != nil {
		return nil, fmt.Errorf("fetch global config %s: %w", p.globalConfig, err)
	}
	return DecodeGlobalConfig(out.GetBinary())
}

func (p *PumpAmm) FetchPool(ctx context.Context, pool solana.PublicKey) (*Pool, error) {
	out, err := solanago.GetAccountInfo(ctx, p.rpcClient, p.commitment, pool)
	if err != nil {
		return nil, fmt.Errorf("fetch pool %s: %w", pool, err)
	}
	return DecodePool(out.GetBinary())
}

// FetchPoolsByBaseMint lists every pool whose base token is baseMint.
func (p *PumpAmm) FetchPoolsByBaseMint(ctx context.Context, baseMint solana.PublicKey) (map[solana.PublicKey]*Pool, error) {
	return p.fetchPoolsByMint(ctx, baseMint, poolBaseMintOffset)
}

// FetchPoolsByQuoteMint lists every pool quoted in quoteMint.
func (p *PumpAmm) FetchPoolsByQuoteMint(ctx context.Context, quoteMint solana.PublicKey) (map[solana.PublicKey]*Pool, error) {
	return p.fetchPoolsByMint(ctx, quoteMint, poolQuoteMintOffset)
}

func (p *PumpAmm) fetchPoolsByMint(ctx context.Context, mint solana.PublicKey, offset uint64) (map[solana.PublicKey]*Pool, error) {
	opts := solanago.GenProgramAccountFilter(AccountKeyPool, p.commitment, mint, offset)
	outs, err := p.rpcClient.GetProgramAccountsWithOpts(ctx, p.programID, opts)
	if err != nil {
		return nil, fmt.Errorf("fetch pools for %s: %w", mint, err)
	}

	pools := make(map[solana.PublicKey]*Pool, len(outs))
	for _, out := range outs {
		if out == nil || out.Account == nil {
			continue
		}
		pool, err := DecodePool(out.Account.Data.GetBinary())
		if err != nil {
			return nil, fmt.Errorf("pool %s: %w", out.Pubkey, err)
		}
		pools[out.Pubkey] = pool
	}
	p.logger.Debug("fetched pools", zap.Stringer("mint", mint), zap.Int("count", len(pools)))
	return pools, nil
}

// GetPoolBaseAndQuoteAmounts fetches the pool and the current balances of its vaults.
func (p *PumpAmm) GetPoolBaseAndQuoteAmounts(ctx context.Context, pool solana.PublicKey) (*PoolReserves, error) {
	fetchedPool, err := p.FetchPool(ctx, pool)
	if err != nil {
		return nil, err
	}

	amounts, err := solanago.GetMultipleTokenAmounts(ctx, p.rpcClient, p.commitment,
		fetchedPool.PoolBaseTokenAccount,
		fetchedPool.PoolQuoteTokenAccount,
	)
	if err != nil {
		return nil, fmt.Errorf("fetch reserves of pool %s: %w", pool, err)
	}

	p.logger.Debug("pool reserves",
		zap.Stringer("pool", pool),
		zap.Stringer("baseReserve", amounts[0]),
		zap.Stringer("quoteReserve", amounts[1]),
		zap.Uint64("lpSupply", fetchedPool.LpSupply),
	)

	return &PoolReserves{
		Address:     pool,
		Pool:        fetchedPool,
		BaseAmount:  amounts[0],
		QuoteAmount: amounts[1],
	}, nil
}

// ProtocolFeeRecipient returns override when set, otherwise asks the configured
// selector to choose among the global config's recipients.
func (p *PumpAmm) ProtocolFeeRecipient(ctx context.Context, override *solana.PublicKey) (solana.PublicKey, error) {
	if override != nil {
		return *override, nil
	}
	config, err := p.FetchGlobalConfig(ctx)
	if err != nil {
		return solana.PublicKey{}, err
	}
	recipient, err := p.feeRecipient.Select(config.ActiveFeeRecipients())
	if err != nil {
		return solana.PublicKey{}, err
	}
	p.logger.Debug("protocol fee recipient", zap.Stringer("recipient", recipient))
	return recipient, nil
}
