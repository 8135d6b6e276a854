package pumpamm

import (
	"github.com/gagliardetto/solana-go"
	"github.com/gagliardetto/solana-go/rpc"
	"go.uber.org/zap"

	solanago "github.com/krazyTry/pump-amm-go/solana"
)

// RPCClient is the part of *rpc.Client the SDK reads from.
type RPCClient = solanago.ProgramAccountReader

// PumpAmm reads pool state over RPC and feeds it to the quote engines.
// It is safe for concurrent use.
type PumpAmm struct {
	rpcClient    RPCClient
	commitment   rpc.CommitmentType
	programID    solana.PublicKey
	globalConfig solana.PublicKey
	feeRecipient FeeRecipientSelector
	logger       *zap.Logger
}

func NewPumpAmm(
	rpcClient RPCClient,
	opts ...Option,
) (*PumpAmm, error) {
	o := &PumpAmm{
		rpcClient:    rpcClient,
		commitment:   rpc.CommitmentConfirmed,
		programID:    PumpAmmProgramID,
		feeRecipient: &RoundRobinFeeRecipient{},
		logger:       zap.NewNop(),
	}
	for _, fn := range opts {
		fn(o)
	}

	globalConfig, _, err := DeriveGlobalConfig(o.programID)
	if err != nil {
		return nil, err
	}
	o.globalConfig = globalConfig
	return o, nil
}

type Option func(*PumpAmm)

func WithProgramID(programID solana.PublicKey) Option {
	return func(p *PumpAmm) {
		p.programID = programID
	}
}

func WithCommitment(commitment rpc.CommitmentType) Option {
	return func(p *PumpAmm) {
		p.commitment = commitment
	}
}

func WithLogger(logger *zap.Logger) Option {
	return func(p *PumpAmm) {
		if logger != nil {
			p.logger = logger
		}
	}
}

func WithFeeRecipientSelector(selector FeeRecipientSelector) Option {
	return func(p *PumpAmm) {
		if selector != nil {
			p.feeRecipient = selector
		}
	}
}

func (p *PumpAmm) ProgramID() solana.PublicKey {
	return p.programID
}

func (p *PumpAmm) GlobalConfigKey() solana.PublicKey {
	return p.globalConfig
}

func (p *PumpAmm) PoolKey(index uint16, creator, baseMint, quoteMint solana.PublicKey) (solana.PublicKey, uint8, error) {
	return DerivePool(p.programID, index, creator, baseMint, quoteMint)
}

func (p *PumpAmm) LpMintKey(pool solana.PublicKey) (solana.PublicKey, uint8, error) {
	return DeriveLpMint(p.programID, pool)
}

func (p *PumpAmm) CanonicalPoolKey(mint solana.PublicKey) (solana.PublicKey, uint8, error) {
	return DeriveCanonicalPumpPool(p.programID, PumpProgramID, mint)
}
