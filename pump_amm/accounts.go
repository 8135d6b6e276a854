package pumpamm

import (
	"bytes"
	"errors"
	"fmt"
	"math/big"

	binary "github.com/gagliardetto/binary"
	"github.com/gagliardetto/solana-go"

	"github.com/krazyTry/pump-amm-go/pump_amm/shared"
	solanago "github.com/krazyTry/pump-amm-go/solana"
)

var (
	poolDiscriminator         = solanago.Discriminator(AccountKeyPool)
	globalConfigDiscriminator = solanago.Discriminator(AccountKeyGlobalConfig)

	ErrInvalidDiscriminator = errors.New("invalid account discriminator")
	ErrNoFeeRecipients      = errors.New("global config has no protocol fee recipients")
)

// Pool is the on-chain pool account, without its discriminator.
type Pool struct {
	PoolBump              uint8
	Index                 uint16
	Creator               solana.PublicKey
	BaseMint              solana.PublicKey
	QuoteMint             solana.PublicKey
	LpMint                solana.PublicKey
	PoolBaseTokenAccount  solana.PublicKey
	PoolQuoteTokenAccount solana.PublicKey
	LpSupply              uint64
}

// GlobalConfig is the program-wide configuration account, without its discriminator.
type GlobalConfig struct {
	Admin                  solana.PublicKey
	LpFeeBasisPoints       uint64
	ProtocolFeeBasisPoints uint64
	DisableFlags           uint8
	ProtocolFeeRecipients  [MaxProtocolFeeRecipients]solana.PublicKey
}

// FeeSchedule returns the configured fee rates as big integers.
func (c *GlobalConfig) FeeSchedule() shared.FeeSchedule {
	return shared.FeeSchedule{
		LpFeeBps:       new(big.Int).SetUint64(c.LpFeeBasisPoints),
		ProtocolFeeBps: new(big.Int).SetUint64(c.ProtocolFeeBasisPoints),
	}
}

// ActiveFeeRecipients returns the configured recipients, skipping unset slots.
func (c *GlobalConfig) ActiveFeeRecipients() []solana.PublicKey {
	out := make([]solana.PublicKey, 0, len(c.ProtocolFeeRecipients))
	for _, recipient := range c.ProtocolFeeRecipients {
		if recipient.IsZero() {
			continue
		}
		out = append(out, recipient)
	}
	return out
}

func DecodePool(data []byte) (*Pool, error) {
	payload, err := stripDiscriminator(data, poolDiscriminator)
	if err != nil {
		return nil, fmt.Errorf("decode pool: %w", err)
	}
	pool := &Pool{}
	if err := binary.NewBorshDecoder(payload).Decode(pool); err != nil {
		return nil, fmt.Errorf("decode pool: %w", err)
	}
	return pool, nil
}

func DecodeGlobalConfig(data []byte) (*GlobalConfig, error) {
	payload, err := stripDiscriminator(data, globalConfigDiscriminator)
	if err != nil {
		return nil, fmt.Errorf("decode global config: %w", err)
	}
	config := &GlobalConfig{}
	if err := binary.NewBorshDecoder(payload).Decode(config); err != nil {
		return nil, fmt.Errorf("decode global config: %w", err)
	}
	return config, nil
}

func stripDiscriminator(data, discriminator []byte) ([]byte, error) {
	if len(data) < len(discriminator) || !bytes.Equal(data[:len(discriminator)], discriminator) {
		return nil, ErrInvalidDiscriminator
	}
	return data[len(discriminator):], nil
}
