package solana

import (
	"errors"
	"math/big"

	binary "github.com/gagliardetto/binary"
	"github.com/gagliardetto/solana-go"
	"github.com/gagliardetto/solana-go/rpc"
)

type AccountState uint8

const (
	AccountStateUninitialized AccountState = 0
	AccountStateInitialized   AccountState = 1
	AccountStateFrozen        AccountState = 2
)

// TokenAccountSize is the base SPL token account length. Token-2022 accounts
// append extensions after it, so the prefix decodes the same way.
const TokenAccountSize = 165

var ErrShortTokenAccount = errors.New("token account data too short")

// TokenAccount https://github.com/solana-labs/solana-program-library/blob/d72289c79a04411c69a8bf1054f7156b6196f9b3/token/js/src/state/account.ts#L69
type TokenAccount struct {
	Mint                 solana.PublicKey
	Owner                solana.PublicKey
	Amount               uint64
	DelegateOption       uint32
	Delegate             solana.PublicKey
	State                uint8
	IsNativeOption       uint32
	IsNative             uint64
	DelegatedAmount      uint64
	CloseAuthorityOption uint32
	CloseAuthority       solana.PublicKey
}

func (a *TokenAccount) IsInitialized() bool {
	return AccountState(a.State) != AccountStateUninitialized
}

func (a *TokenAccount) IsFrozen() bool {
	return AccountState(a.State) == AccountStateFrozen
}

func DecodeTokenAccount(data []byte) (*TokenAccount, error) {
	if len(data) < TokenAccountSize {
		return nil, ErrShortTokenAccount
	}
	account := &TokenAccount{}
	if err := binary.NewBinDecoder(data[:TokenAccountSize]).Decode(account); err != nil {
		return nil, err
	}
	return account, nil
}

// TokenAmountFromData reads the balance of a token account returned either
// jsonParsed or as raw bytes.
func TokenAmountFromData(data *rpc.DataBytesOrJSON) (*big.Int, error) {
	if raw := data.GetRawJSON(); len(raw) > 0 {
		return ParseTokenAmount(raw)
	}
	account, err := DecodeTokenAccount(data.GetBinary())
	if err != nil {
		return nil, err
	}
	return new(big.Int).SetUint64(account.Amount), nil
}
