package solana

import (
	"context"
	"crypto/sha256"
	"errors"
	"fmt"
	"math/big"

	"github.com/gagliardetto/solana-go"
	"github.com/gagliardetto/solana-go/rpc"
	"github.com/tidwall/gjson"
)

// AccountReader is the subset of *rpc.Client used to read account state.
type AccountReader interface {
	GetAccountInfoWithOpts(ctx context.Context, account solana.PublicKey, opts *rpc.GetAccountInfoOpts) (*rpc.GetAccountInfoResult, error)
	GetMultipleAccountsWithOpts(ctx context.Context, accounts []solana.PublicKey, opts *rpc.GetMultipleAccountsOpts) (*rpc.GetMultipleAccountsResult, error)
}

// ProgramAccountReader additionally lists accounts owned by a program.
type ProgramAccountReader interface {
	AccountReader
	GetProgramAccountsWithOpts(ctx context.Context, publicKey solana.PublicKey, opts *rpc.GetProgramAccountsOpts) (rpc.GetProgramAccountsResult, error)
}

// Discriminator returns the 8-byte anchor account discriminator for name.
func Discriminator(name string) []byte {
	hash := sha256.Sum256([]byte("account:" + name))
	var out [8]byte
	copy(out[:], hash[:8])
	return out[:]
}

func GenProgramAccountFilter(key string, commitment rpc.CommitmentType, owner solana.PublicKey, offset uint64) *rpc.GetProgramAccountsOpts {

	opt := &rpc.GetProgramAccountsOpts{
		Commitment: commitment,
		Encoding:   solana.EncodingBase64,
		Filters: []rpc.RPCFilter{
			{
				Memcmp: &rpc.RPCFilterMemcmp{
					Offset: 0,
					Bytes:  Discriminator(key),
				},
			},
		},
	}
	if owner.Equals(solana.PublicKey{}) {
		return opt
	}

	opt.Filters = append(opt.Filters, rpc.RPCFilter{
		Memcmp: &rpc.RPCFilterMemcmp{
			Offset: offset,
			Bytes:  owner[:],
		},
	})
	return opt
}

func GetAccountInfo(ctx context.Context, rpcClient AccountReader, commitment rpc.CommitmentType, account solana.PublicKey) (*rpc.GetAccountInfoResult, error) {
	return rpcClient.GetAccountInfoWithOpts(ctx, account, &rpc.GetAccountInfoOpts{Commitment: commitment, Encoding: solana.EncodingBase64})
}

// GetMultipleTokenAmounts returns the raw balances of SPL or Token-2022 token
// accounts, in the order requested. The accounts are fetched jsonParsed so
// extension data on Token-2022 accounts does not need to be decoded.
func GetMultipleTokenAmounts(ctx context.Context, rpcClient AccountReader, commitment rpc.CommitmentType, accounts ...solana.PublicKey) ([]*big.Int, error) {
	outs, err := rpcClient.GetMultipleAccountsWithOpts(ctx, accounts, &rpc.GetMultipleAccountsOpts{
		Commitment: commitment,
		Encoding:   solana.EncodingJSONParsed,
	})
	if err != nil {
		return nil, err
	}
	if len(outs.Value) != len(accounts) {
		return nil, fmt.Errorf("expected %d token accounts, got %d", len(accounts), len(outs.Value))
	}

	amounts := make([]*big.Int, len(accounts))
	for i, out := range outs.Value {
		if out == nil || out.Data == nil {
			return nil, fmt.Errorf("token account %s: %w", accounts[i], rpc.ErrNotFound)
		}
		amount, err := TokenAmountFromData(out.Data)
		if err != nil {
			return nil, fmt.Errorf("token account %s: %w", accounts[i], err)
		}
		amounts[i] = amount
	}
	return amounts, nil
}

// ParseTokenAmount reads parsed.info.tokenAmount.amount from a jsonParsed token account.
func ParseTokenAmount(data []byte) (*big.Int, error) {
	/*
		{
			"parsed": {
				"info": {
					"mint": "So11111111111111111111111111111111111111112",
					"tokenAmount": {
						"amount": "2000000",
						"decimals": 9
					}
				},
				"type": "account"
			},
			"program": "spl-token"
		}
	*/
	if !gjson.ValidBytes(data) {
		return nil, errors.New("token account is not jsonParsed")
	}
	raw := gjson.GetBytes(data, "parsed.info.tokenAmount.amount")
	if !raw.Exists() {
		return nil, errors.New("token account has no tokenAmount")
	}
	amount, ok := new(big.Int).SetString(raw.String(), 10)
	if !ok {
		return nil, fmt.Errorf("invalid token amount %q", raw.String())
	}
	return amount, nil
}
