package pumpamm

import (
	"bytes"
	"context"
	"fmt"
	"testing"

	binary "github.com/gagliardetto/binary"
	"github.com/gagliardetto/solana-go"
	"github.com/gagliardetto/solana-go/rpc"
	"github.com/stretchr/testify/require"

	solanago "github.com/krazyTry/pump-amm-go/solana"
)

// fakeRPC serves accounts from memory in place of a validator.
type fakeRPC struct {
	accounts     map[solana.PublicKey][]byte
	tokenAmounts map[solana.PublicKey]string
	program      rpc.GetProgramAccountsResult

	lastProgramOpts *rpc.GetProgramAccountsOpts
	accountCalls    int
}

func newFakeRPC() *fakeRPC {
	return &fakeRPC{
		accounts:     map[solana.PublicKey][]byte{},
		tokenAmounts: map[solana.PublicKey]string{},
	}
}

func (f *fakeRPC) GetAccountInfoWithOpts(_ context.Context, account solana.PublicKey, _ *rpc.GetAccountInfoOpts) (*rpc.GetAccountInfoResult, error) {
	f.accountCalls++
	data, ok := f.accounts[account]
	if !ok {
		return nil, rpc.ErrNotFound
	}
	return &rpc.GetAccountInfoResult{
		Value: &rpc.Account{Owner: PumpAmmProgramID, Data: rpc.DataBytesOrJSONFromBytes(data)},
	}, nil
}

func (f *fakeRPC) GetMultipleAccountsWithOpts(_ context.Context, accounts []solana.PublicKey, _ *rpc.GetMultipleAccountsOpts) (*rpc.GetMultipleAccountsResult, error) {
	out := &rpc.GetMultipleAccountsResult{Value: make([]*rpc.Account, len(accounts))}
	for i, account := range accounts {
		amount, ok := f.tokenAmounts[account]
		if !ok {
			continue
		}
		raw := fmt.Sprintf(`{"parsed":{"info":{"mint":"%s","tokenAmount":{"amount":"%s","decimals":6}},"type":"account"},"program":"spl-token"}`, solana.WrappedSol, amount)
		data := new(rpc.DataBytesOrJSON)
		if err := data.UnmarshalJSON([]byte(raw)); err != nil {
			return nil, err
		}
		out.Value[i] = &rpc.Account{Owner: solana.TokenProgramID, Data: data}
	}
	return out, nil
}

func (f *fakeRPC) GetProgramAccountsWithOpts(_ context.Context, _ solana.PublicKey, opts *rpc.GetProgramAccountsOpts) (rpc.GetProgramAccountsResult, error) {
	f.lastProgramOpts = opts
	return f.program, nil
}

var _ solanago.ProgramAccountReader = (*fakeRPC)(nil)

func encodeAccount(t *testing.T, name string, v interface{}) []byte {
	t.Helper()
	buf := new(bytes.Buffer)
	buf.Write(solanago.Discriminator(name))
	require.NoError(t, binary.NewBorshEncoder(buf).Encode(v))
	return buf.Bytes()
}

type poolFixture struct {
	rpc     *fakeRPC
	address solana.PublicKey
	pool    *Pool
	config  *GlobalConfig
}

// newPoolFixture seeds a pool holding 1,000,000 base and 2,000,000 quote with an
// LP supply of 50,000, charging 30 bps LP fee and 20 bps protocol fee.
func newPoolFixture(t *testing.T) *poolFixture {
	t.Helper()

	baseMint := solana.NewWallet().PublicKey()
	address, _, err := DeriveCanonicalPumpPool(PumpAmmProgramID, PumpProgramID, baseMint)
	require.NoError(t, err)
	lpMint, bump, err := DeriveLpMint(PumpAmmProgramID, address)
	require.NoError(t, err)

	pool := &Pool{
		PoolBump:              bump,
		Index:                 CanonicalPoolIndex,
		Creator:               solana.NewWallet().PublicKey(),
		BaseMint:              baseMint,
		QuoteMint:             solana.WrappedSol,
		LpMint:                lpMint,
		PoolBaseTokenAccount:  solana.NewWallet().PublicKey(),
		PoolQuoteTokenAccount: solana.NewWallet().PublicKey(),
		LpSupply:              50_000,
	}
	config := &GlobalConfig{
		Admin:                  solana.NewWallet().PublicKey(),
		LpFeeBasisPoints:       30,
		ProtocolFeeBasisPoints: 20,
	}
	config.ProtocolFeeRecipients[0] = solana.NewWallet().PublicKey()
	config.ProtocolFeeRecipients[3] = solana.NewWallet().PublicKey()

	globalConfig, _, err := DeriveGlobalConfig(PumpAmmProgramID)
	require.NoError(t, err)

	fake := newFakeRPC()
	fake.accounts[address] = encodeAccount(t, AccountKeyPool, pool)
	fake.accounts[globalConfig] = encodeAccount(t, AccountKeyGlobalConfig, config)
	fake.tokenAmounts[pool.PoolBaseTokenAccount] = "1000000"
	fake.tokenAmounts[pool.PoolQuoteTokenAccount] = "2000000"

	return &poolFixture{rpc: fake, address: address, pool: pool, config: config}
}

func (f *poolFixture) client(t *testing.T, opts ...Option) *PumpAmm {
	t.Helper()
	p, err := NewPumpAmm(f.rpc, opts...)
	require.NoError(t, err)
	return p
}
