package pumpamm

import (
	"github.com/gagliardetto/solana-go"
)

var (
	// PumpAmmProgramID is the pump AMM program address.
	PumpAmmProgramID = solana.MustPublicKeyFromBase58("pAMMBay6oceH9fJKBRHGP5D4bD4sWpmSwMn52FMfXEA")
	// PumpProgramID is the pump bonding-curve program that migrates into canonical pools.
	PumpProgramID = solana.MustPublicKeyFromBase58("6EF8rrecthR5Dkzon8Nwu78hRvfCKubJ14M5uBEwF6P")
)

// CanonicalPoolIndex is the pool index used by pools migrated from the bonding curve.
const CanonicalPoolIndex uint16 = 0

// Account names as declared by the program; their hashes are the account discriminators.
const (
	AccountKeyPool         = "Pool"
	AccountKeyGlobalConfig = "GlobalConfig"
)

const (
	seedGlobalConfig  = "global_config"
	seedPool          = "pool"
	seedPoolLpMint    = "pool_lp_mint"
	seedPoolAuthority = "pool-authority"
)

// MaxProtocolFeeRecipients is the fixed size of the recipients array in GlobalConfig.
const MaxProtocolFeeRecipients = 8

// Byte offsets inside a Pool account, discriminator included.
const (
	poolBaseMintOffset  = 8 + 1 + 2 + 32
	poolQuoteMintOffset = poolBaseMintOffset + 32
)
