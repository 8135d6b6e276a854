package pumpamm

import (
	"encoding/binary"

	"github.com/gagliardetto/solana-go"
)

func DeriveGlobalConfig(programID solana.PublicKey) (solana.PublicKey, uint8, error) {
	return solana.FindProgramAddress([][]byte{[]byte(seedGlobalConfig)}, programID)
}

// DerivePool derives the pool address for (index, creator, baseMint, quoteMint).
// The index is encoded as a little-endian u16.
func DerivePool(programID solana.PublicKey, index uint16, creator, baseMint, quoteMint solana.PublicKey) (solana.PublicKey, uint8, error) {
	indexBytes := make([]byte, 2)
	binary.LittleEndian.PutUint16(indexBytes, index)

	seeds := [][]byte{
		[]byte(seedPool),
		indexBytes,
		creator.Bytes(),
		baseMint.Bytes(),
		quoteMint.Bytes(),
	}
	return solana.FindProgramAddress(seeds, programID)
}

func DeriveLpMint(programID, pool solana.PublicKey) (solana.PublicKey, uint8, error) {
	return solana.FindProgramAddress([][]byte{[]byte(seedPoolLpMint), pool.Bytes()}, programID)
}

// DeriveLpMintAta derives the owner's LP token account. LP mints are Token-2022 mints.
func DeriveLpMintAta(lpMint, owner solana.PublicKey) (solana.PublicKey, uint8, error) {
	seeds := [][]byte{
		owner.Bytes(),
		solana.Token2022ProgramID.Bytes(),
		lpMint.Bytes(),
	}
	return solana.FindProgramAddress(seeds, solana.SPLAssociatedTokenAccountProgramID)
}

// DerivePumpPoolAuthority derives the bonding-curve authority that creates canonical pools.
func DerivePumpPoolAuthority(pumpProgramID, mint solana.PublicKey) (solana.PublicKey, uint8, error) {
	return solana.FindProgramAddress([][]byte{[]byte(seedPoolAuthority), mint.Bytes()}, pumpProgramID)
}

// DeriveCanonicalPumpPool derives the pool a bonding-curve mint migrates into:
// index 0, created by the pump pool authority, quoted in wrapped SOL.
func DeriveCanonicalPumpPool(programID, pumpProgramID, mint solana.PublicKey) (solana.PublicKey, uint8, error) {
	authority, _, err := DerivePumpPoolAuthority(pumpProgramID, mint)
	if err != nil {
		return solana.PublicKey{}, 0, err
	}
	return DerivePool(programID, CanonicalPoolIndex, authority, mint, solana.WrappedSol)
}
