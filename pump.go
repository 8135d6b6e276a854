package pump

import (
	pumpamm "github.com/krazyTry/pump-amm-go/pump_amm"
)

// NewPumpAmmClient creates a new pump AMM quote client.
//
// Example:
//
// pumpAmm, _ := NewPumpAmmClient(rpc.New(rpc.MainNetBeta_RPC), pumpamm.WithCommitment(rpc.CommitmentFinalized))
//
// pumpAmm.BuyBaseInputQuote(ctx, pool, base, 1)
//
// pumpAmm.WithdrawInputs(ctx, pool, lpAmount, 0.5)
var NewPumpAmmClient = pumpamm.NewPumpAmm
