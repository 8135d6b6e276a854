package pumpamm

import (
	"fmt"
	"sync/atomic"

	"github.com/gagliardetto/solana-go"
)

// FeeRecipientSelector picks the protocol fee recipient passed to a swap.
// Implementations must be deterministic given their own state.
type FeeRecipientSelector interface {
	Select(recipients []solana.PublicKey) (solana.PublicKey, error)
}

// FixedFeeRecipient always returns the same recipient, whatever the config lists.
type FixedFeeRecipient struct {
	Recipient solana.PublicKey
}

func (f FixedFeeRecipient) Select(_ []solana.PublicKey) (solana.PublicKey, error) {
	return f.Recipient, nil
}

// IndexFeeRecipient returns the recipient at Index, wrapping around the list.
type IndexFeeRecipient struct {
	Index int
}

func (f IndexFeeRecipient) Select(recipients []solana.PublicKey) (solana.PublicKey, error) {
	if len(recipients) == 0 {
		return solana.PublicKey{}, ErrNoFeeRecipients
	}
	if f.Index < 0 {
		return solana.PublicKey{}, fmt.Errorf("fee recipient index %d is negative", f.Index)
	}
	return recipients[f.Index%len(recipients)], nil
}

// RoundRobinFeeRecipient cycles through the recipients. Safe for concurrent use.
type RoundRobinFeeRecipient struct {
	next atomic.Uint64
}

func (f *RoundRobinFeeRecipient) Select(recipients []solana.PublicKey) (solana.PublicKey, error) {
	if len(recipients) == 0 {
		return solana.PublicKey{}, ErrNoFeeRecipients
	}
	i := f.next.Add(1) - 1
	return recipients[i%uint64(len(recipients))], nil
}
