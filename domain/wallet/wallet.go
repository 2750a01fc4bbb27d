package wallet

import (
	"github.com/x-xyz/asteroid-market/base/ctx"
	"github.com/x-xyz/asteroid-market/domain"
	"github.com/x-xyz/asteroid-market/domain/tx"
)

// Provider signs and broadcasts on behalf of an account. Keys never leave it.
type Provider interface {
	Address(c ctx.Ctx) (domain.Address, error)
	// SignAndBroadcast blocks until the signer approves or rejects the intent
	SignAndBroadcast(c ctx.Ctx, intent *tx.Intent) (domain.TxHash, error)
}
