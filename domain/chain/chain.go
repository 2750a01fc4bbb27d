package chain

import (
	"github.com/x-xyz/asteroid-market/base/ctx"
	"github.com/x-xyz/asteroid-market/domain"
)

// StatusProvider reports the height listing states are resolved against
type StatusProvider interface {
	CurrentHeight(c ctx.Ctx) (int64, error)
}

// TxResult is the execution result of a committed tx
type TxResult struct {
	Hash   domain.TxHash
	Height int64
	Code   uint32
	Log    string
}

func (r *TxResult) Succeeded() bool {
	return r.Code == 0
}

type TxLookup interface {
	// GetTx returns domain.ErrNotFound while the tx is not committed
	GetTx(c ctx.Ctx, hash domain.TxHash) (*TxResult, error)
}

// Status is the indexer progress
type Status struct {
	ChainId             domain.ChainId `json:"chainId"`
	LastProcessedHeight int64          `json:"lastProcessedHeight"`
	LastKnownHeight     int64          `json:"lastKnownHeight"`
}

func (s *Status) Lag() int64 {
	return s.LastKnownHeight - s.LastProcessedHeight
}

type UseCase interface {
	StatusProvider
	GetStatus(c ctx.Ctx) (*Status, error)
}
