package healthcheck

import (
	"errors"

	"github.com/x-xyz/asteroid-market/base/ctx"
	"github.com/x-xyz/asteroid-market/domain/chain"
)

var ErrIndexerBehind = errors.New("indexer is too far behind the chain")

// Report is served by the health endpoint
type Report struct {
	Healthy bool          `json:"healthy"`
	Indexer *chain.Status `json:"indexer,omitempty"`
	Lag     int64         `json:"lag"`
}

// HealthCheckUsecase represents the healthCheck's usecases
type HealthCheckUsecase interface {
	Check(c ctx.Ctx) (*Report, error)
}

// HealthCheckRepo is repository layer of healthCheck
type HealthCheckRepo interface {
	PingDB(c ctx.Ctx) error
}
