package usecase

import (
	"github.com/x-xyz/asteroid-market/base/ctx"
	"github.com/x-xyz/asteroid-market/domain/chain"
	hcdomain "github.com/x-xyz/asteroid-market/domain/healthcheck"
)

type impl struct {
	repo   hcdomain.HealthCheckRepo
	chain  chain.UseCase
	maxLag int64
}

// New creates new healthCheckUsecase object representation of HealthCheckUsecase interface.
// A maxLag of zero disables the indexer lag check.
func New(repo hcdomain.HealthCheckRepo, chain chain.UseCase, maxLag int64) hcdomain.HealthCheckUsecase {
	return &impl{
		repo:   repo,
		chain:  chain,
		maxLag: maxLag,
	}
}

func (im *impl) Check(context ctx.Ctx) (*hcdomain.Report, error) {
	report := &hcdomain.Report{}
	if err := im.repo.PingDB(context); err != nil {
		return report, err
	}

	status, err := im.chain.GetStatus(context)
	if err != nil {
		context.WithField("err", err).Error("chain.GetStatus failed")
		return report, err
	}
	report.Indexer = status
	report.Lag = status.Lag()

	if im.maxLag > 0 && report.Lag > im.maxLag {
		context.WithField("lag", report.Lag).Warn("indexer behind")
		return report, hcdomain.ErrIndexerBehind
	}
	report.Healthy = true
	return report, nil
}
