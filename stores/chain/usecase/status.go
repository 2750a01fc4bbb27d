package usecase

import (
	bCtx "github.com/x-xyz/asteroid-market/base/ctx"
	"github.com/x-xyz/asteroid-market/domain"
	"github.com/x-xyz/asteroid-market/domain/chain"
	"github.com/x-xyz/asteroid-market/domain/keys"
	"github.com/x-xyz/asteroid-market/service/cache"
	"github.com/x-xyz/asteroid-market/service/indexer"
)

type StatusUseCaseCfg struct {
	ChainId domain.ChainId
	Indexer indexer.Client
	// Node answers when the indexer is unreachable, optional
	Node  chain.StatusProvider
	Cache cache.Service
}

type statusUseCase struct {
	chainId domain.ChainId
	indexer indexer.Client
	node    chain.StatusProvider
	cache   cache.Service
}

func NewStatusUseCase(cfg *StatusUseCaseCfg) chain.UseCase {
	return &statusUseCase{
		chainId: cfg.ChainId,
		indexer: cfg.Indexer,
		node:    cfg.Node,
		cache:   cfg.Cache,
	}
}

func (u *statusUseCase) GetStatus(c bCtx.Ctx) (*chain.Status, error) {
	status := &chain.Status{}
	if err := u.cache.GetByFunc(c, keys.RedisKey(keys.PfxChainHeight, string(u.chainId)), status, func() (interface{}, error) {
		return u.indexer.GetStatus(c, u.chainId)
	}); err != nil {
		c.WithField("err", err).Error("indexer.GetStatus failed")
		return nil, err
	}
	return status, nil
}

// CurrentHeight is the chain tip the indexer knows of. Listing timeouts are
// compared against it.
func (u *statusUseCase) CurrentHeight(c bCtx.Ctx) (int64, error) {
	status, err := u.GetStatus(c)
	if err == nil && status.LastKnownHeight > 0 {
		return status.LastKnownHeight, nil
	}
	if u.node == nil {
		if err == nil {
			err = domain.ErrNotFound
		}
		return 0, err
	}

	c.WithField("err", err).Warn("indexer height unavailable, asking the node")
	height, nerr := u.node.CurrentHeight(c)
	if nerr != nil {
		c.WithField("err", nerr).Error("node.CurrentHeight failed")
		return 0, nerr
	}
	return height, nil
}
