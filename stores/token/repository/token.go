package repository

import (
	"strings"

	bCtx "github.com/x-xyz/asteroid-market/base/ctx"
	"github.com/x-xyz/asteroid-market/domain/keys"
	"github.com/x-xyz/asteroid-market/domain/token"
	"github.com/x-xyz/asteroid-market/service/cache"
	"github.com/x-xyz/asteroid-market/service/indexer"
)

type tokenRepo struct {
	indexer indexer.Client
	cache   cache.Service
}

// NewTokenRepo reads tokens from the indexer, token records barely change so they are cached
func NewTokenRepo(indexer indexer.Client, cache cache.Service) token.Repo {
	return &tokenRepo{indexer, cache}
}

func (r *tokenRepo) FindOne(c bCtx.Ctx, ticker string) (*token.Token, error) {
	ticker = strings.ToUpper(ticker)
	t := &token.Token{}
	if err := r.cache.GetByFunc(c, keys.RedisKey(keys.PfxToken, ticker), t, func() (interface{}, error) {
		return r.indexer.GetToken(c, ticker)
	}); err != nil {
		c.WithField("err", err).WithField("ticker", ticker).Warn("indexer.GetToken failed")
		return nil, err
	}
	return t, nil
}
