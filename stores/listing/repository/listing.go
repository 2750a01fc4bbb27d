package repository

import (
	"fmt"

	bCtx "github.com/x-xyz/asteroid-market/base/ctx"
	"github.com/x-xyz/asteroid-market/base/log"
	"github.com/x-xyz/asteroid-market/domain"
	"github.com/x-xyz/asteroid-market/domain/keys"
	"github.com/x-xyz/asteroid-market/domain/listing"
	"github.com/x-xyz/asteroid-market/service/cache"
	"github.com/x-xyz/asteroid-market/service/indexer"
)

type ListingRepoCfg struct {
	Indexer indexer.Client
	// Cache holds single listings, dropped by Invalidate
	Cache cache.Service
	// PageCache holds token listing pages, keep its ttl short
	PageCache cache.Service
}

type listingRepo struct {
	indexer   indexer.Client
	cache     cache.Service
	pageCache cache.Service
}

func NewListingRepo(cfg *ListingRepoCfg) listing.Repo {
	return &listingRepo{
		indexer:   cfg.Indexer,
		cache:     cfg.Cache,
		pageCache: cfg.PageCache,
	}
}

func (r *listingRepo) FindTokenListings(c bCtx.Ctx, tokenId int64, opts ...listing.FindAllOptionsFunc) (*listing.SearchResult, error) {
	o, err := listing.GetFindAllOptions(opts...)
	if err != nil {
		return nil, domain.NewValidationError("findTokenListings", err)
	}

	req := &indexer.TokenListingsRequest{
		TokenId: tokenId,
		Offset:  o.Offset,
		Limit:   o.Limit,
		OrderBy: o.OrderBy,
		Seller:  o.Seller,
	}
	seller := ""
	if o.Seller != nil {
		seller = o.Seller.ToLowerStr()
	}
	key := keys.RedisKey(keys.PfxTokenListings, fmt.Sprint(tokenId), keys.MD5(fmt.Sprint(o.Offset, o.Limit, o.OrderBy, seller)))

	res := &listing.SearchResult{}
	if err := r.pageCache.GetByFunc(c, key, res, func() (interface{}, error) {
		return r.indexer.GetTokenListings(c, req)
	}); err != nil {
		c.WithFields(log.Fields{
			"err":     err,
			"tokenId": tokenId,
		}).Error("indexer.GetTokenListings failed")
		return nil, err
	}
	return res, nil
}

func (r *listingRepo) FindOne(c bCtx.Ctx, hash domain.TxHash) (*listing.Listing, error) {
	hash = hash.ToUpper()
	l := &listing.Listing{}
	if err := r.cache.GetByFunc(c, keys.ListingKey(hash.String()), l, func() (interface{}, error) {
		return r.indexer.GetListing(c, hash)
	}); err != nil {
		if err != domain.ErrNotFound {
			c.WithField("err", err).WithField("hash", hash).Error("indexer.GetListing failed")
		}
		return nil, err
	}
	return l, nil
}

func (r *listingRepo) FindByHashes(c bCtx.Ctx, hashes []domain.TxHash) ([]*listing.Listing, error) {
	found := map[domain.TxHash]*listing.Listing{}
	missing := []domain.TxHash{}
	for _, h := range hashes {
		h = h.ToUpper()
		l := &listing.Listing{}
		if err := r.cache.Get(c, keys.ListingKey(h.String()), l); err == nil {
			found[h] = l
			continue
		}
		missing = append(missing, h)
	}

	if len(missing) > 0 {
		ls, err := r.indexer.GetListings(c, missing)
		if err != nil {
			c.WithField("err", err).Error("indexer.GetListings failed")
			return nil, err
		}
		for _, l := range ls {
			found[l.TransactionHash.ToUpper()] = l
			if err := r.cache.Set(c, keys.ListingKey(l.TransactionHash.String()), l); err != nil {
				c.WithField("err", err).Warn("cache.Set failed")
			}
		}
	}

	res := make([]*listing.Listing, 0, len(hashes))
	for _, h := range hashes {
		l, ok := found[h.ToUpper()]
		if !ok {
			c.WithField("hash", h).Warn("listing not found")
			return nil, domain.ErrNotFound
		}
		res = append(res, l)
	}
	return res, nil
}

func (r *listingRepo) Invalidate(c bCtx.Ctx, hashes ...domain.TxHash) error {
	ks := make([]string, 0, len(hashes))
	for _, h := range hashes {
		ks = append(ks, keys.ListingKey(h.String()))
	}
	if err := r.cache.Del(c, ks...); err != nil {
		c.WithFields(log.Fields{
			"err":    err,
			"hashes": hashes,
		}).Error("cache.Del failed")
		return err
	}
	return nil
}
