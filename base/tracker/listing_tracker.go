package tracker

import (
	"encoding/json"
	"sync"

	bCtx "github.com/x-xyz/asteroid-market/base/ctx"
	"github.com/x-xyz/asteroid-market/base/log"
	"github.com/x-xyz/asteroid-market/base/metrics"
	"github.com/x-xyz/asteroid-market/domain/keys"
	"github.com/x-xyz/asteroid-market/domain/listing"
	"github.com/x-xyz/asteroid-market/domain/token"
	"github.com/x-xyz/asteroid-market/service/redis"
)

var metOnce sync.Once
var met metrics.Service

func initMetrics() {
	metOnce.Do(func() {
		met = metrics.New("tracker")
	})
}

const defaultSnapshotLimit = 500

// ListingSubscriber streams open listing snapshots of a token
type ListingSubscriber interface {
	SubscribeTokenListings(c bCtx.Ctx, tokenId int64, limit int) (<-chan []*listing.Listing, error)
}

type ListingTrackerCfg struct {
	Ticker     string
	Tokens     token.Repo
	Subscriber ListingSubscriber
	Listings   listing.Repo
	Publisher  redis.Service
	// Limit caps the listings of one snapshot
	Limit   int
	ErrorCh chan<- error
}

// ListingTracker follows the live listings of one token. Every listing that changed between two
// snapshots is dropped from the cache and announced on the token's listings channel.
type ListingTracker struct {
	ticker     string
	tokens     token.Repo
	subscriber ListingSubscriber
	listings   listing.Repo
	publisher  redis.Service
	limit      int
	errorCh    chan<- error
	stoppedCh  chan interface{}
}

func NewListingTracker(cfg *ListingTrackerCfg) *ListingTracker {
	initMetrics()
	limit := cfg.Limit
	if limit <= 0 {
		limit = defaultSnapshotLimit
	}
	return &ListingTracker{
		ticker:     cfg.Ticker,
		tokens:     cfg.Tokens,
		subscriber: cfg.Subscriber,
		listings:   cfg.Listings,
		publisher:  cfg.Publisher,
		limit:      limit,
		errorCh:    cfg.ErrorCh,
		stoppedCh:  make(chan interface{}),
	}
}

func (t *ListingTracker) Start(ctx bCtx.Ctx) {
	go func() {
		defer close(t.stoppedCh)
		if err := t.loop(ctx); err != nil {
			t.errorCh <- err
		}
	}()
}

func (t *ListingTracker) Wait() {
	<-t.stoppedCh
}

func (t *ListingTracker) loop(ctx bCtx.Ctx) error {
	ctx = bCtx.WithValue(ctx, "ticker", t.ticker)

	tk, err := t.tokens.FindOne(ctx, t.ticker)
	if err != nil {
		ctx.WithField("err", err).Error("tokens.FindOne failed")
		return err
	}

	snapshots, err := t.subscriber.SubscribeTokenListings(ctx, tk.Id, t.limit)
	if err != nil {
		ctx.WithField("err", err).Error("subscriber.SubscribeTokenListings failed")
		return err
	}

	ctx.WithField("tokenId", tk.Id).Info("tracking listings")
	var prev []*listing.Listing
	for snapshot := range snapshots {
		if err := t.handle(ctx, tk.Id, prev, snapshot); err != nil {
			ctx.WithField("err", err).Error("handle failed")
			return err
		}
		prev = snapshot
	}
	return nil
}

func (t *ListingTracker) handle(ctx bCtx.Ctx, tokenId int64, prev, next []*listing.Listing) error {
	changed := listing.Diff(prev, next)
	met.BumpSum("listings.snapshot", 1, "ticker", t.ticker)
	if len(changed) == 0 {
		return nil
	}

	if err := t.listings.Invalidate(ctx, changed...); err != nil {
		ctx.WithField("err", err).Error("listings.Invalidate failed")
		return err
	}

	payload, err := json.Marshal(listing.Change{TokenId: tokenId, Hashes: changed})
	if err != nil {
		return err
	}
	receivers, err := t.publisher.Publish(ctx, keys.TokenListingsChannel(tokenId), payload)
	if err != nil {
		ctx.WithField("err", err).Error("publisher.Publish failed")
		return err
	}
	ctx.WithFields(log.Fields{
		"changed":   len(changed),
		"receivers": receivers,
	}).Info("listings changed")
	met.BumpSum("listings.changed", float64(len(changed)), "ticker", t.ticker)
	return nil
}
