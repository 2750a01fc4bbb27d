package pubsub

import (
	"encoding/json"
	"time"

	"github.com/x-xyz/asteroid-market/base/backoff"
	"github.com/x-xyz/asteroid-market/base/ctx"
	"github.com/x-xyz/asteroid-market/base/log"
	"github.com/x-xyz/asteroid-market/domain/keys"
	"github.com/x-xyz/asteroid-market/domain/listing"
	"github.com/x-xyz/asteroid-market/service/redis"
)

const (
	resubscribeDelay    = time.Second
	maxResubscribeDelay = 30 * time.Second
)

// Subscriber drops listings from the local cache when the tracker announces they changed
type Subscriber struct {
	redis    redis.Service
	listings listing.Repo
}

func New(r redis.Service, listings listing.Repo) *Subscriber {
	return &Subscriber{redis: r, listings: listings}
}

// Run keeps the subscription alive until c is done
func (s *Subscriber) Run(c ctx.Ctx) {
	pattern := keys.RedisKey(keys.ChannelListings, "*")
	bo := backoff.NewExponential(resubscribeDelay, maxResubscribeDelay)
	for {
		err := s.redis.PSubscribe(c, pattern, s.Handle)
		if c.Err() != nil {
			return
		}
		c.WithFields(log.Fields{
			"err":     err,
			"pattern": pattern,
		}).Warn("listings subscription dropped")
		if err := bo.Backoff(c); err != nil {
			return
		}
	}
}

// Handle invalidates the listings carried by one change message
func (s *Subscriber) Handle(c ctx.Ctx, channel string, payload []byte) {
	change := listing.Change{}
	if err := json.Unmarshal(payload, &change); err != nil {
		c.WithFields(log.Fields{
			"err":     err,
			"channel": channel,
		}).Error("json.Unmarshal failed")
		return
	}
	if len(change.Hashes) == 0 {
		return
	}
	if err := s.listings.Invalidate(c, change.Hashes...); err != nil {
		c.WithFields(log.Fields{
			"err":     err,
			"tokenId": change.TokenId,
		}).Error("listings.Invalidate failed")
	}
}
