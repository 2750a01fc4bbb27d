package redis

import (
	"errors"
	"time"

	"github.com/x-xyz/asteroid-market/base/ctx"
)

const (
	// Forever keeps a key without expiration
	Forever = time.Duration(-1)
)

var (
	// ErrNotFound is returned for a missing key
	ErrNotFound = errors.New("redis: key not found")
)

// Handler receives messages of a subscription, channel is the concrete channel the message came on
type Handler func(c ctx.Ctx, channel string, payload []byte)

// Service is the redis access the stores use
type Service interface {
	Get(c ctx.Ctx, key string) ([]byte, error)
	Set(c ctx.Ctx, key string, val []byte, expire time.Duration) error
	// SetNX returns false when the key already exists
	SetNX(c ctx.Ctx, key string, val []byte, expire time.Duration) (bool, error)
	Del(c ctx.Ctx, keys ...string) (int, error)
	Exists(c ctx.Ctx, key string) (bool, error)
	// TTL in seconds, -1 for keys without expiration
	TTL(c ctx.Ctx, key string) (int, error)

	Publish(c ctx.Ctx, channel string, payload []byte) (int, error)
	// PSubscribe blocks and feeds handler until c is done or the connection breaks
	PSubscribe(c ctx.Ctx, pattern string, handler Handler) error

	Name() string
}
