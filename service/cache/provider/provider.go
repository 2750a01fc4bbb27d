package provider

import (
	"errors"
	"time"

	"github.com/x-xyz/asteroid-market/base/ctx"
)

var (
	ErrNotFound = errors.New("Cache not found")
)

// Provider is one cache layer (freecache or redis).
type Provider interface {
	// Get also returns the remaining ttl so the compound layer can backfill with it
	Get(c ctx.Ctx, key string) ([]byte, time.Duration, error)
	Set(c ctx.Ctx, key string, value []byte, ttl time.Duration) error
	Del(c ctx.Ctx, key string) error
}
