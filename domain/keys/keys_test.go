package keys

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestRedisKey(t *testing.T) {
	req := require.New(t)
	req.Equal("a:b:c", RedisKey("a", "b", "c"))
	req.Equal("listing:ABCD", ListingKey("abcd"))
	req.Equal("listings:42", TokenListingsChannel(42))
}

func TestGetPrefix(t *testing.T) {
	tests := []struct {
		key string
		exp string
	}{
		{"listing:ABCD", "listing"},
		{"tokenListings:42:0", "tokenListings:42"},
		{"plain", ""},
	}
	for _, tt := range tests {
		require.Equal(t, tt.exp, GetPrefix(tt.key), tt.key)
	}
}
