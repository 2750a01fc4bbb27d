package keys

import (
	"crypto/md5"
	"fmt"
	"strings"
)

const (
	// PfxHealthCheck is used for prefixing health check redis key
	PfxHealthCheck = "healthcheck"
	// PfxListing prefixes cached listing records, keyed by transaction hash
	PfxListing = "listing"
	// PfxTokenListings prefixes cached token listing pages
	PfxTokenListings = "tokenListings"
	// PfxToken prefixes cached token records, keyed by ticker
	PfxToken = "token"
	// PfxChainHeight prefixes the cached indexer height
	PfxChainHeight = "chainHeight"
	// ChannelListings is the pubsub channel prefix for live listing updates
	ChannelListings = "listings"
)

// MD5 hashes the data with md5
func MD5(data string) string {
	return fmt.Sprintf("%x", md5.Sum([]byte(data)))
}

// CustomKey is used to join the customized key by componets with specified delimiter
func CustomKey(delimiter string, components ...string) string {
	return strings.Join(components, delimiter)
}

// RedisKey is used to join the redis key by componets
func RedisKey(components ...string) string {
	return CustomKey(":", components...)
}

// ListingKey is the cache key of a single listing
func ListingKey(hash string) string {
	return RedisKey(PfxListing, strings.ToUpper(hash))
}

// TokenListingsChannel is the pubsub channel carrying listing snapshots of a token
func TokenListingsChannel(tokenId int64) string {
	return RedisKey(ChannelListings, fmt.Sprint(tokenId))
}

// GetPrefix extracts the prefix of a key.
func GetPrefix(key string) string {
	s := strings.Split(key, ":")
	if len(s) > 2 {
		return strings.Join([]string{s[0], s[1]}, ":")
	} else if len(s) > 1 {
		return s[0]
	}
	return ""
}
