package indexer

import (
	"errors"
	"net/http"
	"time"

	"github.com/x-xyz/asteroid-market/base/ctx"
	"github.com/x-xyz/asteroid-market/domain"
	"github.com/x-xyz/asteroid-market/domain/chain"
	"github.com/x-xyz/asteroid-market/domain/listing"
	"github.com/x-xyz/asteroid-market/domain/token"
	"github.com/x-xyz/asteroid-market/domain/tx"
)

var (
	ErrStatusCodeNotOk = errors.New("http.status != 200")
	ErrGraphql         = errors.New("graphql error")
	ErrSubscription    = errors.New("subscription error")
)

// TokenListingsRequest selects open cft20 listings of one token
type TokenListingsRequest struct {
	TokenId int64
	Offset  int
	Limit   int
	OrderBy listing.OrderBy
	Seller  *domain.Address
}

// Client reads the hosted Asteroid indexer
type Client interface {
	GetTokenListings(c ctx.Ctx, req *TokenListingsRequest) (*listing.SearchResult, error)
	// GetListing returns domain.ErrNotFound for an unknown hash
	GetListing(c ctx.Ctx, hash domain.TxHash) (*listing.Listing, error)
	// GetListings returns the listings found, in no particular order
	GetListings(c ctx.Ctx, hashes []domain.TxHash) ([]*listing.Listing, error)
	GetToken(c ctx.Ctx, ticker string) (*token.Token, error)
	GetStatus(c ctx.Ctx, chainId domain.ChainId) (*chain.Status, error)
	GetTransaction(c ctx.Ctx, hash domain.TxHash) (*tx.IndexStatus, error)

	// SubscribeTokenListings streams snapshots of the cheapest open listings of a token.
	// The channel is closed once c is done.
	SubscribeTokenListings(c ctx.Ctx, tokenId int64, limit int) (<-chan []*listing.Listing, error)
}

type ClientCfg struct {
	HttpClient http.Client
	Timeout    time.Duration
	GraphqlUrl string
	WsUrl      string
	// ReconnectDelay is the first wait before a dropped subscription is dialed again
	ReconnectDelay time.Duration
}
