package indexer

import (
	"github.com/x-xyz/asteroid-market/domain"
	"github.com/x-xyz/asteroid-market/domain/listing"
)

const (
	orderAsc  = "asc"
	orderDesc = "desc"
)

const listingFields = `
	id
	seller_address
	total
	deposit_total
	deposit_timeout
	depositor_address
	depositor_timedout_block
	is_deposited
	is_cancelled
	is_filled
	date_created
	transaction { hash }
`

const tokenFields = `
	id
	ticker
	name
	decimals
	max_supply
	circulating_supply
	last_price_base
	content_path
`

const cft20ListingFields = `
	id
	amount
	ppt
	marketplace_listing {` + listingFields + `}
`

const queryTokenListings = `
query TokenListings($where: marketplace_cft20_detail_bool_exp!, $orderBy: [marketplace_cft20_detail_order_by!], $offset: Int!, $limit: Int!) {
	marketplace_cft20_detail(where: $where, order_by: $orderBy, offset: $offset, limit: $limit) {` + cft20ListingFields + `}
	marketplace_cft20_detail_aggregate(where: $where) { aggregate { count } }
}`

const subscriptionTokenListings = `
subscription TokenListings($where: marketplace_cft20_detail_bool_exp!, $limit: Int!) {
	marketplace_cft20_detail(where: $where, order_by: [{ppt: asc}, {id: asc}], limit: $limit) {` + cft20ListingFields + `}
}`

const queryListings = `
query Listings($hashes: [String!]!) {
	marketplace_listing(where: {transaction: {hash: {_in: $hashes}}}) {` + listingFields + `
		marketplace_cft20_details {
			id
			amount
			ppt
			token {` + tokenFields + `}
		}
		marketplace_inscription_details {
			inscription {
				id
				content_path
				name: metadata(path: "$.metadata.name")
				transaction { hash }
			}
		}
	}
}`

const queryToken = `
query Token($ticker: String!) {
	token(where: {ticker: {_eq: $ticker}}, limit: 1) {` + tokenFields + `}
}`

const queryStatus = `
query Status($chainId: String!) {
	status(where: {chain_id: {_eq: $chainId}}, limit: 1) {
		chain_id
		last_processed_height
		last_known_height
	}
}`

const queryTransaction = `
query Transaction($hash: String!) {
	transaction(where: {hash: {_eq: $hash}}, limit: 1) {
		hash
		status_message
	}
}`

type intComparison struct {
	Eq *int64 `json:"_eq,omitempty"`
}

type boolComparison struct {
	Eq *bool `json:"_eq,omitempty"`
}

type stringComparison struct {
	Eq *string  `json:"_eq,omitempty"`
	In []string `json:"_in,omitempty"`
}

type listingBoolExp struct {
	IsCancelled   *boolComparison   `json:"is_cancelled,omitempty"`
	IsFilled      *boolComparison   `json:"is_filled,omitempty"`
	SellerAddress *stringComparison `json:"seller_address,omitempty"`
}

type cft20DetailBoolExp struct {
	TokenId            *intComparison  `json:"token_id,omitempty"`
	MarketplaceListing *listingBoolExp `json:"marketplace_listing,omitempty"`
}

type listingOrderBy struct {
	DateCreated string `json:"date_created,omitempty"`
}

type cft20DetailOrderBy struct {
	Ppt                string          `json:"ppt,omitempty"`
	Amount             string          `json:"amount,omitempty"`
	Id                 string          `json:"id,omitempty"`
	MarketplaceListing *listingOrderBy `json:"marketplace_listing,omitempty"`
}

func eqBool(v bool) *boolComparison {
	return &boolComparison{Eq: &v}
}

// openListingsWhere selects listings of a token that are neither cancelled nor filled
func openListingsWhere(tokenId int64, seller *domain.Address) cft20DetailBoolExp {
	where := cft20DetailBoolExp{
		TokenId: &intComparison{Eq: &tokenId},
		MarketplaceListing: &listingBoolExp{
			IsCancelled: eqBool(false),
			IsFilled:    eqBool(false),
		},
	}
	if seller != nil {
		s := seller.String()
		where.MarketplaceListing.SellerAddress = &stringComparison{Eq: &s}
	}
	return where
}

// orderByClause keeps a stable tie breaker on id so pages do not overlap
func orderByClause(orderBy listing.OrderBy) []cft20DetailOrderBy {
	var primary cft20DetailOrderBy
	switch orderBy {
	case listing.OrderByPptDesc:
		primary.Ppt = orderDesc
	case listing.OrderByDateDesc:
		primary.MarketplaceListing = &listingOrderBy{DateCreated: orderDesc}
	case listing.OrderByAmtDesc:
		primary.Amount = orderDesc
	default:
		primary.Ppt = orderAsc
	}
	return []cft20DetailOrderBy{primary, {Id: orderAsc}}
}
