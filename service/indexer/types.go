package indexer

import (
	"bytes"
	"encoding/json"
	"strconv"
	"strings"
	"time"

	"github.com/x-xyz/asteroid-market/domain"
	"github.com/x-xyz/asteroid-market/domain/chain"
	"github.com/x-xyz/asteroid-market/domain/listing"
	"github.com/x-xyz/asteroid-market/domain/token"
)

type graphqlRequest struct {
	Query     string                 `json:"query"`
	Variables map[string]interface{} `json:"variables,omitempty"`
}

type graphqlError struct {
	Message string `json:"message"`
}

type graphqlResponse struct {
	Data   json.RawMessage `json:"data"`
	Errors []graphqlError  `json:"errors"`
}

// bigint accepts hasura bigint columns, rendered as numbers or strings depending on the server
type bigint int64

func (b *bigint) UnmarshalJSON(data []byte) error {
	data = bytes.Trim(data, `"`)
	if len(data) == 0 || string(data) == "null" {
		*b = 0
		return nil
	}
	v, err := strconv.ParseInt(string(data), 10, 64)
	if err != nil {
		return err
	}
	*b = bigint(v)
	return nil
}

var timestampLayouts = []string{
	time.RFC3339Nano,
	"2006-01-02T15:04:05.999999",
	"2006-01-02T15:04:05",
}

// timestamp reads postgres timestamps with or without zone, the latter as UTC
type timestamp time.Time

func (t *timestamp) UnmarshalJSON(data []byte) error {
	s := strings.Trim(string(data), `"`)
	if s == "" || s == "null" {
		return nil
	}
	var lastErr error
	for _, layout := range timestampLayouts {
		v, err := time.ParseInLocation(layout, s, time.UTC)
		if err == nil {
			*t = timestamp(v)
			return nil
		}
		lastErr = err
	}
	return lastErr
}

type hashRow struct {
	Hash string `json:"hash"`
}

type tokenRow struct {
	Id                int64  `json:"id"`
	Ticker            string `json:"ticker"`
	Name              string `json:"name"`
	Decimals          int32  `json:"decimals"`
	MaxSupply         bigint `json:"max_supply"`
	CirculatingSupply bigint `json:"circulating_supply"`
	LastPriceBase     bigint `json:"last_price_base"`
	ContentPath       string `json:"content_path"`
}

type listingRow struct {
	Id                     int64     `json:"id"`
	SellerAddress          string    `json:"seller_address"`
	Total                  bigint    `json:"total"`
	DepositTotal           bigint    `json:"deposit_total"`
	DepositTimeout         int64     `json:"deposit_timeout"`
	DepositorAddress       *string   `json:"depositor_address"`
	DepositorTimedoutBlock *int64    `json:"depositor_timedout_block"`
	IsDeposited            bool      `json:"is_deposited"`
	IsCancelled            bool      `json:"is_cancelled"`
	IsFilled               bool      `json:"is_filled"`
	DateCreated            timestamp `json:"date_created"`
	Transaction            hashRow   `json:"transaction"`

	Cft20Details       []cft20Row       `json:"marketplace_cft20_details"`
	InscriptionDetails []inscriptionRow `json:"marketplace_inscription_details"`
}

type cft20Row struct {
	Id                 int64       `json:"id"`
	Amount             bigint      `json:"amount"`
	Ppt                bigint      `json:"ppt"`
	Token              *tokenRow   `json:"token"`
	MarketplaceListing *listingRow `json:"marketplace_listing"`
}

type inscriptionRow struct {
	Inscription struct {
		Id          int64   `json:"id"`
		ContentPath string  `json:"content_path"`
		Name        *string `json:"name"`
		Transaction hashRow `json:"transaction"`
	} `json:"inscription"`
}

type statusRow struct {
	ChainId             string `json:"chain_id"`
	LastProcessedHeight int64  `json:"last_processed_height"`
	LastKnownHeight     int64  `json:"last_known_height"`
}

type transactionRow struct {
	Hash          string  `json:"hash"`
	StatusMessage *string `json:"status_message"`
}

type aggregateRow struct {
	Aggregate struct {
		Count int `json:"count"`
	} `json:"aggregate"`
}

func (r *tokenRow) toDomain() *token.Token {
	return &token.Token{
		Id:                r.Id,
		Ticker:            r.Ticker,
		Name:              r.Name,
		Decimals:          r.Decimals,
		MaxSupply:         int64(r.MaxSupply),
		CirculatingSupply: int64(r.CirculatingSupply),
		LastPriceBase:     int64(r.LastPriceBase),
		ContentPath:       r.ContentPath,
	}
}

func (r *listingRow) toDomain() *listing.Listing {
	l := &listing.Listing{
		Id:                     r.Id,
		TransactionHash:        domain.TxHash(r.Transaction.Hash).ToUpper(),
		SellerAddress:          domain.Address(r.SellerAddress),
		Total:                  int64(r.Total),
		DepositTotal:           int64(r.DepositTotal),
		DepositTimeout:         r.DepositTimeout,
		IsDeposited:            r.IsDeposited,
		DepositorTimedoutBlock: r.DepositorTimedoutBlock,
		IsCancelled:            r.IsCancelled,
		IsFilled:               r.IsFilled,
		CreatedAt:              time.Time(r.DateCreated),
	}
	if r.DepositorAddress != nil && *r.DepositorAddress != "" {
		depositor := domain.Address(*r.DepositorAddress)
		l.DepositorAddress = &depositor
	}

	if len(r.Cft20Details) > 0 {
		l.Kind = listing.KindCft20
		l.Cft20 = r.Cft20Details[0].toDetail()
	} else if len(r.InscriptionDetails) > 0 {
		ins := r.InscriptionDetails[0].Inscription
		l.Kind = listing.KindInscription
		l.Inscription = &listing.InscriptionDetail{
			InscriptionId:   ins.Id,
			InscriptionHash: domain.TxHash(ins.Transaction.Hash).ToUpper(),
			ContentPath:     ins.ContentPath,
		}
		if ins.Name != nil {
			l.Inscription.Name = *ins.Name
		}
	}
	return l
}

func (r *cft20Row) toDetail() *listing.Cft20Detail {
	d := &listing.Cft20Detail{
		Amount: int64(r.Amount),
		Ppt:    int64(r.Ppt),
	}
	if r.Token != nil {
		d.Token = r.Token.toDomain()
	}
	return d
}

// toListing flattens a detail row selected from the cft20 side
func (r *cft20Row) toListing() *listing.Listing {
	if r.MarketplaceListing == nil {
		return nil
	}
	l := r.MarketplaceListing.toDomain()
	l.Kind = listing.KindCft20
	l.Cft20 = r.toDetail()
	return l
}

func (r *statusRow) toDomain() *chain.Status {
	return &chain.Status{
		ChainId:             domain.ChainId(r.ChainId),
		LastProcessedHeight: r.LastProcessedHeight,
		LastKnownHeight:     r.LastKnownHeight,
	}
}

func cft20RowsToListings(rows []cft20Row) []*listing.Listing {
	res := make([]*listing.Listing, 0, len(rows))
	for i := range rows {
		if l := rows[i].toListing(); l != nil {
			res = append(res, l)
		}
	}
	return res
}
