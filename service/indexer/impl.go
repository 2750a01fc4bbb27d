package indexer

import (
	"bytes"
	"encoding/json"
	"io/ioutil"
	"net/http"
	"strings"
	"time"

	"golang.org/x/xerrors"

	bCtx "github.com/x-xyz/asteroid-market/base/ctx"
	"github.com/x-xyz/asteroid-market/base/log"
	"github.com/x-xyz/asteroid-market/base/metrics"
	"github.com/x-xyz/asteroid-market/domain"
	"github.com/x-xyz/asteroid-market/domain/chain"
	"github.com/x-xyz/asteroid-market/domain/listing"
	"github.com/x-xyz/asteroid-market/domain/token"
	"github.com/x-xyz/asteroid-market/domain/tx"
)

const (
	defaultReconnectDelay = 2 * time.Second
	maxReconnectDelay     = time.Minute
)

type client struct {
	client         http.Client
	timeout        time.Duration
	graphqlUrl     string
	wsUrl          string
	reconnectDelay time.Duration
	met            metrics.Service
}

func NewClient(cfg *ClientCfg) Client {
	reconnectDelay := cfg.ReconnectDelay
	if reconnectDelay <= 0 {
		reconnectDelay = defaultReconnectDelay
	}
	return &client{
		client:         cfg.HttpClient,
		timeout:        cfg.Timeout,
		graphqlUrl:     cfg.GraphqlUrl,
		wsUrl:          cfg.WsUrl,
		reconnectDelay: reconnectDelay,
		met:            metrics.New("indexer"),
	}
}

func (c *client) GetTokenListings(ctx bCtx.Ctx, req *TokenListingsRequest) (*listing.SearchResult, error) {
	vars := map[string]interface{}{
		"where":   openListingsWhere(req.TokenId, req.Seller),
		"orderBy": orderByClause(req.OrderBy),
		"offset":  req.Offset,
		"limit":   req.Limit,
	}
	res := struct {
		Details   []cft20Row   `json:"marketplace_cft20_detail"`
		Aggregate aggregateRow `json:"marketplace_cft20_detail_aggregate"`
	}{}
	if err := c.query(ctx, "TokenListings", queryTokenListings, vars, &res); err != nil {
		return nil, err
	}
	return &listing.SearchResult{
		Items: cft20RowsToListings(res.Details),
		Count: res.Aggregate.Aggregate.Count,
	}, nil
}

func (c *client) GetListing(ctx bCtx.Ctx, hash domain.TxHash) (*listing.Listing, error) {
	ls, err := c.GetListings(ctx, []domain.TxHash{hash})
	if err != nil {
		return nil, err
	}
	if len(ls) == 0 {
		return nil, domain.ErrNotFound
	}
	return ls[0], nil
}

func (c *client) GetListings(ctx bCtx.Ctx, hashes []domain.TxHash) ([]*listing.Listing, error) {
	if len(hashes) == 0 {
		return []*listing.Listing{}, nil
	}
	// the indexer stores hashes upper cased
	hs := make([]string, len(hashes))
	for i, h := range hashes {
		hs[i] = h.ToUpper().String()
	}
	res := struct {
		Listings []listingRow `json:"marketplace_listing"`
	}{}
	if err := c.query(ctx, "Listings", queryListings, map[string]interface{}{"hashes": hs}, &res); err != nil {
		return nil, err
	}
	ls := make([]*listing.Listing, 0, len(res.Listings))
	for i := range res.Listings {
		ls = append(ls, res.Listings[i].toDomain())
	}
	return ls, nil
}

func (c *client) GetToken(ctx bCtx.Ctx, ticker string) (*token.Token, error) {
	res := struct {
		Tokens []tokenRow `json:"token"`
	}{}
	vars := map[string]interface{}{"ticker": strings.ToUpper(ticker)}
	if err := c.query(ctx, "Token", queryToken, vars, &res); err != nil {
		return nil, err
	}
	if len(res.Tokens) == 0 {
		return nil, domain.ErrNotFound
	}
	return res.Tokens[0].toDomain(), nil
}

func (c *client) GetStatus(ctx bCtx.Ctx, chainId domain.ChainId) (*chain.Status, error) {
	res := struct {
		Status []statusRow `json:"status"`
	}{}
	if err := c.query(ctx, "Status", queryStatus, map[string]interface{}{"chainId": chainId}, &res); err != nil {
		return nil, err
	}
	if len(res.Status) == 0 {
		return nil, domain.ErrNotFound
	}
	return res.Status[0].toDomain(), nil
}

func (c *client) GetTransaction(ctx bCtx.Ctx, hash domain.TxHash) (*tx.IndexStatus, error) {
	res := struct {
		Transactions []transactionRow `json:"transaction"`
	}{}
	vars := map[string]interface{}{"hash": hash.ToUpper()}
	if err := c.query(ctx, "Transaction", queryTransaction, vars, &res); err != nil {
		return nil, err
	}
	if len(res.Transactions) == 0 {
		return &tx.IndexStatus{Found: false}, nil
	}
	status := &tx.IndexStatus{Found: true}
	if m := res.Transactions[0].StatusMessage; m != nil {
		status.StatusMessage = *m
	}
	return status, nil
}

func (c *client) query(ctx bCtx.Ctx, op, query string, vars map[string]interface{}, result interface{}) error {
	defer c.met.BumpTime("query.time", "op", op).End()

	data, err := c.post(ctx, graphqlRequest{Query: query, Variables: vars})
	if err != nil {
		c.met.BumpSum("query.err", 1, "op", op)
		ctx.WithFields(log.Fields{
			"op":  op,
			"err": err,
		}).Error("c.post failed")
		return err
	}

	resp := graphqlResponse{}
	if err := json.Unmarshal(data, &resp); err != nil {
		ctx.WithField("err", err).Error("json.Unmarshal failed")
		return err
	}
	if len(resp.Errors) > 0 {
		c.met.BumpSum("query.err", 1, "op", op)
		msgs := make([]string, len(resp.Errors))
		for i, e := range resp.Errors {
			msgs[i] = e.Message
		}
		err := xerrors.Errorf("%w: %s", ErrGraphql, strings.Join(msgs, "; "))
		ctx.WithFields(log.Fields{
			"op":  op,
			"err": err,
		}).Error("graphql returned errors")
		return err
	}
	if err := json.Unmarshal(resp.Data, result); err != nil {
		ctx.WithFields(log.Fields{
			"op":  op,
			"err": err,
		}).Error("json.Unmarshal data failed")
		return err
	}
	return nil
}

func (c *client) post(ctx bCtx.Ctx, body graphqlRequest) ([]byte, error) {
	ctx, cancel := bCtx.WithTimeout(ctx, c.timeout)
	defer cancel()

	payload, err := json.Marshal(body)
	if err != nil {
		return nil, err
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.graphqlUrl, bytes.NewReader(payload))
	if err != nil {
		ctx.WithField("err", err).Error("NewRequestWithContext failed")
		return nil, err
	}
	req.Header.Set("Content-Type", "application/json")
	resp, err := c.client.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		ctx.WithField("statusCode", resp.StatusCode).Error("resp.StatusCode != 200")
		return nil, ErrStatusCodeNotOk
	}
	return ioutil.ReadAll(resp.Body)
}
