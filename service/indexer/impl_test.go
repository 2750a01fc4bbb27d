package indexer

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"

	bCtx "github.com/x-xyz/asteroid-market/base/ctx"
	"github.com/x-xyz/asteroid-market/domain"
	"github.com/x-xyz/asteroid-market/domain/listing"
)

const (
	seller = "cosmos1qyqszqgpqyqszqgpqyqszqgpqyqszqgpjnp7du"
	buyer  = "cosmos1qgpqyqszqgpqyqszqgpqyqszqgpqyqszrh8mx2"
	hashA  = "0D8F8C3A7E0B1E4A5C6D7E8F9A0B1C2D3E4F5A6B7C8D9E0F1A2B3C4D5E6F7A8B"
)

type indexerSuite struct {
	suite.Suite
	srv     *httptest.Server
	lastReq graphqlRequest
	reply   string
	status  int
}

func (s *indexerSuite) SetupTest() {
	s.status = http.StatusOK
	s.srv = httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		s.Require().Equal(http.MethodPost, r.Method)
		s.lastReq = graphqlRequest{}
		s.Require().NoError(json.NewDecoder(r.Body).Decode(&s.lastReq))
		w.WriteHeader(s.status)
		_, _ = w.Write([]byte(s.reply))
	}))
}

func (s *indexerSuite) TearDownTest() {
	s.srv.Close()
}

func (s *indexerSuite) newClient() Client {
	return NewClient(&ClientCfg{
		HttpClient: http.Client{},
		Timeout:    5 * time.Second,
		GraphqlUrl: s.srv.URL,
	})
}

func (s *indexerSuite) TestGetTokenListings() {
	s.reply = `{"data": {
		"marketplace_cft20_detail": [{
			"id": 7,
			"amount": "100000000",
			"ppt": 2500,
			"marketplace_listing": {
				"id": 3,
				"seller_address": "` + seller + `",
				"total": 250000,
				"deposit_total": 2500,
				"deposit_timeout": 100,
				"depositor_address": "` + buyer + `",
				"depositor_timedout_block": 1200,
				"is_deposited": true,
				"is_cancelled": false,
				"is_filled": false,
				"date_created": "2024-01-02T03:04:05",
				"transaction": {"hash": "` + strings.ToLower(hashA) + `"}
			}
		}],
		"marketplace_cft20_detail_aggregate": {"aggregate": {"count": 42}}
	}}`

	sellerAddr := domain.Address(seller)
	res, err := s.newClient().GetTokenListings(bCtx.Background(), &TokenListingsRequest{
		TokenId: 9,
		Offset:  20,
		Limit:   10,
		OrderBy: listing.OrderByPptDesc,
		Seller:  &sellerAddr,
	})
	s.Require().NoError(err)
	s.Equal(42, res.Count)
	s.Require().Len(res.Items, 1)

	l := res.Items[0]
	s.Equal(domain.TxHash(hashA), l.TransactionHash)
	s.Equal(listing.KindCft20, l.Kind)
	s.Equal(int64(100000000), l.Cft20.Amount)
	s.Equal(int64(2500), l.Cft20.Ppt)
	s.Equal(int64(250000), l.Total)
	s.Equal(int64(2500), l.DepositTotal)
	s.Require().NotNil(l.DepositorAddress)
	s.Equal(domain.Address(buyer), *l.DepositorAddress)
	s.Equal(int64(1200), *l.DepositorTimedoutBlock)
	s.Equal(time.Date(2024, 1, 2, 3, 4, 5, 0, time.UTC), l.CreatedAt)

	vars, err := json.Marshal(s.lastReq.Variables)
	s.Require().NoError(err)
	s.JSONEq(`{
		"where": {
			"token_id": {"_eq": 9},
			"marketplace_listing": {
				"is_cancelled": {"_eq": false},
				"is_filled": {"_eq": false},
				"seller_address": {"_eq": "`+seller+`"}
			}
		},
		"orderBy": [{"ppt": "desc"}, {"id": "asc"}],
		"offset": 20,
		"limit": 10
	}`, string(vars))
}

func (s *indexerSuite) TestGetListings() {
	s.reply = `{"data": {"marketplace_listing": [{
		"id": 4,
		"seller_address": "` + seller + `",
		"total": 1000000,
		"deposit_total": 10000,
		"deposit_timeout": 50,
		"depositor_address": null,
		"depositor_timedout_block": null,
		"is_deposited": false,
		"is_cancelled": false,
		"is_filled": false,
		"date_created": "2024-01-02T03:04:05.123456+00:00",
		"transaction": {"hash": "` + hashA + `"},
		"marketplace_cft20_details": [],
		"marketplace_inscription_details": [{
			"inscription": {
				"id": 11,
				"content_path": "https://cdn/ins.png",
				"name": "Rock #1",
				"transaction": {"hash": "ABCD"}
			}
		}]
	}]}}`

	ls, err := s.newClient().GetListings(bCtx.Background(), []domain.TxHash{domain.TxHash(strings.ToLower(hashA))})
	s.Require().NoError(err)
	s.Require().Len(ls, 1)
	s.Equal(listing.KindInscription, ls[0].Kind)
	s.Nil(ls[0].DepositorAddress)
	s.Nil(ls[0].DepositorTimedoutBlock)
	s.Equal("Rock #1", ls[0].Inscription.Name)
	s.Equal(domain.TxHash("ABCD"), ls[0].Inscription.InscriptionHash)
	s.Equal([]interface{}{hashA}, s.lastReq.Variables["hashes"])

	s.reply = `{"data": {"marketplace_listing": []}}`
	_, err = s.newClient().GetListing(bCtx.Background(), domain.TxHash(hashA))
	s.Equal(domain.ErrNotFound, err)
}

func (s *indexerSuite) TestGetTokenAndStatus() {
	s.reply = `{"data": {"token": [{"id": 9, "ticker": "ROIDS", "name": "Asteroids", "decimals": 6, "max_supply": "1000000000000", "circulating_supply": 5, "last_price_base": 12, "content_path": "x"}]}}`
	tk, err := s.newClient().GetToken(bCtx.Background(), "roids")
	s.Require().NoError(err)
	s.Equal(int64(9), tk.Id)
	s.Equal(int32(6), tk.Decimals)
	s.Equal(int64(1000000000000), tk.MaxSupply)
	s.Equal("ROIDS", s.lastReq.Variables["ticker"])

	s.reply = `{"data": {"token": []}}`
	_, err = s.newClient().GetToken(bCtx.Background(), "none")
	s.Equal(domain.ErrNotFound, err)

	s.reply = `{"data": {"status": [{"chain_id": "gaia", "last_processed_height": 100, "last_known_height": 103}]}}`
	st, err := s.newClient().GetStatus(bCtx.Background(), "gaia")
	s.Require().NoError(err)
	s.Equal(int64(100), st.LastProcessedHeight)
	s.Equal(int64(3), st.Lag())
}

func (s *indexerSuite) TestGetTransaction() {
	s.reply = `{"data": {"transaction": [{"hash": "` + hashA + `", "status_message": "success"}]}}`
	st, err := s.newClient().GetTransaction(bCtx.Background(), domain.TxHash(hashA))
	s.Require().NoError(err)
	s.True(st.Found)
	s.Equal("success", st.StatusMessage)

	s.reply = `{"data": {"transaction": []}}`
	st, err = s.newClient().GetTransaction(bCtx.Background(), domain.TxHash(hashA))
	s.Require().NoError(err)
	s.False(st.Found)
}

func (s *indexerSuite) TestErrors() {
	s.reply = `{"errors": [{"message": "field 'foo' not found"}]}`
	_, err := s.newClient().GetToken(bCtx.Background(), "roids")
	s.ErrorIs(err, ErrGraphql)
	s.Contains(err.Error(), "field 'foo' not found")

	s.status = http.StatusInternalServerError
	s.reply = `oops`
	_, err = s.newClient().GetToken(bCtx.Background(), "roids")
	s.Equal(ErrStatusCodeNotOk, err)
}

func TestIndexerSuite(t *testing.T) {
	suite.Run(t, new(indexerSuite))
}
