package coingecko

import (
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"

	bCtx "github.com/x-xyz/asteroid-market/base/ctx"
)

func TestGetPrice(t *testing.T) {
	req := require.New(t)
	var calls int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt32(&calls, 1)
		if r.URL.Query().Get("ids") != "cosmos" {
			_, _ = w.Write([]byte(`[]`))
			return
		}
		_, _ = w.Write([]byte(`[{"id":"cosmos","symbol":"atom","name":"Cosmos Hub","current_price":7.25}]`))
	}))
	defer srv.Close()

	c := NewClient(&ClientCfg{
		HttpClient: http.Client{},
		Timeout:    time.Second,
		BaseUrl:    srv.URL,
	})
	ctx := bCtx.Background()

	price, err := c.GetPrice(ctx, "cosmos")
	req.NoError(err)
	req.True(decimal.RequireFromString("7.25").Equal(price))

	// second read is served from the cache
	_, err = c.GetPrice(ctx, "cosmos")
	req.NoError(err)
	req.Equal(int32(1), atomic.LoadInt32(&calls))

	_, err = c.GetPrice(ctx, "unknown")
	req.Equal(ErrMarketsLen, err)
}

func TestGetPriceStatusNotOk(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTooManyRequests)
	}))
	defer srv.Close()

	c := NewClient(&ClientCfg{Timeout: time.Second, BaseUrl: srv.URL})
	_, err := c.GetPrice(bCtx.Background(), "cosmos")
	require.Equal(t, ErrStatusCodeNotOk, err)
}
