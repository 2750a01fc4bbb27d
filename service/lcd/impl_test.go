package lcd

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"

	bCtx "github.com/x-xyz/asteroid-market/base/ctx"
	"github.com/x-xyz/asteroid-market/domain"
)

const (
	known   = domain.Address("cosmos1qgpqyqszqgpqyqszqgpqyqszqgpqyqszrh8mx2")
	unknown = domain.Address("cosmos1qvpsxqcrqvpsxqcrqvpsxqcrqvpsxqcrz8x6vt")
)

func newServer() *httptest.Server {
	return httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch {
		case strings.HasSuffix(r.URL.Path, "/accounts/"+known.String()):
			_, _ = w.Write([]byte(`{"account":{"@type":"/cosmos.auth.v1beta1.BaseAccount","address":"` + known.String() + `"}}`))
		case strings.Contains(r.URL.Path, "/accounts/"):
			w.WriteHeader(http.StatusNotFound)
			_, _ = w.Write([]byte(`{"code":5,"message":"rpc error: code = NotFound desc = account ` + unknown.String() + ` not found: key not found","details":[]}`))
		case strings.Contains(r.URL.Path, "/balances/"+known.String()) && r.URL.Query().Get("denom") == "uatom":
			_, _ = w.Write([]byte(`{"balance":{"denom":"uatom","amount":"1250000"}}`))
		default:
			w.WriteHeader(http.StatusInternalServerError)
		}
	}))
}

func TestBalance(t *testing.T) {
	req := require.New(t)
	srv := newServer()
	defer srv.Close()

	c := NewClient(&ClientCfg{Timeout: time.Second, LcdUrl: srv.URL})
	ctx := bCtx.Background()

	bal, err := c.Balance(ctx, known, "uatom")
	req.NoError(err)
	req.True(decimal.NewFromInt(1250000).Equal(bal))

	_, err = c.Balance(ctx, unknown, "uatom")
	req.Equal(domain.ErrAccountNotFound, err)

	_, err = c.Balance(ctx, known, "uosmo")
	req.Equal(ErrStatusCodeNotOk, err)
}
