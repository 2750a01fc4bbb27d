package lcd

import (
	"errors"
	"net/http"
	"time"

	"github.com/shopspring/decimal"

	bCtx "github.com/x-xyz/asteroid-market/base/ctx"
	"github.com/x-xyz/asteroid-market/domain"
)

var (
	ErrStatusCodeNotOk = errors.New("http.status != 200")
)

// Client reads account state from a cosmos rest (lcd) endpoint
type Client interface {
	// Balance fails with domain.ErrAccountNotFound for an address the chain has never seen
	Balance(ctx bCtx.Ctx, address domain.Address, denom string) (decimal.Decimal, error)
}

type ClientCfg struct {
	HttpClient http.Client
	Timeout    time.Duration
	LcdUrl     string
}

type coin struct {
	Denom  string          `json:"denom"`
	Amount decimal.Decimal `json:"amount"`
}

type balanceResponse struct {
	Balance coin `json:"balance"`
}

type accountResponse struct {
	Account struct {
		Type    string `json:"@type"`
		Address string `json:"address"`
	} `json:"account"`
}

// grpc gateway error body
type errorResponse struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

// grpc codes.NotFound
const codeNotFound = 5
