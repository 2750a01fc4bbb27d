package token

import (
	"github.com/shopspring/decimal"

	"github.com/x-xyz/asteroid-market/base/ctx"
)

// Token is a CFT-20 token as indexed
type Token struct {
	Id                int64  `json:"id"`
	Ticker            string `json:"ticker"`
	Name              string `json:"name"`
	Decimals          int32  `json:"decimals"`
	MaxSupply         int64  `json:"maxSupply"`
	CirculatingSupply int64  `json:"circulatingSupply"`
	LastPriceBase     int64  `json:"lastPriceBase"`
	ContentPath       string `json:"contentPath"`
}

// ToDisplay converts base units of the token into a display amount
func (t *Token) ToDisplay(amount int64) decimal.Decimal {
	return decimal.New(amount, -t.Decimals)
}

// ToBase converts a display amount into base units of the token
func (t *Token) ToBase(amount decimal.Decimal) int64 {
	return amount.Shift(t.Decimals).IntPart()
}

type Repo interface {
	FindOne(c ctx.Ctx, ticker string) (*Token, error)
}
