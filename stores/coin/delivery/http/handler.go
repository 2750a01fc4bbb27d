package http

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/shopspring/decimal"

	"github.com/x-xyz/asteroid-market/base/ctx"
	"github.com/x-xyz/asteroid-market/base/delivery"
	"github.com/x-xyz/asteroid-market/domain"
	"github.com/x-xyz/asteroid-market/middleware"
	"github.com/x-xyz/asteroid-market/service/coingecko"
)

type handler struct {
	client  coingecko.Client
	coinIds map[string]bool
}

type price struct {
	CoinId string          `json:"coinId"`
	Usd    decimal.Decimal `json:"usd"`
}

// New serves usd prices of the allowed coin ids only, each id costs an upstream quota
func New(e *echo.Echo, coingeckoClient coingecko.Client, coinIds []string) {
	h := &handler{
		client:  coingeckoClient,
		coinIds: map[string]bool{},
	}
	for _, id := range coinIds {
		h.coinIds[id] = true
	}

	g := e.Group("/coin")
	g.GET("/:coinId", h.getCoin, middleware.CacheHttp(time.Minute))
}

func (h *handler) getCoin(c echo.Context) error {
	ctx := c.Get("ctx").(ctx.Ctx)

	p := struct {
		CoinId string `param:"coinId" validate:"required"`
	}{}

	if err := c.Bind(&p); err != nil {
		return delivery.MakeJsonResp(c, http.StatusBadRequest, err)
	}
	if !h.coinIds[p.CoinId] {
		return delivery.MakeJsonResp(c, http.StatusNotFound, domain.ErrNotFound)
	}

	val, err := h.client.GetPrice(ctx, p.CoinId)
	if err != nil {
		return delivery.MakeJsonResp(c, http.StatusInternalServerError, err)
	}

	return delivery.MakeJsonResp(c, http.StatusOK, price{CoinId: p.CoinId, Usd: val})
}
