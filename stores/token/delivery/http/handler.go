package http

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/x-xyz/asteroid-market/base/ctx"
	"github.com/x-xyz/asteroid-market/base/delivery"
	"github.com/x-xyz/asteroid-market/domain/token"
	"github.com/x-xyz/asteroid-market/middleware"
)

type handler struct {
	token token.Repo
}

func New(e *echo.Echo, tokenRepo token.Repo) {
	h := &handler{tokenRepo}

	g := e.Group("/tokens")
	g.GET("/:ticker", h.get, middleware.CacheHttp(time.Minute))
}

func (h *handler) get(c echo.Context) error {
	ctx := c.Get("ctx").(ctx.Ctx)

	t, err := h.token.FindOne(ctx, c.Param("ticker"))
	if err != nil {
		return delivery.MakeJsonResp(c, http.StatusInternalServerError, err)
	}
	return delivery.MakeJsonResp(c, http.StatusOK, t)
}
