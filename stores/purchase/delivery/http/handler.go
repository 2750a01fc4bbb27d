package http

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/x-xyz/asteroid-market/base/ctx"
	"github.com/x-xyz/asteroid-market/base/delivery"
	"github.com/x-xyz/asteroid-market/base/validator"
	"github.com/x-xyz/asteroid-market/domain"
	"github.com/x-xyz/asteroid-market/domain/listing"
	"github.com/x-xyz/asteroid-market/domain/purchase"
)

type handler struct {
	purchase purchase.Orchestrator
}

type startPayload struct {
	Kind   listing.Kind    `json:"kind" validate:"required"`
	Hashes []domain.TxHash `json:"hashes" validate:"required,min=1,dive,required"`
}

func New(e *echo.Echo, o purchase.Orchestrator) {
	h := &handler{purchase: o}

	g := e.Group("/purchases")
	g.POST("", h.start)
	g.GET("", h.findAll)
	g.GET("/:id", h.get)
	g.POST("/:id/reserve", h.step(o.Reserve))
	g.POST("/:id/confirm", h.step(o.Confirm))
	g.POST("/:id/retry", h.step(o.Retry))
	g.POST("/:id/refresh", h.step(o.Refresh))
	g.POST("/:id/cancel", h.step(o.Cancel))
}

// start
//
//	@Description	open a reserve then buy flow over listings of one kind
//	@Tags			purchases
//	@Accept			json
//	@Produce		json
//	@Param			body	body		startPayload	true	"listings"
//	@Success		200		{object}	purchase.Flow
//	@Router			/purchases [post]
func (h *handler) start(c echo.Context) error {
	ctx := c.Get("ctx").(ctx.Ctx)

	p := &startPayload{}
	if err := c.Bind(p); err != nil {
		return delivery.MakeJsonResp(c, http.StatusBadRequest, err)
	}
	if err := c.Validate(p); err != nil {
		return delivery.MakeJsonResp(c, http.StatusBadRequest, domain.NewValidationError("start", err))
	}

	flow, err := h.purchase.Start(ctx, p.Kind, p.Hashes)
	if err != nil {
		return delivery.MakeJsonResp(c, http.StatusInternalServerError, err)
	}
	return delivery.MakeJsonResp(c, http.StatusOK, flow)
}

func (h *handler) findAll(c echo.Context) error {
	ctx := c.Get("ctx").(ctx.Ctx)

	opts := []purchase.FindAllOptionsFunc{}
	if buyer := c.QueryParam("buyer"); buyer != "" {
		if !validator.IsValidAddress(buyer) {
			return delivery.MakeJsonResp(c, http.StatusBadRequest, domain.ErrInvalidAddress)
		}
		opts = append(opts, purchase.WithBuyer(domain.Address(buyer)))
	}
	if states := c.QueryParams()["state"]; len(states) > 0 {
		s := make([]purchase.State, len(states))
		for i, state := range states {
			s[i] = purchase.State(state)
		}
		opts = append(opts, purchase.WithStates(s...))
	}
	if limit := c.QueryParam("limit"); limit != "" {
		l, err := strconv.Atoi(limit)
		if err != nil || l <= 0 {
			return delivery.MakeJsonResp(c, http.StatusBadRequest, domain.ErrBadParamInput)
		}
		opts = append(opts, purchase.WithLimit(l))
	}

	flows, err := h.purchase.FindAll(ctx, opts...)
	if err != nil {
		return delivery.MakeJsonResp(c, http.StatusInternalServerError, err)
	}
	return delivery.MakeJsonResp(c, http.StatusOK, flows)
}

func (h *handler) get(c echo.Context) error {
	ctx := c.Get("ctx").(ctx.Ctx)

	flow, err := h.purchase.Get(ctx, c.Param("id"))
	if err != nil {
		return delivery.MakeJsonResp(c, http.StatusInternalServerError, err)
	}
	return delivery.MakeJsonResp(c, http.StatusOK, flow)
}

// step serves the flow transitions, they all take the flow id only
func (h *handler) step(fn func(ctx.Ctx, string) (*purchase.Flow, error)) echo.HandlerFunc {
	return func(c echo.Context) error {
		ctx := c.Get("ctx").(ctx.Ctx)

		flow, err := fn(ctx, c.Param("id"))
		if err != nil {
			return delivery.MakeJsonResp(c, http.StatusInternalServerError, err)
		}
		return delivery.MakeJsonResp(c, http.StatusOK, flow)
	}
}
