package http

import (
	"net/http"
	"strconv"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/x-xyz/asteroid-market/base/ctx"
	"github.com/x-xyz/asteroid-market/base/delivery"
	"github.com/x-xyz/asteroid-market/base/validator"
	"github.com/x-xyz/asteroid-market/domain"
	"github.com/x-xyz/asteroid-market/domain/listing"
	"github.com/x-xyz/asteroid-market/middleware"
)

type handler struct {
	listing listing.UseCase
}

func New(e *echo.Echo, lu listing.UseCase) {
	h := &handler{listing: lu}

	e.GET("/tokens/:ticker/listings", h.getTokenListings, middleware.CacheHttp(3*time.Second))

	g := e.Group("/listings")
	g.GET("/:hash", h.getListing, middleware.IsValidTxHash("hash"))
	g.POST("/cft20", h.listCft20)
	g.DELETE("/:hash", h.delist, middleware.IsValidTxHash("hash"))
}

func viewerOf(c echo.Context) (domain.Address, bool) {
	viewer := c.QueryParam("viewer")
	if viewer == "" {
		return "", true
	}
	return domain.Address(viewer), validator.IsValidAddress(viewer)
}

// getTokenListings
//
//	@Description	open listings of a cft20 token, resolved for the viewer
//	@Tags			listings
//	@Produce		json
//	@Param			ticker	path		string	true	"token ticker"
//	@Param			viewer	query		string	false	"connected address"
//	@Param			offset	query		int		false	"offset"
//	@Param			limit	query		int		false	"limit"
//	@Param			orderBy	query		string	false	"ppt_asc, ppt_desc, date_desc or amount_desc"
//	@Param			seller	query		string	false	"only listings of this seller"
//	@Success		200		{object}	listing.ViewResult
//	@Router			/tokens/{ticker}/listings [get]
func (h *handler) getTokenListings(c echo.Context) error {
	ctx := c.Get("ctx").(ctx.Ctx)

	viewer, ok := viewerOf(c)
	if !ok {
		return delivery.MakeJsonResp(c, http.StatusBadRequest, domain.ErrInvalidAddress)
	}

	opts := []listing.FindAllOptionsFunc{}
	if c.QueryParam("offset") != "" || c.QueryParam("limit") != "" {
		offset, err := strconv.Atoi(c.QueryParam("offset"))
		if err != nil && c.QueryParam("offset") != "" {
			return delivery.MakeJsonResp(c, http.StatusBadRequest, domain.ErrBadParamInput)
		}
		limit, err := strconv.Atoi(c.QueryParam("limit"))
		if err != nil {
			limit = 100
		}
		opts = append(opts, listing.WithPagination(offset, limit))
	}
	if orderBy := c.QueryParam("orderBy"); orderBy != "" {
		opts = append(opts, listing.WithOrderBy(listing.OrderBy(orderBy)))
	}
	if seller := c.QueryParam("seller"); seller != "" {
		if !validator.IsValidAddress(seller) {
			return delivery.MakeJsonResp(c, http.StatusBadRequest, domain.ErrInvalidAddress)
		}
		opts = append(opts, listing.WithSeller(domain.Address(seller)))
	}

	res, err := h.listing.GetTokenListings(ctx, c.Param("ticker"), viewer, opts...)
	if err != nil {
		return delivery.MakeJsonResp(c, http.StatusInternalServerError, err)
	}
	return delivery.MakeJsonResp(c, http.StatusOK, res)
}

func (h *handler) getListing(c echo.Context) error {
	ctx := c.Get("ctx").(ctx.Ctx)

	viewer, ok := viewerOf(c)
	if !ok {
		return delivery.MakeJsonResp(c, http.StatusBadRequest, domain.ErrInvalidAddress)
	}

	v, err := h.listing.GetListing(ctx, domain.TxHash(c.Param("hash")), viewer)
	if err != nil {
		return delivery.MakeJsonResp(c, http.StatusInternalServerError, err)
	}
	return delivery.MakeJsonResp(c, http.StatusOK, v)
}

// listCft20
//
//	@Description	list cft20 tokens of the wallet for sale
//	@Tags			listings
//	@Accept			json
//	@Produce		json
//	@Param			body	body		listing.ListCft20Request	true	"listing"
//	@Success		200		{object}	tx.Receipt
//	@Router			/listings/cft20 [post]
func (h *handler) listCft20(c echo.Context) error {
	ctx := c.Get("ctx").(ctx.Ctx)

	p := &listing.ListCft20Request{}
	if err := c.Bind(p); err != nil {
		return delivery.MakeJsonResp(c, http.StatusBadRequest, err)
	}
	if err := c.Validate(p); err != nil {
		return delivery.MakeJsonResp(c, http.StatusBadRequest, domain.NewValidationError("listCft20", err))
	}

	receipt, err := h.listing.ListCft20(ctx, p)
	if err != nil {
		return delivery.MakeJsonResp(c, http.StatusInternalServerError, err)
	}
	return delivery.MakeJsonResp(c, http.StatusOK, receipt)
}

func (h *handler) delist(c echo.Context) error {
	ctx := c.Get("ctx").(ctx.Ctx)

	receipt, err := h.listing.Delist(ctx, domain.TxHash(c.Param("hash")))
	if err != nil {
		return delivery.MakeJsonResp(c, http.StatusInternalServerError, err)
	}
	return delivery.MakeJsonResp(c, http.StatusOK, receipt)
}
