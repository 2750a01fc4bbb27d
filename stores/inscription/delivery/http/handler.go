package http

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/x-xyz/asteroid-market/base/ctx"
	"github.com/x-xyz/asteroid-market/base/delivery"
	"github.com/x-xyz/asteroid-market/domain"
	"github.com/x-xyz/asteroid-market/domain/inscription"
)

type handler struct {
	inscription inscription.UseCase
}

func New(e *echo.Echo, iu inscription.UseCase) {
	h := &handler{inscription: iu}

	e.POST("/inscriptions", h.inscribe)
}

func (h *handler) inscribe(c echo.Context) error {
	ctx := c.Get("ctx").(ctx.Ctx)

	p := &inscription.InscribeRequest{}
	if err := c.Bind(p); err != nil {
		return delivery.MakeJsonResp(c, http.StatusBadRequest, err)
	}
	if err := c.Validate(p); err != nil {
		return delivery.MakeJsonResp(c, http.StatusBadRequest, domain.NewValidationError("inscribe", err))
	}

	receipt, err := h.inscription.Inscribe(ctx, p)
	if err != nil {
		return delivery.MakeJsonResp(c, http.StatusInternalServerError, err)
	}
	return delivery.MakeJsonResp(c, http.StatusOK, receipt)
}
