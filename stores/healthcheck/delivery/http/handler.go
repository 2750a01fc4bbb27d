package http

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/x-xyz/asteroid-market/base/ctx"
	hcdomain "github.com/x-xyz/asteroid-market/domain/healthcheck"
)

// ResponseError represent the reseponse error struct
type ResponseError struct {
	Message string           `json:"message"`
	Report  *hcdomain.Report `json:"report,omitempty"`
}

type healthCheckHandler struct {
	healthCheck hcdomain.HealthCheckUsecase
}

// New will initialize the healthcheck/
func New(e *echo.Echo, us hcdomain.HealthCheckUsecase) {
	handler := &healthCheckHandler{
		healthCheck: us,
	}
	g := e.Group("/health")
	g.GET("", handler.check)
}

func (h *healthCheckHandler) check(c echo.Context) error {
	context := c.Get("ctx").(ctx.Ctx)
	report, err := h.healthCheck.Check(context)
	if err != nil {
		return c.JSON(http.StatusServiceUnavailable, ResponseError{
			Message: err.Error(),
			Report:  report,
		})
	}
	return c.JSON(http.StatusOK, report)
}
