package delivery

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/x-xyz/asteroid-market/domain"
	"github.com/x-xyz/asteroid-market/service/query"
)

type JsonResponseStatus string

const (
	JsonResponseStatusSuccess JsonResponseStatus = "success"
	JsonResponseStatusFail    JsonResponseStatus = "fail"
)

type JsonResponse struct {
	Data   interface{}        `json:"data"`
	Status JsonResponseStatus `json:"status"`
}

// ErrorBody is the data of a failed response
type ErrorBody struct {
	Message   string           `json:"message"`
	Kind      domain.ErrorKind `json:"kind"`
	Hint      string           `json:"hint,omitempty"`
	Retryable bool             `json:"retryable"`
}

// StatusOf maps an error to the http status it is reported with
func StatusOf(err error, fallback int) int {
	switch {
	case errors.Is(err, domain.ErrNotFound) || errors.Is(err, query.ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, domain.ErrInvalidTransition) || errors.Is(err, domain.ErrNotCancelable),
		errors.Is(err, domain.ErrConflict):
		return http.StatusConflict
	}
	switch domain.KindOf(err) {
	case domain.ErrorKindValidation:
		return http.StatusBadRequest
	case domain.ErrorKindEstimation:
		return http.StatusUnprocessableEntity
	case domain.ErrorKindTransaction:
		return http.StatusBadGateway
	}
	return fallback
}

func NewErrorBody(err error) ErrorBody {
	return ErrorBody{
		Message:   domain.FriendlyMessage(err),
		Kind:      domain.KindOf(err),
		Hint:      domain.HintOf(err),
		Retryable: domain.Retryable(err),
	}
}

func MakeJsonResp(c echo.Context, status int, data interface{}) error {
	if err, ok := data.(error); ok {
		status = StatusOf(err, status)
		data = NewErrorBody(err)
	}

	if status >= 400 {
		return c.JSON(status, JsonResponse{data, JsonResponseStatusFail})
	}

	if status >= 200 && status < 300 {
		return c.JSON(status, JsonResponse{data, JsonResponseStatusSuccess})
	}

	return c.JSON(status, data)
}
