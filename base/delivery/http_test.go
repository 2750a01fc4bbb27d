package delivery

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/require"

	"github.com/x-xyz/asteroid-market/domain"
)

func TestMakeJsonResp(t *testing.T) {
	tests := []struct {
		desc      string
		status    int
		data      interface{}
		expStatus int
		expKind   domain.ErrorKind
		expMsg    string
	}{
		{
			desc:      "success",
			status:    http.StatusOK,
			data:      map[string]string{"a": "b"},
			expStatus: http.StatusOK,
		},
		{
			desc:      "not found",
			status:    http.StatusInternalServerError,
			data:      domain.ErrNotFound,
			expStatus: http.StatusNotFound,
			expKind:   domain.ErrorKindGeneric,
			expMsg:    domain.ErrNotFound.Error(),
		},
		{
			desc:      "concurrent update",
			status:    http.StatusInternalServerError,
			data:      domain.ErrConflict,
			expStatus: http.StatusConflict,
			expKind:   domain.ErrorKindGeneric,
			expMsg:    domain.ErrConflict.Error(),
		},
		{
			desc:      "validation",
			status:    http.StatusInternalServerError,
			data:      domain.NewValidationError("start", domain.ErrEmptyListings),
			expStatus: http.StatusBadRequest,
			expKind:   domain.ErrorKindValidation,
			expMsg:    "start: no listing selected",
		},
		{
			desc:      "estimation is translated",
			status:    http.StatusInternalServerError,
			data:      domain.NewEstimationError("estimate", domain.ErrInsufficientFunds),
			expStatus: http.StatusUnprocessableEntity,
			expKind:   domain.ErrorKindEstimation,
			expMsg:    "Your wallet does not have enough funds to cover this transaction",
		},
		{
			desc:      "transaction",
			status:    http.StatusInternalServerError,
			data:      domain.NewTransactionError("sign", domain.ErrRequestRejected),
			expStatus: http.StatusBadGateway,
			expKind:   domain.ErrorKindTransaction,
			expMsg:    "You rejected the request in your wallet",
		},
		{
			desc:      "unknown error passes through",
			status:    http.StatusInternalServerError,
			data:      errors.New("something odd"),
			expStatus: http.StatusInternalServerError,
			expKind:   domain.ErrorKindGeneric,
			expMsg:    "something odd",
		},
	}

	for _, tt := range tests {
		e := echo.New()
		rec := httptest.NewRecorder()
		c := e.NewContext(httptest.NewRequest(http.MethodGet, "/", nil), rec)

		require.NoError(t, MakeJsonResp(c, tt.status, tt.data), tt.desc)
		require.Equal(t, tt.expStatus, rec.Code, tt.desc)

		if tt.expMsg == "" {
			continue
		}
		resp := struct {
			Data   ErrorBody          `json:"data"`
			Status JsonResponseStatus `json:"status"`
		}{}
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp), tt.desc)
		require.Equal(t, JsonResponseStatusFail, resp.Status, tt.desc)
		require.Equal(t, tt.expKind, resp.Data.Kind, tt.desc)
		require.Equal(t, tt.expMsg, resp.Data.Message, tt.desc)
	}
}
