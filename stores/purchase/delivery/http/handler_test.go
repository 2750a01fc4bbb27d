package http

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	goValidator "github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"

	"github.com/x-xyz/asteroid-market/base/validator"
	"github.com/x-xyz/asteroid-market/domain"
	"github.com/x-xyz/asteroid-market/domain/listing"
	"github.com/x-xyz/asteroid-market/domain/purchase"
	purchaseMocks "github.com/x-xyz/asteroid-market/domain/purchase/mocks"
	"github.com/x-xyz/asteroid-market/middleware"
)

const buyer = "cosmos1qgpqyqszqgpqyqszqgpqyqszqgpqyqszrh8mx2"

type handlerTestSuite struct {
	suite.Suite
	orchestrator *purchaseMocks.Orchestrator
	e            *echo.Echo
}

func (s *handlerTestSuite) SetupTest() {
	s.orchestrator = &purchaseMocks.Orchestrator{}
	s.e = echo.New()
	s.e.Validator = validator.NewCustomValidator(goValidator.New())
	s.e.Use(middleware.InitMiddleware().AddContext())
	New(s.e, s.orchestrator)
}

func (s *handlerTestSuite) TearDownTest() {
	s.orchestrator.AssertExpectations(s.T())
}

func TestHandlerTestSuite(t *testing.T) {
	suite.Run(t, new(handlerTestSuite))
}

func (s *handlerTestSuite) do(method, url, body string) (*httptest.ResponseRecorder, map[string]interface{}) {
	req := httptest.NewRequest(method, url, strings.NewReader(body))
	if body != "" {
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}
	rec := httptest.NewRecorder()
	s.e.ServeHTTP(rec, req)

	res := map[string]interface{}{}
	s.Require().NoError(json.Unmarshal(rec.Body.Bytes(), &res))
	return rec, res
}

func (s *handlerTestSuite) TestStart() {
	flow := &purchase.Flow{Id: "flow-1", State: purchase.StateInitial}
	s.orchestrator.On("Start", mock.Anything, listing.KindCft20, []domain.TxHash{"AA", "BB"}).Return(flow, nil).Once()

	rec, res := s.do(http.MethodPost, "/purchases", `{"kind":"cft20","hashes":["AA","BB"]}`)
	s.Equal(http.StatusOK, rec.Code)
	s.Equal("flow-1", res["data"].(map[string]interface{})["id"])
}

func (s *handlerTestSuite) TestStartWithoutHashes() {
	rec, _ := s.do(http.MethodPost, "/purchases", `{"kind":"cft20","hashes":[]}`)
	s.Equal(http.StatusBadRequest, rec.Code)
}

func (s *handlerTestSuite) TestFindAll() {
	s.orchestrator.On("FindAll", mock.Anything, mock.Anything, mock.Anything).Return([]*purchase.Flow{{Id: "flow-1"}}, nil).Once()

	rec, res := s.do(http.MethodGet, "/purchases?buyer="+buyer+"&state=failed&state=reserved", "")
	s.Equal(http.StatusOK, rec.Code)
	s.Len(res["data"], 1)
}

func (s *handlerTestSuite) TestSteps() {
	for _, step := range []string{"Reserve", "Confirm", "Retry", "Refresh", "Cancel"} {
		s.orchestrator.On(step, mock.Anything, "flow-1").Return(&purchase.Flow{Id: "flow-1"}, nil).Once()

		rec, _ := s.do(http.MethodPost, "/purchases/flow-1/"+strings.ToLower(step), "")
		s.Equal(http.StatusOK, rec.Code, step)
	}
}

func (s *handlerTestSuite) TestStepErrors() {
	s.orchestrator.On("Cancel", mock.Anything, "flow-1").
		Return(&purchase.Flow{Id: "flow-1"}, domain.NewValidationError("cancel", domain.ErrNotCancelable)).Once()
	rec, res := s.do(http.MethodPost, "/purchases/flow-1/cancel", "")
	s.Equal(http.StatusConflict, rec.Code)
	s.Equal(false, res["data"].(map[string]interface{})["retryable"])

	s.orchestrator.On("Reserve", mock.Anything, "flow-1").
		Return(&purchase.Flow{Id: "flow-1"}, domain.NewEstimationError("balance", domain.ErrInsufficientFunds)).Once()
	rec, res = s.do(http.MethodPost, "/purchases/flow-1/reserve", "")
	s.Equal(http.StatusUnprocessableEntity, rec.Code)
	data := res["data"].(map[string]interface{})
	s.Equal(true, data["retryable"])
	s.Equal("top up the wallet and try again", data["hint"])

	s.orchestrator.On("Get", mock.Anything, "nope").Return(nil, domain.ErrNotFound).Once()
	rec, _ = s.do(http.MethodGet, "/purchases/nope", "")
	s.Equal(http.StatusNotFound, rec.Code)
}
