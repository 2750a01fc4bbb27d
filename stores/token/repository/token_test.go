package repository

import (
	"testing"
	"time"

	"github.com/stretchr/testify/suite"

	bCtx "github.com/x-xyz/asteroid-market/base/ctx"
	"github.com/x-xyz/asteroid-market/domain"
	"github.com/x-xyz/asteroid-market/domain/token"
	"github.com/x-xyz/asteroid-market/service/cache"
	"github.com/x-xyz/asteroid-market/service/cache/provider/primitive"
	indexerMocks "github.com/x-xyz/asteroid-market/service/indexer/mocks"
)

var mockCtx = bCtx.Background()

type tokenRepoTestSuite struct {
	suite.Suite
	indexer *indexerMocks.Client
	im      token.Repo
}

func (s *tokenRepoTestSuite) SetupTest() {
	s.indexer = &indexerMocks.Client{}
	s.im = NewTokenRepo(s.indexer, cache.New(cache.ServiceConfig{
		Ttl:   time.Minute,
		Pfx:   "test",
		Cache: primitive.NewPrimitive("test", 1),
	}))
}

func (s *tokenRepoTestSuite) TearDownTest() {
	s.indexer.AssertExpectations(s.T())
}

func TestTokenRepoTestSuite(t *testing.T) {
	suite.Run(t, new(tokenRepoTestSuite))
}

func (s *tokenRepoTestSuite) TestFindOne() {
	roids := &token.Token{Id: 7, Ticker: "ROIDS", Decimals: 6}
	s.indexer.On("GetToken", mockCtx, "ROIDS").Return(roids, nil).Once()

	for _, ticker := range []string{"roids", "ROIDS"} {
		t, err := s.im.FindOne(mockCtx, ticker)
		s.NoError(err)
		s.Equal(roids, t)
	}
}

func (s *tokenRepoTestSuite) TestFindOneNotFound() {
	s.indexer.On("GetToken", mockCtx, "NOPE").Return(nil, domain.ErrNotFound).Once()

	_, err := s.im.FindOne(mockCtx, "nope")
	s.Equal(domain.ErrNotFound, err)
}
