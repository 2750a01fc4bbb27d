package repository

import (
	"testing"
	"time"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"

	bCtx "github.com/x-xyz/asteroid-market/base/ctx"
	"github.com/x-xyz/asteroid-market/domain"
	"github.com/x-xyz/asteroid-market/domain/listing"
	"github.com/x-xyz/asteroid-market/service/cache"
	"github.com/x-xyz/asteroid-market/service/cache/provider/primitive"
	"github.com/x-xyz/asteroid-market/service/indexer"
	indexerMocks "github.com/x-xyz/asteroid-market/service/indexer/mocks"
)

const seller = domain.Address("cosmos1qyqszqgpqyqszqgpqyqszqgpqyqszqgpjnp7du")

var mockCtx = bCtx.Background()

type listingRepoTestSuite struct {
	suite.Suite
	indexer *indexerMocks.Client
	im      listing.Repo
}

func newCache() cache.Service {
	return cache.New(cache.ServiceConfig{
		Ttl:   time.Minute,
		Pfx:   "test",
		Cache: primitive.NewPrimitive("test", 1),
	})
}

func (s *listingRepoTestSuite) SetupTest() {
	s.indexer = &indexerMocks.Client{}
	s.im = NewListingRepo(&ListingRepoCfg{
		Indexer:   s.indexer,
		Cache:     newCache(),
		PageCache: newCache(),
	})
}

func (s *listingRepoTestSuite) TearDownTest() {
	s.indexer.AssertExpectations(s.T())
}

func TestListingRepoTestSuite(t *testing.T) {
	suite.Run(t, new(listingRepoTestSuite))
}

func newListing(hash domain.TxHash) *listing.Listing {
	return &listing.Listing{
		TransactionHash: hash,
		SellerAddress:   seller,
		Total:           1000,
		DepositTotal:    10,
		Kind:            listing.KindCft20,
		Cft20:           &listing.Cft20Detail{Amount: 100, Ppt: 10},
	}
}

func (s *listingRepoTestSuite) TestFindTokenListings() {
	res := &listing.SearchResult{Items: []*listing.Listing{newListing("AA")}, Count: 1}
	s.indexer.On("GetTokenListings", mockCtx, &indexer.TokenListingsRequest{
		TokenId: 7,
		Offset:  20,
		Limit:   10,
		OrderBy: listing.OrderByDateDesc,
		Seller:  nil,
	}).Return(res, nil).Once()

	for i := 0; i < 2; i++ {
		got, err := s.im.FindTokenListings(mockCtx, 7, listing.WithPagination(20, 10), listing.WithOrderBy(listing.OrderByDateDesc))
		s.NoError(err)
		s.Equal(res, got)
	}
}

func (s *listingRepoTestSuite) TestFindTokenListingsBadOption() {
	_, err := s.im.FindTokenListings(mockCtx, 7, listing.WithOrderBy("price"))
	s.Equal(domain.ErrorKindValidation, domain.KindOf(err))
}

func (s *listingRepoTestSuite) TestFindOneAndInvalidate() {
	l := newListing("AA")
	s.indexer.On("GetListing", mockCtx, domain.TxHash("AA")).Return(l, nil).Twice()

	got, err := s.im.FindOne(mockCtx, "aa")
	s.NoError(err)
	s.Equal(l, got)

	// cached
	_, err = s.im.FindOne(mockCtx, "AA")
	s.NoError(err)

	s.NoError(s.im.Invalidate(mockCtx, "aa"))
	_, err = s.im.FindOne(mockCtx, "AA")
	s.NoError(err)
}

func (s *listingRepoTestSuite) TestFindOneNotFound() {
	s.indexer.On("GetListing", mockCtx, domain.TxHash("FF")).Return(nil, domain.ErrNotFound).Once()

	_, err := s.im.FindOne(mockCtx, "FF")
	s.Equal(domain.ErrNotFound, err)
}

func (s *listingRepoTestSuite) TestFindByHashesKeepsOrder() {
	cached := newListing("BB")
	s.indexer.On("GetListing", mockCtx, domain.TxHash("BB")).Return(cached, nil).Once()
	_, err := s.im.FindOne(mockCtx, "BB")
	s.NoError(err)

	s.indexer.On("GetListings", mockCtx, []domain.TxHash{"CC", "AA"}).
		Return([]*listing.Listing{newListing("AA"), newListing("CC")}, nil).Once()

	res, err := s.im.FindByHashes(mockCtx, []domain.TxHash{"cc", "BB", "AA"})
	s.NoError(err)
	s.Len(res, 3)
	s.Equal(domain.TxHash("CC"), res[0].TransactionHash)
	s.Equal(domain.TxHash("BB"), res[1].TransactionHash)
	s.Equal(domain.TxHash("AA"), res[2].TransactionHash)
}

func (s *listingRepoTestSuite) TestFindByHashesMissing() {
	s.indexer.On("GetListings", mock.Anything, []domain.TxHash{"AA", "DD"}).
		Return([]*listing.Listing{newListing("AA")}, nil).Once()

	_, err := s.im.FindByHashes(mockCtx, []domain.TxHash{"AA", "DD"})
	s.Equal(domain.ErrNotFound, err)
}
