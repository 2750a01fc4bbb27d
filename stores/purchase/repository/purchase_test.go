package repository

import (
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
	"go.mongodb.org/mongo-driver/bson"

	bCtx "github.com/x-xyz/asteroid-market/base/ctx"
	"github.com/x-xyz/asteroid-market/domain"
	"github.com/x-xyz/asteroid-market/domain/purchase"
	"github.com/x-xyz/asteroid-market/service/query"
	queryMocks "github.com/x-xyz/asteroid-market/service/query/mocks"
)

const buyer = domain.Address("cosmos1qgpqyqszqgpqyqszqgpqyqszqgpqyqszrh8mx2")

var (
	mockCtx = bCtx.Background()
	now     = time.Date(2024, 1, 2, 3, 4, 5, 0, time.UTC)
)

type purchaseRepoTestSuite struct {
	suite.Suite
	q  *queryMocks.Mongo
	im purchase.Repo
}

func (s *purchaseRepoTestSuite) SetupTest() {
	timeNow = func() time.Time { return now }
	s.q = &queryMocks.Mongo{}
	s.im = NewPurchaseRepo(s.q)
}

func (s *purchaseRepoTestSuite) TearDownTest() {
	timeNow = time.Now
	s.q.AssertExpectations(s.T())
}

func TestPurchaseRepoTestSuite(t *testing.T) {
	suite.Run(t, new(purchaseRepoTestSuite))
}

func (s *purchaseRepoTestSuite) TestCreate() {
	flow := &purchase.Flow{Id: "f1", Buyer: domain.Address(strings.ToUpper(buyer.String())), State: purchase.StateInitial}
	s.q.On("Insert", mockCtx, domain.TablePurchaseFlows, flow).Return(nil).Once()

	s.Require().NoError(s.im.Create(mockCtx, flow))
	s.Equal(now, flow.CreatedAt)
	s.Equal(now, flow.UpdatedAt)
	s.Equal(int64(1), flow.Version)
	s.Equal(buyer, flow.Buyer)
}

func (s *purchaseRepoTestSuite) TestCreateDuplicate() {
	flow := &purchase.Flow{Id: "f1"}
	s.q.On("Insert", mockCtx, domain.TablePurchaseFlows, flow).Return(query.ErrDuplicateKey).Once()

	s.ErrorIs(s.im.Create(mockCtx, flow), domain.ErrConflict)
}

func (s *purchaseRepoTestSuite) TestFindOne() {
	s.q.On("FindOne", mockCtx, domain.TablePurchaseFlows, bson.M{"id": "f1"}, mock.Anything).
		Run(func(args mock.Arguments) {
			f := args.Get(3).(*purchase.Flow)
			f.Id = "f1"
			f.State = purchase.StateReserved
		}).Return(nil).Once()
	s.q.On("FindOne", mockCtx, domain.TablePurchaseFlows, bson.M{"id": "f2"}, mock.Anything).Return(query.ErrNotFound).Once()

	f, err := s.im.FindOne(mockCtx, "f1")
	s.Require().NoError(err)
	s.Equal(purchase.StateReserved, f.State)

	_, err = s.im.FindOne(mockCtx, "f2")
	s.ErrorIs(err, domain.ErrNotFound)
}

func (s *purchaseRepoTestSuite) TestFindAll() {
	expQuery := bson.M{
		"buyer":         buyer,
		"stillIndexing": true,
		"state":         bson.M{"$in": []purchase.State{purchase.StateReserving, purchase.StatePurchasing}},
	}
	s.q.On("Search", mockCtx, domain.TablePurchaseFlows, 0, 20, "-updatedAt", expQuery, mock.Anything).
		Run(func(args mock.Arguments) {
			res := args.Get(6).(*[]*purchase.Flow)
			*res = append(*res, &purchase.Flow{Id: "f1"})
		}).Return(nil).Once()

	res, err := s.im.FindAll(mockCtx,
		purchase.WithBuyer(domain.Address(strings.ToUpper(buyer.String()))),
		purchase.WithStillIndexing(true),
		purchase.WithStates(purchase.StateReserving, purchase.StatePurchasing),
		purchase.WithLimit(20),
	)
	s.Require().NoError(err)
	s.Len(res, 1)
}

func (s *purchaseRepoTestSuite) TestSave() {
	flow := &purchase.Flow{Id: "f1", Buyer: buyer, State: purchase.StatePurchased, Version: 3}
	s.q.On("Replace", mockCtx, domain.TablePurchaseFlows, bson.M{"id": "f1", "version": int64(3)}, flow).Return(nil).Once()

	s.Require().NoError(s.im.Save(mockCtx, flow))
	s.Equal(now, flow.UpdatedAt)
	s.Equal(int64(4), flow.Version)
}

func (s *purchaseRepoTestSuite) TestSaveStaleCopy() {
	loadedAt := now.Add(-time.Minute)
	flow := &purchase.Flow{Id: "f1", State: purchase.StateReserved, Version: 3, UpdatedAt: loadedAt}
	s.q.On("Replace", mockCtx, domain.TablePurchaseFlows, bson.M{"id": "f1", "version": int64(3)}, flow).Return(query.ErrNotFound).Once()

	s.ErrorIs(s.im.Save(mockCtx, flow), domain.ErrConflict)
	s.Equal(int64(3), flow.Version)
	s.Equal(loadedAt, flow.UpdatedAt)
}

func (s *purchaseRepoTestSuite) TestSaveFailure() {
	flow := &purchase.Flow{Id: "f1", State: purchase.StateReserved, Version: 3}
	s.q.On("Replace", mockCtx, domain.TablePurchaseFlows, bson.M{"id": "f1", "version": int64(3)}, flow).Return(errors.New("boom")).Once()

	err := s.im.Save(mockCtx, flow)
	s.Error(err)
	s.NotErrorIs(err, domain.ErrConflict)
	s.Equal(int64(3), flow.Version)
}
