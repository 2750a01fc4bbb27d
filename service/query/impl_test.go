package query

import (
	"os"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/x-xyz/asteroid-market/base/ctx"
	"github.com/x-xyz/asteroid-market/base/database/mongoclient"
	"github.com/x-xyz/asteroid-market/domain"
)

var (
	mockCTX = ctx.Background()
)

const (
	mockTable = domain.TablePurchaseFlows
	dbName    = "testdb"
)

type dummyFlow struct {
	Id    string `bson:"id"`
	Buyer string `bson:"buyer"`
	State string `bson:"state"`
}

type querySuite struct {
	suite.Suite
	im *impl
}

func (q *querySuite) SetupTest() {
	q.im = &impl{
		client: mongoclient.MustConnectMongoClient(mongoclient.Cfg{
			URI:        os.Getenv("MONGO_URI"),
			AuthDBName: "admin",
			DBName:     dbName,
			SetSafe:    true,
		}),
	}
	q.Require().NoError(q.im.coll(mockTable).Drop(mockCTX))
}

func (q *querySuite) TestInsertAndFindOne() {
	flow := dummyFlow{"flow-1", "buyer", "initial"}
	q.Require().NoError(q.im.Insert(mockCTX, mockTable, flow))

	res := dummyFlow{}
	q.Require().NoError(q.im.FindOne(mockCTX, mockTable, bson.M{"id": "flow-1"}, &res))
	q.Equal(flow, res)

	q.Equal(ErrNotFound, q.im.FindOne(mockCTX, mockTable, bson.M{"id": "flow-2"}, &res))
}

func (q *querySuite) TestInsertShouldFailWithDuplicateKey() {
	unique := true
	_, err := q.im.coll(mockTable).Indexes().CreateOne(mockCTX, mongo.IndexModel{
		Keys:    bson.D{{Key: "id", Value: 1}},
		Options: &options.IndexOptions{Unique: &unique},
	})
	q.Require().NoError(err)

	q.Require().NoError(q.im.Insert(mockCTX, mockTable, dummyFlow{"flow-1", "buyer", "initial"}))
	q.Equal(ErrDuplicateKey, q.im.Insert(mockCTX, mockTable, dummyFlow{"flow-1", "buyer", "reserved"}))
}

func (q *querySuite) TestUpsertAndCount() {
	cnt, err := q.im.Count(mockCTX, mockTable, bson.M{"buyer": "buyer"})
	q.NoError(err)
	q.Equal(0, cnt)

	q.Require().NoError(q.im.Upsert(mockCTX, mockTable, bson.M{"id": "flow-1"}, dummyFlow{"flow-1", "buyer", "initial"}))
	q.Require().NoError(q.im.Upsert(mockCTX, mockTable, bson.M{"id": "flow-1"}, dummyFlow{"flow-1", "buyer", "reserved"}))
	q.Require().NoError(q.im.Upsert(mockCTX, mockTable, bson.M{"id": "flow-2"}, dummyFlow{"flow-2", "buyer", "initial"}))

	cnt, err = q.im.Count(mockCTX, mockTable, bson.M{"buyer": "buyer"})
	q.NoError(err)
	q.Equal(2, cnt)

	res := dummyFlow{}
	q.Require().NoError(q.im.FindOne(mockCTX, mockTable, bson.M{"id": "flow-1"}, &res))
	q.Equal("reserved", res.State)
}

func (q *querySuite) TestReplace() {
	q.Require().NoError(q.im.Insert(mockCTX, mockTable, dummyFlow{"flow-1", "buyer", "initial"}))

	q.Require().NoError(q.im.Replace(mockCTX, mockTable, bson.M{"id": "flow-1", "state": "initial"}, dummyFlow{"flow-1", "buyer", "reserving"}))
	// the selector no longer matches, nothing is inserted either
	q.Equal(ErrNotFound, q.im.Replace(mockCTX, mockTable, bson.M{"id": "flow-1", "state": "initial"}, dummyFlow{"flow-1", "buyer", "reserved"}))

	res := dummyFlow{}
	q.Require().NoError(q.im.FindOne(mockCTX, mockTable, bson.M{"id": "flow-1"}, &res))
	q.Equal("reserving", res.State)
	cnt, err := q.im.Count(mockCTX, mockTable, bson.M{"id": "flow-1"})
	q.NoError(err)
	q.Equal(1, cnt)
}

func (q *querySuite) TestSearch() {
	for _, f := range []dummyFlow{{"a", "buyer", "failed"}, {"b", "buyer", "initial"}, {"c", "other", "failed"}} {
		q.Require().NoError(q.im.Insert(mockCTX, mockTable, f))
	}

	var res []dummyFlow
	q.Require().NoError(q.im.Search(mockCTX, mockTable, 0, 5, "-id", bson.M{"buyer": "buyer"}, &res))
	q.Equal([]dummyFlow{{"b", "buyer", "initial"}, {"a", "buyer", "failed"}}, res)

	res = nil
	q.Require().NoError(q.im.SearchNSorts(mockCTX, mockTable, 1, 1, []string{"state", "id"}, bson.M{}, &res))
	q.Equal([]dummyFlow{{"c", "other", "failed"}}, res)
}

func (q *querySuite) TestSearchWithoutIndex() {
	q.Require().NoError(q.im.Insert(mockCTX, mockTable, dummyFlow{"a", "buyer", "failed"}))

	q.im.checkIndex = true
	var res []dummyFlow
	q.Equal(ErrCollScan, q.im.Search(mockCTX, mockTable, 0, 5, "", bson.M{"buyer": "buyer"}, &res))
}

func (q *querySuite) TestPatchAndRemove() {
	q.Require().NoError(q.im.Insert(mockCTX, mockTable, dummyFlow{"a", "buyer", "failed"}))
	q.Require().NoError(q.im.Insert(mockCTX, mockTable, dummyFlow{"b", "buyer", "failed"}))

	q.Require().NoError(q.im.Patch(mockCTX, mockTable, bson.M{"buyer": "buyer"}, bson.M{"state": "cancelled"}, WithPatchMany(true)))
	cnt, err := q.im.Count(mockCTX, mockTable, bson.M{"state": "cancelled"})
	q.NoError(err)
	q.Equal(2, cnt)

	q.Equal(ErrNotFound, q.im.Patch(mockCTX, mockTable, bson.M{"id": "z"}, bson.M{"state": "failed"}))

	q.Require().NoError(q.im.Remove(mockCTX, mockTable, bson.M{"id": "a"}))
	q.Equal(ErrNotFound, q.im.Remove(mockCTX, mockTable, bson.M{"id": "a"}))
}

func TestQuerySuite(t *testing.T) {
	if os.Getenv("MONGO_URI") == "" {
		t.Skip("MONGO_URI not set")
	}
	suite.Run(t, new(querySuite))
}

func TestGetSortOption(t *testing.T) {
	require.Equal(t, bson.D{
		{Key: "state", Value: 1},
		{Key: "createdAt", Value: -1},
	}, getSortOption("state", "", "-createdAt"))
	require.Equal(t, bson.D{}, getSortOption())
}
