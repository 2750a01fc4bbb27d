package cache

import (
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"

	"github.com/x-xyz/asteroid-market/base/ctx"
	"github.com/x-xyz/asteroid-market/domain/keys"
	"github.com/x-xyz/asteroid-market/service/cache/provider"
	"github.com/x-xyz/asteroid-market/service/cache/provider/primitive"
)

var (
	mockCtx = ctx.Background()
)

type value struct {
	Value string `json:"value"`
}

type testsuite struct {
	suite.Suite
	im    *impl
	cache provider.Provider
}

func (ts *testsuite) SetupTest() {
	ts.cache = primitive.NewPrimitive("test", 1)
	ts.im = New(ServiceConfig{
		Ttl:   time.Second,
		Pfx:   "testing",
		Cache: ts.cache,
	}).(*impl)
}

func Test(t *testing.T) {
	suite.Run(t, new(testsuite))
}

func (ts *testsuite) TestGet() {
	var (
		k = "key"
		v = value{"value"}
		c = &value{}
	)

	ts.Equal(ErrNotFound, ts.im.Get(mockCtx, k, c))

	sv, err := json.Marshal(v)
	ts.NoError(err)
	ts.cache.Set(mockCtx, keys.RedisKey(ts.im.pfx, k), sv, time.Second)
	ts.NoError(ts.im.Get(mockCtx, k, c))
	ts.Equal(v, *c)

	time.Sleep(1100 * time.Millisecond)

	_, _, err = ts.cache.Get(mockCtx, keys.RedisKey(ts.im.pfx, k))
	ts.Equal(provider.ErrNotFound, err)
}

func (ts *testsuite) TestSet() {
	var (
		k = "key"
		v = value{"value"}
		c = &value{}
	)

	ts.NoError(ts.im.Set(mockCtx, k, v))

	sv, _, err := ts.cache.Get(mockCtx, keys.RedisKey(ts.im.pfx, k))
	ts.NoError(err)

	ts.NoError(json.Unmarshal(sv, c))
	ts.Equal(v, *c)

	time.Sleep(1100 * time.Millisecond)

	_, _, err = ts.cache.Get(mockCtx, keys.RedisKey(ts.im.pfx, k))
	ts.Equal(provider.ErrNotFound, err)
}

func (ts *testsuite) TestGetByFunc() {
	var (
		k = "key"
		v = value{"value"}
		c = &value{}
	)

	ts.NoError(ts.im.GetByFunc(mockCtx, k, c, func() (interface{}, error) {
		return &v, nil
	}))

	ts.Equal(v, *c)

	sv, _, err := ts.cache.Get(mockCtx, keys.RedisKey(ts.im.pfx, k))
	ts.NoError(err)
	ts.NoError(json.Unmarshal(sv, c))
	ts.Equal(v, *c)

	time.Sleep(1100 * time.Millisecond)

	_, _, err = ts.cache.Get(mockCtx, keys.RedisKey(ts.im.pfx, k))
	ts.Equal(provider.ErrNotFound, err)
}

func (ts *testsuite) TestGetByFuncHit() {
	var (
		k = "hit"
		v = value{"cached"}
		c = &value{}
	)

	ts.NoError(ts.im.Set(mockCtx, k, v))
	ts.NoError(ts.im.GetByFunc(mockCtx, k, c, func() (interface{}, error) {
		ts.Fail("getter should not be called on a hit")
		return nil, nil
	}))
	ts.Equal(v, *c)
}

func (ts *testsuite) TestGetByFuncGetterError() {
	errGetter := errors.New("indexer down")
	c := &value{}

	ts.Equal(errGetter, ts.im.GetByFunc(mockCtx, "err", c, func() (interface{}, error) {
		return nil, errGetter
	}))

	_, _, err := ts.cache.Get(mockCtx, keys.RedisKey(ts.im.pfx, "err"))
	ts.Equal(provider.ErrNotFound, err)
}

func (ts *testsuite) TestDel() {
	ts.NoError(ts.im.Set(mockCtx, "del", value{"v"}))
	ts.NoError(ts.im.Del(mockCtx, "del"))
	ts.Equal(ErrNotFound, ts.im.Get(mockCtx, "del", &value{}))

	ts.NoError(ts.im.Set(mockCtx, "a", value{"a"}))
	ts.NoError(ts.im.Set(mockCtx, "b", value{"b"}))
	ts.NoError(ts.im.Del(mockCtx, "a", "b"))
	ts.Equal(ErrNotFound, ts.im.Get(mockCtx, "a", &value{}))
	ts.Equal(ErrNotFound, ts.im.Get(mockCtx, "b", &value{}))
}
