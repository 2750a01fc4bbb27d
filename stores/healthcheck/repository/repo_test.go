package repository

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/mongo/readpref"

	"github.com/x-xyz/asteroid-market/base/ctx"
	redisMocks "github.com/x-xyz/asteroid-market/service/redis/mocks"
)

type fakePinger struct {
	err error
}

func (f *fakePinger) Ping(ctx context.Context, rp *readpref.ReadPref) error {
	return f.err
}

func TestPingDB(t *testing.T) {
	r := &redisMocks.Service{}
	r.On("Set", mock.Anything, "healthcheck:testset", []byte("1"), 30*time.Second).Return(nil).Once()
	require.NoError(t, New(&fakePinger{}, r).PingDB(ctx.Background()))
	r.AssertExpectations(t)

	// redis is not touched once mongo fails
	down := errors.New("server selection timeout")
	require.Equal(t, down, New(&fakePinger{down}, &redisMocks.Service{}).PingDB(ctx.Background()))
}
