package usecase

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/x-xyz/asteroid-market/base/ctx"
	"github.com/x-xyz/asteroid-market/domain/chain"
	chainMocks "github.com/x-xyz/asteroid-market/domain/chain/mocks"
	hcdomain "github.com/x-xyz/asteroid-market/domain/healthcheck"
)

type fakeRepo struct {
	err error
}

func (f *fakeRepo) PingDB(c ctx.Ctx) error {
	return f.err
}

func TestCheck(t *testing.T) {
	c := ctx.Background()
	tests := []struct {
		desc    string
		repoErr error
		status  *chain.Status
		healthy bool
		expErr  error
	}{
		{
			desc:    "in sync",
			status:  &chain.Status{LastProcessedHeight: 95, LastKnownHeight: 100},
			healthy: true,
		},
		{
			desc:   "indexer behind",
			status: &chain.Status{LastProcessedHeight: 10, LastKnownHeight: 100},
			expErr: hcdomain.ErrIndexerBehind,
		},
		{
			desc:    "db down",
			repoErr: errors.New("connection refused"),
		},
	}
	for _, tt := range tests {
		uc := &chainMocks.UseCase{}
		if tt.status != nil {
			uc.On("GetStatus", mock.Anything).Return(tt.status, nil).Once()
		}
		im := New(&fakeRepo{tt.repoErr}, uc, 20)

		report, err := im.Check(c)
		require.Equal(t, tt.healthy, report.Healthy, tt.desc)
		switch {
		case tt.repoErr != nil:
			require.Equal(t, tt.repoErr, err, tt.desc)
		case tt.expErr != nil:
			require.ErrorIs(t, err, tt.expErr, tt.desc)
		default:
			require.NoError(t, err, tt.desc)
			require.Equal(t, int64(5), report.Lag, tt.desc)
		}
		uc.AssertExpectations(t)
	}
}
