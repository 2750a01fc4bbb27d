package chain

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/suite"
	abci "github.com/tendermint/tendermint/abci/types"
	ctypes "github.com/tendermint/tendermint/rpc/core/types"

	bCtx "github.com/x-xyz/asteroid-market/base/ctx"
	"github.com/x-xyz/asteroid-market/domain"
)

var mockCtx = bCtx.Background()

type fakeRpc struct {
	status *ctypes.ResultStatus
	tx     *ctypes.ResultTx
	err    error
	hashes [][]byte
}

func (f *fakeRpc) Status(ctx context.Context) (*ctypes.ResultStatus, error) {
	return f.status, f.err
}

func (f *fakeRpc) Tx(ctx context.Context, hash []byte, prove bool) (*ctypes.ResultTx, error) {
	f.hashes = append(f.hashes, hash)
	return f.tx, f.err
}

type clientTestSuite struct {
	suite.Suite
	rpc *fakeRpc
	im  *clientImpl
}

func (s *clientTestSuite) SetupTest() {
	s.rpc = &fakeRpc{}
	s.im = newClient(s.rpc, 0)
}

func TestClientTestSuite(t *testing.T) {
	suite.Run(t, new(clientTestSuite))
}

func (s *clientTestSuite) TestCurrentHeight() {
	s.rpc.status = &ctypes.ResultStatus{SyncInfo: ctypes.SyncInfo{LatestBlockHeight: 18200000}}
	h, err := s.im.CurrentHeight(mockCtx)
	s.NoError(err)
	s.Equal(int64(18200000), h)

	s.rpc.err = errors.New("connection refused")
	_, err = s.im.CurrentHeight(mockCtx)
	s.ErrorIs(err, s.rpc.err)
}

func (s *clientTestSuite) TestGetTx() {
	hash := domain.TxHash(strings.Repeat("ab", 32))
	s.rpc.tx = &ctypes.ResultTx{
		Height:   42,
		TxResult: abci.ResponseDeliverTx{Code: 5, Log: "insufficient funds"},
	}

	res, err := s.im.GetTx(mockCtx, hash)
	s.NoError(err)
	s.Equal(domain.TxHash(strings.Repeat("AB", 32)), res.Hash)
	s.Equal(int64(42), res.Height)
	s.False(res.Succeeded())
	s.Equal("insufficient funds", res.Log)
	s.Len(s.rpc.hashes[0], 32)
}

func (s *clientTestSuite) TestGetTxNotFound() {
	hash := domain.TxHash(strings.Repeat("AB", 32))
	s.rpc.err = errors.New(`RPC error -32603 - Internal error: tx (` + hash.String() + `) not found`)

	_, err := s.im.GetTx(mockCtx, hash)
	s.Equal(domain.ErrNotFound, err)
}

func (s *clientTestSuite) TestGetTxBadHash() {
	_, err := s.im.GetTx(mockCtx, "zz")
	s.Equal(domain.ErrorKindValidation, domain.KindOf(err))
	s.Empty(s.rpc.hashes)
}
