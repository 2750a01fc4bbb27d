package chain

import (
	"context"
	"encoding/hex"
	"strings"
	"time"

	rpchttp "github.com/tendermint/tendermint/rpc/client/http"
	ctypes "github.com/tendermint/tendermint/rpc/core/types"
	"golang.org/x/xerrors"

	bCtx "github.com/x-xyz/asteroid-market/base/ctx"
	"github.com/x-xyz/asteroid-market/base/log"
	"github.com/x-xyz/asteroid-market/base/metrics"
	"github.com/x-xyz/asteroid-market/domain"
	"github.com/x-xyz/asteroid-market/domain/chain"
)

var met = metrics.New("chain")

type ClientCfg struct {
	RpcUrl  string
	Timeout time.Duration
}

// Client reads a tendermint node directly, bypassing the indexer
type Client interface {
	chain.StatusProvider
	chain.TxLookup
}

// rpc is the part of the tendermint rpc client in use
type rpc interface {
	Status(ctx context.Context) (*ctypes.ResultStatus, error)
	Tx(ctx context.Context, hash []byte, prove bool) (*ctypes.ResultTx, error)
}

type clientImpl struct {
	rpc     rpc
	timeout time.Duration
}

func NewClient(ctx bCtx.Ctx, cfg *ClientCfg) (Client, error) {
	client, err := rpchttp.New(cfg.RpcUrl, "/websocket")
	if err != nil {
		ctx.WithFields(log.Fields{
			"err": err,
			"url": cfg.RpcUrl,
		}).Error("rpchttp.New failed")
		return nil, err
	}
	return newClient(client, cfg.Timeout), nil
}

func newClient(r rpc, timeout time.Duration) *clientImpl {
	if timeout <= 0 {
		timeout = 10 * time.Second
	}
	return &clientImpl{rpc: r, timeout: timeout}
}

func (c *clientImpl) CurrentHeight(ctx bCtx.Ctx) (int64, error) {
	defer met.BumpTime("status.latency").End()

	tctx, cancel := bCtx.WithTimeout(ctx, c.timeout)
	defer cancel()

	status, err := c.rpc.Status(tctx)
	if err != nil {
		met.BumpSum("status.err", 1)
		ctx.WithField("err", err).Error("rpc.Status failed")
		return 0, xerrors.Errorf("status: %w", err)
	}
	return status.SyncInfo.LatestBlockHeight, nil
}

func (c *clientImpl) GetTx(ctx bCtx.Ctx, hash domain.TxHash) (*chain.TxResult, error) {
	defer met.BumpTime("tx.latency").End()

	raw, err := hex.DecodeString(hash.String())
	if err != nil {
		return nil, domain.NewValidationError("getTx", domain.ErrInvalidTxHash)
	}

	tctx, cancel := bCtx.WithTimeout(ctx, c.timeout)
	defer cancel()

	res, err := c.rpc.Tx(tctx, raw, false)
	if err != nil {
		// the node answers an rpc error until the tx is committed
		if strings.Contains(err.Error(), "not found") {
			return nil, domain.ErrNotFound
		}
		met.BumpSum("tx.err", 1)
		ctx.WithFields(log.Fields{
			"err":    err,
			"txHash": hash,
		}).Error("rpc.Tx failed")
		return nil, xerrors.Errorf("tx %s: %w", hash, err)
	}

	return &chain.TxResult{
		Hash:   hash.ToUpper(),
		Height: res.Height,
		Code:   res.TxResult.Code,
		Log:    res.TxResult.Log,
	}, nil
}
