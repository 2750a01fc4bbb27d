package usecase

import (
	"errors"
	"time"

	"github.com/x-xyz/asteroid-market/base/backoff"
	bCtx "github.com/x-xyz/asteroid-market/base/ctx"
	"github.com/x-xyz/asteroid-market/base/log"
	"github.com/x-xyz/asteroid-market/domain"
	"github.com/x-xyz/asteroid-market/domain/chain"
	"github.com/x-xyz/asteroid-market/domain/tx"
	"github.com/x-xyz/asteroid-market/service/indexer"
)

// indexer status message of a tx that executed
const statusSuccess = "success"

type WaiterCfg struct {
	Indexer indexer.Client
	// Node reports execution failures before the indexer catches up, optional
	Node           chain.TxLookup
	ConfirmTimeout time.Duration
	PollInterval   time.Duration
	MaxInterval    time.Duration
}

type waiter struct {
	indexer        indexer.Client
	node           chain.TxLookup
	confirmTimeout time.Duration
	pollInterval   time.Duration
	maxInterval    time.Duration
}

func NewWaiter(cfg *WaiterCfg) tx.Waiter {
	w := &waiter{
		indexer:        cfg.Indexer,
		node:           cfg.Node,
		confirmTimeout: cfg.ConfirmTimeout,
		pollInterval:   cfg.PollInterval,
		maxInterval:    cfg.MaxInterval,
	}
	if w.confirmTimeout <= 0 {
		w.confirmTimeout = time.Minute
	}
	if w.pollInterval <= 0 {
		w.pollInterval = time.Second
	}
	if w.maxInterval < w.pollInterval {
		w.maxInterval = 8 * w.pollInterval
	}
	return w
}

// Wait never reports a timeout as an error, the receipt comes back pending and still indexing
func (w *waiter) Wait(c bCtx.Ctx, hash domain.TxHash) (*tx.Receipt, error) {
	c = bCtx.WithFields(c, log.Fields{"txHash": hash})
	tctx, cancel := bCtx.WithTimeout(c, w.confirmTimeout)
	defer cancel()

	var receipt *tx.Receipt
	b := backoff.NewExponential(w.pollInterval, w.maxInterval)
	err := b.Poll(tctx, func() (bool, error) {
		r, err := w.Poll(tctx, hash)
		if err != nil {
			// transient lookup errors are retried until the window closes
			if domain.KindOf(err) == domain.ErrorKindTransaction {
				receipt = r
				return false, err
			}
			c.WithField("err", err).Warn("poll failed, retrying")
			return false, nil
		}
		receipt = r
		return r.Status != tx.StatusPending, nil
	})

	switch {
	case err == nil:
		return receipt, nil
	case c.Err() != nil:
		return nil, c.Err()
	case tctx.Err() != nil:
		c.WithField("attempts", b.Attempts()).Info("tx not indexed within the confirmation window")
		return &tx.Receipt{TxHash: hash, Status: tx.StatusPending, StillIndexing: true}, nil
	}
	return receipt, err
}

func (w *waiter) Poll(c bCtx.Ctx, hash domain.TxHash) (*tx.Receipt, error) {
	hash = hash.ToUpper()

	status, err := w.indexer.GetTransaction(c, hash)
	if err != nil {
		c.WithField("err", err).WithField("txHash", hash).Error("indexer.GetTransaction failed")
		return nil, err
	}
	if status.Found {
		if status.StatusMessage == statusSuccess {
			return &tx.Receipt{TxHash: hash, Status: tx.StatusConfirmed}, nil
		}
		return failed(hash, status.StatusMessage)
	}

	if w.node != nil {
		res, err := w.node.GetTx(c, hash)
		switch {
		case err == nil && !res.Succeeded():
			return failed(hash, res.Log)
		case err != nil && err != domain.ErrNotFound:
			c.WithField("err", err).WithField("txHash", hash).Warn("node.GetTx failed")
		}
	}

	return &tx.Receipt{TxHash: hash, Status: tx.StatusPending, StillIndexing: true}, nil
}

func failed(hash domain.TxHash, message string) (*tx.Receipt, error) {
	r := &tx.Receipt{TxHash: hash, Status: tx.StatusFailed, Message: message}
	return r, domain.NewTransactionError("confirm", errors.New(message))
}
