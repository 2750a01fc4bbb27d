package usecase

import (
	bCtx "github.com/x-xyz/asteroid-market/base/ctx"
	"github.com/x-xyz/asteroid-market/base/log"
	"github.com/x-xyz/asteroid-market/base/metrics"
	"github.com/x-xyz/asteroid-market/domain"
	"github.com/x-xyz/asteroid-market/domain/tx"
	"github.com/x-xyz/asteroid-market/domain/wallet"
	"github.com/x-xyz/asteroid-market/service/lcd"
)

var met = metrics.New("tx")

type SubmitterCfg struct {
	Wallet    wallet.Provider
	Estimator tx.FeeEstimator
	Waiter    tx.Waiter
	// Lcd checks the sender can pay, skipped when nil
	Lcd   lcd.Client
	Denom string
}

type submitter struct {
	wallet    wallet.Provider
	estimator tx.FeeEstimator
	waiter    tx.Waiter
	lcd       lcd.Client
	denom     string
}

func NewSubmitter(cfg *SubmitterCfg) tx.Submitter {
	return &submitter{
		wallet:    cfg.Wallet,
		estimator: cfg.Estimator,
		waiter:    cfg.Waiter,
		lcd:       cfg.Lcd,
		denom:     cfg.Denom,
	}
}

// Submit estimates, signs, broadcasts and waits for the indexer. Validation and
// estimation failures return before anything is signed.
func (s *submitter) Submit(c bCtx.Ctx, intent *tx.Intent) (*tx.Receipt, error) {
	defer met.BumpTime("submit.time").End()

	hash, err := s.Broadcast(c, intent)
	if err != nil {
		if hash.IsEmpty() {
			return nil, err
		}
		return &tx.Receipt{TxHash: hash, Status: tx.StatusFailed, Message: err.Error()}, err
	}
	return s.Wait(c, hash)
}

// Broadcast runs every step up to the broadcast. A hash may come back with an
// error when the node refused the tx after signing.
func (s *submitter) Broadcast(c bCtx.Ctx, intent *tx.Intent) (domain.TxHash, error) {
	c = bCtx.WithFields(c, log.Fields{"memo": intent.Memo})

	address, err := s.wallet.Address(c)
	if err != nil {
		c.WithField("err", err).Error("wallet.Address failed")
		return "", domain.NewTransactionError("address", err)
	}
	if !intent.Sender.Equals(address) {
		return "", domain.NewValidationError("submit", domain.ErrSignerMismatch)
	}

	if intent.Fee == nil {
		fee, err := s.estimator.Estimate(c, intent)
		if err != nil {
			c.WithField("err", err).Error("estimator.Estimate failed")
			if domain.KindOf(err) == domain.ErrorKindGeneric {
				err = domain.NewEstimationError("estimate", err)
			}
			return "", err
		}
		intent.Fee = fee
	}

	if err := s.checkBalance(c, intent); err != nil {
		met.BumpSum("submit.err", 1, "step", "balance")
		return "", err
	}

	hash, err := s.wallet.SignAndBroadcast(c, intent)
	if err != nil {
		met.BumpSum("submit.err", 1, "step", "broadcast")
		c.WithField("err", err).WithField("txHash", hash).Error("wallet.SignAndBroadcast failed")
		return hash, domain.NewTransactionError("broadcast", err)
	}
	c.WithField("txHash", hash).Info("tx broadcast")
	return hash, nil
}

// Wait never loses the hash: a wait that breaks off comes back as a pending receipt
func (s *submitter) Wait(c bCtx.Ctx, hash domain.TxHash) (*tx.Receipt, error) {
	c = bCtx.WithFields(c, log.Fields{"txHash": hash})

	receipt, err := s.waiter.Wait(c, hash)
	if err != nil {
		met.BumpSum("submit.err", 1, "step", "confirm")
		c.WithField("err", err).Error("waiter.Wait failed")
		if receipt == nil {
			receipt = &tx.Receipt{TxHash: hash, Status: tx.StatusPending, StillIndexing: true}
		}
		return receipt, err
	}
	met.BumpSum("submit.ok", 1, "status", string(receipt.Status))
	return receipt, nil
}

func (s *submitter) Poll(c bCtx.Ctx, hash domain.TxHash) (*tx.Receipt, error) {
	return s.waiter.Poll(c, hash)
}

func (s *submitter) checkBalance(c bCtx.Ctx, intent *tx.Intent) error {
	if s.lcd == nil {
		return nil
	}
	balance, err := s.lcd.Balance(c, intent.Sender, s.denom)
	if err == domain.ErrAccountNotFound {
		return domain.NewEstimationError("balance", err)
	} else if err != nil {
		c.WithField("err", err).Error("lcd.Balance failed")
		return domain.NewEstimationError("balance", err)
	}
	if spend := intent.Spend(s.denom); balance.LessThan(spend) {
		c.WithFields(log.Fields{
			"balance": balance,
			"spend":   spend,
		}).Warn("balance too low")
		return domain.NewEstimationError("balance", domain.ErrInsufficientFunds)
	}
	return nil
}
