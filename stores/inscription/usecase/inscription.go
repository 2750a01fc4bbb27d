package usecase

import (
	"fmt"

	bCtx "github.com/x-xyz/asteroid-market/base/ctx"
	"github.com/x-xyz/asteroid-market/base/log"
	"github.com/x-xyz/asteroid-market/domain"
	"github.com/x-xyz/asteroid-market/domain/inscription"
	"github.com/x-xyz/asteroid-market/domain/intent"
	"github.com/x-xyz/asteroid-market/domain/tx"
	"github.com/x-xyz/asteroid-market/domain/wallet"
)

const defaultMaxContentBytes = 550 * 1024

type InscriptionUseCaseCfg struct {
	Wallet    wallet.Provider
	Builder   intent.Builder
	Submitter tx.Submitter
	// MaxContentBytes bounds the content size, 550KiB when zero
	MaxContentBytes int
}

type impl struct {
	wallet          wallet.Provider
	builder         intent.Builder
	submitter       tx.Submitter
	maxContentBytes int
}

func New(cfg *InscriptionUseCaseCfg) inscription.UseCase {
	im := &impl{
		wallet:          cfg.Wallet,
		builder:         cfg.Builder,
		submitter:       cfg.Submitter,
		maxContentBytes: cfg.MaxContentBytes,
	}
	if im.maxContentBytes <= 0 {
		im.maxContentBytes = defaultMaxContentBytes
	}
	return im
}

func (im *impl) Inscribe(c bCtx.Ctx, req *inscription.InscribeRequest) (*tx.Receipt, error) {
	if len(req.Content) == 0 {
		return nil, domain.NewValidationError("inscribe", domain.ErrBadParamInput)
	}
	if len(req.Content) > im.maxContentBytes {
		return nil, domain.NewValidationError("inscribe", fmt.Errorf("content is %d bytes, at most %d allowed", len(req.Content), im.maxContentBytes))
	}

	sender, err := im.wallet.Address(c)
	if err != nil {
		c.WithField("err", err).Error("wallet.Address failed")
		return nil, err
	}

	in, err := im.builder.Inscribe(sender, &intent.Inscribe{
		Name:        req.Name,
		Description: req.Description,
		Content:     req.Content,
	})
	if err != nil {
		return nil, err
	}

	receipt, err := im.submitter.Submit(c, in)
	if err != nil {
		c.WithFields(log.Fields{
			"err":  err,
			"name": req.Name,
		}).Error("submitter.Submit failed")
		return receipt, err
	}
	return receipt, nil
}
