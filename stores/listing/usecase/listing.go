package usecase

import (
	"github.com/shopspring/decimal"

	bCtx "github.com/x-xyz/asteroid-market/base/ctx"
	"github.com/x-xyz/asteroid-market/base/log"
	"github.com/x-xyz/asteroid-market/domain"
	"github.com/x-xyz/asteroid-market/domain/chain"
	"github.com/x-xyz/asteroid-market/domain/intent"
	"github.com/x-xyz/asteroid-market/domain/listing"
	"github.com/x-xyz/asteroid-market/domain/token"
	"github.com/x-xyz/asteroid-market/domain/tx"
	"github.com/x-xyz/asteroid-market/domain/wallet"
	"github.com/x-xyz/asteroid-market/service/coingecko"
)

type ListingUseCaseCfg struct {
	Repo      listing.Repo
	TokenRepo token.Repo
	Chain     chain.StatusProvider
	Wallet    wallet.Provider
	Builder   intent.Builder
	Submitter tx.Submitter
	// Prices adds usd prices to views, optional
	Prices coingecko.Client
	// CoinId is the coingecko id of the chain denom, ex: cosmos
	CoinId string
	// DenomExponent converts the chain denom base unit to display, 6 for uatom
	DenomExponent int32
}

type impl struct {
	repo          listing.Repo
	token         token.Repo
	chain         chain.StatusProvider
	wallet        wallet.Provider
	builder       intent.Builder
	submitter     tx.Submitter
	prices        coingecko.Client
	coinId        string
	denomExponent int32
}

func New(cfg *ListingUseCaseCfg) listing.UseCase {
	return &impl{
		repo:          cfg.Repo,
		token:         cfg.TokenRepo,
		chain:         cfg.Chain,
		wallet:        cfg.Wallet,
		builder:       cfg.Builder,
		submitter:     cfg.Submitter,
		prices:        cfg.Prices,
		coinId:        cfg.CoinId,
		denomExponent: cfg.DenomExponent,
	}
}

func (im *impl) GetTokenListings(c bCtx.Ctx, ticker string, viewer domain.Address, opts ...listing.FindAllOptionsFunc) (*listing.ViewResult, error) {
	t, err := im.token.FindOne(c, ticker)
	if err != nil {
		c.WithField("err", err).WithField("ticker", ticker).Error("token.FindOne failed")
		return nil, err
	}

	height, err := im.chain.CurrentHeight(c)
	if err != nil {
		c.WithField("err", err).Error("chain.CurrentHeight failed")
		return nil, err
	}

	res, err := im.repo.FindTokenListings(c, t.Id, opts...)
	if err != nil {
		c.WithField("err", err).Error("repo.FindTokenListings failed")
		return nil, err
	}

	usd := im.usdPrice(c)
	views := make([]*listing.View, len(res.Items))
	for i, l := range res.Items {
		if l.Cft20 != nil && l.Cft20.Token == nil {
			l.Cft20.Token = t
		}
		views[i] = im.view(l, viewer, height, usd)
	}

	return &listing.ViewResult{
		Items:  views,
		Count:  res.Count,
		Height: height,
	}, nil
}

func (im *impl) GetListing(c bCtx.Ctx, hash domain.TxHash, viewer domain.Address) (*listing.View, error) {
	l, err := im.repo.FindOne(c, hash)
	if err != nil {
		return nil, err
	}
	height, err := im.chain.CurrentHeight(c)
	if err != nil {
		c.WithField("err", err).Error("chain.CurrentHeight failed")
		return nil, err
	}
	return im.view(l, viewer, height, im.usdPrice(c)), nil
}

func (im *impl) FindByHashes(c bCtx.Ctx, hashes []domain.TxHash) ([]*listing.Listing, error) {
	return im.repo.FindByHashes(c, hashes)
}

func (im *impl) ListCft20(c bCtx.Ctx, req *listing.ListCft20Request) (*tx.Receipt, error) {
	seller, err := im.wallet.Address(c)
	if err != nil {
		c.WithField("err", err).Error("wallet.Address failed")
		return nil, err
	}

	t, err := im.token.FindOne(c, req.Ticker)
	if err != nil {
		c.WithField("err", err).WithField("ticker", req.Ticker).Error("token.FindOne failed")
		return nil, err
	}

	in, err := im.builder.ListCft20(seller, &intent.ListCft20{
		Token:  t,
		Amount: t.ToBase(req.Amount),
		// ppt is quoted per whole token in the base unit of the chain denom
		Ppt:           req.PricePerToken.Shift(im.denomExponent).Ceil().IntPart(),
		MinDeposit:    req.MinDeposit,
		TimeoutBlocks: req.TimeoutBlocks,
	})
	if err != nil {
		return nil, err
	}

	receipt, err := im.submitter.Submit(c, in)
	if err != nil {
		c.WithField("err", err).Error("submitter.Submit failed")
		return receipt, err
	}
	return receipt, nil
}

// Delist is only allowed to the seller while nobody holds an active deposit
func (im *impl) Delist(c bCtx.Ctx, hash domain.TxHash) (*tx.Receipt, error) {
	seller, err := im.wallet.Address(c)
	if err != nil {
		c.WithField("err", err).Error("wallet.Address failed")
		return nil, err
	}

	// the seller acts on fresh data
	if err := im.repo.Invalidate(c, hash); err != nil {
		return nil, err
	}
	l, err := im.repo.FindOne(c, hash)
	if err != nil {
		return nil, err
	}
	height, err := im.chain.CurrentHeight(c)
	if err != nil {
		return nil, err
	}

	switch listing.ResolveState(l, seller, height) {
	case listing.StateCancel:
	case listing.StateReserved:
		return nil, domain.NewValidationError("delist", domain.ErrListingReserved)
	default:
		return nil, domain.NewValidationError("delist", domain.ErrNotSeller)
	}

	in, err := im.builder.Delist(seller, l)
	if err != nil {
		return nil, err
	}

	receipt, err := im.submitter.Submit(c, in)
	if ierr := im.repo.Invalidate(c, hash); ierr != nil {
		c.WithField("err", ierr).Warn("repo.Invalidate failed")
	}
	if err != nil {
		c.WithFields(log.Fields{
			"err":  err,
			"hash": hash,
		}).Error("submitter.Submit failed")
		return receipt, err
	}
	return receipt, nil
}

func (im *impl) view(l *listing.Listing, viewer domain.Address, height int64, usd *decimal.Decimal) *listing.View {
	v := listing.NewView(l, viewer, height)
	if l.Cft20 != nil {
		ppt := decimal.New(l.Cft20.Ppt, -im.denomExponent)
		v.PricePerToken = &ppt
		if usd != nil {
			pptUsd := ppt.Mul(*usd).Round(6)
			v.PricePerTokenUsd = &pptUsd
		}
	}
	return v
}

// usdPrice is best effort, views are served without usd prices when the quote fails
func (im *impl) usdPrice(c bCtx.Ctx) *decimal.Decimal {
	if im.prices == nil || im.coinId == "" {
		return nil
	}
	p, err := im.prices.GetPrice(c, im.coinId)
	if err != nil {
		c.WithField("err", err).Warn("prices.GetPrice failed")
		return nil
	}
	return &p
}
