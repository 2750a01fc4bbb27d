package usecase

import (
	"errors"
	"hash/fnv"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"

	bCtx "github.com/x-xyz/asteroid-market/base/ctx"
	"github.com/x-xyz/asteroid-market/base/log"
	"github.com/x-xyz/asteroid-market/base/metrics"
	"github.com/x-xyz/asteroid-market/domain"
	"github.com/x-xyz/asteroid-market/domain/chain"
	"github.com/x-xyz/asteroid-market/domain/intent"
	"github.com/x-xyz/asteroid-market/domain/listing"
	"github.com/x-xyz/asteroid-market/domain/purchase"
	"github.com/x-xyz/asteroid-market/domain/tx"
	"github.com/x-xyz/asteroid-market/domain/wallet"
)

const (
	lockStripes       = 64
	defaultStaleAfter = 10 * time.Minute
)

var (
	met     = metrics.New("purchase")
	newUUID = uuid.NewString
	timeNow = time.Now
)

type OrchestratorCfg struct {
	Repo      purchase.Repo
	Listings  listing.Repo
	Chain     chain.StatusProvider
	Wallet    wallet.Provider
	Builder   intent.Builder
	Submitter tx.Submitter
	Notifier  purchase.Notifier
	// StaleAfter is how long a reserving or purchasing flow may go without a
	// recorded tx before Refresh settles it from the listings
	StaleAfter time.Duration
}

type impl struct {
	repo      purchase.Repo
	listings  listing.Repo
	chain     chain.StatusProvider
	wallet    wallet.Provider
	builder   intent.Builder
	submitter tx.Submitter
	notifier  purchase.Notifier

	staleAfter time.Duration
	locks      [lockStripes]sync.Mutex
}

func New(cfg *OrchestratorCfg) purchase.Orchestrator {
	im := &impl{
		repo:       cfg.Repo,
		listings:   cfg.Listings,
		chain:      cfg.Chain,
		wallet:     cfg.Wallet,
		builder:    cfg.Builder,
		submitter:  cfg.Submitter,
		notifier:   cfg.Notifier,
		staleAfter: cfg.StaleAfter,
	}
	if im.staleAfter <= 0 {
		im.staleAfter = defaultStaleAfter
	}
	return im
}

// lock serializes calls on one flow in this process. Flows sharing a stripe
// wait on each other.
func (im *impl) lock(id string) func() {
	mu := &im.locks[stripeOf(id)]
	mu.Lock()
	return mu.Unlock
}

func stripeOf(id string) uint32 {
	h := fnv.New32a()
	_, _ = h.Write([]byte(id))
	return h.Sum32() % lockStripes
}

// stepCtx detaches a step from its caller, a broadcast tx must get its outcome
// recorded even when the request that sent it is gone
func stepCtx(c bCtx.Ctx, id string) bCtx.Ctx {
	return bCtx.WithFields(bCtx.WithoutCancel(c), log.Fields{"flowId": id})
}

// Start opens a flow for the wallet address. A flow whose listings are all
// deposited by the buyer already starts reserved.
func (im *impl) Start(c bCtx.Ctx, kind listing.Kind, hashes []domain.TxHash) (*purchase.Flow, error) {
	if !kind.IsValid() {
		return nil, domain.NewValidationError("start", domain.ErrBadParamInput)
	}
	hashes, err := uniqueHashes(hashes)
	if err != nil {
		return nil, err
	}

	buyer, err := im.wallet.Address(c)
	if err != nil {
		c.WithField("err", err).Error("wallet.Address failed")
		return nil, err
	}

	listings, height, err := im.freshListings(c, hashes)
	if err != nil {
		return nil, err
	}

	state, err := reservationState(buyer, kind, listings, height)
	if err != nil {
		return nil, err
	}

	flow := &purchase.Flow{
		Id:            newUUID(),
		Buyer:         buyer,
		Kind:          kind,
		ListingHashes: hashes,
		State:         purchase.StateInitial,
	}
	if state == listing.StateBuy {
		flow.State = purchase.StateReserved
		if flow.BuyIntent, err = im.builder.Buy(buyer, listings); err != nil {
			c.WithField("err", err).Error("builder.Buy failed")
			return nil, err
		}
	}

	if err := im.repo.Create(c, flow); err != nil {
		c.WithField("err", err).Error("repo.Create failed")
		return nil, err
	}
	met.BumpSum("flow.start", 1, "kind", string(kind), "state", string(flow.State))
	return flow, nil
}

func (im *impl) Get(c bCtx.Ctx, id string) (*purchase.Flow, error) {
	return im.repo.FindOne(c, id)
}

func (im *impl) FindAll(c bCtx.Ctx, opts ...purchase.FindAllOptionsFunc) ([]*purchase.Flow, error) {
	return im.repo.FindAll(c, opts...)
}

func (im *impl) Reserve(c bCtx.Ctx, id string) (*purchase.Flow, error) {
	defer im.lock(id)()
	c = stepCtx(c, id)

	flow, err := im.repo.FindOne(c, id)
	if err != nil {
		return nil, err
	}
	if flow.State != purchase.StateInitial {
		return flow, domain.NewValidationError("reserve", domain.ErrInvalidTransition)
	}
	return im.deposit(c, flow)
}

func (im *impl) Confirm(c bCtx.Ctx, id string) (*purchase.Flow, error) {
	defer im.lock(id)()
	c = stepCtx(c, id)

	flow, err := im.repo.FindOne(c, id)
	if err != nil {
		return nil, err
	}
	if flow.State != purchase.StateReserved {
		return flow, domain.NewValidationError("confirm", domain.ErrInvalidTransition)
	}
	return im.buy(c, flow)
}

// Retry runs the failed step again, never an earlier one. A tx the step
// already broadcast is checked first so it is never sent twice.
func (im *impl) Retry(c bCtx.Ctx, id string) (*purchase.Flow, error) {
	defer im.lock(id)()
	c = stepCtx(c, id)

	flow, err := im.repo.FindOne(c, id)
	if err != nil {
		return nil, err
	}
	if flow.State != purchase.StateFailed {
		return flow, domain.NewValidationError("retry", domain.ErrInvalidTransition)
	}

	step := flow.FailedStep
	if step != purchase.StepDeposit && step != purchase.StepBuy {
		return flow, domain.NewValidationError("retry", domain.ErrInvalidTransition)
	}
	met.BumpSum("flow.retry", 1, "step", string(step))

	if !flow.TxHashOf(step).IsEmpty() {
		if res, done, err := im.recheck(c, flow, step); done {
			return res, err
		}
	}
	if step == purchase.StepDeposit {
		return im.deposit(c, flow)
	}
	return im.buy(c, flow)
}

// Refresh polls the tx of an in flight step. A step that never recorded its tx
// is settled from the listings once it is stale.
func (im *impl) Refresh(c bCtx.Ctx, id string) (*purchase.Flow, error) {
	defer im.lock(id)()
	c = stepCtx(c, id)

	flow, err := im.repo.FindOne(c, id)
	if err != nil {
		return nil, err
	}
	step, hash, ok := flow.PendingStep()
	if !ok {
		if im.orphaned(flow) {
			return im.settleOrphan(c, flow)
		}
		return flow, nil
	}

	receipt, err := im.submitter.Poll(c, hash)
	if err != nil && receipt == nil {
		c.WithField("err", err).WithField("txHash", hash).Warn("submitter.Poll failed")
		return flow, err
	}
	if err == nil && receipt.Status == tx.StatusPending && flow.StillIndexing {
		return flow, nil
	}
	return im.settle(c, flow, step, receipt, err)
}

func (im *impl) Cancel(c bCtx.Ctx, id string) (*purchase.Flow, error) {
	defer im.lock(id)()
	c = stepCtx(c, id)

	flow, err := im.repo.FindOne(c, id)
	if err != nil {
		return nil, err
	}
	if flow.State == purchase.StateCancelled {
		return flow, nil
	}
	if !flow.Cancelable() {
		return flow, domain.NewValidationError("cancel", domain.ErrNotCancelable)
	}

	flow.State = purchase.StateCancelled
	flow.BuyIntent = nil
	if err := im.repo.Save(c, flow); err != nil {
		return nil, err
	}
	met.BumpSum("flow.state", 1, "state", string(flow.State))
	return flow, nil
}

func (im *impl) deposit(c bCtx.Ctx, flow *purchase.Flow) (*purchase.Flow, error) {
	listings, height, err := im.freshListings(c, flow.ListingHashes)
	if err != nil {
		return flow, err
	}

	state, err := reservationState(flow.Buyer, flow.Kind, listings, height)
	if err != nil {
		// another buyer won the deposit race
		return im.fail(c, flow, purchase.StepDeposit, err)
	}
	if state == listing.StateBuy {
		// a previous deposit landed after all
		c.Info("listings already reserved by the buyer")
		return im.reserved(c, flow, listings)
	}

	in, err := im.builder.Deposit(flow.Buyer, listings)
	if err != nil {
		return im.fail(c, flow, purchase.StepDeposit, err)
	}

	im.transit(flow, purchase.StateReserving)
	flow.DepositTxHash = ""
	// a stale copy stops here, before anything is signed
	if err := im.repo.Save(c, flow); err != nil {
		return nil, err
	}

	hash, err := im.submitter.Broadcast(c, in)
	return im.broadcasted(c, flow, purchase.StepDeposit, hash, err)
}

func (im *impl) buy(c bCtx.Ctx, flow *purchase.Flow) (*purchase.Flow, error) {
	listings, height, err := im.freshListings(c, flow.ListingHashes)
	if err != nil {
		return flow, err
	}
	for _, l := range listings {
		if !l.IsActionable() {
			return im.fail(c, flow, purchase.StepBuy, domain.NewValidationError("buy", domain.ErrListingNotActionable))
		}
		if listing.ResolveState(l, flow.Buyer, height) != listing.StateBuy {
			return im.fail(c, flow, purchase.StepBuy, domain.NewValidationError("buy", domain.ErrDepositExpired))
		}
	}

	if flow.BuyIntent == nil {
		if flow.BuyIntent, err = im.builder.Buy(flow.Buyer, listings); err != nil {
			return im.fail(c, flow, purchase.StepBuy, err)
		}
	}

	im.transit(flow, purchase.StatePurchasing)
	flow.BuyTxHash = ""
	if err := im.repo.Save(c, flow); err != nil {
		return nil, err
	}

	hash, err := im.submitter.Broadcast(c, flow.BuyIntent)
	return im.broadcasted(c, flow, purchase.StepBuy, hash, err)
}

// broadcasted records the tx hash before waiting on it, Refresh carries on
// from there when the wait never completes
func (im *impl) broadcasted(c bCtx.Ctx, flow *purchase.Flow, step purchase.Step, hash domain.TxHash, err error) (*purchase.Flow, error) {
	if !hash.IsEmpty() {
		setTxHash(flow, step, hash)
	}
	if err != nil {
		return im.fail(c, flow, step, err)
	}

	c = bCtx.WithFields(c, log.Fields{"txHash": hash})
	flow.StillIndexing = true
	if err := im.repo.Save(c, flow); errors.Is(err, domain.ErrConflict) {
		return im.reload(c, flow)
	} else if err != nil {
		c.WithField("err", err).Error("repo.Save failed, waiting for the tx anyway")
	}

	receipt, err := im.submitter.Wait(c, hash)
	return im.settle(c, flow, step, receipt, err)
}

// recheck polls the tx a failed step left behind. done is false only when that
// tx failed and the step may be sent again.
func (im *impl) recheck(c bCtx.Ctx, flow *purchase.Flow, step purchase.Step) (res *purchase.Flow, done bool, err error) {
	hash := flow.TxHashOf(step)
	receipt, err := im.submitter.Poll(c, hash)
	if err != nil && receipt == nil {
		c.WithField("err", err).WithField("txHash", hash).Warn("submitter.Poll failed")
		return flow, true, err
	}
	if receipt.Status == tx.StatusFailed {
		return flow, false, nil
	}

	c.WithFields(log.Fields{
		"txHash": hash,
		"status": receipt.Status,
	}).Info("tx of the failed step is alive, not sending it again")
	im.transit(flow, inFlightState(step))
	res, err = im.settle(c, flow, step, receipt, nil)
	return res, true, err
}

// settle applies the outcome of a submitted or polled tx
func (im *impl) settle(c bCtx.Ctx, flow *purchase.Flow, step purchase.Step, receipt *tx.Receipt, err error) (*purchase.Flow, error) {
	if receipt != nil && !receipt.TxHash.IsEmpty() {
		setTxHash(flow, step, receipt.TxHash)
	}

	switch {
	case err != nil && receipt != nil && receipt.Status == tx.StatusPending:
		// broadcast went through, the wait was interrupted
		c.WithField("err", err).Warn("confirmation interrupted")
		return im.pending(c, flow)
	case err != nil:
		return im.fail(c, flow, step, err)
	case receipt.Status == tx.StatusPending:
		return im.pending(c, flow)
	case receipt.Status == tx.StatusFailed:
		return im.fail(c, flow, step, domain.NewTransactionError("confirm", errors.New(receipt.Message)))
	}

	if err := im.listings.Invalidate(c, flow.ListingHashes...); err != nil {
		c.WithField("err", err).Warn("listings.Invalidate failed")
	}
	if step == purchase.StepDeposit {
		listings, err := im.listings.FindByHashes(c, flow.ListingHashes)
		if err != nil {
			c.WithField("err", err).Warn("listings.FindByHashes failed, buy intent built on confirm")
			listings = nil
		}
		return im.reserved(c, flow, listings)
	}
	return im.purchased(c, flow)
}

// orphaned flows are mid step without a recorded tx for longer than a
// broadcast and its wait can take
func (im *impl) orphaned(flow *purchase.Flow) bool {
	step, ok := flow.InFlightStep()
	return ok && flow.TxHashOf(step).IsEmpty() && timeNow().Sub(flow.UpdatedAt) > im.staleAfter
}

// settleOrphan reads the outcome of an unrecorded step off the listings. A step
// that left no trace fails and can be retried.
func (im *impl) settleOrphan(c bCtx.Ctx, flow *purchase.Flow) (*purchase.Flow, error) {
	step, _ := flow.InFlightStep()
	c.WithField("step", step).Warn("flow step has no recorded tx")

	listings, height, err := im.freshListings(c, flow.ListingHashes)
	if err != nil {
		return flow, err
	}
	switch {
	case step == purchase.StepDeposit && allReservedBy(listings, flow.Buyer, height):
		return im.reserved(c, flow, listings)
	case step == purchase.StepBuy && allFilled(listings):
		return im.purchased(c, flow)
	}

	res, err := im.fail(c, flow, step, domain.NewTransactionError("refresh", domain.ErrTxOutcomeUnknown))
	if res == nil {
		return nil, err
	}
	return res, nil
}

// reserved stores the buy intent with the flow, a nil listings leaves it to Confirm
func (im *impl) reserved(c bCtx.Ctx, flow *purchase.Flow, listings []*listing.Listing) (*purchase.Flow, error) {
	im.transit(flow, purchase.StateReserved)
	flow.BuyIntent = nil
	if listings != nil {
		in, err := im.builder.Buy(flow.Buyer, listings)
		if err != nil {
			c.WithField("err", err).Warn("builder.Buy failed")
		} else {
			flow.BuyIntent = in
		}
	}
	return im.persist(c, flow)
}

func (im *impl) purchased(c bCtx.Ctx, flow *purchase.Flow) (*purchase.Flow, error) {
	im.transit(flow, purchase.StatePurchased)
	res, err := im.persist(c, flow)
	if err == nil && res == flow {
		im.notify(c, flow)
	}
	return res, err
}

func (im *impl) pending(c bCtx.Ctx, flow *purchase.Flow) (*purchase.Flow, error) {
	flow.StillIndexing = true
	c.Info("tx still indexing")
	return im.persist(c, flow)
}

// fail records err on the flow and returns it to the caller
func (im *impl) fail(c bCtx.Ctx, flow *purchase.Flow, step purchase.Step, cause error) (*purchase.Flow, error) {
	im.transit(flow, purchase.StateFailed)
	flow.FailedStep = step
	flow.LastError = domain.FriendlyMessage(cause)
	flow.ErrorKind = domain.KindOf(cause)
	flow.ErrorHint = domain.HintOf(cause)

	c.WithFields(log.Fields{
		"err":  cause,
		"step": step,
	}).Error("flow step failed")
	met.BumpSum("flow.err", 1, "step", string(step), "kind", string(flow.ErrorKind))

	res, err := im.persist(c, flow)
	if err != nil {
		return nil, err
	}
	if res != flow {
		return res, nil
	}
	im.notify(c, flow)
	return flow, cause
}

// persist saves flow. When another instance saved the flow first its copy wins
// and is returned in place of flow.
func (im *impl) persist(c bCtx.Ctx, flow *purchase.Flow) (*purchase.Flow, error) {
	err := im.repo.Save(c, flow)
	if errors.Is(err, domain.ErrConflict) {
		return im.reload(c, flow)
	}
	if err != nil {
		return nil, err
	}
	return flow, nil
}

func (im *impl) reload(c bCtx.Ctx, flow *purchase.Flow) (*purchase.Flow, error) {
	c.WithField("state", flow.State).Warn("flow changed concurrently, keeping the stored copy")
	met.BumpSum("flow.conflict", 1)
	return im.repo.FindOne(c, flow.Id)
}

func (im *impl) transit(flow *purchase.Flow, to purchase.State) {
	flow.State = to
	flow.StillIndexing = false
	if to != purchase.StateFailed {
		flow.FailedStep = ""
		flow.LastError = ""
		flow.ErrorKind = ""
		flow.ErrorHint = ""
	}
	met.BumpSum("flow.state", 1, "state", string(to))
}

func (im *impl) notify(c bCtx.Ctx, flow *purchase.Flow) {
	if im.notifier == nil {
		return
	}
	if err := im.notifier.Notify(c, flow); err != nil {
		c.WithField("err", err).Warn("notifier.Notify failed")
	}
}

func setTxHash(flow *purchase.Flow, step purchase.Step, hash domain.TxHash) {
	if step == purchase.StepBuy {
		flow.BuyTxHash = hash
		return
	}
	flow.DepositTxHash = hash
}

func inFlightState(step purchase.Step) purchase.State {
	if step == purchase.StepBuy {
		return purchase.StatePurchasing
	}
	return purchase.StateReserving
}

func allReservedBy(listings []*listing.Listing, buyer domain.Address, height int64) bool {
	for _, l := range listings {
		if listing.ResolveState(l, buyer, height) != listing.StateBuy {
			return false
		}
	}
	return len(listings) > 0
}

func allFilled(listings []*listing.Listing) bool {
	for _, l := range listings {
		if !l.IsFilled {
			return false
		}
	}
	return len(listings) > 0
}

// freshListings drops cached copies so states are resolved on indexed data
func (im *impl) freshListings(c bCtx.Ctx, hashes []domain.TxHash) ([]*listing.Listing, int64, error) {
	if err := im.listings.Invalidate(c, hashes...); err != nil {
		c.WithField("err", err).Warn("listings.Invalidate failed")
	}
	listings, err := im.listings.FindByHashes(c, hashes)
	if err != nil {
		c.WithField("err", err).Error("listings.FindByHashes failed")
		return nil, 0, err
	}
	height, err := im.chain.CurrentHeight(c)
	if err != nil {
		c.WithField("err", err).Error("chain.CurrentHeight failed")
		return nil, 0, err
	}
	return listings, height, nil
}

// reservationState is the common state of every listing for buyer, reserve or buy
func reservationState(buyer domain.Address, kind listing.Kind, listings []*listing.Listing, height int64) (listing.State, error) {
	var res listing.State
	for i, l := range listings {
		if l.Kind != kind {
			return "", domain.NewValidationError("start", domain.ErrBadParamInput)
		}
		if !l.IsActionable() {
			return "", domain.NewValidationError("start", domain.ErrListingNotActionable)
		}
		if l.SellerAddress.Equals(buyer) {
			return "", domain.NewValidationError("start", domain.ErrOwnListing)
		}

		state := listing.ResolveState(l, buyer, height)
		if state == listing.StateReserved {
			return "", domain.NewValidationError("start", domain.ErrListingReserved)
		}
		if i > 0 && state != res {
			return "", domain.NewValidationError("start", domain.ErrMixedReservation)
		}
		res = state
	}
	return res, nil
}

func uniqueHashes(hashes []domain.TxHash) ([]domain.TxHash, error) {
	if len(hashes) == 0 {
		return nil, domain.NewValidationError("start", domain.ErrEmptyListings)
	}
	seen := map[domain.TxHash]bool{}
	res := make([]domain.TxHash, 0, len(hashes))
	for _, h := range hashes {
		h = domain.TxHash(strings.TrimSpace(h.String())).ToUpper()
		if h.IsEmpty() {
			return nil, domain.NewValidationError("start", domain.ErrInvalidTxHash)
		}
		if seen[h] {
			return nil, domain.NewValidationError("start", domain.ErrDuplicateListed)
		}
		seen[h] = true
		res = append(res, h)
	}
	return res, nil
}
