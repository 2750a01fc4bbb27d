package tracker

import (
	"time"

	"github.com/viney-shih/goroutines"

	bCtx "github.com/x-xyz/asteroid-market/base/ctx"
	"github.com/x-xyz/asteroid-market/base/log"
	"github.com/x-xyz/asteroid-market/domain/purchase"
)

const (
	defaultRefreshWorkers = 8
	defaultRefreshBatch   = 200
)

type FlowRefresherCfg struct {
	Purchases purchase.Orchestrator
	Interval  time.Duration
	// Workers bounds the flows refreshed at the same time
	Workers int
	// BatchSize caps the flows picked up per tick
	BatchSize int
}

// FlowRefresher periodically refreshes flows left mid step, polling their
// pending tx or settling the ones that never recorded one
type FlowRefresher struct {
	purchases purchase.Orchestrator
	interval  time.Duration
	workers   int
	batchSize int
	stoppedCh chan interface{}
}

func NewFlowRefresher(cfg *FlowRefresherCfg) *FlowRefresher {
	initMetrics()
	r := &FlowRefresher{
		purchases: cfg.Purchases,
		interval:  cfg.Interval,
		workers:   cfg.Workers,
		batchSize: cfg.BatchSize,
		stoppedCh: make(chan interface{}),
	}
	if r.workers <= 0 {
		r.workers = defaultRefreshWorkers
	}
	if r.batchSize <= 0 {
		r.batchSize = defaultRefreshBatch
	}
	return r
}

func (r *FlowRefresher) Start(ctx bCtx.Ctx) {
	go r.loop(ctx)
}

func (r *FlowRefresher) Wait() {
	<-r.stoppedCh
}

func (r *FlowRefresher) loop(ctx bCtx.Ctx) {
	defer close(r.stoppedCh)

	nextTick := time.Second * 0
	for {
		select {
		case <-ctx.Done():
			return
		case <-time.After(nextTick):
			nextTick = r.interval
			if _, err := r.RefreshPending(ctx); err != nil {
				ctx.WithField("err", err).Error("RefreshPending failed")
			}
		}
	}
}

// RefreshPending refreshes one batch of reserving or purchasing flows and returns how many settled
func (r *FlowRefresher) RefreshPending(ctx bCtx.Ctx) (int, error) {
	flows, err := r.purchases.FindAll(ctx,
		purchase.WithStates(purchase.StateReserving, purchase.StatePurchasing),
		purchase.WithLimit(r.batchSize),
	)
	if err != nil {
		ctx.WithField("err", err).Error("purchases.FindAll failed")
		return 0, err
	}
	if len(flows) == 0 {
		return 0, nil
	}

	b := goroutines.NewBatch(r.workers, goroutines.WithBatchSize(len(flows)))
	defer b.Close()
	for i := 0; i < len(flows); i++ {
		id := flows[i].Id
		b.Queue(func() (interface{}, error) {
			return r.purchases.Refresh(ctx, id)
		})
	}
	b.QueueComplete()

	settled := 0
	for ret := range b.Results() {
		if ret.Error() != nil {
			ctx.WithField("err", ret.Error()).Warn("purchases.Refresh failed")
			met.BumpSum("flows.refresh.err", 1)
			continue
		}
		if flow, ok := ret.Value().(*purchase.Flow); ok && flow != nil && !inFlight(flow) {
			settled++
		}
	}
	ctx.WithFields(log.Fields{
		"pending": len(flows),
		"settled": settled,
	}).Info("refreshed pending flows")
	met.BumpSum("flows.settled", float64(settled))
	return settled, nil
}

func inFlight(flow *purchase.Flow) bool {
	_, ok := flow.InFlightStep()
	return ok
}
