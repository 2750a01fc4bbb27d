package purchase

import (
	"time"

	"github.com/x-xyz/asteroid-market/base/ctx"
	"github.com/x-xyz/asteroid-market/domain"
	"github.com/x-xyz/asteroid-market/domain/listing"
	"github.com/x-xyz/asteroid-market/domain/tx"
)

type State string

const (
	StateInitial    State = "initial"
	StateReserving  State = "reserving"
	StateReserved   State = "reserved"
	StatePurchasing State = "purchasing"
	StatePurchased  State = "purchased"
	StateFailed     State = "failed"
	StateCancelled  State = "cancelled"
)

func (s State) IsTerminal() bool {
	return s == StatePurchased || s == StateCancelled
}

type Step string

const (
	StepDeposit Step = "deposit"
	StepBuy     Step = "buy"
)

// Flow is one reserve then buy workflow over one or more listings of the same kind.
// Deposit and buy are each a single tx covering every listing.
type Flow struct {
	Id            string           `json:"id" bson:"id"`
	Buyer         domain.Address   `json:"buyer" bson:"buyer"`
	Kind          listing.Kind     `json:"kind" bson:"kind"`
	ListingHashes []domain.TxHash  `json:"listingHashes" bson:"listingHashes"`
	State         State            `json:"state" bson:"state"`
	FailedStep    Step             `json:"failedStep,omitempty" bson:"failedStep,omitempty"`
	LastError     string           `json:"lastError,omitempty" bson:"lastError,omitempty"`
	ErrorKind     domain.ErrorKind `json:"errorKind,omitempty" bson:"errorKind,omitempty"`
	ErrorHint     string           `json:"errorHint,omitempty" bson:"errorHint,omitempty"`
	StillIndexing bool             `json:"stillIndexing" bson:"stillIndexing"`
	DepositTxHash domain.TxHash    `json:"depositTxHash,omitempty" bson:"depositTxHash,omitempty"`
	BuyTxHash     domain.TxHash    `json:"buyTxHash,omitempty" bson:"buyTxHash,omitempty"`
	BuyIntent     *tx.Intent       `json:"buyIntent,omitempty" bson:"buyIntent,omitempty"`
	CreatedAt     time.Time        `json:"createdAt" bson:"createdAt"`
	UpdatedAt     time.Time        `json:"updatedAt" bson:"updatedAt"`
	// Version is bumped by every save, saving a stale copy fails with domain.ErrConflict
	Version int64 `json:"version" bson:"version"`
}

// InFlightStep is the step a reserving or purchasing flow is running
func (f *Flow) InFlightStep() (Step, bool) {
	switch f.State {
	case StateReserving:
		return StepDeposit, true
	case StatePurchasing:
		return StepBuy, true
	}
	return "", false
}

func (f *Flow) TxHashOf(step Step) domain.TxHash {
	if step == StepBuy {
		return f.BuyTxHash
	}
	return f.DepositTxHash
}

// PendingStep is the in flight step whose tx is broadcast but not yet settled
func (f *Flow) PendingStep() (Step, domain.TxHash, bool) {
	step, ok := f.InFlightStep()
	if !ok || f.TxHashOf(step).IsEmpty() {
		return "", "", false
	}
	return step, f.TxHashOf(step), true
}

// Cancelable is true only while no deposit has been broadcast successfully
func (f *Flow) Cancelable() bool {
	switch f.State {
	case StateInitial:
		return true
	case StateFailed:
		return f.FailedStep == StepDeposit
	}
	return false
}

type FindAllOptions struct {
	Buyer         *domain.Address `bson:"buyer,omitempty"`
	States        []State         `bson:"-"`
	StillIndexing *bool           `bson:"stillIndexing,omitempty"`
	Limit         int             `bson:"-"`
}

type FindAllOptionsFunc func(*FindAllOptions) error

func GetFindAllOptions(opts ...FindAllOptionsFunc) (FindAllOptions, error) {
	res := FindAllOptions{Limit: 100}

	for _, opt := range opts {
		if err := opt(&res); err != nil {
			return res, err
		}
	}

	return res, nil
}

func WithBuyer(buyer domain.Address) FindAllOptionsFunc {
	return func(options *FindAllOptions) error {
		options.Buyer = &buyer
		return nil
	}
}

func WithStates(states ...State) FindAllOptionsFunc {
	return func(options *FindAllOptions) error {
		options.States = states
		return nil
	}
}

func WithStillIndexing(stillIndexing bool) FindAllOptionsFunc {
	return func(options *FindAllOptions) error {
		options.StillIndexing = &stillIndexing
		return nil
	}
}

func WithLimit(limit int) FindAllOptionsFunc {
	return func(options *FindAllOptions) error {
		options.Limit = limit
		return nil
	}
}

type Repo interface {
	Create(c ctx.Ctx, flow *Flow) error
	FindOne(c ctx.Ctx, id string) (*Flow, error)
	FindAll(c ctx.Ctx, opts ...FindAllOptionsFunc) ([]*Flow, error)
	// Save stores flow if nobody saved it since it was loaded, else returns domain.ErrConflict
	Save(c ctx.Ctx, flow *Flow) error
}

// Orchestrator drives purchase flows. Calls on one flow are serialized within a
// process, concurrent instances are kept apart by the flow version.
type Orchestrator interface {
	Start(c ctx.Ctx, kind listing.Kind, hashes []domain.TxHash) (*Flow, error)
	Get(c ctx.Ctx, id string) (*Flow, error)
	FindAll(c ctx.Ctx, opts ...FindAllOptionsFunc) ([]*Flow, error)
	Reserve(c ctx.Ctx, id string) (*Flow, error)
	Confirm(c ctx.Ctx, id string) (*Flow, error)
	Retry(c ctx.Ctx, id string) (*Flow, error)
	Refresh(c ctx.Ctx, id string) (*Flow, error)
	Cancel(c ctx.Ctx, id string) (*Flow, error)
}

// Notifier is told about flows that reached purchased or failed
type Notifier interface {
	Notify(c ctx.Ctx, flow *Flow) error
}
