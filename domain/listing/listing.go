package listing

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/x-xyz/asteroid-market/base/ctx"
	"github.com/x-xyz/asteroid-market/domain"
	"github.com/x-xyz/asteroid-market/domain/token"
	"github.com/x-xyz/asteroid-market/domain/tx"
)

type Kind string

const (
	KindCft20       Kind = "cft20"
	KindInscription Kind = "inscription"
)

func (k Kind) IsValid() bool {
	return k == KindCft20 || k == KindInscription
}

type Cft20Detail struct {
	Amount int64        `json:"amount"`
	Ppt    int64        `json:"ppt"`
	Token  *token.Token `json:"token,omitempty"`
}

type InscriptionDetail struct {
	InscriptionId   int64         `json:"inscriptionId"`
	InscriptionHash domain.TxHash `json:"inscriptionHash"`
	Name            string        `json:"name"`
	ContentPath     string        `json:"contentPath"`
}

// Listing is an open sell order as projected by the indexer, never mutated locally
type Listing struct {
	Id                     int64           `json:"id"`
	TransactionHash        domain.TxHash   `json:"transactionHash"`
	SellerAddress          domain.Address  `json:"sellerAddress"`
	Total                  int64           `json:"total"`
	DepositTotal           int64           `json:"depositTotal"`
	DepositTimeout         int64           `json:"depositTimeout"`
	IsDeposited            bool            `json:"isDeposited"`
	DepositorAddress       *domain.Address `json:"depositorAddress"`
	DepositorTimedoutBlock *int64          `json:"depositorTimedoutBlock"`
	IsCancelled            bool            `json:"isCancelled"`
	IsFilled               bool            `json:"isFilled"`
	CreatedAt              time.Time       `json:"createdAt"`

	Kind        Kind               `json:"kind"`
	Cft20       *Cft20Detail       `json:"cft20,omitempty"`
	Inscription *InscriptionDetail `json:"inscription,omitempty"`
}

// IsActionable reports whether the listing can still be traded
func (l *Listing) IsActionable() bool {
	return !l.IsCancelled && !l.IsFilled
}

// DepositExpired treats a missing or zero timeout block as already expired
func (l *Listing) DepositExpired(currentHeight int64) bool {
	var timeout int64
	if l.DepositorTimedoutBlock != nil {
		timeout = *l.DepositorTimedoutBlock
	}
	if timeout <= 0 {
		return true
	}
	return timeout < currentHeight
}

// DepositActive holds through the timeout block itself, a deposit is active
// while timeout >= currentHeight and expires on the block after
func (l *Listing) DepositActive(currentHeight int64) bool {
	return l.IsDeposited && !l.DepositExpired(currentHeight)
}

func (l *Listing) IsDepositor(viewer domain.Address) bool {
	return l.DepositorAddress != nil && l.DepositorAddress.Equals(viewer)
}

// Remaining is what the buyer still owes the seller, the deposit only counts
// once it is paid
func (l *Listing) Remaining() int64 {
	if !l.IsDeposited {
		return l.Total
	}
	return l.Total - l.DepositTotal
}

// View is a listing resolved for one viewer
type View struct {
	*Listing
	State      State `json:"state"`
	Actionable bool  `json:"actionable"`
	// PricePerToken in the chain denom display units, only set for cft20 listings
	PricePerToken    *decimal.Decimal `json:"pricePerToken,omitempty"`
	PricePerTokenUsd *decimal.Decimal `json:"pricePerTokenUsd,omitempty"`
}

type ViewResult struct {
	Items  []*View `json:"items"`
	Count  int     `json:"count"`
	Height int64   `json:"height"`
}

type SearchResult struct {
	Items []*Listing
	Count int
}

type OrderBy string

const (
	OrderByPptAsc   OrderBy = "ppt_asc"
	OrderByPptDesc  OrderBy = "ppt_desc"
	OrderByDateDesc OrderBy = "date_desc"
	OrderByAmtDesc  OrderBy = "amount_desc"
)

func (o OrderBy) IsValid() bool {
	switch o {
	case OrderByPptAsc, OrderByPptDesc, OrderByDateDesc, OrderByAmtDesc:
		return true
	}
	return false
}

type FindAllOptions struct {
	Offset  int
	Limit   int
	OrderBy OrderBy
	Seller  *domain.Address
}

type FindAllOptionsFunc func(*FindAllOptions) error

func GetFindAllOptions(opts ...FindAllOptionsFunc) (FindAllOptions, error) {
	res := FindAllOptions{
		Limit:   100,
		OrderBy: OrderByPptAsc,
	}

	for _, opt := range opts {
		if err := opt(&res); err != nil {
			return res, err
		}
	}

	return res, nil
}

func WithPagination(offset, limit int) FindAllOptionsFunc {
	return func(options *FindAllOptions) error {
		if offset < 0 || limit <= 0 {
			return domain.ErrBadParamInput
		}
		options.Offset = offset
		options.Limit = limit
		return nil
	}
}

func WithOrderBy(orderBy OrderBy) FindAllOptionsFunc {
	return func(options *FindAllOptions) error {
		if !orderBy.IsValid() {
			return domain.ErrBadParamInput
		}
		options.OrderBy = orderBy
		return nil
	}
}

func WithSeller(seller domain.Address) FindAllOptionsFunc {
	return func(options *FindAllOptions) error {
		options.Seller = &seller
		return nil
	}
}

// ListCft20Request opens a new cft20 listing
type ListCft20Request struct {
	Ticker string `json:"ticker" validate:"required"`

	// display amounts, converted with the token decimals and the chain denom exponent
	Amount        decimal.Decimal `json:"amount"`
	PricePerToken decimal.Decimal `json:"pricePerToken"`
	MinDeposit    decimal.Decimal `json:"minDeposit"`
	TimeoutBlocks int64           `json:"timeoutBlocks" validate:"gt=0"`
}

// Change is published when listings of a token moved between two indexer snapshots
type Change struct {
	TokenId int64           `json:"tokenId"`
	Hashes  []domain.TxHash `json:"hashes"`
}

// Diff returns hashes that appeared, disappeared or changed between prev and next
func Diff(prev, next []*Listing) []domain.TxHash {
	before := make(map[domain.TxHash]*Listing, len(prev))
	for _, l := range prev {
		before[l.TransactionHash] = l
	}
	changed := []domain.TxHash{}
	for _, l := range next {
		old, ok := before[l.TransactionHash]
		delete(before, l.TransactionHash)
		if ok && sameState(old, l) {
			continue
		}
		changed = append(changed, l.TransactionHash)
	}
	for _, l := range prev {
		if _, ok := before[l.TransactionHash]; ok {
			changed = append(changed, l.TransactionHash)
		}
	}
	return changed
}

func sameState(a, b *Listing) bool {
	if a.IsDeposited != b.IsDeposited || a.IsCancelled != b.IsCancelled || a.IsFilled != b.IsFilled {
		return false
	}
	if a.DepositTotal != b.DepositTotal || a.DepositTimeout != b.DepositTimeout {
		return false
	}
	if (a.DepositorAddress == nil) != (b.DepositorAddress == nil) {
		return false
	}
	if a.DepositorAddress != nil && !a.DepositorAddress.Equals(*b.DepositorAddress) {
		return false
	}
	if (a.DepositorTimedoutBlock == nil) != (b.DepositorTimedoutBlock == nil) {
		return false
	}
	return a.DepositorTimedoutBlock == nil || *a.DepositorTimedoutBlock == *b.DepositorTimedoutBlock
}

type Repo interface {
	FindTokenListings(c ctx.Ctx, tokenId int64, opts ...FindAllOptionsFunc) (*SearchResult, error)
	FindOne(c ctx.Ctx, hash domain.TxHash) (*Listing, error)
	// FindByHashes keeps the order of hashes and fails with domain.ErrNotFound if any is missing
	FindByHashes(c ctx.Ctx, hashes []domain.TxHash) ([]*Listing, error)
	Invalidate(c ctx.Ctx, hashes ...domain.TxHash) error
}

type UseCase interface {
	GetTokenListings(c ctx.Ctx, ticker string, viewer domain.Address, opts ...FindAllOptionsFunc) (*ViewResult, error)
	GetListing(c ctx.Ctx, hash domain.TxHash, viewer domain.Address) (*View, error)
	FindByHashes(c ctx.Ctx, hashes []domain.TxHash) ([]*Listing, error)
	ListCft20(c ctx.Ctx, req *ListCft20Request) (*tx.Receipt, error)
	Delist(c ctx.Ctx, hash domain.TxHash) (*tx.Receipt, error)
}
