package intent

import (
	"github.com/shopspring/decimal"

	"github.com/x-xyz/asteroid-market/domain"
	"github.com/x-xyz/asteroid-market/domain/listing"
	"github.com/x-xyz/asteroid-market/domain/token"
	"github.com/x-xyz/asteroid-market/domain/tx"
)

// ListCft20 holds base unit amounts of a new listing
type ListCft20 struct {
	Token  *token.Token
	Amount int64
	// Ppt is the price per whole token in the chain denom base unit
	Ppt int64
	// MinDeposit is the fraction of the total a buyer deposits to reserve, (0, 1]
	MinDeposit    decimal.Decimal
	TimeoutBlocks int64
}

type Inscribe struct {
	Name        string
	Description string
	Content     []byte
}

// Builder turns marketplace operations into unsigned intents
type Builder interface {
	// Deposit reserves every listing in one tx, listings must share a kind
	Deposit(sender domain.Address, listings []*listing.Listing) (*tx.Intent, error)
	// Buy pays the remaining amount of every listing in one tx
	Buy(sender domain.Address, listings []*listing.Listing) (*tx.Intent, error)
	ListCft20(sender domain.Address, req *ListCft20) (*tx.Intent, error)
	Delist(sender domain.Address, l *listing.Listing) (*tx.Intent, error)
	Inscribe(sender domain.Address, req *Inscribe) (*tx.Intent, error)
}
