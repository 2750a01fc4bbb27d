package tx

import (
	"github.com/shopspring/decimal"

	"github.com/x-xyz/asteroid-market/base/ctx"
	"github.com/x-xyz/asteroid-market/domain"
)

type Coin struct {
	Denom  string `json:"denom" bson:"denom"`
	Amount int64  `json:"amount,string" bson:"amount"`
}

// MsgSend is a bank send message, the only message kind the marketplace needs
type MsgSend struct {
	FromAddress domain.Address `json:"fromAddress" bson:"fromAddress"`
	ToAddress   domain.Address `json:"toAddress" bson:"toAddress"`
	Amount      []Coin         `json:"amount" bson:"amount"`
}

type Fee struct {
	Gas    uint64 `json:"gas,string" bson:"gas"`
	Amount []Coin `json:"amount" bson:"amount"`
}

// MetaprotocolFee is paid to the protocol on top of the messages
type MetaprotocolFee struct {
	Receiver domain.Address `json:"receiver" bson:"receiver"`
	Amount   Coin           `json:"amount" bson:"amount"`
}

// ExtensionData carries inscription content in the tx body extension options
type ExtensionData struct {
	ProtocolId      string `json:"protocolId" bson:"protocolId"`
	ProtocolVersion string `json:"protocolVersion" bson:"protocolVersion"`
	Metadata        []byte `json:"metadata" bson:"metadata"`
	Content         []byte `json:"content,omitempty" bson:"content,omitempty"`
}

// Intent is a locally built transaction, ready to be estimated and signed
type Intent struct {
	ChainId         domain.ChainId   `json:"chainId" bson:"chainId"`
	Sender          domain.Address   `json:"sender" bson:"sender"`
	Messages        []MsgSend        `json:"messages" bson:"messages"`
	Memo            string           `json:"memo" bson:"memo"`
	Fee             *Fee             `json:"fee,omitempty" bson:"fee,omitempty"`
	MetaprotocolFee *MetaprotocolFee `json:"metaprotocolFee,omitempty" bson:"metaprotocolFee,omitempty"`
	Extension       *ExtensionData   `json:"extension,omitempty" bson:"extension,omitempty"`
}

// Spend sums every amount of denom the sender pays, fee included
func (i *Intent) Spend(denom string) decimal.Decimal {
	total := decimal.Zero
	for _, msg := range i.Messages {
		// self sends only carry the memo
		if msg.ToAddress.Equals(i.Sender) {
			continue
		}
		for _, c := range msg.Amount {
			if c.Denom == denom {
				total = total.Add(decimal.NewFromInt(c.Amount))
			}
		}
	}
	if i.Fee != nil {
		for _, c := range i.Fee.Amount {
			if c.Denom == denom {
				total = total.Add(decimal.NewFromInt(c.Amount))
			}
		}
	}
	if i.MetaprotocolFee != nil && i.MetaprotocolFee.Amount.Denom == denom {
		total = total.Add(decimal.NewFromInt(i.MetaprotocolFee.Amount.Amount))
	}
	return total
}

type Status string

const (
	StatusPending   Status = "pending"
	StatusConfirmed Status = "confirmed"
	StatusFailed    Status = "failed"
)

// Receipt is the outcome of submitting an intent
type Receipt struct {
	TxHash  domain.TxHash `json:"txHash"`
	Status  Status        `json:"status"`
	Message string        `json:"message,omitempty"`
	// StillIndexing is set when the confirmation window elapsed before the indexer saw the tx
	StillIndexing bool `json:"stillIndexing"`
}

// IndexStatus is what the indexer knows about a tx
type IndexStatus struct {
	Found         bool
	StatusMessage string
}

type FeeEstimator interface {
	Estimate(c ctx.Ctx, intent *Intent) (*Fee, error)
}

type Waiter interface {
	// Wait polls until the tx is indexed or the confirmation window closes
	Wait(c ctx.Ctx, hash domain.TxHash) (*Receipt, error)
	// Poll checks the tx once
	Poll(c ctx.Ctx, hash domain.TxHash) (*Receipt, error)
}

// Submitter runs an intent through estimate, sign, broadcast and confirmation.
// Submit is Broadcast then Wait, callers that must record the hash first use them apart.
type Submitter interface {
	Submit(c ctx.Ctx, intent *Intent) (*Receipt, error)
	Broadcast(c ctx.Ctx, intent *Intent) (domain.TxHash, error)
	Wait(c ctx.Ctx, hash domain.TxHash) (*Receipt, error)
	Poll(c ctx.Ctx, hash domain.TxHash) (*Receipt, error)
}
