package usecase

import (
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"strconv"
	"strings"

	"github.com/gabriel-vasile/mimetype"
	"github.com/shopspring/decimal"

	"github.com/x-xyz/asteroid-market/domain"
	"github.com/x-xyz/asteroid-market/domain/intent"
	"github.com/x-xyz/asteroid-market/domain/listing"
	"github.com/x-xyz/asteroid-market/domain/metaprotocol"
	"github.com/x-xyz/asteroid-market/domain/tx"
)

type BuilderCfg struct {
	ChainId domain.ChainId
	// UrnChainId is the chain name memos carry, ex: gaia
	UrnChainId string
	Denom      string
	// CarrierAmount is sent to self by operations that move no funds
	CarrierAmount       int64
	ProtocolFeeReceiver domain.Address
	// ProtocolFeeRate is charged on the total of a buy, ex: 0.02
	ProtocolFeeRate decimal.Decimal
}

type builder struct {
	cfg BuilderCfg
}

func NewBuilder(cfg BuilderCfg) intent.Builder {
	if cfg.CarrierAmount <= 0 {
		cfg.CarrierAmount = 1
	}
	return &builder{cfg}
}

// Deposit targets the sender first, the indexer reads the reservation off that
// message and credits the seller sends that follow it
func (b *builder) Deposit(sender domain.Address, listings []*listing.Listing) (*tx.Intent, error) {
	if _, err := checkListings("deposit", listings); err != nil {
		return nil, err
	}
	amounts := func(l *listing.Listing) int64 { return l.DepositTotal }
	memo, err := b.marketplaceUrn(metaprotocol.OpDeposit).WithValues(metaprotocol.ParamHash, hashes(listings)...).Encode()
	if err != nil {
		return nil, domain.NewValidationError("deposit", err)
	}
	msgs := append([]tx.MsgSend{b.carrier(sender)}, b.paySellers(sender, listings, amounts)...)
	return b.newIntent(sender, msgs, memo), nil
}

func (b *builder) Buy(sender domain.Address, listings []*listing.Listing) (*tx.Intent, error) {
	kind, err := checkListings("buy", listings)
	if err != nil {
		return nil, err
	}
	op := metaprotocol.OpBuyCft20
	if kind == listing.KindInscription {
		op = metaprotocol.OpBuyInscription
	}
	memo, err := b.marketplaceUrn(op).WithValues(metaprotocol.ParamHash, hashes(listings)...).Encode()
	if err != nil {
		return nil, domain.NewValidationError("buy", err)
	}

	amounts := func(l *listing.Listing) int64 { return l.Remaining() }
	in := b.newIntent(sender, b.paySellers(sender, listings, amounts), memo)

	if !b.cfg.ProtocolFeeReceiver.IsEmpty() && b.cfg.ProtocolFeeRate.IsPositive() {
		total := decimal.Zero
		for _, l := range listings {
			total = total.Add(decimal.NewFromInt(l.Total))
		}
		if fee := total.Mul(b.cfg.ProtocolFeeRate).Ceil().IntPart(); fee > 0 {
			in.MetaprotocolFee = &tx.MetaprotocolFee{
				Receiver: b.cfg.ProtocolFeeReceiver,
				Amount:   tx.Coin{Denom: b.cfg.Denom, Amount: fee},
			}
		}
	}
	return in, nil
}

func (b *builder) ListCft20(sender domain.Address, req *intent.ListCft20) (*tx.Intent, error) {
	switch {
	case req.Token == nil:
		return nil, domain.NewValidationError("list", domain.ErrNotFound)
	case req.Amount <= 0 || req.Ppt <= 0:
		return nil, domain.NewValidationError("list", domain.ErrInvalidAmount)
	case !req.MinDeposit.IsPositive() || req.MinDeposit.GreaterThan(decimal.NewFromInt(1)):
		return nil, domain.NewValidationError("list", domain.ErrInvalidAmount)
	case req.TimeoutBlocks <= 0:
		return nil, domain.NewValidationError("list", domain.ErrBadParamInput)
	}

	memo, err := b.marketplaceUrn(metaprotocol.OpListCft20).
		With(metaprotocol.ParamTicker, req.Token.Ticker).
		With(metaprotocol.ParamAmount, strconv.FormatInt(req.Amount, 10)).
		With(metaprotocol.ParamPpt, strconv.FormatInt(req.Ppt, 10)).
		With(metaprotocol.ParamMinDeposit, req.MinDeposit.String()).
		With(metaprotocol.ParamTimeout, strconv.FormatInt(req.TimeoutBlocks, 10)).
		Encode()
	if err != nil {
		return nil, domain.NewValidationError("list", err)
	}
	return b.newIntent(sender, nil, memo), nil
}

func (b *builder) Delist(sender domain.Address, l *listing.Listing) (*tx.Intent, error) {
	if !l.SellerAddress.Equals(sender) {
		return nil, domain.NewValidationError("delist", domain.ErrNotSeller)
	}
	if !l.IsActionable() {
		return nil, domain.NewValidationError("delist", domain.ErrListingNotActionable)
	}
	memo, err := b.marketplaceUrn(metaprotocol.OpDelist).With(metaprotocol.ParamHash, l.TransactionHash.String()).Encode()
	if err != nil {
		return nil, domain.NewValidationError("delist", err)
	}
	return b.newIntent(sender, nil, memo), nil
}

type inscriptionParent struct {
	Type       string `json:"type"`
	Identifier string `json:"identifier"`
}

type inscriptionMetadata struct {
	Parent   inscriptionParent `json:"parent"`
	Metadata struct {
		Name        string `json:"name"`
		Description string `json:"description,omitempty"`
		Mime        string `json:"mime"`
	} `json:"metadata"`
}

func (b *builder) Inscribe(sender domain.Address, req *intent.Inscribe) (*tx.Intent, error) {
	if len(req.Content) == 0 {
		return nil, domain.NewValidationError("inscribe", domain.ErrBadParamInput)
	}

	// drop parameters such as charset, the urn grammar reserves ; and =
	mime := strings.SplitN(mimetype.Detect(req.Content).String(), ";", 2)[0]
	sum := sha256.Sum256(req.Content)
	contentHash := hex.EncodeToString(sum[:])

	memo, err := metaprotocol.New(metaprotocol.MetaprotocolInscription, b.cfg.UrnChainId, metaprotocol.VersionInscription, metaprotocol.OpInscribe).
		AsQuery().
		With(metaprotocol.ParamHash, contentHash).
		With(metaprotocol.ParamMime, mime).
		With(metaprotocol.ParamName, req.Name).
		Encode()
	if err != nil {
		return nil, domain.NewValidationError("inscribe", err)
	}

	meta := inscriptionMetadata{Parent: inscriptionParent{Type: "/cosmos.bank.Account", Identifier: sender.String()}}
	meta.Metadata.Name = req.Name
	meta.Metadata.Description = req.Description
	meta.Metadata.Mime = mime
	raw, err := json.Marshal(meta)
	if err != nil {
		return nil, err
	}

	in := b.newIntent(sender, nil, memo)
	in.Extension = &tx.ExtensionData{
		ProtocolId:      metaprotocol.MetaprotocolInscription,
		ProtocolVersion: metaprotocol.VersionInscription,
		Metadata:        raw,
		Content:         req.Content,
	}
	return in, nil
}

func (b *builder) marketplaceUrn(op string) *metaprotocol.Urn {
	return metaprotocol.New(metaprotocol.MetaprotocolMarketplace, b.cfg.UrnChainId, metaprotocol.VersionMarketplace, op)
}

// newIntent falls back to a self send carrying the memo when msgs is empty
func (b *builder) newIntent(sender domain.Address, msgs []tx.MsgSend, memo string) *tx.Intent {
	if len(msgs) == 0 {
		msgs = []tx.MsgSend{b.carrier(sender)}
	}
	return &tx.Intent{
		ChainId:  b.cfg.ChainId,
		Sender:   sender,
		Messages: msgs,
		Memo:     memo,
	}
}

func (b *builder) carrier(sender domain.Address) tx.MsgSend {
	return tx.MsgSend{
		FromAddress: sender,
		ToAddress:   sender,
		Amount:      []tx.Coin{{Denom: b.cfg.Denom, Amount: b.cfg.CarrierAmount}},
	}
}

// paySellers sends one message per seller, in first seen order
func (b *builder) paySellers(sender domain.Address, listings []*listing.Listing, amount func(*listing.Listing) int64) []tx.MsgSend {
	msgs := []tx.MsgSend{}
	idx := map[string]int{}
	for _, l := range listings {
		a := amount(l)
		if a <= 0 {
			continue
		}
		key := l.SellerAddress.ToLowerStr()
		if i, ok := idx[key]; ok {
			msgs[i].Amount[0].Amount += a
			continue
		}
		idx[key] = len(msgs)
		msgs = append(msgs, tx.MsgSend{
			FromAddress: sender,
			ToAddress:   l.SellerAddress,
			Amount:      []tx.Coin{{Denom: b.cfg.Denom, Amount: a}},
		})
	}
	return msgs
}

func checkListings(op string, listings []*listing.Listing) (listing.Kind, error) {
	if len(listings) == 0 {
		return "", domain.NewValidationError(op, domain.ErrEmptyListings)
	}
	kind := listings[0].Kind
	for _, l := range listings {
		if l.Kind != kind {
			return "", domain.NewValidationError(op, domain.ErrBadParamInput)
		}
		if !l.IsActionable() {
			return "", domain.NewValidationError(op, domain.ErrListingNotActionable)
		}
	}
	return kind, nil
}

func hashes(listings []*listing.Listing) []string {
	res := make([]string, len(listings))
	for i, l := range listings {
		res[i] = l.TransactionHash.ToUpper().String()
	}
	return res
}
