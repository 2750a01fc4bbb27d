package usecase

import (
	"encoding/json"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/suite"

	"github.com/x-xyz/asteroid-market/domain"
	"github.com/x-xyz/asteroid-market/domain/intent"
	"github.com/x-xyz/asteroid-market/domain/listing"
	"github.com/x-xyz/asteroid-market/domain/metaprotocol"
	"github.com/x-xyz/asteroid-market/domain/token"
	"github.com/x-xyz/asteroid-market/domain/tx"
)

const (
	other       = domain.Address("cosmos1qvpsxqcrqvpsxqcrqvpsxqcrqvpsxqcrz8x6vt")
	feeReceiver = domain.Address("cosmos1qszqgpqyqszqgpqyqszqgpqyqszqgpqyzhplth")
)

type builderTestSuite struct {
	suite.Suite
	im intent.Builder
}

func (s *builderTestSuite) SetupTest() {
	s.im = NewBuilder(BuilderCfg{
		ChainId:             "cosmoshub-4",
		UrnChainId:          "gaia",
		Denom:               "uatom",
		ProtocolFeeReceiver: feeReceiver,
		ProtocolFeeRate:     decimal.RequireFromString("0.02"),
	})
}

func TestBuilderTestSuite(t *testing.T) {
	suite.Run(t, new(builderTestSuite))
}

func newListing(hash string, seller domain.Address, total, deposit int64) *listing.Listing {
	return &listing.Listing{
		TransactionHash: domain.TxHash(hash),
		SellerAddress:   seller,
		Total:           total,
		DepositTotal:    deposit,
		Kind:            listing.KindCft20,
	}
}

func deposited(l *listing.Listing) *listing.Listing {
	l.IsDeposited = true
	return l
}

func (s *builderTestSuite) TestDeposit() {
	listings := []*listing.Listing{
		newListing("aa", seller, 1000, 10),
		newListing("BB", other, 2000, 20),
		newListing("CC", seller, 3000, 30),
	}

	in, err := s.im.Deposit(buyer, listings)
	s.Require().NoError(err)
	s.Equal("urn:marketplace:gaia@v1;deposit$h=AA|BB|CC", in.Memo)
	s.Equal(domain.ChainId("cosmoshub-4"), in.ChainId)
	s.Equal(buyer, in.Sender)
	s.Equal([]tx.MsgSend{
		{FromAddress: buyer, ToAddress: buyer, Amount: []tx.Coin{{Denom: "uatom", Amount: 1}}},
		{FromAddress: buyer, ToAddress: seller, Amount: []tx.Coin{{Denom: "uatom", Amount: 40}}},
		{FromAddress: buyer, ToAddress: other, Amount: []tx.Coin{{Denom: "uatom", Amount: 20}}},
	}, in.Messages)
	s.Nil(in.MetaprotocolFee)
	s.True(in.Spend("uatom").Equal(decimal.NewFromInt(60)))

	u, err := metaprotocol.Parse(in.Memo)
	s.NoError(err)
	s.Equal([]string{"AA", "BB", "CC"}, u.Values(metaprotocol.ParamHash))
}

func (s *builderTestSuite) TestDepositTargetsSender() {
	free := newListing("AA", seller, 1000, 0)

	in, err := s.im.Deposit(buyer, []*listing.Listing{free})
	s.Require().NoError(err)
	s.Len(in.Messages, 1)
	s.Equal(buyer, in.Messages[0].FromAddress)
	s.Equal(buyer, in.Messages[0].ToAddress)
}

func (s *builderTestSuite) TestDepositValidation() {
	_, err := s.im.Deposit(buyer, nil)
	s.ErrorIs(err, domain.ErrEmptyListings)

	filled := newListing("AA", seller, 1000, 10)
	filled.IsFilled = true
	_, err = s.im.Deposit(buyer, []*listing.Listing{filled})
	s.ErrorIs(err, domain.ErrListingNotActionable)

	mixed := newListing("BB", seller, 1000, 10)
	mixed.Kind = listing.KindInscription
	_, err = s.im.Deposit(buyer, []*listing.Listing{newListing("AA", seller, 1000, 10), mixed})
	s.Equal(domain.ErrorKindValidation, domain.KindOf(err))
}

func (s *builderTestSuite) TestBuy() {
	listings := []*listing.Listing{
		deposited(newListing("AA", seller, 1000, 10)),
		deposited(newListing("BB", other, 2049, 49)),
	}

	in, err := s.im.Buy(buyer, listings)
	s.Require().NoError(err)
	s.Equal("urn:marketplace:gaia@v1;buy.cft20$h=AA|BB", in.Memo)
	s.Equal([]tx.MsgSend{
		{FromAddress: buyer, ToAddress: seller, Amount: []tx.Coin{{Denom: "uatom", Amount: 990}}},
		{FromAddress: buyer, ToAddress: other, Amount: []tx.Coin{{Denom: "uatom", Amount: 2000}}},
	}, in.Messages)
	// 2% of 3049 rounded up
	s.Equal(&tx.MetaprotocolFee{Receiver: feeReceiver, Amount: tx.Coin{Denom: "uatom", Amount: 61}}, in.MetaprotocolFee)
	s.True(in.Spend("uatom").Equal(decimal.NewFromInt(3051)))
}

func (s *builderTestSuite) TestBuyInscription() {
	l := deposited(newListing("AA", seller, 5000, 5000))
	l.Kind = listing.KindInscription

	in, err := s.im.Buy(buyer, []*listing.Listing{l})
	s.Require().NoError(err)
	s.Equal("urn:marketplace:gaia@v1;buy.inscription$h=AA", in.Memo)
	// deposit covered the total, only the carrier is left
	s.Len(in.Messages, 1)
	s.Equal(buyer, in.Messages[0].ToAddress)
	s.Equal(int64(1), in.Messages[0].Amount[0].Amount)
}

func (s *builderTestSuite) TestListCft20() {
	req := &intent.ListCft20{
		Token:         &token.Token{Ticker: "ROIDS", Decimals: 6},
		Amount:        1000000000,
		Ppt:           25000,
		MinDeposit:    decimal.RequireFromString("0.01"),
		TimeoutBlocks: 100,
	}
	in, err := s.im.ListCft20(seller, req)
	s.Require().NoError(err)
	s.Equal("urn:marketplace:gaia@v1;list.cft20$tic=ROIDS,amt=1000000000,ppt=25000,mindep=0.01,to=100", in.Memo)
	s.Equal(seller, in.Messages[0].ToAddress)

	req.MinDeposit = decimal.RequireFromString("1.5")
	_, err = s.im.ListCft20(seller, req)
	s.ErrorIs(err, domain.ErrInvalidAmount)

	req.MinDeposit = decimal.RequireFromString("0.01")
	req.Ppt = 0
	_, err = s.im.ListCft20(seller, req)
	s.ErrorIs(err, domain.ErrInvalidAmount)
}

func (s *builderTestSuite) TestDelist() {
	l := newListing("AA", seller, 1000, 10)

	in, err := s.im.Delist(seller, l)
	s.Require().NoError(err)
	s.Equal("urn:marketplace:gaia@v1;delist$h=AA", in.Memo)

	_, err = s.im.Delist(buyer, l)
	s.ErrorIs(err, domain.ErrNotSeller)
}

func (s *builderTestSuite) TestInscribe() {
	content := []byte("<svg xmlns=\"http://www.w3.org/2000/svg\"></svg>")

	in, err := s.im.Inscribe(buyer, &intent.Inscribe{Name: "Roid #1", Content: content})
	s.Require().NoError(err)

	u, err := metaprotocol.Parse(in.Memo)
	s.Require().NoError(err)
	s.True(u.Query)
	s.Equal(metaprotocol.OpInscribe, u.Operation)
	mime, _ := u.Get(metaprotocol.ParamMime)
	s.Equal("image/svg+xml", mime)
	h, _ := u.Get(metaprotocol.ParamHash)
	s.Len(h, 64)

	s.Equal(content, in.Extension.Content)
	meta := inscriptionMetadata{}
	s.NoError(json.Unmarshal(in.Extension.Metadata, &meta))
	s.Equal("Roid #1", meta.Metadata.Name)
	s.Equal(buyer.String(), meta.Parent.Identifier)

	_, err = s.im.Inscribe(buyer, &intent.Inscribe{Name: "bad;name", Content: content})
	s.ErrorIs(err, metaprotocol.ErrReservedChar)

	_, err = s.im.Inscribe(buyer, &intent.Inscribe{Name: "empty"})
	s.Equal(domain.ErrorKindValidation, domain.KindOf(err))
}
